// Command orbitreplay replays scripted gestures against orbit controls and
// prints the resulting camera poses.
//
//	orbitreplay [-workers N] scenario.yaml...
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
)

var (
	workersFlag = flag.Int("workers", runtime.NumCPU(), "Number of scenarios replayed in parallel")
	quietFlag   = flag.Bool("quiet", false, "Suppress control diagnostics")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-workers N] scenario.yaml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(flag.Args(), *workersFlag, *quietFlag, os.Stdout, os.Stderr))
}

// run loads every scenario, replays the ones that loaded and returns the exit code.
func run(paths []string, workers int, quiet bool, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	code := 0
	scenarios := make([]Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := LoadScenario(path)
		if err != nil {
			logger.Printf("[Replay] %v", err)
			code = 1
			continue
		}
		scenarios = append(scenarios, sc)
	}

	diagnostics := stderr
	if quiet {
		diagnostics = io.Discard
	}
	for _, res := range RunAll(scenarios, workers, diagnostics) {
		fmt.Fprintln(stdout, res)
	}
	return code
}
