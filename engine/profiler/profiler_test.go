package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestTickLogsAtInterval(t *testing.T) {
	now := time.Unix(0, 0)
	var buf bytes.Buffer
	p := NewProfiler(
		WithInterval(time.Second),
		WithLogger(log.New(&buf, "", 0)),
		WithClock(func() time.Time { return now }),
	)

	p.Commit(true)
	p.Commit(false)
	for range 9 {
		now = now.Add(100 * time.Millisecond)
		if p.Tick() {
			t.Fatalf("logged before the interval elapsed at %v", now)
		}
	}

	now = now.Add(100 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("Tick() did not log after the interval")
	}
	out := buf.String()
	if !strings.Contains(out, "FPS: 10.00") || !strings.Contains(out, "Commits: 2.00/s (1 changed)") {
		t.Errorf("log = %q", out)
	}

	buf.Reset()
	now = now.Add(time.Second)
	p.Tick()
	if !strings.Contains(buf.String(), "Commits: 0.00/s (0 changed)") {
		t.Errorf("counters not reset: %q", buf.String())
	}
}
