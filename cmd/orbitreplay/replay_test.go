package main

import (
	"bytes"
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// vecNear reports whether every component of a and b differs by at most tol.
func vecNear(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func mustParse(t *testing.T, doc string) Scenario {
	t.Helper()
	sc, err := ParseScenario([]byte(doc))
	if err != nil {
		t.Fatalf("ParseScenario() error: %v", err)
	}
	return sc
}

func TestParseScenarioDefaults(t *testing.T) {
	sc := mustParse(t, "name: empty\n")
	if sc.Camera.Kind != CameraPerspective || sc.Camera.Position != [3]float64{0, 0, 10} {
		t.Errorf("camera = %+v", sc.Camera)
	}
	if sc.Viewport != [2]int{800, 600} {
		t.Errorf("viewport = %v", sc.Viewport)
	}
	if !sc.Config.Enabled || sc.Config.KeyPanSpeed != 7 {
		t.Errorf("config defaults lost: %+v", sc.Config)
	}
}

func TestParseScenarioInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"camera kind", "camera: {kind: fisheye}", "unknown camera kind"},
		{"fov", "camera: {fov: 0}", "fov"},
		{"viewport", "viewport: [0, 600]", "viewport"},
		{"op", "steps: [{op: spin}]", "unknown op"},
		{"points", "steps: [{op: rotate}]", "at least one point"},
		{"direction", "steps: [{op: key, direction: sideways}]", "key direction"},
		{"config", "config: {damping_factor: 2}", "damping factor"},
		{"yaml", "steps: {", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseScenario(%q) error = %v, want %q", tt.doc, err, tt.want)
			}
		})
	}
}

func TestReplayHalfTurn(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("testdata", "half_turn.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	res := Replay(sc, nil)

	if !vecNear(res.Position, mgl64.Vec3{0, 0, -10}, 1e-6) {
		t.Errorf("position = %v, want (0, 0, -10)", res.Position)
	}
	if math.Abs(math.Abs(res.Azimuth)-math.Pi) > 1e-9 {
		t.Errorf("azimuth = %v, want ±π", res.Azimuth)
	}
	if res.Sessions != 1 || res.Changes != 1 {
		t.Errorf("sessions = %d, changes = %d, want 1/1", res.Sessions, res.Changes)
	}
}

func TestReplayOrthographicZoom(t *testing.T) {
	sc, err := LoadScenario(filepath.Join("testdata", "ortho_zoom.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	res := Replay(sc, nil)

	if res.Zoom != 2 {
		t.Errorf("zoom = %v, want clamped 2", res.Zoom)
	}
	if res.Target.X() >= 0 {
		t.Errorf("target = %v, want panned toward -X", res.Target)
	}
	if dist := res.Position.Sub(res.Target).Len(); math.Abs(dist-math.Sqrt(50)) > 1e-9 {
		t.Errorf("orthographic radius = %v, want unchanged", dist)
	}
}

func TestRunAllKeepsOrder(t *testing.T) {
	var scenarios []Scenario
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		sc := mustParse(t, "name: "+name+"\nsteps: [{op: wheel, delta_y: -1}]\n")
		scenarios = append(scenarios, sc)
	}

	results := RunAll(scenarios, 3, io.Discard)
	if len(results) != len(scenarios) {
		t.Fatalf("results = %d, want %d", len(results), len(scenarios))
	}
	for i, res := range results {
		if res.Name != scenarios[i].Name {
			t.Errorf("result %d = %q, want %q", i, res.Name, scenarios[i].Name)
		}
		if dist := res.Position.Sub(res.Target).Len(); math.Abs(dist-9.5) > 1e-9 {
			t.Errorf("%s radius = %v, want 9.5", res.Name, dist)
		}
	}

	if got := RunAll(nil, 2, io.Discard); len(got) != 0 {
		t.Errorf("RunAll(nil) = %v", got)
	}
}

func TestRunExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{
		filepath.Join("testdata", "half_turn.yaml"),
		filepath.Join("testdata", "broken.yaml"),
		filepath.Join("testdata", "missing.yaml"),
	}, 2, true, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), "half-turn: position=") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if strings.Count(stdout.String(), "\n") != 1 {
		t.Errorf("stdout has %d lines, want 1", strings.Count(stdout.String(), "\n"))
	}
	if !strings.Contains(stderr.String(), "broken.yaml") || !strings.Contains(stderr.String(), "missing.yaml") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
