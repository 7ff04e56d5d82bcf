package orbit

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if !math.IsInf(cfg.MaxDistance, 1) || !math.IsInf(cfg.MinAzimuthAngle, -1) {
		t.Errorf("default bounds not unbounded: %+v", cfg)
	}
	if cfg.Keys.Up != common.KeyUp || cfg.MouseButtons.Pan != common.MouseButtonRight {
		t.Errorf("default bindings = %+v / %+v", cfg.Keys, cfg.MouseButtons)
	}
	if cfg.DampingFactor != 0.25 || cfg.KeyPanSpeed != 7 || cfg.AutoRotateSpeed != 2 {
		t.Errorf("default speeds = %+v", cfg)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
enable_damping: true
damping_factor: 0.1
min_distance: 2
max_distance: .inf
max_polar_angle: 1.5
session_timeout: 250ms
keys:
  up: 87
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if !cfg.EnableDamping || cfg.DampingFactor != 0.1 {
		t.Errorf("damping = %v/%v", cfg.EnableDamping, cfg.DampingFactor)
	}
	if cfg.MinDistance != 2 || !math.IsInf(cfg.MaxDistance, 1) {
		t.Errorf("distance = [%v, %v]", cfg.MinDistance, cfg.MaxDistance)
	}
	if cfg.SessionTimeout != 250*time.Millisecond {
		t.Errorf("SessionTimeout = %v", cfg.SessionTimeout)
	}
	if cfg.Keys.Up != common.KeyW || cfg.Keys.Left != common.KeyLeft {
		t.Errorf("Keys = %+v, want up remapped and left defaulted", cfg.Keys)
	}
	if !cfg.Enabled || !cfg.EnableZoom {
		t.Error("unspecified fields lost their defaults")
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "min_distance: [1"},
		{"distance order", "min_distance: 10\nmax_distance: 5"},
		{"polar range", "max_polar_angle: 4"},
		{"azimuth order", "min_azimuth_angle: 1\nmax_azimuth_angle: -1"},
		{"damping", "damping_factor: 1.5"},
		{"zoom", "min_zoom: -1"},
		{"timeout", "session_timeout: -1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); err == nil {
				t.Errorf("ParseConfig(%q) returned nil error", tt.data)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")
	if err := os.WriteFile(path, []byte("rotate_speed: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.RotateSpeed != 0.5 {
		t.Errorf("RotateSpeed = %v", cfg.RotateSpeed)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig(missing) returned nil error")
	}
}
