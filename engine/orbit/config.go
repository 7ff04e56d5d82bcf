package orbit

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// Keys binds the four keyboard pan directions to key codes (GLFW codes, see common.Key*).
type Keys struct {
	Left   int `yaml:"left"`
	Up     int `yaml:"up"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// MouseButtons binds pointer buttons (common.MouseButton*) to gestures.
type MouseButtons struct {
	Orbit int `yaml:"orbit"`
	Zoom  int `yaml:"zoom"`
	Pan   int `yaml:"pan"`
}

// Config is the host-facing settings object read by the controls on every
// gesture and commit. Hosts may change any field between frames through
// Controls.Config.
type Config struct {
	// Enabled turns every gesture handler on or off.
	Enabled bool `yaml:"enabled"`

	// How far the camera can dolly in and out (perspective cameras only).
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`

	// How far the camera can zoom in and out (orthographic cameras only).
	MinZoom float64 `yaml:"min_zoom"`
	MaxZoom float64 `yaml:"max_zoom"`

	// Vertical orbit limits, in radians within [0, π].
	MinPolarAngle float64 `yaml:"min_polar_angle"`
	MaxPolarAngle float64 `yaml:"max_polar_angle"`

	// Horizontal orbit limits, in radians. Finite limits should lie within [-π, π].
	MinAzimuthAngle float64 `yaml:"min_azimuth_angle"`
	MaxAzimuthAngle float64 `yaml:"max_azimuth_angle"`

	// Damping keeps a fraction of the rotation delta alive across commits.
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float64 `yaml:"damping_factor"`

	EnableZoom bool    `yaml:"enable_zoom"`
	ZoomSpeed  float64 `yaml:"zoom_speed"`

	EnableRotate bool    `yaml:"enable_rotate"`
	RotateSpeed  float64 `yaml:"rotate_speed"`

	EnablePan bool `yaml:"enable_pan"`
	// KeyPanSpeed is the number of pixels panned per key press.
	KeyPanSpeed float64 `yaml:"key_pan_speed"`

	// AutoRotate spins the camera around the target while no gesture is active.
	// AutoRotateSpeed 2 gives one revolution per 30 seconds at 60 commits per second.
	AutoRotate      bool    `yaml:"auto_rotate"`
	AutoRotateSpeed float64 `yaml:"auto_rotate_speed"`

	EnableKeys   bool         `yaml:"enable_keys"`
	Keys         Keys         `yaml:"keys"`
	MouseButtons MouseButtons `yaml:"mouse_buttons"`

	// SessionTimeout ends a gesture session that has received no samples for
	// this long, checked on each commit. Zero disables the check.
	SessionTimeout time.Duration `yaml:"session_timeout"`
}

// DefaultConfig returns the stock settings: unbounded distance and zoom, full
// polar range, no azimuth limit, damping off, arrow-key panning, and
// left/middle/right buttons bound to orbit/zoom/pan.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Enabled: true,

		MinDistance: 0,
		MaxDistance: math.Inf(1),

		MinZoom: 0,
		MaxZoom: math.Inf(1),

		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,

		MinAzimuthAngle: math.Inf(-1),
		MaxAzimuthAngle: math.Inf(1),

		EnableDamping: false,
		DampingFactor: 0.25,

		EnableZoom: true,
		ZoomSpeed:  1.0,

		EnableRotate: true,
		RotateSpeed:  1.0,

		EnablePan:   true,
		KeyPanSpeed: 7.0,

		AutoRotate:      false,
		AutoRotateSpeed: 2.0,

		EnableKeys: true,
		Keys: Keys{
			Left:   common.KeyLeft,
			Up:     common.KeyUp,
			Right:  common.KeyRight,
			Bottom: common.KeyDown,
		},
		MouseButtons: MouseButtons{
			Orbit: common.MouseButtonLeft,
			Zoom:  common.MouseButtonMiddle,
			Pan:   common.MouseButtonRight,
		},
	}
}

// Validate reports settings that would break the clamping invariants.
//
// Returns:
//   - error: joined description of every invalid field, or nil
func (c Config) Validate() error {
	var errs []error
	if c.MinDistance < 0 || c.MinDistance > c.MaxDistance {
		errs = append(errs, fmt.Errorf("distance bounds [%v, %v] are invalid", c.MinDistance, c.MaxDistance))
	}
	if c.MinZoom < 0 || c.MinZoom > c.MaxZoom {
		errs = append(errs, fmt.Errorf("zoom bounds [%v, %v] are invalid", c.MinZoom, c.MaxZoom))
	}
	if c.MinPolarAngle < 0 || c.MaxPolarAngle > math.Pi || c.MinPolarAngle > c.MaxPolarAngle {
		errs = append(errs, fmt.Errorf("polar bounds [%v, %v] must be ordered within [0, π]", c.MinPolarAngle, c.MaxPolarAngle))
	}
	if c.MinAzimuthAngle > c.MaxAzimuthAngle {
		errs = append(errs, fmt.Errorf("azimuth bounds [%v, %v] are not ordered", c.MinAzimuthAngle, c.MaxAzimuthAngle))
	}
	if c.DampingFactor < 0 || c.DampingFactor > 1 {
		errs = append(errs, fmt.Errorf("damping factor %v is outside [0, 1]", c.DampingFactor))
	}
	if c.AutoRotate && c.AutoRotateSpeed == 0 {
		errs = append(errs, errors.New("auto-rotate speed must be non-zero"))
	}
	if c.SessionTimeout < 0 {
		errs = append(errs, fmt.Errorf("session timeout %v is negative", c.SessionTimeout))
	}
	return errors.Join(errs...)
}

// ParseConfig decodes YAML settings over DefaultConfig and validates the result.
// Fields absent from data keep their defaults; infinities are written .inf / -.inf.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: the decoded configuration
//   - error: error if decoding or validation fails
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse orbit config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid orbit config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML settings file.
//
// Parameters:
//   - path: file path
//
// Returns:
//   - Config: the decoded configuration
//   - error: error if the file cannot be read or parsed
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read orbit config %s: %w", path, err)
	}
	return ParseConfig(data)
}
