package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"
)

// Step operations.
const (
	OpRotate = "rotate"
	OpDolly  = "dolly"
	OpPan    = "pan"
	OpTouch  = "touch"
	OpWheel  = "wheel"
	OpKey    = "key"
	OpUpdate = "update"
	OpEnd    = "end"
	OpSave   = "save"
	OpReset  = "reset"
)

// Camera kinds.
const (
	CameraPerspective  = "perspective"
	CameraOrthographic = "orthographic"
)

var panDirections = map[string]orbit.PanDirection{
	"up":     orbit.PanUp,
	"down":   orbit.PanBottom,
	"left":   orbit.PanLeft,
	"right":  orbit.PanRight,
	"bottom": orbit.PanBottom,
}

// CameraSpec describes the camera a scenario starts from.
type CameraSpec struct {
	Kind     string     `yaml:"kind"`
	Fov      float64    `yaml:"fov"`
	Aspect   float64    `yaml:"aspect"`
	Frustum  [4]float64 `yaml:"frustum"` // left, right, top, bottom
	Position [3]float64 `yaml:"position"`
	Up       [3]float64 `yaml:"up"`
	Zoom     float64    `yaml:"zoom"`
}

// Step is one scripted interaction.
//
// rotate, dolly and pan begin at the first point, move through the rest and
// end the gesture unless Hold is set. touch does the same with one set of
// touch points per frame. wheel and key repeat Count times (default 1), as
// does update.
type Step struct {
	Op        string         `yaml:"op"`
	Points    [][2]float64   `yaml:"points"`
	Frames    [][][2]float64 `yaml:"frames"`
	DeltaY    float64        `yaml:"delta_y"`
	Direction string         `yaml:"direction"`
	Count     int            `yaml:"count"`
	Hold      bool           `yaml:"hold"`
}

// Scenario is a replayable gesture script.
type Scenario struct {
	Name     string       `yaml:"name"`
	Camera   CameraSpec   `yaml:"camera"`
	Target   [3]float64   `yaml:"target"`
	Viewport [2]int       `yaml:"viewport"`
	Config   orbit.Config `yaml:"config"`
	Steps    []Step       `yaml:"steps"`
}

// ParseScenario decodes a scenario, filling defaults for everything the
// document leaves out, and validates it.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Scenario: the decoded scenario
//   - error: error if decoding or validation fails
func ParseScenario(data []byte) (Scenario, error) {
	sc := Scenario{
		Camera: CameraSpec{
			Kind:     CameraPerspective,
			Fov:      50,
			Aspect:   1,
			Frustum:  [4]float64{-1, 1, 1, -1},
			Position: [3]float64{0, 0, 10},
			Up:       [3]float64{0, 1, 0},
			Zoom:     1,
		},
		Viewport: [2]int{800, 600},
		Config:   orbit.DefaultConfig(),
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario %q: %w", sc.Name, err)
	}
	return sc, nil
}

// LoadScenario reads and parses a scenario file. A scenario without a name is
// named after its file.
//
// Parameters:
//   - path: file path
//
// Returns:
//   - Scenario: the decoded scenario
//   - error: error if the file cannot be read or parsed
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	sc.Name = common.Coalesce(sc.Name, path)
	return sc, nil
}

// Validate reports every problem in the scenario.
//
// Returns:
//   - error: joined description of every problem, or nil
func (sc Scenario) Validate() error {
	var errs []error
	switch sc.Camera.Kind {
	case CameraPerspective:
		if sc.Camera.Fov <= 0 || sc.Camera.Fov >= 180 {
			errs = append(errs, fmt.Errorf("fov %v is outside (0, 180)", sc.Camera.Fov))
		}
	case CameraOrthographic:
		f := sc.Camera.Frustum
		if f[0] == f[1] || f[2] == f[3] {
			errs = append(errs, fmt.Errorf("frustum %v is degenerate", f))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown camera kind %q", sc.Camera.Kind))
	}
	if sc.Viewport[0] <= 0 || sc.Viewport[1] <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", sc.Viewport[0], sc.Viewport[1]))
	}
	if err := sc.Config.Validate(); err != nil {
		errs = append(errs, err)
	}
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (s Step) validate() error {
	switch s.Op {
	case OpRotate, OpDolly, OpPan:
		if len(s.Points) == 0 {
			return fmt.Errorf("%s needs at least one point", s.Op)
		}
	case OpTouch:
		if len(s.Frames) == 0 {
			return errors.New("touch needs at least one frame")
		}
	case OpKey:
		if _, ok := panDirections[s.Direction]; !ok {
			return fmt.Errorf("unknown key direction %q", s.Direction)
		}
	case OpWheel, OpUpdate, OpEnd, OpSave, OpReset:
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	if s.Count < 0 {
		return fmt.Errorf("count %d is negative", s.Count)
	}
	return nil
}

func (s Step) repeat() int {
	return max(s.Count, 1)
}

// newCamera builds the scenario's starting camera.
func (c CameraSpec) newCamera() camera.Camera {
	options := []camera.CameraBuilderOption{
		camera.WithPosition(c.Position[0], c.Position[1], c.Position[2]),
		camera.WithUp(c.Up[0], c.Up[1], c.Up[2]),
		camera.WithZoom(c.Zoom),
	}
	if c.Kind == CameraOrthographic {
		return camera.NewOrthographicCamera(c.Frustum[0], c.Frustum[1], c.Frustum[2], c.Frustum[3], options...)
	}
	return camera.NewPerspectiveCamera(c.Fov, c.Aspect, options...)
}

func vec2s(points [][2]float64) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(points))
	for i, p := range points {
		out[i] = mgl64.Vec2{p[0], p[1]}
	}
	return out
}
