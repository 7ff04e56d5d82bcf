package main

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"
)

// Result is the final state of a replayed scenario.
type Result struct {
	Name     string
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Zoom     float64
	Polar    float64
	Azimuth  float64
	Changes  int
	Sessions int
}

func (r Result) String() string {
	return fmt.Sprintf("%s: position=(%.3f, %.3f, %.3f) target=(%.3f, %.3f, %.3f) zoom=%.3f polar=%.4f azimuth=%.4f changes=%d sessions=%d",
		r.Name,
		r.Position.X(), r.Position.Y(), r.Position.Z(),
		r.Target.X(), r.Target.Y(), r.Target.Z(),
		r.Zoom, r.Polar, r.Azimuth, r.Changes, r.Sessions)
}

// Replay runs one scenario on fresh controls and commits once after the last step.
//
// Parameters:
//   - sc: the scenario
//   - logger: receives control diagnostics
//
// Returns:
//   - Result: the final camera and control state
func Replay(sc Scenario, logger *log.Logger) Result {
	cam := sc.Camera.newCamera()
	c := orbit.NewControls(cam,
		orbit.WithConfig(sc.Config),
		orbit.WithTarget(sc.Target[0], sc.Target[1], sc.Target[2]),
		orbit.WithViewport(sc.Viewport[0], sc.Viewport[1]),
		orbit.WithLogger(logger),
	)
	defer c.Dispose()

	res := Result{Name: sc.Name}
	c.AddListener(func(ev orbit.Event) {
		switch ev.Type {
		case orbit.EventChange:
			res.Changes++
		case orbit.EventStart:
			res.Sessions++
		}
	})

	for _, step := range sc.Steps {
		applyStep(c, step)
	}
	c.Update()

	res.Position = cam.Position()
	res.Target = c.Target()
	res.Zoom = cam.Zoom()
	res.Polar = c.PolarAngle()
	res.Azimuth = c.AzimuthalAngle()
	return res
}

func applyStep(c orbit.Controls, step Step) {
	switch step.Op {
	case OpRotate, OpDolly, OpPan:
		begin, move := c.BeginRotate, c.MoveRotate
		if step.Op == OpDolly {
			begin, move = c.BeginDolly, c.MoveDolly
		} else if step.Op == OpPan {
			begin, move = c.BeginPan, c.MovePan
		}
		begin(step.Points[0][0], step.Points[0][1])
		for _, p := range step.Points[1:] {
			move(p[0], p[1])
		}
		if !step.Hold {
			c.EndGesture()
		}
	case OpTouch:
		c.BeginTouch(vec2s(step.Frames[0]))
		for _, frame := range step.Frames[1:] {
			c.MoveTouch(vec2s(frame))
		}
		if !step.Hold {
			c.EndGesture()
		}
	case OpWheel:
		for range step.repeat() {
			c.Wheel(step.DeltaY)
		}
	case OpKey:
		for range step.repeat() {
			c.KeyPan(panDirections[step.Direction])
		}
	case OpUpdate:
		for range step.repeat() {
			c.Update()
		}
	case OpEnd:
		c.EndGesture()
	case OpSave:
		c.SaveState()
	case OpReset:
		c.Reset()
	}
}

// RunAll replays every scenario on a worker pool and returns the results in
// input order.
//
// Parameters:
//   - scenarios: the scenarios to replay
//   - workers: pool size (at least 1)
//   - logOutput: destination for control diagnostics
//
// Returns:
//   - []Result: one result per scenario
func RunAll(scenarios []Scenario, workers int, logOutput io.Writer) []Result {
	results := make([]Result, len(scenarios))
	if len(scenarios) == 0 {
		return results
	}

	pool := worker.NewDynamicWorkerPool(max(workers, 1), 256, time.Second)

	// Each task writes only its own slot; the WaitGroup is the barrier.
	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				logger := log.New(logOutput, fmt.Sprintf("[Replay %s] ", sc.Name), 0)
				results[i] = Replay(sc, logger)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return results
}
