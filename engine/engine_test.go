package engine

import (
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
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

// fakeWindow is a window.Window without a platform window.
type fakeWindow struct {
	input.Dispatcher
	width, height int
	onResize      func(width, height int)
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetUpdateCallback(func()) {}
func (w *fakeWindow) SetResizeCallback(callback func(width, height int)) { w.onResize = callback }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) IsRunning() bool { return false }
func (w *fakeWindow) Close() error { return nil }
func (w *fakeWindow) ProcessMessages() {}
func (w *fakeWindow) Width() int { return w.width }
func (w *fakeWindow) Height() int { return w.height }

func (w *fakeWindow) resize(width, height int) {
	w.width, w.height = width, height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func newTestEngine(t *testing.T) (*engine, *fakeWindow, camera.PerspectiveCamera, orbit.Controls) {
	t.Helper()
	fw := &fakeWindow{width: 800, height: 600}
	e := NewEngine(WithWindow(fw)).(*engine)
	cam := camera.NewPerspectiveCamera(90, 800.0/600, camera.WithPosition(0, 0, 10))
	c := orbit.NewControls(cam, orbit.WithSource(e.Input()))
	e.SetControls(c)
	return e, fw, cam, c
}

func TestInputDeliveredOnTick(t *testing.T) {
	e, fw, cam, c := newTestEngine(t)

	fw.Dispatch(input.Event{Type: input.EventPointerDown, Button: common.MouseButtonLeft})
	fw.Dispatch(input.Event{Type: input.EventPointerMove, X: 400})
	if c.State() != orbit.GestureNone {
		t.Fatalf("controls saw input before the tick: %v", c.State())
	}

	var ticked bool
	e.SetTickCallback(func(float32) {
		ticked = true
		if c.State() != orbit.GestureRotate {
			t.Errorf("tick callback ran before input delivery, state = %v", c.State())
		}
	})
	e.tick(1.0 / 60)

	if !ticked {
		t.Error("tick callback not called")
	}
	if pos := cam.Position(); !vecNear(pos, mgl64.Vec3{0, 0, -10}, 1e-6) {
		t.Errorf("position = %v, want (0, 0, -10)", pos)
	}
	if !e.cameraDirty.Load() {
		t.Error("camera not marked dirty after a change")
	}

	e.frame(1.0 / 60)
	if e.cameraDirty.Load() {
		t.Error("frame did not consume the dirty flag")
	}
}

func TestResizeUpdatesAspectAndViewport(t *testing.T) {
	e, fw, cam, _ := newTestEngine(t)
	fw.resize(1000, 500)

	if got := cam.Aspect(); math.Abs(got-2) > 1e-12 {
		t.Errorf("aspect = %v, want 2", got)
	}
	if e.Input().Width() != 1000 || e.Input().Height() != 500 {
		t.Errorf("relay size = %dx%d", e.Input().Width(), e.Input().Height())
	}
}

func TestRenderCallbackAndTickRate(t *testing.T) {
	e := NewEngine().(*engine)
	var frames int
	e.SetRenderCallback(func(float32) { frames++ })
	e.frame(0)
	if frames != 1 {
		t.Errorf("frames = %d, want 1", frames)
	}

	e.SetTickRate(30)
	if e.engineTickRate != 33333333 {
		t.Errorf("tick rate = %v", e.engineTickRate)
	}
	e.SetRenderFrameLimit(0)
	if e.renderFrameLimit != 0 {
		t.Errorf("frame limit = %v", e.renderFrameLimit)
	}

	e.Quit()
	e.Quit()
}
