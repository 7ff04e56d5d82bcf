// Package orbit implements orbit camera controls: a gesture recognizer that
// turns pointer, touch, wheel and key input into pending rotate/dolly/pan
// deltas, and a per-frame commit that applies them to a camera.Camera in
// spherical coordinates around a target point, honouring distance, zoom and
// angle limits and optional damping.
package orbit

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// Controls orbits, dollies and pans a camera around a target point.
//
// Gesture methods only accumulate pending deltas; the camera is moved
// exclusively by Update, which the host calls once per frame. Controls are
// single-threaded: every method must be called from the goroutine that runs
// the render loop.
type Controls interface {
	// Update commits pending deltas to the camera, applies limits and damping,
	// and emits EventChange when the pose moved by more than EPS.
	//
	// Returns:
	//   - bool: true if the camera changed
	Update() bool

	// BeginRotate starts a mouse rotate session at the given surface coordinates.
	// Ignored when the controls or rotation are disabled.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	BeginRotate(x, y float64)

	// BeginDolly starts a mouse dolly session. Ignored when zoom is disabled.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	BeginDolly(x, y float64)

	// BeginPan starts a mouse pan session. Ignored when panning is disabled.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	BeginPan(x, y float64)

	// BeginTouch starts a touch session whose kind is fixed by the finger count:
	// one finger rotates, two dolly, three pan; any other count ends the session.
	//
	// Parameters:
	//   - points: every active touch point, in pixels
	BeginTouch(points []mgl64.Vec2)

	// MoveRotate feeds a pointer sample to an active rotate session.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	MoveRotate(x, y float64)

	// MoveDolly feeds a pointer sample to an active dolly session.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	MoveDolly(x, y float64)

	// MovePan feeds a pointer sample to an active pan session.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	MovePan(x, y float64)

	// MoveTouch feeds touch points to the active touch session. Samples whose
	// finger count does not match the session kind are ignored.
	//
	// Parameters:
	//   - points: every active touch point, in pixels
	MoveTouch(points []mgl64.Vec2)

	// EndGesture ends the active session, if any, and emits EventEnd.
	EndGesture()

	// Wheel applies one dolly step in the direction of deltaY (negative dollies
	// toward the target). Allowed only while no gesture or a rotate gesture is
	// active; emits EventStart and EventEnd around the step.
	//
	// Parameters:
	//   - deltaY: wheel delta, DOM sign convention
	Wheel(deltaY float64)

	// KeyPan pans by Config.KeyPanSpeed pixels in the given screen direction.
	//
	// Parameters:
	//   - dir: pan direction
	KeyPan(dir PanDirection)

	// KeyDown maps a key code through Config.Keys to KeyPan.
	//
	// Parameters:
	//   - key: key code
	KeyDown(key int)

	// HandleEvent routes a decoded input event to the gesture methods using
	// Config.MouseButtons, the touch finger count and Config.Keys.
	//
	// Parameters:
	//   - ev: the decoded event
	HandleEvent(ev input.Event)

	// State returns the active gesture kind.
	//
	// Returns:
	//   - GestureKind: active gesture, GestureNone when idle
	State() GestureKind

	// Session returns the id of the active gesture session, uuid.Nil when idle.
	//
	// Returns:
	//   - uuid.UUID: session id
	Session() uuid.UUID

	// Target returns the point the camera orbits.
	//
	// Returns:
	//   - mgl64.Vec3: world-space target
	Target() mgl64.Vec3

	// SetTarget moves the orbit target. The camera follows on the next Update.
	//
	// Parameters:
	//   - target: world-space target
	SetTarget(target mgl64.Vec3)

	// PolarAngle returns the polar angle committed by the last Update.
	//
	// Returns:
	//   - float64: radians from the up axis
	PolarAngle() float64

	// AzimuthalAngle returns the azimuthal angle committed by the last Update.
	//
	// Returns:
	//   - float64: radians around the up axis
	AzimuthalAngle() float64

	// PendingRotation returns the rotation not yet committed (or still damping).
	//
	// Returns:
	//   - azimuthal, polar: pending deltas in radians
	PendingRotation() (azimuthal, polar float64)

	// Config returns the live settings. Changes take effect on the next gesture or Update.
	//
	// Returns:
	//   - *Config: the settings
	Config() *Config

	// Camera returns the controlled camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// SetSource detaches the controls from their current input.Source, if any,
	// and subscribes them to src.
	//
	// Parameters:
	//   - src: the new source (or nil to detach)
	SetSource(src input.Source)

	// SetViewport sets the surface size used to scale pixel deltas when no
	// input.Source is attached.
	//
	// Parameters:
	//   - width, height: surface size in pixels
	SetViewport(width, height int)

	// AddListener registers a change-notification listener.
	//
	// Parameters:
	//   - fn: the listener
	//
	// Returns:
	//   - func(): removes the listener; safe to call more than once
	AddListener(fn Listener) func()

	// SaveState records target, camera position and zoom as the Reset baseline.
	SaveState()

	// Reset restores the SaveState baseline, drops pending deltas and any
	// active session, and commits.
	Reset()

	// Dispose detaches the controls from their input.Source. Safe to call more than once.
	Dispose()
}

// controlsImpl is the single implementation of Controls.
type controlsImpl struct {
	cam    camera.Camera
	cfg    Config
	logger *log.Logger
	now    func() time.Time

	source       input.Source
	subscription input.Subscription
	width        int
	height       int

	target mgl64.Vec3

	// Committed spherical coordinates and the pending changes for the next commit.
	spherical      Spherical
	sphericalDelta Spherical
	panOffset      mgl64.Vec3
	scale          float64
	pendingZoom    float64
	hasPendingZoom bool
	zoomChanged    bool

	// Active gesture session.
	state        GestureKind
	session      uuid.UUID
	lastActivity time.Time
	rotateStart  mgl64.Vec2
	panStart     mgl64.Vec2
	dollyStart   mgl64.Vec2

	// Pose recorded by the last commit that emitted EventChange.
	lastPosition   mgl64.Vec3
	lastQuaternion mgl64.Quat

	// Reset baseline.
	target0   mgl64.Vec3
	position0 mgl64.Vec3
	zoom0     float64

	listeners listeners
}

var _ Controls = &controlsImpl{}

// NewControls creates controls for cam, records the initial pose as the reset
// baseline and performs an initial commit so the camera faces the target.
//
// Parameters:
//   - cam: the camera to move
//   - options: functional options to configure the controls
//
// Returns:
//   - Controls: the newly created controls
func NewControls(cam camera.Camera, options ...ControlsOption) Controls {
	c := &controlsImpl{
		cam:            cam,
		cfg:            DefaultConfig(),
		logger:         log.Default(),
		now:            time.Now,
		scale:          1,
		state:          GestureNone,
		lastQuaternion: mgl64.QuatIdent(),
	}

	for _, option := range options {
		option(c)
	}

	c.SetSource(c.source)

	c.SaveState()
	c.Update()
	return c
}

func (c *controlsImpl) State() GestureKind {
	return c.state
}

func (c *controlsImpl) Session() uuid.UUID {
	return c.session
}

func (c *controlsImpl) Target() mgl64.Vec3 {
	return c.target
}

func (c *controlsImpl) SetTarget(target mgl64.Vec3) {
	c.target = target
}

func (c *controlsImpl) PolarAngle() float64 {
	return c.spherical.Phi
}

func (c *controlsImpl) AzimuthalAngle() float64 {
	return c.spherical.Theta
}

func (c *controlsImpl) PendingRotation() (azimuthal, polar float64) {
	return c.sphericalDelta.Theta, c.sphericalDelta.Phi
}

func (c *controlsImpl) Config() *Config {
	return &c.cfg
}

func (c *controlsImpl) Camera() camera.Camera {
	return c.cam
}

func (c *controlsImpl) SetSource(src input.Source) {
	c.Dispose()
	c.source = src
	if src != nil {
		c.subscription = src.Subscribe(c.HandleEvent)
	}
}

func (c *controlsImpl) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

func (c *controlsImpl) AddListener(fn Listener) func() {
	return c.listeners.add(fn)
}

func (c *controlsImpl) SaveState() {
	c.target0 = c.target
	c.position0 = c.cam.Position()
	c.zoom0 = c.cam.Zoom()
}

func (c *controlsImpl) Reset() {
	c.endSession()

	c.target = c.target0
	c.cam.SetPosition(c.position0)
	c.cam.SetZoom(c.zoom0)
	c.cam.UpdateProjectionMatrix()

	c.sphericalDelta = Spherical{}
	c.panOffset = mgl64.Vec3{}
	c.scale = 1
	c.hasPendingZoom = false

	c.emit(EventChange)
	c.Update()
}

func (c *controlsImpl) Dispose() {
	if c.subscription != nil {
		c.subscription.Unsubscribe()
		c.subscription = nil
	}
}

// viewport returns the surface size used to scale pixel deltas. The attached
// source wins over SetViewport when it reports a usable size.
func (c *controlsImpl) viewport() (width, height float64) {
	if c.source != nil && c.source.Width() > 0 && c.source.Height() > 0 {
		return float64(c.source.Width()), float64(c.source.Height())
	}
	return float64(c.width), float64(c.height)
}

func (c *controlsImpl) emit(t EventType) {
	c.listeners.emit(Event{Type: t, Session: c.session})
}
