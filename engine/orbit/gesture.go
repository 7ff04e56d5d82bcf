package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// --- session lifecycle ---

// startSession replaces any live session with a new one of the given kind.
func (c *controlsImpl) startSession(kind GestureKind) {
	c.endSession()
	c.state = kind
	c.session = uuid.New()
	c.lastActivity = c.now()
	c.emit(EventStart)
}

// endSession emits EventEnd for the live session and returns to GestureNone.
// It reports whether a session was live.
func (c *controlsImpl) endSession() bool {
	if c.state == GestureNone {
		return false
	}
	c.emit(EventEnd)
	c.state = GestureNone
	c.session = uuid.Nil
	return true
}

// expireSession ends a session that has been silent for longer than
// Config.SessionTimeout, recovering from a release event that never arrived.
func (c *controlsImpl) expireSession() {
	if c.cfg.SessionTimeout <= 0 || c.state == GestureNone {
		return
	}
	if idle := c.now().Sub(c.lastActivity); idle >= c.cfg.SessionTimeout {
		c.logger.Printf("[OrbitControls] %s session %s idle for %v, ending it", c.state, c.session, idle)
		c.endSession()
	}
}

// --- Controls gesture methods ---

func (c *controlsImpl) BeginRotate(x, y float64) {
	if !c.cfg.Enabled || !c.cfg.EnableRotate {
		return
	}
	c.rotateStart = mgl64.Vec2{x, y}
	c.startSession(GestureRotate)
}

func (c *controlsImpl) BeginDolly(x, y float64) {
	if !c.cfg.Enabled || !c.cfg.EnableZoom {
		return
	}
	c.dollyStart = mgl64.Vec2{x, y}
	c.startSession(GestureDolly)
}

func (c *controlsImpl) BeginPan(x, y float64) {
	if !c.cfg.Enabled || !c.cfg.EnablePan {
		return
	}
	c.panStart = mgl64.Vec2{x, y}
	c.startSession(GesturePan)
}

func (c *controlsImpl) BeginTouch(points []mgl64.Vec2) {
	if !c.cfg.Enabled {
		return
	}
	switch len(points) {
	case 1:
		if !c.cfg.EnableRotate {
			return
		}
		c.rotateStart = points[0]
		c.startSession(GestureTouchRotate)
	case 2:
		if !c.cfg.EnableZoom {
			return
		}
		c.beginDollyTouch(points[0], points[1])
		c.startSession(GestureTouchDolly)
	case 3:
		if !c.cfg.EnablePan {
			return
		}
		c.panStart = points[0]
		c.startSession(GestureTouchPan)
	default:
		c.endSession()
	}
}

func (c *controlsImpl) MoveRotate(x, y float64) {
	if !c.cfg.Enabled || !c.cfg.EnableRotate || c.state != GestureRotate {
		return
	}
	c.rotateTo(mgl64.Vec2{x, y})
}

func (c *controlsImpl) MoveDolly(x, y float64) {
	if !c.cfg.Enabled || !c.cfg.EnableZoom || c.state != GestureDolly {
		return
	}
	end := mgl64.Vec2{x, y}
	delta := end.Sub(c.dollyStart)
	if delta.Y() > 0 {
		c.dollyIn(c.zoomScale())
	} else if delta.Y() < 0 {
		c.dollyOut(c.zoomScale())
	}
	c.dollyStart = end
	c.lastActivity = c.now()
}

func (c *controlsImpl) MovePan(x, y float64) {
	if !c.cfg.Enabled || !c.cfg.EnablePan || c.state != GesturePan {
		return
	}
	c.panTo(mgl64.Vec2{x, y})
}

func (c *controlsImpl) MoveTouch(points []mgl64.Vec2) {
	if !c.cfg.Enabled {
		return
	}
	switch len(points) {
	case 1:
		if !c.cfg.EnableRotate || c.state != GestureTouchRotate {
			return
		}
		c.rotateTo(points[0])
	case 2:
		if !c.cfg.EnableZoom || c.state != GestureTouchDolly {
			return
		}
		c.moveDollyTouch(points[0], points[1])
	case 3:
		if !c.cfg.EnablePan || c.state != GestureTouchPan {
			return
		}
		c.panTo(points[0])
	}
}

func (c *controlsImpl) EndGesture() {
	if !c.cfg.Enabled {
		return
	}
	c.endSession()
}

func (c *controlsImpl) Wheel(deltaY float64) {
	if !c.cfg.Enabled || !c.cfg.EnableZoom {
		return
	}
	if c.state != GestureNone && c.state != GestureRotate {
		return
	}

	if deltaY < 0 {
		c.dollyOut(c.zoomScale())
	} else if deltaY > 0 {
		c.dollyIn(c.zoomScale())
	}

	// Each wheel tick is its own micro-interaction with its own session id.
	tick := uuid.New()
	c.listeners.emit(Event{Type: EventStart, Session: tick})
	c.listeners.emit(Event{Type: EventEnd, Session: tick})
}

func (c *controlsImpl) KeyPan(dir PanDirection) {
	if !c.cfg.Enabled || !c.cfg.EnablePan {
		return
	}
	speed := c.cfg.KeyPanSpeed
	switch dir {
	case PanUp:
		c.pan(0, speed)
	case PanBottom:
		c.pan(0, -speed)
	case PanLeft:
		c.pan(speed, 0)
	case PanRight:
		c.pan(-speed, 0)
	}
}

func (c *controlsImpl) KeyDown(key int) {
	if !c.cfg.Enabled || !c.cfg.EnableKeys || !c.cfg.EnablePan {
		return
	}
	switch key {
	case c.cfg.Keys.Up:
		c.KeyPan(PanUp)
	case c.cfg.Keys.Bottom:
		c.KeyPan(PanBottom)
	case c.cfg.Keys.Left:
		c.KeyPan(PanLeft)
	case c.cfg.Keys.Right:
		c.KeyPan(PanRight)
	}
}

func (c *controlsImpl) HandleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventPointerDown:
		switch ev.Button {
		case c.cfg.MouseButtons.Orbit:
			c.BeginRotate(ev.X, ev.Y)
		case c.cfg.MouseButtons.Zoom:
			c.BeginDolly(ev.X, ev.Y)
		case c.cfg.MouseButtons.Pan:
			c.BeginPan(ev.X, ev.Y)
		}
	case input.EventPointerMove:
		switch c.state {
		case GestureRotate:
			c.MoveRotate(ev.X, ev.Y)
		case GestureDolly:
			c.MoveDolly(ev.X, ev.Y)
		case GesturePan:
			c.MovePan(ev.X, ev.Y)
		}
	case input.EventPointerUp:
		if c.state.IsPointer() {
			c.EndGesture()
		}
	case input.EventWheel:
		c.Wheel(ev.DeltaY)
	case input.EventTouchStart:
		c.BeginTouch(touchPoints(ev.Touches))
	case input.EventTouchMove:
		c.MoveTouch(touchPoints(ev.Touches))
	case input.EventTouchEnd:
		if c.state.IsTouch() {
			c.EndGesture()
		}
	case input.EventKeyDown:
		c.KeyDown(ev.Key)
	}
}

// --- sample handling shared by mouse and touch ---

// rotateTo converts the pixel delta since the last sample into angles: a drag
// across the full width is one full turn, and across the full height one
// attempted full turn (limited by the polar clamp).
func (c *controlsImpl) rotateTo(p mgl64.Vec2) {
	width, height := c.viewport()
	if width <= 0 || height <= 0 {
		return
	}
	delta := p.Sub(c.rotateStart)
	c.rotateLeft(2 * math.Pi * delta.X() / width * c.cfg.RotateSpeed)
	c.rotateUp(2 * math.Pi * delta.Y() / height * c.cfg.RotateSpeed)
	c.rotateStart = p
	c.lastActivity = c.now()
}

func (c *controlsImpl) panTo(p mgl64.Vec2) {
	delta := p.Sub(c.panStart)
	c.pan(delta.X(), delta.Y())
	c.panStart = p
	c.lastActivity = c.now()
}

func (c *controlsImpl) beginDollyTouch(p0, p1 mgl64.Vec2) {
	c.dollyStart = mgl64.Vec2{0, p0.Sub(p1).Len()}
}

// moveDollyTouch dollies toward the target while the fingers spread apart.
func (c *controlsImpl) moveDollyTouch(p0, p1 mgl64.Vec2) {
	end := mgl64.Vec2{0, p0.Sub(p1).Len()}
	delta := end.Sub(c.dollyStart)
	if delta.Y() > 0 {
		c.dollyOut(c.zoomScale())
	} else if delta.Y() < 0 {
		c.dollyIn(c.zoomScale())
	}
	c.dollyStart = end
	c.lastActivity = c.now()
}

func touchPoints(touches []input.Touch) []mgl64.Vec2 {
	points := make([]mgl64.Vec2, len(touches))
	for i, t := range touches {
		points[i] = mgl64.Vec2{t.X, t.Y}
	}
	return points
}
