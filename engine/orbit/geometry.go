package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

// autoRotationAngle is the per-commit step: one revolution every
// 60*AutoRotateSpeed seconds at 60 commits per second. A zero speed never
// completes a revolution, so it does not rotate.
func (c *controlsImpl) autoRotationAngle() float64 {
	if c.cfg.AutoRotateSpeed == 0 {
		return 0
	}
	return 2 * math.Pi / 60 / 60 / c.cfg.AutoRotateSpeed
}

func (c *controlsImpl) zoomScale() float64 {
	return math.Pow(0.95, c.cfg.ZoomSpeed)
}

func (c *controlsImpl) rotateLeft(angle float64) {
	c.sphericalDelta.Theta -= angle
}

func (c *controlsImpl) rotateUp(angle float64) {
	c.sphericalDelta.Phi -= angle
}

// panLeft moves the target along the camera's local -X axis.
func (c *controlsImpl) panLeft(distance float64, cameraMatrix mgl64.Mat4) {
	v := cameraMatrix.Col(0).Vec3().Mul(-distance)
	c.panOffset = c.panOffset.Add(v)
}

// panUp moves the target along the camera's local +Y axis.
func (c *controlsImpl) panUp(distance float64, cameraMatrix mgl64.Mat4) {
	v := cameraMatrix.Col(1).Vec3().Mul(distance)
	c.panOffset = c.panOffset.Add(v)
}

// pan converts a pixel delta (right and down positive) into a world-space
// target offset so that the scene under the pointer follows it.
func (c *controlsImpl) pan(deltaX, deltaY float64) {
	width, height := c.viewport()

	switch cam := c.cam.(type) {
	case camera.PerspectiveCamera:
		if height <= 0 {
			return
		}
		// Half the fov spans center to top of screen; perspective cameras are
		// height-driven, so both axes normalize by height.
		targetDistance := cam.Position().Sub(c.target).Len()
		targetDistance *= math.Tan(mgl64.DegToRad(cam.Fov() / 2))

		m := cam.Matrix()
		c.panLeft(2*deltaX*targetDistance/height, m)
		c.panUp(2*deltaY*targetDistance/height, m)
	case camera.OrthographicCamera:
		if width <= 0 || height <= 0 {
			return
		}
		left, right, top, bottom := cam.Frustum()
		zoom := cam.Zoom()

		m := cam.Matrix()
		c.panLeft(deltaX*(right-left)/zoom/width, m)
		c.panUp(deltaY*(top-bottom)/zoom/height, m)
	default:
		c.logger.Printf("[OrbitControls] WARNING: unsupported camera type %T - pan disabled", c.cam)
		c.cfg.EnablePan = false
	}
}

func (c *controlsImpl) dollyIn(dollyScale float64) {
	switch cam := c.cam.(type) {
	case camera.PerspectiveCamera:
		c.scale /= dollyScale
	case camera.OrthographicCamera:
		c.setPendingZoom(c.currentZoom(cam) * dollyScale)
	default:
		c.logger.Printf("[OrbitControls] WARNING: unsupported camera type %T - dolly/zoom disabled", c.cam)
		c.cfg.EnableZoom = false
	}
}

func (c *controlsImpl) dollyOut(dollyScale float64) {
	switch cam := c.cam.(type) {
	case camera.PerspectiveCamera:
		c.scale *= dollyScale
	case camera.OrthographicCamera:
		c.setPendingZoom(c.currentZoom(cam) / dollyScale)
	default:
		c.logger.Printf("[OrbitControls] WARNING: unsupported camera type %T - dolly/zoom disabled", c.cam)
		c.cfg.EnableZoom = false
	}
}

// currentZoom is the zoom the next commit will apply: the pending value if a
// dolly already happened this frame, else the camera's own zoom.
func (c *controlsImpl) currentZoom(cam camera.OrthographicCamera) float64 {
	if c.hasPendingZoom {
		return c.pendingZoom
	}
	return cam.Zoom()
}

func (c *controlsImpl) setPendingZoom(zoom float64) {
	c.pendingZoom = common.Clamp(zoom, c.cfg.MinZoom, c.cfg.MaxZoom)
	c.hasPendingZoom = true
}
