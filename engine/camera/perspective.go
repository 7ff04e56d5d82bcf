package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type perspectiveCamera struct {
	cameraBase

	fov    float64 // degrees
	aspect float64
}

var _ PerspectiveCamera = &perspectiveCamera{}

// NewPerspectiveCamera creates a perspective camera at the origin facing -Z.
//
// Parameters:
//   - fov: vertical field of view in degrees
//   - aspect: viewport aspect ratio (width / height)
//   - options: functional options for the shared camera state
//
// Returns:
//   - PerspectiveCamera: the newly created camera
func NewPerspectiveCamera(fov, aspect float64, options ...CameraBuilderOption) PerspectiveCamera {
	c := &perspectiveCamera{
		cameraBase: newCameraBase(),
		fov:        fov,
		aspect:     aspect,
	}
	c.project = c.projection
	for _, option := range options {
		option(&c.cameraBase)
	}
	c.UpdateProjectionMatrix()
	return c
}

func (c *perspectiveCamera) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *perspectiveCamera) SetFov(fov float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
}

func (c *perspectiveCamera) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *perspectiveCamera) SetAspect(aspect float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

// projection narrows the frustum by zoom rather than changing the fov.
// Caller must hold the mutex.
func (c *perspectiveCamera) projection() mgl64.Mat4 {
	zoom := c.zoom
	if zoom <= 0 {
		zoom = 1
	}
	top := c.near * math.Tan(mgl64.DegToRad(c.fov)/2) / zoom
	halfWidth := c.aspect * top
	return mgl64.Frustum(-halfWidth, halfWidth, -top, top, c.near, c.far)
}
