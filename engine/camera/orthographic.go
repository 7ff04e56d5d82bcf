package camera

import "github.com/go-gl/mathgl/mgl64"

type orthographicCamera struct {
	cameraBase

	left   float64
	right  float64
	top    float64
	bottom float64
}

var _ OrthographicCamera = &orthographicCamera{}

// NewOrthographicCamera creates an orthographic camera at the origin facing -Z.
//
// Parameters:
//   - left, right, top, bottom: view volume extents in camera space
//   - options: functional options for the shared camera state
//
// Returns:
//   - OrthographicCamera: the newly created camera
func NewOrthographicCamera(left, right, top, bottom float64, options ...CameraBuilderOption) OrthographicCamera {
	c := &orthographicCamera{
		cameraBase: newCameraBase(),
		left:       left,
		right:      right,
		top:        top,
		bottom:     bottom,
	}
	c.project = c.projection
	for _, option := range options {
		option(&c.cameraBase)
	}
	c.UpdateProjectionMatrix()
	return c
}

func (c *orthographicCamera) Frustum() (left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.top, c.bottom
}

func (c *orthographicCamera) SetFrustum(left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.right, c.top, c.bottom = left, right, top, bottom
}

// projection shrinks the view volume around its center by zoom.
// Caller must hold the mutex.
func (c *orthographicCamera) projection() mgl64.Mat4 {
	zoom := c.zoom
	if zoom <= 0 {
		zoom = 1
	}
	dx := (c.right - c.left) / (2 * zoom)
	dy := (c.top - c.bottom) / (2 * zoom)
	cx := (c.right + c.left) / 2
	cy := (c.top + c.bottom) / 2
	return mgl64.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.near, c.far)
}
