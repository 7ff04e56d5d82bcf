package camera

import "github.com/go-gl/mathgl/mgl64"

// CameraBuilderOption is a functional option for the state shared by every camera kind.
type CameraBuilderOption func(*cameraBase)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera position
func WithPosition(x, y, z float64) CameraBuilderOption {
	return func(c *cameraBase) {
		c.position = mgl64.Vec3{x, y, z}
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float64) CameraBuilderOption {
	return func(c *cameraBase) {
		c.up = mgl64.Vec3{x, y, z}
	}
}

// WithZoom sets the initial projection zoom factor.
//
// Parameters:
//   - zoom: zoom factor (1 = no zoom)
//
// Returns:
//   - CameraBuilderOption: a function that sets the zoom
func WithZoom(zoom float64) CameraBuilderOption {
	return func(c *cameraBase) {
		c.zoom = zoom
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float64) CameraBuilderOption {
	return func(c *cameraBase) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float64) CameraBuilderOption {
	return func(c *cameraBase) {
		c.far = far
	}
}
