package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera defines the scene camera moved by camera controls.
// A Camera owns its world-space pose (position + orientation) and projection state.
// Projection-specific behaviour is exposed through the PerspectiveCamera and
// OrthographicCamera capability interfaces; callers type-switch on those rather
// than on concrete types.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space camera position
	Position() mgl64.Vec3

	// SetPosition sets the camera's world-space position. Orientation is unchanged.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl64.Vec3)

	// Up returns the camera's up direction, used as the orbit axis.
	//
	// Returns:
	//   - mgl64.Vec3: up vector (not necessarily normalized)
	Up() mgl64.Vec3

	// SetUp sets the camera's up direction.
	//
	// Parameters:
	//   - up: up vector
	SetUp(up mgl64.Vec3)

	// LookAt rotates the camera so its -Z axis points at target, keeping Up() as the up hint.
	//
	// Parameters:
	//   - target: world-space point to face
	LookAt(target mgl64.Vec3)

	// Orientation returns the camera's world-space rotation.
	//
	// Returns:
	//   - mgl64.Quat: unit quaternion
	Orientation() mgl64.Quat

	// Matrix returns the camera's world (model) matrix. Column 0 is the local X
	// (right) axis and column 1 the local Y (up) axis.
	//
	// Returns:
	//   - mgl64.Mat4: world matrix
	Matrix() mgl64.Mat4

	// Zoom returns the projection zoom factor (1 = no zoom).
	//
	// Returns:
	//   - float64: zoom factor
	Zoom() float64

	// SetZoom sets the projection zoom factor. Call UpdateProjectionMatrix afterwards.
	//
	// Parameters:
	//   - zoom: zoom factor (> 0)
	SetZoom(zoom float64)

	// UpdateProjectionMatrix recomputes the projection matrix from the current
	// projection parameters and zoom.
	UpdateProjectionMatrix()

	// ProjectionMatrix returns the last computed projection matrix.
	//
	// Returns:
	//   - mgl64.Mat4: projection matrix
	ProjectionMatrix() mgl64.Mat4

	// ViewMatrix returns the inverse of the world matrix.
	//
	// Returns:
	//   - mgl64.Mat4: view matrix
	ViewMatrix() mgl64.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
	//
	// Returns:
	//   - mgl64.Mat4: combined view-projection matrix
	ViewProjectionMatrix() mgl64.Mat4
}

// PerspectiveCamera is a Camera with a perspective projection.
type PerspectiveCamera interface {
	Camera

	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float64: field of view in degrees
	Fov() float64

	// SetFov sets the vertical field of view in degrees. Call UpdateProjectionMatrix afterwards.
	//
	// Parameters:
	//   - fov: field of view in degrees
	SetFov(fov float64)

	// Aspect returns the viewport aspect ratio (width / height).
	//
	// Returns:
	//   - float64: the aspect ratio
	Aspect() float64

	// SetAspect sets the aspect ratio. Call UpdateProjectionMatrix afterwards.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float64)
}

// OrthographicCamera is a Camera with an orthographic projection.
type OrthographicCamera interface {
	Camera

	// Frustum returns the view volume extents in camera space, before zoom is applied.
	//
	// Returns:
	//   - left, right, top, bottom: frustum extents
	Frustum() (left, right, top, bottom float64)

	// SetFrustum sets the view volume extents. Call UpdateProjectionMatrix afterwards.
	//
	// Parameters:
	//   - left, right, top, bottom: frustum extents
	SetFrustum(left, right, top, bottom float64)
}

// cameraBase holds the pose and projection state shared by both camera kinds.
type cameraBase struct {
	mu *sync.Mutex

	position    mgl64.Vec3
	up          mgl64.Vec3
	orientation mgl64.Quat

	zoom float64
	near float64
	far  float64

	projectionMatrix mgl64.Mat4

	// project builds the kind-specific projection matrix. Caller must hold the mutex.
	project func() mgl64.Mat4
}

func newCameraBase() cameraBase {
	return cameraBase{
		mu:               &sync.Mutex{},
		position:         mgl64.Vec3{0, 0, 0},
		up:               mgl64.Vec3{0, 1, 0},
		orientation:      mgl64.QuatIdent(),
		zoom:             1,
		near:             0.1,
		far:              2000,
		projectionMatrix: mgl64.Ident4(),
	}
}

func (c *cameraBase) Position() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraBase) SetPosition(p mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraBase) Up() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraBase) SetUp(up mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraBase) LookAt(target mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orientation = lookRotation(c.position, target, c.up)
}

func (c *cameraBase) Orientation() mgl64.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *cameraBase) Matrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldMatrix()
}

func (c *cameraBase) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraBase) SetZoom(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
}

func (c *cameraBase) UpdateProjectionMatrix() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project != nil {
		c.projectionMatrix = c.project()
	}
}

func (c *cameraBase) ProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraBase) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldMatrix().Inv()
}

func (c *cameraBase) ViewProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix.Mul4(c.worldMatrix().Inv())
}

// worldMatrix composes translation and rotation. Caller must hold the mutex.
func (c *cameraBase) worldMatrix() mgl64.Mat4 {
	return mgl64.Translate3D(c.position.X(), c.position.Y(), c.position.Z()).Mul4(c.orientation.Mat4())
}

// lookRotation returns the rotation whose -Z axis points from eye to target with
// the given up hint. When eye and target coincide the camera keeps facing -Z; when
// up is parallel to the view direction the forward axis is nudged so the basis
// stays well defined.
func lookRotation(eye, target, up mgl64.Vec3) mgl64.Quat {
	z := eye.Sub(target)
	if z.Dot(z) == 0 {
		z = mgl64.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Dot(x) == 0 {
		if math.Abs(up.Z()) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize()
}
