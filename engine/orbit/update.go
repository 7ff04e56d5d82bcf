package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// worldUp is the canonical orbit axis the camera's own up vector is rotated onto.
var worldUp = mgl64.Vec3{0, 1, 0}

func (c *controlsImpl) Update() bool {
	c.expireSession()

	// Rotate the offset into a frame where the camera's up vector is +Y.
	quat := upToWorld(c.cam.Up())
	quatInverse := quat.Inverse()

	offset := quat.Rotate(c.cam.Position().Sub(c.target))
	c.spherical.SetFromVec3(offset)

	if c.cfg.AutoRotate && c.state == GestureNone {
		c.rotateLeft(c.autoRotationAngle())
	}

	c.spherical.Theta += c.sphericalDelta.Theta
	c.spherical.Phi += c.sphericalDelta.Phi

	c.spherical.Theta = common.Clamp(c.spherical.Theta, c.cfg.MinAzimuthAngle, c.cfg.MaxAzimuthAngle)
	c.spherical.Phi = common.Clamp(c.spherical.Phi, c.cfg.MinPolarAngle, c.cfg.MaxPolarAngle)
	c.spherical.MakeSafe()

	c.spherical.Radius *= c.scale
	c.spherical.Radius = common.Clamp(c.spherical.Radius, c.cfg.MinDistance, c.cfg.MaxDistance)

	c.target = c.target.Add(c.panOffset)

	if c.hasPendingZoom {
		c.cam.SetZoom(c.pendingZoom)
		c.cam.UpdateProjectionMatrix()
		c.hasPendingZoom = false
		c.zoomChanged = true
	}

	offset = quatInverse.Rotate(c.spherical.Vec3())
	c.cam.SetPosition(c.target.Add(offset))
	c.cam.LookAt(c.target)

	if c.cfg.EnableDamping {
		c.sphericalDelta.Theta *= 1 - c.cfg.DampingFactor
		c.sphericalDelta.Phi *= 1 - c.cfg.DampingFactor
	} else {
		c.sphericalDelta = Spherical{}
	}

	c.scale = 1
	c.panOffset = mgl64.Vec3{}

	// Change condition: min(displacement, rotation angle)^2 > EPS, using the
	// small-angle approximation cos(x/2) = 1 - x^2/8. q and -q are the same
	// orientation, hence the absolute dot product.
	position := c.cam.Position()
	orientation := c.cam.Orientation()
	moved := c.lastPosition.Sub(position)
	if c.zoomChanged ||
		moved.Dot(moved) > EPS ||
		8*(1-math.Abs(c.lastQuaternion.Dot(orientation))) > EPS {

		c.lastPosition = position
		c.lastQuaternion = orientation
		c.zoomChanged = false
		c.emit(EventChange)
		return true
	}

	return false
}

// upToWorld returns the rotation taking up onto worldUp. The common case of a
// +Y up vector short-circuits to identity.
func upToWorld(up mgl64.Vec3) mgl64.Quat {
	up = up.Normalize()
	if up.ApproxEqualThreshold(worldUp, 1e-12) {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(up, worldUp)
}
