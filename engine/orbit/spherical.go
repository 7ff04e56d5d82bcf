package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// EPS is the threshold used by make-safe polar clamping and change detection.
const EPS = 0.000001

// Spherical is a camera offset in spherical coordinates around a +Y up axis.
// Phi is the polar angle measured from +Y, Theta the azimuthal angle around +Y
// measured from +Z towards +X.
type Spherical struct {
	Radius float64
	Phi    float64
	Theta  float64
}

// SetFromVec3 converts a cartesian offset. A zero vector maps to (0, 0, 0).
func (s *Spherical) SetFromVec3(v mgl64.Vec3) {
	s.Radius = v.Len()
	if s.Radius == 0 {
		s.Theta = 0
		s.Phi = 0
		return
	}
	s.Theta = math.Atan2(v.X(), v.Z())
	s.Phi = math.Acos(common.Clamp(v.Y()/s.Radius, -1, 1))
}

// Vec3 converts back to a cartesian offset.
func (s Spherical) Vec3() mgl64.Vec3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return mgl64.Vec3{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}
}

// MakeSafe keeps Phi strictly inside (EPS, π-EPS) so the up vector never
// lines up with the view direction. Out-of-range values land on the nearest
// representable angle inside the open interval.
func (s *Spherical) MakeSafe() {
	s.Phi = common.Clamp(s.Phi, minSafePhi, maxSafePhi)
}

var (
	minSafePhi = math.Nextafter(EPS, math.Pi)
	maxSafePhi = math.Nextafter(math.Pi-EPS, 0)
)
