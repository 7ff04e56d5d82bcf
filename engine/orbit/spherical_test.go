package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
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

func TestSphericalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    mgl64.Vec3
	}{
		{"positive z", mgl64.Vec3{0, 0, 10}},
		{"positive x", mgl64.Vec3{3, 0, 0}},
		{"above", mgl64.Vec3{1, 5, 1}},
		{"below", mgl64.Vec3{-2, -4, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Spherical
			s.SetFromVec3(tt.v)
			if got := s.Vec3(); !vecNear(got, tt.v, 1e-9) {
				t.Errorf("round trip of %v = %v", tt.v, got)
			}
		})
	}
}

func TestSphericalAngles(t *testing.T) {
	var s Spherical
	s.SetFromVec3(mgl64.Vec3{0, 0, 10})
	if s.Radius != 10 || s.Theta != 0 || math.Abs(s.Phi-math.Pi/2) > 1e-12 {
		t.Errorf("+Z offset = %+v, want radius 10, theta 0, phi π/2", s)
	}

	s.SetFromVec3(mgl64.Vec3{5, 0, 0})
	if math.Abs(s.Theta-math.Pi/2) > 1e-12 {
		t.Errorf("+X theta = %v, want π/2", s.Theta)
	}

	s.SetFromVec3(mgl64.Vec3{})
	if s != (Spherical{}) {
		t.Errorf("zero offset = %+v, want zero", s)
	}
}

func TestSphericalMakeSafe(t *testing.T) {
	tests := []struct {
		name string
		phi  float64
		want float64
	}{
		{"zero", 0, EPS},
		{"negative", -1, EPS},
		{"exactly EPS", EPS, EPS},
		{"pi", math.Pi, math.Pi - EPS},
		{"exactly pi minus EPS", math.Pi - EPS, math.Pi - EPS},
		{"inside", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Spherical{Radius: 1, Phi: tt.phi}
			s.MakeSafe()
			if math.Abs(s.Phi-tt.want) > 1e-12 {
				t.Errorf("MakeSafe(%v) = %v, want %v", tt.phi, s.Phi, tt.want)
			}
			if s.Phi <= EPS || s.Phi >= math.Pi-EPS {
				t.Errorf("MakeSafe(%v) = %v, not strictly inside (EPS, π-EPS)", tt.phi, s.Phi)
			}
		})
	}
}
