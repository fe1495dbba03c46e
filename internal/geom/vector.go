package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-6

var (
	Up   = rl.Vector3{Y: 1}
	Down = rl.Vector3{Y: -1}
)

// SafeNormalize returns v scaled to unit length, or the zero vector when v is
// too short to have a direction.
func SafeNormalize(v rl.Vector3) rl.Vector3 {
	l := rl.Vector3Length(v)
	if l < Epsilon {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(v, 1/l)
}

// IsZero reports whether v has no usable direction.
func IsZero(v rl.Vector3) bool {
	return rl.Vector3DotProduct(v, v) < Epsilon*Epsilon
}

// NearlyEqual compares two vectors component-wise within tol.
func NearlyEqual(a, b rl.Vector3, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol &&
		math32.Abs(a.Y-b.Y) <= tol &&
		math32.Abs(a.Z-b.Z) <= tol
}

func minVec(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y), Z: math32.Min(a.Z, b.Z)}
}

func maxVec(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y), Z: math32.Max(a.Z, b.Z)}
}

func axis(v rl.Vector3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func setAxis(v *rl.Vector3, i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		v.Z = f
	}
}
