package collider

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-3

type translate rl.Vector3

func (t translate) LocalToWorldPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(p, rl.Vector3(t))
}

func assertVec(t *testing.T, want, got rl.Vector3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, tol, msgAndArgs...)
}

func floorSquare() [4]rl.Vector3 {
	return [4]rl.Vector3{
		{X: -1, Z: -1},
		{X: -1, Z: 1},
		{X: 1, Z: 1},
		{X: 1, Z: -1},
	}
}

func mustPlane(t *testing.T, center, normal, trimMin, trimMax rl.Vector3) *Plane {
	t.Helper()
	p, err := NewPlane(center, normal, trimMin, trimMax)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	return p
}
