package geom

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
	assert.InDelta(t, want.Z, got.Z, tol, "z")
}

func TestRaySphere(t *testing.T) {
	center := rl.Vector3{X: 100, Y: 100}
	const r = 20

	_, ok := RaySphere(Ray{Dir: rl.Vector3{Y: 1}}, center, r)
	assert.False(t, ok, "vertical ray from origin misses")

	h, ok := RaySphere(Ray{Dir: rl.Vector3{X: 1, Y: 1}}, center, r)
	require.True(t, ok)
	p := (math32.Hypot(100, 100) - r) / math32.Sqrt(2)
	assertVec(t, rl.Vector3{X: p, Y: p}, h.Pos)
	assert.InDelta(t, math32.Hypot(100, 100)-r, h.Dist, tol)

	h, ok = RaySphere(Ray{Pos: rl.Vector3{X: 100}, Dir: rl.Vector3{Y: 1}}, center, r)
	require.True(t, ok)
	assertVec(t, rl.Vector3{X: 100, Y: 80}, h.Pos)
	assertVec(t, rl.Vector3{Y: -1}, h.Normal)
}

func TestRaySphereRejectsInsideAndBehind(t *testing.T) {
	_, ok := RaySphere(Ray{Dir: rl.Vector3{X: 1}}, rl.Vector3{}, 5)
	assert.False(t, ok, "origin inside")

	_, ok = RaySphere(Ray{Pos: rl.Vector3{X: 10}, Dir: rl.Vector3{X: 1}}, rl.Vector3{}, 5)
	assert.False(t, ok, "sphere behind")

	_, ok = RaySphere(Ray{Pos: rl.Vector3{X: -10}}, rl.Vector3{}, 5)
	assert.False(t, ok, "zero direction")
}

func TestRayAABB(t *testing.T) {
	box := NewBoxFromCenter(rl.Vector3{X: 1000, Y: 1000}, rl.Vector3{X: 200, Y: 40, Z: 30})

	tests := []struct {
		name   string
		ray    Ray
		hit    bool
		pos    rl.Vector3
		normal rl.Vector3
	}{
		{"vertical from origin", Ray{Dir: rl.Vector3{Y: 1}}, false, rl.Vector3{}, rl.Vector3{}},
		{"diagonal from far below", Ray{Pos: rl.Vector3{X: 1000}, Dir: rl.Vector3{X: 1, Y: 1}}, false, rl.Vector3{}, rl.Vector3{}},
		{"diagonal from below", Ray{Pos: rl.Vector3{X: 1000, Y: 900}, Dir: rl.Vector3{X: 1, Y: 1}}, true,
			rl.Vector3{X: 1060, Y: 960}, rl.Vector3{Y: -1}},
		{"from the left", Ray{Pos: rl.Vector3{Y: 1000}, Dir: rl.Vector3{X: 1}}, true,
			rl.Vector3{X: 800, Y: 1000}, rl.Vector3{X: -1}},
		{"from the right", Ray{Pos: rl.Vector3{X: 2000, Y: 1000}, Dir: rl.Vector3{X: -1}}, true,
			rl.Vector3{X: 1200, Y: 1000}, rl.Vector3{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := RayAABB(tt.ray, box)
			require.Equal(t, tt.hit, ok)
			if !tt.hit {
				return
			}
			assertVec(t, tt.pos, h.Pos)
			assertVec(t, tt.normal, h.Normal)
		})
	}
}

func TestRayAABBFromInsideReportsExit(t *testing.T) {
	box := NewBoxFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	h, ok := RayAABB(Ray{Dir: rl.Vector3{X: 1}}, box)
	require.True(t, ok)
	assertVec(t, rl.Vector3{X: 1}, h.Pos)
	assertVec(t, rl.Vector3{X: 1}, h.Normal)
}

func TestRayPlane(t *testing.T) {
	h, ok := RayPlane(Ray{Pos: rl.Vector3{Y: 10}, Dir: rl.Vector3{X: 1, Y: -1}}, rl.Vector3{}, Up)
	require.True(t, ok)
	assertVec(t, rl.Vector3{X: 10}, h.Pos)
	assert.InDelta(t, 10*math32.Sqrt(2), h.Dist, tol)

	_, ok = RayPlane(Ray{Pos: rl.Vector3{Y: 10}, Dir: rl.Vector3{X: 1}}, rl.Vector3{}, Up)
	assert.False(t, ok, "parallel")

	_, ok = RayPlane(Ray{Pos: rl.Vector3{Y: 10}, Dir: rl.Vector3{Y: 1}}, rl.Vector3{}, Up)
	assert.False(t, ok, "behind")
}

func TestRayTriangleAndQuad(t *testing.T) {
	q := [4]rl.Vector3{
		{X: -1, Z: -1},
		{X: -1, Z: 1},
		{X: 1, Z: 1},
		{X: 1, Z: -1},
	}
	h, ok := RayQuad(Ray{Pos: rl.Vector3{X: 0.5, Y: 5, Z: -0.5}, Dir: Down}, q)
	require.True(t, ok)
	assertVec(t, rl.Vector3{X: 0.5, Z: -0.5}, h.Pos)
	assertVec(t, Up, h.Normal)

	_, ok = RayQuad(Ray{Pos: rl.Vector3{X: 2, Y: 5}, Dir: Down}, q)
	assert.False(t, ok)

	_, ok = RayTriangle(Ray{Pos: rl.Vector3{Y: 5}, Dir: Down}, rl.Vector3{}, rl.Vector3{X: 1}, rl.Vector3{X: 2})
	assert.False(t, ok, "degenerate triangle")
}

func TestRayCylinder(t *testing.T) {
	h, ok := RayCylinder(Ray{Pos: rl.Vector3{X: -10, Y: 50}, Dir: rl.Vector3{X: 1}}, rl.Vector3{}, Up, 2)
	require.True(t, ok)
	assertVec(t, rl.Vector3{X: -2, Y: 50}, h.Pos)
	assertVec(t, rl.Vector3{X: -1}, h.Normal)

	_, ok = RayCylinder(Ray{Pos: rl.Vector3{X: -10}, Dir: Up}, rl.Vector3{}, Up, 2)
	assert.False(t, ok, "parallel to axis")
}

func TestRayCapsule(t *testing.T) {
	a := rl.Vector3{Y: -1}
	b := rl.Vector3{Y: 1}

	h, ok := RayCapsule(Ray{Pos: rl.Vector3{X: -10}, Dir: rl.Vector3{X: 1}}, a, b, 0.5)
	require.True(t, ok, "wall")
	assertVec(t, rl.Vector3{X: -0.5}, h.Pos)

	h, ok = RayCapsule(Ray{Pos: rl.Vector3{Y: 10}, Dir: Down}, a, b, 0.5)
	require.True(t, ok, "top cap")
	assertVec(t, rl.Vector3{Y: 1.5}, h.Pos)
	assertVec(t, Up, h.Normal)

	h, ok = RayCapsule(Ray{Pos: rl.Vector3{Y: -10}, Dir: Up}, a, b, 0.5)
	require.True(t, ok, "bottom cap")
	assertVec(t, rl.Vector3{Y: -1.5}, h.Pos)

	_, ok = RayCapsule(Ray{Pos: rl.Vector3{X: -10, Y: 3}, Dir: rl.Vector3{X: 1}}, a, b, 0.5)
	assert.False(t, ok, "above the capsule")

	h, ok = RayCapsule(Ray{Pos: rl.Vector3{X: -10, Y: -1}, Dir: rl.Vector3{X: 1}}, a, a, 0.5)
	require.True(t, ok, "degenerate capsule is a sphere")
	assertVec(t, rl.Vector3{X: -0.5, Y: -1}, h.Pos)
}
