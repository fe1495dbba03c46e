package collider

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groundPlane(t *testing.T) *Plane {
	return mustPlane(t, rl.Vector3{}, rl.Vector3{Y: 1},
		rl.Vector3{X: -5, Y: -1, Z: -5}, rl.Vector3{X: 5, Y: 1, Z: 5})
}

func TestPlaneRejectsDegenerateNormal(t *testing.T) {
	p, err := NewPlane(rl.Vector3{}, rl.Vector3{}, rl.Vector3{X: -1}, rl.Vector3{X: 1})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrDegenerateNormal)

	p = groundPlane(t)
	assert.ErrorIs(t, p.SetNormal(rl.Vector3{}), ErrDegenerateNormal)
	assertVec(t, rl.Vector3{Y: 1}, p.Normal(), "previous normal kept")

	require.NoError(t, p.SetNormal(rl.Vector3{X: 3}))
	assertVec(t, rl.Vector3{X: 1}, p.Normal())
}

func TestPlaneBoundsFollowSection(t *testing.T) {
	p := groundPlane(t)
	box := p.AABBRaw(0)
	assertVec(t, rl.Vector3{X: -5, Z: -5}, box.Min)
	assertVec(t, rl.Vector3{X: 5, Z: 5}, box.Max)
}

func TestPlaneSphereCollision(t *testing.T) {
	p := groundPlane(t)

	dist, n, ok := p.SphereCollision(rl.Vector3{X: 1, Y: 0.3, Z: 1}, 0.5, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.3, dist, tol)
	assertVec(t, rl.Vector3{Y: 1}, n)

	dist, _, ok = p.SphereCollision(rl.Vector3{X: 1, Y: -0.3, Z: 1}, 0.5, 0)
	require.True(t, ok)
	assert.InDelta(t, -0.3, dist, tol, "behind the plane is negative")

	_, _, ok = p.SphereCollision(rl.Vector3{X: 6, Y: 0.3}, 0.5, 0)
	assert.False(t, ok, "outside the trim box")

	_, _, ok = p.SphereCollision(rl.Vector3{X: 1, Y: 0.8, Z: 1}, 0.5, 0)
	assert.False(t, ok)
}

func TestPlaneRayCollision(t *testing.T) {
	p := groundPlane(t)

	hit, ok := p.RayCollision(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 0)
	require.True(t, ok)
	assertVec(t, rl.Vector3{}, hit.Pos)
	assert.InDelta(t, 5, hit.Dist, tol)

	_, ok = p.RayCollision(rl.Vector3{Y: -5}, rl.Vector3{Y: 1}, 0)
	assert.False(t, ok, "back face")

	_, ok = p.RayCollision(rl.Vector3{X: 7, Y: 5}, rl.Vector3{Y: -1}, 0)
	assert.False(t, ok, "outside the trim box")

	p.SetTransform(translate{X: 4})
	hit, ok = p.RayCollision(rl.Vector3{X: 7, Y: 5}, rl.Vector3{Y: -1}, 0)
	require.True(t, ok, "trim box moves with the owner")
	assertVec(t, rl.Vector3{X: 7}, hit.Pos)
}

func TestQuadSphereCollision(t *testing.T) {
	q := NewQuad(rl.Vector3{Y: 1}, floorSquare())
	assertVec(t, rl.Vector3{Y: 1}, q.Normal())

	dist, n, ok := q.SphereCollision(rl.Vector3{X: 0.5, Y: 1.3, Z: 0.5}, 0.5, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.3, dist, tol)
	assertVec(t, rl.Vector3{Y: 1}, n)

	dist, n, ok = q.SphereCollision(rl.Vector3{X: 0.5, Y: 0.7, Z: 0.5}, 0.5, 0)
	require.True(t, ok)
	assert.InDelta(t, -0.3, dist, tol)
	assertVec(t, rl.Vector3{Y: 1}, n, "one-sided quads push to the front")

	q.SetTwoSided(true)
	dist, n, ok = q.SphereCollision(rl.Vector3{X: 0.5, Y: 0.7, Z: 0.5}, 0.5, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.3, dist, tol)
	assertVec(t, rl.Vector3{Y: -1}, n)

	_, _, ok = q.SphereCollision(rl.Vector3{X: 1.5, Y: 1.3}, 0.5, 0)
	assert.False(t, ok, "outside the polygon")
}

func TestQuadRayCollision(t *testing.T) {
	q := NewQuad(rl.Vector3{Y: 1}, floorSquare())

	hit, ok := q.RayCollision(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 0)
	require.True(t, ok)
	assertVec(t, rl.Vector3{Y: 1}, hit.Pos)
	assertVec(t, rl.Vector3{Y: 1}, hit.Normal)

	_, ok = q.RayCollision(rl.Vector3{Y: -5}, rl.Vector3{Y: 1}, 0)
	assert.False(t, ok)

	q.SetTwoSided(true)
	hit, ok = q.RayCollision(rl.Vector3{Y: -5}, rl.Vector3{Y: 1}, 0)
	require.True(t, ok)
	assertVec(t, rl.Vector3{Y: 1}, hit.Pos)
	assertVec(t, rl.Vector3{Y: -1}, hit.Normal)
}

func TestDegenerateQuadNeverCollides(t *testing.T) {
	q := NewQuad(rl.Vector3{}, [4]rl.Vector3{{X: 1}, {X: 1}, {X: 1}, {X: 1}})
	_, ok := q.RayCollision(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 0)
	assert.False(t, ok)
	_, _, ok = q.SphereCollision(rl.Vector3{X: 1}, 1, 0)
	assert.False(t, ok)
}
