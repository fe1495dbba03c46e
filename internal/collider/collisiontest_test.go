package collider

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitBox() *Box {
	return NewBox(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
}

func TestResolvePenetration(t *testing.T) {
	b := unitBox()
	ct := NewCollisionTest(rl.Vector3{X: 1.3}, 0.5)

	require.True(t, b.CollisionResult(&ct))
	assertVec(t, rl.Vector3{X: 1.5}, ct.ResultNewPos)
	assertVec(t, rl.Vector3{X: 1}, ct.ResultHitPos)
	assertVec(t, rl.Vector3{X: 1}, ct.ResultNormal)
	assert.Same(t, b, ct.ResultCollider)
}

func TestResolveSticksWithinSkin(t *testing.T) {
	b := unitBox()
	ct := NewCollisionTest(rl.Vector3{X: 1.8}, 0.5)

	require.True(t, b.CollisionResult(&ct))
	assertVec(t, rl.Vector3{X: 1.5}, ct.ResultNewPos, "pulled onto the surface")
}

func TestResolveSeparatedLeavesRecordUntouched(t *testing.T) {
	b := unitBox()
	ct := NewCollisionTest(rl.Vector3{X: 2.1}, 0.5)
	before := ct

	assert.False(t, b.CollisionResult(&ct))
	assert.Equal(t, before, ct)
}

func TestResolveZeroBitmaskStillResolves(t *testing.T) {
	b := unitBox()
	ct := CollisionTest{BallPos: rl.Vector3{X: 1.3}, BallRadius: 0.5}
	assert.True(t, Resolve(b, &ct), "shapes do not filter by mask")
}

func TestResolveClimb(t *testing.T) {
	step := NewBox(rl.Vector3{Y: 0.5}, rl.Vector3{X: 1, Y: 0.5, Z: 1})

	ct := NewCollisionTest(rl.Vector3{X: 1.3, Y: 0.9}, 0.5)
	ct.BallClimb = 0.7
	assert.False(t, step.CollisionResult(&ct), "low enough to step over")

	ct = NewCollisionTest(rl.Vector3{X: 1.3, Y: 0.9}, 0.5)
	ct.BallClimb = 0.5
	require.True(t, step.CollisionResult(&ct))
	assertVec(t, rl.Vector3{X: 1.5, Y: 0.9}, ct.ResultNewPos)
}

func TestResolveTunnelingThroughThinShapes(t *testing.T) {
	plane := groundPlane(t)
	quad := NewQuad(rl.Vector3{}, floorSquare())

	for _, c := range []Collider{plane, quad} {
		t.Run(c.Kind().String(), func(t *testing.T) {
			ct := NewCollisionTest(rl.Vector3{X: 0.2, Y: -5, Z: 0.2}, 0.5)
			ct.BallSpeed = rl.Vector3{Y: -10}

			require.True(t, c.CollisionResult(&ct))
			assertVec(t, rl.Vector3{X: 0.2, Y: 0.5, Z: 0.2}, ct.ResultNewPos)
			assertVec(t, rl.Vector3{X: 0.2, Z: 0.2}, ct.ResultHitPos)
			assertVec(t, rl.Vector3{Y: 1}, ct.ResultNormal)
		})
	}
}

func TestResolveSweptIgnoresHitsBeyondDisplacement(t *testing.T) {
	plane := groundPlane(t)
	ct := NewCollisionTest(rl.Vector3{Y: 3}, 0.5)
	ct.BallSpeed = rl.Vector3{Y: -1}
	assert.False(t, plane.CollisionResult(&ct))
}

func TestResolveSweptIgnoresSurfacesMovedAwayFrom(t *testing.T) {
	f := NewFloor(rl.Vector3{}, rl.Vector3{X: 2, Z: 2}, [4]float32{})
	ct := NewCollisionTest(rl.Vector3{Y: 5}, 0.5)
	ct.BallSpeed = rl.Vector3{Y: 10}
	assert.False(t, f.CollisionResult(&ct))
}

func TestResolveSweptClimbRaisesRay(t *testing.T) {
	wall := NewBox(rl.Vector3{Y: 0.45, Z: 5}, rl.Vector3{X: 1, Y: 0.45, Z: 0.2})

	ct := NewCollisionTest(rl.Vector3{Y: 0.5, Z: 8}, 0.5)
	ct.BallSpeed = rl.Vector3{Z: 5}
	ct.BallClimb = 1
	assert.False(t, wall.CollisionResult(&ct), "ray passes over the wall")

	ct.BallClimb = 0
	require.True(t, wall.CollisionResult(&ct))
	assertVec(t, rl.Vector3{Y: 0.5, Z: 4.3}, ct.ResultNewPos)
	assertVec(t, rl.Vector3{Y: 0.5, Z: 4.8}, ct.ResultHitPos)
	assertVec(t, rl.Vector3{Z: -1}, ct.ResultNormal)
}

func TestResolveIsIdempotent(t *testing.T) {
	shapes := []Collider{
		unitBox(),
		NewSphere(rl.Vector3{}, 1),
		NewCapsule(rl.Vector3{}, 0.5, 1, false),
		groundPlane(t),
	}
	for _, c := range shapes {
		t.Run(c.Kind().String(), func(t *testing.T) {
			first := NewCollisionTest(rl.Vector3{X: 0.4, Y: 1.2, Z: 0.1}, 0.5)
			first.BallSpeed = rl.Vector3{Y: -0.5}
			second := first

			ok1 := c.CollisionResult(&first)
			ok2 := c.CollisionResult(&second)
			assert.Equal(t, ok1, ok2)
			assert.Equal(t, first, second)
		})
	}
}
