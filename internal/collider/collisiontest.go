package collider

import (
	"collide3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultSkin is the contact tolerance applied by NewCollisionTest.
const DefaultSkin = 0.5

// CollisionTest is the in/out record of one moving-sphere query. The Result
// fields are only meaningful after CollisionResult returned true.
type CollisionTest struct {
	BallPos    rl.Vector3
	BallRadius float32
	// BallSpeed is this step's displacement, not a velocity.
	BallSpeed rl.Vector3
	BallClimb float32
	BallSkin  float32
	Bitmask   uint32

	ResultNewPos   rl.Vector3
	ResultHitPos   rl.Vector3
	ResultNormal   rl.Vector3
	ResultCollider Collider
}

// NewCollisionTest returns a test for a resting ball with the default skin
// and a mask matching every group.
func NewCollisionTest(pos rl.Vector3, radius float32) CollisionTest {
	return CollisionTest{
		BallPos:    pos,
		BallRadius: radius,
		BallSkin:   DefaultSkin,
		Bitmask:    AllGroups,
	}
}

// Resolve runs the sphere resolution protocol of c against t: a static
// penetration check with climb filtering, then a swept ray along BallSpeed.
// On success it fills the Result fields and returns true; otherwise t is
// left untouched.
func Resolve(c Collider, t *CollisionTest) bool {
	collide := false
	var depth, dist float32
	var normal rl.Vector3

	if d, n, ok := c.SphereCollision(t.BallPos, t.BallRadius+t.BallSkin, t.Bitmask); ok {
		dist, normal = d, n
		depth = t.BallRadius - dist
		switch {
		case depth < -t.BallSkin:
			// separated
		case depth <= t.BallSkin:
			// surface contact, stick to it
			collide = true
		default:
			// penetrating
			collide = true
		}
	}

	if collide && t.BallClimb > 0 {
		top := c.AABB(t.Bitmask).Top()
		if top <= t.BallPos.Y-t.BallRadius+t.BallClimb {
			collide = false
		}
	}

	if collide {
		t.ResultNewPos = rl.Vector3Add(t.BallPos, rl.Vector3Scale(normal, depth))
		t.ResultHitPos = rl.Vector3Subtract(t.BallPos, rl.Vector3Scale(normal, dist))
		t.ResultNormal = normal
		t.ResultCollider = c
		return true
	}

	if geom.IsZero(t.BallSpeed) {
		return false
	}

	rayPos := rl.Vector3Subtract(t.BallPos, t.BallSpeed)
	if t.BallClimb > t.BallRadius {
		rayPos.Y += t.BallClimb - t.BallRadius
	}
	hit, ok := c.RayCollision(rayPos, t.BallSpeed, t.Bitmask)
	if !ok {
		return false
	}
	if hit.Dist >= rl.Vector3Length(t.BallSpeed) {
		return false
	}
	if rl.Vector3DotProduct(t.BallSpeed, hit.Normal) > 0 {
		return false
	}
	t.ResultNewPos = rl.Vector3Add(hit.Pos, rl.Vector3Scale(hit.Normal, t.BallRadius))
	t.ResultHitPos = hit.Pos
	t.ResultNormal = hit.Normal
	t.ResultCollider = c
	return true
}
