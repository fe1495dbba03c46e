package collider

import (
	"log"

	"collide3d/internal/geom"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// capsuleShape is the vertical capsule geometry shared by Capsule and
// Character: hemisphere centers sit halfHeight-radius above and below the
// center.
type capsuleShape struct {
	radius     float32
	halfHeight float32
}

// newCapsuleShape raises a halfheight below the radius to the radius, giving
// a sphere, rather than collapsing both dimensions to zero.
func newCapsuleShape(kind Kind, radius, halfHeight float32) capsuleShape {
	c := capsuleShape{
		radius:     nonNegative(kind, "radius", radius),
		halfHeight: nonNegative(kind, "halfheight", halfHeight),
	}
	if c.halfHeight < c.radius {
		log.Printf("collider: %s halfheight %g below radius %g, using radius", kind, c.halfHeight, c.radius)
		c.halfHeight = c.radius
	}
	return c
}

func (c *capsuleShape) Radius() float32     { return c.radius }
func (c *capsuleShape) HalfHeight() float32 { return c.halfHeight }

// SetRadius raises halfheight to the new radius when needed.
func (c *capsuleShape) SetRadius(r float32) error {
	if r < 0 {
		return ErrNegativeDimension
	}
	c.radius = r
	c.halfHeight = math32.Max(c.halfHeight, r)
	return nil
}

// SetHalfHeight clamps values below the radius up to the radius.
func (c *capsuleShape) SetHalfHeight(h float32) error {
	if h < 0 {
		return ErrNegativeDimension
	}
	c.halfHeight = math32.Max(h, c.radius)
	return nil
}

func (c *capsuleShape) aabbRaw() geom.Box {
	return geom.NewBoxFromCenter(rl.Vector3{}, rl.Vector3{X: c.radius, Y: c.halfHeight, Z: c.radius})
}

// core returns the bottom and top hemisphere centers around center.
func (c *capsuleShape) core(center rl.Vector3) (rl.Vector3, rl.Vector3) {
	k := c.halfHeight - c.radius
	return rl.Vector3{X: center.X, Y: center.Y - k, Z: center.Z},
		rl.Vector3{X: center.X, Y: center.Y + k, Z: center.Z}
}

// segmentContact returns the distance from ball to the core segment and the
// outward normal of the zone it falls into.
func (c *capsuleShape) segmentContact(ball, center rl.Vector3) (float32, rl.Vector3) {
	a, b := c.core(center)
	d, foot, zone := geom.SegmentDistance(ball, a, b)
	switch zone {
	case geom.ZoneBeforeA:
		return d, geom.SafeNormalize(rl.Vector3Subtract(ball, a))
	case geom.ZonePastB:
		return d, geom.SafeNormalize(rl.Vector3Subtract(ball, b))
	}
	return d, wallNormal(ball, foot)
}

func wallNormal(ball, foot rl.Vector3) rl.Vector3 {
	delta := rl.Vector3Subtract(ball, foot)
	delta.Y = 0
	return geom.SafeNormalize(delta)
}

func (c *capsuleShape) rayTest(pos, dir, center rl.Vector3) (geom.Hit, bool) {
	a, b := c.core(center)
	return geom.RayCapsule(geom.Ray{Pos: pos, Dir: dir}, a, b, c.radius)
}

// Capsule is a vertical capsule. With the cylinder flag set it is a flat
// ended cylinder of the same height instead.
type Capsule struct {
	Base
	capsuleShape
	cylinder bool
}

func NewCapsule(center rl.Vector3, radius, halfHeight float32, cylinder bool) *Capsule {
	c := &Capsule{capsuleShape: newCapsuleShape(KindCapsule, radius, halfHeight), cylinder: cylinder}
	c.init(c, center)
	return c
}

func (c *Capsule) Kind() Kind              { return KindCapsule }
func (c *Capsule) Cylinder() bool          { return c.cylinder }
func (c *Capsule) SetCylinder(v bool)      { c.cylinder = v }
func (c *Capsule) AABBRaw(uint32) geom.Box { return c.aabbRaw() }

func (c *Capsule) RayCollision(pos, dir rl.Vector3, _ uint32) (RayHit, bool) {
	center := c.OffsetWorld()
	if !c.cylinder {
		h, ok := c.rayTest(pos, dir, center)
		if !ok {
			return RayHit{}, false
		}
		return c.rayHit(h), true
	}
	h, ok := geom.RayCylinder(geom.Ray{Pos: pos, Dir: dir}, center, geom.Up, c.radius)
	if !ok || math32.Abs(h.Pos.Y-center.Y) > c.halfHeight {
		return RayHit{}, false
	}
	return c.rayHit(h), true
}

// SphereCollision reports the distance from the ball center to the capsule
// surface.
func (c *Capsule) SphereCollision(ballPos rl.Vector3, ballRadius float32, _ uint32) (float32, rl.Vector3, bool) {
	center := c.OffsetWorld()
	var d float32
	var n rl.Vector3
	if c.cylinder {
		if math32.Abs(ballPos.Y-center.Y) > c.halfHeight {
			return 0, rl.Vector3{}, false
		}
		var foot rl.Vector3
		d, foot = geom.LineDistance(ballPos, center, rl.Vector3Add(center, geom.Up))
		n = wallNormal(ballPos, foot)
	} else {
		d, n = c.segmentContact(ballPos, center)
	}
	if d >= c.radius+ballRadius {
		return 0, rl.Vector3{}, false
	}
	return d - c.radius, n, true
}

// Character is the capsule used for character bodies. Its reported distance
// subtracts the ball radius, not its own.
type Character struct {
	Base
	capsuleShape
}

func NewCharacter(center rl.Vector3, radius, halfHeight float32) *Character {
	c := &Character{capsuleShape: newCapsuleShape(KindCharacter, radius, halfHeight)}
	c.init(c, center)
	return c
}

func (c *Character) Kind() Kind              { return KindCharacter }
func (c *Character) AABBRaw(uint32) geom.Box { return c.aabbRaw() }

// FootSphere returns the world center of the lower hemisphere and its radius.
func (c *Character) FootSphere() (rl.Vector3, float32) {
	a, _ := c.core(c.OffsetWorld())
	return a, c.radius
}

func (c *Character) RayCollision(pos, dir rl.Vector3, _ uint32) (RayHit, bool) {
	h, ok := c.rayTest(pos, dir, c.OffsetWorld())
	if !ok {
		return RayHit{}, false
	}
	return c.rayHit(h), true
}

func (c *Character) SphereCollision(ballPos rl.Vector3, ballRadius float32, _ uint32) (float32, rl.Vector3, bool) {
	d, n := c.segmentContact(ballPos, c.OffsetWorld())
	if d >= c.radius+ballRadius {
		return 0, rl.Vector3{}, false
	}
	return d - ballRadius, n, true
}
