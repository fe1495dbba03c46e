package collider

import (
	"log"
	"sync/atomic"

	"collide3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AllGroups is the default bitflag: the collider belongs to every group.
const AllGroups uint32 = 0xFFFFFFFF

// Kind identifies one of the built-in shapes.
type Kind int

const (
	KindSphere Kind = iota
	KindAABB
	KindCapsule
	KindCharacter
	KindPlane
	KindQuad
	KindShearedBox
	KindFloor
)

var kindNames = [...]string{
	KindSphere:     "sphere",
	KindAABB:       "aabb",
	KindCapsule:    "capsule",
	KindCharacter:  "character",
	KindPlane:      "plane",
	KindQuad:       "quad",
	KindShearedBox: "shearedbox",
	KindFloor:      "floor",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a shape name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, ErrUnknownShape
}

// Transformer supplies the world placement of a collider's owner.
type Transformer interface {
	LocalToWorldPoint(p rl.Vector3) rl.Vector3
}

// RayHit is a ray intersection against a collider.
type RayHit struct {
	Dist     float32
	Pos      rl.Vector3
	Normal   rl.Vector3
	Collider Collider
}

// Collider is the capability set shared by every shape.
type Collider interface {
	Kind() Kind

	Offset() rl.Vector3
	SetOffset(v rl.Vector3)
	OffsetWorld() rl.Vector3
	Bitflag() uint32
	SetBitflag(v uint32)
	Enabled() bool
	SetEnabled(v bool)
	SetTransform(t Transformer)
	Accepts(mask uint32) bool

	Grab()
	Drop() bool
	RefCount() int32

	// AABBRaw is the shape-local, offset-free bounding box.
	AABBRaw(mask uint32) geom.Box
	AABB(mask uint32) geom.Box
	AABBLocal(mask uint32) geom.Box
	CollideWithAABB(box geom.Box, mask uint32) bool

	// RayCollision intersects a world-space ray with the shape.
	RayCollision(pos, dir rl.Vector3, mask uint32) (RayHit, bool)
	// SphereCollision returns the signed distance from the ball center to
	// the nearest relevant surface and its outward normal.
	SphereCollision(ballPos rl.Vector3, ballRadius float32, mask uint32) (float32, rl.Vector3, bool)
	// CollisionResult runs the shared sphere resolution protocol.
	CollisionResult(t *CollisionTest) bool
}

// Base carries the state common to all shapes. Shapes embed it and call
// init from their constructor.
type Base struct {
	self    Collider
	offset  rl.Vector3
	bitflag uint32
	enabled bool
	xform   Transformer
	refs    atomic.Int32
}

func (b *Base) init(self Collider, offset rl.Vector3) {
	b.self = self
	b.offset = offset
	b.bitflag = AllGroups
	b.enabled = true
	b.refs.Store(1)
}

func (b *Base) Offset() rl.Vector3     { return b.offset }
func (b *Base) SetOffset(v rl.Vector3) { b.offset = v }
func (b *Base) Bitflag() uint32        { return b.bitflag }
func (b *Base) SetBitflag(v uint32)    { b.bitflag = v }
func (b *Base) Enabled() bool          { return b.enabled }
func (b *Base) SetEnabled(v bool)      { b.enabled = v }

// SetTransform injects the owner's transform. Nil detaches it.
func (b *Base) SetTransform(t Transformer) { b.xform = t }

// OffsetWorld is the offset carried through the owner's transform.
func (b *Base) OffsetWorld() rl.Vector3 {
	if b.xform == nil {
		return b.offset
	}
	return b.xform.LocalToWorldPoint(b.offset)
}

// Accepts reports whether a query with the given group mask should consider
// this collider. Shapes never check it themselves.
func (b *Base) Accepts(mask uint32) bool {
	return b.enabled && b.bitflag&mask != 0
}

// Grab adds a reference.
func (b *Base) Grab() { b.refs.Add(1) }

// Drop releases a reference and reports whether it was the last one.
func (b *Base) Drop() bool {
	n := b.refs.Add(-1)
	switch {
	case n < 0:
		log.Printf("collider: drop of released %s collider", b.self.Kind())
		b.refs.Store(0)
		return false
	case n == 0:
		b.xform = nil
		return true
	}
	return false
}

func (b *Base) RefCount() int32 { return b.refs.Load() }

// AABB is the raw box translated by the world offset. Rotation and scale of
// the owner are not applied.
func (b *Base) AABB(mask uint32) geom.Box {
	return b.self.AABBRaw(mask).Translate(b.OffsetWorld())
}

// AABBLocal is the raw box translated by the local offset.
func (b *Base) AABBLocal(mask uint32) geom.Box {
	return b.self.AABBRaw(mask).Translate(b.offset)
}

func (b *Base) CollideWithAABB(box geom.Box, mask uint32) bool {
	return b.AABB(mask).Intersects(box)
}

func (b *Base) CollisionResult(t *CollisionTest) bool {
	return Resolve(b.self, t)
}

func (b *Base) rayHit(h geom.Hit) RayHit {
	return RayHit{Dist: h.Dist, Pos: h.Pos, Normal: h.Normal, Collider: b.self}
}
