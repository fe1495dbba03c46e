package collider

import (
	"collide3d/internal/geom"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Box is an axis-aligned box collider.
type Box struct {
	Base
	halfSize rl.Vector3
}

func NewBox(center, halfSize rl.Vector3) *Box {
	b := &Box{halfSize: rl.Vector3{
		X: nonNegative(KindAABB, "halfsize.x", halfSize.X),
		Y: nonNegative(KindAABB, "halfsize.y", halfSize.Y),
		Z: nonNegative(KindAABB, "halfsize.z", halfSize.Z),
	}}
	b.init(b, center)
	return b
}

func (b *Box) Kind() Kind           { return KindAABB }
func (b *Box) HalfSize() rl.Vector3 { return b.halfSize }

func (b *Box) SetHalfSize(v rl.Vector3) error {
	if v.X < 0 || v.Y < 0 || v.Z < 0 {
		return ErrNegativeDimension
	}
	b.halfSize = v
	return nil
}

func (b *Box) AABBRaw(uint32) geom.Box {
	return geom.NewBoxFromCenter(rl.Vector3{}, b.halfSize)
}

func (b *Box) RayCollision(pos, dir rl.Vector3, _ uint32) (RayHit, bool) {
	h, ok := geom.RayAABB(geom.Ray{Pos: pos, Dir: dir}, geom.NewBoxFromCenter(b.OffsetWorld(), b.halfSize))
	if !ok {
		return RayHit{}, false
	}
	return b.rayHit(h), true
}

// SphereCollision pushes out along a single axis: the one whose face the
// ball center projects onto. Balls in edge or corner regions do not collide.
func (b *Box) SphereCollision(ballPos rl.Vector3, ballRadius float32, _ uint32) (float32, rl.Vector3, bool) {
	d := rl.Vector3Subtract(ballPos, b.OffsetWorld())
	ax, ay, az := math32.Abs(d.X), math32.Abs(d.Y), math32.Abs(d.Z)
	h := b.halfSize
	if ax > h.X+ballRadius || ay > h.Y+ballRadius || az > h.Z+ballRadius {
		return 0, rl.Vector3{}, false
	}
	switch {
	case ay <= h.Y && az <= h.Z:
		return ax - h.X, rl.Vector3{X: signOf(d.X)}, true
	case ax <= h.X && az <= h.Z:
		return ay - h.Y, rl.Vector3{Y: signOf(d.Y)}, true
	case ax <= h.X && ay <= h.Y:
		return az - h.Z, rl.Vector3{Z: signOf(d.Z)}, true
	}
	return 0, rl.Vector3{}, false
}

func signOf(f float32) float32 {
	if f >= 0 {
		return 1
	}
	return -1
}
