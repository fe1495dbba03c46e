package collider

import (
	"collide3d/internal/geom"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Floor is a rectangular footprint whose four corners have independent
// heights. Corners run (-x,-z), (-x,+z), (+x,+z), (+x,-z). Edges are not
// rounded. The Y half extent is ignored and always reads as zero, since the
// corner heights fix the vertical extent.
type Floor struct {
	Base
	halfSize rl.Vector3
	heights  [4]float32
}

func NewFloor(center, halfSize rl.Vector3, heights [4]float32) *Floor {
	f := &Floor{
		halfSize: rl.Vector3{
			X: nonNegative(KindFloor, "halfsize.x", halfSize.X),
			Z: nonNegative(KindFloor, "halfsize.z", halfSize.Z),
		},
		heights: heights,
	}
	f.init(f, center)
	return f
}

func (f *Floor) Kind() Kind              { return KindFloor }
func (f *Floor) HalfSize() rl.Vector3    { return f.halfSize }
func (f *Floor) Heights() [4]float32     { return f.heights }
func (f *Floor) SetHeights(h [4]float32) { f.heights = h }

// SetHalfSize drops v.Y.
func (f *Floor) SetHalfSize(v rl.Vector3) error {
	if v.X < 0 || v.Z < 0 {
		return ErrNegativeDimension
	}
	f.halfSize = rl.Vector3{X: v.X, Z: v.Z}
	return nil
}

// Corners returns the four surface corners relative to origin.
func (f *Floor) Corners(origin rl.Vector3) [4]rl.Vector3 {
	h := f.halfSize
	q := [4]rl.Vector3{
		{X: -h.X, Y: f.heights[0], Z: -h.Z},
		{X: -h.X, Y: f.heights[1], Z: h.Z},
		{X: h.X, Y: f.heights[2], Z: h.Z},
		{X: h.X, Y: f.heights[3], Z: -h.Z},
	}
	for i := range q {
		q[i] = rl.Vector3Add(q[i], origin)
	}
	return q
}

func (f *Floor) AABBRaw(uint32) geom.Box {
	lo := math32.Min(math32.Min(f.heights[0], f.heights[1]), math32.Min(f.heights[2], f.heights[3]))
	hi := math32.Max(math32.Max(f.heights[0], f.heights[1]), math32.Max(f.heights[2], f.heights[3]))
	return geom.Box{
		Min: rl.Vector3{X: -f.halfSize.X, Y: lo, Z: -f.halfSize.Z},
		Max: rl.Vector3{X: f.halfSize.X, Y: hi, Z: f.halfSize.Z},
	}
}

func (f *Floor) RayCollision(pos, dir rl.Vector3, _ uint32) (RayHit, bool) {
	h, ok := geom.RayQuad(geom.Ray{Pos: pos, Dir: dir}, f.Corners(f.OffsetWorld()))
	if !ok {
		return RayHit{}, false
	}
	return f.rayHit(h), true
}

// SphereCollision measures against whichever of the two surface triangles
// the ball projects onto. The distance is negative below the surface.
func (f *Floor) SphereCollision(ballPos rl.Vector3, ballRadius float32, _ uint32) (float32, rl.Vector3, bool) {
	b := rl.Vector3Subtract(ballPos, f.OffsetWorld())
	foot, n, ok := geom.PerpendicularToQuad(b, f.Corners(rl.Vector3{}))
	if !ok {
		return 0, rl.Vector3{}, false
	}
	dist := signedDistance(b, foot, n)
	if math32.Abs(dist) > ballRadius {
		return 0, rl.Vector3{}, false
	}
	return dist, n, true
}
