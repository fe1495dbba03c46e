package collider

import (
	"log"

	"collide3d/internal/geom"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Quad is a planar four-point polygon given in clockwise order, local to the
// offset. It is one-sided by default: contacts always push toward the front
// face and rays from behind pass through.
type Quad struct {
	Base
	points   [4]rl.Vector3
	normal   rl.Vector3
	bounds   geom.Box
	twoSided bool
}

func NewQuad(center rl.Vector3, points [4]rl.Vector3) *Quad {
	q := &Quad{}
	q.init(q, center)
	q.SetPoints(points)
	return q
}

func (q *Quad) Kind() Kind              { return KindQuad }
func (q *Quad) Points() [4]rl.Vector3   { return q.points }
func (q *Quad) Normal() rl.Vector3      { return q.normal }
func (q *Quad) TwoSided() bool          { return q.twoSided }
func (q *Quad) SetTwoSided(v bool)      { q.twoSided = v }
func (q *Quad) AABBRaw(uint32) geom.Box { return q.bounds }

// SetPoints replaces the corners and re-derives the normal from the first
// three.
func (q *Quad) SetPoints(points [4]rl.Vector3) {
	q.points = points
	q.normal = geom.TriangleNormal(points[0], points[1], points[2])
	q.bounds = geom.BoxOf(points[:]...)
	if geom.IsZero(q.normal) {
		log.Printf("collider: quad points %v are degenerate", points)
	}
}

func (q *Quad) RayCollision(pos, dir rl.Vector3, _ uint32) (RayHit, bool) {
	if geom.IsZero(q.normal) {
		return RayHit{}, false
	}
	facing := rl.Vector3DotProduct(q.normal, dir)
	if facing >= 0 && !q.twoSided {
		return RayHit{}, false
	}
	wpos := q.OffsetWorld()
	h, ok := geom.RayPlane(geom.Ray{Pos: pos, Dir: dir}, rl.Vector3Add(wpos, q.points[0]), q.normal)
	if !ok || !geom.PointInQuad(rl.Vector3Subtract(h.Pos, wpos), q.points) {
		return RayHit{}, false
	}
	if facing > 0 {
		h.Normal = rl.Vector3Negate(h.Normal)
	}
	return q.rayHit(h), true
}

func (q *Quad) SphereCollision(ballPos rl.Vector3, ballRadius float32, _ uint32) (float32, rl.Vector3, bool) {
	if geom.IsZero(q.normal) {
		return 0, rl.Vector3{}, false
	}
	wpos := q.OffsetWorld()
	foot := geom.PerpendicularToPlane(ballPos, rl.Vector3Add(wpos, q.points[0]), q.normal)
	if !geom.PointInQuad(rl.Vector3Subtract(foot, wpos), q.points) {
		return 0, rl.Vector3{}, false
	}
	dist := signedDistance(ballPos, foot, q.normal)
	if math32.Abs(dist) > ballRadius {
		return 0, rl.Vector3{}, false
	}
	if q.twoSided && dist < 0 {
		return -dist, rl.Vector3Negate(q.normal), true
	}
	return dist, q.normal, true
}
