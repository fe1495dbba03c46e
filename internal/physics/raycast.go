package physics

import (
	"collide3d/internal/collider"
	"collide3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Body     *Body
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastEnumerate reports every body the ray hits, in body order. Distance
// is measured from origin; with maxDistance >= 0 only hits closer than it
// are reported, a negative maxDistance means unlimited. fn returns false to
// stop. fn runs under the world's read lock and must not modify the world.
func (w *World) RaycastEnumerate(origin, direction rl.Vector3, maxDistance float32, mask uint32, fn func(RaycastHit) bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	w.raycastEnumerate(origin, direction, maxDistance, mask, nil, fn)
}

func (w *World) raycastEnumerate(origin, direction rl.Vector3, maxDistance float32, mask uint32, skip collider.Collider, fn func(RaycastHit) bool) {
	direction = geom.SafeNormalize(direction)
	if geom.IsZero(direction) || len(w.bodies) == 0 {
		return
	}
	reach := maxDistance
	if reach <= 0 {
		reach = w.reach(origin)
	}
	segment := geom.SegmentBox(origin, rl.Vector3Scale(direction, reach))

	for _, b := range w.grid.query(segment, w.bodies) {
		c := b.Collider
		if c == skip || !c.Accepts(mask) {
			continue
		}
		if maxDistance > 0 && !c.CollideWithAABB(segment, mask) {
			continue
		}
		h, ok := c.RayCollision(origin, direction, mask)
		if !ok {
			continue
		}
		dist := rl.Vector3Distance(h.Pos, origin)
		if maxDistance >= 0 && dist >= maxDistance {
			continue
		}
		if !fn(RaycastHit{Body: b, Point: h.Pos, Normal: h.Normal, Distance: dist}) {
			return
		}
	}
}

// Raycast returns the closest hit.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask uint32) (RaycastHit, bool) {
	var closest RaycastHit
	hit := false
	w.RaycastEnumerate(origin, direction, maxDistance, mask, func(h RaycastHit) bool {
		if !hit || h.Distance < closest.Distance {
			closest, hit = h, true
		}
		return true
	})
	return closest, hit
}
