package physics

import (
	"collide3d/internal/collider"
	"collide3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// broadphaseMargin pads the swept sphere box when gathering candidates.
const broadphaseMargin = 4

type Contact struct {
	Body    *Body
	Point   rl.Vector3
	Normal  rl.Vector3
	NewPos  rl.Vector3
	Surface Surface
}

// ResolveSphere runs t against every accepted body near the ball's path.
// Each correction feeds the next body's test, so the returned contacts are
// in resolution order. On any contact t.ResultNewPos holds the final
// position and the other Result fields describe the last contact.
func (w *World) ResolveSphere(t *collider.CollisionTest) []Contact {
	w.mu.RLock()
	contacts := w.resolveSphere(t, nil)
	w.mu.RUnlock()

	for _, c := range contacts {
		w.OnContact.Invoke(c)
	}
	return contacts
}

func sweptBox(t *collider.CollisionTest) geom.Box {
	from := rl.Vector3Subtract(t.BallPos, t.BallSpeed)
	return geom.BoxOf(from, t.BallPos).Expand(t.BallRadius + t.BallSkin + broadphaseMargin)
}

func (w *World) resolveSphere(t *collider.CollisionTest, skip collider.Collider) []Contact {
	box := sweptBox(t)
	var contacts []Contact
	pos := t.BallPos

	for _, b := range w.grid.query(box, w.bodies) {
		c := b.Collider
		if c == skip || !c.Accepts(t.Bitmask) || !c.CollideWithAABB(box, t.Bitmask) {
			continue
		}
		test := *t
		test.BallPos = pos
		if !c.CollisionResult(&test) {
			continue
		}
		pos = test.ResultNewPos
		contacts = append(contacts, Contact{
			Body:    b,
			Point:   test.ResultHitPos,
			Normal:  test.ResultNormal,
			NewPos:  pos,
			Surface: SurfaceType(test.ResultNormal),
		})
		t.ResultHitPos = test.ResultHitPos
		t.ResultNormal = test.ResultNormal
		t.ResultCollider = c
	}
	if len(contacts) > 0 {
		t.ResultNewPos = pos
	}
	return contacts
}
