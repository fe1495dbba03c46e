package physics

import (
	"collide3d/internal/collider"
	"collide3d/internal/engine"
	"collide3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CharacterMove configures MoveCharacter.
type CharacterMove struct {
	Displacement rl.Vector3
	// StepHeight is the obstacle height the character walks over.
	StepHeight float32
	Mask       uint32
}

type CharacterResult struct {
	Displacement rl.Vector3
	Grounded     bool
	Contacts     []Contact
}

// MoveCharacter moves node by m.Displacement, horizontal part first, then
// vertical, resolving the character's foot sphere against the world after
// each part. ch is skipped when it is itself registered with the world.
// The node's local position is updated, so node should be a root node.
func (w *World) MoveCharacter(node *engine.Node, ch *collider.Character, m CharacterMove) CharacterResult {
	foot, radius := ch.FootSphere()
	start := foot
	var res CharacterResult

	horizontal := rl.Vector3{X: m.Displacement.X, Z: m.Displacement.Z}
	vertical := rl.Vector3{Y: m.Displacement.Y}

	w.mu.RLock()
	for _, step := range [2]rl.Vector3{horizontal, vertical} {
		if geom.IsZero(step) {
			continue
		}
		t := collider.NewCollisionTest(rl.Vector3Add(foot, step), radius)
		t.BallSpeed = step
		t.BallClimb = m.StepHeight
		if m.Mask != 0 {
			t.Bitmask = m.Mask
		}
		contacts := w.resolveSphere(&t, ch)
		if len(contacts) > 0 {
			foot = t.ResultNewPos
		} else {
			foot = t.BallPos
		}
		for _, c := range contacts {
			if c.Surface == SurfaceGround {
				res.Grounded = true
			}
		}
		res.Contacts = append(res.Contacts, contacts...)
	}
	if !res.Grounded {
		mask := m.Mask
		if mask == 0 {
			mask = collider.AllGroups
		}
		if g, ok := w.groundPoint(foot, 0, mask, ch); ok {
			res.Grounded = foot.Y-radius-g.Point.Y < collider.DefaultSkin
		}
	}
	w.mu.RUnlock()

	res.Displacement = rl.Vector3Subtract(foot, start)
	node.Transform.Position = rl.Vector3Add(node.Transform.Position, res.Displacement)
	for _, c := range res.Contacts {
		w.OnContact.Invoke(c)
	}
	return res
}
