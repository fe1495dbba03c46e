package physics

import (
	"testing"

	"collide3d/internal/collider"
	"collide3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSphereChainsCorrections(t *testing.T) {
	w, floor, wall, _ := testWorld()
	var fired []Contact
	w.OnContact.AddListener(func(c Contact) { fired = append(fired, c) })

	ct := collider.NewCollisionTest(rl.Vector3{X: 4.2, Y: 0.4}, 0.5)
	contacts := w.ResolveSphere(&ct)

	require.Len(t, contacts, 2)
	assert.Same(t, floor, contacts[0].Body)
	assert.Equal(t, SurfaceGround, contacts[0].Surface)
	assertVec(t, rl.Vector3{X: 4.2, Y: 0.5}, contacts[0].NewPos)

	assert.Same(t, wall, contacts[1].Body)
	assert.Equal(t, SurfaceWall, contacts[1].Surface)
	assertVec(t, rl.Vector3{X: 4, Y: 0.5}, contacts[1].NewPos)

	assertVec(t, rl.Vector3{X: 4, Y: 0.5}, ct.ResultNewPos)
	assertVec(t, rl.Vector3{X: -1}, ct.ResultNormal)
	assert.Same(t, wall.Collider, ct.ResultCollider)
	assert.Len(t, fired, 2)
}

func TestResolveSphereNoContact(t *testing.T) {
	w, _, _, _ := testWorld()
	ct := collider.NewCollisionTest(rl.Vector3{Y: 5}, 0.5)
	before := ct

	assert.Empty(t, w.ResolveSphere(&ct))
	assert.Equal(t, before, ct)
}

func TestResolveSphereRespectsMask(t *testing.T) {
	w, floor, _, _ := testWorld()
	floor.Collider.SetBitflag(4)

	ct := collider.NewCollisionTest(rl.Vector3{Y: 0.4}, 0.5)
	ct.Bitmask = 1
	assert.Empty(t, w.ResolveSphere(&ct))
}

func TestResolveSphereCatchesTunneling(t *testing.T) {
	w, floor, _, _ := testWorld()
	ct := collider.NewCollisionTest(rl.Vector3{Y: -3}, 0.5)
	ct.BallSpeed = rl.Vector3{Y: -6}

	contacts := w.ResolveSphere(&ct)
	require.Len(t, contacts, 1)
	assert.Same(t, floor, contacts[0].Body)
	assertVec(t, rl.Vector3{Y: 0.5}, ct.ResultNewPos)
}

func newPlayer(w *World, pos rl.Vector3) (*engine.Node, *collider.Character) {
	node := engine.NewNode("player")
	node.Transform.Position = pos
	ch := collider.NewCharacter(rl.Vector3{}, 0.5, 1)
	add(w, "player", node, ch)
	return node, ch
}

func TestMoveCharacterWalks(t *testing.T) {
	w, _, _, _ := testWorld()
	node, ch := newPlayer(w, rl.Vector3{Y: 1})

	res := w.MoveCharacter(node, ch, CharacterMove{Displacement: rl.Vector3{X: 1}})

	assert.True(t, res.Grounded)
	assertVec(t, rl.Vector3{X: 1}, res.Displacement)
	assertVec(t, rl.Vector3{X: 1, Y: 1}, node.Transform.Position)
	for _, c := range res.Contacts {
		assert.NotSame(t, ch, c.Body.Collider, "own collider is skipped")
	}
}

func TestMoveCharacterBlockedByWall(t *testing.T) {
	w, _, _, _ := testWorld()
	node, ch := newPlayer(w, rl.Vector3{X: 3.5, Y: 1})

	res := w.MoveCharacter(node, ch, CharacterMove{Displacement: rl.Vector3{X: 1}, StepHeight: 0.4})

	assertVec(t, rl.Vector3{X: 4, Y: 1}, node.Transform.Position)
	var wall bool
	for _, c := range res.Contacts {
		if c.Surface == SurfaceWall {
			wall = true
		}
	}
	assert.True(t, wall)
}

func TestMoveCharacterAirborne(t *testing.T) {
	w, _, _, _ := testWorld()
	node, ch := newPlayer(w, rl.Vector3{Y: 3})

	res := w.MoveCharacter(node, ch, CharacterMove{Displacement: rl.Vector3{Y: -1}})

	assert.False(t, res.Grounded)
	assert.Empty(t, res.Contacts)
	assertVec(t, rl.Vector3{Y: 2}, node.Transform.Position)
}
