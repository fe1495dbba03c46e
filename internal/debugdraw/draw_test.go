package debugdraw

import (
	"testing"

	"collide3d/internal/collider"
	"collide3d/internal/geom"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawShapes(t *testing.T) {
	plane, err := collider.NewPlane(rl.Vector3{}, rl.Vector3{Y: 1}, rl.Vector3{X: -5, Y: -1, Z: -5}, rl.Vector3{X: 5, Y: 1, Z: 5})
	require.NoError(t, err)
	quad := collider.NewQuad(rl.Vector3{}, [4]rl.Vector3{
		{X: -1, Z: -1}, {X: -1, Z: 1}, {X: 1, Z: 1}, {X: 1, Z: -1},
	})

	tests := []struct {
		name                  string
		c                     collider.Collider
		lines, spheres, boxes int
	}{
		{"sphere", collider.NewSphere(rl.Vector3{}, 1), 0, 1, 0},
		{"aabb", collider.NewBox(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}), 0, 0, 1},
		{"capsule", collider.NewCapsule(rl.Vector3{}, 0.5, 1, false), 4, 2, 0},
		{"cylinder", collider.NewCapsule(rl.Vector3{}, 0.5, 1, true), 2*circleSegments + 4, 0, 0},
		{"character", collider.NewCharacter(rl.Vector3{}, 0.5, 1), 4, 2, 0},
		{"plane", plane, 5, 0, 0},
		{"quad", quad, 5, 0, 0},
		{"shearedbox", collider.NewShearedBox(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, 0.5, collider.AllFaces), 12, 0, 0},
		{"floor", collider.NewFloor(rl.Vector3{}, rl.Vector3{X: 2, Z: 2}, [4]float32{}), 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Recorder
			Draw(&r, tt.c, rl.Red)
			assert.Equal(t, tt.lines, r.Count(OpLine), "lines")
			assert.Equal(t, tt.spheres, r.Count(OpSphere), "spheres")
			assert.Equal(t, tt.boxes, r.Count(OpBox), "boxes")
		})
	}
}

func TestDrawUsesWorldPlacement(t *testing.T) {
	w := physics.NewWorld()
	s := collider.NewSphere(rl.Vector3{Y: 1}, 0.5)
	b := w.AddBody("ball", nil, s)
	s.Drop()
	s.SetTransform(offsetBy{rl.Vector3{X: 3}})

	var r Recorder
	DrawBodies(&r, []*physics.Body{b}, func(*physics.Body) rl.Color { return rl.Blue })
	require.Len(t, r.Calls, 1)
	assert.Equal(t, rl.Vector3{X: 3, Y: 1}, r.Calls[0].A)
	assert.Equal(t, float32(0.5), r.Calls[0].Radius)
	assert.Equal(t, rl.Blue, r.Calls[0].Color)
}

func TestDrawFadesDisabled(t *testing.T) {
	s := collider.NewSphere(rl.Vector3{}, 1)
	s.SetEnabled(false)

	var r Recorder
	Draw(&r, s, rl.Red)
	require.Len(t, r.Calls, 1)
	if r.Calls[0].Color.A >= rl.Red.A {
		t.Errorf("Expected faded alpha, got %d", r.Calls[0].Color.A)
	}
}

func TestDrawPlaneOutlineIsClosed(t *testing.T) {
	plane, err := collider.NewPlane(rl.Vector3{Y: 2}, rl.Vector3{Y: 1}, rl.Vector3{X: -1, Y: -1, Z: -1}, rl.Vector3{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)

	var r Recorder
	Draw(&r, plane, rl.Red)
	require.Equal(t, 5, r.Count(OpLine))
	outline := r.Calls[:4]
	for i, c := range outline {
		assert.InDelta(t, 2, c.A.Y, 1e-5)
		next := outline[(i+1)%len(outline)]
		assert.Equal(t, c.B, next.A, "edge %d joins the next one", i)
		assert.False(t, geom.NearlyEqual(c.A, c.B, 1e-6), "edge %d is not degenerate", i)
	}
}

func TestDrawHit(t *testing.T) {
	var r Recorder
	DrawHit(&r, physics.RaycastHit{Point: rl.Vector3{Y: 1}, Normal: rl.Vector3{Y: 1}}, rl.Yellow)
	assert.Equal(t, 1, r.Count(OpSphere))
	require.Equal(t, 1, r.Count(OpLine))
	assert.Equal(t, rl.Vector3{Y: 2}, r.Calls[1].B)

	r.Reset()
	assert.Empty(t, r.Calls)
}

type offsetBy struct{ d rl.Vector3 }

func (o offsetBy) LocalToWorldPoint(p rl.Vector3) rl.Vector3 { return rl.Vector3Add(p, o.d) }
