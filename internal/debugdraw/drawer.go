// Package debugdraw renders collider wireframes and a parameter inspector.
package debugdraw

import (
	"collide3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Drawer receives the primitives a collider wireframe is made of.
type Drawer interface {
	Line(a, b rl.Vector3, c rl.Color)
	SphereWires(center rl.Vector3, radius float32, c rl.Color)
	BoxWires(box geom.Box, c rl.Color)
}

// RaylibDrawer draws straight to the current raylib 3D mode.
type RaylibDrawer struct {
	Rings  int32
	Slices int32
}

func NewRaylibDrawer() RaylibDrawer {
	return RaylibDrawer{Rings: 8, Slices: 8}
}

func (d RaylibDrawer) Line(a, b rl.Vector3, c rl.Color) {
	rl.DrawLine3D(a, b, c)
}

func (d RaylibDrawer) SphereWires(center rl.Vector3, radius float32, c rl.Color) {
	rl.DrawSphereWires(center, radius, d.Rings, d.Slices, c)
}

func (d RaylibDrawer) BoxWires(box geom.Box, c rl.Color) {
	rl.DrawBoundingBox(box.ToRaylib(), c)
}

// Op names a recorded primitive.
type Op int

const (
	OpLine Op = iota
	OpSphere
	OpBox
)

// Call is one recorded primitive. Only the fields of its Op are set.
type Call struct {
	Op     Op
	A, B   rl.Vector3
	Radius float32
	Box    geom.Box
	Color  rl.Color
}

// Recorder keeps every primitive instead of drawing it.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Line(a, b rl.Vector3, c rl.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, A: a, B: b, Color: c})
}

func (r *Recorder) SphereWires(center rl.Vector3, radius float32, c rl.Color) {
	r.Calls = append(r.Calls, Call{Op: OpSphere, A: center, Radius: radius, Color: c})
}

func (r *Recorder) BoxWires(box geom.Box, c rl.Color) {
	r.Calls = append(r.Calls, Call{Op: OpBox, Box: box, Color: c})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
