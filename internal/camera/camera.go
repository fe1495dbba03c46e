// Package camera turns mouse and keyboard input into a first person view
// and the displacement of a walking character.
package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one frame of player input.
type Input struct {
	MouseDelta rl.Vector2
	Forward    bool
	Back       bool
	Left       bool
	Right      bool
	Jump       bool
}

// ReadInput samples the raylib keyboard and mouse state.
func ReadInput() Input {
	return Input{
		MouseDelta: rl.GetMouseDelta(),
		Forward:    rl.IsKeyDown(rl.KeyW),
		Back:       rl.IsKeyDown(rl.KeyS),
		Left:       rl.IsKeyDown(rl.KeyA),
		Right:      rl.IsKeyDown(rl.KeyD),
		Jump:       rl.IsKeyPressed(rl.KeySpace),
	}
}

type FPSCamera struct {
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	Velocity  rl.Vector3

	// Physics
	Gravity      float32
	JumpStrength float32
	Grounded     bool
	EyeHeight    float32 // Height of the eye above the character origin
}

func New() *FPSCamera {
	return &FPSCamera{
		Yaw:          -135.0,
		Pitch:        -10.0,
		MoveSpeed:    6.0,  // Units per second
		LookSpeed:    0.1,
		Gravity:      20.0, // Units per second squared
		JumpStrength: 8.0,  // Initial upward velocity
		EyeHeight:    0.8,
	}
}

// Update applies look and movement input and returns the displacement the
// character should attempt this frame. The caller resolves it against the
// world and reports back through Land.
func (c *FPSCamera) Update(dt float32, in Input) rl.Vector3 {
	c.Yaw += in.MouseDelta.X * c.LookSpeed
	c.Pitch -= in.MouseDelta.Y * c.LookSpeed
	c.Pitch = math32.Max(-89, math32.Min(89, c.Pitch))

	forward, right := c.directions()
	var move rl.Vector3
	if in.Forward {
		move = rl.Vector3Add(move, forward)
	}
	if in.Back {
		move = rl.Vector3Subtract(move, forward)
	}
	if in.Left {
		move = rl.Vector3Add(move, right)
	}
	if in.Right {
		move = rl.Vector3Subtract(move, right)
	}
	// Diagonals are not faster
	if l := math32.Hypot(move.X, move.Z); l > 0 {
		move.X /= l
		move.Z /= l
	}
	c.Velocity.X = move.X * c.MoveSpeed
	c.Velocity.Z = move.Z * c.MoveSpeed

	if in.Jump && c.Grounded {
		c.Velocity.Y = c.JumpStrength
		c.Grounded = false
	}
	if !c.Grounded {
		c.Velocity.Y -= c.Gravity * dt
	}
	return rl.Vector3Scale(c.Velocity, dt)
}

// Land records the outcome of the resolved move. A grounded character
// stops falling; bumping a ceiling stops the rise.
func (c *FPSCamera) Land(grounded bool, moved, wanted rl.Vector3) {
	c.Grounded = grounded
	if grounded && c.Velocity.Y < 0 {
		c.Velocity.Y = 0
	}
	if wanted.Y > 0 && moved.Y < wanted.Y {
		c.Velocity.Y = 0
	}
}

func (c *FPSCamera) directions() (forward, right rl.Vector3) {
	yaw := c.Yaw * rl.Deg2rad
	forward = rl.Vector3{X: math32.Cos(yaw), Z: math32.Sin(yaw)}
	right = rl.Vector3{X: math32.Sin(yaw), Z: -math32.Cos(yaw)}
	return
}

// Raylib returns the view from a character standing at pos.
func (c *FPSCamera) Raylib(pos rl.Vector3) rl.Camera3D {
	yaw := c.Yaw * rl.Deg2rad
	pitch := c.Pitch * rl.Deg2rad
	eye := rl.Vector3{X: pos.X, Y: pos.Y + c.EyeHeight, Z: pos.Z}
	target := rl.Vector3{
		X: eye.X + math32.Cos(yaw)*math32.Cos(pitch),
		Y: eye.Y + math32.Sin(pitch),
		Z: eye.Z + math32.Sin(yaw)*math32.Cos(pitch),
	}
	return rl.Camera3D{
		Position:   eye,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}
