package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

func IdentityTransform() Transform {
	return Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
}

// Node is a named placement in a transform hierarchy. Colliders attached to
// a node read their world offset through LocalToWorldPoint.
type Node struct {
	UID       uint64
	Name      string
	Tags      []string
	Transform Transform
	Scene     *Scene
	Parent    *Node
	Children  []*Node
}

func NewNode(name string) *Node {
	return &Node{
		UID:       nextUID.Add(1),
		Name:      name,
		Transform: IdentityTransform(),
		Children:  make([]*Node, 0),
	}
}

func (n *Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// rotationMatrix applies X then Y then Z.
func rotationMatrix(deg rl.Vector3) rl.Matrix {
	rotX := rl.MatrixRotateX(deg.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(deg.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(deg.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

func mulVec(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func (n *Node) WorldPosition() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Position
	}
	return n.Parent.LocalToWorldPoint(n.Transform.Position)
}

func (n *Node) WorldRotation() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Rotation
	}
	return rl.Vector3Add(n.Parent.WorldRotation(), n.Transform.Rotation)
}

func (n *Node) WorldScale() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Scale
	}
	return mulVec(n.Parent.WorldScale(), n.Transform.Scale)
}

// LocalToWorldPoint maps a point in this node's space to world space:
// scale, then rotate, then translate by the world position.
func (n *Node) LocalToWorldPoint(p rl.Vector3) rl.Vector3 {
	scaled := mulVec(p, n.WorldScale())
	rotated := rl.Vector3Transform(scaled, rotationMatrix(n.WorldRotation()))
	return rl.Vector3Add(n.WorldPosition(), rotated)
}
