package world

import (
	"errors"
	"fmt"
	"log"

	"collide3d/internal/collider"
	"collide3d/internal/engine"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrUnnamedBody   = errors.New("body has no name")
	ErrDuplicateBody = errors.New("duplicate body name")
	ErrUnknownParent = errors.New("unknown parent")
	ErrParentCycle   = errors.New("parent cycle")
	ErrBadFaces      = errors.New("unknown face name")
	ErrUnknownBody   = errors.New("unknown body")
)

// Level is a scene file turned into live nodes and bodies.
type Level struct {
	Name    string
	Scene   *engine.Scene
	Physics *physics.World
	Colors  map[*physics.Body]rl.Color
}

// Build creates one node per body definition and registers every collider
// with a new physics world, which holds the only reference to it.
func Build(sf *SceneFile) (*Level, error) {
	lvl := &Level{
		Name:    sf.Name,
		Scene:   engine.NewScene(sf.Name),
		Physics: physics.NewWorld(),
		Colors:  make(map[*physics.Body]rl.Color),
	}

	nodes := make(map[string]*engine.Node, len(sf.Bodies))
	for _, def := range sf.Bodies {
		if def.Name == "" {
			return nil, ErrUnnamedBody
		}
		if _, dup := nodes[def.Name]; dup {
			return nil, fmt.Errorf("body %q: %w", def.Name, ErrDuplicateBody)
		}
		n := engine.NewNode(def.Name)
		n.Tags = def.Tags
		n.Transform.Position = vec(def.Position)
		n.Transform.Rotation = vec(def.Rotation)
		// Default scale to 1 if zero
		if def.Scale != [3]float32{} {
			n.Transform.Scale = vec(def.Scale)
		}
		nodes[def.Name] = n
		lvl.Scene.AddNode(n)
	}

	for _, def := range sf.Bodies {
		if def.Parent == "" {
			continue
		}
		parent, ok := nodes[def.Parent]
		if !ok {
			return nil, fmt.Errorf("body %q: %w %q", def.Name, ErrUnknownParent, def.Parent)
		}
		child := nodes[def.Name]
		for p := parent; p != nil; p = p.Parent {
			if p == child {
				return nil, fmt.Errorf("body %q: %w", def.Name, ErrParentCycle)
			}
		}
		parent.AddChild(child)
	}

	for _, def := range sf.Bodies {
		if def.Collider.Shape == "" {
			continue
		}
		c, err := NewCollider(def.Collider)
		if err != nil {
			lvl.Physics.Clear()
			return nil, fmt.Errorf("body %q: %w", def.Name, err)
		}
		b := lvl.Physics.AddBody(def.Name, nodes[def.Name], c)
		c.Drop()
		if def.Collider.Color != "" {
			lvl.Colors[b] = lookupColor(def.Collider.Color)
		}
	}

	log.Printf("world: built %q with %d bodies", sf.Name, len(lvl.Physics.Bodies()))
	return lvl, nil
}

// NewCollider constructs the shape described by def. The caller owns the
// returned reference.
func NewCollider(def ColliderDef) (collider.Collider, error) {
	kind, err := collider.ParseKind(def.Shape)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", def.Shape, err)
	}
	offset := vec(def.Offset)

	var c collider.Collider
	switch kind {
	case collider.KindSphere:
		c = collider.NewSphere(offset, def.Radius)
	case collider.KindAABB:
		c = collider.NewBox(offset, vec(def.HalfSize))
	case collider.KindCapsule:
		c = collider.NewCapsule(offset, def.Radius, def.HalfHeight, def.Cylinder)
	case collider.KindCharacter:
		c = collider.NewCharacter(offset, def.Radius, def.HalfHeight)
	case collider.KindPlane:
		p, err := collider.NewPlane(offset, vec(def.Normal), vec(def.TrimMin), vec(def.TrimMax))
		if err != nil {
			return nil, err
		}
		c = p
	case collider.KindQuad:
		if len(def.Points) != 4 {
			return nil, fmt.Errorf("%d points: %w", len(def.Points), collider.ErrBadPointCount)
		}
		var pts [4]rl.Vector3
		for i, p := range def.Points {
			pts[i] = vec(p)
		}
		q := collider.NewQuad(offset, pts)
		q.SetTwoSided(def.TwoSided)
		c = q
	case collider.KindShearedBox:
		faces := collider.AllFaces
		if def.Faces != "" {
			f, ok := collider.ParseFaceFlags(def.Faces)
			if !ok {
				return nil, fmt.Errorf("faces %q: %w", def.Faces, ErrBadFaces)
			}
			faces = f
		}
		c = collider.NewShearedBox(offset, vec(def.HalfSize), def.ShearX, faces)
	case collider.KindFloor:
		c = collider.NewFloor(offset, vec(def.HalfSize), def.Heights)
	}

	if def.Bitflag != nil {
		c.SetBitflag(*def.Bitflag)
	}
	c.SetEnabled(!def.Disabled)
	return c, nil
}

// DescribeCollider is the inverse of NewCollider.
func DescribeCollider(c collider.Collider) ColliderDef {
	def := ColliderDef{
		Shape:    c.Kind().String(),
		Offset:   arr(c.Offset()),
		Disabled: !c.Enabled(),
	}
	if bf := c.Bitflag(); bf != collider.AllGroups {
		def.Bitflag = &bf
	}

	switch s := c.(type) {
	case *collider.Sphere:
		def.Radius = s.Radius()
	case *collider.Box:
		def.HalfSize = arr(s.HalfSize())
	case *collider.Capsule:
		def.Radius = s.Radius()
		def.HalfHeight = s.HalfHeight()
		def.Cylinder = s.Cylinder()
	case *collider.Character:
		def.Radius = s.Radius()
		def.HalfHeight = s.HalfHeight()
	case *collider.Plane:
		trim := s.TrimBox()
		def.Normal = arr(s.Normal())
		def.TrimMin = arr(trim.Min)
		def.TrimMax = arr(trim.Max)
	case *collider.Quad:
		for _, p := range s.Points() {
			def.Points = append(def.Points, arr(p))
		}
		def.TwoSided = s.TwoSided()
	case *collider.ShearedBox:
		def.HalfSize = arr(s.HalfSize())
		def.ShearX = s.ShearX()
		if s.Faces() != collider.AllFaces {
			def.Faces = s.Faces().String()
		}
	case *collider.Floor:
		def.HalfSize = arr(s.HalfSize())
		def.Heights = s.Heights()
	}
	return def
}

// Snapshot captures the current state of lvl as a scene file, so that edits
// made through shape setters can be saved.
func (lvl *Level) Snapshot() *SceneFile {
	sf := &SceneFile{Name: lvl.Name}
	for _, n := range lvl.Scene.Nodes {
		def := BodyDef{
			Name:     n.Name,
			Tags:     n.Tags,
			Position: arr(n.Transform.Position),
			Rotation: arr(n.Transform.Rotation),
			Scale:    arr(n.Transform.Scale),
		}
		if n.Parent != nil {
			def.Parent = n.Parent.Name
		}
		if b := lvl.Physics.FindBody(n.Name); b != nil {
			def.Collider = DescribeCollider(b.Collider)
			if col, ok := lvl.Colors[b]; ok {
				def.Collider.Color = lookupColorName(col)
			}
		}
		sf.Bodies = append(sf.Bodies, def)
	}
	return sf
}

// Color returns the debug color of b.
func (lvl *Level) Color(b *physics.Body) rl.Color {
	if c, ok := lvl.Colors[b]; ok {
		return c
	}
	return DefaultColor
}

// Remove deletes the named node together with its descendants and releases
// their bodies.
func (lvl *Level) Remove(name string) error {
	n := lvl.Scene.FindByName(name)
	if n == nil {
		return fmt.Errorf("remove %q: %w", name, ErrUnknownBody)
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	lvl.removeTree(n)
	log.Printf("world: removed %q, %d bodies left", name, len(lvl.Physics.Bodies()))
	return nil
}

func (lvl *Level) removeTree(n *engine.Node) {
	for _, child := range n.Children {
		lvl.removeTree(child)
	}
	if b := lvl.Physics.FindBody(n.Name); b != nil {
		delete(lvl.Colors, b)
		lvl.Physics.RemoveBody(b)
	}
	lvl.Scene.RemoveNode(n)
}

// Close releases every body.
func (lvl *Level) Close() {
	lvl.Physics.Clear()
}
