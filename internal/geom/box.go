package geom

import rl "github.com/gen2brain/raylib-go/raylib"

// Box is an axis-aligned bounding box.
type Box struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewBoxFromCenter creates a box from a center point and half extents.
func NewBoxFromCenter(center, half rl.Vector3) Box {
	return Box{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// BoxOf returns the smallest box holding all points. Zero points give an
// empty box at the origin.
func BoxOf(points ...rl.Vector3) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.ExtendPoint(p)
	}
	return b
}

func (b Box) Translate(v rl.Vector3) Box {
	return Box{Min: rl.Vector3Add(b.Min, v), Max: rl.Vector3Add(b.Max, v)}
}

func (b Box) Union(o Box) Box {
	return Box{Min: minVec(b.Min, o.Min), Max: maxVec(b.Max, o.Max)}
}

func (b Box) ExtendPoint(p rl.Vector3) Box {
	return Box{Min: minVec(b.Min, p), Max: maxVec(b.Max, p)}
}

// Expand grows the box by d on every side.
func (b Box) Expand(d float32) Box {
	e := rl.Vector3{X: d, Y: d, Z: d}
	return Box{Min: rl.Vector3Subtract(b.Min, e), Max: rl.Vector3Add(b.Max, e)}
}

func (b Box) Intersects(o Box) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Contains reports whether p lies inside the box grown by tol.
func (b Box) Contains(p rl.Vector3, tol float32) bool {
	return p.X >= b.Min.X-tol && p.X <= b.Max.X+tol &&
		p.Y >= b.Min.Y-tol && p.Y <= b.Max.Y+tol &&
		p.Z >= b.Min.Z-tol && p.Z <= b.Max.Z+tol
}

// Top is the highest Y of the box.
func (b Box) Top() float32 { return b.Max.Y }

// Corners returns the eight corners, bottom face first.
func (b Box) Corners() [8]rl.Vector3 {
	return [8]rl.Vector3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// SegmentBox bounds the segment from p to p+d.
func SegmentBox(p, d rl.Vector3) Box {
	return BoxOf(p, rl.Vector3Add(p, d))
}

// ToRaylib converts to the raylib bounding box type.
func (b Box) ToRaylib() rl.BoundingBox {
	return rl.BoundingBox{Min: b.Min, Max: b.Max}
}
