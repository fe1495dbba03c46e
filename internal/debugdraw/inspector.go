package debugdraw

import (
	"fmt"
	"log"

	"collide3d/internal/collider"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Field is one editable number of a collider. Set goes through the shape's
// own setter so that invalid values are rejected the same way as in code.
type Field struct {
	Label    string
	Value    float32
	Min, Max float32
	Set      func(float32) error
}

// Toggle is one editable flag of a collider.
type Toggle struct {
	Label string
	Value bool
	Set   func(bool)
}

// Fields lists the numeric parameters of c.
func Fields(c collider.Collider) []Field {
	off := c.Offset()
	fields := []Field{
		{"Offset X", off.X, -20, 20, func(v float32) error { off.X = v; c.SetOffset(off); return nil }},
		{"Offset Y", off.Y, -20, 20, func(v float32) error { off.Y = v; c.SetOffset(off); return nil }},
		{"Offset Z", off.Z, -20, 20, func(v float32) error { off.Z = v; c.SetOffset(off); return nil }},
	}

	switch s := c.(type) {
	case *collider.Sphere:
		fields = append(fields, Field{"Radius", s.Radius(), 0, 10, s.SetRadius})
	case *collider.Box:
		fields = append(fields, halfSizeFields(s.HalfSize(), s.SetHalfSize)...)
	case *collider.Capsule:
		fields = append(fields,
			Field{"Radius", s.Radius(), 0, 10, s.SetRadius},
			Field{"Half Height", s.HalfHeight(), 0, 10, s.SetHalfHeight})
	case *collider.Character:
		fields = append(fields,
			Field{"Radius", s.Radius(), 0, 10, s.SetRadius},
			Field{"Half Height", s.HalfHeight(), 0, 10, s.SetHalfHeight})
	case *collider.ShearedBox:
		fields = append(fields, halfSizeFields(s.HalfSize(), s.SetHalfSize)...)
		fields = append(fields, Field{"Shear X", s.ShearX(), -10, 10, func(v float32) error { s.SetShearX(v); return nil }})
	case *collider.Floor:
		h := s.HalfSize()
		fields = append(fields,
			Field{"Half X", h.X, 0, 20, func(v float32) error { h.X = v; return s.SetHalfSize(h) }},
			Field{"Half Z", h.Z, 0, 20, func(v float32) error { h.Z = v; return s.SetHalfSize(h) }})
		hs := s.Heights()
		for i := range hs {
			fields = append(fields, Field{fmt.Sprintf("Height %d", i), hs[i], -10, 10, func(v float32) error {
				hs[i] = v
				s.SetHeights(hs)
				return nil
			}})
		}
	}
	return fields
}

func halfSizeFields(h rl.Vector3, set func(rl.Vector3) error) []Field {
	return []Field{
		{"Half X", h.X, 0, 20, func(v float32) error { h.X = v; return set(h) }},
		{"Half Y", h.Y, 0, 20, func(v float32) error { h.Y = v; return set(h) }},
		{"Half Z", h.Z, 0, 20, func(v float32) error { h.Z = v; return set(h) }},
	}
}

// Toggles lists the boolean parameters of c.
func Toggles(c collider.Collider) []Toggle {
	toggles := []Toggle{{"Enabled", c.Enabled(), c.SetEnabled}}
	switch s := c.(type) {
	case *collider.Capsule:
		toggles = append(toggles, Toggle{"Cylinder", s.Cylinder(), s.SetCylinder})
	case *collider.Quad:
		toggles = append(toggles, Toggle{"Two Sided", s.TwoSided(), s.SetTwoSided})
	case *collider.ShearedBox:
		for _, f := range []collider.FaceFlags{
			collider.FaceLeft, collider.FaceRight, collider.FaceTop,
			collider.FaceBottom, collider.FaceFront, collider.FaceBack,
		} {
			toggles = append(toggles, Toggle{f.String(), s.HasFace(f), func(on bool) { s.SetFace(f, on) }})
		}
	}
	return toggles
}

// Inspector is a raygui panel editing one collider at a time.
type Inspector struct {
	X, Y      int32
	Width     int32
	RowHeight int32
}

func NewInspector(x, y int32) *Inspector {
	return &Inspector{X: x, Y: y, Width: 260, RowHeight: 22}
}

// Draw renders the panel for c and applies edits. It reports whether any
// parameter changed, in which case the caller should refresh its broadphase.
func (in *Inspector) Draw(title string, c collider.Collider) bool {
	fields := Fields(c)
	toggles := Toggles(c)
	rows := int32(len(fields)+len(toggles)) + 1
	panel := rl.Rectangle{X: float32(in.X), Y: float32(in.Y), Width: float32(in.Width), Height: float32(rows*(in.RowHeight+2) + 8)}
	rl.DrawRectangleRec(panel, rl.Fade(rl.Black, 0.7))
	rl.DrawText(fmt.Sprintf("%s (%s)", title, c.Kind()), in.X+6, in.Y+4, 16, rl.RayWhite)

	labelW := int32(90)
	y := in.Y + in.RowHeight + 4
	changed := false
	for _, f := range fields {
		rl.DrawText(f.Label, in.X+6, y+4, 14, rl.LightGray)
		bounds := rl.Rectangle{X: float32(in.X + labelW), Y: float32(y), Width: float32(in.Width - labelW - 50), Height: float32(in.RowHeight)}
		v := gui.Slider(bounds, "", fmt.Sprintf("%.2f", f.Value), f.Value, f.Min, f.Max)
		if v != f.Value {
			if err := f.Set(v); err != nil {
				log.Printf("debugdraw: %s %s: %v", title, f.Label, err)
			} else {
				changed = true
			}
		}
		y += in.RowHeight + 2
	}
	for _, t := range toggles {
		bounds := rl.Rectangle{X: float32(in.X + 6), Y: float32(y), Width: float32(in.RowHeight), Height: float32(in.RowHeight)}
		if v := gui.CheckBox(bounds, t.Label, t.Value); v != t.Value {
			t.Set(v)
			changed = true
		}
		y += in.RowHeight + 2
	}
	return changed
}
