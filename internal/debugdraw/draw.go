package debugdraw

import (
	"slices"

	"collide3d/internal/collider"
	"collide3d/internal/geom"
	"collide3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	circleSegments = 16
	normalLength   = 1
)

// boxEdges index the corner order used by ShearedBox.Corners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Draw renders the wireframe of c at its world placement. Disabled
// colliders are drawn faded.
func Draw(d Drawer, c collider.Collider, color rl.Color) {
	if !c.Enabled() {
		color = rl.Fade(color, 0.3)
	}
	o := c.OffsetWorld()

	switch s := c.(type) {
	case *collider.Sphere:
		d.SphereWires(o, s.Radius(), color)
	case *collider.Box:
		d.BoxWires(geom.NewBoxFromCenter(o, s.HalfSize()), color)
	case *collider.Capsule:
		if s.Cylinder() {
			drawCylinder(d, o, s.Radius(), s.HalfHeight(), color)
		} else {
			drawCapsule(d, o, s.Radius(), s.HalfHeight(), color)
		}
	case *collider.Character:
		drawCapsule(d, o, s.Radius(), s.HalfHeight(), color)
	case *collider.Plane:
		drawPlane(d, o, s.Normal(), s.TrimBox().Translate(o), color)
	case *collider.Quad:
		pts := s.Points()
		for i := range pts {
			pts[i] = rl.Vector3Add(pts[i], o)
		}
		drawLoop(d, pts[:], color)
		drawNormal(d, centroid(pts[:]), s.Normal(), color)
	case *collider.ShearedBox:
		p := s.Corners(o)
		for _, e := range boxEdges {
			d.Line(p[e[0]], p[e[1]], color)
		}
	case *collider.Floor:
		q := s.Corners(o)
		drawLoop(d, q[:], color)
	default:
		d.BoxWires(c.AABB(collider.AllGroups), color)
	}
}

// DrawBodies draws every body of bodies with the color chosen by colorOf.
func DrawBodies(d Drawer, bodies []*physics.Body, colorOf func(*physics.Body) rl.Color) {
	for _, b := range bodies {
		Draw(d, b.Collider, colorOf(b))
	}
}

// DrawHit marks a ray hit with a small sphere and its normal.
func DrawHit(d Drawer, hit physics.RaycastHit, color rl.Color) {
	d.SphereWires(hit.Point, 0.1, color)
	drawNormal(d, hit.Point, hit.Normal, color)
}

func drawCapsule(d Drawer, center rl.Vector3, r, hh float32, color rl.Color) {
	k := hh - r
	bottom := rl.Vector3{X: center.X, Y: center.Y - k, Z: center.Z}
	top := rl.Vector3{X: center.X, Y: center.Y + k, Z: center.Z}
	d.SphereWires(bottom, r, color)
	d.SphereWires(top, r, color)
	drawStruts(d, bottom, top, r, color)
}

func drawCylinder(d Drawer, center rl.Vector3, r, hh float32, color rl.Color) {
	bottom := rl.Vector3{X: center.X, Y: center.Y - hh, Z: center.Z}
	top := rl.Vector3{X: center.X, Y: center.Y + hh, Z: center.Z}
	drawCircle(d, bottom, r, color)
	drawCircle(d, top, r, color)
	drawStruts(d, bottom, top, r, color)
}

func drawStruts(d Drawer, bottom, top rl.Vector3, r float32, color rl.Color) {
	for _, off := range [4]rl.Vector3{{X: r}, {X: -r}, {Z: r}, {Z: -r}} {
		d.Line(rl.Vector3Add(bottom, off), rl.Vector3Add(top, off), color)
	}
}

// drawCircle draws a horizontal circle.
func drawCircle(d Drawer, center rl.Vector3, r float32, color rl.Color) {
	prev := rl.Vector3{X: center.X + r, Y: center.Y, Z: center.Z}
	for i := 1; i <= circleSegments; i++ {
		a := 2 * math32.Pi * float32(i) / circleSegments
		next := rl.Vector3{X: center.X + r*math32.Cos(a), Y: center.Y, Z: center.Z + r*math32.Sin(a)}
		d.Line(prev, next, color)
		prev = next
	}
}

// drawPlane outlines the section of the plane inside its trim box.
func drawPlane(d Drawer, pos, n rl.Vector3, trim geom.Box, color rl.Color) {
	pts := sectionPolygon(pos, n, trim)
	if len(pts) < 3 {
		return
	}
	drawLoop(d, pts, color)
	drawNormal(d, centroid(pts), n, color)
}

// sectionPolygon orders the plane/box crossing points around their centroid
// and drops duplicates.
func sectionPolygon(pos, n rl.Vector3, box geom.Box) []rl.Vector3 {
	var pts []rl.Vector3
	for _, p := range geom.PlaneBoxSection(pos, n, box) {
		if !slices.ContainsFunc(pts, func(q rl.Vector3) bool { return geom.NearlyEqual(p, q, 1e-5) }) {
			pts = append(pts, p)
		}
	}
	if len(pts) < 3 {
		return pts
	}
	c := centroid(pts)
	u := geom.SafeNormalize(rl.Vector3Subtract(pts[0], c))
	v := rl.Vector3CrossProduct(n, u)
	angle := func(p rl.Vector3) float32 {
		d := rl.Vector3Subtract(p, c)
		return math32.Atan2(rl.Vector3DotProduct(d, v), rl.Vector3DotProduct(d, u))
	}
	slices.SortFunc(pts, func(a, b rl.Vector3) int {
		aa, ab := angle(a), angle(b)
		switch {
		case aa < ab:
			return -1
		case aa > ab:
			return 1
		}
		return 0
	})
	return pts
}

func drawLoop(d Drawer, pts []rl.Vector3, color rl.Color) {
	for i := range pts {
		d.Line(pts[i], pts[(i+1)%len(pts)], color)
	}
}

func drawNormal(d Drawer, from, n rl.Vector3, color rl.Color) {
	if geom.IsZero(n) {
		return
	}
	d.Line(from, rl.Vector3Add(from, rl.Vector3Scale(n, normalLength)), color)
}

func centroid(pts []rl.Vector3) rl.Vector3 {
	var c rl.Vector3
	for _, p := range pts {
		c = rl.Vector3Add(c, p)
	}
	return rl.Vector3Scale(c, 1/float32(len(pts)))
}
