package geom

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Segment zones reported by SegmentDistance.
const (
	ZoneBeforeA = -1
	ZoneInside  = 0
	ZonePastB   = 1
)

// TriangleNormal returns the unit normal of (b-a)x(c-a), zero for a
// degenerate triangle.
func TriangleNormal(a, b, c rl.Vector3) rl.Vector3 {
	return SafeNormalize(rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a)))
}

// PointInTriangle reports whether p, assumed to lie on the triangle's plane,
// is inside the triangle or on its border. Works for either winding.
func PointInTriangle(p, a, b, c rl.Vector3) bool {
	n := rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a))
	if IsZero(n) {
		return false
	}
	edges := [3][2]rl.Vector3{{a, b}, {b, c}, {c, a}}
	for _, e := range edges {
		side := rl.Vector3CrossProduct(rl.Vector3Subtract(e[1], e[0]), rl.Vector3Subtract(p, e[0]))
		if rl.Vector3DotProduct(side, n) < 0 {
			return false
		}
	}
	return true
}

// PerpendicularToLine returns the foot of p on the infinite line through a
// with direction dir.
func PerpendicularToLine(p, a, dir rl.Vector3) rl.Vector3 {
	dd := rl.Vector3DotProduct(dir, dir)
	if dd < Epsilon*Epsilon {
		return a
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p, a), dir) / dd
	return rl.Vector3Add(a, rl.Vector3Scale(dir, t))
}

// PerpendicularToPlane returns the foot of p on the plane through pos with
// unit normal n.
func PerpendicularToPlane(p, pos, n rl.Vector3) rl.Vector3 {
	d := rl.Vector3DotProduct(rl.Vector3Subtract(p, pos), n)
	return rl.Vector3Subtract(p, rl.Vector3Scale(n, d))
}

// PerpendicularToTriangle projects p onto the triangle's plane and reports
// the foot only when it falls inside the triangle.
func PerpendicularToTriangle(p, a, b, c rl.Vector3) (rl.Vector3, rl.Vector3, bool) {
	n := TriangleNormal(a, b, c)
	if IsZero(n) {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	foot := PerpendicularToPlane(p, a, n)
	if !PointInTriangle(foot, a, b, c) {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	return foot, n, true
}

// PerpendicularToQuad tries triangles (q0,q1,q2) then (q2,q3,q0) and returns
// the foot and normal of the first that contains the projection.
func PerpendicularToQuad(p rl.Vector3, q [4]rl.Vector3) (rl.Vector3, rl.Vector3, bool) {
	if foot, n, ok := PerpendicularToTriangle(p, q[0], q[1], q[2]); ok {
		return foot, n, true
	}
	return PerpendicularToTriangle(p, q[2], q[3], q[0])
}

// PointInQuad tests p against the two triangles of a planar quad.
func PointInQuad(p rl.Vector3, q [4]rl.Vector3) bool {
	return PointInTriangle(p, q[0], q[1], q[2]) || PointInTriangle(p, q[2], q[3], q[0])
}

// SegmentDistance returns the distance from p to segment [a,b], the closest
// point on it and which zone p projects into. A degenerate segment behaves
// as the point a.
func SegmentDistance(p, a, b rl.Vector3) (float32, rl.Vector3, int) {
	ab := rl.Vector3Subtract(b, a)
	l2 := rl.Vector3DotProduct(ab, ab)
	if l2 < Epsilon*Epsilon {
		return rl.Vector3Distance(p, a), a, ZoneBeforeA
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab) / l2
	switch {
	case t < 0:
		return rl.Vector3Distance(p, a), a, ZoneBeforeA
	case t > 1:
		return rl.Vector3Distance(p, b), b, ZonePastB
	}
	foot := rl.Vector3Add(a, rl.Vector3Scale(ab, t))
	return rl.Vector3Distance(p, foot), foot, ZoneInside
}

// LineDistance returns the distance from p to the infinite line through a and b.
func LineDistance(p, a, b rl.Vector3) (float32, rl.Vector3) {
	foot := PerpendicularToLine(p, a, rl.Vector3Subtract(b, a))
	return rl.Vector3Distance(p, foot), foot
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// PlaneBoxSection returns the points where the plane through pos with normal n
// crosses the edges of box. Their bounds are the bounds of the section polygon.
func PlaneBoxSection(pos, n rl.Vector3, box Box) []rl.Vector3 {
	corners := box.Corners()
	var side [8]float32
	for i, c := range corners {
		side[i] = rl.Vector3DotProduct(rl.Vector3Subtract(c, pos), n)
	}
	var pts []rl.Vector3
	for _, e := range boxEdges {
		da, db := side[e[0]], side[e[1]]
		switch {
		case da == 0 && db == 0:
			pts = append(pts, corners[e[0]], corners[e[1]])
		case da == 0:
			pts = append(pts, corners[e[0]])
		case db == 0:
			pts = append(pts, corners[e[1]])
		case (da < 0) != (db < 0):
			t := da / (da - db)
			pts = append(pts, rl.Vector3Lerp(corners[e[0]], corners[e[1]], t))
		}
	}
	return pts
}
