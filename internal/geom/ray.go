package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a half-line. Dir need not be unit length.
type Ray struct {
	Pos rl.Vector3
	Dir rl.Vector3
}

// Hit describes where a ray meets a surface. Dist is measured from the ray
// origin in world units and Normal is unit length.
type Hit struct {
	Dist   float32
	Pos    rl.Vector3
	Normal rl.Vector3
}

// At returns the point at distance t along the normalized direction.
func (r Ray) At(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Pos, rl.Vector3Scale(SafeNormalize(r.Dir), t))
}

func hitAt(r Ray, unit rl.Vector3, t float32, normal rl.Vector3) Hit {
	return Hit{Dist: t, Pos: rl.Vector3Add(r.Pos, rl.Vector3Scale(unit, t)), Normal: normal}
}

// RaySphere intersects a ray with a sphere. Rays starting inside the sphere
// or pointing away from it do not hit.
func RaySphere(r Ray, center rl.Vector3, radius float32) (Hit, bool) {
	d := SafeNormalize(r.Dir)
	if IsZero(d) || radius <= 0 {
		return Hit{}, false
	}
	m := rl.Vector3Subtract(r.Pos, center)
	b := rl.Vector3DotProduct(m, d)
	c := rl.Vector3DotProduct(m, m) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return Hit{}, false
	}
	s := math32.Sqrt(disc)
	t0 := -b - s
	t1 := -b + s
	if t0 < 0 || t1 < 0 {
		return Hit{}, false
	}
	h := hitAt(r, d, t0, rl.Vector3{})
	h.Normal = SafeNormalize(rl.Vector3Subtract(h.Pos, center))
	return h, true
}

// RayPlane intersects a ray with the two-sided plane through pos with unit
// normal n. Parallel rays and hits behind the origin are rejected.
func RayPlane(r Ray, pos, n rl.Vector3) (Hit, bool) {
	d := SafeNormalize(r.Dir)
	denom := rl.Vector3DotProduct(n, d)
	if math32.Abs(denom) < Epsilon {
		return Hit{}, false
	}
	t := rl.Vector3DotProduct(n, rl.Vector3Subtract(pos, r.Pos)) / denom
	if t < 0 {
		return Hit{}, false
	}
	return hitAt(r, d, t, n), true
}

// RayTriangle intersects a ray with a two-sided triangle. The reported normal
// is the triangle normal (b-a)x(c-a).
func RayTriangle(r Ray, a, b, c rl.Vector3) (Hit, bool) {
	n := TriangleNormal(a, b, c)
	if IsZero(n) {
		return Hit{}, false
	}
	h, ok := RayPlane(r, a, n)
	if !ok || !PointInTriangle(h.Pos, a, b, c) {
		return Hit{}, false
	}
	return h, true
}

// RayQuad tests triangles (q0,q1,q2) and (q2,q3,q0) in order.
func RayQuad(r Ray, q [4]rl.Vector3) (Hit, bool) {
	if h, ok := RayTriangle(r, q[0], q[1], q[2]); ok {
		return h, true
	}
	return RayTriangle(r, q[2], q[3], q[0])
}

// RayAABB is the slab test. A ray starting inside the box reports the exit
// point with the outward normal of the exit face.
func RayAABB(r Ray, box Box) (Hit, bool) {
	d := SafeNormalize(r.Dir)
	if IsZero(d) {
		return Hit{}, false
	}
	tNear := float32(-math32.MaxFloat32)
	tFar := float32(math32.MaxFloat32)
	nearAxis, farAxis := -1, -1
	for i := 0; i < 3; i++ {
		o, di := axis(r.Pos, i), axis(d, i)
		lo, hi := axis(box.Min, i), axis(box.Max, i)
		if math32.Abs(di) < Epsilon {
			if o < lo || o > hi {
				return Hit{}, false
			}
			continue
		}
		t1 := (lo - o) / di
		t2 := (hi - o) / di
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear, nearAxis = t1, i
		}
		if t2 < tFar {
			tFar, farAxis = t2, i
		}
		if tNear > tFar {
			return Hit{}, false
		}
	}
	if tFar < 0 {
		return Hit{}, false
	}
	var n rl.Vector3
	if tNear >= 0 && nearAxis >= 0 {
		setAxis(&n, nearAxis, -sign(axis(d, nearAxis)))
		return hitAt(r, d, tNear, n), true
	}
	if farAxis < 0 {
		return Hit{}, false
	}
	setAxis(&n, farAxis, sign(axis(d, farAxis)))
	return hitAt(r, d, tFar, n), true
}

// RayCylinder intersects a ray with the infinite cylinder around the line
// through a with direction axisDir. Rays starting inside do not hit.
func RayCylinder(r Ray, a, axisDir rl.Vector3, radius float32) (Hit, bool) {
	d := SafeNormalize(r.Dir)
	u := SafeNormalize(axisDir)
	if IsZero(d) || IsZero(u) || radius <= 0 {
		return Hit{}, false
	}
	m := rl.Vector3Subtract(r.Pos, a)
	dPerp := rl.Vector3Subtract(d, rl.Vector3Scale(u, rl.Vector3DotProduct(d, u)))
	mPerp := rl.Vector3Subtract(m, rl.Vector3Scale(u, rl.Vector3DotProduct(m, u)))
	qa := rl.Vector3DotProduct(dPerp, dPerp)
	if qa < Epsilon*Epsilon {
		return Hit{}, false
	}
	qb := rl.Vector3DotProduct(dPerp, mPerp)
	qc := rl.Vector3DotProduct(mPerp, mPerp) - radius*radius
	if qc < 0 {
		return Hit{}, false
	}
	disc := qb*qb - qa*qc
	if disc < 0 {
		return Hit{}, false
	}
	t := (-qb - math32.Sqrt(disc)) / qa
	if t < 0 {
		return Hit{}, false
	}
	n := SafeNormalize(rl.Vector3Add(mPerp, rl.Vector3Scale(dPerp, t)))
	return hitAt(r, d, t, n), true
}

// RayCapsule intersects a ray with the capsule swept by a sphere of radius
// along segment [a,b]. The nearest of the two caps and the wall wins.
func RayCapsule(r Ray, a, b rl.Vector3, radius float32) (Hit, bool) {
	ab := rl.Vector3Subtract(b, a)
	if IsZero(ab) {
		return RaySphere(r, a, radius)
	}
	var best Hit
	found := false
	keep := func(h Hit) {
		if !found || h.Dist < best.Dist {
			best, found = h, true
		}
	}
	if h, ok := RayCylinder(r, a, ab, radius); ok {
		s := rl.Vector3DotProduct(rl.Vector3Subtract(h.Pos, a), ab)
		if s >= 0 && s <= rl.Vector3DotProduct(ab, ab) {
			keep(h)
		}
	}
	if h, ok := RaySphere(r, a, radius); ok {
		if rl.Vector3DotProduct(rl.Vector3Subtract(h.Pos, a), ab) <= 0 {
			keep(h)
		}
	}
	if h, ok := RaySphere(r, b, radius); ok {
		if rl.Vector3DotProduct(rl.Vector3Subtract(h.Pos, b), ab) >= 0 {
			keep(h)
		}
	}
	return best, found
}

func sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}
