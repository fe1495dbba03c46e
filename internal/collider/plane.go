package collider

import (
	"fmt"

	"collide3d/internal/geom"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane is an infinite plane through the offset, limited to the part that
// lies inside a local trim box.
type Plane struct {
	Base
	normal rl.Vector3
	trim   geom.Box
	bounds geom.Box
}

// NewPlane fails when normal has no direction.
func NewPlane(center, normal, trimMin, trimMax rl.Vector3) (*Plane, error) {
	n := geom.SafeNormalize(normal)
	if geom.IsZero(n) {
		return nil, fmt.Errorf("new plane: %w", ErrDegenerateNormal)
	}
	p := &Plane{normal: n}
	p.init(p, center)
	p.SetTrimBox(trimMin, trimMax)
	return p, nil
}

func (p *Plane) Kind() Kind         { return KindPlane }
func (p *Plane) Normal() rl.Vector3 { return p.normal }
func (p *Plane) TrimBox() geom.Box  { return p.trim }

// SetNormal keeps the previous normal when v cannot be normalized.
func (p *Plane) SetNormal(v rl.Vector3) error {
	n := geom.SafeNormalize(v)
	if geom.IsZero(n) {
		return ErrDegenerateNormal
	}
	p.normal = n
	p.updateBounds()
	return nil
}

// SetTrimBox sets the local trim region. Corners may be given in any order.
func (p *Plane) SetTrimBox(trimMin, trimMax rl.Vector3) {
	p.trim = geom.BoxOf(trimMin, trimMax)
	p.updateBounds()
}

func (p *Plane) updateBounds() {
	p.bounds = geom.BoxOf(geom.PlaneBoxSection(rl.Vector3{}, p.normal, p.trim)...)
}

// inTrim uses half-open intervals so that neighbouring planes sharing a
// trim border never both claim a point.
func (p *Plane) inTrim(local rl.Vector3) bool {
	t := p.trim
	return t.Min.X <= local.X && local.X < t.Max.X &&
		t.Min.Y <= local.Y && local.Y < t.Max.Y &&
		t.Min.Z <= local.Z && local.Z < t.Max.Z
}

func (p *Plane) AABBRaw(uint32) geom.Box { return p.bounds }

// RayCollision ignores rays arriving from behind the plane.
func (p *Plane) RayCollision(pos, dir rl.Vector3, _ uint32) (RayHit, bool) {
	if rl.Vector3DotProduct(p.normal, dir) >= 0 {
		return RayHit{}, false
	}
	wpos := p.OffsetWorld()
	h, ok := geom.RayPlane(geom.Ray{Pos: pos, Dir: dir}, wpos, p.normal)
	if !ok || !p.inTrim(rl.Vector3Subtract(h.Pos, wpos)) {
		return RayHit{}, false
	}
	return p.rayHit(h), true
}

func (p *Plane) SphereCollision(ballPos rl.Vector3, ballRadius float32, _ uint32) (float32, rl.Vector3, bool) {
	wpos := p.OffsetWorld()
	foot := geom.PerpendicularToPlane(ballPos, wpos, p.normal)
	if !p.inTrim(rl.Vector3Subtract(foot, wpos)) {
		return 0, rl.Vector3{}, false
	}
	dist := signedDistance(ballPos, foot, p.normal)
	if math32.Abs(dist) > ballRadius {
		return 0, rl.Vector3{}, false
	}
	return dist, p.normal, true
}

// signedDistance is |ball-foot|, negative when ball is behind normal.
func signedDistance(ball, foot, normal rl.Vector3) float32 {
	delta := rl.Vector3Subtract(ball, foot)
	d := rl.Vector3Length(delta)
	if rl.Vector3DotProduct(delta, normal) < 0 {
		return -d
	}
	return d
}
