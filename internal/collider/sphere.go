package collider

import (
	"collide3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Sphere struct {
	Base
	radius float32
}

func NewSphere(center rl.Vector3, radius float32) *Sphere {
	s := &Sphere{radius: nonNegative(KindSphere, "radius", radius)}
	s.init(s, center)
	return s
}

func (s *Sphere) Kind() Kind      { return KindSphere }
func (s *Sphere) Radius() float32 { return s.radius }

func (s *Sphere) SetRadius(r float32) error {
	if r < 0 {
		return ErrNegativeDimension
	}
	s.radius = r
	return nil
}

func (s *Sphere) AABBRaw(uint32) geom.Box {
	return geom.NewBoxFromCenter(rl.Vector3{}, rl.Vector3{X: s.radius, Y: s.radius, Z: s.radius})
}

func (s *Sphere) RayCollision(pos, dir rl.Vector3, _ uint32) (RayHit, bool) {
	h, ok := geom.RaySphere(geom.Ray{Pos: pos, Dir: dir}, s.OffsetWorld(), s.radius)
	if !ok {
		return RayHit{}, false
	}
	return s.rayHit(h), true
}

// SphereCollision measures from the ball center to this sphere's surface.
func (s *Sphere) SphereCollision(ballPos rl.Vector3, ballRadius float32, _ uint32) (float32, rl.Vector3, bool) {
	delta := rl.Vector3Subtract(ballPos, s.OffsetWorld())
	dist := rl.Vector3Length(delta) - s.radius
	if dist >= ballRadius {
		return 0, rl.Vector3{}, false
	}
	return dist, geom.SafeNormalize(delta), true
}
