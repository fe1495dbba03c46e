package collider

import (
	"strings"

	"collide3d/internal/geom"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FaceFlags selects which faces of a ShearedBox are solid.
type FaceFlags uint8

const (
	FaceLeft FaceFlags = 1 << iota
	FaceRight
	FaceTop
	FaceBottom
	FaceFront
	FaceBack

	AllFaces = FaceLeft | FaceRight | FaceTop | FaceBottom | FaceFront | FaceBack
)

var faceNames = []struct {
	flag FaceFlags
	name string
}{
	{FaceLeft, "left"},
	{FaceRight, "right"},
	{FaceTop, "top"},
	{FaceBottom, "bottom"},
	{FaceFront, "front"},
	{FaceBack, "back"},
}

func (f FaceFlags) Has(flag FaceFlags) bool { return f&flag != 0 }

func (f FaceFlags) String() string {
	var parts []string
	for _, fn := range faceNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseFaceFlags accepts names joined by '|' or ','; "all" selects every face.
func ParseFaceFlags(s string) (FaceFlags, bool) {
	var f FaceFlags
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "all" {
			f |= AllFaces
			continue
		}
		found := false
		for _, fn := range faceNames {
			if fn.name == part {
				f |= fn.flag
				found = true
			}
		}
		if !found {
			return 0, false
		}
	}
	return f, true
}

//	   1------------2
//	  /|           /|
//	 / |          / |
//	0------------3  |
//	|  |         |  |
//	|  5---------|--6
//	| /          | /
//	|/           |/
//	4------------7
//
// Top corners 0..3, bottom corners 4..7, front is -Z. Each quad winds so
// that (b-a)x(c-a) points out of the box.
var shearedFaces = [...]struct {
	flag FaceFlags
	quad [4]int
}{
	{FaceLeft, [4]int{1, 0, 4, 5}},
	{FaceRight, [4]int{3, 2, 6, 7}},
	{FaceFront, [4]int{0, 3, 7, 4}},
	{FaceBack, [4]int{2, 1, 5, 6}},
	{FaceTop, [4]int{0, 1, 2, 3}},
	{FaceBottom, [4]int{7, 6, 5, 4}},
}

// ShearedBox is a box whose top and bottom faces are slid along X by
// -shearX at the front and +shearX at the back. Faces without a flag are
// permeable.
type ShearedBox struct {
	Base
	halfSize rl.Vector3
	shearX   float32
	faces    FaceFlags
}

func NewShearedBox(center, halfSize rl.Vector3, shearX float32, faces FaceFlags) *ShearedBox {
	s := &ShearedBox{
		halfSize: rl.Vector3{
			X: nonNegative(KindShearedBox, "halfsize.x", halfSize.X),
			Y: nonNegative(KindShearedBox, "halfsize.y", halfSize.Y),
			Z: nonNegative(KindShearedBox, "halfsize.z", halfSize.Z),
		},
		shearX: shearX,
		faces:  faces,
	}
	s.init(s, center)
	return s
}

func (s *ShearedBox) Kind() Kind               { return KindShearedBox }
func (s *ShearedBox) HalfSize() rl.Vector3     { return s.halfSize }
func (s *ShearedBox) ShearX() float32          { return s.shearX }
func (s *ShearedBox) SetShearX(v float32)      { s.shearX = v }
func (s *ShearedBox) Faces() FaceFlags         { return s.faces }
func (s *ShearedBox) SetFaces(f FaceFlags)     { s.faces = f }
func (s *ShearedBox) HasFace(f FaceFlags) bool { return s.faces.Has(f) }

func (s *ShearedBox) SetHalfSize(v rl.Vector3) error {
	if v.X < 0 || v.Y < 0 || v.Z < 0 {
		return ErrNegativeDimension
	}
	s.halfSize = v
	return nil
}

// SetFace turns a single face on or off.
func (s *ShearedBox) SetFace(f FaceFlags, on bool) {
	if on {
		s.faces |= f
	} else {
		s.faces &^= f
	}
}

// Corners returns the eight corners relative to origin.
func (s *ShearedBox) Corners(origin rl.Vector3) [8]rl.Vector3 {
	h, k := s.halfSize, s.shearX
	local := [8]rl.Vector3{
		{X: -h.X - k, Y: h.Y, Z: -h.Z},
		{X: -h.X + k, Y: h.Y, Z: h.Z},
		{X: h.X + k, Y: h.Y, Z: h.Z},
		{X: h.X - k, Y: h.Y, Z: -h.Z},
		{X: -h.X - k, Y: -h.Y, Z: -h.Z},
		{X: -h.X + k, Y: -h.Y, Z: h.Z},
		{X: h.X + k, Y: -h.Y, Z: h.Z},
		{X: h.X - k, Y: -h.Y, Z: -h.Z},
	}
	for i := range local {
		local[i] = rl.Vector3Add(local[i], origin)
	}
	return local
}

func faceQuad(p [8]rl.Vector3, idx [4]int) [4]rl.Vector3 {
	return [4]rl.Vector3{p[idx[0]], p[idx[1]], p[idx[2]], p[idx[3]]}
}

func (s *ShearedBox) AABBRaw(uint32) geom.Box {
	k := math32.Abs(s.shearX)
	return geom.NewBoxFromCenter(rl.Vector3{}, rl.Vector3{X: s.halfSize.X + k, Y: s.halfSize.Y, Z: s.halfSize.Z})
}

// RayCollision returns the nearest hit over the solid faces.
func (s *ShearedBox) RayCollision(pos, dir rl.Vector3, _ uint32) (RayHit, bool) {
	p := s.Corners(s.OffsetWorld())
	ray := geom.Ray{Pos: pos, Dir: dir}
	var best geom.Hit
	found := false
	for _, f := range shearedFaces {
		if !s.faces.Has(f.flag) {
			continue
		}
		h, ok := geom.RayQuad(ray, faceQuad(p, f.quad))
		if ok && (!found || h.Dist < best.Dist) {
			best, found = h, true
		}
	}
	if !found {
		return RayHit{}, false
	}
	return s.rayHit(best), true
}

// SphereCollision tests each solid face the ball center lies in front of,
// then the vertical edges at the front-left and back-right corners. The
// other two vertical edges have no rounding.
func (s *ShearedBox) SphereCollision(ballPos rl.Vector3, ballRadius float32, _ uint32) (float32, rl.Vector3, bool) {
	b := rl.Vector3Subtract(ballPos, s.OffsetWorld())
	h := s.halfSize
	k := math32.Abs(s.shearX)

	if math32.Abs(b.X) > h.X+ballRadius+k ||
		math32.Abs(b.Y) > h.Y+ballRadius ||
		math32.Abs(b.Z) > h.Z+ballRadius {
		return 0, rl.Vector3{}, false
	}

	inX := math32.Abs(b.X) < h.X+k
	inY := math32.Abs(b.Y) < h.Y
	inZ := math32.Abs(b.Z) < h.Z

	p := s.Corners(rl.Vector3{})
	for _, f := range shearedFaces {
		if !s.faces.Has(f.flag) {
			continue
		}
		var facing bool
		var axisNormal rl.Vector3
		switch f.flag {
		case FaceLeft:
			facing = b.X < 0 && inY && inZ
		case FaceRight:
			facing = b.X > 0 && inY && inZ
		case FaceFront:
			facing, axisNormal = b.Z < 0 && inX && inY, rl.Vector3{Z: -1}
		case FaceBack:
			facing, axisNormal = b.Z > 0 && inX && inY, rl.Vector3{Z: 1}
		case FaceTop:
			facing, axisNormal = b.Y > 0 && inX && inZ, rl.Vector3{Y: 1}
		case FaceBottom:
			facing, axisNormal = b.Y < 0 && inX && inZ, rl.Vector3{Y: -1}
		}
		if !facing {
			continue
		}
		foot, n, ok := geom.PerpendicularToQuad(b, faceQuad(p, f.quad))
		if !ok {
			continue
		}
		dist := signedDistance(b, foot, n)
		if dist > ballRadius {
			continue
		}
		if !geom.IsZero(axisNormal) {
			n = axisNormal
		}
		return dist, n, true
	}

	if !inY {
		return 0, rl.Vector3{}, false
	}
	if s.faces.Has(FaceLeft) && s.faces.Has(FaceFront) {
		edge := p[0]
		if b.X < edge.X || b.Z < -h.Z {
			if d, n, ok := edgeContact(b, edge, ballRadius); ok {
				return d, n, true
			}
		}
	}
	if s.faces.Has(FaceRight) && s.faces.Has(FaceBack) {
		edge := p[2]
		if b.X > edge.X || b.Z > h.Z {
			if d, n, ok := edgeContact(b, edge, ballRadius); ok {
				return d, n, true
			}
		}
	}
	return 0, rl.Vector3{}, false
}

// edgeContact measures the horizontal distance from b to the vertical line
// through edge.
func edgeContact(b, edge rl.Vector3, ballRadius float32) (float32, rl.Vector3, bool) {
	delta := rl.Vector3{X: b.X - edge.X, Z: b.Z - edge.Z}
	d := rl.Vector3Length(delta)
	if d > ballRadius {
		return 0, rl.Vector3{}, false
	}
	return d, geom.SafeNormalize(delta), true
}
