package physics

import (
	"collide3d/internal/collider"
	"collide3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface classifies a contact normal by its vertical component.
type Surface int

const (
	SurfaceNone Surface = iota
	SurfaceGround
	SurfaceWall
	SurfaceCeiling
)

func (s Surface) String() string {
	switch s {
	case SurfaceGround:
		return "ground"
	case SurfaceWall:
		return "wall"
	case SurfaceCeiling:
		return "ceiling"
	}
	return "none"
}

const (
	// SlopeThreshold is the normal Y above which a surface counts as ground
	// and below whose negation it counts as ceiling.
	SlopeThreshold = 0.7
	// SnapDistance is how far above and below SnapToGround searches.
	SnapDistance = 10
)

func SurfaceType(normal rl.Vector3) Surface {
	switch {
	case geom.IsZero(normal):
		return SurfaceNone
	case normal.Y < -SlopeThreshold:
		return SurfaceCeiling
	case normal.Y < SlopeThreshold:
		return SurfaceWall
	}
	return SurfaceGround
}

// GroundPoint casts straight down from maxPenetration above pos and returns
// the highest surface hit.
func (w *World) GroundPoint(pos rl.Vector3, maxPenetration float32, mask uint32) (RaycastHit, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.groundPoint(pos, maxPenetration, mask, nil)
}

func (w *World) groundPoint(pos rl.Vector3, maxPenetration float32, mask uint32, skip collider.Collider) (RaycastHit, bool) {
	origin := pos
	origin.Y += maxPenetration
	var best RaycastHit
	found := false
	w.raycastEnumerate(origin, geom.Down, -1, mask, skip, func(h RaycastHit) bool {
		if !found || h.Point.Y > best.Point.Y {
			best, found = h, true
		}
		return true
	})
	return best, found
}

// Altitude is the height of pos above the ground below it, or -1 when there
// is none.
func (w *World) Altitude(pos rl.Vector3, mask uint32) (float32, bool) {
	g, ok := w.GroundPoint(pos, 0, mask)
	if !ok {
		return -1, false
	}
	return pos.Y - g.Point.Y, true
}

// SnapToGround moves pos onto the ground when one lies within SnapDistance.
func (w *World) SnapToGround(pos rl.Vector3, mask uint32) (rl.Vector3, bool) {
	g, ok := w.GroundPoint(pos, SnapDistance, mask)
	if !ok || pos.Y-g.Point.Y > SnapDistance {
		return pos, false
	}
	pos.Y = g.Point.Y
	return pos, true
}
