package physics

import (
	"slices"

	"collide3d/internal/geom"

	"github.com/chewxy/math32"
)

// CellSize is the edge length of a broad-phase grid cell.
const CellSize = 5.0

const (
	// Bodies spanning more cells than this skip the grid and are tested by
	// every query.
	maxCellsPerBody = 512
	// Queries spanning more cells than this scan every body directly.
	maxCellsPerQuery = 4096
)

type cellKey struct {
	X, Y, Z int
}

// maxCellCoord bounds cell indices so far-away or unbounded boxes cannot
// overflow int.
const maxCellCoord = 1 << 30

func cellCoord(f float32) int {
	c := math32.Floor(f / CellSize)
	switch {
	case math32.IsNaN(c):
		return 0
	case c > maxCellCoord:
		return maxCellCoord
	case c < -maxCellCoord:
		return -maxCellCoord
	}
	return int(c)
}

// cellRange returns the inclusive cell bounds covering box and the number of
// cells in between. The count saturates just above maxCellsPerQuery, and
// boxes with non-finite bounds always saturate.
func cellRange(box geom.Box) (cellKey, cellKey, int) {
	lo := cellKey{cellCoord(box.Min.X), cellCoord(box.Min.Y), cellCoord(box.Min.Z)}
	hi := cellKey{cellCoord(box.Max.X), cellCoord(box.Max.Y), cellCoord(box.Max.Z)}
	const saturated = maxCellsPerQuery + 1
	if !finiteBox(box) {
		return lo, hi, saturated
	}
	n := 1
	for _, span := range [3]int{hi.X - lo.X + 1, hi.Y - lo.Y + 1, hi.Z - lo.Z + 1} {
		if span <= 0 {
			return lo, hi, 0
		}
		if span > saturated {
			return lo, hi, saturated
		}
		n *= span
		if n > saturated {
			return lo, hi, saturated
		}
	}
	return lo, hi, n
}

func finiteBox(box geom.Box) bool {
	for _, f := range [6]float32{box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z} {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// grid is a uniform spatial hash over body AABBs.
type grid struct {
	cells map[cellKey][]*Body
	large []*Body
}

func newGrid() grid {
	return grid{cells: make(map[cellKey][]*Body)}
}

func (g *grid) reset() {
	for k := range g.cells {
		delete(g.cells, k)
	}
	g.large = g.large[:0]
}

// insert reports false when b was too large for the cells.
func (g *grid) insert(b *Body, box geom.Box) bool {
	lo, hi, n := cellRange(box)
	if n > maxCellsPerBody || n <= 0 {
		g.large = append(g.large, b)
		return false
	}
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				key := cellKey{x, y, z}
				g.cells[key] = append(g.cells[key], b)
			}
		}
	}
	return true
}

// query returns the bodies whose cells touch box, in insertion order.
func (g *grid) query(box geom.Box, all []*Body) []*Body {
	lo, hi, n := cellRange(box)
	if n > maxCellsPerQuery || n <= 0 {
		return all
	}
	seen := make(map[*Body]struct{})
	out := make([]*Body, 0, len(g.large)+8)
	add := func(b *Body) {
		if _, ok := seen[b]; ok {
			return
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	for _, b := range g.large {
		add(b)
	}
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				for _, b := range g.cells[cellKey{x, y, z}] {
					add(b)
				}
			}
		}
	}
	slices.SortFunc(out, func(a, b *Body) int { return a.seq - b.seq })
	return out
}
