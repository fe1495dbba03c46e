package physics

import (
	"log"
	"sync"

	"collide3d/internal/collider"
	"collide3d/internal/engine"
	"collide3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is a static collider registered with a World, optionally placed by a
// scene node.
type Body struct {
	Name     string
	Node     *engine.Node
	Collider collider.Collider
	seq      int
}

// World owns a set of bodies and answers ray, ground and sphere queries
// against them. Queries may run concurrently; mutations take the write lock.
// Moving a body's node requires Refresh before the next query.
type World struct {
	mu     sync.RWMutex
	bodies []*Body
	grid   grid
	bounds geom.Box
	seq    int

	// OnContact fires once per contact found by ResolveSphere, after the
	// world lock is released.
	OnContact engine.EventWithArg[Contact]
}

func NewWorld() *World {
	return &World{
		bodies: make([]*Body, 0),
		grid:   newGrid(),
	}
}

// AddBody registers c under name and takes a reference on it. A non-nil node
// becomes the collider's transform.
func (w *World) AddBody(name string, node *engine.Node, c collider.Collider) *Body {
	c.Grab()
	if node != nil {
		c.SetTransform(node)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq++
	b := &Body{Name: name, Node: node, Collider: c, seq: w.seq}
	box := c.AABB(collider.AllGroups)
	if len(w.bodies) == 0 {
		w.bounds = box
	} else {
		w.bounds = w.bounds.Union(box)
	}
	w.bodies = append(w.bodies, b)
	if !w.grid.insert(b, box) {
		log.Printf("physics: body %q spans too many cells, tested by every query", name)
	}
	return b
}

// RemoveBody unregisters b and releases the world's reference.
func (w *World) RemoveBody(b *Body) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, obj := range w.bodies {
		if obj == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			b.Collider.Drop()
			w.rebuild()
			return true
		}
	}
	return false
}

// Clear releases every body and drops the contact listeners.
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.OnContact.RemoveAllListeners()
	for _, b := range w.bodies {
		b.Collider.Drop()
	}
	w.bodies = w.bodies[:0]
	w.rebuild()
}

// Refresh re-indexes all bodies after their nodes or shapes changed.
func (w *World) Refresh() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rebuild()
}

func (w *World) rebuild() {
	w.grid.reset()
	w.bounds = geom.Box{}
	for i, b := range w.bodies {
		box := b.Collider.AABB(collider.AllGroups)
		if i == 0 {
			w.bounds = box
		} else {
			w.bounds = w.bounds.Union(box)
		}
		w.grid.insert(b, box)
	}
}

// Bodies returns a snapshot of the registered bodies.
func (w *World) Bodies() []*Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

func (w *World) FindBody(name string) *Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, b := range w.bodies {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Bounds is the union of all body AABBs.
func (w *World) Bounds() geom.Box {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.bounds
}

// reach is a length that carries a ray from origin past every body.
func (w *World) reach(origin rl.Vector3) float32 {
	var far float32
	for _, c := range w.bounds.Corners() {
		if d := rl.Vector3Distance(origin, c); d > far {
			far = d
		}
	}
	return far + 1
}
