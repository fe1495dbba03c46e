// Stress test comparing grid broad-phase queries against a naive scan
package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"collide3d/internal/collider"
	"collide3d/internal/engine"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const queries = 2000

func main() {
	log.SetOutput(io.Discard)

	// Test various body counts
	testCounts := []int{100, 500, 1000, 2000, 5000, 10000}

	for _, count := range testCounts {
		testResolve(count)
	}
	fmt.Println()
	for _, kind := range []collider.Kind{
		collider.KindSphere, collider.KindAABB, collider.KindCapsule, collider.KindCharacter,
		collider.KindPlane, collider.KindQuad, collider.KindShearedBox, collider.KindFloor,
	} {
		testShape(kind)
	}
}

// randomShape builds a small collider of the given kind.
func randomShape(rng *rand.Rand, kind collider.Kind) collider.Collider {
	size := 0.5 + rng.Float32()
	half := rl.Vector3{X: size, Y: size, Z: size}
	switch kind {
	case collider.KindAABB:
		return collider.NewBox(rl.Vector3{}, half)
	case collider.KindCapsule:
		return collider.NewCapsule(rl.Vector3{}, size/2, size, rng.Intn(2) == 0)
	case collider.KindCharacter:
		return collider.NewCharacter(rl.Vector3{}, size/2, size)
	case collider.KindPlane:
		p, _ := collider.NewPlane(rl.Vector3{}, rl.Vector3{X: rng.Float32() - 0.5, Y: 1, Z: rng.Float32() - 0.5},
			rl.Vector3Negate(half), half)
		return p
	case collider.KindQuad:
		q := collider.NewQuad(rl.Vector3{}, [4]rl.Vector3{
			{X: -size, Z: -size}, {X: -size, Z: size}, {X: size, Y: rng.Float32(), Z: size}, {X: size, Z: -size},
		})
		q.SetTwoSided(true)
		return q
	case collider.KindShearedBox:
		return collider.NewShearedBox(rl.Vector3{}, half, rng.Float32()-0.5, collider.AllFaces)
	case collider.KindFloor:
		return collider.NewFloor(rl.Vector3{}, rl.Vector3{X: size, Z: size},
			[4]float32{0, rng.Float32(), rng.Float32(), 0})
	}
	return collider.NewSphere(rl.Vector3{}, size)
}

// populate scatters count bodies in a cube whose size grows with count to
// keep density reasonable.
func populate(rng *rand.Rand, count int, kind func() collider.Kind) (*physics.World, float32) {
	w := physics.NewWorld()
	spawnSize := float32(50.0) + float32(count)/100.0
	for i := 0; i < count; i++ {
		node := engine.NewNode(fmt.Sprintf("body%d", i))
		node.Transform.Position = randomPoint(rng, spawnSize)
		c := randomShape(rng, kind())
		w.AddBody(node.Name, node, c)
		c.Drop()
	}
	return w, spawnSize
}

func randomPoint(rng *rand.Rand, size float32) rl.Vector3 {
	return rl.Vector3{
		X: rng.Float32()*size - size/2,
		Y: rng.Float32()*size - size/2,
		Z: rng.Float32()*size - size/2,
	}
}

func testResolve(count int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results
	w, spawnSize := populate(rng, count, func() collider.Kind { return collider.Kind(rng.Intn(8)) })
	defer w.Clear()

	tests := make([]collider.CollisionTest, queries)
	for i := range tests {
		tests[i] = collider.NewCollisionTest(randomPoint(rng, spawnSize), 0.5)
		tests[i].BallSpeed = rl.Vector3{Y: -0.5}
	}

	// Time grid
	gridStart := time.Now()
	gridContacts := 0
	for i := range tests {
		t := tests[i]
		gridContacts += len(w.ResolveSphere(&t))
	}
	gridTime := time.Since(gridStart) / queries

	// Time naive scan over every body
	bodies := w.Bodies()
	naiveStart := time.Now()
	naiveContacts := 0
	for i := range tests {
		t := tests[i]
		for _, b := range bodies {
			if !b.Collider.Accepts(t.Bitmask) {
				continue
			}
			probe := t
			if collider.Resolve(b.Collider, &probe) {
				naiveContacts++
				t.BallPos = probe.ResultNewPos
			}
		}
	}
	naiveTime := time.Since(naiveStart) / queries

	speedup := float64(naiveTime) / float64(gridTime)
	fmt.Printf("%5d bodies: grid %8v (%4d contacts) | naive %10v (%4d contacts) | %.1fx speedup\n",
		count, gridTime.Round(time.Nanosecond), gridContacts,
		naiveTime.Round(time.Nanosecond), naiveContacts, speedup)
}

func testShape(kind collider.Kind) {
	rng := rand.New(rand.NewSource(42))
	w, spawnSize := populate(rng, 1000, func() collider.Kind { return kind })
	defer w.Clear()

	start := time.Now()
	hits := 0
	for i := 0; i < queries; i++ {
		origin := randomPoint(rng, spawnSize)
		dir := rl.Vector3Normalize(rl.Vector3Subtract(randomPoint(rng, spawnSize), origin))
		if _, ok := w.Raycast(origin, dir, -1, collider.AllGroups); ok {
			hits++
		}
	}
	rayTime := time.Since(start) / queries

	start = time.Now()
	contacts := 0
	for i := 0; i < queries; i++ {
		t := collider.NewCollisionTest(randomPoint(rng, spawnSize), 1)
		contacts += len(w.ResolveSphere(&t))
	}
	sphereTime := time.Since(start) / queries

	fmt.Printf("%-10s ray %8v (%4d hits) | sphere %8v (%4d contacts)\n",
		kind, rayTime.Round(time.Nanosecond), hits, sphereTime.Round(time.Nanosecond), contacts)
}
