package main

import (
	"context"
	"fmt"
	"log"

	"collide3d/internal/camera"
	"collide3d/internal/collider"
	"collide3d/internal/debugdraw"
	"collide3d/internal/engine"
	"collide3d/internal/physics"
	"collide3d/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

const stepHeight = 0.4

func newViewCmd() *cobra.Command {
	var width, height int32
	cmd := &cobra.Command{
		Use:   "view <scene>",
		Short: "Walk through a scene with collider wireframes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(args[0], width, height)
		},
	}
	cmd.Flags().Int32Var(&width, "width", 1280, "window width")
	cmd.Flags().Int32Var(&height, "height", 720, "window height")
	return cmd
}

type viewer struct {
	path      string
	lvl       *world.Level
	cam       *camera.FPSCamera
	player    *physics.Body
	drawer    debugdraw.RaylibDrawer
	inspector *debugdraw.Inspector
	selected  int
	editing   bool
	touching  string
	hit       *physics.RaycastHit
	status    string
}

func runViewer(path string, width, height int32) error {
	lvl, err := loadLevel(path)
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(width, height, "collide3d - "+path)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.DisableCursor()
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads := make(chan *world.SceneFile, 1)
	go func() {
		err := world.Watch(ctx, path, func(sf *world.SceneFile, err error) {
			if err != nil {
				log.Printf("view: reload %s: %v", path, err)
				return
			}
			select {
			case reloads <- sf:
			default:
			}
		})
		if err != nil {
			log.Printf("view: %v", err)
		}
	}()

	v := &viewer{
		path:      path,
		cam:       camera.New(),
		drawer:    debugdraw.NewRaylibDrawer(),
		inspector: debugdraw.NewInspector(10, 40),
	}
	v.setLevel(lvl)
	defer func() { v.lvl.Close() }()

	for !rl.WindowShouldClose() {
		select {
		case sf := <-reloads:
			v.reload(sf)
		default:
		}
		v.update(rl.GetFrameTime())
		v.draw()
	}
	return nil
}

// setLevel adopts lvl and picks the first character body as the player,
// adding one when the scene has none.
func (v *viewer) setLevel(lvl *world.Level) {
	v.lvl = lvl
	v.player = nil
	v.hit = nil
	v.selected = 0
	v.touching = ""
	lvl.Physics.OnContact.AddListener(func(c physics.Contact) {
		v.touching = fmt.Sprintf("%s %s", c.Body.Name, c.Surface)
	})
	for _, b := range lvl.Physics.Bodies() {
		if _, ok := b.Collider.(*collider.Character); ok && b.Node != nil && b.Node.Parent == nil {
			v.player = b
			break
		}
	}
	if v.player == nil {
		node := engine.NewNode("viewer")
		node.Transform.Position = rl.Vector3{Y: 5}
		ch := collider.NewCharacter(rl.Vector3{}, 0.4, 0.9)
		v.player = lvl.Physics.AddBody(node.Name, node, ch)
		ch.Drop()
	}
}

func (v *viewer) reload(sf *world.SceneFile) {
	lvl, err := world.Build(sf)
	if err != nil {
		v.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	v.lvl.Close()
	v.setLevel(lvl)
	v.status = "reloaded"
}

// pick returns the nearest hit along the view ray, ignoring the player.
func (v *viewer) pick(origin, dir rl.Vector3) (physics.RaycastHit, bool) {
	var best physics.RaycastHit
	found := false
	v.lvl.Physics.RaycastEnumerate(origin, dir, -1, collider.AllGroups, func(h physics.RaycastHit) bool {
		if h.Body != v.player && (!found || h.Distance < best.Distance) {
			best, found = h, true
		}
		return true
	})
	return best, found
}

func (v *viewer) update(dt float32) {
	bodies := v.lvl.Physics.Bodies()

	if rl.IsKeyPressed(rl.KeyTab) {
		v.editing = !v.editing
		if v.editing {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeyE) && len(bodies) > 0 {
		v.selected = (v.selected + 1) % len(bodies)
	}
	if rl.IsKeyPressed(rl.KeyQ) && len(bodies) > 0 {
		v.selected = (v.selected + len(bodies) - 1) % len(bodies)
	}
	if v.editing && rl.IsKeyPressed(rl.KeyDelete) && v.selected < len(bodies) {
		if b := bodies[v.selected]; b != v.player && b.Node != nil {
			if err := v.lvl.Remove(b.Name); err != nil {
				v.status = err.Error()
			} else {
				v.status = "removed " + b.Name
				v.hit = nil
				v.selected = 0
			}
		}
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		if err := world.SaveScene(v.path, v.lvl.Snapshot()); err != nil {
			v.status = err.Error()
		} else {
			v.status = "saved"
		}
	}

	var in camera.Input
	if !v.editing {
		in = camera.ReadInput()
	}
	wanted := v.cam.Update(dt, in)
	node := v.player.Node
	v.touching = ""
	res := v.lvl.Physics.MoveCharacter(node, v.player.Collider.(*collider.Character), physics.CharacterMove{
		Displacement: wanted,
		StepHeight:   stepHeight,
	})
	v.cam.Land(res.Grounded, res.Displacement, wanted)
	v.lvl.Physics.Refresh()

	if !v.editing && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		view := v.cam.Raylib(node.WorldPosition())
		dir := rl.Vector3Subtract(view.Target, view.Position)
		if h, ok := v.pick(view.Position, dir); ok {
			v.hit = &h
			v.status = fmt.Sprintf("%s at %s dist %.2f", h.Body.Name, fmtVec(h.Point), h.Distance)
			v.selectBody(h.Body)
		} else {
			v.hit = nil
			v.status = "no hit"
		}
	}
}

func (v *viewer) selectBody(b *physics.Body) {
	for i, o := range v.lvl.Physics.Bodies() {
		if o == b {
			v.selected = i
		}
	}
}

func (v *viewer) draw() {
	bodies := v.lvl.Physics.Bodies()
	var sel *physics.Body
	if v.selected < len(bodies) {
		sel = bodies[v.selected]
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 24, 32, 255))

	rl.BeginMode3D(v.cam.Raylib(v.player.Node.WorldPosition()))
	rl.DrawGrid(40, 1)
	for _, b := range bodies {
		if b == v.player {
			continue
		}
		color := v.lvl.Color(b)
		if b == sel {
			color = rl.Yellow
		}
		debugdraw.Draw(v.drawer, b.Collider, color)
	}
	if v.hit != nil {
		debugdraw.DrawHit(v.drawer, *v.hit, rl.Red)
	}
	rl.EndMode3D()

	if sel != nil && v.editing {
		if v.inspector.Draw(sel.Name, sel.Collider) {
			v.lvl.Physics.Refresh()
		}
	}
	rl.DrawFPS(10, 10)
	rl.DrawText("WASD move  Space jump  Click ray  Q/E select  Tab edit  Del remove  F5 save", 100, 10, 16, rl.LightGray)
	if v.touching != "" {
		rl.DrawText("touching "+v.touching, 10, int32(rl.GetScreenHeight())-48, 16, rl.LightGray)
	}
	if v.status != "" {
		rl.DrawText(v.status, 10, int32(rl.GetScreenHeight())-26, 16, rl.RayWhite)
	}
	rl.EndDrawing()
}
