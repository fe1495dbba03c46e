// Command collide3d loads a scene and runs collision queries against it.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"collide3d/internal/collider"
	"collide3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var quiet bool
	root := &cobra.Command{
		Use:          "collide3d",
		Short:        "Query and view collision scenes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet {
				log.SetOutput(io.Discard)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output")
	root.AddCommand(
		newRayCmd(),
		newSphereCmd(),
		newAltitudeCmd(),
		newCheckCmd(),
		newWatchCmd(),
		newViewCmd(),
	)
	return root
}

func loadLevel(path string) (*world.Level, error) {
	sf, err := world.LoadScene(path)
	if err != nil {
		return nil, err
	}
	return world.Build(sf)
}

func vec3(name string, v []float32) (rl.Vector3, error) {
	if len(v) != 3 {
		return rl.Vector3{}, fmt.Errorf("--%s needs three comma separated values, got %d", name, len(v))
	}
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func fmtVec(v rl.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func summarize(w io.Writer, lvl *world.Level) {
	bodies := lvl.Physics.Bodies()
	fmt.Fprintf(w, "scene %q: %d bodies\n", lvl.Name, len(bodies))
	for _, b := range bodies {
		box := b.Collider.AABB(collider.AllGroups)
		state := ""
		if !b.Collider.Enabled() {
			state = " disabled"
		}
		fmt.Fprintf(w, "  %-12s %-10s bitflag %08x  %s .. %s%s\n",
			b.Name, b.Collider.Kind(), b.Collider.Bitflag(), fmtVec(box.Min), fmtVec(box.Max), state)
	}
	bounds := lvl.Physics.Bounds()
	fmt.Fprintf(w, "bounds %s .. %s\n", fmtVec(bounds.Min), fmtVec(bounds.Max))
}
