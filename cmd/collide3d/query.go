package main

import (
	"errors"
	"fmt"
	"io"

	"collide3d/internal/collider"
	"collide3d/internal/geom"
	"collide3d/internal/physics"

	"github.com/spf13/cobra"
)

func printHit(w io.Writer, h physics.RaycastHit) {
	fmt.Fprintf(w, "hit %s at %s normal %s dist %.3f (%s)\n",
		h.Body.Name, fmtVec(h.Point), fmtVec(h.Normal), h.Distance, physics.SurfaceType(h.Normal))
}

func newRayCmd() *cobra.Command {
	var from, dir []float32
	var maxDist float32
	var mask uint32
	var all bool

	cmd := &cobra.Command{
		Use:   "ray <scene>",
		Short: "Cast a ray and report the nearest hit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := vec3("from", from)
			if err != nil {
				return err
			}
			direction, err := vec3("dir", dir)
			if err != nil {
				return err
			}
			if geom.IsZero(direction) {
				return errors.New("--dir must not be zero")
			}
			lvl, err := loadLevel(args[0])
			if err != nil {
				return err
			}
			defer lvl.Close()

			out := cmd.OutOrStdout()
			if all {
				n := 0
				lvl.Physics.RaycastEnumerate(origin, direction, maxDist, mask, func(h physics.RaycastHit) bool {
					printHit(out, h)
					n++
					return true
				})
				if n == 0 {
					fmt.Fprintln(out, "no hit")
				}
				return nil
			}
			if h, ok := lvl.Physics.Raycast(origin, direction, maxDist, mask); ok {
				printHit(out, h)
			} else {
				fmt.Fprintln(out, "no hit")
			}
			return nil
		},
	}
	cmd.Flags().Float32SliceVar(&from, "from", []float32{0, 10, 0}, "ray origin x,y,z")
	cmd.Flags().Float32SliceVar(&dir, "dir", []float32{0, -1, 0}, "ray direction x,y,z")
	cmd.Flags().Float32Var(&maxDist, "max", -1, "maximum hit distance, negative for unlimited")
	cmd.Flags().Uint32Var(&mask, "mask", collider.AllGroups, "group mask")
	cmd.Flags().BoolVar(&all, "all", false, "report every hit instead of the nearest")
	return cmd
}

func newSphereCmd() *cobra.Command {
	var at, speed []float32
	var radius, skin, climb float32
	var mask uint32

	cmd := &cobra.Command{
		Use:   "sphere <scene>",
		Short: "Resolve a moving sphere against a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := vec3("at", at)
			if err != nil {
				return err
			}
			displacement, err := vec3("speed", speed)
			if err != nil {
				return err
			}
			lvl, err := loadLevel(args[0])
			if err != nil {
				return err
			}
			defer lvl.Close()

			t := collider.NewCollisionTest(pos, radius)
			t.BallSpeed = displacement
			t.BallSkin = skin
			t.BallClimb = climb
			t.Bitmask = mask

			out := cmd.OutOrStdout()
			contacts := lvl.Physics.ResolveSphere(&t)
			for _, c := range contacts {
				fmt.Fprintf(out, "contact %s at %s normal %s (%s) -> %s\n",
					c.Body.Name, fmtVec(c.Point), fmtVec(c.Normal), c.Surface, fmtVec(c.NewPos))
			}
			if len(contacts) == 0 {
				fmt.Fprintf(out, "free at %s\n", fmtVec(pos))
				return nil
			}
			fmt.Fprintf(out, "resolved to %s\n", fmtVec(t.ResultNewPos))
			return nil
		},
	}
	cmd.Flags().Float32SliceVar(&at, "at", []float32{0, 1, 0}, "sphere center x,y,z after the move")
	cmd.Flags().Float32SliceVar(&speed, "speed", []float32{0, 0, 0}, "displacement of this step x,y,z")
	cmd.Flags().Float32Var(&radius, "radius", 0.5, "sphere radius")
	cmd.Flags().Float32Var(&skin, "skin", collider.DefaultSkin, "contact tolerance")
	cmd.Flags().Float32Var(&climb, "climb", 0, "height of obstacles to walk over")
	cmd.Flags().Uint32Var(&mask, "mask", collider.AllGroups, "group mask")
	return cmd
}

func newAltitudeCmd() *cobra.Command {
	var at []float32
	var mask uint32

	cmd := &cobra.Command{
		Use:   "altitude <scene>",
		Short: "Report the height above the ground below a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := vec3("at", at)
			if err != nil {
				return err
			}
			lvl, err := loadLevel(args[0])
			if err != nil {
				return err
			}
			defer lvl.Close()

			out := cmd.OutOrStdout()
			g, ok := lvl.Physics.GroundPoint(pos, 0, mask)
			if !ok {
				fmt.Fprintf(out, "no ground below %s\n", fmtVec(pos))
				return nil
			}
			alt, _ := lvl.Physics.Altitude(pos, mask)
			fmt.Fprintf(out, "altitude %.3f above %s at %s\n", alt, g.Body.Name, fmtVec(g.Point))
			return nil
		},
	}
	cmd.Flags().Float32SliceVar(&at, "at", []float32{0, 10, 0}, "query point x,y,z")
	cmd.Flags().Uint32Var(&mask, "mask", collider.AllGroups, "group mask")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <scene>...",
		Short: "Validate scene files and list their bodies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				lvl, err := loadLevel(path)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
					errs = append(errs, err)
					continue
				}
				summarize(cmd.OutOrStdout(), lvl)
				lvl.Close()
			}
			return errors.Join(errs...)
		},
	}
}
