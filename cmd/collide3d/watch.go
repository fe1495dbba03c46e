package main

import (
	"fmt"
	"os"
	"os/signal"

	"collide3d/internal/world"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <scene>",
		Short: "Rebuild a scene every time its file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			lvl, err := loadLevel(args[0])
			if err != nil {
				return err
			}
			summarize(out, lvl)
			lvl.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			fmt.Fprintf(out, "watching %s\n", args[0])
			return world.Watch(ctx, args[0], func(sf *world.SceneFile, err error) {
				if err == nil {
					lvl, err = world.Build(sf)
				}
				if err != nil {
					fmt.Fprintf(out, "reload failed: %v\n", err)
					return
				}
				summarize(out, lvl)
				lvl.Close()
			})
		},
	}
}
