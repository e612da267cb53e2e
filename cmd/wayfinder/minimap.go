package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/wayfinder/engine/minimap"
	"github.com/spf13/cobra"
)

func newMinimapCommand() *cobra.Command {
	var (
		out      string
		progress float64
		pixels   int
		title    string
	)

	cmd := &cobra.Command{
		Use:   "minimap",
		Short: "Export the route minimap as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			route, err := buildRoute(cfg)
			if err != nil {
				return err
			}
			proj := minimap.NewProjector(route, cfg.MinimapOptions()...)

			var marker *minimap.Marker
			if progress >= 0 {
				m := proj.Locate(progress)
				marker = &m
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()

			if err := minimap.RenderPNG(f, proj, marker, minimap.WithPixels(pixels), minimap.WithTitle(title)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d route samples, scale %.4f)\n", out, len(proj.Samples()), proj.Scale())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "minimap.png", "Output PNG path")
	cmd.Flags().Float64Var(&progress, "progress", 0, "Marker progress in [0,1]; negative hides the marker")
	cmd.Flags().IntVar(&pixels, "pixels", 260, "Image edge length in pixels")
	cmd.Flags().StringVar(&title, "title", "", "Caption drawn above the map")
	return cmd
}
