package main

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/Carmen-Shannon/wayfinder/config"
	"github.com/Carmen-Shannon/wayfinder/engine/camera"
	"github.com/Carmen-Shannon/wayfinder/engine/game_object"
	"github.com/Carmen-Shannon/wayfinder/engine/input"
	"github.com/Carmen-Shannon/wayfinder/engine/path"
	"github.com/Carmen-Shannon/wayfinder/engine/picker"
	"github.com/Carmen-Shannon/wayfinder/engine/scene"
	"github.com/spf13/cobra"
)

const simulateDt = 1.0 / 60.0

type simulateOptions struct {
	mode     string
	ticks    int
	report   int
	wheel    float64
	autoplay bool
	drag     float64
	nodes    int
}

func newSimulateCommand() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the rail or orbit camera headless and print its state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			switch opts.mode {
			case "rail":
				return simulateRail(cmd.OutOrStdout(), cfg, opts)
			case "orbit":
				return simulateOrbit(cmd.OutOrStdout(), cfg, opts)
			default:
				return fmt.Errorf("unknown mode %q (use rail or orbit)", opts.mode)
			}
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "rail", "Camera mode: rail or orbit")
	cmd.Flags().IntVar(&opts.ticks, "ticks", 600, "Number of 60Hz ticks to run")
	cmd.Flags().IntVar(&opts.report, "report", 60, "Print state every N ticks")
	cmd.Flags().Float64Var(&opts.wheel, "wheel", 1000, "Rail: wheel delta applied before the first tick")
	cmd.Flags().BoolVar(&opts.autoplay, "autoplay", false, "Rail: start auto-advance")
	cmd.Flags().Float64Var(&opts.drag, "drag", 200, "Orbit: horizontal drag in pixels applied before the first tick")
	cmd.Flags().IntVar(&opts.nodes, "nodes", 200, "Orbit: number of nodes laid out on the sphere")
	return cmd
}

func simulateRail(w io.Writer, cfg *config.TuningConfig, opts simulateOptions) error {
	route, err := buildRoute(cfg)
	if err != nil {
		return err
	}
	rail := camera.NewRailController(route, cfg.RailOptions()...)

	units := path.PlaceUnits(route, rail.Units(), cfg.GetPathSpacing()*0.3)
	objects := make([]game_object.GameObject, 0, len(units))
	for _, u := range units {
		objects = append(objects, game_object.NewGameObject(
			game_object.WithPlacement(u),
			game_object.WithCategory("unit"),
			game_object.WithBoundingRadius(8),
		))
	}

	s := scene.NewScene("simulate", camera.NewCamera(), rail,
		scene.WithObjects(objects...),
		scene.WithPicker(picker.NewPicker(picker.WithWorkers(cfg.GetPickerWorkers()))),
		scene.WithMinimap(cfg.MinimapOptions()...),
		scene.WithClickThreshold(cfg.GetClickThreshold()),
	)
	defer s.Close()

	if opts.wheel != 0 {
		s.Input().Push(input.Wheel(opts.wheel, 0, 0))
	}
	if opts.autoplay {
		rail.StartAutoplay()
	}

	fmt.Fprintf(w, "%6s %10s %10s %6s %8s %8s\n", "tick", "progress", "target", "index", "map_x", "map_y")
	for i := 1; i <= opts.ticks; i++ {
		s.Tick(simulateDt)
		if opts.report > 0 && (i%opts.report == 0 || i == opts.ticks) {
			m, _ := s.Marker()
			fmt.Fprintf(w, "%6d %10.6f %10.6f %6d %8.2f %8.2f\n", i, rail.Progress(), rail.TargetProgress(), rail.Index(), m.X, m.Y)
		}
	}
	return nil
}

func simulateOrbit(w io.Writer, cfg *config.TuningConfig, opts simulateOptions) error {
	orbit := camera.NewOrbitController(cfg.OrbitOptions()...)

	objects := make([]game_object.GameObject, 0, opts.nodes)
	for i := range opts.nodes {
		objects = append(objects, game_object.NewGameObject(
			game_object.WithPosition(common.FibonacciSphere(i, opts.nodes, 400, 0.6)),
			game_object.WithIndex(i),
			game_object.WithBoundingRadius(6),
		))
	}

	s := scene.NewScene("simulate", camera.NewCamera(), orbit,
		scene.WithObjects(objects...),
		scene.WithPicker(picker.NewPicker(picker.WithWorkers(cfg.GetPickerWorkers()))),
		scene.WithClickThreshold(cfg.GetClickThreshold()),
	)
	defer s.Close()

	width, height := s.Viewport()
	cx, cy := width/2, height/2
	if opts.drag != 0 {
		s.Input().Push(input.PointerDown(input.ButtonPrimary, cx, cy))
		s.Input().Push(input.PointerMove(cx+opts.drag, cy))
		s.Input().Push(input.PointerUp(input.ButtonPrimary, cx+opts.drag, cy))
	}

	fmt.Fprintf(w, "%6s %10s %10s %10s %8s\n", "tick", "azimuth", "polar", "radius", "visible")
	for i := 1; i <= opts.ticks; i++ {
		s.Tick(simulateDt)
		if opts.report > 0 && (i%opts.report == 0 || i == opts.ticks) {
			sp := orbit.Spherical()
			fmt.Fprintf(w, "%6d %10.6f %10.6f %10.3f %8d\n", i, sp.Azimuth, sp.Polar, sp.Radius, len(s.Visible()))
		}
	}
	return nil
}
