// wayfinder - navigation core tools
// Exports route minimaps, runs headless camera simulations and views a route
// in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/wayfinder/config"
	"github.com/Carmen-Shannon/wayfinder/engine/path"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	cmd := &cobra.Command{
		Use:   "wayfinder",
		Short: "Rail and orbit camera navigation tools",
		Long: `wayfinder - navigation core tools

Commands:
  minimap   - Export the route minimap as a PNG
  simulate  - Run the rail or orbit camera headless and print its state
  tui       - Ride the route in the terminal`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON tuning file")

	cmd.AddCommand(newMinimapCommand())
	cmd.AddCommand(newSimulateCommand())
	cmd.AddCommand(newTUICommand())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig returns the tuning file named by --config, or the defaults.
func loadConfig() (*config.TuningConfig, error) {
	if configPath == "" {
		return config.DefaultTuningConfig(), nil
	}
	cfg, err := config.LoadTuningConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func buildRoute(cfg *config.TuningConfig) (path.Path, error) {
	p, err := path.NewPath(cfg.RoutePoints())
	if err != nil {
		return nil, fmt.Errorf("build route: %w", err)
	}
	return p, nil
}
