package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/wayfinder/engine/camera"
	"github.com/Carmen-Shannon/wayfinder/engine/minimap"
	"github.com/Carmen-Shannon/wayfinder/engine/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultTuningConfig(t *testing.T) {
	cfg := DefaultTuningConfig()
	require.NoError(t, cfg.Validate())

	empty := EmptyTuningConfig()
	assert.Equal(t, cfg.GetPathPoints(), empty.GetPathPoints())
	assert.Equal(t, cfg.GetRailSmoothing(), empty.GetRailSmoothing())
	assert.Equal(t, cfg.GetAutoplayInterval(), empty.GetAutoplayInterval())
	assert.Equal(t, cfg.GetMinRadius(), empty.GetMinRadius())
	assert.Equal(t, cfg.GetMaxRadius(), empty.GetMaxRadius())
	assert.Equal(t, cfg.GetAutoRotate(), empty.GetAutoRotate())
	assert.Equal(t, cfg.GetPickerWorkers(), empty.GetPickerWorkers())
	assert.Equal(t, cfg.GetClickThreshold(), empty.GetClickThreshold())
	assert.Equal(t, camera.LookAheadExtend, empty.GetLookAheadMode())
	assert.Equal(t, 50*time.Millisecond, empty.GetAutoplayInterval())
	assert.Len(t, cfg.RoutePoints(), 40)

	route, err := path.NewPath(cfg.RoutePoints())
	require.NoError(t, err)
	assert.Equal(t, 40, route.PointCount())
	assert.Equal(t, 39, camera.NewRailController(route).Units())
}

func TestLoadTuningConfig(t *testing.T) {
	p := writeConfig(t, "tuning.json", `{
  "path_points": 12,
  "rail_smoothing": 0.5,
  "look_ahead_mode": "clamp",
  "autoplay_interval": "20ms",
  "auto_rotate": true,
  "minimap_size": 200
}`)

	cfg, err := LoadTuningConfig(p)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.GetPathPoints())
	assert.Equal(t, 0.5, cfg.GetRailSmoothing())
	assert.Equal(t, camera.LookAheadClamp, cfg.GetLookAheadMode())
	assert.Equal(t, 20*time.Millisecond, cfg.GetAutoplayInterval())
	assert.True(t, cfg.GetAutoRotate())
	// Omitted fields keep their defaults.
	assert.Equal(t, 2500.0, cfg.GetMaxRadius())
	assert.Len(t, cfg.RoutePoints(), 12)

	route, err := path.NewPath(cfg.RoutePoints())
	require.NoError(t, err)
	assert.Equal(t, 11, camera.NewRailController(route, cfg.RailOptions()...).Units())
}

func TestRoutePointsMinimum(t *testing.T) {
	cfg := EmptyTuningConfig()
	cfg.PathPoints = ptrInt(2)
	require.NoError(t, cfg.Validate())

	route, err := path.NewPath(cfg.RoutePoints())
	require.NoError(t, err)
	assert.Equal(t, 2, route.PointCount())
	assert.Equal(t, 1, camera.NewRailController(route).Units())
}

func TestLoadTuningConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"wrong extension", "tuning.yaml", `{}`, ".json extension"},
		{"bad json", "tuning.json", `{"path_points": `, "failed to parse config JSON"},
		{"smoothing out of range", "tuning.json", `{"rail_smoothing": 1.0}`, "rail_smoothing"},
		{"too few points", "tuning.json", `{"path_points": 1}`, "path_points"},
		{"inverted radius", "tuning.json", `{"min_radius": 300, "max_radius": 100}`, "radius range"},
		{"unknown mode", "tuning.json", `{"look_ahead_mode": "wrap"}`, "look_ahead_mode"},
		{"bad interval", "tuning.json", `{"autoplay_interval": "soon"}`, "autoplay_interval"},
		{"no workers", "tuning.json", `{"picker_workers": 0}`, "picker_workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTuningConfig(writeConfig(t, tt.file, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadTuningConfigMissingAndOversized(t *testing.T) {
	_, err := LoadTuningConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat")

	big := `{"path_spacing": 100` + strings.Repeat(" ", maxConfigFileSize) + `}`
	_, err = LoadTuningConfig(writeConfig(t, "big.json", big))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestOptionsApply(t *testing.T) {
	cfg := EmptyTuningConfig()
	cfg.RailSmoothing = ptrFloat64(0.5)
	cfg.MinimapSize = ptrFloat64(200)
	cfg.MinimapPadding = ptrFloat64(10)
	require.NoError(t, cfg.Validate())

	p, err := path.NewPath(cfg.RoutePoints())
	require.NoError(t, err)

	rail := camera.NewRailController(p, cfg.RailOptions()...)
	rail.Wheel(1000)
	rail.Tick(1.0 / 60.0)
	assert.InDelta(t, 0.2, rail.Progress(), 1e-9)

	proj := minimap.NewProjector(p, cfg.MinimapOptions()...)
	assert.Equal(t, 200.0, proj.Size())
	assert.Equal(t, 10.0, proj.Padding())

	orbit := camera.NewOrbitController(cfg.OrbitOptions()...)
	assert.False(t, orbit.Interacting())
}
