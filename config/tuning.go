package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/Carmen-Shannon/wayfinder/engine/camera"
	"github.com/Carmen-Shannon/wayfinder/engine/minimap"
	"github.com/go-gl/mathgl/mgl64"
)

const maxConfigFileSize = 1 * 1024 * 1024 // 1MB

// TuningConfig holds every navigation tunable. Fields omitted from JSON fall back
// to the defaults returned by the Get* accessors, so partial configs are safe.
type TuningConfig struct {
	// Route layout; path_points counts control points
	PathPoints    *int     `json:"path_points,omitempty"`
	PathSpacing   *float64 `json:"path_spacing,omitempty"`
	PathAmplitude *float64 `json:"path_amplitude,omitempty"`
	PathFrequency *float64 `json:"path_frequency,omitempty"`

	// Rail camera
	RailSmoothing    *float64 `json:"rail_smoothing,omitempty"`
	TrailDistance    *float64 `json:"trail_distance,omitempty"`
	HeightOffset     *float64 `json:"height_offset,omitempty"`
	LookAhead        *float64 `json:"look_ahead,omitempty"`
	LookHeight       *float64 `json:"look_height,omitempty"`
	LookAheadMode    *string  `json:"look_ahead_mode,omitempty"` // "extend" or "clamp"
	WheelScale       *float64 `json:"wheel_scale,omitempty"`
	TouchScale       *float64 `json:"touch_scale,omitempty"`
	KeyStep          *float64 `json:"key_step,omitempty"`
	AutoplayStep     *float64 `json:"autoplay_step,omitempty"`
	AutoplayInterval *string  `json:"autoplay_interval,omitempty"` // duration string like "50ms"

	// Orbit camera
	OrbitDamping   *float64 `json:"orbit_damping,omitempty"`
	InertiaDecay   *float64 `json:"inertia_decay,omitempty"`
	Sensitivity    *float64 `json:"sensitivity,omitempty"`
	MinRadius      *float64 `json:"min_radius,omitempty"`
	MaxRadius      *float64 `json:"max_radius,omitempty"`
	AutoRotate     *bool    `json:"auto_rotate,omitempty"`
	AutoRotateStep *float64 `json:"auto_rotate_step,omitempty"`

	// Minimap
	MinimapSize    *float64 `json:"minimap_size,omitempty"`
	MinimapPadding *float64 `json:"minimap_padding,omitempty"`
	MinimapSamples *int     `json:"minimap_samples,omitempty"`

	// Picking
	PickerWorkers  *int     `json:"picker_workers,omitempty"`
	ClickThreshold *float64 `json:"click_threshold,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// DefaultTuningConfig returns a TuningConfig with every field set to its default.
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		PathPoints:       ptrInt(40),
		PathSpacing:      ptrFloat64(100),
		PathAmplitude:    ptrFloat64(60),
		PathFrequency:    ptrFloat64(0.15),
		RailSmoothing:    ptrFloat64(0.08),
		TrailDistance:    ptrFloat64(12),
		HeightOffset:     ptrFloat64(4),
		LookAhead:        ptrFloat64(0.03),
		LookHeight:       ptrFloat64(1.5),
		LookAheadMode:    ptrString("extend"),
		WheelScale:       ptrFloat64(0.0004),
		TouchScale:       ptrFloat64(0.00025),
		KeyStep:          ptrFloat64(0.005),
		AutoplayStep:     ptrFloat64(0.0005),
		AutoplayInterval: ptrString("50ms"),
		OrbitDamping:     ptrFloat64(0.08),
		InertiaDecay:     ptrFloat64(0.95),
		Sensitivity:      ptrFloat64(0.3),
		MinRadius:        ptrFloat64(50),
		MaxRadius:        ptrFloat64(2500),
		AutoRotate:       ptrBool(false),
		AutoRotateStep:   ptrFloat64(0.001),
		MinimapSize:      ptrFloat64(130),
		MinimapPadding:   ptrFloat64(15),
		MinimapSamples:   ptrInt(100),
		PickerWorkers:    ptrInt(4),
		ClickThreshold:   ptrFloat64(5),
	}
}

// LoadTuningConfig loads a TuningConfig from a JSON file.
// The file must have a .json extension and be at most 1MB.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *TuningConfig) Validate() error {
	if c.PathPoints != nil && *c.PathPoints < 2 {
		return fmt.Errorf("path_points must be at least 2, got %d", *c.PathPoints)
	}
	if c.RailSmoothing != nil {
		if *c.RailSmoothing <= 0 || *c.RailSmoothing >= 1 {
			return fmt.Errorf("rail_smoothing must be in (0, 1), got %f", *c.RailSmoothing)
		}
	}
	if c.OrbitDamping != nil {
		if *c.OrbitDamping <= 0 || *c.OrbitDamping > 1 {
			return fmt.Errorf("orbit_damping must be in (0, 1], got %f", *c.OrbitDamping)
		}
	}
	if c.InertiaDecay != nil {
		if *c.InertiaDecay < 0 || *c.InertiaDecay >= 1 {
			return fmt.Errorf("inertia_decay must be in [0, 1), got %f", *c.InertiaDecay)
		}
	}
	if c.LookAheadMode != nil {
		if _, err := parseLookAheadMode(*c.LookAheadMode); err != nil {
			return err
		}
	}
	if c.AutoplayInterval != nil && *c.AutoplayInterval != "" {
		d, err := time.ParseDuration(*c.AutoplayInterval)
		if err != nil {
			return fmt.Errorf("invalid autoplay_interval '%s': %w", *c.AutoplayInterval, err)
		}
		if d <= 0 {
			return fmt.Errorf("autoplay_interval must be positive, got %s", d)
		}
	}
	if c.GetMinRadius() <= 0 || c.GetMinRadius() > c.GetMaxRadius() {
		return fmt.Errorf("radius range must satisfy 0 < min_radius <= max_radius, got [%f, %f]", c.GetMinRadius(), c.GetMaxRadius())
	}
	if c.MinimapSamples != nil && *c.MinimapSamples < 2 {
		return fmt.Errorf("minimap_samples must be at least 2, got %d", *c.MinimapSamples)
	}
	if c.MinimapSize != nil && *c.MinimapSize <= 0 {
		return fmt.Errorf("minimap_size must be positive, got %f", *c.MinimapSize)
	}
	if c.PickerWorkers != nil && *c.PickerWorkers < 1 {
		return fmt.Errorf("picker_workers must be at least 1, got %d", *c.PickerWorkers)
	}
	return nil
}

func parseLookAheadMode(s string) (camera.LookAheadMode, error) {
	switch common.Coalesce(s, "extend") {
	case "extend":
		return camera.LookAheadExtend, nil
	case "clamp":
		return camera.LookAheadClamp, nil
	default:
		return camera.LookAheadExtend, fmt.Errorf("look_ahead_mode must be \"extend\" or \"clamp\", got %q", s)
	}
}

func getFloat(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func getInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// GetPathPoints returns the path_points value or the default.
func (c *TuningConfig) GetPathPoints() int { return getInt(c.PathPoints, 40) }

// GetPathSpacing returns the path_spacing value or the default.
func (c *TuningConfig) GetPathSpacing() float64 { return getFloat(c.PathSpacing, 100) }

// GetPathAmplitude returns the path_amplitude value or the default.
func (c *TuningConfig) GetPathAmplitude() float64 { return getFloat(c.PathAmplitude, 60) }

// GetPathFrequency returns the path_frequency value or the default.
func (c *TuningConfig) GetPathFrequency() float64 { return getFloat(c.PathFrequency, 0.15) }

// GetRailSmoothing returns the rail_smoothing value or the default.
func (c *TuningConfig) GetRailSmoothing() float64 { return getFloat(c.RailSmoothing, 0.08) }

// GetLookAheadMode returns the parsed look_ahead_mode, falling back to extend.
func (c *TuningConfig) GetLookAheadMode() camera.LookAheadMode {
	if c.LookAheadMode == nil {
		return camera.LookAheadExtend
	}
	mode, err := parseLookAheadMode(*c.LookAheadMode)
	if err != nil {
		return camera.LookAheadExtend
	}
	return mode
}

// GetAutoplayInterval parses and returns the AutoplayInterval as a time.Duration.
func (c *TuningConfig) GetAutoplayInterval() time.Duration {
	if c.AutoplayInterval == nil || *c.AutoplayInterval == "" {
		return 50 * time.Millisecond
	}
	d, err := time.ParseDuration(*c.AutoplayInterval)
	if err != nil || d <= 0 {
		return 50 * time.Millisecond
	}
	return d
}

// GetMinRadius returns the min_radius value or the default.
func (c *TuningConfig) GetMinRadius() float64 { return getFloat(c.MinRadius, 50) }

// GetMaxRadius returns the max_radius value or the default.
func (c *TuningConfig) GetMaxRadius() float64 { return getFloat(c.MaxRadius, 2500) }

// GetAutoRotate returns the auto_rotate value or the default.
func (c *TuningConfig) GetAutoRotate() bool {
	if c.AutoRotate == nil {
		return false
	}
	return *c.AutoRotate
}

// GetPickerWorkers returns the picker_workers value or the default.
func (c *TuningConfig) GetPickerWorkers() int { return getInt(c.PickerWorkers, 4) }

// GetClickThreshold returns the click_threshold value or the default.
func (c *TuningConfig) GetClickThreshold() float64 { return getFloat(c.ClickThreshold, 5) }

// RoutePoints lays out the winding route described by the path_* fields.
// path_points is the control-point count, so the route has path_points-1 units.
func (c *TuningConfig) RoutePoints() []mgl64.Vec3 {
	return common.WindingPath(c.GetPathPoints()-1, c.GetPathSpacing(), c.GetPathAmplitude(), c.GetPathFrequency())
}

// RailOptions converts the rail fields into controller options.
func (c *TuningConfig) RailOptions() []camera.RailBuilderOption {
	return []camera.RailBuilderOption{
		camera.WithSmoothing(c.GetRailSmoothing()),
		camera.WithTrail(getFloat(c.TrailDistance, 12), getFloat(c.HeightOffset, 4)),
		camera.WithLookAhead(getFloat(c.LookAhead, 0.03), getFloat(c.LookHeight, 1.5)),
		camera.WithLookAheadMode(c.GetLookAheadMode()),
		camera.WithInputScales(getFloat(c.WheelScale, 0.0004), getFloat(c.TouchScale, 0.00025), getFloat(c.KeyStep, 0.005)),
		camera.WithAutoplay(getFloat(c.AutoplayStep, 0.0005), c.GetAutoplayInterval()),
	}
}

// OrbitOptions converts the orbit fields into controller options.
func (c *TuningConfig) OrbitOptions() []camera.OrbitBuilderOption {
	return []camera.OrbitBuilderOption{
		camera.WithDamping(getFloat(c.OrbitDamping, 0.08)),
		camera.WithInertiaDecay(getFloat(c.InertiaDecay, 0.95)),
		camera.WithSensitivity(getFloat(c.Sensitivity, 0.3)),
		camera.WithRadiusRange(c.GetMinRadius(), c.GetMaxRadius()),
		camera.WithAutoRotate(c.GetAutoRotate(), getFloat(c.AutoRotateStep, 0.001)),
	}
}

// MinimapOptions converts the minimap fields into projector options.
func (c *TuningConfig) MinimapOptions() []minimap.ProjectorBuilderOption {
	return []minimap.ProjectorBuilderOption{
		minimap.WithSize(getFloat(c.MinimapSize, 130)),
		minimap.WithPadding(getFloat(c.MinimapPadding, 15)),
		minimap.WithSamples(getInt(c.MinimapSamples, 100)),
	}
}
