package minimap

import (
	"math"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/Carmen-Shannon/wayfinder/engine/path"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

const (
	defaultSize    = 130.0
	defaultPadding = 15.0
	defaultSamples = 100
	minSamples     = 2
)

// Bounds is the world-space X/Z extent of the sampled path.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// RangeX returns MaxX − MinX.
func (b Bounds) RangeX() float64 { return b.MaxX - b.MinX }

// RangeZ returns MaxZ − MinZ.
func (b Bounds) RangeZ() float64 { return b.MaxZ - b.MinZ }

// Marker is the on-map position of the traveller and its heading in degrees,
// measured clockwise from canvas up.
type Marker struct {
	X, Y    float64
	Heading float64
}

type projectorImpl struct {
	size    float64
	padding float64
	count   int

	bounds  Bounds
	scale   float64
	offsetX float64
	offsetY float64

	samples []mgl64.Vec2
}

// Projector maps a path's top-down footprint onto a square canvas.
// The mapping is computed once at construction and never changes.
type Projector interface {
	// Project maps a world X/Z position onto the canvas.
	//
	// Parameters:
	//   - x: world x
	//   - z: world z
	//
	// Returns:
	//   - float64: canvas x
	//   - float64: canvas y (down)
	Project(x, z float64) (float64, float64)

	// Locate places the marker for a progress value by interpolating between
	// the two nearest samples.
	//
	// Parameters:
	//   - progress: path progress, clamped to [0,1]
	//
	// Returns:
	//   - Marker: the canvas position and heading
	Locate(progress float64) Marker

	// Samples returns the projected sample points in path order.
	//
	// Returns:
	//   - []mgl64.Vec2: a copy of the canvas-space samples
	Samples() []mgl64.Vec2

	// Bounds returns the world-space extent used by the mapping.
	//
	// Returns:
	//   - Bounds: the X/Z bounds
	Bounds() Bounds

	// Scale returns the world-to-canvas scale shared by both axes.
	//
	// Returns:
	//   - float64: canvas units per world unit
	Scale() float64

	// Size returns the canvas edge length.
	//
	// Returns:
	//   - float64: the canvas size
	Size() float64

	// Padding returns the canvas margin.
	//
	// Returns:
	//   - float64: the padding
	Padding() float64
}

var _ Projector = &projectorImpl{}

// NewProjector samples p and builds the canvas mapping.
//
// Parameters:
//   - p: the path to map
//   - options: functional options to configure the canvas
//
// Returns:
//   - Projector: the newly created projector
func NewProjector(p path.Path, options ...ProjectorBuilderOption) Projector {
	if p == nil {
		panic("minimap projector requires a path")
	}
	m := &projectorImpl{
		size:    defaultSize,
		padding: defaultPadding,
		count:   defaultSamples,
	}
	for _, option := range options {
		option(m)
	}
	m.count = max(m.count, minSamples)
	m.padding = common.Clamp(m.padding, 0, m.size/2)

	xs := make([]float64, m.count)
	zs := make([]float64, m.count)
	for i := range m.count {
		pt := p.PointAt(float64(i) / float64(m.count-1))
		xs[i] = pt.X()
		zs[i] = pt.Z()
	}

	m.bounds = Bounds{
		MinX: floats.Min(xs),
		MaxX: floats.Max(xs),
		MinZ: floats.Min(zs),
		MaxZ: floats.Max(zs),
	}

	usable := m.size - 2*m.padding
	span := math.Max(m.bounds.RangeX(), m.bounds.RangeZ())
	m.scale = 1
	if span > 0 {
		m.scale = usable / span
	}
	m.offsetX = m.padding + (usable-m.bounds.RangeX()*m.scale)/2
	m.offsetY = m.padding + (usable-m.bounds.RangeZ()*m.scale)/2

	m.samples = make([]mgl64.Vec2, m.count)
	for i := range m.count {
		cx, cy := m.Project(xs[i], zs[i])
		m.samples[i] = mgl64.Vec2{cx, cy}
	}
	return m
}

func (m *projectorImpl) Project(x, z float64) (float64, float64) {
	return m.offsetX + (x-m.bounds.MinX)*m.scale,
		m.offsetY + (z-m.bounds.MinZ)*m.scale
}

func (m *projectorImpl) Locate(progress float64) Marker {
	n := len(m.samples)
	f := common.Clamp01(progress) * float64(n-1)
	i := min(int(math.Floor(f)), n-1)
	next := min(i+1, n-1)
	local := f - float64(i)

	a, b := m.samples[i], m.samples[next]
	pos := a.Add(b.Sub(a).Mul(local))

	from, to := a, b
	if i == next {
		from = m.samples[n-2]
	}
	d := to.Sub(from)
	heading := math.Atan2(d.Y(), d.X())*180/math.Pi + 90

	return Marker{X: pos.X(), Y: pos.Y(), Heading: heading}
}

func (m *projectorImpl) Samples() []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(m.samples))
	copy(out, m.samples)
	return out
}

func (m *projectorImpl) Bounds() Bounds {
	return m.bounds
}

func (m *projectorImpl) Scale() float64 {
	return m.scale
}

func (m *projectorImpl) Size() float64 {
	return m.size
}

func (m *projectorImpl) Padding() float64 {
	return m.padding
}
