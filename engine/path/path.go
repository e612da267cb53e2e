package path

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrTooFewPoints is returned when a path is built from fewer than two control points.
var ErrTooFewPoints = errors.New("path: at least two control points are required")

// forward is the tangent reported when the curve has no usable direction at all.
var forward = mgl64.Vec3{0, 0, -1}

type pathImpl struct {
	points   []mgl64.Vec3
	segments []segment

	curve           CurveType
	tension         float64
	lengthDivisions int
	length          float64
}

// Path is an immutable smooth curve through an ordered set of control points.
// The parameter t is normalized to [0,1] regardless of how many points the curve
// was built from; values outside that range are clamped, never extrapolated.
// A Path is safe for concurrent use because nothing mutates it after NewPath.
type Path interface {
	// PointAt returns the curve position at parameter t.
	//
	// Parameters:
	//   - t: path parameter, clamped to [0,1]
	//
	// Returns:
	//   - mgl64.Vec3: world-space position on the curve
	PointAt(t float64) mgl64.Vec3

	// TangentAt returns the unit direction of increasing t.
	//
	// Parameters:
	//   - t: path parameter, clamped to [0,1]
	//
	// Returns:
	//   - mgl64.Vec3: unit tangent
	TangentAt(t float64) mgl64.Vec3

	// FrameAt composes position, tangent and the horizontal normal at t.
	//
	// Parameters:
	//   - t: path parameter, clamped to [0,1]
	//
	// Returns:
	//   - Frame: the local frame
	FrameAt(t float64) Frame

	// Length returns the arc length approximated when the path was built.
	//
	// Returns:
	//   - float64: arc length in world units
	Length() float64

	// PointCount returns the number of control points.
	//
	// Returns:
	//   - int: control point count (at least 2)
	PointCount() int

	// ControlPoint returns the i-th control point.
	//
	// Parameters:
	//   - i: index in [0, PointCount()), clamped
	//
	// Returns:
	//   - mgl64.Vec3: the control point
	ControlPoint(i int) mgl64.Vec3

	// ControlPoints returns a copy of every control point in path order.
	//
	// Returns:
	//   - []mgl64.Vec3: the control points
	ControlPoints() []mgl64.Vec3

	// Curve returns the interpolation variant used by this path.
	//
	// Returns:
	//   - CurveType: the curve type
	Curve() CurveType
}

var _ Path = &pathImpl{}

// NewPath builds a Catmull-Rom curve through points. The curve passes through every
// point in order and is C¹ continuous. The input slice is copied.
//
// Parameters:
//   - points: ordered control points, at least two
//   - options: functional options to configure the curve
//
// Returns:
//   - Path: the built path
//   - error: ErrTooFewPoints (wrapped) when fewer than two points are supplied
func NewPath(points []mgl64.Vec3, options ...PathBuilderOption) (Path, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("build path from %d points: %w", len(points), ErrTooFewPoints)
	}

	p := &pathImpl{
		points:          append([]mgl64.Vec3(nil), points...),
		curve:           CurveCentripetal,
		tension:         0.5,
		lengthDivisions: 200,
	}
	for _, option := range options {
		option(p)
	}

	p.segments = buildSegments(p.points, p.curve, p.tension)
	p.length = p.measure(max(p.lengthDivisions, 16*len(p.segments)))
	return p, nil
}

// MustPath is NewPath for statically known inputs; it panics on error.
func MustPath(points []mgl64.Vec3, options ...PathBuilderOption) Path {
	p, err := NewPath(points, options...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *pathImpl) PointAt(t float64) mgl64.Vec3 {
	seg, w := p.locate(t)
	return p.segments[seg].at(w)
}

func (p *pathImpl) TangentAt(t float64) mgl64.Vec3 {
	seg, w := p.locate(t)
	// The chord keeps the direction defined when a segment's derivative vanishes,
	// which happens when neighbouring control points coincide.
	chord := common.SafeNormalize(p.points[seg+1].Sub(p.points[seg]), forward)
	return common.SafeNormalize(p.segments[seg].slope(w), chord)
}

func (p *pathImpl) FrameAt(t float64) Frame {
	t = common.Clamp01(t)
	tangent := p.TangentAt(t)
	return Frame{
		T:        t,
		Position: p.PointAt(t),
		Tangent:  tangent,
		Normal:   normalFor(tangent),
	}
}

func (p *pathImpl) Length() float64 {
	return p.length
}

func (p *pathImpl) PointCount() int {
	return len(p.points)
}

func (p *pathImpl) ControlPoint(i int) mgl64.Vec3 {
	i = max(0, min(i, len(p.points)-1))
	return p.points[i]
}

func (p *pathImpl) ControlPoints() []mgl64.Vec3 {
	return append([]mgl64.Vec3(nil), p.points...)
}

func (p *pathImpl) Curve() CurveType {
	return p.curve
}

// locate maps a global parameter onto a segment index and a local weight in [0,1].
// t = 1 resolves to the end of the last segment rather than the start of a missing one.
func (p *pathImpl) locate(t float64) (int, float64) {
	t = common.Clamp01(t)
	last := len(p.segments) - 1

	pos := float64(len(p.segments)) * t
	seg := int(math.Floor(pos))
	w := pos - float64(seg)
	if seg > last {
		seg = last
		w = 1
	}
	return seg, w
}

// measure approximates the arc length with a polyline of the given resolution.
func (p *pathImpl) measure(divisions int) float64 {
	total := 0.0
	prev := p.PointAt(0)
	for i := 1; i <= divisions; i++ {
		cur := p.PointAt(float64(i) / float64(divisions))
		total += cur.Sub(prev).Len()
		prev = cur
	}
	return total
}
