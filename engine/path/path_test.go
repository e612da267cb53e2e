package path

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightLine() []mgl64.Vec3 {
	return []mgl64.Vec3{{0, 0, 0}, {0, 0, -100}, {0, 0, -200}}
}

func TestNewPathRejectsTooFewPoints(t *testing.T) {
	t.Parallel()

	for _, points := range [][]mgl64.Vec3{nil, {{1, 2, 3}}} {
		p, err := NewPath(points)
		require.Error(t, err)
		assert.Nil(t, p)
		assert.True(t, errors.Is(err, ErrTooFewPoints))
	}

	assert.Panics(t, func() { MustPath(nil) })
}

func TestPathPassesThroughControlPoints(t *testing.T) {
	t.Parallel()

	points := common.WindingPath(12, 100, 60, 0.15)
	for _, curve := range []CurveType{CurveCentripetal, CurveChordal, CurveUniform} {
		t.Run(curve.String(), func(t *testing.T) {
			p, err := NewPath(points, WithCurve(curve))
			require.NoError(t, err)
			require.Equal(t, len(points), p.PointCount())

			for i, want := range points {
				got := p.PointAt(float64(i) / float64(len(points)-1))
				assert.True(t, got.ApproxEqualThreshold(want, 1e-9), "point %d: got %v want %v", i, got, want)
			}
		})
	}
}

func TestPathClampsParameter(t *testing.T) {
	t.Parallel()

	p := MustPath(common.WindingPath(5, 100, 60, 0.15))
	assert.Equal(t, p.PointAt(0), p.PointAt(-3))
	assert.Equal(t, p.PointAt(1), p.PointAt(42))
	assert.Equal(t, p.PointAt(0), p.PointAt(math.NaN()))
	assert.Equal(t, p.FrameAt(1), p.FrameAt(1.5))
}

func TestStraightPath(t *testing.T) {
	t.Parallel()

	p := MustPath(straightLine())
	assert.InDelta(t, 200, p.Length(), 1e-6)

	for _, tt := range []float64{0, 0.1, 0.5, 0.77, 1} {
		f := p.FrameAt(tt)
		assert.True(t, f.Tangent.ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-9), "t=%v tangent %v", tt, f.Tangent)
		assert.True(t, f.Normal.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9), "t=%v normal %v", tt, f.Normal)
		assert.InDelta(t, -200*tt, f.Position.Z(), 1e-9)
	}
}

func TestFrameOrthogonality(t *testing.T) {
	t.Parallel()

	p := MustPath(common.WindingPath(40, 100, 60, 0.15))
	for i := 0; i <= 1000; i++ {
		f := p.FrameAt(float64(i) / 1000)
		require.InDelta(t, 0, f.Tangent.Dot(f.Normal), 1e-9, "t=%v", f.T)
		require.InDelta(t, 1, f.Tangent.Len(), 1e-9, "t=%v", f.T)
		require.InDelta(t, 1, f.Normal.Len(), 1e-9, "t=%v", f.T)
		require.InDelta(t, 0, f.Normal.Y(), 1e-12, "t=%v", f.T)
	}
}

func TestTangentContinuousAcrossControlPoints(t *testing.T) {
	t.Parallel()

	points := common.WindingPath(10, 100, 60, 0.15)
	p := MustPath(points)
	const eps = 1e-9
	for i := 1; i < len(points)-1; i++ {
		knot := float64(i) / float64(len(points)-1)
		before := p.TangentAt(knot - eps)
		after := p.TangentAt(knot + eps)
		assert.True(t, before.ApproxEqualThreshold(after, 1e-4), "knot %d: %v vs %v", i, before, after)
	}
}

func TestCoincidentPointsKeepDirection(t *testing.T) {
	t.Parallel()

	p := MustPath([]mgl64.Vec3{{0, 0, 0}, {0, 0, 0}, {10, 0, 0}})
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		tangent := p.TangentAt(tt)
		assert.InDelta(t, 1, tangent.Len(), 1e-9, "t=%v", tt)
		assert.False(t, math.IsNaN(tangent.X()))
	}
}

func TestPlaceUnitsAlternatesSides(t *testing.T) {
	t.Parallel()

	p := MustPath(common.WindingPath(6, 100, 60, 0.15))
	placements := PlaceUnits(p, 6, 10)
	require.Len(t, placements, 6)

	for i, pl := range placements {
		assert.Equal(t, i, pl.Index)
		assert.InDelta(t, float64(i)/6, pl.Frame.T, 1e-12)
		offset := pl.Point.Sub(pl.Frame.Position)
		assert.InDelta(t, 10, offset.Len(), 1e-9)
		assert.InDelta(t, AlternatingSide(i)*10, offset.Dot(pl.Frame.Normal), 1e-9)
	}
	assert.Nil(t, PlaceUnits(p, 0, 10))
}

func TestParseCurveType(t *testing.T) {
	for _, curve := range []CurveType{CurveCentripetal, CurveChordal, CurveUniform} {
		parsed, ok := ParseCurveType(curve.String())
		assert.True(t, ok)
		assert.Equal(t, curve, parsed)
	}
	_, ok := ParseCurveType("bezier")
	assert.False(t, ok)
}
