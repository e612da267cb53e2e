package path

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CurveType selects how Catmull-Rom tangents are derived from neighbouring control points.
type CurveType int

const (
	// CurveCentripetal parameterizes knots by the square root of chord length.
	// It never forms cusps or self-intersections inside a segment.
	CurveCentripetal CurveType = iota

	// CurveChordal parameterizes knots by chord length.
	CurveChordal

	// CurveUniform uses evenly spaced knots scaled by the path tension.
	CurveUniform
)

// String returns the config name of the curve type.
func (c CurveType) String() string {
	switch c {
	case CurveChordal:
		return "chordal"
	case CurveUniform:
		return "uniform"
	default:
		return "centripetal"
	}
}

// ParseCurveType maps a config name onto a CurveType. Unknown names report false.
func ParseCurveType(name string) (CurveType, bool) {
	switch name {
	case "", "centripetal":
		return CurveCentripetal, true
	case "chordal":
		return CurveChordal, true
	case "uniform", "catmullrom":
		return CurveUniform, true
	}
	return CurveCentripetal, false
}

// knotEpsilon guards against coincident control points collapsing a knot interval.
const knotEpsilon = 1e-4

// cubic is one axis of a Hermite segment: c0 + c1·w + c2·w² + c3·w³.
type cubic struct {
	c0, c1, c2, c3 float64
}

func (c cubic) at(w float64) float64 {
	return c.c0 + w*(c.c1+w*(c.c2+w*c.c3))
}

func (c cubic) slope(w float64) float64 {
	return c.c1 + w*(2*c.c2+w*3*c.c3)
}

// hermite builds the cubic running from x0 to x1 with end slopes t0 and t1.
func hermite(x0, x1, t0, t1 float64) cubic {
	return cubic{
		c0: x0,
		c1: t0,
		c2: -3*x0 + 3*x1 - 2*t0 - t1,
		c3: 2*x0 - 2*x1 + t0 + t1,
	}
}

// nonUniform builds the x1→x2 cubic for knot intervals dt0, dt1, dt2,
// rescaling the tangents into the [0,1] parameter of the middle interval.
func nonUniform(x0, x1, x2, x3, dt0, dt1, dt2 float64) cubic {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	return hermite(x1, x2, t1*dt1, t2*dt1)
}

// segment holds the three axis cubics for the span between two control points.
type segment [3]cubic

func (s segment) at(w float64) mgl64.Vec3 {
	return mgl64.Vec3{s[0].at(w), s[1].at(w), s[2].at(w)}
}

func (s segment) slope(w float64) mgl64.Vec3 {
	return mgl64.Vec3{s[0].slope(w), s[1].slope(w), s[2].slope(w)}
}

// buildSegments precomputes one segment per consecutive control-point pair.
// Missing neighbours at the ends are reflected through the end point.
func buildSegments(points []mgl64.Vec3, curve CurveType, tension float64) []segment {
	n := len(points)
	segments := make([]segment, n-1)

	for i := range n - 1 {
		p1 := points[i]
		p2 := points[i+1]

		var p0, p3 mgl64.Vec3
		if i > 0 {
			p0 = points[i-1]
		} else {
			p0 = p1.Mul(2).Sub(p2)
		}
		if i+2 < n {
			p3 = points[i+2]
		} else {
			p3 = p2.Mul(2).Sub(p1)
		}

		if curve == CurveUniform {
			for axis := range 3 {
				segments[i][axis] = hermite(
					p1[axis], p2[axis],
					tension*(p2[axis]-p0[axis]),
					tension*(p3[axis]-p1[axis]),
				)
			}
			continue
		}

		exponent := 0.25 // centripetal: (d²)^0.25 = √d
		if curve == CurveChordal {
			exponent = 0.5
		}
		dt0 := math.Pow(p0.Sub(p1).LenSqr(), exponent)
		dt1 := math.Pow(p1.Sub(p2).LenSqr(), exponent)
		dt2 := math.Pow(p2.Sub(p3).LenSqr(), exponent)

		if dt1 < knotEpsilon {
			dt1 = 1
		}
		if dt0 < knotEpsilon {
			dt0 = dt1
		}
		if dt2 < knotEpsilon {
			dt2 = dt1
		}

		for axis := range 3 {
			segments[i][axis] = nonUniform(p0[axis], p1[axis], p2[axis], p3[axis], dt0, dt1, dt2)
		}
	}
	return segments
}
