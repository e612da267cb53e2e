package path

// PathBuilderOption is a functional option for configuring a Path.
type PathBuilderOption func(*pathImpl)

// WithCurve selects the Catmull-Rom variant.
//
// Parameters:
//   - curve: CurveCentripetal (default), CurveChordal or CurveUniform
//
// Returns:
//   - PathBuilderOption: functional option to set the curve type
func WithCurve(curve CurveType) PathBuilderOption {
	return func(p *pathImpl) {
		p.curve = curve
	}
}

// WithTension sets the tangent scale used by CurveUniform. Ignored by the other variants.
//
// Parameters:
//   - tension: tangent scale, 0.5 gives the classic Catmull-Rom spline
//
// Returns:
//   - PathBuilderOption: functional option to set the tension
func WithTension(tension float64) PathBuilderOption {
	return func(p *pathImpl) {
		p.tension = tension
	}
}

// WithLengthDivisions sets how many polyline steps are used to approximate Length().
//
// Parameters:
//   - divisions: number of samples; values below 16 per segment are raised
//
// Returns:
//   - PathBuilderOption: functional option to set the arc-length resolution
func WithLengthDivisions(divisions int) PathBuilderOption {
	return func(p *pathImpl) {
		p.lengthDivisions = divisions
	}
}
