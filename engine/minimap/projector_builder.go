package minimap

// ProjectorBuilderOption is a functional option for configuring a Projector.
type ProjectorBuilderOption func(*projectorImpl)

// WithSize sets the canvas edge length.
//
// Parameters:
//   - size: canvas size in canvas units (default 130)
//
// Returns:
//   - ProjectorBuilderOption: functional option to set the size
func WithSize(size float64) ProjectorBuilderOption {
	return func(m *projectorImpl) {
		if size > 0 {
			m.size = size
		}
	}
}

// WithPadding sets the margin kept clear on every side of the canvas.
//
// Parameters:
//   - padding: margin in canvas units (default 15)
//
// Returns:
//   - ProjectorBuilderOption: functional option to set the padding
func WithPadding(padding float64) ProjectorBuilderOption {
	return func(m *projectorImpl) {
		m.padding = padding
	}
}

// WithSamples sets how many points are sampled along the path.
//
// Parameters:
//   - n: sample count, at least 2 (default 100)
//
// Returns:
//   - ProjectorBuilderOption: functional option to set the sample count
func WithSamples(n int) ProjectorBuilderOption {
	return func(m *projectorImpl) {
		m.count = n
	}
}
