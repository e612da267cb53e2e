package picker

// SelectionBuilderOption is a functional option for configuring a Selection.
type SelectionBuilderOption func(*selectionImpl)

// WithHoverCallback registers a callback fired when the hovered candidate changes.
// It runs without the selection lock held.
//
// Parameters:
//   - cb: receives the previous and new hover references
//
// Returns:
//   - SelectionBuilderOption: functional option to set the callback
func WithHoverCallback(cb func(prev, next Ref)) SelectionBuilderOption {
	return func(s *selectionImpl) {
		s.onHover = cb
	}
}

// WithSelectCallback registers a callback fired when the selection changes.
// It runs without the selection lock held.
//
// Parameters:
//   - cb: receives the previous and new selection references
//
// Returns:
//   - SelectionBuilderOption: functional option to set the callback
func WithSelectCallback(cb func(prev, next Ref)) SelectionBuilderOption {
	return func(s *selectionImpl) {
		s.onSelect = cb
	}
}
