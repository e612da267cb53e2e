package picker

import "github.com/Carmen-Shannon/wayfinder/common"

// Enabler is implemented by candidates that can be hidden (for example by a
// category filter). Candidates without it are always enabled.
type Enabler interface {
	Enabled() bool
}

// FilterVisible returns the candidates that are enabled and whose bounding
// sphere intersects the frustum, preserving order.
//
// Parameters:
//   - candidates: the full candidate set
//   - frustum: the camera frustum
//
// Returns:
//   - []Placeable: the visible subset
func FilterVisible(candidates []Placeable, frustum common.Frustum) []Placeable {
	out := make([]Placeable, 0, len(candidates))
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if e, ok := c.(Enabler); ok && !e.Enabled() {
			continue
		}
		if !frustum.IntersectsSphere(c.Position(), c.BoundingRadius()) {
			continue
		}
		out = append(out, c)
	}
	return out
}
