package picker

import "math"

// Cursor is the pointer shape a host should show.
type Cursor int

const (
	CursorGrab Cursor = iota
	CursorPointer
	CursorGrabbing
)

func (c Cursor) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "grab"
	}
}

// CursorFor picks the cursor for the current interaction: grabbing while a
// gesture is active, pointer over a candidate, grab otherwise.
func CursorFor(dragging, hovering bool) Cursor {
	switch {
	case dragging:
		return CursorGrabbing
	case hovering:
		return CursorPointer
	default:
		return CursorGrab
	}
}

const defaultClickThreshold = 5.0

// ClickTracker tells a click from a drag by how far the pointer travelled
// between down and up.
type ClickTracker struct {
	Threshold float64

	downX, downY float64
	down         bool
}

// NewClickTracker creates a tracker with the given per-axis threshold in pixels.
// A non-positive threshold uses 5px.
func NewClickTracker(threshold float64) *ClickTracker {
	if threshold <= 0 {
		threshold = defaultClickThreshold
	}
	return &ClickTracker{Threshold: threshold}
}

// Down records where the pointer was pressed.
func (c *ClickTracker) Down(x, y float64) {
	c.downX, c.downY = x, y
	c.down = true
}

// Up reports whether the release counts as a click: the pointer moved less
// than the threshold on both axes since Down.
func (c *ClickTracker) Up(x, y float64) bool {
	if !c.down {
		return false
	}
	c.down = false
	return math.Abs(x-c.downX) < c.Threshold && math.Abs(y-c.downY) < c.Threshold
}
