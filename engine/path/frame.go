package path

import (
	"github.com/go-gl/mathgl/mgl64"
)

// right is the normal reported for a vertical tangent, which has no horizontal perpendicular.
var right = mgl64.Vec3{1, 0, 0}

// Frame is the local basis of a path at one parameter value.
// Tangent points toward increasing t; Normal lies in the horizontal plane
// and marks the left/right sides of the path.
type Frame struct {
	T        float64
	Position mgl64.Vec3
	Tangent  mgl64.Vec3
	Normal   mgl64.Vec3
}

// Side returns the point offset from the frame position along the normal.
// Alternating the sign places content on opposite sides of the path.
//
// Parameters:
//   - sign: +1 for the normal side, −1 for the opposite side
//   - distance: offset from the path centreline
//
// Returns:
//   - mgl64.Vec3: the offset point
func (f Frame) Side(sign, distance float64) mgl64.Vec3 {
	return f.Position.Add(f.Normal.Mul(sign * distance))
}

// AlternatingSide returns +1 for even indices and −1 for odd ones.
func AlternatingSide(index int) float64 {
	if index%2 == 0 {
		return 1
	}
	return -1
}

// normalFor returns normalize(−tangent.z, 0, tangent.x).
func normalFor(tangent mgl64.Vec3) mgl64.Vec3 {
	n := mgl64.Vec3{-tangent[2], 0, tangent[0]}
	l := n.Len()
	if l < 1e-12 {
		return right
	}
	return n.Mul(1 / l)
}

// Placement describes where the content unit at Index sits along a path.
type Placement struct {
	Index int
	Frame Frame
	Point mgl64.Vec3
}

// PlaceUnits computes one placement per content unit, spacing units at t = i/count
// and alternating them between the two sides of the path.
//
// Parameters:
//   - p: the path to place along
//   - count: number of content units
//   - distance: offset from the centreline
//
// Returns:
//   - []Placement: one placement per unit in order
func PlaceUnits(p Path, count int, distance float64) []Placement {
	if count <= 0 {
		return nil
	}
	out := make([]Placement, count)
	for i := range count {
		f := p.FrameAt(float64(i) / float64(count))
		out[i] = Placement{
			Index: i,
			Frame: f,
			Point: f.Side(AlternatingSide(i), distance),
		}
	}
	return out
}
