package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// goldenAngle is π·(3 − √5), the angular step between consecutive Fibonacci lattice points.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// WindingPath lays out count+1 control points on the XZ plane: one per content unit plus
// a terminal point. Point i sits at (sin(i·frequency)·amplitude, 0, −i·spacing), so the
// route heads down −Z while swaying left and right.
//
// Parameters:
//   - count: number of content units (the result has count+1 points)
//   - spacing: distance along −Z between consecutive points
//   - amplitude: peak sideways offset on X
//   - frequency: angular step per point fed to sin
//
// Returns:
//   - []mgl64.Vec3: the control points in path order
func WindingPath(count int, spacing, amplitude, frequency float64) []mgl64.Vec3 {
	if count < 0 {
		count = 0
	}
	points := make([]mgl64.Vec3, count+1)
	for i := range points {
		fi := float64(i)
		points[i] = mgl64.Vec3{math.Sin(fi*frequency) * amplitude, 0, -fi * spacing}
	}
	return points
}

// FibonacciSphere returns the index-th of total points spread evenly over a sphere
// using the golden-angle lattice. The Y axis is squashed by flatten so clusters read
// as a wide band rather than a ball.
//
// Parameters:
//   - index: lattice index in [0, total)
//   - total: number of lattice points
//   - radius: sphere radius
//   - flatten: Y scale factor (1 keeps the sphere round)
//
// Returns:
//   - mgl64.Vec3: the point, or the origin when total < 2
func FibonacciSphere(index, total int, radius, flatten float64) mgl64.Vec3 {
	if total < 2 {
		return mgl64.Vec3{}
	}
	y := 1 - (float64(index)/float64(total-1))*2
	ring := math.Sqrt(math.Max(0, 1-y*y))
	theta := goldenAngle * float64(index)
	return mgl64.Vec3{
		math.Cos(theta) * ring * radius,
		y * radius * flatten,
		math.Sin(theta) * ring * radius,
	}
}
