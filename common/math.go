package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldUp is the world-space up axis shared by every camera controller.
var WorldUp = mgl64.Vec3{0, 1, 0}

// Lerp linearly interpolates between a and b by t.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: interpolation fraction (not clamped)
//
// Returns:
//   - float64: the interpolated value
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates between two vectors by t.
//
// Parameters:
//   - a: vector at t = 0
//   - b: vector at t = 1
//   - t: interpolation fraction (not clamped)
//
// Returns:
//   - mgl64.Vec3: the interpolated vector
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// SphericalToCartesian converts spherical coordinates into a Y-up offset vector.
// The polar angle is measured from +Y and the azimuth rotates around Y starting at +Z.
//
// Parameters:
//   - azimuth: horizontal angle around Y in radians
//   - polar: angle from the +Y axis in radians
//   - radius: distance from the origin
//
// Returns:
//   - mgl64.Vec3: the offset (r·sinφ·sinθ, r·cosφ, r·sinφ·cosθ)
func SphericalToCartesian(azimuth, polar, radius float64) mgl64.Vec3 {
	sinPolar := math.Sin(polar)
	return mgl64.Vec3{
		radius * sinPolar * math.Sin(azimuth),
		radius * math.Cos(polar),
		radius * sinPolar * math.Cos(azimuth),
	}
}

// SafeNormalize normalizes v, returning fallback when v is too short to carry a direction.
//
// Parameters:
//   - v: the vector to normalize
//   - fallback: returned unchanged when |v| < 1e-12
//
// Returns:
//   - mgl64.Vec3: the unit vector or fallback
func SafeNormalize(v, fallback mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-12 || math.IsNaN(l) {
		return fallback
	}
	return v.Mul(1 / l)
}

// Mat4ToFloat32 narrows a column-major mgl64 matrix for GPU upload.
//
// Parameters:
//   - m: the matrix to convert
//
// Returns:
//   - [16]float32: column-major float32 matrix
func Mat4ToFloat32(m mgl64.Mat4) [16]float32 {
	var out [16]float32
	for i := range 16 {
		out[i] = float32(m[i])
	}
	return out
}

// Vec3ToFloat32 narrows a vector for GPU upload.
//
// Parameters:
//   - v: the vector to convert
//
// Returns:
//   - [3]float32: the narrowed vector
func Vec3ToFloat32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
