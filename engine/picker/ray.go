package picker

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToNDC converts a pointer position in pixels (origin top-left, y down)
// into normalized device coordinates (origin center, y up, both axes in [-1,1]).
//
// Parameters:
//   - x: pointer x in pixels
//   - y: pointer y in pixels
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - mgl64.Vec2: the NDC position, or the origin for an empty viewport
func ScreenToNDC(x, y, width, height float64) mgl64.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{
		(x/width)*2 - 1,
		1 - (y/height)*2,
	}
}

// RayFromNDC unprojects the near and far clip-space points under ndc and
// returns the ray through them.
//
// Parameters:
//   - ndc: normalized device coordinates
//   - invViewProj: inverse of projection * view
//
// Returns:
//   - Ray: the world-space pick ray
//   - bool: false if the matrix is singular or the unprojection degenerates
func RayFromNDC(ndc mgl64.Vec2, invViewProj mgl64.Mat4) (Ray, bool) {
	near, ok := unproject(invViewProj, mgl64.Vec4{ndc.X(), ndc.Y(), -1, 1})
	if !ok {
		return Ray{}, false
	}
	far, ok := unproject(invViewProj, mgl64.Vec4{ndc.X(), ndc.Y(), 1, 1})
	if !ok {
		return Ray{}, false
	}
	dir := far.Sub(near)
	l := dir.Len()
	if l < 1e-12 || math.IsNaN(l) {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir.Mul(1 / l)}, true
}

func unproject(inv mgl64.Mat4, clip mgl64.Vec4) (mgl64.Vec3, bool) {
	v := inv.Mul4x1(clip)
	if math.Abs(v.W()) < 1e-15 {
		return mgl64.Vec3{}, false
	}
	return v.Vec3().Mul(1 / v.W()), true
}

// IntersectSphere returns the distance along r to the first surface crossing
// of the sphere. A ray starting inside the sphere reports the exit distance.
//
// Parameters:
//   - r: the ray, with unit direction
//   - center: sphere center
//   - radius: sphere radius
//
// Returns:
//   - float64: distance along the ray
//   - bool: false when the ray misses or the sphere lies behind the origin
func IntersectSphere(r Ray, center mgl64.Vec3, radius float64) (float64, bool) {
	if radius <= 0 {
		return 0, false
	}
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if t := -b - sq; t >= 0 {
		return t, true
	}
	if t := -b + sq; t >= 0 {
		return t, true
	}
	return 0, false
}
