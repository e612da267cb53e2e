package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 0.4, 0.4},
		{"below", -3, 0},
		{"above", 7, 1},
		{"nan", math.NaN(), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"positive infinity", math.Inf(1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp01(tt.in))
		})
	}
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3.0, Coalesce(0.0, 3.0, 4.0))
	assert.Equal(t, "", Coalesce("", ""))
}

func TestSphericalToCartesian(t *testing.T) {
	v := SphericalToCartesian(0, math.Pi/2, 10)
	assert.True(t, v.ApproxEqualThreshold(mgl64.Vec3{0, 0, 10}, 1e-9), "got %v", v)

	v = SphericalToCartesian(math.Pi/2, math.Pi/2, 10)
	assert.True(t, v.ApproxEqualThreshold(mgl64.Vec3{10, 0, 0}, 1e-9), "got %v", v)

	v = SphericalToCartesian(1.3, 0.7, 5)
	assert.InDelta(t, 5, v.Len(), 1e-12)
}

func TestSafeNormalize(t *testing.T) {
	fallback := mgl64.Vec3{0, 0, -1}
	assert.Equal(t, fallback, SafeNormalize(mgl64.Vec3{}, fallback))
	assert.InDelta(t, 1, SafeNormalize(mgl64.Vec3{3, 4, 0}, fallback).Len(), 1e-12)
}

func TestFrustumIntersectsSphere(t *testing.T) {
	proj := mgl64.Perspective(mgl64.DegToRad(45), 1, 0.1, 100)
	view := mgl64.LookAtV(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, WorldUp)
	f := ExtractFrustum(proj.Mul4(view))

	for i, p := range f.Planes {
		require.InDelta(t, 1, p.Normal.Len(), 1e-9, "plane %d not normalized", i)
	}

	assert.True(t, f.IntersectsSphere(mgl64.Vec3{}, 1), "sphere in front of the camera")
	assert.False(t, f.IntersectsSphere(mgl64.Vec3{0, 0, 20}, 1), "sphere behind the camera")
	assert.False(t, f.IntersectsSphere(mgl64.Vec3{1000, 0, 0}, 1), "sphere far to the side")
	assert.False(t, f.IntersectsSphere(mgl64.Vec3{0, 0, -200}, 1), "sphere past the far plane")
	assert.True(t, f.IntersectsSphere(mgl64.Vec3{0, 0, -200}, 150), "large sphere straddling the far plane")
}

func TestWindingPath(t *testing.T) {
	points := WindingPath(3, 100, 60, 0.15)
	require.Len(t, points, 4)
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, points[0])
	assert.InDelta(t, math.Sin(0.3)*60, points[2].X(), 1e-12)
	assert.InDelta(t, -300, points[3].Z(), 1e-12)
}

func TestFibonacciSphere(t *testing.T) {
	const total = 50
	for i := range total {
		p := FibonacciSphere(i, total, 60, 1)
		assert.InDelta(t, 60, p.Len(), 1e-9)
	}
	top := FibonacciSphere(0, total, 60, 0.6)
	assert.InDelta(t, 36, top.Y(), 1e-9)
	assert.Equal(t, mgl64.Vec3{}, FibonacciSphere(0, 1, 60, 1))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, uint32(KeyW), NormalizeKey('w'))
	assert.Equal(t, uint32(KeyW), NormalizeKey(KeyW))
	assert.Equal(t, uint32(KeyHome), NormalizeKey(KeyHome))
}
