package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbitDefaults(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	assert.Equal(t, DefaultSpherical, o.Spherical())
	assert.Equal(t, DefaultSpherical, o.TargetSpherical())
	assert.False(t, o.AutoRotate())

	want := mgl64.Vec3{0, 450, 900 * math.Sin(math.Pi/3)}
	assert.True(t, o.Position().ApproxEqualThreshold(want, 1e-9), "position %v", o.Position())
	assert.Equal(t, mgl64.Vec3{}, o.Target())
}

func TestOrbitScenarioZoomClamps(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.ZoomBy(0.8)
	assert.InDelta(t, 720, o.TargetSpherical().Radius, 1e-9)

	for range 30 {
		o.ZoomBy(0.8)
		require.GreaterOrEqual(t, o.TargetSpherical().Radius, 50.0)
	}
	assert.Equal(t, 50.0, o.TargetSpherical().Radius)

	for range 100 {
		o.ZoomBy(1.5)
	}
	assert.Equal(t, 2500.0, o.TargetSpherical().Radius)

	o.ZoomBy(0)
	o.ZoomBy(math.NaN())
	assert.Equal(t, 2500.0, o.TargetSpherical().Radius)
}

func TestOrbitScenarioDragMomentum(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.BeginDrag(0, 0)
	o.DragMove(100, 0)

	v, _ := o.Velocity()
	initial := v.Azimuth
	assert.InDelta(t, -0.06, initial, 1e-12)
	assert.InDelta(t, -0.06, o.TargetSpherical().Azimuth, 1e-12)

	o.EndDrag()
	for range 10 {
		o.Tick(tick)
	}
	v, _ = o.Velocity()
	assert.InDelta(t, initial*math.Pow(0.95, 10), v.Azimuth, 1e-12)
}

func TestOrbitMomentumTerminates(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.BeginDrag(0, 0)
	o.DragMove(100, 40)
	o.EndDrag()
	o.BeginPan(0, 0)
	o.PanMove(30, 0)
	o.EndPan()

	for range 250 {
		o.Tick(tick)
	}
	v, pan := o.Velocity()
	assert.Equal(t, AngularVelocity{}, v)
	assert.Equal(t, mgl64.Vec3{}, pan)

	settled := o.TargetSpherical()
	o.Tick(tick)
	assert.Equal(t, settled, o.TargetSpherical())
}

func TestOrbitNoMomentumWhileDragging(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.BeginDrag(0, 0)
	o.DragMove(50, 0)
	before := o.TargetSpherical().Azimuth
	for range 5 {
		o.Tick(tick)
	}
	assert.Equal(t, before, o.TargetSpherical().Azimuth)
	assert.True(t, o.Interacting())
	assert.True(t, o.Dragging())
}

func TestOrbitBeginGestureStopsMomentum(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.BeginDrag(0, 0)
	o.DragMove(80, 0)
	o.EndDrag()
	o.BeginPan(0, 0)
	v, pan := o.Velocity()
	assert.Equal(t, AngularVelocity{}, v)
	assert.Equal(t, mgl64.Vec3{}, pan)
	assert.False(t, o.Dragging())
}

func TestOrbitPolarClamp(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.BeginDrag(0, 0)
	o.DragMove(0, 100000)
	assert.InDelta(t, math.Pi-0.1, o.TargetSpherical().Polar, 1e-12)
	o.DragMove(0, -200000)
	assert.InDelta(t, 0.1, o.TargetSpherical().Polar, 1e-12)

	for range 500 {
		o.Tick(tick)
		p := o.Spherical().Polar
		require.GreaterOrEqual(t, p, 0.1-1e-12)
		require.LessOrEqual(t, p, math.Pi-0.1+1e-12)
	}
}

func TestOrbitDragIgnoredWithoutBegin(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.DragMove(100, 100)
	o.PanMove(100, 100)
	o.PinchMove(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0})
	assert.Equal(t, DefaultSpherical, o.TargetSpherical())
	assert.Equal(t, mgl64.Vec3{}, o.TargetPivot())
}

func TestOrbitPanMovesAlongScreenAxes(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.BeginPan(0, 0)
	o.PanMove(10, 0)

	// right is +X at azimuth 0; a = 900 * 0.002 * 0.3.
	want := mgl64.Vec3{-10 * 0.54, 0, 0}
	assert.True(t, o.TargetPivot().ApproxEqualThreshold(want, 1e-9), "pivot %v", o.TargetPivot())
	_, pan := o.Velocity()
	assert.True(t, pan.ApproxEqualThreshold(want, 1e-9))

	o.PanMove(10, 10)
	up := o.TargetPivot().Sub(want)
	assert.Greater(t, up.Y(), 0.0)
	assert.InDelta(t, 0, up.X(), 1e-9)
}

func TestOrbitWheelFactor(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	eff := 1 + 0.08*0.3
	assert.InDelta(t, 1/eff, o.WheelFactor(-120), 1e-12)
	assert.InDelta(t, eff, o.WheelFactor(120), 1e-12)
	assert.Less(t, o.WheelFactor(-1), 1.0)
}

func TestOrbitZoomToward(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	point := mgl64.Vec3{100, 0, 0}
	o.ZoomToward(0.5, point)
	assert.InDelta(t, 450, o.TargetSpherical().Radius, 1e-9)
	assert.True(t, o.TargetPivot().ApproxEqualThreshold(mgl64.Vec3{15, 0, 0}, 1e-9))

	o.ZoomToward(2, mgl64.Vec3{-1000, 0, 0})
	assert.InDelta(t, 900, o.TargetSpherical().Radius, 1e-9)
	assert.True(t, o.TargetPivot().ApproxEqualThreshold(mgl64.Vec3{15, 0, 0}, 1e-9))
}

func TestOrbitPinch(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.BeginPinch(mgl64.Vec2{0, 0}, mgl64.Vec2{100, 0})
	assert.True(t, o.Interacting())
	o.PinchMove(mgl64.Vec2{0, 0}, mgl64.Vec2{50, 0})

	assert.InDelta(t, 930, o.TargetSpherical().Radius, 1e-9)
	// Center moved left by 25px so the pivot pans right.
	assert.Greater(t, o.TargetPivot().X(), 0.0)

	o.EndPinch()
	assert.False(t, o.Interacting())
}

func TestOrbitKeySteps(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	require.True(t, o.HandleKey(common.KeyLeft))
	assert.InDelta(t, 0.08, o.TargetSpherical().Azimuth, 1e-12)
	require.True(t, o.HandleKey(common.KeyRight))
	assert.InDelta(t, 0, o.TargetSpherical().Azimuth, 1e-12)
	require.True(t, o.HandleKey(common.KeyUp))
	assert.InDelta(t, math.Pi/3-0.08, o.TargetSpherical().Polar, 1e-12)
	require.True(t, o.HandleKey(common.KeyDown))
	assert.InDelta(t, math.Pi/3, o.TargetSpherical().Polar, 1e-12)

	require.True(t, o.HandleKey('='))
	assert.InDelta(t, 850, o.TargetSpherical().Radius, 1e-12)
	require.True(t, o.HandleKey('_'))
	assert.InDelta(t, 900, o.TargetSpherical().Radius, 1e-12)

	require.True(t, o.HandleKey('w'))
	require.True(t, o.HandleKey('d'))
	assert.True(t, o.TargetPivot().ApproxEqualThreshold(mgl64.Vec3{30, 30, 0}, 1e-9), "pivot %v", o.TargetPivot())

	require.True(t, o.HandleKey('r'))
	assert.True(t, o.AutoRotate())

	require.True(t, o.HandleKey('h'))
	assert.Equal(t, DefaultSpherical, o.TargetSpherical())
	assert.Equal(t, mgl64.Vec3{}, o.TargetPivot())

	assert.False(t, o.HandleKey(common.KeyEnter))
}

func TestOrbitFocusAndFlyTo(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.BeginDrag(0, 0)
	o.DragMove(40, 0)
	o.EndDrag()

	o.Focus(mgl64.Vec3{10, 20, 30})
	assert.Equal(t, mgl64.Vec3{10, 20, 30}, o.TargetPivot())
	assert.Equal(t, 120.0, o.TargetSpherical().Radius)
	v, _ := o.Velocity()
	assert.Equal(t, AngularVelocity{}, v)

	f := NewOrbitController()
	f.FlyTo(mgl64.Vec3{100, 0, 0})
	assert.True(t, f.TargetPivot().ApproxEqualThreshold(mgl64.Vec3{20, 0, 0}, 1e-9), "pivot %v", f.TargetPivot())
	assert.Equal(t, 250.0, f.TargetSpherical().Radius)

	f.RetargetPivot(mgl64.Vec3{1, 2, 3})
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, f.TargetPivot())
	assert.Equal(t, 250.0, f.TargetSpherical().Radius)
}

func TestOrbitDampedFollow(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.ZoomBy(0.8)
	o.RetargetPivot(mgl64.Vec3{100, 0, 0})
	o.Tick(tick)

	assert.InDelta(t, 900+(720-900)*0.08, o.Spherical().Radius, 1e-9)
	assert.True(t, o.Pivot().ApproxEqualThreshold(mgl64.Vec3{8, 0, 0}, 1e-9))

	for range 500 {
		o.Tick(tick)
	}
	assert.InDelta(t, 720, o.Spherical().Radius, 1e-6)
	assert.True(t, o.Target().ApproxEqualThreshold(mgl64.Vec3{100, 0, 0}, 1e-6))
	assert.InDelta(t, 720, o.Position().Sub(o.Target()).Len(), 1e-6)
}

func TestOrbitResetGlides(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	o.Focus(mgl64.Vec3{200, 0, 0})
	for range 500 {
		o.Tick(tick)
	}
	o.BeginDrag(0, 0)
	o.Reset()
	assert.False(t, o.Interacting())
	assert.Equal(t, DefaultSpherical, o.TargetSpherical())

	o.Tick(tick)
	assert.Greater(t, o.Pivot().X(), 100.0)

	for range 500 {
		o.Tick(tick)
	}
	assert.True(t, o.Pivot().ApproxEqualThreshold(mgl64.Vec3{}, 1e-6))
	assert.InDelta(t, 900, o.Spherical().Radius, 1e-6)
}

func TestOrbitAutoRotate(t *testing.T) {
	t.Parallel()

	o := NewOrbitController(WithAutoRotate(true, 0.001))
	for range 10 {
		o.Tick(tick)
	}
	assert.InDelta(t, 0.01, o.TargetSpherical().Azimuth, 1e-12)

	o.SetAutoRotateSuppressed(true)
	o.Tick(tick)
	assert.InDelta(t, 0.01, o.TargetSpherical().Azimuth, 1e-12)

	o.SetAutoRotateSuppressed(false)
	o.BeginDrag(0, 0)
	o.Tick(tick)
	assert.InDelta(t, 0.01, o.TargetSpherical().Azimuth, 1e-12)

	o.EndDrag()
	o.SetAutoRotate(false)
	o.Tick(tick)
	assert.InDelta(t, 0.01, o.TargetSpherical().Azimuth, 1e-12)
}

func TestOrbitOptions(t *testing.T) {
	t.Parallel()

	o := NewOrbitController(
		WithInitialSpherical(Spherical{Azimuth: 1, Polar: 0, Radius: 10}),
		WithInitialPivot(mgl64.Vec3{5, 5, 5}),
		WithRadiusRange(100, 20),
	)
	s := o.Spherical()
	assert.Equal(t, 1.0, s.Azimuth)
	assert.Equal(t, 0.1, s.Polar)
	assert.Equal(t, 20.0, s.Radius)
	assert.Equal(t, mgl64.Vec3{5, 5, 5}, o.Target())
}
