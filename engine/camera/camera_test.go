package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedController reports a constant pose.
type fixedController struct {
	pose Pose
}

func (f *fixedController) Position() mgl64.Vec3 { return f.pose.Position }
func (f *fixedController) Target() mgl64.Vec3   { return f.pose.Target }
func (f *fixedController) Pose() Pose           { return f.pose }
func (f *fixedController) Tick(float64)         {}
func (f *fixedController) HandleKey(uint32) bool {
	return false
}
func (f *fixedController) Reset() {}

func TestCameraDefaults(t *testing.T) {
	t.Parallel()

	c := NewCamera()
	assert.InDelta(t, math.Pi/3, c.Fov(), 1e-12)
	assert.Equal(t, 1.0, c.Aspect())
	assert.Equal(t, 0.1, c.Near())
	assert.Equal(t, 10000.0, c.Far())
	assert.Nil(t, c.Controller())
	assert.Equal(t, mgl64.Ident4(), c.ViewMatrix())

	c.Update()
	assert.Equal(t, mgl64.Vec3{}, c.Position())
}

func TestCameraFollowsController(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	c := NewCamera(WithController(o), WithAspect(16.0/9.0))
	assert.True(t, c.Position().ApproxEqualThreshold(o.Position(), 1e-12))
	assert.Equal(t, o.Target(), c.Target())

	o.ZoomBy(0.5)
	for range 20 {
		o.Tick(tick)
	}
	c.Update()
	assert.True(t, c.Position().ApproxEqualThreshold(o.Position(), 1e-12))

	id := c.InverseViewProjectionMatrix().Mul4(c.ViewProjectionMatrix())
	ident := mgl64.Ident4()
	assert.InDeltaSlice(t, ident[:], id[:], 1e-6)
}

func TestCameraFrustumContainsPivot(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	c := NewCamera(WithController(o))
	f := c.Frustum()
	assert.True(t, f.IntersectsSphere(mgl64.Vec3{}, 1))
	assert.False(t, f.IntersectsSphere(o.Position().Mul(2), 1))
}

func TestCameraKeepsViewOnDegeneratePose(t *testing.T) {
	t.Parallel()

	ctrl := &fixedController{pose: Pose{Position: mgl64.Vec3{0, 0, 10}, Target: mgl64.Vec3{}}}
	c := NewCamera(WithController(ctrl))
	view := c.ViewMatrix()

	ctrl.pose = Pose{Position: mgl64.Vec3{1, 1, 1}, Target: mgl64.Vec3{1, 1, 1}}
	c.Update()
	assert.Equal(t, view, c.ViewMatrix())
	assert.Equal(t, mgl64.Vec3{0, 0, 10}, c.Position())
}

func TestCameraSetAspectIgnoresInvalid(t *testing.T) {
	t.Parallel()

	c := NewCamera(WithAspect(2))
	proj := c.ProjectionMatrix()
	c.SetAspect(0)
	c.SetAspect(-1)
	c.SetAspect(math.NaN())
	assert.Equal(t, 2.0, c.Aspect())
	assert.Equal(t, proj, c.ProjectionMatrix())

	c.SetAspect(1)
	assert.NotEqual(t, proj, c.ProjectionMatrix())
}

func TestCameraSetters(t *testing.T) {
	t.Parallel()

	c := NewCamera(WithClipPlanes(1, 500), WithFov(math.Pi/4))
	assert.Equal(t, 1.0, c.Near())
	assert.Equal(t, 500.0, c.Far())

	c.SetNear(2)
	c.SetFar(800)
	c.SetFov(math.Pi / 2)
	c.SetUp(mgl64.Vec3{0, 0, 1})
	assert.Equal(t, 2.0, c.Near())
	assert.Equal(t, 800.0, c.Far())
	assert.Equal(t, math.Pi/2, c.Fov())
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, c.Up())

	r := straightRail(t)
	c.SetController(r)
	assert.Equal(t, r, c.Controller())
	assert.Equal(t, r.Position(), c.Position())
}

func TestCameraUniform(t *testing.T) {
	t.Parallel()

	o := NewOrbitController()
	c := NewCamera(WithController(o))
	u := c.Uniform()
	require.Equal(t, 80, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, math.Float32bits(u.ViewProj[0]), binary.LittleEndian.Uint32(buf[0:]))
	assert.Equal(t, math.Float32bits(u.CameraPosition[1]), binary.LittleEndian.Uint32(buf[68:]))
	assert.InDelta(t, 450, float64(u.CameraPosition[1]), 1e-3)
}
