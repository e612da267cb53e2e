package camera

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/Carmen-Shannon/wayfinder/engine/path"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60.0

func straightRail(t *testing.T, opts ...RailBuilderOption) RailController {
	t.Helper()
	p, err := path.NewPath([]mgl64.Vec3{{0, 0, 0}, {0, 0, -100}, {0, 0, -200}})
	require.NoError(t, err)
	return NewRailController(p, opts...)
}

func TestRailRequiresPath(t *testing.T) {
	assert.Panics(t, func() { NewRailController(nil) })
}

func TestRailScenarioFiftyTicks(t *testing.T) {
	t.Parallel()

	r := straightRail(t)
	r.ApplyDelta(1.0)
	for range 50 {
		r.Tick(tick)
	}

	assert.Equal(t, 1.0, r.TargetProgress())
	assert.InDelta(t, math.Pow(0.92, 50), 1-r.Progress(), 1e-9)
}

func TestRailScenarioConverges(t *testing.T) {
	t.Parallel()

	r := straightRail(t)
	r.ApplyDelta(1.0)
	for range 200 {
		r.Tick(tick)
	}

	require.Equal(t, 1.0, r.Progress())
	assert.Equal(t, r.PoseAt(1.0), r.Pose())

	// Eye trails 12 back and 4 up; the look point extends 3% of the length past the end.
	want := Pose{
		Position: mgl64.Vec3{0, 4, -188},
		Target:   mgl64.Vec3{0, 1.5, -206},
	}
	got := r.Pose()
	assert.True(t, got.Position.ApproxEqualThreshold(want.Position, 1e-6), "position %v", got.Position)
	assert.True(t, got.Target.ApproxEqualThreshold(want.Target, 1e-6), "target %v", got.Target)
}

func TestRailLookAheadClampMode(t *testing.T) {
	t.Parallel()

	r := straightRail(t, WithLookAheadMode(LookAheadClamp))
	got := r.PoseAt(1)
	assert.True(t, got.Target.ApproxEqualThreshold(mgl64.Vec3{0, 1.5, -200}, 1e-6), "target %v", got.Target)

	mid := r.PoseAt(0.5)
	assert.True(t, mid.Target.ApproxEqualThreshold(mgl64.Vec3{0, 1.5, -106}, 1e-6), "target %v", mid.Target)
}

func TestRailSmoothingIsMonotonic(t *testing.T) {
	t.Parallel()

	r := straightRail(t)
	r.JumpToFraction(0.7)
	prevGap := math.Abs(r.TargetProgress() - r.Progress())
	prev := r.Progress()
	for range 300 {
		r.Tick(tick)
		gap := math.Abs(r.TargetProgress() - r.Progress())
		require.LessOrEqual(t, gap, prevGap)
		require.GreaterOrEqual(t, r.Progress(), prev)
		require.LessOrEqual(t, r.Progress(), 0.7)
		prevGap, prev = gap, r.Progress()
	}
	assert.Equal(t, 0.7, r.Progress())
}

func TestRailSmoothingIndependentOfFrameRate(t *testing.T) {
	t.Parallel()

	slow := straightRail(t)
	fast := straightRail(t)
	slow.ApplyDelta(1)
	fast.ApplyDelta(1)

	for range 30 {
		slow.Tick(1.0 / 30.0)
	}
	for range 120 {
		fast.Tick(1.0 / 120.0)
	}
	assert.InDelta(t, slow.Progress(), fast.Progress(), 1e-9)
}

func TestRailFixedStepIgnoresDt(t *testing.T) {
	t.Parallel()

	r := straightRail(t, WithFixedStep(true))
	r.ApplyDelta(1)
	r.Tick(5)
	assert.InDelta(t, 0.08, r.Progress(), 1e-12)
}

func TestRailNonPositiveDtIsNoop(t *testing.T) {
	t.Parallel()

	r := straightRail(t)
	r.ApplyDelta(1)
	r.Tick(0)
	r.Tick(-1)
	r.Tick(math.NaN())
	assert.Equal(t, 0.0, r.Progress())
}

func TestRailTargetClamps(t *testing.T) {
	t.Parallel()

	r := straightRail(t)
	r.ApplyDelta(-3)
	assert.Equal(t, 0.0, r.TargetProgress())
	r.ApplyDelta(7)
	assert.Equal(t, 1.0, r.TargetProgress())
	r.JumpToFraction(-0.5)
	assert.Equal(t, 0.0, r.TargetProgress())
	r.ApplyDelta(math.NaN())
	assert.Equal(t, 0.0, r.TargetProgress())
}

func TestRailInputScales(t *testing.T) {
	t.Parallel()

	r := straightRail(t)
	r.Wheel(100)
	assert.InDelta(t, 0.04, r.TargetProgress(), 1e-12)
	r.Touch(-80)
	assert.InDelta(t, 0.02, r.TargetProgress(), 1e-12)

	assert.True(t, r.HandleKey(common.KeyUp))
	assert.True(t, r.HandleKey('w'))
	assert.InDelta(t, 0.03, r.TargetProgress(), 1e-12)
	assert.True(t, r.HandleKey(common.KeyDown))
	assert.InDelta(t, 0.025, r.TargetProgress(), 1e-12)
	assert.False(t, r.HandleKey(common.KeyEnter))
}

func TestRailIndexAndJumps(t *testing.T) {
	t.Parallel()

	p := path.MustPath(common.WindingPath(10, 100, 60, 0.15))
	var changes [][2]int
	r := NewRailController(p, WithIndexChangeCallback(func(prev, next int) {
		changes = append(changes, [2]int{prev, next})
	}))
	require.Equal(t, 10, r.Units())
	assert.Equal(t, 0, r.Index())

	r.JumpToIndex(3)
	assert.InDelta(t, 0.3, r.TargetProgress(), 1e-12)
	r.JumpToIndex(99)
	assert.InDelta(t, 0.9, r.TargetProgress(), 1e-12)
	r.JumpToIndex(-4)
	assert.Equal(t, 0.0, r.TargetProgress())

	r.JumpToFraction(1)
	for range 400 {
		r.Tick(tick)
	}
	assert.Equal(t, 9, r.Index())
	assert.Equal(t, 0.0, r.Speed())
	require.NotEmpty(t, changes)
	assert.Equal(t, 0, changes[0][0])
	assert.Equal(t, 9, changes[len(changes)-1][1])
}

func TestRailSpeed(t *testing.T) {
	t.Parallel()

	r := straightRail(t)
	r.JumpToFraction(0.25)
	assert.InDelta(t, 250, r.Speed(), 1e-9)
}

func TestRailAutoplay(t *testing.T) {
	t.Parallel()

	r := straightRail(t, WithAutoplay(0.1, 50*time.Millisecond))
	assert.True(t, r.HandleKey(common.KeySpace))
	require.True(t, r.Autoplaying())

	// 0.25s covers five intervals.
	for range 5 {
		r.Tick(0.05)
	}
	assert.InDelta(t, 0.5, r.TargetProgress(), 1e-9)

	for range 20 {
		r.Tick(0.05)
	}
	assert.Equal(t, 1.0, r.TargetProgress())
	assert.False(t, r.Autoplaying())
}

func TestRailResetStopsAutoplay(t *testing.T) {
	t.Parallel()

	r := straightRail(t)
	r.JumpToFraction(0.6)
	r.StartAutoplay()
	assert.True(t, r.HandleKey(common.KeyHome))
	assert.Equal(t, 0.0, r.TargetProgress())
	assert.False(t, r.Autoplaying())

	r.ToggleAutoplay()
	assert.True(t, r.Autoplaying())
	r.StopAutoplay()
	assert.False(t, r.Autoplaying())
}
