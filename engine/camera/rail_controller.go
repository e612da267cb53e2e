package camera

import (
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/Carmen-Shannon/wayfinder/engine/path"
	"github.com/go-gl/mathgl/mgl64"
)

// LookAheadMode selects how the rail look-at point behaves near the end of the path.
type LookAheadMode int

const (
	// LookAheadExtend continues past the end along the terminal tangent so the
	// look-ahead distance stays constant.
	LookAheadExtend LookAheadMode = iota
	// LookAheadClamp pins the look-at point to the path end.
	LookAheadClamp
)

const (
	defaultRailSmoothing      = 0.08
	defaultRailReferenceRate  = 60.0
	defaultRailSettleEpsilon  = 1e-6
	defaultTrailDistance      = 12.0
	defaultHeightOffset       = 4.0
	defaultLookAheadFraction  = 0.03
	defaultLookHeight         = 1.5
	defaultWheelScale         = 0.0004
	defaultTouchScale         = 0.00025
	defaultRailKeyStep        = 0.005
	defaultAutoplayStep       = 0.0005
	defaultAutoplayInterval   = 50 * time.Millisecond
	speedDisplayMultiplier    = 1000.0
	minRailSmoothing          = 1e-9
	maxRailSmoothingExclusive = 1.0
)

type railControllerImpl struct {
	mu   *sync.Mutex
	path path.Path

	units int

	current float64
	target  float64

	smoothing     float64
	referenceRate float64
	fixedStep     bool
	settleEpsilon float64

	trailDistance float64
	heightOffset  float64
	lookAhead     float64
	lookHeight    float64
	lookAheadMode LookAheadMode

	wheelScale float64
	touchScale float64
	keyStep    float64

	autoplay         bool
	autoplayStep     float64
	autoplayInterval time.Duration
	autoplayElapsed  float64

	lastIndex     int
	onIndexChange func(prev, next int)
}

// RailController drives a camera along a path. Input moves a target progress and
// Tick eases the current progress toward it, so the camera never jumps.
type RailController interface {
	Controller

	// Path returns the path the camera rides.
	//
	// Returns:
	//   - path.Path: the rail
	Path() path.Path

	// ApplyDelta adds d to the target progress, clamped to [0,1].
	//
	// Parameters:
	//   - d: the progress delta
	ApplyDelta(d float64)

	// Wheel converts a scroll delta into a progress delta.
	//
	// Parameters:
	//   - deltaY: vertical scroll amount, positive moves forward
	Wheel(deltaY float64)

	// Touch converts a vertical swipe delta into a progress delta.
	//
	// Parameters:
	//   - deltaY: swipe distance in pixels, positive moves forward
	Touch(deltaY float64)

	// JumpToIndex sets the target progress to the start of content unit i.
	//
	// Parameters:
	//   - i: the unit index, clamped to [0, units−1]
	JumpToIndex(i int)

	// JumpToFraction sets the target progress directly.
	//
	// Parameters:
	//   - f: the target progress, clamped to [0,1]
	JumpToFraction(f float64)

	// Progress returns the smoothed progress in [0,1].
	//
	// Returns:
	//   - float64: the current progress
	Progress() float64

	// TargetProgress returns the desired progress in [0,1].
	//
	// Returns:
	//   - float64: the target progress
	TargetProgress() float64

	// Index returns the content unit the current progress falls in.
	//
	// Returns:
	//   - int: floor(current·units) clamped to [0, units−1]
	Index() int

	// Units returns the number of content units the rail is divided into.
	//
	// Returns:
	//   - int: the unit count
	Units() int

	// Speed returns the remaining gap scaled for display.
	//
	// Returns:
	//   - float64: |target − current|·1000
	Speed() float64

	// PoseAt computes the camera pose for a progress value without touching state.
	//
	// Parameters:
	//   - progress: the progress to evaluate, clamped to [0,1]
	//
	// Returns:
	//   - Pose: the camera pose at that progress
	PoseAt(progress float64) Pose

	// StartAutoplay begins advancing the target on a fixed cadence.
	StartAutoplay()

	// StopAutoplay halts auto-advance.
	StopAutoplay()

	// ToggleAutoplay flips the auto-advance state.
	ToggleAutoplay()

	// Autoplaying reports whether auto-advance is running.
	//
	// Returns:
	//   - bool: true while auto-advancing
	Autoplaying() bool
}

var _ RailController = &railControllerImpl{}

// NewRailController creates a RailController riding the given path.
// Progress starts at 0. The unit count defaults to PointCount()−1.
//
// Parameters:
//   - p: the path to ride
//   - options: functional options to configure the controller
//
// Returns:
//   - RailController: the newly created controller
func NewRailController(p path.Path, options ...RailBuilderOption) RailController {
	if p == nil {
		panic("rail controller requires a path")
	}
	r := &railControllerImpl{
		mu:               &sync.Mutex{},
		path:             p,
		units:            max(p.PointCount()-1, 1),
		smoothing:        defaultRailSmoothing,
		referenceRate:    defaultRailReferenceRate,
		settleEpsilon:    defaultRailSettleEpsilon,
		trailDistance:    defaultTrailDistance,
		heightOffset:     defaultHeightOffset,
		lookAhead:        defaultLookAheadFraction,
		lookHeight:       defaultLookHeight,
		lookAheadMode:    LookAheadExtend,
		wheelScale:       defaultWheelScale,
		touchScale:       defaultTouchScale,
		keyStep:          defaultRailKeyStep,
		autoplayStep:     defaultAutoplayStep,
		autoplayInterval: defaultAutoplayInterval,
	}
	for _, option := range options {
		option(r)
	}
	r.smoothing = common.Clamp(r.smoothing, minRailSmoothing, maxRailSmoothingExclusive)
	if r.units < 1 {
		r.units = 1
	}
	if r.referenceRate <= 0 {
		r.referenceRate = defaultRailReferenceRate
	}
	if r.autoplayInterval <= 0 {
		r.autoplayInterval = defaultAutoplayInterval
	}
	return r
}

func (r *railControllerImpl) Path() path.Path {
	return r.path
}

func (r *railControllerImpl) Position() mgl64.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.poseAt(r.current).Position
}

func (r *railControllerImpl) Target() mgl64.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.poseAt(r.current).Target
}

func (r *railControllerImpl) Pose() Pose {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.poseAt(r.current)
}

func (r *railControllerImpl) PoseAt(progress float64) Pose {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.poseAt(progress)
}

func (r *railControllerImpl) Tick(dt float64) {
	r.mu.Lock()
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		r.mu.Unlock()
		return
	}

	if r.autoplay {
		r.advanceAutoplay(dt)
	}

	alpha := r.smoothing
	if !r.fixedStep {
		k := -math.Log(1-r.smoothing) * r.referenceRate
		alpha = 1 - math.Exp(-k*dt)
	}
	r.current += (r.target - r.current) * alpha
	if math.Abs(r.target-r.current) < r.settleEpsilon {
		r.current = r.target
	}

	prev := r.lastIndex
	next := r.index()
	r.lastIndex = next
	cb := r.onIndexChange
	r.mu.Unlock()

	if cb != nil && prev != next {
		cb(prev, next)
	}
}

// advanceAutoplay steps the target once per elapsed interval and stops at the end.
// Caller must hold the mutex.
func (r *railControllerImpl) advanceAutoplay(dt float64) {
	interval := r.autoplayInterval.Seconds()
	r.autoplayElapsed += dt
	for r.autoplayElapsed >= interval {
		r.autoplayElapsed -= interval
		if r.target >= 1 {
			r.stopAutoplay()
			return
		}
		r.target = math.Min(1, r.target+r.autoplayStep)
	}
}

func (r *railControllerImpl) HandleKey(code uint32) bool {
	switch common.NormalizeKey(code) {
	case common.KeyUp, common.KeyW:
		r.ApplyDelta(r.keyStep)
	case common.KeyDown, common.KeyS:
		r.ApplyDelta(-r.keyStep)
	case common.KeyPageDown:
		r.JumpToIndex(r.Index() + 1)
	case common.KeyPageUp:
		r.JumpToIndex(r.Index() - 1)
	case common.KeyHome:
		r.Reset()
	case common.KeyEnd:
		r.JumpToFraction(1)
	case common.KeySpace:
		r.ToggleAutoplay()
	default:
		return false
	}
	return true
}

func (r *railControllerImpl) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = 0
	r.stopAutoplay()
}

func (r *railControllerImpl) ApplyDelta(d float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if math.IsNaN(d) {
		return
	}
	r.target = common.Clamp01(r.target + d)
}

func (r *railControllerImpl) Wheel(deltaY float64) {
	r.ApplyDelta(deltaY * r.wheelScale)
}

func (r *railControllerImpl) Touch(deltaY float64) {
	r.ApplyDelta(deltaY * r.touchScale)
}

func (r *railControllerImpl) JumpToIndex(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i = max(0, min(i, r.units-1))
	r.target = float64(i) / float64(r.units)
}

func (r *railControllerImpl) JumpToFraction(f float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = common.Clamp01(f)
}

func (r *railControllerImpl) Progress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *railControllerImpl) TargetProgress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

func (r *railControllerImpl) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index()
}

func (r *railControllerImpl) Units() int {
	return r.units
}

func (r *railControllerImpl) Speed() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return math.Abs(r.target-r.current) * speedDisplayMultiplier
}

func (r *railControllerImpl) StartAutoplay() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.autoplay = true
	r.autoplayElapsed = 0
}

func (r *railControllerImpl) StopAutoplay() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopAutoplay()
}

func (r *railControllerImpl) ToggleAutoplay() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.autoplay {
		r.stopAutoplay()
		return
	}
	r.autoplay = true
	r.autoplayElapsed = 0
}

func (r *railControllerImpl) Autoplaying() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.autoplay
}

func (r *railControllerImpl) stopAutoplay() {
	r.autoplay = false
	r.autoplayElapsed = 0
}

func (r *railControllerImpl) index() int {
	i := int(math.Floor(r.current * float64(r.units)))
	return max(0, min(i, r.units-1))
}

// poseAt places the eye behind and above the path point and looks a fixed
// fraction ahead. Caller must hold the mutex.
func (r *railControllerImpl) poseAt(progress float64) Pose {
	p := common.Clamp01(progress)
	frame := r.path.FrameAt(p)
	up := common.WorldUp

	eye := frame.Position.
		Sub(frame.Tangent.Mul(r.trailDistance)).
		Add(up.Mul(r.heightOffset))

	ahead := p + r.lookAhead
	var look mgl64.Vec3
	if ahead <= 1 || r.lookAheadMode == LookAheadClamp {
		look = r.path.PointAt(math.Min(ahead, 1))
	} else {
		end := r.path.FrameAt(1)
		look = end.Position.Add(end.Tangent.Mul((ahead - 1) * r.path.Length()))
	}

	return Pose{
		Position: eye,
		Target:   look.Add(up.Mul(r.lookHeight)),
	}
}
