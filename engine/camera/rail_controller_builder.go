package camera

import "time"

// RailBuilderOption is a functional option for configuring a RailController.
type RailBuilderOption func(*railControllerImpl)

// WithSmoothing sets the fraction of the remaining gap closed per reference tick.
// Values are clamped to (0, 1].
//
// Parameters:
//   - s: the smoothing factor (default 0.08)
//
// Returns:
//   - RailBuilderOption: functional option to set the smoothing
func WithSmoothing(s float64) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.smoothing = s
	}
}

// WithReferenceRate sets the tick rate at which one tick applies exactly the smoothing factor.
//
// Parameters:
//   - hz: ticks per second (default 60)
//
// Returns:
//   - RailBuilderOption: functional option to set the reference rate
func WithReferenceRate(hz float64) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.referenceRate = hz
	}
}

// WithFixedStep makes every tick apply the raw smoothing factor regardless of dt.
//
// Parameters:
//   - fixed: true to ignore dt when easing
//
// Returns:
//   - RailBuilderOption: functional option to set fixed stepping
func WithFixedStep(fixed bool) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.fixedStep = fixed
	}
}

// WithSettleEpsilon sets the gap below which current snaps to target.
//
// Parameters:
//   - eps: the settle threshold (default 1e-6)
//
// Returns:
//   - RailBuilderOption: functional option to set the threshold
func WithSettleEpsilon(eps float64) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.settleEpsilon = eps
	}
}

// WithTrail sets how far behind and above the path point the eye sits.
//
// Parameters:
//   - distance: distance back along the tangent (default 12)
//   - height: height above the path point (default 4)
//
// Returns:
//   - RailBuilderOption: functional option to set the trailing offsets
func WithTrail(distance, height float64) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.trailDistance = distance
		r.heightOffset = height
	}
}

// WithLookAhead sets the look-at progress offset and the look height above the path.
//
// Parameters:
//   - fraction: progress offset of the look-at point (default 0.03)
//   - height: height of the look-at point above the path (default 1.5)
//
// Returns:
//   - RailBuilderOption: functional option to set the look-ahead
func WithLookAhead(fraction, height float64) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.lookAhead = fraction
		r.lookHeight = height
	}
}

// WithLookAheadMode selects the end-of-path look-ahead behaviour.
func WithLookAheadMode(mode LookAheadMode) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.lookAheadMode = mode
	}
}

// WithInputScales sets the wheel, touch, and key progress multipliers.
//
// Parameters:
//   - wheel: progress per wheel unit (default 0.0004)
//   - touch: progress per swipe pixel (default 0.00025)
//   - key: progress per key press (default 0.005)
//
// Returns:
//   - RailBuilderOption: functional option to set the input scales
func WithInputScales(wheel, touch, key float64) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.wheelScale = wheel
		r.touchScale = touch
		r.keyStep = key
	}
}

// WithAutoplay sets the auto-advance step and cadence.
//
// Parameters:
//   - step: target progress added per interval (default 0.0005)
//   - interval: time between steps (default 50ms)
//
// Returns:
//   - RailBuilderOption: functional option to set auto-advance
func WithAutoplay(step float64, interval time.Duration) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.autoplayStep = step
		r.autoplayInterval = interval
	}
}

// WithUnits sets the number of content units the rail is divided into.
func WithUnits(n int) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.units = n
	}
}

// WithIndexChangeCallback registers a callback fired from Tick when Index changes.
// The callback runs without the controller lock held.
//
// Parameters:
//   - cb: receives the previous and new index
//
// Returns:
//   - RailBuilderOption: functional option to set the callback
func WithIndexChangeCallback(cb func(prev, next int)) RailBuilderOption {
	return func(r *railControllerImpl) {
		r.onIndexChange = cb
	}
}
