package camera

import "github.com/go-gl/mathgl/mgl64"

// OrbitBuilderOption is a functional option for configuring an OrbitController.
type OrbitBuilderOption func(*orbitControllerImpl)

// WithInitialSpherical sets the starting (and reset) spherical coordinates.
//
// Parameters:
//   - s: the initial coordinates (default DefaultSpherical)
//
// Returns:
//   - OrbitBuilderOption: functional option to set the initial framing
func WithInitialSpherical(s Spherical) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.initial = s
	}
}

// WithInitialPivot sets the starting (and reset) pivot.
func WithInitialPivot(p mgl64.Vec3) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.initialPivot = p
	}
}

// WithDamping sets the fraction of the remaining gap the camera closes per tick.
//
// Parameters:
//   - d: the damping factor (default 0.08)
//
// Returns:
//   - OrbitBuilderOption: functional option to set the damping
func WithDamping(d float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.damping = d
	}
}

// WithInertiaDecay sets the per-tick momentum multiplier.
//
// Parameters:
//   - decay: the decay factor (default 0.95)
//
// Returns:
//   - OrbitBuilderOption: functional option to set the decay
func WithInertiaDecay(decay float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.inertiaDecay = decay
	}
}

// WithSpeeds sets the rotate, pan and zoom speeds.
//
// Parameters:
//   - rotate: radians per pixel before sensitivity (default 0.002)
//   - pan: radius fraction per pixel before sensitivity (default 0.002)
//   - zoom: wheel zoom multiplier before sensitivity (default 1.08)
//
// Returns:
//   - OrbitBuilderOption: functional option to set the speeds
func WithSpeeds(rotate, pan, zoom float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.rotateSpeed = rotate
		o.panSpeed = pan
		o.zoomSpeed = zoom
	}
}

// WithSensitivity sets the multiplier applied to all pointer gestures.
//
// Parameters:
//   - s: the sensitivity (default 0.3)
//
// Returns:
//   - OrbitBuilderOption: functional option to set the sensitivity
func WithSensitivity(s float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.sensitivity = s
	}
}

// WithRadiusRange sets the radius clamp.
//
// Parameters:
//   - minRadius: closest distance to the pivot (default 50)
//   - maxRadius: farthest distance from the pivot (default 2500)
//
// Returns:
//   - OrbitBuilderOption: functional option to set the radius range
func WithRadiusRange(minRadius, maxRadius float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.minRadius = minRadius
		o.maxRadius = maxRadius
	}
}

// WithPolarEpsilon sets how close the polar angle may get to either pole.
func WithPolarEpsilon(eps float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.polarEpsilon = eps
	}
}

// WithAutoRotate enables idle auto-rotation with the given per-tick azimuth step.
//
// Parameters:
//   - enabled: start with auto-rotation on
//   - step: azimuth added per idle tick (default 0.001)
//
// Returns:
//   - OrbitBuilderOption: functional option to configure auto-rotation
func WithAutoRotate(enabled bool, step float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.autoRotate = enabled
		o.autoRotateStep = step
	}
}

// WithZoomPivotBlend sets how far ZoomToward pulls the pivot toward the cursor point.
func WithZoomPivotBlend(blend float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.zoomPivotBlend = blend
	}
}

// WithKeySteps sets the rotate, pan and zoom amounts per key press.
//
// Parameters:
//   - rotate: radians per arrow key (default 0.08)
//   - pan: world units per W/A/S/D (default 30)
//   - zoom: radius units per +/- (default 50)
//
// Returns:
//   - OrbitBuilderOption: functional option to set the key steps
func WithKeySteps(rotate, pan, zoom float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.keyRotateStep = rotate
		o.keyPanStep = pan
		o.keyZoomStep = zoom
	}
}

// WithFocusRadii sets the radii used by Focus and FlyTo and the FlyTo side offset.
//
// Parameters:
//   - focus: radius after Focus (default 120)
//   - flyTo: radius after FlyTo (default 250)
//   - flyToOffset: pivot shift to the left of the point after FlyTo (default 80)
//
// Returns:
//   - OrbitBuilderOption: functional option to set the focus framing
func WithFocusRadii(focus, flyTo, flyToOffset float64) OrbitBuilderOption {
	return func(o *orbitControllerImpl) {
		o.focusRadius = focus
		o.flyToRadius = flyTo
		o.flyToOffset = flyToOffset
	}
}
