package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Spherical holds orbit coordinates around a pivot. Azimuth rotates about +Y,
// Polar is measured from +Y, Radius is the distance to the pivot.
type Spherical struct {
	Azimuth float64
	Polar   float64
	Radius  float64
}

// AngularVelocity is the per-tick azimuth and polar momentum.
type AngularVelocity struct {
	Azimuth float64
	Polar   float64
}

// DefaultSpherical is the framing the orbit controller starts from and resets to.
var DefaultSpherical = Spherical{Azimuth: 0, Polar: math.Pi / 3, Radius: 900}

const (
	defaultOrbitDamping     = 0.08
	defaultInertiaDecay     = 0.95
	defaultRotateSpeed      = 0.002
	defaultPanSpeed         = 0.002
	defaultZoomSpeed        = 1.08
	defaultSensitivity      = 0.3
	defaultMinRadius        = 50.0
	defaultMaxRadius        = 2500.0
	defaultPolarEpsilon     = 0.1
	defaultAutoRotateStep   = 0.001
	defaultZoomPivotBlend   = 0.15
	defaultKeyRotateStep    = 0.08
	defaultKeyPanStep       = 30.0
	defaultKeyZoomStep      = 50.0
	defaultFocusRadius      = 120.0
	defaultFlyToRadius      = 250.0
	defaultFlyToOffset      = 80.0
	angularVelocityEpsilon  = 1e-5
	panVelocityEpsilon      = 1e-3
	pinchRadiusMultiplier   = 2.0
	fallbackBackDirectionZ  = 1.0
	fallbackRightDirectionX = 1.0
)

type orbitControllerImpl struct {
	mu *sync.Mutex

	pivot       mgl64.Vec3
	targetPivot mgl64.Vec3

	spherical       Spherical
	targetSpherical Spherical
	initial         Spherical
	initialPivot    mgl64.Vec3

	position mgl64.Vec3

	angularVelocity AngularVelocity
	panVelocity     mgl64.Vec3

	dragging bool
	panning  bool
	pinching bool

	lastX, lastY float64
	pinchDist    float64
	pinchCenter  mgl64.Vec2

	autoRotate           bool
	autoRotateSuppressed bool

	damping        float64
	inertiaDecay   float64
	rotateSpeed    float64
	panSpeed       float64
	zoomSpeed      float64
	sensitivity    float64
	minRadius      float64
	maxRadius      float64
	polarEpsilon   float64
	autoRotateStep float64
	zoomPivotBlend float64

	keyRotateStep float64
	keyPanStep    float64
	keyZoomStep   float64

	focusRadius float64
	flyToRadius float64
	flyToOffset float64
}

// OrbitController is a damped spherical camera around a movable pivot with
// drag momentum, panning, zoom, pinch and optional auto-rotation.
type OrbitController interface {
	Controller

	// BeginDrag starts a rotate gesture at the given pointer position and cancels momentum.
	//
	// Parameters:
	//   - x: pointer x in pixels
	//   - y: pointer y in pixels
	BeginDrag(x, y float64)

	// DragMove rotates by the pointer delta since the last event and records it as momentum.
	// Ignored unless a drag is active.
	//
	// Parameters:
	//   - x: pointer x in pixels
	//   - y: pointer y in pixels
	DragMove(x, y float64)

	// EndDrag ends the rotate gesture, leaving momentum to carry on.
	EndDrag()

	// BeginPan starts a pan gesture at the given pointer position and cancels momentum.
	//
	// Parameters:
	//   - x: pointer x in pixels
	//   - y: pointer y in pixels
	BeginPan(x, y float64)

	// PanMove shifts the target pivot parallel to the view plane.
	// Ignored unless a pan is active.
	//
	// Parameters:
	//   - x: pointer x in pixels
	//   - y: pointer y in pixels
	PanMove(x, y float64)

	// EndPan ends the pan gesture.
	EndPan()

	// BeginPinch starts a two-finger gesture from the two touch points.
	//
	// Parameters:
	//   - a: first touch point in pixels
	//   - b: second touch point in pixels
	BeginPinch(a, b mgl64.Vec2)

	// PinchMove zooms by the change in finger distance and pans by the change in their center.
	//
	// Parameters:
	//   - a: first touch point in pixels
	//   - b: second touch point in pixels
	PinchMove(a, b mgl64.Vec2)

	// EndPinch ends the two-finger gesture.
	EndPinch()

	// WheelFactor converts a scroll delta into a radius multiplier.
	//
	// Parameters:
	//   - deltaY: scroll amount; negative zooms in
	//
	// Returns:
	//   - float64: the multiplier to pass to ZoomBy or ZoomToward
	WheelFactor(deltaY float64) float64

	// ZoomBy scales the target radius, clamped to the radius range.
	//
	// Parameters:
	//   - factor: the radius multiplier
	ZoomBy(factor float64)

	// ZoomToward scales the target radius and, when zooming in, blends the target pivot toward point.
	//
	// Parameters:
	//   - factor: the radius multiplier
	//   - point: the world point under the cursor
	ZoomToward(factor float64, point mgl64.Vec3)

	// Focus retargets the pivot onto point at the focus radius and cancels momentum.
	//
	// Parameters:
	//   - point: the world point to orbit
	Focus(point mgl64.Vec3)

	// FlyTo retargets the pivot beside point at a comfortable viewing radius.
	//
	// Parameters:
	//   - point: the world point to frame
	FlyTo(point mgl64.Vec3)

	// RetargetPivot moves only the target pivot.
	//
	// Parameters:
	//   - point: the new pivot target
	RetargetPivot(point mgl64.Vec3)

	// SetAutoRotate enables or disables idle auto-rotation.
	//
	// Parameters:
	//   - enabled: true to rotate while idle
	SetAutoRotate(enabled bool)

	// AutoRotate reports whether idle auto-rotation is enabled.
	//
	// Returns:
	//   - bool: the auto-rotate flag
	AutoRotate() bool

	// SetAutoRotateSuppressed pauses auto-rotation without changing the enabled flag.
	// Scenes set it while a selection exists.
	//
	// Parameters:
	//   - suppressed: true to pause auto-rotation
	SetAutoRotateSuppressed(suppressed bool)

	// Interacting reports whether a drag, pan or pinch is in progress.
	//
	// Returns:
	//   - bool: true during a gesture
	Interacting() bool

	// Dragging reports whether a rotate gesture is in progress.
	//
	// Returns:
	//   - bool: true while dragging
	Dragging() bool

	// Pivot returns the current (damped) pivot.
	//
	// Returns:
	//   - mgl64.Vec3: the current pivot
	Pivot() mgl64.Vec3

	// TargetPivot returns the pivot the controller is easing toward.
	//
	// Returns:
	//   - mgl64.Vec3: the target pivot
	TargetPivot() mgl64.Vec3

	// Spherical returns the current (damped) spherical coordinates.
	//
	// Returns:
	//   - Spherical: the current coordinates
	Spherical() Spherical

	// TargetSpherical returns the spherical coordinates the controller is easing toward.
	//
	// Returns:
	//   - Spherical: the target coordinates
	TargetSpherical() Spherical

	// Velocity returns the angular and pan momentum.
	//
	// Returns:
	//   - AngularVelocity: per-tick azimuth and polar momentum
	//   - mgl64.Vec3: per-tick pan momentum
	Velocity() (AngularVelocity, mgl64.Vec3)
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an OrbitController around the origin at DefaultSpherical.
// Auto-rotation is off unless WithAutoRotate is given.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitBuilderOption) OrbitController {
	o := &orbitControllerImpl{
		mu:             &sync.Mutex{},
		initial:        DefaultSpherical,
		damping:        defaultOrbitDamping,
		inertiaDecay:   defaultInertiaDecay,
		rotateSpeed:    defaultRotateSpeed,
		panSpeed:       defaultPanSpeed,
		zoomSpeed:      defaultZoomSpeed,
		sensitivity:    defaultSensitivity,
		minRadius:      defaultMinRadius,
		maxRadius:      defaultMaxRadius,
		polarEpsilon:   defaultPolarEpsilon,
		autoRotateStep: defaultAutoRotateStep,
		zoomPivotBlend: defaultZoomPivotBlend,
		keyRotateStep:  defaultKeyRotateStep,
		keyPanStep:     defaultKeyPanStep,
		keyZoomStep:    defaultKeyZoomStep,
		focusRadius:    defaultFocusRadius,
		flyToRadius:    defaultFlyToRadius,
		flyToOffset:    defaultFlyToOffset,
	}
	for _, option := range options {
		option(o)
	}
	if o.minRadius > o.maxRadius {
		o.minRadius, o.maxRadius = o.maxRadius, o.minRadius
	}
	o.initial.Polar = o.clampPolar(o.initial.Polar)
	o.initial.Radius = o.clampRadius(o.initial.Radius)
	o.spherical = o.initial
	o.targetSpherical = o.initial
	o.pivot = o.initialPivot
	o.targetPivot = o.initialPivot
	o.updatePosition()
	return o
}

func (o *orbitControllerImpl) Position() mgl64.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.position
}

func (o *orbitControllerImpl) Target() mgl64.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pivot
}

func (o *orbitControllerImpl) Pose() Pose {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Pose{Position: o.position, Target: o.pivot}
}

// Tick runs momentum, auto-rotation, damped follow and placement, in that order.
// Damping and decay are per tick; dt is accepted for the Controller contract.
func (o *orbitControllerImpl) Tick(dt float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	idle := !o.interacting()
	if idle {
		o.applyMomentum()
	}
	if o.autoRotate && idle && !o.autoRotateSuppressed {
		o.targetSpherical.Azimuth += o.autoRotateStep
	}

	d := o.damping
	o.spherical.Azimuth += (o.targetSpherical.Azimuth - o.spherical.Azimuth) * d
	o.spherical.Polar += (o.targetSpherical.Polar - o.spherical.Polar) * d
	o.spherical.Radius += (o.targetSpherical.Radius - o.spherical.Radius) * d
	o.pivot = common.LerpVec3(o.pivot, o.targetPivot, d)

	o.updatePosition()
}

func (o *orbitControllerImpl) applyMomentum() {
	o.targetSpherical.Azimuth += o.angularVelocity.Azimuth
	o.targetSpherical.Polar = o.clampPolar(o.targetSpherical.Polar + o.angularVelocity.Polar)
	o.targetPivot = o.targetPivot.Add(o.panVelocity)

	o.angularVelocity.Azimuth *= o.inertiaDecay
	o.angularVelocity.Polar *= o.inertiaDecay
	o.panVelocity = o.panVelocity.Mul(o.inertiaDecay)

	if math.Abs(o.angularVelocity.Azimuth) < angularVelocityEpsilon {
		o.angularVelocity.Azimuth = 0
	}
	if math.Abs(o.angularVelocity.Polar) < angularVelocityEpsilon {
		o.angularVelocity.Polar = 0
	}
	if o.panVelocity.Len() < panVelocityEpsilon {
		o.panVelocity = mgl64.Vec3{}
	}
}

func (o *orbitControllerImpl) HandleKey(code uint32) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch common.NormalizeKey(code) {
	case common.KeyLeft:
		o.targetSpherical.Azimuth += o.keyRotateStep
	case common.KeyRight:
		o.targetSpherical.Azimuth -= o.keyRotateStep
	case common.KeyUp:
		o.targetSpherical.Polar = o.clampPolar(o.targetSpherical.Polar - o.keyRotateStep)
	case common.KeyDown:
		o.targetSpherical.Polar = o.clampPolar(o.targetSpherical.Polar + o.keyRotateStep)
	case common.KeyW:
		o.targetPivot = o.targetPivot.Add(common.WorldUp.Mul(o.keyPanStep))
	case common.KeyS:
		o.targetPivot = o.targetPivot.Add(common.WorldUp.Mul(-o.keyPanStep))
	case common.KeyA:
		right, _ := o.viewBasis()
		o.targetPivot = o.targetPivot.Add(right.Mul(-o.keyPanStep))
	case common.KeyD:
		right, _ := o.viewBasis()
		o.targetPivot = o.targetPivot.Add(right.Mul(o.keyPanStep))
	case common.KeyPlus, common.KeyEqual, common.KeyKPAdd:
		o.targetSpherical.Radius = o.clampRadius(o.targetSpherical.Radius - o.keyZoomStep)
	case common.KeyMinus, common.KeyUnder, common.KeyKPSubtract:
		o.targetSpherical.Radius = o.clampRadius(o.targetSpherical.Radius + o.keyZoomStep)
	case common.KeyHome, common.KeyH:
		o.reset()
	case common.KeyR:
		o.autoRotate = !o.autoRotate
	default:
		return false
	}
	return true
}

func (o *orbitControllerImpl) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.reset()
}

func (o *orbitControllerImpl) reset() {
	o.targetPivot = o.initialPivot
	o.targetSpherical = o.initial
	o.stopMomentum()
	o.dragging = false
	o.panning = false
	o.pinching = false
}

func (o *orbitControllerImpl) BeginDrag(x, y float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopMomentum()
	o.dragging = true
	o.panning = false
	o.lastX, o.lastY = x, y
}

func (o *orbitControllerImpl) DragMove(x, y float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.dragging {
		return
	}
	dx, dy := x-o.lastX, y-o.lastY
	o.lastX, o.lastY = x, y

	speed := o.rotateSpeed * o.sensitivity
	vAz := -dx * speed
	vPolar := dy * speed

	o.targetSpherical.Azimuth += vAz
	o.targetSpherical.Polar = o.clampPolar(o.targetSpherical.Polar + vPolar)
	o.angularVelocity = AngularVelocity{Azimuth: vAz, Polar: vPolar}
}

func (o *orbitControllerImpl) EndDrag() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dragging = false
}

func (o *orbitControllerImpl) BeginPan(x, y float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopMomentum()
	o.panning = true
	o.dragging = false
	o.lastX, o.lastY = x, y
}

func (o *orbitControllerImpl) PanMove(x, y float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.panning {
		return
	}
	dx, dy := x-o.lastX, y-o.lastY
	o.lastX, o.lastY = x, y

	delta := o.panDelta(dx, dy)
	o.targetPivot = o.targetPivot.Add(delta)
	o.panVelocity = delta
}

func (o *orbitControllerImpl) EndPan() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.panning = false
}

func (o *orbitControllerImpl) BeginPinch(a, b mgl64.Vec2) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopMomentum()
	o.dragging = false
	o.pinching = true
	o.pinchDist = b.Sub(a).Len()
	o.pinchCenter = a.Add(b).Mul(0.5)
}

func (o *orbitControllerImpl) PinchMove(a, b mgl64.Vec2) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.pinching {
		return
	}
	dist := b.Sub(a).Len()
	center := a.Add(b).Mul(0.5)

	delta := (o.pinchDist - dist) * o.sensitivity
	o.targetSpherical.Radius = o.clampRadius(o.targetSpherical.Radius + delta*pinchRadiusMultiplier)
	o.pinchDist = dist

	move := center.Sub(o.pinchCenter)
	o.targetPivot = o.targetPivot.Add(o.panDelta(move.X(), move.Y()))
	o.pinchCenter = center
}

func (o *orbitControllerImpl) EndPinch() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pinching = false
}

func (o *orbitControllerImpl) WheelFactor(deltaY float64) float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	eff := 1 + (o.zoomSpeed-1)*o.sensitivity
	if deltaY < 0 {
		return 1 / eff
	}
	return eff
}

func (o *orbitControllerImpl) ZoomBy(factor float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.zoomBy(factor)
}

func (o *orbitControllerImpl) ZoomToward(factor float64, point mgl64.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if factor < 1 {
		o.targetPivot = common.LerpVec3(o.targetPivot, point, o.zoomPivotBlend)
	}
	o.zoomBy(factor)
}

func (o *orbitControllerImpl) zoomBy(factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	o.targetSpherical.Radius = o.clampRadius(o.targetSpherical.Radius * factor)
}

func (o *orbitControllerImpl) Focus(point mgl64.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targetPivot = point
	o.targetSpherical.Radius = o.clampRadius(o.focusRadius)
	o.stopMomentum()
}

func (o *orbitControllerImpl) FlyTo(point mgl64.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	right, _ := o.viewBasis()
	o.targetPivot = point.Add(right.Mul(-o.flyToOffset))
	o.targetSpherical.Radius = o.clampRadius(o.flyToRadius)
}

func (o *orbitControllerImpl) RetargetPivot(point mgl64.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targetPivot = point
}

func (o *orbitControllerImpl) SetAutoRotate(enabled bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.autoRotate = enabled
}

func (o *orbitControllerImpl) AutoRotate() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.autoRotate
}

func (o *orbitControllerImpl) SetAutoRotateSuppressed(suppressed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.autoRotateSuppressed = suppressed
}

func (o *orbitControllerImpl) Interacting() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.interacting()
}

func (o *orbitControllerImpl) Dragging() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dragging
}

func (o *orbitControllerImpl) Pivot() mgl64.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pivot
}

func (o *orbitControllerImpl) TargetPivot() mgl64.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.targetPivot
}

func (o *orbitControllerImpl) Spherical() Spherical {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.spherical
}

func (o *orbitControllerImpl) TargetSpherical() Spherical {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.targetSpherical
}

func (o *orbitControllerImpl) Velocity() (AngularVelocity, mgl64.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.angularVelocity, o.panVelocity
}

func (o *orbitControllerImpl) interacting() bool {
	return o.dragging || o.panning || o.pinching
}

func (o *orbitControllerImpl) stopMomentum() {
	o.angularVelocity = AngularVelocity{}
	o.panVelocity = mgl64.Vec3{}
}

func (o *orbitControllerImpl) clampPolar(p float64) float64 {
	return common.Clamp(p, o.polarEpsilon, math.Pi-o.polarEpsilon)
}

func (o *orbitControllerImpl) clampRadius(r float64) float64 {
	return common.Clamp(r, o.minRadius, o.maxRadius)
}

// viewBasis returns the screen-right and screen-up directions for the current view.
// Caller must hold the mutex.
func (o *orbitControllerImpl) viewBasis() (right, up mgl64.Vec3) {
	back := common.SafeNormalize(o.position.Sub(o.pivot), mgl64.Vec3{0, 0, fallbackBackDirectionZ})
	right = common.SafeNormalize(common.WorldUp.Cross(back), mgl64.Vec3{fallbackRightDirectionX, 0, 0})
	up = back.Cross(right)
	return right, up
}

// panDelta converts a pointer delta into a world-space pivot offset.
// Caller must hold the mutex.
func (o *orbitControllerImpl) panDelta(dx, dy float64) mgl64.Vec3 {
	right, up := o.viewBasis()
	a := o.targetSpherical.Radius * o.panSpeed * o.sensitivity
	return right.Mul(-dx * a).Add(up.Mul(dy * a))
}

func (o *orbitControllerImpl) updatePosition() {
	s := o.spherical
	o.position = o.pivot.Add(common.SphericalToCartesian(s.Azimuth, s.Polar, s.Radius))
}
