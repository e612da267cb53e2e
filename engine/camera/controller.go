package camera

import "github.com/go-gl/mathgl/mgl64"

// Pose is an eye position and the point it looks at.
type Pose struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
}

// Controller is the contract shared by the rail and orbit controllers.
// A scene ticks exactly one active controller; the Camera reads its pose.
type Controller interface {
	// Position returns the current eye position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space eye position
	Position() mgl64.Vec3

	// Target returns the current look-at point.
	//
	// Returns:
	//   - mgl64.Vec3: world-space look-at point
	Target() mgl64.Vec3

	// Pose returns position and target read under a single lock.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose

	// Tick integrates one simulation step.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous tick
	Tick(dt float64)

	// HandleKey applies a discrete key step.
	//
	// Parameters:
	//   - code: a GLFW key code or ASCII rune
	//
	// Returns:
	//   - bool: true if the key was consumed
	HandleKey(code uint32) bool

	// Reset returns the controller to its initial targets.
	Reset()
}
