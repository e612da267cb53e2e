package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/wayfinder/engine/picker"
	"github.com/go-gl/mathgl/mgl64"
)

const defaultBoundingRadius = 1.0

type gameObject struct {
	id        uint64
	enabled   atomic.Bool
	label     bool
	name      string
	category  string
	index     int
	position  mgl64.Vec3
	radius    float64
	lookAt    mgl64.Vec3
	hasLookAt bool
}

// GameObject defines the interface for a pickable scene entity: a content unit
// placed beside the journey path, a constellation node, or the floating label
// that names one of them. The picker sees it only through its bounding sphere.
type GameObject interface {
	picker.Placeable

	// Enabled returns whether this object is shown and pickable.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Label returns whether this object is a label. Labels are picked ahead of
	// regular objects regardless of distance.
	//
	// Returns:
	//   - bool: true for labels
	Label() bool

	// Name returns the display name.
	//
	// Returns:
	//   - string: the name, possibly empty
	Name() string

	// Category returns the grouping key used by category filters.
	//
	// Returns:
	//   - string: the category, possibly empty
	Category() string

	// Index returns the content unit index the object represents, or -1 if it
	// is not tied to a unit.
	//
	// Returns:
	//   - int: the unit index
	Index() int

	// LookAt returns the point the object faces, if one was set.
	//
	// Returns:
	//   - mgl64.Vec3: the facing point
	//   - bool: false when the object has no facing point
	LookAt() (mgl64.Vec3, bool)

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is shown and pickable.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition moves the object.
	//
	// Parameters:
	//   - p: new world position
	SetPosition(p mgl64.Vec3)

	// SetBoundingRadius sets the pick sphere radius. Non-positive values are ignored.
	//
	// Parameters:
	//   - r: new radius
	SetBoundingRadius(r float64)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects start enabled with a bounding radius of 1.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		index:  -1,
		radius: defaultBoundingRadius,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Position() mgl64.Vec3 {
	return g.position
}

func (g *gameObject) BoundingRadius() float64 {
	return g.radius
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Label() bool {
	return g.label
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Category() string {
	return g.category
}

func (g *gameObject) Index() int {
	return g.index
}

func (g *gameObject) LookAt() (mgl64.Vec3, bool) {
	return g.lookAt, g.hasLookAt
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(p mgl64.Vec3) {
	g.position = p
}

func (g *gameObject) SetBoundingRadius(r float64) {
	if r > 0 {
		g.radius = r
	}
}
