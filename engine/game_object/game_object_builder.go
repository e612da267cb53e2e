package game_object

import (
	"github.com/Carmen-Shannon/wayfinder/engine/path"
	"github.com/go-gl/mathgl/mgl64"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject starts shown and pickable.
//
// Parameters:
//   - enabled: false to hide the object
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithLabel marks the GameObject as a label.
//
// Parameters:
//   - label: true for labels
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Label flag
func WithLabel(label bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.label = label
	}
}

// WithName sets the display name.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithCategory sets the grouping key used by category filters.
//
// Parameters:
//   - category: the category
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the category
func WithCategory(category string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.category = category
	}
}

// WithIndex ties the object to a content unit.
//
// Parameters:
//   - index: the unit index
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the index
func WithIndex(index int) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.index = index
	}
}

// WithPosition sets the initial world position.
//
// Parameters:
//   - p: the position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(p mgl64.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = p
	}
}

// WithBoundingRadius sets the pick sphere radius. Non-positive values are ignored.
//
// Parameters:
//   - r: the radius
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the radius
func WithBoundingRadius(r float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		if r > 0 {
			obj.radius = r
		}
	}
}

// WithPlacement positions the object from a path placement: beside the path,
// facing back toward the centreline, tied to its unit index.
//
// Parameters:
//   - pl: a placement from path.PlaceUnits
//
// Returns:
//   - GameObjectBuilderOption: functional option to apply the placement
func WithPlacement(pl path.Placement) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = pl.Point
		obj.lookAt = pl.Frame.Position
		obj.hasLookAt = true
		obj.index = pl.Index
	}
}
