package scene

import (
	"github.com/Carmen-Shannon/wayfinder/engine/game_object"
	"github.com/Carmen-Shannon/wayfinder/engine/input"
	"github.com/Carmen-Shannon/wayfinder/engine/minimap"
	"github.com/Carmen-Shannon/wayfinder/engine/picker"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene starts active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.addLocked(obj)
		}
	}
}

// WithPicker supplies a shared picker. The scene will not close it.
//
// Parameters:
//   - p: the picker to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPicker(p picker.Picker) SceneBuilderOption {
	return func(s *scene) {
		s.picker = p
	}
}

// WithSelection supplies the selection, typically one built with hover and
// select callbacks.
//
// Parameters:
//   - sel: the selection to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSelection(sel picker.Selection) SceneBuilderOption {
	return func(s *scene) {
		s.selection = sel
	}
}

// WithInputQueue supplies the queue hosts push events onto.
//
// Parameters:
//   - q: the input queue
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithInputQueue(q input.Queue) SceneBuilderOption {
	return func(s *scene) {
		s.queue = q
	}
}

// WithMinimap builds a minimap projector over the rail path. Ignored for orbit scenes.
//
// Parameters:
//   - options: projector options
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMinimap(options ...minimap.ProjectorBuilderOption) SceneBuilderOption {
	return func(s *scene) {
		s.minimapEnabled = true
		s.minimapOptions = options
	}
}

// WithClickThreshold sets how far in pixels the pointer may move between
// press and release for the release to count as a click.
//
// Parameters:
//   - px: the per-axis threshold (default 5)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClickThreshold(px float64) SceneBuilderOption {
	return func(s *scene) {
		s.clicks = picker.NewClickTracker(px)
	}
}

// WithViewport sets the initial viewport size. Non-positive sizes are ignored.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithViewport(width, height float64) SceneBuilderOption {
	return func(s *scene) {
		if width > 0 && height > 0 {
			s.width, s.height = width, height
		}
	}
}

// WithCullingDisabled skips frustum culling so every enabled object stays pickable.
//
// Parameters:
//   - disabled: true to disable culling
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}
