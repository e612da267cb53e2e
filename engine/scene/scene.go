package scene

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/wayfinder/engine/camera"
	"github.com/Carmen-Shannon/wayfinder/engine/game_object"
	"github.com/Carmen-Shannon/wayfinder/engine/input"
	"github.com/Carmen-Shannon/wayfinder/engine/minimap"
	"github.com/Carmen-Shannon/wayfinder/engine/monitoring"
	"github.com/Carmen-Shannon/wayfinder/engine/picker"
	"github.com/google/uuid"
)

// Mode identifies which controller a scene drives.
type Mode int

const (
	// ModeRail rides a path with a RailController.
	ModeRail Mode = iota
	// ModeOrbit circles a pivot with an OrbitController.
	ModeOrbit
)

func (m Mode) String() string {
	switch m {
	case ModeRail:
		return "rail"
	case ModeOrbit:
		return "orbit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
)

type scene struct {
	mu     *sync.Mutex
	id     uuid.UUID
	name   string
	active bool

	cam   camera.Camera
	mode  Mode
	ctrl  camera.Controller
	rail  camera.RailController
	orbit camera.OrbitController

	registry map[uint64]game_object.GameObject
	order    []uint64
	nextID   uint64

	picker         picker.Picker
	ownsPicker     bool
	selection      picker.Selection
	queue          input.Queue
	minimap        minimap.Projector
	minimapEnabled bool
	minimapOptions []minimap.ProjectorBuilderOption

	width, height   float64
	cullingDisabled bool
	visible         []picker.Placeable
	cursor          picker.Cursor
	closed          bool

	// Gesture state below is only touched by Tick.
	clicks   *picker.ClickTracker
	dragging bool
	panning  bool
	touching bool
	touchY   float64
}

// Scene is an explicit navigation context. It owns one camera driven by one
// active controller, the registry of pickable objects, the picker and selection
// that resolve pointer positions against them, the input queue window callbacks
// feed, and, for rail scenes, an optional minimap.
//
// Input is message passing: hosts Push events onto Input() from any goroutine
// and Tick consumes them. Tick must be called from a single goroutine; every
// other method is safe for concurrent use.
type Scene interface {
	// ID returns the scene's instance identifier.
	//
	// Returns:
	//   - uuid.UUID: the instance id
	ID() uuid.UUID

	// Name returns the scene's name.
	Name() string

	// SetName sets the scene's name.
	SetName(name string)

	// Active returns whether the engine should tick and draw this scene.
	Active() bool

	// SetActive sets whether the engine should tick and draw this scene.
	SetActive(active bool)

	// Mode returns which controller the scene drives.
	Mode() Mode

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Controller returns the active controller.
	Controller() camera.Controller

	// Rail returns the rail controller, or nil for orbit scenes.
	Rail() camera.RailController

	// Orbit returns the orbit controller, or nil for rail scenes.
	Orbit() camera.OrbitController

	// Input returns the queue hosts push events onto.
	Input() input.Queue

	// Picker returns the scene's picker.
	Picker() picker.Picker

	// Selection returns the hover and selection state.
	Selection() picker.Selection

	// Minimap returns the minimap projector, or nil if the scene has none.
	Minimap() minimap.Projector

	// Marker places the minimap marker at the current rail progress.
	//
	// Returns:
	//   - minimap.Marker: the marker
	//   - bool: false when the scene has no minimap
	Marker() (minimap.Marker, bool)

	// Add registers a GameObject. Objects with a zero ID are assigned the next free one.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get returns the registered object with the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove unregisters an object and drops any hover or selection on it.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Clear unregisters every object and clears the selection.
	Clear()

	// Count returns the number of registered objects.
	Count() int

	// Objects returns the registered objects in insertion order.
	//
	// Returns:
	//   - []game_object.GameObject: a snapshot of the registry
	Objects() []game_object.GameObject

	// SetCategoryEnabled enables or disables every object in a category.
	//
	// Parameters:
	//   - category: the category to toggle
	//   - enabled: the new state
	//
	// Returns:
	//   - int: how many objects changed
	SetCategoryEnabled(category string, enabled bool) int

	// Visible returns the candidates that passed culling on the last Tick.
	//
	// Returns:
	//   - []picker.Placeable: the visible candidates in insertion order
	Visible() []picker.Placeable

	// Cursor returns the pointer shape for the current interaction.
	Cursor() picker.Cursor

	// Viewport returns the size used to convert pointer positions.
	//
	// Returns:
	//   - float64: width in pixels
	//   - float64: height in pixels
	Viewport() (float64, float64)

	// SetViewport sets the pointer conversion size and the camera aspect.
	// Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width: width in pixels
	//   - height: height in pixels
	SetViewport(width, height float64)

	// CullingDisabled reports whether frustum culling is skipped.
	CullingDisabled() bool

	// SetCullingDisabled toggles frustum culling of pick candidates.
	SetCullingDisabled(disabled bool)

	// Tick drains pending input, integrates the controller, updates the camera
	// matrices and refreshes the visible set.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous tick
	Tick(dt float64)

	// Close stops the picker's worker pool if the scene created it.
	Close()
}

var _ Scene = &scene{}

// NewScene creates a scene around cam driven by ctrl. The controller must be a
// RailController or an OrbitController; it is attached to the camera.
//
// Parameters:
//   - name: the scene's name
//   - cam: the camera the controller drives
//   - ctrl: the active controller
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, ctrl camera.Controller, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene requires a camera")
	}
	if ctrl == nil {
		panic("scene requires a controller")
	}

	s := &scene{
		mu:       &sync.Mutex{},
		id:       uuid.New(),
		name:     name,
		active:   true,
		cam:      cam,
		ctrl:     ctrl,
		registry: make(map[uint64]game_object.GameObject),
		nextID:   1,
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
		cursor:   picker.CursorGrab,
	}
	switch c := ctrl.(type) {
	case camera.RailController:
		s.mode = ModeRail
		s.rail = c
	case camera.OrbitController:
		s.mode = ModeOrbit
		s.orbit = c
	default:
		panic(fmt.Sprintf("scene: unsupported controller type %T", ctrl))
	}

	for _, option := range options {
		option(s)
	}

	if s.picker == nil {
		s.picker = picker.NewPicker()
		s.ownsPicker = true
	}
	if s.selection == nil {
		s.selection = picker.NewSelection()
	}
	if s.queue == nil {
		s.queue = input.NewQueue(input.WithName(name))
	}
	if s.clicks == nil {
		s.clicks = picker.NewClickTracker(0)
	}
	if s.minimapEnabled && s.rail != nil {
		s.minimap = minimap.NewProjector(s.rail.Path(), s.minimapOptions...)
	}

	cam.SetAspect(s.width / s.height)
	cam.SetController(ctrl)
	s.visible = s.cullLocked()

	monitoring.Logf("[Scene] %s (%s) created in %s mode with %d objects", s.name, s.id, s.mode, len(s.order))
	return s
}

func (s *scene) ID() uuid.UUID {
	return s.id
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Mode() Mode {
	return s.mode
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Controller() camera.Controller {
	return s.ctrl
}

func (s *scene) Rail() camera.RailController {
	return s.rail
}

func (s *scene) Orbit() camera.OrbitController {
	return s.orbit
}

func (s *scene) Input() input.Queue {
	return s.queue
}

func (s *scene) Picker() picker.Picker {
	return s.picker
}

func (s *scene) Selection() picker.Selection {
	return s.selection
}

func (s *scene) Minimap() minimap.Projector {
	return s.minimap
}

func (s *scene) Marker() (minimap.Marker, bool) {
	if s.minimap == nil || s.rail == nil {
		return minimap.Marker{}, false
	}
	return s.minimap.Locate(s.rail.Progress()), true
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(obj)
}

// addLocked registers obj, assigning an ID if it has none.
// Caller must hold the mutex.
func (s *scene) addLocked(obj game_object.GameObject) uint64 {
	if obj == nil {
		return 0
	}
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
	}
	id := obj.ID()
	if id >= s.nextID {
		s.nextID = id + 1
	}
	if _, exists := s.registry[id]; !exists {
		s.order = append(s.order, id)
	}
	s.registry[id] = obj
	return id
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	if _, ok := s.registry[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.selection.Prune(func(ref uint64) bool { return ref != id })
}

func (s *scene) Clear() {
	s.mu.Lock()
	s.registry = make(map[uint64]game_object.GameObject)
	s.order = nil
	s.visible = nil
	s.mu.Unlock()

	s.selection.Clear()
}

func (s *scene) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.registry)
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]game_object.GameObject, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.registry[id])
	}
	return out
}

func (s *scene) SetCategoryEnabled(category string, enabled bool) int {
	s.mu.Lock()
	changed := 0
	for _, id := range s.order {
		obj := s.registry[id]
		if obj.Category() != category || obj.Enabled() == enabled {
			continue
		}
		obj.SetEnabled(enabled)
		changed++
	}
	s.mu.Unlock()

	if changed > 0 && !enabled {
		s.pruneSelection()
	}
	return changed
}

func (s *scene) Visible() []picker.Placeable {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]picker.Placeable, len(s.visible))
	copy(out, s.visible)
	return out
}

func (s *scene) Cursor() picker.Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *scene) Viewport() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *scene) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	s.width, s.height = width, height
	s.mu.Unlock()
	s.cam.SetAspect(width / height)
}

func (s *scene) CullingDisabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Tick(dt float64) {
	s.queue.Drain(s.dispatch)

	if s.orbit != nil {
		s.orbit.SetAutoRotateSuppressed(s.selection.Selected().Valid)
	}
	s.ctrl.Tick(dt)
	s.cam.Update()

	s.mu.Lock()
	s.visible = s.cullLocked()
	visible := s.visible
	s.mu.Unlock()

	// A culled candidate cannot stay hovered.
	if h := s.selection.Hovered(); h.Valid && !containsID(visible, h.ID) {
		s.selection.Hover(0, false)
	}
	hovering := s.selection.Hovered().Valid

	s.mu.Lock()
	s.cursor = picker.CursorFor(s.dragging || s.panning, hovering)
	s.mu.Unlock()
}

func containsID(candidates []picker.Placeable, id uint64) bool {
	for _, c := range candidates {
		if c.ID() == id {
			return true
		}
	}
	return false
}

func (s *scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.ownsPicker {
		s.picker.Close()
	}
	if n := s.queue.Dropped(); n > 0 {
		monitoring.Logf("[Scene] %s (%s) closed, %d input events were dropped", s.name, s.id, n)
	}
}

// cullLocked returns the enabled registry objects whose bounding sphere is in view.
// Caller must hold the mutex.
func (s *scene) cullLocked() []picker.Placeable {
	all := make([]picker.Placeable, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.registry[id])
	}
	if s.cullingDisabled {
		out := all[:0]
		for _, c := range all {
			if c.(game_object.GameObject).Enabled() {
				out = append(out, c)
			}
		}
		return out
	}
	return picker.FilterVisible(all, s.cam.Frustum())
}

// pruneSelection drops hover and selection refs that point at removed or disabled objects.
func (s *scene) pruneSelection() {
	s.selection.Prune(func(id uint64) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		obj, ok := s.registry[id]
		return ok && obj.Enabled()
	})
}
