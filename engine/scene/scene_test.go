package scene

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/Carmen-Shannon/wayfinder/engine/camera"
	"github.com/Carmen-Shannon/wayfinder/engine/game_object"
	"github.com/Carmen-Shannon/wayfinder/engine/input"
	"github.com/Carmen-Shannon/wayfinder/engine/minimap"
	"github.com/Carmen-Shannon/wayfinder/engine/path"
	"github.com/Carmen-Shannon/wayfinder/engine/picker"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60.0

// Viewport centre; the orbit camera looks straight at the origin through it.
const cx, cy = 640.0, 360.0

func newOrbitScene(t *testing.T, objects ...game_object.GameObject) Scene {
	t.Helper()
	s := NewScene("constellation", camera.NewCamera(), camera.NewOrbitController(),
		WithPicker(picker.NewPicker(picker.WithWorkers(1))),
		WithObjects(objects...),
	)
	t.Cleanup(s.Close)
	return s
}

func newRailScene(t *testing.T, options ...SceneBuilderOption) Scene {
	t.Helper()
	p, err := path.NewPath([]mgl64.Vec3{{0, 0, 0}, {0, 0, -100}, {0, 0, -200}})
	require.NoError(t, err)
	s := NewScene("journey", camera.NewCamera(), camera.NewRailController(p), options...)
	t.Cleanup(s.Close)
	return s
}

func push(t *testing.T, s Scene, events ...input.Event) {
	t.Helper()
	for _, e := range events {
		require.True(t, s.Input().Push(e))
	}
}

func TestNewSceneModes(t *testing.T) {
	orbit := newOrbitScene(t)
	assert.Equal(t, ModeOrbit, orbit.Mode())
	assert.NotNil(t, orbit.Orbit())
	assert.Nil(t, orbit.Rail())
	assert.Nil(t, orbit.Minimap())
	assert.Equal(t, orbit.Controller(), orbit.Camera().Controller())
	assert.True(t, orbit.Active())

	rail := newRailScene(t)
	assert.Equal(t, ModeRail, rail.Mode())
	assert.NotNil(t, rail.Rail())
	assert.Nil(t, rail.Orbit())
	assert.NotEqual(t, orbit.ID(), rail.ID())
	assert.Equal(t, "rail", ModeRail.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestNewScenePanics(t *testing.T) {
	assert.Panics(t, func() { NewScene("x", nil, camera.NewOrbitController()) })
	assert.Panics(t, func() { NewScene("x", camera.NewCamera(), nil) })
}

func TestSceneRegistry(t *testing.T) {
	s := newOrbitScene(t)

	a := game_object.NewGameObject(game_object.WithCategory("art"))
	b := game_object.NewGameObject(game_object.WithID(10))
	c := game_object.NewGameObject(game_object.WithCategory("art"))

	assert.Equal(t, uint64(1), s.Add(a))
	assert.Equal(t, uint64(10), s.Add(b))
	assert.Equal(t, uint64(11), s.Add(c))
	assert.Equal(t, uint64(0), s.Add(nil))
	assert.Equal(t, 3, s.Count())
	assert.Same(t, b, s.Get(10))
	assert.Equal(t, []game_object.GameObject{a, b, c}, s.Objects())

	s.Remove(10)
	s.Remove(99)
	assert.Nil(t, s.Get(10))
	assert.Equal(t, []game_object.GameObject{a, c}, s.Objects())

	assert.Equal(t, 2, s.SetCategoryEnabled("art", false))
	assert.Equal(t, 0, s.SetCategoryEnabled("art", false))
	assert.False(t, a.Enabled())

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Visible())
}

func TestOrbitHoverAndLabelPrecedence(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithBoundingRadius(20))
	label := game_object.NewGameObject(
		game_object.WithLabel(true),
		game_object.WithPosition(mgl64.Vec3{0, -50, -50 * math.Sqrt(3)}),
		game_object.WithBoundingRadius(20),
	)
	s := newOrbitScene(t, node)

	push(t, s, input.PointerMove(cx, cy))
	s.Tick(tick)
	assert.Equal(t, picker.RefTo(node.ID()), s.Selection().Hovered())
	assert.Equal(t, picker.CursorPointer, s.Cursor())

	// The label sits on the same ray behind the node but still wins.
	s.Add(label)
	s.Tick(tick)
	push(t, s, input.PointerMove(cx, cy))
	s.Tick(tick)
	assert.Equal(t, picker.RefTo(label.ID()), s.Selection().Hovered())

	push(t, s, input.PointerMove(5, 5))
	s.Tick(tick)
	assert.False(t, s.Selection().Hovered().Valid)
	assert.Equal(t, picker.CursorGrab, s.Cursor())
}

func TestOrbitClickSelects(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithBoundingRadius(20))
	s := newOrbitScene(t, node)

	push(t, s,
		input.PointerDown(input.ButtonPrimary, cx, cy),
		input.PointerUp(input.ButtonPrimary, cx+2, cy),
	)
	s.Tick(tick)
	assert.Equal(t, picker.RefTo(node.ID()), s.Selection().Selected())

	// A drag longer than the click threshold keeps the selection.
	push(t, s,
		input.PointerDown(input.ButtonPrimary, 10, 10),
		input.PointerMove(40, 10),
		input.PointerUp(input.ButtonPrimary, 40, 10),
	)
	s.Tick(tick)
	assert.Equal(t, picker.RefTo(node.ID()), s.Selection().Selected())

	// A click on empty space clears it.
	push(t, s,
		input.PointerDown(input.ButtonPrimary, 10, 10),
		input.PointerUp(input.ButtonPrimary, 10, 10),
	)
	s.Tick(tick)
	assert.False(t, s.Selection().Selected().Valid)
}

func TestOrbitDragRotates(t *testing.T) {
	s := newOrbitScene(t)

	push(t, s,
		input.PointerDown(input.ButtonPrimary, 100, 100),
		input.PointerMove(110, 100),
	)
	s.Tick(tick)

	assert.InDelta(t, -10*0.002*0.3, s.Orbit().TargetSpherical().Azimuth, 1e-12)
	assert.True(t, s.Orbit().Dragging())
	assert.Equal(t, picker.CursorGrabbing, s.Cursor())

	push(t, s, input.PointerUp(input.ButtonPrimary, 110, 100))
	s.Tick(tick)
	assert.False(t, s.Orbit().Dragging())
}

func TestOrbitDragStartRetargetsToSurfacePoint(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithBoundingRadius(20))
	s := newOrbitScene(t, node)
	want := s.Orbit().Position().Normalize().Mul(20)

	push(t, s, input.PointerDown(input.ButtonPrimary, cx, cy))
	s.Tick(tick)

	got := s.Orbit().TargetPivot()
	assert.InDeltaSlice(t, want[:], got[:], 1e-4)
	assert.NotEqual(t, node.Position(), got)
}

func TestOrbitHomeClearsSelection(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithBoundingRadius(20))
	s := NewScene("constellation", camera.NewCamera(),
		camera.NewOrbitController(camera.WithAutoRotate(true, 0.001)),
		WithPicker(picker.NewPicker(picker.WithWorkers(1))),
		WithObjects(node),
	)
	t.Cleanup(s.Close)

	push(t, s,
		input.PointerDown(input.ButtonPrimary, cx, cy),
		input.PointerUp(input.ButtonPrimary, cx, cy),
	)
	s.Tick(tick)
	require.Equal(t, picker.RefTo(node.ID()), s.Selection().Selected())

	// A selection holds auto-rotation.
	held := s.Orbit().TargetSpherical().Azimuth
	s.Tick(tick)
	assert.InDelta(t, held, s.Orbit().TargetSpherical().Azimuth, 1e-12)

	push(t, s, input.Key(common.KeyHome))
	s.Tick(tick)
	assert.False(t, s.Selection().Selected().Valid)

	resumed := s.Orbit().TargetSpherical().Azimuth
	s.Tick(tick)
	assert.InDelta(t, resumed+0.001, s.Orbit().TargetSpherical().Azimuth, 1e-12)
}

func TestOrbitHKeyDeselectsButRailHomeKeepsSelection(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithBoundingRadius(20))
	orbit := newOrbitScene(t, node)
	orbit.Selection().Click(node.ID(), true)
	push(t, orbit, input.Key('h'))
	orbit.Tick(tick)
	assert.False(t, orbit.Selection().Selected().Valid)

	rail := newRailScene(t)
	rail.Selection().Click(42, true)
	push(t, rail, input.Key(common.KeyHome))
	rail.Tick(tick)
	assert.Equal(t, picker.RefTo(42), rail.Selection().Selected())
}

func TestOrbitPan(t *testing.T) {
	s := newOrbitScene(t)

	push(t, s,
		input.PointerDown(input.ButtonSecondary, 100, 100),
		input.PointerMove(100, 150),
		input.PointerUp(input.ButtonSecondary, 100, 150),
	)
	s.Tick(tick)
	assert.Greater(t, s.Orbit().TargetPivot().Y(), 0.0)
	assert.False(t, s.Orbit().Interacting())
}

func TestOrbitWheelZoomsTowardHit(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithBoundingRadius(20))
	s := newOrbitScene(t, node)

	push(t, s, input.Wheel(-1, cx, cy))
	s.Tick(tick)
	assert.InDelta(t, 900/1.024, s.Orbit().TargetSpherical().Radius, 1e-9)
	// The hit point is on the near side of the sphere, so the pivot moved toward the camera.
	assert.Greater(t, s.Orbit().TargetPivot().Len(), 0.0)

	empty := newOrbitScene(t)
	push(t, empty, input.Wheel(1, cx, cy))
	empty.Tick(tick)
	assert.InDelta(t, 900*1.024, empty.Orbit().TargetSpherical().Radius, 1e-9)
	assert.Equal(t, mgl64.Vec3{}, empty.Orbit().TargetPivot())
}

func TestOrbitDoubleClickAndFocus(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithBoundingRadius(20))
	s := newOrbitScene(t, node)

	push(t, s, input.DoubleClick(cx, cy))
	s.Tick(tick)
	assert.InDelta(t, 120, s.Orbit().TargetSpherical().Radius, 1e-9)
	assert.Equal(t, mgl64.Vec3{}, s.Orbit().TargetPivot())

	push(t, s, input.Focus(mgl64.Vec3{300, 0, 0}))
	s.Tick(tick)
	assert.InDelta(t, 250, s.Orbit().TargetSpherical().Radius, 1e-9)
}

func TestOrbitPinch(t *testing.T) {
	s := newOrbitScene(t)

	push(t, s,
		input.PinchStart(mgl64.Vec2{100, 100}, mgl64.Vec2{200, 100}),
		input.PinchMove(mgl64.Vec2{125, 100}, mgl64.Vec2{175, 100}),
		input.PinchEnd(),
	)
	s.Tick(tick)
	assert.InDelta(t, 930, s.Orbit().TargetSpherical().Radius, 1e-9)
}

func TestOrbitKeysAndResize(t *testing.T) {
	s := newOrbitScene(t)

	push(t, s, input.Key(common.KeyLeft), input.Resize(800, 600))
	s.Tick(tick)
	assert.InDelta(t, 0.08, s.Orbit().TargetSpherical().Azimuth, 1e-12)

	w, h := s.Viewport()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)
	assert.InDelta(t, 800.0/600.0, s.Camera().Aspect(), 1e-12)
}

func TestCulling(t *testing.T) {
	front := game_object.NewGameObject(game_object.WithBoundingRadius(5))
	behind := game_object.NewGameObject(
		game_object.WithPosition(mgl64.Vec3{0, 2000, 5000}),
		game_object.WithBoundingRadius(5),
	)
	hidden := game_object.NewGameObject(game_object.WithEnabled(false))
	s := newOrbitScene(t, front, behind, hidden)

	s.Tick(tick)
	assert.Equal(t, []picker.Placeable{front}, s.Visible())

	s.SetCullingDisabled(true)
	assert.True(t, s.CullingDisabled())
	s.Tick(tick)
	assert.Equal(t, []picker.Placeable{front, behind}, s.Visible())
}

func TestCulledObjectLosesHover(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithBoundingRadius(20))
	s := newOrbitScene(t, node)

	push(t, s, input.PointerMove(cx, cy))
	s.Tick(tick)
	require.Equal(t, picker.RefTo(node.ID()), s.Selection().Hovered())
	require.Equal(t, picker.CursorPointer, s.Cursor())

	node.SetPosition(mgl64.Vec3{0, 2000, 5000})
	s.Tick(tick)
	assert.Empty(t, s.Visible())
	assert.False(t, s.Selection().Hovered().Valid)
	assert.Equal(t, picker.CursorGrab, s.Cursor())
}

func TestDisablingCategoryDropsSelection(t *testing.T) {
	node := game_object.NewGameObject(game_object.WithBoundingRadius(20), game_object.WithCategory("music"))
	s := newOrbitScene(t, node)

	push(t, s,
		input.PointerDown(input.ButtonPrimary, cx, cy),
		input.PointerUp(input.ButtonPrimary, cx, cy),
	)
	s.Tick(tick)
	require.True(t, s.Selection().Selected().Valid)

	s.SetCategoryEnabled("music", false)
	assert.False(t, s.Selection().Selected().Valid)
}

func TestRailInput(t *testing.T) {
	s := newRailScene(t)
	rail := s.Rail()

	push(t, s, input.Wheel(1000, 0, 0))
	s.Tick(tick)
	assert.InDelta(t, 0.4, rail.TargetProgress(), 1e-12)

	push(t, s,
		input.TouchStart(0, 500),
		input.TouchMove(0, 400),
		input.TouchEnd(),
		input.TouchMove(0, 0),
	)
	s.Tick(tick)
	assert.InDelta(t, 0.4+100*0.00025, rail.TargetProgress(), 1e-12)

	push(t, s, input.Key(common.KeyUp))
	s.Tick(tick)
	assert.InDelta(t, 0.4+100*0.00025+0.005, rail.TargetProgress(), 1e-12)
	assert.Greater(t, rail.Progress(), 0.0)

	_, ok := s.Marker()
	assert.False(t, ok)
}

func TestRailClickSelectsUnit(t *testing.T) {
	p, err := path.NewPath([]mgl64.Vec3{{0, 0, 0}, {0, 0, -100}, {0, 0, -200}})
	require.NoError(t, err)
	rail := camera.NewRailController(p)
	unit := game_object.NewGameObject(
		game_object.WithPosition(rail.PoseAt(0).Target),
		game_object.WithBoundingRadius(2),
	)
	s := NewScene("journey", camera.NewCamera(), rail, WithObjects(unit), WithClickThreshold(3))
	t.Cleanup(s.Close)

	push(t, s,
		input.PointerDown(input.ButtonPrimary, cx, cy),
		input.PointerUp(input.ButtonPrimary, cx+1, cy+1),
	)
	s.Tick(tick)
	assert.Equal(t, picker.RefTo(unit.ID()), s.Selection().Selected())
}

func TestRailMinimapMarker(t *testing.T) {
	s := newRailScene(t, WithMinimap(minimap.WithSize(200)))
	require.NotNil(t, s.Minimap())
	assert.Equal(t, 200.0, s.Minimap().Size())

	start, ok := s.Marker()
	require.True(t, ok)
	assert.Equal(t, s.Minimap().Locate(0), start)

	s.Rail().JumpToFraction(1)
	for range 400 {
		s.Tick(tick)
	}
	end, ok := s.Marker()
	require.True(t, ok)
	assert.Equal(t, s.Minimap().Locate(1), end)
}

func TestSceneSetters(t *testing.T) {
	s := newOrbitScene(t)
	s.SetName("renamed")
	s.SetActive(false)
	s.SetViewport(0, 100)

	assert.Equal(t, "renamed", s.Name())
	assert.False(t, s.Active())
	w, h := s.Viewport()
	assert.Equal(t, float64(defaultViewportWidth), w)
	assert.Equal(t, float64(defaultViewportHeight), h)

	s.Close()
	s.Close()
}
