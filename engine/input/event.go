package input

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// EventKind identifies what an Event carries.
type EventKind int

const (
	EventWheel EventKind = iota
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventDoubleClick
	EventTouchStart
	EventTouchMove
	EventTouchEnd
	EventPinchStart
	EventPinchMove
	EventPinchEnd
	EventKey
	EventFocus
	EventResize
)

var eventKindNames = map[EventKind]string{
	EventWheel:       "wheel",
	EventPointerDown: "pointer-down",
	EventPointerMove: "pointer-move",
	EventPointerUp:   "pointer-up",
	EventDoubleClick: "double-click",
	EventTouchStart:  "touch-start",
	EventTouchMove:   "touch-move",
	EventTouchEnd:    "touch-end",
	EventPinchStart:  "pinch-start",
	EventPinchMove:   "pinch-move",
	EventPinchEnd:    "pinch-end",
	EventKey:         "key",
	EventFocus:       "focus",
	EventResize:      "resize",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Event is one unit of user intent. Window callbacks and terminal hosts
// produce them; the scene tick consumes them.
//
// Field use by kind:
//   - Wheel: DeltaY
//   - Pointer*, DoubleClick, Touch*: X, Y (and Button for pointer events)
//   - Pinch*: Touches
//   - Key: Key
//   - Focus: Target
//   - Resize: Width, Height
type Event struct {
	Kind    EventKind
	X, Y    float64
	DeltaY  float64
	Button  Button
	Key     uint32
	Touches [2]mgl64.Vec2
	Target  mgl64.Vec3
	Width   int
	Height  int
}

// Wheel builds a scroll event. Positive deltaY scrolls down.
func Wheel(deltaY, x, y float64) Event {
	return Event{Kind: EventWheel, DeltaY: deltaY, X: x, Y: y}
}

// PointerDown builds a button press event at the pointer position.
func PointerDown(b Button, x, y float64) Event {
	return Event{Kind: EventPointerDown, Button: b, X: x, Y: y}
}

// PointerMove builds a pointer motion event.
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// PointerUp builds a button release event at the pointer position.
func PointerUp(b Button, x, y float64) Event {
	return Event{Kind: EventPointerUp, Button: b, X: x, Y: y}
}

// DoubleClick builds a double-click event at the pointer position.
func DoubleClick(x, y float64) Event {
	return Event{Kind: EventDoubleClick, X: x, Y: y}
}

// TouchStart builds a single-finger touch start event.
func TouchStart(x, y float64) Event {
	return Event{Kind: EventTouchStart, X: x, Y: y}
}

// TouchMove builds a single-finger touch move event.
func TouchMove(x, y float64) Event {
	return Event{Kind: EventTouchMove, X: x, Y: y}
}

// TouchEnd builds a touch release event.
func TouchEnd() Event {
	return Event{Kind: EventTouchEnd}
}

// PinchStart builds a two-finger gesture start event.
func PinchStart(a, b mgl64.Vec2) Event {
	return Event{Kind: EventPinchStart, Touches: [2]mgl64.Vec2{a, b}}
}

// PinchMove builds a two-finger gesture move event.
func PinchMove(a, b mgl64.Vec2) Event {
	return Event{Kind: EventPinchMove, Touches: [2]mgl64.Vec2{a, b}}
}

// PinchEnd builds a two-finger gesture end event.
func PinchEnd() Event {
	return Event{Kind: EventPinchEnd}
}

// Key builds a key press event. code is a GLFW key code or an ASCII rune.
func Key(code uint32) Event {
	return Event{Kind: EventKey, Key: code}
}

// Focus builds a request to frame a world point.
func Focus(target mgl64.Vec3) Event {
	return Event{Kind: EventFocus, Target: target}
}

// Resize builds a viewport size change event.
func Resize(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}
