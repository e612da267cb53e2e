package scene

import (
	"github.com/Carmen-Shannon/wayfinder/common"
	"github.com/Carmen-Shannon/wayfinder/engine/input"
	"github.com/Carmen-Shannon/wayfinder/engine/picker"
)

// labeled is implemented by candidates that may be labels.
type labeled interface {
	Label() bool
}

// dispatch applies one input event. Only called from Tick.
func (s *scene) dispatch(e input.Event) {
	switch e.Kind {
	case input.EventResize:
		s.SetViewport(float64(e.Width), float64(e.Height))
		return
	case input.EventKey:
		if s.ctrl.HandleKey(e.Key) && s.orbit != nil {
			switch common.NormalizeKey(e.Key) {
			case common.KeyHome, common.KeyH:
				// A view reset also deselects.
				s.selection.Click(0, false)
			}
		}
		return
	}

	if s.rail != nil {
		s.dispatchRail(e)
		return
	}
	s.dispatchOrbit(e)
}

func (s *scene) dispatchRail(e input.Event) {
	switch e.Kind {
	case input.EventWheel:
		s.rail.Wheel(e.DeltaY)
	case input.EventTouchStart:
		s.touching = true
		s.touchY = e.Y
	case input.EventTouchMove:
		if !s.touching {
			return
		}
		// Swiping up moves forward.
		s.rail.Touch(s.touchY - e.Y)
		s.touchY = e.Y
	case input.EventTouchEnd:
		s.touching = false
	case input.EventPointerDown:
		if e.Button == input.ButtonPrimary {
			s.clicks.Down(e.X, e.Y)
		}
	case input.EventPointerUp:
		if e.Button == input.ButtonPrimary && s.clicks.Up(e.X, e.Y) {
			s.click(e.X, e.Y)
		}
	case input.EventPointerMove:
		s.hover(e.X, e.Y)
	}
}

func (s *scene) dispatchOrbit(e input.Event) {
	switch e.Kind {
	case input.EventWheel:
		factor := s.orbit.WheelFactor(e.DeltaY)
		if hit, ok := s.pickAt(e.X, e.Y); ok {
			s.orbit.ZoomToward(factor, hit.Point)
			return
		}
		s.orbit.ZoomBy(factor)
	case input.EventPointerDown:
		switch e.Button {
		case input.ButtonPrimary:
			s.clicks.Down(e.X, e.Y)
			if hit, ok := s.pickAt(e.X, e.Y); ok {
				s.orbit.RetargetPivot(hit.Point)
			}
			s.orbit.BeginDrag(e.X, e.Y)
			s.dragging = true
		default:
			s.orbit.BeginPan(e.X, e.Y)
			s.panning = true
			s.dragging = false
		}
	case input.EventPointerMove:
		switch {
		case s.dragging:
			s.orbit.DragMove(e.X, e.Y)
		case s.panning:
			s.orbit.PanMove(e.X, e.Y)
		default:
			s.hover(e.X, e.Y)
		}
	case input.EventPointerUp:
		switch e.Button {
		case input.ButtonPrimary:
			s.orbit.EndDrag()
			s.dragging = false
			if s.clicks.Up(e.X, e.Y) {
				s.click(e.X, e.Y)
			}
		default:
			s.orbit.EndPan()
			s.panning = false
		}
	case input.EventDoubleClick:
		if hit, ok := s.pickAt(e.X, e.Y); ok {
			s.orbit.Focus(hit.Candidate.Position())
		}
	case input.EventFocus:
		s.orbit.FlyTo(e.Target)
	case input.EventTouchStart:
		s.orbit.BeginDrag(e.X, e.Y)
		s.dragging = true
	case input.EventTouchMove:
		s.orbit.DragMove(e.X, e.Y)
	case input.EventTouchEnd:
		s.orbit.EndDrag()
		s.dragging = false
	case input.EventPinchStart:
		s.orbit.BeginPinch(e.Touches[0], e.Touches[1])
		s.dragging = false
	case input.EventPinchMove:
		s.orbit.PinchMove(e.Touches[0], e.Touches[1])
	case input.EventPinchEnd:
		s.orbit.EndPinch()
	}
}

func (s *scene) hover(x, y float64) {
	hit, ok := s.pickAt(x, y)
	s.selection.Hover(hit.ID, ok)
}

func (s *scene) click(x, y float64) {
	hit, ok := s.pickAt(x, y)
	s.selection.Click(hit.ID, ok)
}

// pickAt resolves a pointer position against the visible set, labels first.
func (s *scene) pickAt(x, y float64) (picker.Hit, bool) {
	s.mu.Lock()
	w, h := s.width, s.height
	labels := make([]picker.Placeable, 0)
	nodes := make([]picker.Placeable, 0, len(s.visible))
	for _, c := range s.visible {
		if l, ok := c.(labeled); ok && l.Label() {
			labels = append(labels, c)
			continue
		}
		nodes = append(nodes, c)
	}
	s.mu.Unlock()

	ndc := picker.ScreenToNDC(x, y, w, h)
	return s.picker.PickLayers(ndc, s.cam, labels, nodes)
}
