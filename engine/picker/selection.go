package picker

import "sync"

// Ref is a weak reference to a candidate by id. The zero Ref points at nothing.
type Ref struct {
	ID    uint64
	Valid bool
}

// RefTo returns a valid reference to id.
func RefTo(id uint64) Ref {
	return Ref{ID: id, Valid: true}
}

type selectionImpl struct {
	mu *sync.Mutex

	hovered  Ref
	selected Ref

	onHover  func(prev, next Ref)
	onSelect func(prev, next Ref)
}

// Selection tracks the hovered and selected candidates.
// The selected reference survives hover changes; both are dropped by Prune
// once their candidate stops being visible.
type Selection interface {
	// Hovered returns the candidate under the pointer.
	//
	// Returns:
	//   - Ref: the hovered reference, invalid when nothing is hovered
	Hovered() Ref

	// Selected returns the clicked candidate.
	//
	// Returns:
	//   - Ref: the selected reference, invalid when nothing is selected
	Selected() Ref

	// Hover records the pick result under the pointer.
	// The hover callback fires when the hovered candidate changes.
	//
	// Parameters:
	//   - id: the hit candidate id
	//   - ok: false when the pointer is over nothing
	//
	// Returns:
	//   - bool: true if the hovered candidate changed
	Hover(id uint64, ok bool) bool

	// Click selects the hit candidate, or clears the selection on a miss.
	// The select callback fires when the selection changes.
	//
	// Parameters:
	//   - id: the hit candidate id
	//   - ok: false when the click hit nothing
	//
	// Returns:
	//   - bool: true if the selection changed
	Click(id uint64, ok bool) bool

	// Clear drops both references, firing callbacks for any that change.
	Clear()

	// Prune drops references whose candidate is no longer visible.
	//
	// Parameters:
	//   - isVisible: reports whether a candidate id is still visible
	//
	// Returns:
	//   - bool: true if any reference was dropped
	Prune(isVisible func(id uint64) bool) bool
}

var _ Selection = &selectionImpl{}

// NewSelection creates an empty Selection.
//
// Parameters:
//   - options: functional options to configure callbacks
//
// Returns:
//   - Selection: the newly created selection
func NewSelection(options ...SelectionBuilderOption) Selection {
	s := &selectionImpl{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *selectionImpl) Hovered() Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hovered
}

func (s *selectionImpl) Selected() Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *selectionImpl) Hover(id uint64, ok bool) bool {
	next := Ref{}
	if ok {
		next = RefTo(id)
	}
	s.mu.Lock()
	prev := s.hovered
	s.hovered = next
	cb := s.onHover
	s.mu.Unlock()

	if prev == next {
		return false
	}
	if cb != nil {
		cb(prev, next)
	}
	return true
}

func (s *selectionImpl) Click(id uint64, ok bool) bool {
	next := Ref{}
	if ok {
		next = RefTo(id)
	}
	s.mu.Lock()
	prev := s.selected
	s.selected = next
	cb := s.onSelect
	s.mu.Unlock()

	if prev == next {
		return false
	}
	if cb != nil {
		cb(prev, next)
	}
	return true
}

func (s *selectionImpl) Clear() {
	s.Hover(0, false)
	s.Click(0, false)
}

func (s *selectionImpl) Prune(isVisible func(id uint64) bool) bool {
	if isVisible == nil {
		return false
	}
	s.mu.Lock()
	hovered, selected := s.hovered, s.selected
	s.mu.Unlock()

	dropped := false
	if hovered.Valid && !isVisible(hovered.ID) {
		dropped = s.Hover(0, false) || dropped
	}
	if selected.Valid && !isVisible(selected.ID) {
		dropped = s.Click(0, false) || dropped
	}
	return dropped
}
