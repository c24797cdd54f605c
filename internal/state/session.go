package state

// Session holds the active image set and the layout committed for it.
// A committed layout only exists while an image set is active; Select and
// Clear keep the two in step. The zero value is an empty session.
type Session struct {
	id        string
	active    *ImageSet
	committed *Size
}

// Select makes set the active subject under a fresh activation id and drops
// any previously committed layout.
func (s *Session) Select(set ImageSet) string {
	chosen := set
	s.active = &chosen
	s.committed = nil
	s.id = NewActivationID()
	return s.id
}

// Clear returns the session to the pre-selection state.
func (s *Session) Clear() {
	s.id = ""
	s.active = nil
	s.committed = nil
}

// ID returns the current activation id, empty when nothing is active.
func (s *Session) ID() string { return s.id }

// Current reports whether id still names the active activation.
func (s *Session) Current(id string) bool {
	return id != "" && s.id == id
}

func (s *Session) Active() (ImageSet, bool) {
	if s.active == nil {
		return ImageSet{}, false
	}
	return *s.active, true
}

// Commit remembers size as the layout for the active set. Without an active
// set it does nothing and returns false.
func (s *Session) Commit(size Size) bool {
	if s.active == nil {
		return false
	}
	committed := size
	s.committed = &committed
	return true
}

// Committed returns the remembered layout, if any.
func (s *Session) Committed() (Size, bool) {
	if s.committed == nil {
		return Size{}, false
	}
	return *s.committed, true
}

// ForgetLayout drops the committed layout but keeps the active set, used
// before a viewport driven relayout.
func (s *Session) ForgetLayout() {
	s.committed = nil
}
