package content

import "sync/atomic"

// Store hands out the current content document. Readers always get a complete
// document; a reload swaps the whole pointer.
type Store struct {
	current atomic.Pointer[Portfolio]
}

// NewStore returns a store holding p.
func NewStore(p Portfolio) *Store {
	s := &Store{}
	s.current.Store(&p)
	return s
}

// Current returns the document in effect. Callers must not modify it.
func (s *Store) Current() *Portfolio {
	return s.current.Load()
}

// Replace swaps in a freshly loaded document.
func (s *Store) Replace(p Portfolio) {
	s.current.Store(&p)
}
