package drive

import (
	"sort"
	"sync"
)

// Selection tracks which visible file ids are checked for bulk operations.
//
// The invariant is that every selected id exists in the last reconciled
// listing: Reconcile must be called after every projection, and it silently
// drops ids no longer visible. Selecting an id that is not currently
// visible is a no-op.
type Selection struct {
	mu      sync.Mutex
	ids     map[string]struct{}
	visible map[string]struct{}
}

// NewSelection returns an empty selection with nothing visible yet.
func NewSelection() *Selection {
	return &Selection{
		ids:     make(map[string]struct{}),
		visible: make(map[string]struct{}),
	}
}

// Select marks id as selected if it is visible.
func (s *Selection) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visible[id]; ok {
		s.ids[id] = struct{}{}
	}
}

// Deselect unmarks id.
func (s *Selection) Deselect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}

// ToggleAll selects or deselects all of ids at once.
func (s *Selection) ToggleAll(ids []string, checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if !checked {
			delete(s.ids, id)
			continue
		}
		if _, ok := s.visible[id]; ok {
			s.ids[id] = struct{}{}
		}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
}

// Reconcile records the freshly projected visible id set and intersects the
// selection with it. Entries for files no longer visible are dropped
// silently.
func (s *Selection) Reconcile(visibleIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visible = make(map[string]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		s.visible[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := s.visible[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the selected ids in sorted order.
func (s *Selection) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
