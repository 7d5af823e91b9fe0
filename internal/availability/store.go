// Package availability keeps the doctor-side "marked unavailable" dates.
// The set is an annotation layer local to the gateway process: it is never
// sent to the clinic platform and is lost on restart. Promoting it to a real
// upstream resource is a known design gap, inherited deliberately.
package availability

import (
	"sort"
	"sync"

	"medicare-portal/internal/scheduling"
)

// Store holds per-doctor sets of unavailable date strings.
type Store struct {
	mu    sync.RWMutex
	dates map[string]scheduling.DateSet
}

func NewStore() *Store {
	return &Store{
		dates: make(map[string]scheduling.DateSet),
	}
}

// Toggle flips the unavailable flag for a doctor's date and returns the new
// state. Toggling twice restores the original state.
func (s *Store) Toggle(doctorID, date string) bool {
	date = scheduling.NormalizeDate(date)

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.dates[doctorID]
	if !ok {
		set = make(scheduling.DateSet)
		s.dates[doctorID] = set
	}

	if set.Contains(date) {
		delete(set, date)
		return false
	}
	set[date] = struct{}{}
	return true
}

// IsUnavailable reports whether the doctor has marked the date unavailable.
func (s *Store) IsUnavailable(doctorID, date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dates[doctorID].Contains(scheduling.NormalizeDate(date))
}

// Dates returns a copy of the doctor's unavailable set.
func (s *Store) Dates(doctorID string) scheduling.DateSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.dates[doctorID]
	copied := make(scheduling.DateSet, len(set))
	for d := range set {
		copied[d] = struct{}{}
	}
	return copied
}

// List returns the doctor's unavailable dates in ascending order.
func (s *Store) List(doctorID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.dates[doctorID]
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
