package utils

import "sync"

// Tracker tracks already-seen identifiers to avoid duplicates
type Tracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewTracker creates a new tracker
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// Add returns true if the identifier is new (not seen before), false if duplicate
func (t *Tracker) Add(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.seen[id]; exists {
		return false
	}
	t.seen[id] = struct{}{}
	return true
}

// Count returns the number of tracked identifiers
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
