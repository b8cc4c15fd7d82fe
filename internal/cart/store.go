package cart

import "sync"

// Store persists the cart lines for one session. The aggregation
// functions never touch storage themselves; the service loads, applies
// the pure operation and saves.
type Store interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

// InMemoryStore is used for tests and local scenarios.
type InMemoryStore struct {
	mu    sync.RWMutex
	lines []Line
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{lines: []Line{}}
}

func (s *InMemoryStore) Load() ([]Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

func (s *InMemoryStore) Save(lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make([]Line, len(lines))
	copy(s.lines, lines)
	return nil
}
