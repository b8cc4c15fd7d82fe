package store

import (
	"errors"
	"sync"
)

var (
	ErrNotFound     = errors.New("store not found")
	ErrNameRequired = errors.New("store name is required")
)

type Repository interface {
	GetByID(id int) (Store, error)
	GetBySlug(slug string) (Store, error)
	Create(s Store) (Store, error)
	Update(id int, s Store) (Store, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	stores []Store
	nextID int
}

func NewInMemoryRepository(seed []Store) *InMemoryRepository {
	repo := &InMemoryRepository{
		stores: make([]Store, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, s := range seed {
		repo.stores = append(repo.stores, s)
		if s.ID > maxID {
			maxID = s.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) GetByID(id int) (Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return Store{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stores {
		if s.Slug == slug {
			return s, nil
		}
	}
	return Store{}, ErrNotFound
}

func (r *InMemoryRepository) Create(s Store) (Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.stores = append(r.stores, s)
	return s, nil
}

func (r *InMemoryRepository) Update(id int, s Store) (Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.stores {
		if existing.ID == id {
			s.ID = id
			r.stores[i] = s
			return s, nil
		}
	}
	return Store{}, ErrNotFound
}
