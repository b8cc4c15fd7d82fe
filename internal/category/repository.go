package category

import (
	"errors"
	"sync"
)

var (
	ErrNotFound     = errors.New("category not found")
	ErrNameRequired = errors.New("category name is required")
)

type Repository interface {
	ListByStore(storeID int) ([]Category, error)
	GetByID(id int) (Category, error)
	Create(cat Category) (Category, error)
	Update(id int, cat Category) (Category, error)
	Delete(id int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []Category
	nextID     int
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	repo := &InMemoryRepository{
		categories: make([]Category, 0, len(seed)),
		nextID:     1,
	}

	maxID := 0
	for _, cat := range seed {
		repo.categories = append(repo.categories, cat)
		if cat.ID > maxID {
			maxID = cat.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) ListByStore(storeID int) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, 0)
	for _, cat := range r.categories {
		if cat.StoreID == storeID {
			out = append(out, cat)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cat := range r.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Create(cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, cat)
	return cat, nil
}

func (r *InMemoryRepository) Update(id int, cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.categories {
		if existing.ID == id {
			cat.ID = id
			r.categories[i] = cat
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cat := range r.categories {
		if cat.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
