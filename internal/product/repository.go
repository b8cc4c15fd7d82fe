package product

import (
	"errors"
	"sync"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrNameRequired = errors.New("product name is required")
	ErrInvalidPrice = errors.New("product price must be positive")
)

type Repository interface {
	ListByStore(storeID int) ([]Product, error)
	ListByCategory(storeID, categoryID int) ([]Product, error)
	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
	SetStatus(id int, status string) error
	IncrementSales(id int, n int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
	nextID   int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	repo := &InMemoryRepository{
		products: make([]Product, 0, len(seed)),
		nextID:   1,
	}

	maxID := 0
	for _, p := range seed {
		repo.products = append(repo.products, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) ListByStore(storeID int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.products {
		if p.StoreID == storeID && p.Status != StatusDeleted {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListByCategory(storeID, categoryID int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.products {
		if p.StoreID == storeID && p.CategoryID == categoryID && p.Status != StatusDeleted {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.products {
		if existing.ID == id {
			p.ID = id
			p.Sales = existing.Sales
			r.products[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) SetStatus(id int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) IncrementSales(id int, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products[i].Sales += n
			return nil
		}
	}
	return ErrNotFound
}
