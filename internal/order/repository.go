package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders. UpdateStatus
// writes the status field together with the timing columns so a single
// statement carries the whole transition patch.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	ListByStore(storeID int) ([]Order, error)
	ListByStoreAndStatus(storeID int, status Status) ([]Order, error)
	UpdateStatus(ord Order) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	repo := &InMemoryRepository{
		orders: make([]Order, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, ord := range seed {
		repo.orders = append(repo.orders, ord)
		if ord.ID > maxID {
			maxID = ord.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByStore(storeID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.StoreID == storeID {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListByStoreAndStatus(storeID int, status Status) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.StoreID == storeID && ord.Status == status {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.orders {
		if existing.ID == ord.ID {
			r.orders[i] = ord
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}
