package merchant

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("merchant not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

type Repository interface {
	GetByID(id int) (Merchant, error)
	GetByEmail(email string) (Merchant, error)
	Create(m Merchant) (Merchant, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.RWMutex
	merchants []Merchant
	nextID    int
}

func NewInMemoryRepository(seed []Merchant) *InMemoryRepository {
	repo := &InMemoryRepository{
		merchants: make([]Merchant, 0, len(seed)),
		nextID:    1,
	}

	maxID := 0
	for _, m := range seed {
		repo.merchants = append(repo.merchants, m)
		if m.ID > maxID {
			maxID = m.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) GetByID(id int) (Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.merchants {
		if m.ID == id {
			return m, nil
		}
	}
	return Merchant{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.merchants {
		if m.Email == email {
			return m, nil
		}
	}
	return Merchant{}, ErrNotFound
}

func (r *InMemoryRepository) Create(m Merchant) (Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.merchants = append(r.merchants, m)
	return m, nil
}
