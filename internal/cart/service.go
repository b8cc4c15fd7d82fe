package cart

import (
	"errors"

	"github.com/comandareal/comanda-backend/internal/product"
)

var ErrProductUnavailable = errors.New("product is not available")

// ProductGetter resolves the product snapshot copied onto a new line.
type ProductGetter interface {
	GetByID(id int) (product.Product, error)
}

// StoreFactory builds the Store for one session. The HTTP handler picks
// the session id out of the request; tests plug in an in-memory store.
type StoreFactory func(sessionID string) Store

// Service wraps the pure cart operations with load/save around each call.
type Service struct {
	stores   StoreFactory
	products ProductGetter
}

func NewService(stores StoreFactory, products ProductGetter) *Service {
	return &Service{stores: stores, products: products}
}

func (s *Service) Get(sessionID string) ([]Line, error) {
	return s.stores(sessionID).Load()
}

// Add looks the product up, merges it into the session's cart and saves.
// Archived and deleted products cannot be added.
func (s *Service) Add(sessionID string, productID int) ([]Line, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p.Status != product.StatusActive {
		return nil, ErrProductUnavailable
	}

	st := s.stores(sessionID)
	lines, err := st.Load()
	if err != nil {
		return nil, err
	}

	lines = Add(lines, p)
	if err := st.Save(lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) Remove(sessionID string, productID int) ([]Line, error) {
	st := s.stores(sessionID)
	lines, err := st.Load()
	if err != nil {
		return nil, err
	}

	lines = Remove(lines, productID)
	if err := st.Save(lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) Clear(sessionID string) error {
	return s.stores(sessionID).Save(Clear())
}
