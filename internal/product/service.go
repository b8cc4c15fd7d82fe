package product

import (
	"strings"
	"time"
)

// ServiceInterface is what the order and cart flows need from products.
type ServiceInterface interface {
	GetByID(id int) (Product, error)
	IncrementSales(id int, n int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByStore(storeID int) ([]Product, error) {
	return s.repo.ListByStore(storeID)
}

func (s *Service) ListByCategory(storeID, categoryID int) ([]Product, error) {
	return s.repo.ListByCategory(storeID, categoryID)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	if err := validate(p); err != nil {
		return Product{}, err
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if p.Type == "" {
		p.Type = TypeMain
	}
	p.CreatedAt = time.Now().UTC()
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	if err := validate(p); err != nil {
		return Product{}, err
	}
	return s.repo.Update(id, p)
}

// Delete marks the product deleted; rows are kept so old orders still
// resolve their line items.
func (s *Service) Delete(id int) error {
	return s.repo.SetStatus(id, StatusDeleted)
}

func (s *Service) IncrementSales(id int, n int) error {
	return s.repo.IncrementSales(id, n)
}

func validate(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if p.PriceCents <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

var _ ServiceInterface = (*Service)(nil)
