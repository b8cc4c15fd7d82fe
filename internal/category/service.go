package category

import "strings"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByStore(storeID int) ([]Category, error) {
	return s.repo.ListByStore(storeID)
}

func (s *Service) GetByID(id int) (Category, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(cat Category) (Category, error) {
	if strings.TrimSpace(cat.Name) == "" {
		return Category{}, ErrNameRequired
	}
	return s.repo.Create(cat)
}

func (s *Service) Update(id int, cat Category) (Category, error) {
	if strings.TrimSpace(cat.Name) == "" {
		return Category{}, ErrNameRequired
	}
	return s.repo.Update(id, cat)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
