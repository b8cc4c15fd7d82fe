package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ServiceInterface is what other packages need from the store service.
type ServiceInterface interface {
	GetByID(id int) (Store, error)
	GetBySlug(slug string) (Store, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) GetByID(id int) (Store, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Store, error) {
	return s.repo.GetBySlug(slug)
}

// Create registers a new store. The slug defaults to a fresh UUID when
// the merchant has not picked one yet.
func (s *Service) Create(st Store) (Store, error) {
	if strings.TrimSpace(st.Name) == "" {
		return Store{}, ErrNameRequired
	}
	if st.Slug == "" {
		st.Slug = uuid.NewString()
	}
	st.Status = StatusActive
	st.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(st)
	if err != nil {
		return Store{}, err
	}

	logrus.WithFields(logrus.Fields{
		"storeId": created.ID,
		"slug":    created.Slug,
	}).Info("store created")

	return created, nil
}

func (s *Service) Update(id int, st Store) (Store, error) {
	if strings.TrimSpace(st.Name) == "" {
		return Store{}, ErrNameRequired
	}
	return s.repo.Update(id, st)
}

var _ ServiceInterface = (*Service)(nil)
