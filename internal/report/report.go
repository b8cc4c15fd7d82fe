package report

import (
	"errors"
	"time"

	"github.com/comandareal/comanda-backend/internal/order"
)

var ErrInvalidWindow = errors.New("invalid report window")

// Window is a lookback period for order-volume counts.
type Window string

const (
	Window24H Window = "24h"
	Window7D  Window = "7d"
	Window30D Window = "30d"
)

// Repository counts orders for the merchant dashboard.
type Repository interface {
	CountByStatus(storeID int, status order.Status) (int, error)
	CountSince(storeID int, since time.Time) (int, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the service clock. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) CountByStatus(storeID int, status order.Status) (int, error) {
	if !order.ValidStatus(status) {
		return 0, order.ErrInvalidStatus
	}
	return s.repo.CountByStatus(storeID, status)
}

func (s *Service) CountByWindow(storeID int, w Window) (int, error) {
	now := s.now().UTC()

	var since time.Time
	switch w {
	case Window24H:
		since = now.Add(-24 * time.Hour)
	case Window7D:
		since = now.AddDate(0, 0, -7)
	case Window30D:
		since = now.AddDate(0, 0, -30)
	default:
		return 0, ErrInvalidWindow
	}

	return s.repo.CountSince(storeID, since)
}
