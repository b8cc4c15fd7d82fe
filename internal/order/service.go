package order

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/comandareal/comanda-backend/internal/metrics"
)

// ProductCounter bumps the per-product sales counter after an order is
// accepted. Implemented by the product service.
type ProductCounter interface {
	IncrementSales(productID int, n int) error
}

// Service provides business logic for orders. The clock is injectable so
// transition timing can be tested against fixed instants.
type Service struct {
	repo     Repository
	products ProductCounter
	now      func() time.Time
}

func NewService(repo Repository, products ProductCounter) *Service {
	return &Service{repo: repo, products: products, now: time.Now}
}

// WithClock overrides the service clock. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Create(storeID int, items []Item, customer Customer, payment PaymentType) (Order, error) {
	ord, err := New(storeID, items, customer, payment, s.now().UTC())
	if err != nil {
		return Order{}, err
	}

	created, err := s.repo.Create(ord)
	if err != nil {
		return Order{}, err
	}

	// sales counters are best-effort; a failed bump never fails the order
	if s.products != nil {
		for _, it := range created.Items {
			if err := s.products.IncrementSales(it.ProductID, it.Quantity); err != nil {
				logrus.WithFields(logrus.Fields{
					"orderId":   created.ID,
					"productId": it.ProductID,
				}).WithError(err).Warn("could not increment sales counter")
			}
		}
	}

	metrics.OrdersCreated.Inc()
	logrus.WithFields(logrus.Fields{
		"orderId":    created.ID,
		"storeId":    created.StoreID,
		"totalCents": created.TotalCents,
	}).Info("order created")

	return created, nil
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByStore(storeID int) ([]Order, error) {
	return s.repo.ListByStore(storeID)
}

func (s *Service) ListByStoreAndStatus(storeID int, status Status) ([]Order, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListByStoreAndStatus(storeID, status)
}

// ChangeStatus loads the order, applies the transition and persists the
// resulting patch. storeID guards against transitioning another store's
// order.
func (s *Service) ChangeStatus(id int, storeID int, target Status) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if ord.StoreID != storeID {
		return Order{}, ErrNotFound
	}

	updated, err := ord.Transition(target, s.now().UTC())
	if err != nil {
		return Order{}, err
	}

	saved, err := s.repo.UpdateStatus(updated)
	if err != nil {
		return Order{}, err
	}

	metrics.StatusTransitions.WithLabelValues(string(target)).Inc()
	logrus.WithFields(logrus.Fields{
		"orderId": saved.ID,
		"from":    ord.Status,
		"to":      target,
	}).Info("order status changed")

	return saved, nil
}
