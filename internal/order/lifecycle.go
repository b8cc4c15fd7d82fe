package order

import (
	"errors"
	"time"
)

var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// transitions lists the statuses reachable from each status. Orders only
// move forward; completed is terminal.
var transitions = map[Status][]Status{
	StatusPending:        {StatusInPreparation, StatusPaymentPending},
	StatusPaymentPending: {StatusInPreparation},
	StatusInPreparation:  {StatusDispatched},
	StatusDispatched:     {StatusCompleted},
	StatusCompleted:      {},
}

// ValidStatus reports whether s is one of the recognized order statuses.
func ValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// New builds a pending order from checkout input. The id stays zero until
// the repository assigns one; Number is a creation-time label shown to
// the store, not a unique key.
func New(storeID int, items []Item, customer Customer, payment PaymentType, now time.Time) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}

	var total int64
	for _, it := range items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}

	return Order{
		StoreID:     storeID,
		Number:      now.UnixMilli(),
		Status:      StatusPending,
		Items:       items,
		TotalCents:  total,
		Customer:    customer,
		PaymentType: payment,
		CreatedAt:   now,
	}, nil
}

// Transition moves ord to target and records the timing bookkeeping for
// the store dashboard. It returns the updated order; persisting it is the
// caller's job.
func (ord Order) Transition(target Status, now time.Time) (Order, error) {
	if !ValidStatus(target) {
		return Order{}, ErrInvalidStatus
	}
	if !reachable(ord.Status, target) {
		return Order{}, ErrInvalidTransition
	}

	ord.Status = target

	switch target {
	case StatusInPreparation:
		ord.PreparationStartedAt = &now
	case StatusDispatched:
		ord.DispatchStartedAt = &now
		if ord.PreparationStartedAt != nil {
			secs := int64(now.Sub(*ord.PreparationStartedAt) / time.Second)
			ord.PreparationSeconds = &secs
		}
	case StatusCompleted:
		ord.CompletedAt = &now
		if ord.DispatchStartedAt != nil {
			secs := int64(now.Sub(*ord.DispatchStartedAt) / time.Second)
			ord.DispatchSeconds = &secs
		}
	}

	return ord, nil
}

func reachable(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
