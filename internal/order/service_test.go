package order

import (
	"testing"
	"time"
)

type countingProducts struct {
	bumps map[int]int
}

func (p *countingProducts) IncrementSales(productID int, n int) error {
	if p.bumps == nil {
		p.bumps = map[int]int{}
	}
	p.bumps[productID] += n
	return nil
}

func TestServiceCreate_BumpsSalesCounters(t *testing.T) {
	products := &countingProducts{}
	service := NewService(NewInMemoryRepository(nil), products)

	created, err := service.Create(3, testItems(), testCustomer, PaymentCash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected repository to assign an id")
	}

	if products.bumps[1] != 2 || products.bumps[2] != 1 {
		t.Fatalf("expected sales bumps {1:2, 2:1}, got %v", products.bumps)
	}
}

func TestServiceChangeStatus_ElapsedSeconds(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	clock := t0
	service := NewService(NewInMemoryRepository(nil), nil).
		WithClock(func() time.Time { return clock })

	created, err := service.Create(3, testItems(), testCustomer, PaymentPix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.ChangeStatus(created.ID, 3, StatusInPreparation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock = t0.Add(3 * time.Minute)
	updated, err := service.ChangeStatus(created.ID, 3, StatusDispatched)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PreparationSeconds == nil || *updated.PreparationSeconds != 180 {
		t.Fatalf("expected preparationSeconds 180, got %v", updated.PreparationSeconds)
	}

	// the stored order carries the patch
	stored, err := service.GetByID(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != StatusDispatched {
		t.Fatalf("expected stored status dispatched, got %s", stored.Status)
	}
}

func TestServiceChangeStatus_WrongStore(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil), nil)

	created, err := service.Create(3, testItems(), testCustomer, PaymentCash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.ChangeStatus(created.ID, 99, StatusInPreparation); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for another store's order, got %v", err)
	}
}

func TestServiceListByStoreAndStatus_RejectsUnknown(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil), nil)

	if _, err := service.ListByStoreAndStatus(1, Status("bogus")); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
