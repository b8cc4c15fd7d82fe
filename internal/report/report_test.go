package report

import (
	"testing"
	"time"

	"github.com/comandareal/comanda-backend/internal/order"
)

type fakeRepo struct {
	statusCalls map[order.Status]int
	sinceArg    time.Time
	count       int
}

func (f *fakeRepo) CountByStatus(storeID int, status order.Status) (int, error) {
	if f.statusCalls == nil {
		f.statusCalls = map[order.Status]int{}
	}
	f.statusCalls[status]++
	return f.count, nil
}

func (f *fakeRepo) CountSince(storeID int, since time.Time) (int, error) {
	f.sinceArg = since
	return f.count, nil
}

func TestCountByStatus(t *testing.T) {
	repo := &fakeRepo{count: 4}
	svc := NewService(repo)

	got, err := svc.CountByStatus(3, order.StatusPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Fatalf("expected count 4, got %d", got)
	}
	if repo.statusCalls[order.StatusPending] != 1 {
		t.Fatalf("expected one repo call, got %d", repo.statusCalls[order.StatusPending])
	}
}

func TestCountByStatus_RejectsUnknown(t *testing.T) {
	svc := NewService(&fakeRepo{})
	if _, err := svc.CountByStatus(3, "shipped"); err != order.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCountByWindow(t *testing.T) {
	now := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		window Window
		since  time.Time
	}{
		{Window24H, time.Date(2026, time.March, 30, 12, 0, 0, 0, time.UTC)},
		{Window7D, time.Date(2026, time.March, 24, 12, 0, 0, 0, time.UTC)},
		{Window30D, time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		repo := &fakeRepo{count: 7}
		svc := NewService(repo).WithClock(func() time.Time { return now })

		got, err := svc.CountByWindow(3, tc.window)
		if err != nil {
			t.Fatalf("CountByWindow(%s): unexpected error: %v", tc.window, err)
		}
		if got != 7 {
			t.Fatalf("CountByWindow(%s): expected count 7, got %d", tc.window, got)
		}
		if !repo.sinceArg.Equal(tc.since) {
			t.Fatalf("CountByWindow(%s): expected since %v, got %v", tc.window, tc.since, repo.sinceArg)
		}
	}
}

func TestCountByWindow_RejectsUnknown(t *testing.T) {
	svc := NewService(&fakeRepo{})
	if _, err := svc.CountByWindow(3, "90d"); err != ErrInvalidWindow {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}
