package store

import (
	"testing"
	"time"
)

// at builds a time on a known Monday so weekday lookups are predictable.
func at(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2026, time.March, 2, hour, minute, 0, 0, time.UTC)
}

func TestWeeklySchedule_IsOpenAt(t *testing.T) {
	ws := &WeeklySchedule{
		Monday: &DayHours{OpensAt: "09:00", ClosesAt: "18:00"},
	}

	if !ws.IsOpenAt(at(t, 9, 0)) {
		t.Fatal("expected open at opening minute")
	}
	if !ws.IsOpenAt(at(t, 18, 0)) {
		t.Fatal("expected open at closing minute, bounds are inclusive")
	}
	if ws.IsOpenAt(at(t, 8, 59)) {
		t.Fatal("expected closed before opening")
	}
	if ws.IsOpenAt(at(t, 18, 1)) {
		t.Fatal("expected closed after closing")
	}

	// Tuesday has no entry, closed all day
	tuesday := at(t, 12, 0).AddDate(0, 0, 1)
	if ws.IsOpenAt(tuesday) {
		t.Fatal("expected closed on a day without hours")
	}

	var nilWS *WeeklySchedule
	if nilWS.IsOpenAt(at(t, 12, 0)) {
		t.Fatal("expected nil schedule to be closed")
	}
}

func TestIntervalSchedule_Overnight(t *testing.T) {
	iv := IntervalSchedule{{From: "18:00", To: "02:00"}}

	if !iv.IsOpenAt(at(t, 23, 30)) {
		t.Fatal("expected open at 23:30")
	}
	if !iv.IsOpenAt(at(t, 1, 0)) {
		t.Fatal("expected open at 01:00 past midnight")
	}
	if iv.IsOpenAt(at(t, 10, 0)) {
		t.Fatal("expected closed at 10:00")
	}
	if !iv.IsOpenAt(at(t, 18, 0)) {
		t.Fatal("expected open at the opening minute")
	}
	if !iv.IsOpenAt(at(t, 2, 0)) {
		t.Fatal("expected open at the closing minute")
	}
}

func TestIntervalSchedule_SameDay(t *testing.T) {
	iv := IntervalSchedule{
		{From: "11:00", To: "14:00"},
		{From: "18:00", To: "22:00"},
	}

	if !iv.IsOpenAt(at(t, 12, 30)) {
		t.Fatal("expected open during lunch window")
	}
	if iv.IsOpenAt(at(t, 15, 0)) {
		t.Fatal("expected closed between windows")
	}
	if !iv.IsOpenAt(at(t, 20, 0)) {
		t.Fatal("expected open during dinner window")
	}
}

func TestStore_IsOpenAt_WeeklyWinsOverLegacy(t *testing.T) {
	s := Store{
		WeeklySchedule: &WeeklySchedule{
			Monday: &DayHours{OpensAt: "09:00", ClosesAt: "12:00"},
		},
		IntervalSchedule: IntervalSchedule{{From: "00:00", To: "23:59"}},
	}

	if !s.IsOpenAt(at(t, 10, 0)) {
		t.Fatal("expected open inside the weekly window")
	}
	if s.IsOpenAt(at(t, 20, 0)) {
		t.Fatal("expected weekly schedule to win over the legacy intervals")
	}
}

func TestStore_IsOpenAt_NoSchedule(t *testing.T) {
	if (Store{}).IsOpenAt(at(t, 12, 0)) {
		t.Fatal("expected store without any schedule to be closed")
	}
}

func TestCanDeliverTo(t *testing.T) {
	s := Store{
		AcceptsDelivery:   true,
		ServedPostalCodes: []string{"36542000"},
	}

	if !s.CanDeliverTo("36542000") {
		t.Fatal("expected exact match to deliver")
	}
	if !s.CanDeliverTo("36.542-000") {
		t.Fatal("expected formatted CEP to match after normalization")
	}
	if s.CanDeliverTo("36542001") {
		t.Fatal("expected unserved CEP to be rejected")
	}
	if s.CanDeliverTo("3654200") {
		t.Fatal("expected short CEP to be rejected")
	}
	if s.CanDeliverTo("") {
		t.Fatal("expected empty CEP to be rejected")
	}

	s.ServedPostalCodes = []string{"36.542-000"}
	if !s.CanDeliverTo("36542000") {
		t.Fatal("expected formatted served entry to match a plain CEP")
	}
}

func TestCanDeliverTo_EmptyServedList(t *testing.T) {
	s := Store{AcceptsDelivery: true}
	if s.CanDeliverTo("36542000") {
		t.Fatal("expected empty served list to deny delivery")
	}
}

func TestCanDeliverTo_DeliveryDisabled(t *testing.T) {
	s := Store{
		AcceptsDelivery:   false,
		ServedPostalCodes: []string{"36542000"},
	}
	if s.CanDeliverTo("36542000") {
		t.Fatal("expected delivery-disabled store to deny")
	}
}

func TestCanOrderAt(t *testing.T) {
	s := Store{
		AcceptsDelivery:   true,
		ServedPostalCodes: []string{"36542000"},
		IntervalSchedule:  IntervalSchedule{{From: "09:00", To: "18:00"}},
	}

	if !s.CanOrderAt("36542000", at(t, 12, 0)) {
		t.Fatal("expected order allowed while open and served")
	}
	if s.CanOrderAt("36542000", at(t, 20, 0)) {
		t.Fatal("expected order denied while closed")
	}
	if s.CanOrderAt("99999999", at(t, 12, 0)) {
		t.Fatal("expected order denied for unserved CEP")
	}
}

func TestNormalizeCEP(t *testing.T) {
	cases := map[string]string{
		"36.542-000": "36542000",
		"36542000":   "36542000",
		" 36542-000": "36542000",
		"abc":        "",
	}
	for in, want := range cases {
		if got := NormalizeCEP(in); got != want {
			t.Fatalf("NormalizeCEP(%q) = %q, want %q", in, got, want)
		}
	}
}
