package store

import (
	"strings"
	"time"
)

// IsOpenAt checks the weekday entry for t. A missing or nil day means
// closed; the window bounds are inclusive.
func (ws *WeeklySchedule) IsOpenAt(t time.Time) bool {
	if ws == nil {
		return false
	}
	hours := ws.day(t.Weekday())
	if hours == nil {
		return false
	}

	m := minutesOfDay(t)
	return m >= parseClock(hours.OpensAt) && m <= parseClock(hours.ClosesAt)
}

// IsOpenAt reports whether any interval covers t. Intervals apply every
// day and may wrap past midnight.
func (iv IntervalSchedule) IsOpenAt(t time.Time) bool {
	m := minutesOfDay(t)
	for _, in := range iv {
		from := parseClock(in.From)
		to := parseClock(in.To)

		if from <= to {
			if m >= from && m <= to {
				return true
			}
			continue
		}
		// window crosses midnight: open from `from` until `to` next day
		if m >= from || m <= to {
			return true
		}
	}
	return false
}

// IsOpenAt resolves the store schedule: the weekly format wins when set,
// older stores fall back to the legacy interval list. No schedule at all
// means closed.
func (s Store) IsOpenAt(t time.Time) bool {
	if s.WeeklySchedule != nil {
		return s.WeeklySchedule.IsOpenAt(t)
	}
	if len(s.IntervalSchedule) > 0 {
		return s.IntervalSchedule.IsOpenAt(t)
	}
	return false
}

// CanDeliverTo matches cep against the served-CEP list, ignoring
// formatting on both sides. An empty list never delivers, even when the
// store accepts delivery.
func (s Store) CanDeliverTo(cep string) bool {
	if !s.AcceptsDelivery {
		return false
	}

	target := NormalizeCEP(cep)
	if len(target) != 8 {
		return false
	}

	for _, served := range s.ServedPostalCodes {
		if NormalizeCEP(served) == target {
			return true
		}
	}
	return false
}

// CanOrderAt gates the checkout flow: the store must be open now and
// deliver to the customer's CEP.
func (s Store) CanOrderAt(cep string, t time.Time) bool {
	return s.IsOpenAt(t) && s.CanDeliverTo(cep)
}

// NormalizeCEP strips everything but digits, so "36.542-000" and
// "36542000" compare equal.
func NormalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// parseClock converts "HH:MM" to minutes since midnight. Malformed parts
// count as zero, matching how the stored schedules have always been read.
func parseClock(s string) int {
	parts := strings.SplitN(s, ":", 2)
	h := atoiOrZero(parts[0])
	m := 0
	if len(parts) == 2 {
		m = atoiOrZero(parts[1])
	}
	return h*60 + m
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
