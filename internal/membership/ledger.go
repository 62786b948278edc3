package membership

import (
	"sort"
	"time"

	"github.com/antologiabox23-boop/antologia-pro/internal/attendance"
	"github.com/antologiabox23-boop/antologia-pro/internal/payment"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

// Ledger is an immutable per-request snapshot of payment and attendance
// history, indexed by member.
type Ledger struct {
	payments   map[string][]payment.Payment
	attendance map[string][]attendance.Record
}

func NewLedger(payments []payment.Payment, records []attendance.Record) *Ledger {
	l := &Ledger{
		payments:   make(map[string][]payment.Payment),
		attendance: make(map[string][]attendance.Record),
	}

	for _, p := range payments {
		l.payments[p.UserID] = append(l.payments[p.UserID], p)
	}
	for _, rec := range records {
		l.attendance[rec.UserID] = append(l.attendance[rec.UserID], rec)
	}

	for userID := range l.payments {
		ps := l.payments[userID]
		sort.SliceStable(ps, func(i, j int) bool {
			si, sj := ps[i].StartDate, ps[j].StartDate
			if si == nil {
				return false
			}
			if sj == nil {
				return true
			}
			return si.After(*sj)
		})
	}

	return l
}

// MostRecentPayment returns the member's covered payment with the latest
// start date, or nil when the member has no covered payments.
func (l *Ledger) MostRecentPayment(userID string) *payment.Payment {
	for i := range l.payments[userID] {
		p := l.payments[userID][i]
		if p.HasCoverage() {
			return &p
		}
	}
	return nil
}

// LastPresent returns the date of the member's most recent present mark,
// or nil when the member has never attended.
func (l *Ledger) LastPresent(userID string) *time.Time {
	var last *time.Time
	for i := range l.attendance[userID] {
		rec := l.attendance[userID][i]
		if rec.Status != attendance.StatusPresent {
			continue
		}
		if last == nil || rec.Date.After(*last) {
			d := rec.Date
			last = &d
		}
	}
	return last
}

// CountPresentBetween counts present marks with start <= date <= end.
func (l *Ledger) CountPresentBetween(userID string, start, end time.Time) int {
	count := 0
	for _, rec := range l.attendance[userID] {
		if rec.Status != attendance.StatusPresent {
			continue
		}
		d := vigency.DateOnly(rec.Date)
		if !d.Before(start) && !d.After(end) {
			count++
		}
	}
	return count
}

// CountPresentAfter counts present marks strictly after the given date.
func (l *Ledger) CountPresentAfter(userID string, after time.Time) int {
	count := 0
	for _, rec := range l.attendance[userID] {
		if rec.Status != attendance.StatusPresent {
			continue
		}
		if vigency.DateOnly(rec.Date).After(after) {
			count++
		}
	}
	return count
}
