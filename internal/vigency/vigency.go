package vigency

import (
	"errors"
	"fmt"
	"time"
)

type PaymentType string

const (
	// Single-day types: coverage is exactly the day of purchase.
	TypeDropInClass  PaymentType = "Clase suelta"
	TypeCashMovement PaymentType = "Movimientos caja"

	// Continuous rolling-period types: coverage spans one month and
	// renewals chain end-to-end.
	TypeMonthly      PaymentType = "Mensualidad"
	TypeTenClassPack PaymentType = "Paquete 10 clases"
	TypePersonalized PaymentType = "Personalizado"
)

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrUnknownPaymentType = errors.New("unknown payment type")
)

var singleDayTypes = map[PaymentType]bool{
	TypeDropInClass:  true,
	TypeCashMovement: true,
}

var continuousTypes = map[PaymentType]bool{
	TypeMonthly:      true,
	TypeTenClassPack: true,
	TypePersonalized: true,
}

func IsSingleDay(t PaymentType) bool {
	return singleDayTypes[t]
}

func IsContinuous(t PaymentType) bool {
	return continuousTypes[t]
}

func IsKnown(t PaymentType) bool {
	return singleDayTypes[t] || continuousTypes[t]
}

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d.UTC(), nil
}

// DateOnly truncates a timestamp to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DiffDays returns a - b in whole calendar days.
func DiffDays(a, b time.Time) int {
	return int(DateOnly(a).Sub(DateOnly(b)).Hours() / 24)
}

// ComputeEndDate derives the coverage end date for a payment starting on
// start. Single-day types cover only the start day. Rolling-period types
// cover up to the same day of the next month minus one day; when that day
// does not exist in the next month (e.g. Jan 31), coverage ends on the
// last day of the next month instead.
func ComputeEndDate(start time.Time, t PaymentType) (time.Time, error) {
	if !IsKnown(t) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPaymentType, t)
	}
	if start.IsZero() {
		return time.Time{}, ErrInvalidDate
	}

	start = DateOnly(start)
	if IsSingleDay(t) {
		return start, nil
	}

	y, m, d := start.Date()
	target := time.Date(y, m+1, d, 0, 0, 0, 0, time.UTC)
	if target.Day() != d {
		// Day rolled over into month+2: use the last day of the next month.
		return time.Date(y, m+2, 0, 0, 0, 0, 0, time.UTC), nil
	}
	return target.AddDate(0, 0, -1), nil
}

// Suggestion holds the proposed dates for a new payment.
type Suggestion struct {
	PaymentDate time.Time `json:"payment_date"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// SuggestContinuation proposes dates for a new payment of type t. For a
// continuous type with a prior coverage window, the new window starts the
// day after the previous one ended, so back-to-back renewals tile the
// calendar even when recorded late. Otherwise both the payment date and
// the start date default to today.
func SuggestContinuation(lastEndDate *time.Time, t PaymentType, today time.Time) (Suggestion, error) {
	if !IsKnown(t) {
		return Suggestion{}, fmt.Errorf("%w: %q", ErrUnknownPaymentType, t)
	}
	if today.IsZero() {
		return Suggestion{}, ErrInvalidDate
	}

	today = DateOnly(today)
	start := today
	if IsContinuous(t) && lastEndDate != nil && !lastEndDate.IsZero() {
		start = DateOnly(*lastEndDate).AddDate(0, 0, 1)
	}

	end, err := ComputeEndDate(start, t)
	if err != nil {
		return Suggestion{}, err
	}

	return Suggestion{
		PaymentDate: today,
		StartDate:   start,
		EndDate:     end,
	}, nil
}
