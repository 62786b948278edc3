package payment

import (
	"time"

	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

type Payment struct {
	ID            string              `db:"id" json:"id"`
	UserID        string              `db:"user_id" json:"user_id"`
	PaymentType   vigency.PaymentType `db:"payment_type" json:"payment_type"`
	Amount        float64             `db:"amount" json:"amount"`
	PaymentMethod string              `db:"payment_method" json:"payment_method"`
	PaymentDate   time.Time           `db:"payment_date" json:"payment_date"`
	StartDate     *time.Time          `db:"start_date" json:"start_date,omitempty"`
	EndDate       *time.Time          `db:"end_date" json:"end_date,omitempty"`
	Notes         *string             `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
}

// HasCoverage reports whether the payment carries a usable coverage window.
func (p Payment) HasCoverage() bool {
	return p.StartDate != nil && p.EndDate != nil &&
		!p.StartDate.IsZero() && !p.EndDate.IsZero()
}

type RecordPaymentRequest struct {
	UserID        string  `json:"user_id" binding:"required"`
	PaymentType   string  `json:"payment_type" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gte=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	StartDate     string  `json:"start_date,omitempty"`
	EndDate       string  `json:"end_date,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type UpdatePaymentRequest struct {
	PaymentType   string  `json:"payment_type" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gte=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	PaymentDate   string  `json:"payment_date" binding:"required"`
	StartDate     string  `json:"start_date,omitempty"`
	EndDate       string  `json:"end_date,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// TypeSummary is one row of the income report breakdown.
type TypeSummary struct {
	PaymentType vigency.PaymentType `db:"payment_type" json:"payment_type"`
	Count       int                 `db:"count" json:"count"`
	Total       float64             `db:"total" json:"total"`
}

type Summary struct {
	From   time.Time     `json:"from"`
	To     time.Time     `json:"to"`
	Total  float64       `json:"total"`
	Count  int           `json:"count"`
	ByType []TypeSummary `json:"by_type"`
}
