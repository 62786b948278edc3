package payment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Payment) (*Payment, error)
	Update(ctx context.Context, p Payment) (*Payment, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Payment, error)
	ListByUser(ctx context.Context, userID string) ([]Payment, error)
	ListByUsers(ctx context.Context, userIDs []string) ([]Payment, error)
	// MostRecentByUser returns the user's covered payment with the latest
	// start date, or nil when the user has no covered payments.
	MostRecentByUser(ctx context.Context, userID string) (*Payment, error)
	Summarize(ctx context.Context, from, to time.Time) (*Summary, error)
}
