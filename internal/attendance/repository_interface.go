package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert records attendance for a user on a date, replacing any
	// existing mark for that day.
	Upsert(ctx context.Context, rec Record) (*Record, error)
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	ListByUsers(ctx context.Context, userIDs []string) ([]Record, error)
	// MostRecentPresent returns the date of the user's latest present
	// mark, or nil when the user has never attended.
	MostRecentPresent(ctx context.Context, userID string) (*time.Time, error)
	Report(ctx context.Context, from, to time.Time) ([]ReportRow, error)
}
