package attendance

import (
	"context"
	"time"

	"github.com/antologiabox23-boop/antologia-pro/internal/user"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

type Service interface {
	Mark(ctx context.Context, req MarkRequest) (*Record, error)
	// MarkAllPresent marks every active non-trainer member present on the
	// given date and returns the number of marks written.
	MarkAllPresent(ctx context.Context, date time.Time) (int, error)
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	Report(ctx context.Context, from, to time.Time) (*Report, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
}

func NewService(repo Repository, userRepo user.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

func (s *service) Mark(ctx context.Context, req MarkRequest) (*Record, error) {
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	date, err := vigency.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	return s.repo.Upsert(ctx, Record{
		UserID: req.UserID,
		Date:   date,
		Status: req.Status,
		Time:   req.Time,
	})
}

func (s *service) MarkAllPresent(ctx context.Context, date time.Time) (int, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, u := range users {
		if u.AffiliationType == user.AffiliationTrainer {
			continue
		}
		if _, err := s.repo.Upsert(ctx, Record{
			UserID: u.ID,
			Date:   date,
			Status: StatusPresent,
		}); err != nil {
			return marked, err
		}
		marked++
	}
	return marked, nil
}

func (s *service) ListByDate(ctx context.Context, date time.Time) ([]Record, error) {
	return s.repo.ListByDate(ctx, date)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Report(ctx context.Context, from, to time.Time) (*Report, error) {
	rows, err := s.repo.Report(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &Report{From: from, To: to, Rows: rows}, nil
}
