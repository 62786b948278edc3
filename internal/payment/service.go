package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/antologiabox23-boop/antologia-pro/internal/logger"
	"github.com/antologiabox23-boop/antologia-pro/internal/user"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

var ErrInvalidDateRange = errors.New("start date must not be after end date")

// Notifier queues outbound member notifications. Implemented by the notify
// package; a nil Notifier disables receipts.
type Notifier interface {
	SendPaymentReceipt(ctx context.Context, email, name string, p Payment) error
}

type Service interface {
	Record(ctx context.Context, req RecordPaymentRequest) (*Payment, error)
	Update(ctx context.Context, id string, req UpdatePaymentRequest) (*Payment, error)
	Get(ctx context.Context, id string) (*Payment, error)
	ListByUser(ctx context.Context, userID string) ([]Payment, error)
	Delete(ctx context.Context, id string) error
	SuggestDates(ctx context.Context, userID string, paymentType string) (vigency.Suggestion, error)
	Summarize(ctx context.Context, from, to time.Time) (*Summary, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, userRepo user.Repository, notifier Notifier) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) Record(ctx context.Context, req RecordPaymentRequest) (*Payment, error) {
	u, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	p, err := s.buildPayment(req.PaymentType, req.PaymentDate, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	p.UserID = req.UserID
	p.Amount = req.Amount
	p.PaymentMethod = req.PaymentMethod
	p.Notes = req.Notes

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil && u.Email != nil && *u.Email != "" {
		if err := s.notifier.SendPaymentReceipt(ctx, *u.Email, u.Name, *created); err != nil {
			logger.Errorf("Failed to queue payment receipt for %s: %v", u.ID, err)
		}
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePaymentRequest) (*Payment, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.buildPayment(req.PaymentType, req.PaymentDate, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.UserID = existing.UserID
	p.Amount = req.Amount
	p.PaymentMethod = req.PaymentMethod
	p.Notes = req.Notes

	return s.repo.Update(ctx, p)
}

// buildPayment resolves the coverage window for a payment. The payment date
// defaults to today. A provided start date shifts the window and the end is
// recomputed from it; a provided end date is taken as-is after a range check.
func (s *service) buildPayment(paymentType, paymentDate, startDate, endDate string) (Payment, error) {
	t := vigency.PaymentType(paymentType)
	if !vigency.IsKnown(t) {
		return Payment{}, fmt.Errorf("%w: %q", vigency.ErrUnknownPaymentType, paymentType)
	}

	payDate := vigency.DateOnly(s.now())
	if paymentDate != "" {
		var err error
		payDate, err = vigency.ParseDate(paymentDate)
		if err != nil {
			return Payment{}, err
		}
	}

	start := payDate
	if startDate != "" {
		var err error
		start, err = vigency.ParseDate(startDate)
		if err != nil {
			return Payment{}, err
		}
	}

	var end time.Time
	if endDate != "" {
		var err error
		end, err = vigency.ParseDate(endDate)
		if err != nil {
			return Payment{}, err
		}
		if start.After(end) {
			return Payment{}, ErrInvalidDateRange
		}
	} else {
		var err error
		end, err = vigency.ComputeEndDate(start, t)
		if err != nil {
			return Payment{}, err
		}
	}

	return Payment{
		PaymentType: t,
		PaymentDate: payDate,
		StartDate:   &start,
		EndDate:     &end,
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*Payment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Payment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) SuggestDates(ctx context.Context, userID string, paymentType string) (vigency.Suggestion, error) {
	t := vigency.PaymentType(paymentType)
	if !vigency.IsKnown(t) {
		return vigency.Suggestion{}, fmt.Errorf("%w: %q", vigency.ErrUnknownPaymentType, paymentType)
	}

	last, err := s.repo.MostRecentByUser(ctx, userID)
	if err != nil {
		return vigency.Suggestion{}, err
	}

	var lastEnd *time.Time
	if last != nil && last.HasCoverage() {
		lastEnd = last.EndDate
	}

	return vigency.SuggestContinuation(lastEnd, t, s.now())
}

func (s *service) Summarize(ctx context.Context, from, to time.Time) (*Summary, error) {
	return s.repo.Summarize(ctx, from, to)
}
