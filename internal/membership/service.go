package membership

import (
	"context"
	"errors"
	"time"

	"github.com/antologiabox23-boop/antologia-pro/internal/attendance"
	"github.com/antologiabox23-boop/antologia-pro/internal/logger"
	"github.com/antologiabox23-boop/antologia-pro/internal/metrics"
	"github.com/antologiabox23-boop/antologia-pro/internal/payment"
	"github.com/antologiabox23-boop/antologia-pro/internal/user"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

var (
	ErrNotEligible = errors.New("member is not compliance eligible")
	ErrNoEmail     = errors.New("member has no email address")
)

// Notifier queues inactivity reminders. Implemented by the notify package.
type Notifier interface {
	SendInactivityReminder(ctx context.Context, email, name string, daysSinceLastVisit *int) error
}

type Service interface {
	MemberStatus(ctx context.Context, userID string, asOf time.Time) (*VigencyStatus, error)
	Alerts(ctx context.Context, asOf time.Time, threshold int) ([]Alert, error)
	Stats(ctx context.Context, asOf time.Time) (*Stats, error)
	NotifyInactive(ctx context.Context, userID string, asOf time.Time) error
}

type service struct {
	userRepo       user.Repository
	paymentRepo    payment.Repository
	attendanceRepo attendance.Repository
	notifier       Notifier
	threshold      int
}

func NewService(
	userRepo user.Repository,
	paymentRepo payment.Repository,
	attendanceRepo attendance.Repository,
	notifier Notifier,
	threshold int,
) Service {
	if threshold <= 0 {
		threshold = DefaultInactivityThreshold
	}
	return &service{
		userRepo:       userRepo,
		paymentRepo:    paymentRepo,
		attendanceRepo: attendanceRepo,
		notifier:       notifier,
		threshold:      threshold,
	}
}

func (s *service) MemberStatus(ctx context.Context, userID string, asOf time.Time) (*VigencyStatus, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger(payments, records)
	status, err := Classify(u.ID, ledger.MostRecentPayment(u.ID), asOf)
	if err != nil {
		return nil, err
	}

	if status.Window != nil {
		status.CoveredAttendanceCount = ledger.CountPresentBetween(
			u.ID, status.Window.StartDate, status.Window.EndDate)
		status.AfterExpiryAttendanceCount = ledger.CountPresentAfter(
			u.ID, status.Window.EndDate)
	}

	return &status, nil
}

func (s *service) Alerts(ctx context.Context, asOf time.Time, threshold int) ([]Alert, error) {
	if threshold <= 0 {
		threshold = s.threshold
	}

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	ledger, err := s.loadAttendanceLedger(ctx, users)
	if err != nil {
		return nil, err
	}

	alerts := ComputeAlerts(users, ledger, threshold, asOf)
	metrics.RecordAlertCount(len(alerts))

	return alerts, nil
}

func (s *service) Stats(ctx context.Context, asOf time.Time) (*Stats, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		if IsComplianceEligible(u) {
			ids = append(ids, u.ID)
		}
	}

	payments, err := s.paymentRepo.ListByUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListByUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger(payments, records)
	stats := &Stats{AsOf: asOf}

	for _, u := range users {
		if !IsComplianceEligible(u) {
			continue
		}
		stats.ActiveMembers++

		status, err := Classify(u.ID, ledger.MostRecentPayment(u.ID), asOf)
		if err != nil {
			logger.Errorf("Failed to classify member %s: %v", u.ID, err)
			continue
		}

		switch status.State {
		case StateActive:
			stats.Covered++
		case StateExpiringToday:
			stats.ExpiringToday++
		case StateExpired:
			stats.Expired++
		case StateUncovered:
			stats.Uncovered++
		}
	}

	stats.InactiveCount = len(ComputeAlerts(users, ledger, s.threshold, asOf))

	return stats, nil
}

func (s *service) NotifyInactive(ctx context.Context, userID string, asOf time.Time) error {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !IsComplianceEligible(*u) {
		return ErrNotEligible
	}
	if u.Email == nil || *u.Email == "" {
		return ErrNoEmail
	}

	last, err := s.attendanceRepo.MostRecentPresent(ctx, u.ID)
	if err != nil {
		return err
	}

	var daysSince *int
	if last != nil {
		d := vigency.DiffDays(asOf, *last)
		daysSince = &d
	}

	return s.notifier.SendInactivityReminder(ctx, *u.Email, u.Name, daysSince)
}

func (s *service) loadAttendanceLedger(ctx context.Context, users []user.User) (*Ledger, error) {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if IsComplianceEligible(u) {
			ids = append(ids, u.ID)
		}
	}

	records, err := s.attendanceRepo.ListByUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	return NewLedger(nil, records), nil
}
