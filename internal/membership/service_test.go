package membership

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antologiabox23-boop/antologia-pro/internal/attendance"
	"github.com/antologiabox23-boop/antologia-pro/internal/payment"
	"github.com/antologiabox23-boop/antologia-pro/internal/user"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepository) ListActive(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepository) DocumentExists(ctx context.Context, document string) (bool, error) {
	args := m.Called(ctx, document)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetStatus(ctx context.Context, id string, status user.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p payment.Payment) (*payment.Payment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p payment.Payment) (*payment.Payment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id string) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID string) ([]payment.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByUsers(ctx context.Context, userIDs []string) ([]payment.Payment, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) MostRecentByUser(ctx context.Context, userID string) (*payment.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Summarize(ctx context.Context, from, to time.Time) (*payment.Summary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Summary), args.Error(1)
}

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (*attendance.Record, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Record), args.Error(1)
}

func (m *MockAttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attendance.Record), args.Error(1)
}

func (m *MockAttendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Record, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attendance.Record), args.Error(1)
}

func (m *MockAttendanceRepository) ListByUsers(ctx context.Context, userIDs []string) ([]attendance.Record, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attendance.Record), args.Error(1)
}

func (m *MockAttendanceRepository) MostRecentPresent(ctx context.Context, userID string) (*time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockAttendanceRepository) Report(ctx context.Context, from, to time.Time) ([]attendance.ReportRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attendance.ReportRow), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendInactivityReminder(ctx context.Context, email, name string, daysSinceLastVisit *int) error {
	return m.Called(ctx, email, name, daysSinceLastVisit).Error(0)
}

func strPtr(s string) *string { return &s }

func TestMemberStatus_ExpiredWithAttendanceCounts(t *testing.T) {
	userRepo := new(MockUserRepository)
	paymentRepo := new(MockPaymentRepository)
	attendanceRepo := new(MockAttendanceRepository)

	userRepo.On("FindByID", mock.Anything, "u1").
		Return(&user.User{ID: "u1", Name: "Laura", AffiliationType: "Mensualidad", Status: user.StatusActive}, nil)
	paymentRepo.On("ListByUser", mock.Anything, "u1").Return([]payment.Payment{
		{
			ID: "p1", UserID: "u1", PaymentType: vigency.TypeMonthly,
			StartDate: datePtr(2024, time.January, 10), EndDate: datePtr(2024, time.February, 9),
		},
	}, nil)
	attendanceRepo.On("ListByUser", mock.Anything, "u1").Return([]attendance.Record{
		present("u1", 2024, time.January, 15),
		present("u1", 2024, time.February, 9),
		present("u1", 2024, time.February, 20),
	}, nil)

	svc := NewService(userRepo, paymentRepo, attendanceRepo, nil, 0)
	status, err := svc.MemberStatus(context.Background(), "u1", date(2024, time.February, 20))

	require.NoError(t, err)
	assert.Equal(t, StateExpired, status.State)
	assert.Equal(t, 11, status.DaysOverdue)
	assert.Equal(t, 2, status.CoveredAttendanceCount)
	assert.Equal(t, 1, status.AfterExpiryAttendanceCount)
	require.NotNil(t, status.Window)
	assert.Equal(t, date(2024, time.February, 9), status.Window.EndDate)
}

func TestMemberStatus_Uncovered(t *testing.T) {
	userRepo := new(MockUserRepository)
	paymentRepo := new(MockPaymentRepository)
	attendanceRepo := new(MockAttendanceRepository)

	userRepo.On("FindByID", mock.Anything, "u1").
		Return(&user.User{ID: "u1", Name: "Laura"}, nil)
	paymentRepo.On("ListByUser", mock.Anything, "u1").Return([]payment.Payment{}, nil)
	attendanceRepo.On("ListByUser", mock.Anything, "u1").Return([]attendance.Record{}, nil)

	svc := NewService(userRepo, paymentRepo, attendanceRepo, nil, 0)
	status, err := svc.MemberStatus(context.Background(), "u1", date(2024, time.February, 20))

	require.NoError(t, err)
	assert.Equal(t, StateUncovered, status.State)
	assert.Zero(t, status.CoveredAttendanceCount)
}

func TestMemberStatus_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	paymentRepo := new(MockPaymentRepository)
	attendanceRepo := new(MockAttendanceRepository)

	userRepo.On("FindByID", mock.Anything, "missing").Return(nil, user.ErrUserNotFound)

	svc := NewService(userRepo, paymentRepo, attendanceRepo, nil, 0)
	_, err := svc.MemberStatus(context.Background(), "missing", date(2024, time.February, 20))

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestAlerts(t *testing.T) {
	userRepo := new(MockUserRepository)
	paymentRepo := new(MockPaymentRepository)
	attendanceRepo := new(MockAttendanceRepository)

	userRepo.On("ListActive", mock.Anything).Return([]user.User{
		activeUser("u1", "Regular"),
		activeUser("u2", "Ghost"),
	}, nil)
	attendanceRepo.On("ListByUsers", mock.Anything, []string{"u1", "u2"}).
		Return([]attendance.Record{present("u1", 2024, time.February, 19)}, nil)

	svc := NewService(userRepo, paymentRepo, attendanceRepo, nil, 0)
	alerts, err := svc.Alerts(context.Background(), date(2024, time.February, 20), 0)

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "u2", alerts[0].UserID)
}

func TestStats(t *testing.T) {
	userRepo := new(MockUserRepository)
	paymentRepo := new(MockPaymentRepository)
	attendanceRepo := new(MockAttendanceRepository)

	trainer := user.User{
		ID: "t1", Name: "Coach",
		AffiliationType: user.AffiliationTrainer,
		Status:          user.StatusActive,
	}
	userRepo.On("ListActive", mock.Anything).Return([]user.User{
		activeUser("u1", "Covered"),
		activeUser("u2", "Expired"),
		activeUser("u3", "Uncovered"),
		trainer,
	}, nil)
	paymentRepo.On("ListByUsers", mock.Anything, []string{"u1", "u2", "u3"}).
		Return([]payment.Payment{
			{
				ID: "p1", UserID: "u1", PaymentType: vigency.TypeMonthly,
				StartDate: datePtr(2024, time.February, 10), EndDate: datePtr(2024, time.March, 9),
			},
			{
				ID: "p2", UserID: "u2", PaymentType: vigency.TypeMonthly,
				StartDate: datePtr(2024, time.January, 1), EndDate: datePtr(2024, time.January, 31),
			},
		}, nil)
	attendanceRepo.On("ListByUsers", mock.Anything, []string{"u1", "u2", "u3"}).
		Return([]attendance.Record{present("u1", 2024, time.February, 19)}, nil)

	svc := NewService(userRepo, paymentRepo, attendanceRepo, nil, 0)
	stats, err := svc.Stats(context.Background(), date(2024, time.February, 20))

	require.NoError(t, err)
	assert.Equal(t, 3, stats.ActiveMembers, "trainer must not be counted")
	assert.Equal(t, 1, stats.Covered)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 1, stats.Uncovered)
	assert.Equal(t, 2, stats.InactiveCount, "u2 and u3 never attended")
}

func TestNotifyInactive(t *testing.T) {
	userRepo := new(MockUserRepository)
	paymentRepo := new(MockPaymentRepository)
	attendanceRepo := new(MockAttendanceRepository)
	notifier := new(MockNotifier)

	u := activeUser("u1", "Laura")
	u.Email = strPtr("laura@example.com")
	userRepo.On("FindByID", mock.Anything, "u1").Return(&u, nil)

	last := date(2024, time.February, 10)
	attendanceRepo.On("MostRecentPresent", mock.Anything, "u1").Return(&last, nil)
	notifier.On("SendInactivityReminder", mock.Anything, "laura@example.com", "Laura",
		mock.MatchedBy(func(days *int) bool { return days != nil && *days == 10 })).
		Return(nil)

	svc := NewService(userRepo, paymentRepo, attendanceRepo, notifier, 0)
	err := svc.NotifyInactive(context.Background(), "u1", date(2024, time.February, 20))

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestNotifyInactive_NoEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	paymentRepo := new(MockPaymentRepository)
	attendanceRepo := new(MockAttendanceRepository)
	notifier := new(MockNotifier)

	u := activeUser("u1", "Laura")
	userRepo.On("FindByID", mock.Anything, "u1").Return(&u, nil)

	svc := NewService(userRepo, paymentRepo, attendanceRepo, notifier, 0)
	err := svc.NotifyInactive(context.Background(), "u1", date(2024, time.February, 20))

	assert.ErrorIs(t, err, ErrNoEmail)
	notifier.AssertNotCalled(t, "SendInactivityReminder",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyInactive_Trainer(t *testing.T) {
	userRepo := new(MockUserRepository)
	paymentRepo := new(MockPaymentRepository)
	attendanceRepo := new(MockAttendanceRepository)
	notifier := new(MockNotifier)

	trainer := user.User{
		ID: "t1", Name: "Coach",
		Email:           strPtr("coach@example.com"),
		AffiliationType: user.AffiliationTrainer,
		Status:          user.StatusActive,
	}
	userRepo.On("FindByID", mock.Anything, "t1").Return(&trainer, nil)

	svc := NewService(userRepo, paymentRepo, attendanceRepo, notifier, 0)
	err := svc.NotifyInactive(context.Background(), "t1", date(2024, time.February, 20))

	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestNotifyInactive_NeverAttended(t *testing.T) {
	userRepo := new(MockUserRepository)
	paymentRepo := new(MockPaymentRepository)
	attendanceRepo := new(MockAttendanceRepository)
	notifier := new(MockNotifier)

	u := activeUser("u1", "Laura")
	u.Email = strPtr("laura@example.com")
	userRepo.On("FindByID", mock.Anything, "u1").Return(&u, nil)
	attendanceRepo.On("MostRecentPresent", mock.Anything, "u1").Return(nil, nil)
	notifier.On("SendInactivityReminder", mock.Anything, "laura@example.com", "Laura",
		mock.MatchedBy(func(days *int) bool { return days == nil })).
		Return(nil)

	svc := NewService(userRepo, paymentRepo, attendanceRepo, notifier, 0)
	err := svc.NotifyInactive(context.Background(), "u1", date(2024, time.February, 20))

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
