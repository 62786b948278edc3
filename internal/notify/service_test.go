package notify

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/antologiabox23-boop/antologia-pro/internal/logger"
	"github.com/antologiabox23-boop/antologia-pro/internal/payment"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func newTestService(rdb *redis.Client) *Service {
	return &Service{
		redis:    rdb,
		gymName:  "Antología Box 23",
		from:     "noreply@antologiabox23.com",
		fromName: "Antología Box 23",
		smtpHost: "smtp.test.com",
		smtpPort: "587",
		smtpUser: "test@example.com",
		smtpPass: "password",
	}
}

func intPtr(i int) *int { return &i }

func TestSendPaymentReceipt(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*payment_receipt.*`).SetVal(1)

	svc := newTestService(db)

	start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 9, 0, 0, 0, 0, time.UTC)
	err := svc.SendPaymentReceipt(ctx, "laura@example.com", "Laura", payment.Payment{
		ID:            "p1",
		PaymentType:   vigency.TypeMonthly,
		Amount:        90000,
		PaymentMethod: "Efectivo",
		StartDate:     &start,
		EndDate:       &end,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendInactivityReminder(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*inactivity.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendInactivityReminder(ctx, "laura@example.com", "Laura", intPtr(10))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendInactivityReminder_NeverAttended(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*inactivity.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendInactivityReminder(ctx, "laura@example.com", "Laura", nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(queueKey).SetVal(5)

	svc := newTestService(db)

	assert.Equal(t, int64(5), svc.QueueLength(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnqueueError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(assert.AnError)

	svc := newTestService(db)

	err := svc.SendInactivityReminder(ctx, "laura@example.com", "Laura", intPtr(10))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
