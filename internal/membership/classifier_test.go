package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antologiabox23-boop/antologia-pro/internal/payment"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func coveredPayment(start, end time.Time) *payment.Payment {
	return &payment.Payment{
		ID:          "p1",
		UserID:      "u1",
		PaymentType: vigency.TypeMonthly,
		StartDate:   &start,
		EndDate:     &end,
	}
}

func TestClassify_NoPayment(t *testing.T) {
	status, err := Classify("u1", nil, date(2024, time.February, 20))

	require.NoError(t, err)
	assert.Equal(t, StateUncovered, status.State)
	assert.Nil(t, status.Window)
	assert.Zero(t, status.DaysOverdue)
}

func TestClassify_States(t *testing.T) {
	start := date(2024, time.January, 10)
	end := date(2024, time.February, 9)

	tests := []struct {
		name        string
		asOf        time.Time
		wantState   VigencyState
		wantOverdue int
	}{
		{"well before expiry", date(2024, time.January, 20), StateActive, 0},
		{"day before expiry", date(2024, time.February, 8), StateActive, 0},
		{"expires today", date(2024, time.February, 9), StateExpiringToday, 0},
		{"one day overdue", date(2024, time.February, 10), StateExpired, 1},
		{"eleven days overdue", date(2024, time.February, 20), StateExpired, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := Classify("u1", coveredPayment(start, end), tt.asOf)

			require.NoError(t, err)
			assert.Equal(t, tt.wantState, status.State)
			assert.Equal(t, tt.wantOverdue, status.DaysOverdue)
			require.NotNil(t, status.Window)
			assert.Equal(t, end, status.Window.EndDate)
		})
	}
}

func TestClassify_SingleDayCoverage(t *testing.T) {
	day := date(2024, time.June, 10)
	p := coveredPayment(day, day)
	p.PaymentType = vigency.TypeDropInClass

	status, err := Classify("u1", p, day)
	require.NoError(t, err)
	assert.Equal(t, StateExpiringToday, status.State)

	status, err = Classify("u1", p, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, StateExpired, status.State)
	assert.Equal(t, 1, status.DaysOverdue)
}

func TestClassify_MissingCoverageWindow(t *testing.T) {
	p := &payment.Payment{ID: "p1", UserID: "u1", PaymentType: vigency.TypeMonthly}

	_, err := Classify("u1", p, date(2024, time.February, 20))
	assert.ErrorIs(t, err, ErrMissingCoverageWindow)

	start := date(2024, time.January, 10)
	p.StartDate = &start
	_, err = Classify("u1", p, date(2024, time.February, 20))
	assert.ErrorIs(t, err, ErrMissingCoverageWindow)
}
