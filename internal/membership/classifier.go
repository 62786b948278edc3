package membership

import (
	"errors"
	"time"

	"github.com/antologiabox23-boop/antologia-pro/internal/payment"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

var ErrMissingCoverageWindow = errors.New("payment has no coverage window")

// Classify derives a member's vigency state from their most recent covered
// payment. A nil payment classifies as uncovered. Expiry is exclusive of the
// end date: the member is active up to and including the day the window
// ends, and overdue starting the day after.
func Classify(userID string, p *payment.Payment, asOf time.Time) (VigencyStatus, error) {
	status := VigencyStatus{
		UserID: userID,
		AsOf:   vigency.DateOnly(asOf),
	}

	if p == nil {
		status.State = StateUncovered
		return status, nil
	}
	if !p.HasCoverage() {
		return VigencyStatus{}, ErrMissingCoverageWindow
	}

	start := vigency.DateOnly(*p.StartDate)
	end := vigency.DateOnly(*p.EndDate)
	status.Window = &VigencyWindow{
		StartDate:   start,
		EndDate:     end,
		PaymentType: p.PaymentType,
	}

	diff := vigency.DiffDays(status.AsOf, end)
	switch {
	case diff < 0:
		status.State = StateActive
	case diff == 0:
		status.State = StateExpiringToday
	default:
		status.State = StateExpired
		status.DaysOverdue = diff
	}

	return status, nil
}
