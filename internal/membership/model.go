package membership

import (
	"time"

	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

type VigencyState string

const (
	// StateUncovered means the member has no payment with a coverage window.
	StateUncovered VigencyState = "uncovered"
	// StateActive means today falls strictly before the coverage end date.
	StateActive VigencyState = "active"
	// StateExpiringToday means the coverage window ends today.
	StateExpiringToday VigencyState = "expiring_today"
	// StateExpired means the coverage window ended in the past.
	StateExpired VigencyState = "expired"
)

type VigencyWindow struct {
	StartDate   time.Time           `json:"start_date"`
	EndDate     time.Time           `json:"end_date"`
	PaymentType vigency.PaymentType `json:"payment_type"`
}

type VigencyStatus struct {
	UserID      string         `json:"user_id"`
	AsOf        time.Time      `json:"as_of"`
	State       VigencyState   `json:"state"`
	DaysOverdue int            `json:"days_overdue"`
	Window      *VigencyWindow `json:"window,omitempty"`

	// Attendance counted against the coverage window.
	CoveredAttendanceCount     int `json:"covered_attendance_count"`
	AfterExpiryAttendanceCount int `json:"after_expiry_attendance_count"`
}

// Alert flags a member who has not attended recently. A nil
// DaysSinceLastVisit means the member has never attended.
type Alert struct {
	UserID             string     `json:"user_id"`
	Name               string     `json:"name"`
	Email              *string    `json:"email,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	LastVisit          *time.Time `json:"last_visit,omitempty"`
	DaysSinceLastVisit *int       `json:"days_since_last_visit,omitempty"`
}

type Stats struct {
	AsOf          time.Time `json:"as_of"`
	ActiveMembers int       `json:"active_members"`
	Covered       int       `json:"covered"`
	ExpiringToday int       `json:"expiring_today"`
	Expired       int       `json:"expired"`
	Uncovered     int       `json:"uncovered"`
	InactiveCount int       `json:"inactive_count"`
}
