package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

type Record struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Date      time.Time `db:"date" json:"date"`
	Status    Status    `db:"status" json:"status"`
	Time      *string   `db:"time" json:"time,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type MarkRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Date   string  `json:"date" binding:"required"`
	Status Status  `json:"status" binding:"required,oneof=present absent"`
	Time   *string `json:"time,omitempty"`
}

type MarkAllRequest struct {
	Date string `json:"date" binding:"required"`
}

// ReportRow aggregates one member's attendance over a date range.
type ReportRow struct {
	UserID       string `db:"user_id" json:"user_id"`
	Name         string `db:"name" json:"name"`
	PresentCount int    `db:"present_count" json:"present_count"`
	AbsentCount  int    `db:"absent_count" json:"absent_count"`
}

type Report struct {
	From time.Time   `json:"from"`
	To   time.Time   `json:"to"`
	Rows []ReportRow `json:"rows"`
}
