package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const attendanceColumns = `id, user_id, date, status, time, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, rec Record) (*Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	saved := &Record{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO attendance (id, user_id, date, status, time)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date)
		DO UPDATE SET status = EXCLUDED.status, time = EXCLUDED.time
		RETURNING `+attendanceColumns+`
	`, rec.ID, rec.UserID, rec.Date, rec.Status, rec.Time).StructScan(saved)

	return saved, err
}

func (r *repository) ListByDate(ctx context.Context, date time.Time) ([]Record, error) {
	records := []Record{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE date = $1
		ORDER BY user_id
	`, date)
	return records, err
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	records := []Record{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE user_id = $1
		ORDER BY date DESC
	`, userID)
	return records, err
}

func (r *repository) ListByUsers(ctx context.Context, userIDs []string) ([]Record, error) {
	if len(userIDs) == 0 {
		return []Record{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE user_id IN (?)
		ORDER BY user_id, date DESC
	`, userIDs)
	if err != nil {
		return nil, err
	}

	records := []Record{}
	err = r.db.SelectContext(ctx, &records, r.db.Rebind(query), args...)
	return records, err
}

func (r *repository) MostRecentPresent(ctx context.Context, userID string) (*time.Time, error) {
	var date time.Time
	err := r.db.GetContext(ctx, &date, `
		SELECT date
		FROM attendance
		WHERE user_id = $1 AND status = 'present'
		ORDER BY date DESC
		LIMIT 1
	`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func (r *repository) Report(ctx context.Context, from, to time.Time) ([]ReportRow, error) {
	rows := []ReportRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT a.user_id,
		       u.name,
		       COUNT(*) FILTER (WHERE a.status = 'present') AS present_count,
		       COUNT(*) FILTER (WHERE a.status = 'absent') AS absent_count
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.date >= $1 AND a.date <= $2
		GROUP BY a.user_id, u.name
		ORDER BY present_count DESC, u.name
	`, from, to)
	return rows, err
}
