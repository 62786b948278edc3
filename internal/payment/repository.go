package payment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrPaymentNotFound = errors.New("payment not found")

const paymentColumns = `id, user_id, payment_type, amount, payment_method,
	payment_date, start_date, end_date, notes, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p Payment) (*Payment, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	created := &Payment{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO payments (id, user_id, payment_type, amount, payment_method,
			payment_date, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+paymentColumns+`
	`, p.ID, p.UserID, p.PaymentType, p.Amount, p.PaymentMethod,
		p.PaymentDate, p.StartDate, p.EndDate, p.Notes,
	).StructScan(created)

	return created, err
}

func (r *repository) Update(ctx context.Context, p Payment) (*Payment, error) {
	updated := &Payment{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE payments
		SET payment_type = $2,
		    amount = $3,
		    payment_method = $4,
		    payment_date = $5,
		    start_date = $6,
		    end_date = $7,
		    notes = $8
		WHERE id = $1
		RETURNING `+paymentColumns+`
	`, p.ID, p.PaymentType, p.Amount, p.PaymentMethod,
		p.PaymentDate, p.StartDate, p.EndDate, p.Notes,
	).StructScan(updated)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	return updated, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payment, error) {
	p := &Payment{}
	err := r.db.GetContext(ctx, p, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = $1
	`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	return p, err
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Payment, error) {
	payments := []Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE user_id = $1
		ORDER BY payment_date DESC, created_at DESC
	`, userID)
	return payments, err
}

func (r *repository) ListByUsers(ctx context.Context, userIDs []string) ([]Payment, error) {
	if len(userIDs) == 0 {
		return []Payment{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE user_id IN (?)
		ORDER BY user_id, start_date DESC NULLS LAST
	`, userIDs)
	if err != nil {
		return nil, err
	}

	payments := []Payment{}
	err = r.db.SelectContext(ctx, &payments, r.db.Rebind(query), args...)
	return payments, err
}

func (r *repository) MostRecentByUser(ctx context.Context, userID string) (*Payment, error) {
	p := &Payment{}
	err := r.db.GetContext(ctx, p, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE user_id = $1
		  AND start_date IS NOT NULL
		  AND end_date IS NOT NULL
		ORDER BY start_date DESC, created_at DESC
		LIMIT 1
	`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Summarize(ctx context.Context, from, to time.Time) (*Summary, error) {
	byType := []TypeSummary{}
	err := r.db.SelectContext(ctx, &byType, `
		SELECT payment_type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total
		FROM payments
		WHERE payment_date >= $1 AND payment_date <= $2
		GROUP BY payment_type
		ORDER BY total DESC
	`, from, to)
	if err != nil {
		return nil, err
	}

	summary := &Summary{From: from, To: to, ByType: byType}
	for _, row := range byType {
		summary.Total += row.Total
		summary.Count += row.Count
	}
	return summary, nil
}
