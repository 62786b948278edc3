package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/antologiabox23-boop/antologia-pro/internal/db"
)

var ErrUserNotFound = errors.New("user not found")

const userColumns = `id, name, document, phone, email, birthdate, eps, rh,
	emergency_contact, emergency_phone, class_time, affiliation_type, status,
	created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u User) (*User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	created := &User{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO users (id, name, document, phone, email, birthdate, eps, rh,
			emergency_contact, emergency_phone, class_time, affiliation_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+userColumns+`
	`, u.ID, u.Name, u.Document, u.Phone, u.Email, u.Birthdate, u.EPS, u.RH,
		u.EmergencyContact, u.EmergencyPhone, u.ClassTime, u.AffiliationType, u.Status,
	).StructScan(created)

	return created, err
}

func (r *repository) Update(ctx context.Context, u User) (*User, error) {
	updated := &User{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE users
		SET name = $2,
		    document = $3,
		    phone = $4,
		    email = $5,
		    birthdate = $6,
		    eps = $7,
		    rh = $8,
		    emergency_contact = $9,
		    emergency_phone = $10,
		    class_time = $11,
		    affiliation_type = $12,
		    status = $13,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, u.ID, u.Name, u.Document, u.Phone, u.Email, u.Birthdate, u.EPS, u.RH,
		u.EmergencyContact, u.EmergencyPhone, u.ClassTime, u.AffiliationType, u.Status,
	).StructScan(updated)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return updated, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	u := &User{}
	err := r.db.GetContext(ctx, u, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.SelectContext(ctx, &users, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY name
	`)
	return users, err
}

func (r *repository) ListActive(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.SelectContext(ctx, &users, `
		SELECT `+userColumns+`
		FROM users
		WHERE status = 'active'
		ORDER BY name
	`)
	return users, err
}

func (r *repository) DocumentExists(ctx context.Context, document string) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM users WHERE document = $1)`, document)
}

func (r *repository) SetStatus(ctx context.Context, id string, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
