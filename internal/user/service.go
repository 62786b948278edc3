package user

import (
	"context"
	"errors"
	"time"

	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

var ErrDocumentExists = errors.New("document already registered")

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListActive(ctx context.Context) ([]User, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	if req.Document != nil && *req.Document != "" {
		exists, err := s.repo.DocumentExists(ctx, *req.Document)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDocumentExists
		}
	}

	birthdate, err := parseOptionalDate(req.Birthdate)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, User{
		Name:             req.Name,
		Document:         req.Document,
		Phone:            req.Phone,
		Email:            req.Email,
		Birthdate:        birthdate,
		EPS:              req.EPS,
		RH:               req.RH,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		ClassTime:        req.ClassTime,
		AffiliationType:  req.AffiliationType,
		Status:           StatusActive,
	})
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	birthdate, err := parseOptionalDate(req.Birthdate)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, User{
		ID:               id,
		Name:             req.Name,
		Document:         req.Document,
		Phone:            req.Phone,
		Email:            req.Email,
		Birthdate:        birthdate,
		EPS:              req.EPS,
		RH:               req.RH,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		ClassTime:        req.ClassTime,
		AffiliationType:  req.AffiliationType,
		Status:           req.Status,
	})
}

func (s *service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) ListActive(ctx context.Context) ([]User, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	return s.repo.SetStatus(ctx, id, StatusInactive)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := vigency.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
