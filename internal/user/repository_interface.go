package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (*User, error)
	Update(ctx context.Context, u User) (*User, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListActive(ctx context.Context) ([]User, error)
	DocumentExists(ctx context.Context, document string) (bool, error)
	SetStatus(ctx context.Context, id string, status Status) error
}
