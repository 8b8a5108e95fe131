package admin

import (
	"context"

	"crm/internal/domain"
)

// UserRepositoryInterface — only the methods the admin service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type LeadRepositoryInterface interface {
	GetAll(ctx context.Context) ([]domain.Lead, error)
}

type ClientRepositoryInterface interface {
	GetAll(ctx context.Context) ([]domain.Client, error)
}
