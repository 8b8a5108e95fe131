package manager

import (
	"context"

	"crm/internal/domain"
)

// LeadRepositoryInterface — the lead access the approval flow needs
type LeadRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	GetByAssignedTo(ctx context.Context, userID int64) ([]domain.Lead, error)
	Update(ctx context.Context, l *domain.Lead) error
	ConvertAndRetain(ctx context.Context, l *domain.Lead, c *domain.Client) error
}

// UserRepositoryInterface resolves which employees report to a manager
type UserRepositoryInterface interface {
	GetTeamMembers(ctx context.Context, managerID int64) ([]domain.User, error)
}

// ClientRepositoryInterface reads clients for the team views
type ClientRepositoryInterface interface {
	GetByAssignedTo(ctx context.Context, userID int64) ([]domain.Client, error)
}
