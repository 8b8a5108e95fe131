package task

import (
	"context"

	"crm/internal/domain"
)

// TaskRepositoryInterface — only the methods the task service uses
type TaskRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByAssignedTo(ctx context.Context, userID int64) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, t *domain.Task) error
}

// LeadReader exposes the lead lookup the ownership check needs
type LeadReader interface {
	GetByAssignedTo(ctx context.Context, userID int64) ([]domain.Lead, error)
}
