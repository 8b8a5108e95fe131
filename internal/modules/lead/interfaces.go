package lead

import (
	"context"

	"crm/internal/domain"
)

// LeadRepositoryInterface — only the methods the lead service uses
type LeadRepositoryInterface interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByAssignedTo(ctx context.Context, userID int64) ([]domain.Lead, error)
	Update(ctx context.Context, l *domain.Lead) error
	ConvertAndDelete(ctx context.Context, l *domain.Lead, c *domain.Client) error
}
