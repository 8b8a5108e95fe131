package client

import (
	"context"

	"crm/internal/domain"
)

// ClientRepositoryInterface — only the read scoping this module needs.
// Clients are created by lead conversion, never through this module.
type ClientRepositoryInterface interface {
	GetByAssignedTo(ctx context.Context, userID int64) ([]domain.Client, error)
}

type Service struct {
	clients ClientRepositoryInterface
}

func NewService(clients ClientRepositoryInterface) *Service {
	return &Service{clients: clients}
}

func (s *Service) GetMyClients(ctx context.Context, owner *domain.User) ([]domain.Client, error) {
	return s.clients.GetByAssignedTo(ctx, owner.ID)
}
