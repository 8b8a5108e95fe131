package lead

import (
	"context"
	"time"

	"crm/internal/domain"
)

// convertedClientAddress is the sentinel address for clients created from
// leads, which carry no address of their own.
const convertedClientAddress = "N/A"

// Service owns the lead lifecycle: creation, partial updates by the owning
// user and the self-service conversion into a client.
type Service struct {
	leads LeadRepositoryInterface
}

func NewService(leads LeadRepositoryInterface) *Service {
	return &Service{leads: leads}
}

// CreateLead creates a lead assigned to its creator. Status defaults to new.
func (s *Service) CreateLead(ctx context.Context, req CreateLeadRequest, owner *domain.User) (*domain.Lead, error) {
	status := req.Status
	if status == "" {
		status = domain.LeadNew
	}
	if !domain.ValidLeadStatus(status) {
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	l := &domain.Lead{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Status:       status,
		AssignedToID: owner.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) GetMyLeads(ctx context.Context, owner *domain.User) ([]domain.Lead, error) {
	return s.leads.GetByAssignedTo(ctx, owner.ID)
}

type UpdateResult struct {
	Converted bool
	Lead      *domain.Lead
	Client    *domain.Client
}

// UpdateLeadForUser applies a partial update to one of the owner's own leads.
// Patching the status to converted turns the lead into a client and removes
// the lead row; client creation and lead deletion happen in one transaction.
func (s *Service) UpdateLeadForUser(ctx context.Context, patch UpdateLeadRequest, owner *domain.User) (*UpdateResult, error) {
	ownLeads, err := s.leads.GetByAssignedTo(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	var existing *domain.Lead
	for i := range ownLeads {
		if ownLeads[i].ID == patch.ID {
			existing = &ownLeads[i]
			break
		}
	}
	if existing == nil {
		return nil, ErrLeadNotFound
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	if patch.Phone != nil {
		existing.Phone = *patch.Phone
	}
	if patch.Company != nil {
		existing.Company = *patch.Company
	}
	if patch.Status != nil {
		if !domain.ValidLeadStatus(*patch.Status) {
			return nil, ErrInvalidStatus
		}
		existing.Status = *patch.Status
	}
	existing.UpdatedAt = time.Now()

	if existing.Status == domain.LeadConverted {
		client := &domain.Client{
			Name:         existing.Name,
			Email:        existing.Email,
			Phone:        existing.Phone,
			Company:      existing.Company,
			Address:      convertedClientAddress,
			AssignedToID: existing.AssignedToID,
			CreatedAt:    time.Now(),
		}

		if err := s.leads.ConvertAndDelete(ctx, existing, client); err != nil {
			return nil, err
		}
		return &UpdateResult{Converted: true, Lead: existing, Client: client}, nil
	}

	if err := s.leads.Update(ctx, existing); err != nil {
		return nil, err
	}
	return &UpdateResult{Lead: existing}, nil
}
