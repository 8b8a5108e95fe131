package manager

import (
	"context"
	"errors"
	"time"

	"crm/internal/domain"

	"gorm.io/gorm"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Service covers the manager surface: team-wide lead and client views and
// the approve-or-reject decision on leads awaiting conversion approval.
type Service struct {
	leads   LeadRepositoryInterface
	users   UserRepositoryInterface
	clients ClientRepositoryInterface
}

func NewService(leads LeadRepositoryInterface, users UserRepositoryInterface, clients ClientRepositoryInterface) *Service {
	return &Service{
		leads:   leads,
		users:   users,
		clients: clients,
	}
}

// GetTeamLeads returns the leads of every employee reporting to the manager.
func (s *Service) GetTeamLeads(ctx context.Context, mgr *domain.User) ([]TeamLeadView, error) {
	members, err := s.users.GetTeamMembers(ctx, mgr.ID)
	if err != nil {
		return nil, err
	}

	views := make([]TeamLeadView, 0)
	for _, member := range members {
		leads, err := s.leads.GetByAssignedTo(ctx, member.ID)
		if err != nil {
			return nil, err
		}
		for _, l := range leads {
			views = append(views, TeamLeadView{
				ID:             l.ID,
				Name:           l.Name,
				Email:          l.Email,
				Phone:          l.Phone,
				Company:        l.Company,
				Status:         l.Status,
				AssignedToName: member.Name,
				CreatedAt:      l.CreatedAt,
			})
		}
	}
	return views, nil
}

func (s *Service) GetTeamClients(ctx context.Context, mgr *domain.User) ([]TeamClientView, error) {
	members, err := s.users.GetTeamMembers(ctx, mgr.ID)
	if err != nil {
		return nil, err
	}

	views := make([]TeamClientView, 0)
	for _, member := range members {
		clients, err := s.clients.GetByAssignedTo(ctx, member.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range clients {
			views = append(views, TeamClientView{
				ID:             c.ID,
				Name:           c.Name,
				Email:          c.Email,
				Phone:          c.Phone,
				Company:        c.Company,
				Address:        c.Address,
				AssignedToName: member.Name,
				CreatedAt:      c.CreatedAt,
			})
		}
	}
	return views, nil
}

type DecisionResult struct {
	Approved bool
	Lead     *domain.Lead
	Client   *domain.Client
}

// ApproveOrReject decides a lead that is awaiting approval. Approving
// creates a client and keeps the lead on file as converted; rejecting
// sends it back to qualified. Leads in any other status are refused, so a
// repeated decision on the same lead fails instead of double-converting.
func (s *Service) ApproveOrReject(ctx context.Context, req ApproveOrRejectRequest) (*DecisionResult, error) {
	if req.Action != ActionApprove && req.Action != ActionReject {
		return nil, ErrInvalidAction
	}

	l, err := s.leads.GetByID(ctx, req.LeadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	if !l.IsApprovalPending() {
		return nil, ErrLeadNotPending
	}

	if req.Action == ActionReject {
		l.Status = domain.LeadQualified
		l.UpdatedAt = time.Now()
		if err := s.leads.Update(ctx, l); err != nil {
			return nil, err
		}
		return &DecisionResult{Approved: false, Lead: l}, nil
	}

	c := &domain.Client{
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Company:      l.Company,
		AssignedToID: l.AssignedToID,
		CreatedAt:    time.Now(),
	}
	if err := s.leads.ConvertAndRetain(ctx, l, c); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotPending
		}
		return nil, err
	}
	return &DecisionResult{Approved: true, Lead: l, Client: c}, nil
}
