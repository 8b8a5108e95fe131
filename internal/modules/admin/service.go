package admin

import (
	"context"
	"errors"
	"time"

	"crm/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service owns employee administration and the org-wide read views.
type Service struct {
	users   UserRepositoryInterface
	leads   LeadRepositoryInterface
	clients ClientRepositoryInterface
}

func NewService(users UserRepositoryInterface, leads LeadRepositoryInterface, clients ClientRepositoryInterface) *Service {
	return &Service{
		users:   users,
		leads:   leads,
		clients: clients,
	}
}

// AddEmployee creates a user with a bcrypt-hashed password. The manager
// reference, when set, must point at an existing user and must not close a
// reporting cycle.
func (s *Service) AddEmployee(ctx context.Context, req AddEmployeeRequest) (*EmployeeView, error) {
	if !domain.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	if req.ManagerID != nil {
		if err := s.checkManagerChain(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &domain.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         req.Role,
		Position:     req.Position,
		Department:   req.Department,
		ManagerID:    req.ManagerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	view := toEmployeeView(u)
	return &view, nil
}

// checkManagerChain verifies the manager exists and that following
// manager_id upward terminates. Self-references and loops in existing data
// would otherwise make team traversal spin forever.
func (s *Service) checkManagerChain(ctx context.Context, managerID int64) error {
	seen := map[int64]bool{}
	current := managerID
	for {
		if seen[current] {
			return ErrManagerCycle
		}
		seen[current] = true

		mgr, err := s.users.GetByID(ctx, current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if current == managerID {
					return ErrManagerNotFound
				}
				return nil
			}
			return err
		}
		if mgr.ManagerID == nil {
			return nil
		}
		current = *mgr.ManagerID
	}
}

func (s *Service) GetAllLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.GetAll(ctx)
}

func (s *Service) GetAllClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.GetAll(ctx)
}

func (s *Service) GetAllEmployees(ctx context.Context) ([]EmployeeView, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]EmployeeView, 0, len(users))
	for i := range users {
		views = append(views, toEmployeeView(&users[i]))
	}
	return views, nil
}

func (s *Service) GetEmployeeByID(ctx context.Context, id int64) (*EmployeeView, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	view := toEmployeeView(u)
	return &view, nil
}
