package manager

import (
	"time"

	"crm/internal/domain"
)

type ApproveOrRejectRequest struct {
	LeadID int64  `json:"lead_id" validate:"required"`
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// TeamLeadView is a team member's lead annotated with the member's name.
type TeamLeadView struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Company        string            `json:"company,omitempty"`
	Status         domain.LeadStatus `json:"status"`
	AssignedToName string            `json:"assigned_to_name"`
	CreatedAt      time.Time         `json:"created_at"`
}

type TeamClientView struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Company        string    `json:"company,omitempty"`
	Address        string    `json:"address,omitempty"`
	AssignedToName string    `json:"assigned_to_name"`
	CreatedAt      time.Time `json:"created_at"`
}
