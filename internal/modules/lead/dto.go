package lead

import (
	"time"

	"crm/internal/domain"
)

type CreateLeadRequest struct {
	Name    string            `json:"name" validate:"required"`
	Email   string            `json:"email" validate:"required,email"`
	Phone   string            `json:"phone" validate:"required"`
	Company string            `json:"company"`
	Status  domain.LeadStatus `json:"status" validate:"omitempty,oneof=new contacted qualified approval_pending converted"`
}

// UpdateLeadRequest is a partial update. Nil fields are left unchanged; an
// explicit empty string clears the column.
type UpdateLeadRequest struct {
	ID      int64              `json:"id" validate:"required"`
	Name    *string            `json:"name"`
	Email   *string            `json:"email" validate:"omitempty,email"`
	Phone   *string            `json:"phone"`
	Company *string            `json:"company"`
	Status  *domain.LeadStatus `json:"status"`
}

type LeadSummary struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Company        string            `json:"company,omitempty"`
	Status         domain.LeadStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	AssignedToName string            `json:"assigned_to_name"`
}
