package domain

import "time"

type LeadStatus string

const (
	LeadNew             LeadStatus = "new"
	LeadContacted       LeadStatus = "contacted"
	LeadQualified       LeadStatus = "qualified"
	LeadApprovalPending LeadStatus = "approval_pending"
	LeadConverted       LeadStatus = "converted"
)

func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadApprovalPending, LeadConverted:
		return true
	}
	return false
}

type Lead struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	Phone        string     `json:"phone" validate:"required"`
	Company      string     `json:"company,omitempty"`
	Status       LeadStatus `json:"status"`
	AssignedToID int64      `json:"assigned_to_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	AssignedTo *User `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
}

func (l *Lead) IsConverted() bool       { return l.Status == LeadConverted }
func (l *Lead) IsApprovalPending() bool { return l.Status == LeadApprovalPending }
