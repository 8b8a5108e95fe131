package task

import (
	"time"

	"crm/internal/domain"
)

type CreateTaskRequest struct {
	Title         string            `json:"title" validate:"required"`
	Description   string            `json:"description"`
	Status        domain.TaskStatus `json:"status" validate:"omitempty,oneof=todo in_progress completed"`
	DueDate       *time.Time        `json:"due_date"`
	RelatedLeadID int64             `json:"related_lead_id" validate:"required"`
}

// UpdateTaskRequest is a partial update. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	ID          int64              `json:"id" validate:"required"`
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *domain.TaskStatus `json:"status"`
	DueDate     *time.Time         `json:"due_date"`
}

// TaskView is a task row joined with its related lead for the myTasks list.
type TaskView struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	Status          domain.TaskStatus `json:"status"`
	DueDate         *time.Time        `json:"due_date,omitempty"`
	AssignedToName  string            `json:"assigned_to_name"`
	RelatedLeadName string            `json:"related_lead_name,omitempty"`
	RelatedCompany  string            `json:"related_company,omitempty"`
}
