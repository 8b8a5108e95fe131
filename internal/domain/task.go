package domain

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

type Task struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description,omitempty" gorm:"type:text"`
	Status        TaskStatus `json:"status"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	AssignedToID  int64      `json:"assigned_to_id"`
	RelatedLeadID int64      `json:"related_lead_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	AssignedTo  *User `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
	RelatedLead *Lead `json:"related_lead,omitempty" gorm:"foreignKey:RelatedLeadID"`
}
