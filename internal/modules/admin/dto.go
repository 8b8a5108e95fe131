package admin

import (
	"time"

	"crm/internal/domain"
)

type AddEmployeeRequest struct {
	Name       string      `json:"name" validate:"required"`
	Username   string      `json:"username" validate:"required,min=3"`
	Password   string      `json:"password" validate:"required,min=8"`
	Email      string      `json:"email" validate:"required,email"`
	Phone      string      `json:"phone"`
	Address    string      `json:"address"`
	Role       domain.Role `json:"role" validate:"required,oneof=admin manager employee"`
	Position   string      `json:"position"`
	Department string      `json:"department"`
	ManagerID  *int64      `json:"manager_id"`
}

// EmployeeView is a user without the password hash.
type EmployeeView struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone,omitempty"`
	Address    string      `json:"address,omitempty"`
	Role       domain.Role `json:"role"`
	Position   string      `json:"position,omitempty"`
	Department string      `json:"department,omitempty"`
	ManagerID  *int64      `json:"manager_id,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

func toEmployeeView(u *domain.User) EmployeeView {
	return EmployeeView{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Email:      u.Email,
		Phone:      u.Phone,
		Address:    u.Address,
		Role:       u.Role,
		Position:   u.Position,
		Department: u.Department,
		ManagerID:  u.ManagerID,
		CreatedAt:  u.CreatedAt,
	}
}
