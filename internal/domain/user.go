package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ValidRole reports whether r is one of the closed role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Username     string    `json:"username" validate:"required" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email" validate:"required,email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Role         Role      `json:"role"`
	Position     string    `json:"position,omitempty"`
	Department   string    `json:"department,omitempty"`
	ManagerID    *int64    `json:"manager_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Manager *User `json:"-" gorm:"foreignKey:ManagerID"`
}

func (u *User) IsManager() bool { return u.Role == RoleManager }
func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }
