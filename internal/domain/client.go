package domain

import "time"

// Client is a converted, confirmed customer. Rows are created only as a side
// effect of lead conversion, never through a direct create endpoint.
type Client struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company,omitempty"`
	Address      string    `json:"address,omitempty"`
	AssignedToID int64     `json:"assigned_to_id"`
	CreatedAt    time.Time `json:"created_at"`

	AssignedTo *User `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
}
