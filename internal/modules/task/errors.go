package task

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found or not assigned to you")
	ErrPastDueDate   = errors.New("due date cannot be in the past")
	ErrNoLeads       = errors.New("no leads found for the assigned user")
	ErrLeadNotOwned  = errors.New("related lead not found for the logged-in user")
	ErrInvalidStatus = errors.New("invalid task status")
)
