package manager

import "errors"

var (
	ErrLeadNotFound   = errors.New("lead not found")
	ErrLeadNotPending = errors.New("lead is not awaiting approval")
	ErrInvalidAction  = errors.New("action must be approve or reject")
)
