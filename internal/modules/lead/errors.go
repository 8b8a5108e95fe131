package lead

import "errors"

var (
	// ErrLeadNotFound covers both "no such lead" and "lead owned by someone
	// else" so the response never reveals which one it was.
	ErrLeadNotFound  = errors.New("lead not found or not assigned to you")
	ErrInvalidStatus = errors.New("invalid lead status")
)
