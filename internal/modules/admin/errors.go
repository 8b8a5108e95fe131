package admin

import "errors"

var (
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrInvalidRole     = errors.New("invalid role")
	ErrManagerNotFound = errors.New("manager not found")
	ErrManagerCycle    = errors.New("manager chain contains a cycle")
	ErrUserNotFound    = errors.New("user not found")
)
