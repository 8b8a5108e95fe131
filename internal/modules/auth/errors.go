package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrIncorrectOldPassword = errors.New("incorrect old password")
	ErrSamePassword         = errors.New("new password cannot be the same as the old password")
	ErrWeakPassword         = errors.New("weak password")
)
