package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrMissingUserID = errors.New("user ID is required")
)
