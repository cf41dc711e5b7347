package order

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrOrderNotFound        = errors.New("order not found")
	ErrForbidden            = errors.New("order belongs to another user")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrUnknownStatus        = errors.New("unknown order status")
	ErrInvalidTransition    = errors.New("illegal order status transition")
)
