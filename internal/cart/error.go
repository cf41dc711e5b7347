package cart

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrInvalidQuantity      = errors.New("invalid cart quantity")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductOutOfStock    = errors.New("product out of stock")
	ErrCartItemNotFound     = errors.New("cart item not found")
)
