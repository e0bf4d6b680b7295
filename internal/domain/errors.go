package domain

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrProductInactive   = errors.New("product is not active")
	ErrBranchInactive    = errors.New("branch is not active")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("not authorized")
	ErrInvalidCode       = errors.New("pickup code mismatch")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
)
