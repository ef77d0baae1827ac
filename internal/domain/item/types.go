package item

import "errors"

var (
	ErrEmptyName          = errors.New("item name cannot be empty")
	ErrNameTooLong        = errors.New("item name exceeds maximum length")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
	ErrNegativeAmount     = errors.New("contributed amount cannot be negative")
	ErrInvalidURL         = errors.New("invalid url")
	ErrAlreadyCompleted   = errors.New("item already completed")
	ErrAmountExceedsPrice = errors.New("amount exceeds item price")
)
