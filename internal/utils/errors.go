package utils

import "errors"

// Common application errors used across services.
var (
	ErrCategoryNotFound = errors.New("CATEGORY_NOT_FOUND")
	ErrCategoryInUse    = errors.New("CATEGORY_IN_USE")
	ErrProductNotFound  = errors.New("PRODUCT_NOT_FOUND")
	ErrProductInactive  = errors.New("PRODUCT_INACTIVE")
	ErrOrderNotFound    = errors.New("ORDER_NOT_FOUND")
	ErrInvalidStatus    = errors.New("INVALID_STATUS")
	ErrInvalidToken     = errors.New("INVALID_TOKEN")
	ErrInvalidEmail     = errors.New("INVALID_EMAIL")
	ErrAccountInactive  = errors.New("ACCOUNT_INACTIVE")
	ErrBadCredentials   = errors.New("INVALID_CREDENTIALS")
)
