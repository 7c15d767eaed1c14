package domain

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrder         = errors.New("invalid order")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrDuplicateOrderNumber = errors.New("order number already exists")
	ErrMissingDateRange     = errors.New("startDate and endDate are required")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange     = errors.New("endDate must not be before startDate")
	ErrInvalidMonth         = errors.New("year and month are required, month must be 1-12")
	ErrRebuildInProgress    = errors.New("sales rebuild already in progress")
	ErrInvalidPhone         = errors.New("phone number is required")
	ErrInvalidCode          = errors.New("invalid or expired verification code")
)
