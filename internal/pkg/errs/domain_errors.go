package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Room / package errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrPackageNotFound = errors.New("package not found")

	// Quote errors
	ErrInvalidQuoteRequest = errors.New("invalid quote request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
