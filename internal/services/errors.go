package services

import (
	"errors"
)

// Sentinel errors mapped to HTTP statuses at the handler layer.
var (
	// ErrNotFound marks a missing entity, including a missing parent
	// UseCase when creating a dependent row.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks a malformed or mismatched request. No mutation
	// is performed when it is returned.
	ErrValidation = errors.New("validation failed")
)
