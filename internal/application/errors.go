package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("destination already exists")
	ErrStoreMissing = errors.New("password store not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports a pre-flight destination collision. The operation is
// aborted before any store mutation.
type ConflictError struct {
	Destination string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicts detected at %q, resolve them before moving", e.Destination)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
