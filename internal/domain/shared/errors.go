package shared

import "fmt"

// Error codes shared across the domain.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeConflict      = "CONFLICT"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code.
// errors.Is(err, ErrNotFound) therefore matches any not-found error
// regardless of its message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewNotFoundError creates a not-found error for an entity and id.
func NewNotFoundError(entity, id string) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s with ID %s not found", entity, id))
}

// NewConflictError creates a conflict error.
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewAlreadyExistsError creates a duplicate error.
func NewAlreadyExistsError(message string) *DomainError {
	return NewDomainError(CodeAlreadyExists, message)
}

// Common domain errors
var (
	ErrValidation    = NewDomainError(CodeValidation, "Validation failed")
	ErrNotFound      = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrConflict      = NewDomainError(CodeConflict, "Operation conflicts with current state")
	ErrInvalidInput  = NewDomainError(CodeInvalidInput, "Invalid input provided")
)
