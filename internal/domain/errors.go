package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is makes errors.Is() match on the code.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrAlreadyApplied - the person is already a pending applicant
	ErrAlreadyApplied = &DomainError{
		Code:    "ALREADY_APPLIED",
		Message: "person has already applied to this job",
	}

	// ErrAlreadyAssigned - the person is already an accepted member
	ErrAlreadyAssigned = &DomainError{
		Code:    "ALREADY_ASSIGNED",
		Message: "person is already assigned to this job",
	}

	// ErrEmailTaken - signup with an email that is already registered
	ErrEmailTaken = &DomainError{
		Code:    "EMAIL_TAKEN",
		Message: "email is already registered",
	}

	// ErrUnauthorized - the caller supplied no identity
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "caller identity is required",
	}

	// ErrNotFound - resource not found
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrInvalidRequest - missing or malformed required field
	ErrInvalidRequest = &DomainError{
		Code:    "INVALID_REQUEST",
		Message: "invalid request",
	}
)

// NewNotFoundError creates a NOT_FOUND error with extra context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInvalidRequestError creates an INVALID_REQUEST error with extra context.
func NewInvalidRequestError(message string) *DomainError {
	return &DomainError{
		Code:    "INVALID_REQUEST",
		Message: message,
	}
}
