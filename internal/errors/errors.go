package errors

import "fmt"

// ErrorCode represents a Chamber error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrHostImmovable  ErrorCode = "HOST_IMMOVABLE"  // 409
	ErrNoHosts        ErrorCode = "NO_HOSTS"        // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// ChamberError represents a structured error with code, status, and details.
type ChamberError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ChamberError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *ChamberError {
	return &ChamberError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a room or person cannot be found.
func NewNotFound(kind, identifier string) *ChamberError {
	return &ChamberError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %s", kind, identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewHostImmovable creates a 409 error for attempts to move a room's host.
func NewHostImmovable(personID string) *ChamberError {
	return &ChamberError{
		Code:    ErrHostImmovable,
		Status:  409,
		Message: fmt.Sprintf("person %s is a host and cannot be moved", personID),
		Details: map[string]any{"person_id": personID},
	}
}

// NewNoHosts creates a 422 error for grouping requests without any host.
func NewNoHosts() *ChamberError {
	return &ChamberError{
		Code:    ErrNoHosts,
		Status:  422,
		Message: "at least one host is required to run grouping",
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *ChamberError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ChamberError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a ChamberError with the given code.
func Is(err error, code ErrorCode) bool {
	if cErr, ok := err.(*ChamberError); ok {
		return cErr.Code == code
	}
	return false
}
