package types

import "fmt"

// Error taxonomy surfaced by the store and auth layers. Handlers map these
// to HTTP statuses: NotFound->404, Conflict->400, Validation->422,
// Auth->401/403. Anything else is a 500.

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return e.Detail
}

func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Detail: fmt.Sprintf(format, args...)}
}

type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// AuthError covers bad credentials and bad tokens. Forbidden selects 403
// over 401 (e.g. an inactive user presenting a valid token).
type AuthError struct {
	Detail    string
	Forbidden bool
}

func (e *AuthError) Error() string {
	return e.Detail
}

func NewAuth(detail string) *AuthError {
	return &AuthError{Detail: detail}
}

func NewForbidden(detail string) *AuthError {
	return &AuthError{Detail: detail, Forbidden: true}
}
