package service

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyID         = errors.New("identifier is required")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("not logged in")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// StatusError is returned by user-triggered operations when the server
// answers with a status the operation does not handle. Body holds the raw
// response so the caller can present it.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// Is matches the sentinel errors that correspond to well-known statuses.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}
