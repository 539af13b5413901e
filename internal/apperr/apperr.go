package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so the two cases cannot be told apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when the authenticated user record is gone.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound is returned when a session id does not resolve.
	ErrSessionNotFound = errors.New("session not found")
	// ErrQuestionNotFound is returned when a question id does not resolve.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrNotOwner is returned when an authenticated user touches a resource
	// owned by someone else. Distinct from not-found.
	ErrNotOwner = errors.New("not authorized to modify this resource")
	// ErrAllDuplicates is returned when every question in an append batch
	// already exists in the session.
	ErrAllDuplicates = errors.New("all provided questions are duplicates")
)

// StatusFor maps domain errors to HTTP status codes. Unknown errors are
// treated as internal.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrQuestionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
