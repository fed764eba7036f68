// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors: no usable token locally, or the server answered 401.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrNotFound is returned when the server reports 404 for a resource.
	ErrNotFound = errors.New("not found")

	// ErrNetwork means the request never produced a response.
	ErrNetwork = errors.New("network error")

	// ErrServer covers 5xx responses and unexpected payload shapes.
	ErrServer = errors.New("server error")

	// ErrValidation is returned by local pre-submit checks. The request
	// is never issued when validation fails.
	ErrValidation = errors.New("validation error")

	// ErrBusy is returned when a submit is attempted while the previous
	// one for the same form is still outstanding.
	ErrBusy = errors.New("request already in progress")
)
