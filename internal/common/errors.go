// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote store errors.
	ErrorNotFound     = errors.New("not found")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorUnavailable  = errors.New("service unavailable")

	// Validation errors, rejected before any network call.
	ErrorEmptyTitle      = errors.New("gallery title is empty")
	ErrorNoMediaSelected = errors.New("no media selected")

	// ErrNothingUploaded means every item of a non-empty upload batch failed.
	ErrNothingUploaded = errors.New("nothing uploaded")

	// ErrGuestNotAllowed is returned by the session gate for mutating
	// operations while in guest state.
	ErrGuestNotAllowed = errors.New("operation not allowed for guests")
)
