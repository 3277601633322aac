package usecase

import "errors"

var (
	// ErrInvalidInput marks client mistakes (bad parameters, payloads).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks lookups that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrDependencyUnavailable marks downstream infrastructure failures.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
