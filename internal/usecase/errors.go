package usecase

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInput marks caller mistakes: bad identifiers, rejected SQL,
	// unknown match states.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks lookups that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrDependencyUnavailable marks operations that need the live feed when
	// no API key is configured or the provider keeps refusing.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
