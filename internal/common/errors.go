// Package common provides shared utilities and types used across the engine.
package common

import (
	"errors"
	"fmt"
)

// Engine errors.
var (
	// ErrInvalidQuery indicates a query with no identifying field. The
	// caller's input is malformed and the query is never retried.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmptyCatalog indicates a catalog snapshot with zero rows. This is
	// fatal to the engine instance and should trigger a catalog rebuild
	// upstream.
	ErrEmptyCatalog = errors.New("empty catalog")

	// ErrCatalogNotLoaded indicates that no catalog index has been swapped
	// into the store yet.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsFatal reports whether an error should abort the engine instance rather
// than a single query.
func IsFatal(err error) bool {
	return errors.Is(err, ErrEmptyCatalog) || errors.Is(err, ErrCatalogNotLoaded)
}
