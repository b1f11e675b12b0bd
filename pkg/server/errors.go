package server

import "errors"

var (
	// ErrNilRegistry is returned by New when no panel registry is supplied.
	ErrNilRegistry = errors.New("server: panel registry is required")
	// ErrInvalidPayload marks request bodies that cannot be turned into
	// panel values.
	ErrInvalidPayload = errors.New("server: invalid payload")
)
