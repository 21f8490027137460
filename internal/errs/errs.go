// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested recipe does not exist.
	ErrNotFound = errors.New("not found")
)
