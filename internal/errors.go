package internal

import (
	"errors"
	"fmt"
)

// Errors shared across the fetch and parse paths.
var (
	// ErrConnection marks transport-level failures (DNS, refused, timeout).
	ErrConnection = errors.New("connection failed")
	// ErrInvalidJSON marks response bodies or files that do not decode.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrRetryExhausted guards against the retry loop ending without a result,
	// which a correctly configured client can never reach.
	ErrRetryExhausted = errors.New("retry loop ended without a result")
)

// StatusError reports a non-2xx HTTP response from the upstream API.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %s", e.Status)
}

// ValidationError reports a required field missing from an upstream record
// during strict normalization. It fails only the record it belongs to, never
// the whole batch.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}
