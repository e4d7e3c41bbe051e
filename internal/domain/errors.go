package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the services can report.
// Callers match with errors.Is and map to transport-level responses.
var (
	// ErrInvalidArgument marks client-supplied input that failed validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a lookup that matched no record.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an ingestion that would duplicate an existing record.
	ErrConflict = errors.New("conflict")

	// ErrUpstream marks a data-store or network failure. The original cause
	// is attached as diagnostic detail, never surfaced as the sole message.
	ErrUpstream = errors.New("upstream error")
)

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// Conflictf wraps ErrConflict with a formatted message.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConflict}, args...)...)
}

// Upstreamf wraps ErrUpstream with a formatted message and cause.
func Upstreamf(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s: %w", ErrUpstream, msg, err)
}
