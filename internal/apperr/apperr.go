// Package apperr defines the error classes shared by every messaging
// operation. Callers classify failures with errors.Is against the sentinels.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before any write (empty content, self-conversation).
	ErrValidation = errors.New("validation failed")
	// ErrPermissionDenied marks an edit or delete attempted by someone other than the sender.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound marks a message that no longer exists. Callers should refresh, not crash.
	ErrNotFound = errors.New("message no longer exists")
	// ErrTransient marks a backing store that is unavailable or failed mid-operation.
	ErrTransient = errors.New("store unavailable")
	// ErrRateLimited marks a write refused because the caller exceeded their rate.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// StoreError wraps a backing store failure. It always matches ErrTransient.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is reports ErrTransient for every StoreError.
func (e *StoreError) Is(target error) bool {
	return target == ErrTransient
}

// Store wraps err as a transient store failure for op. Returns nil for nil err.
// Errors that are already classified pass through unchanged.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	if Classified(err) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// Validation returns an ErrValidation with a reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Classified reports whether err already belongs to one of the error classes.
func Classified(err error) bool {
	return err != nil && Code(err) != CodeInternal
}

// Error class codes, as reported to clients and in metrics.
const (
	CodeOK               = "ok"
	CodeValidation       = "validation"
	CodePermissionDenied = "permission_denied"
	CodeNotFound         = "not_found"
	CodeTransient        = "transient"
	CodeRateLimited      = "rate_limited"
	CodeInternal         = "internal"
)

// Code returns the class code of err.
func Code(err error) string {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrPermissionDenied):
		return CodePermissionDenied
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrTransient):
		return CodeTransient
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	}
	return CodeInternal
}
