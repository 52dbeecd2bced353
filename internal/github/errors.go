package github

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError indicates the API quota is exhausted. It is recoverable and
// retried with the dedicated rate-limit backoff.
type RateLimitError struct {
	ResetAt time.Time
	Message string
}

func (e *RateLimitError) Error() string {
	if !e.ResetAt.IsZero() {
		return fmt.Sprintf("GitHub API rate limit exceeded: %s (resets at %s)", e.Message, e.ResetAt.Format(time.RFC3339))
	}
	return fmt.Sprintf("GitHub API rate limit exceeded: %s", e.Message)
}

// TransientError covers network resets, timeouts and 5xx responses. It is
// recoverable and retried with the transient backoff.
type TransientError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transient GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("transient GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// PermanentError is anything that retrying cannot fix: user not found,
// malformed query, auth failures. It propagates immediately.
type PermanentError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *PermanentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// ValidationError represents invalid input to fetcher methods.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: invalid %s: %s", e.Field, e.Reason)
}

// NewRateLimitError creates a new RateLimitError.
func NewRateLimitError(resetAt time.Time, message string) error {
	return &RateLimitError{ResetAt: resetAt, Message: message}
}

// NewTransientError creates a new TransientError.
func NewTransientError(statusCode int, message string, err error) error {
	return &TransientError{StatusCode: statusCode, Message: message, Err: err}
}

// NewPermanentError creates a new PermanentError.
func NewPermanentError(statusCode int, message string, err error) error {
	return &PermanentError{StatusCode: statusCode, Message: message, Err: err}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsRateLimit checks if an error is a rate limit error.
func IsRateLimit(err error) bool {
	var e *RateLimitError
	return errors.As(err, &e)
}

// IsTransient checks if an error is a transient error.
func IsTransient(err error) bool {
	var e *TransientError
	return errors.As(err, &e)
}

// IsPermanent checks if an error is a permanent error.
func IsPermanent(err error) bool {
	var e *PermanentError
	return errors.As(err, &e)
}
