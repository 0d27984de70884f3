package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// Gateway Errors
// ============================================================================

var (
	ErrNetwork = errors.New("predictor api unreachable")
	ErrServer  = errors.New("predictor api returned an error")
)

// NetworkError means the request never produced a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrNetwork, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ServerError means the backend answered with a non-2xx status or an unreadable body.
type ServerError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *ServerError) Error() string {
	msg := fmt.Sprintf("%s: %v (status %d)", e.Op, ErrServer, e.StatusCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *ServerError) Unwrap() error { return e.Err }

func (e *ServerError) Is(target error) bool { return target == ErrServer }

// ============================================================================
// Form Errors
// ============================================================================

var (
	ErrValidation           = errors.New("prediction form is incomplete")
	ErrSubmissionInProgress = errors.New("a prediction for this form is already being processed")
	ErrInvalidFormToken     = errors.New("form token is required")
)

// ValidationError lists the fields that block submission.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// HasField reports whether the named field blocked submission.
func (e *ValidationError) HasField(name string) bool {
	for _, f := range e.Missing {
		if f == name {
			return true
		}
	}
	for _, f := range e.Invalid {
		if f == name {
			return true
		}
	}
	return false
}

// ============================================================================
// Handoff Errors
// ============================================================================

var (
	ErrHandoffNotFound = errors.New("prediction result is no longer available")
)
