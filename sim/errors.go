package sim

import (
	"fmt"
)

// ErrorCode represents different types of simulation errors
type ErrorCode int

const (
	// Generic errors
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInternal

	// Configuration errors
	ErrCodeUnknownPolicy
	ErrCodeMissingRefreshRate
	ErrCodeBadCapacity
	ErrCodeInvalidConfig

	// Trace errors
	ErrCodeTraceUnreadable
	ErrCodeMalformedTrace
)

// SimError represents a simulator error with context
type SimError struct {
	Code    ErrorCode
	Message string
	Op      string // Operation that failed
	Err     error  // Underlying error (if any)
}

// Error implements the error interface
func (e *SimError) Error() string {
	if e.Op != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *SimError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a specific error code
func (e *SimError) Is(target error) bool {
	if t, ok := target.(*SimError); ok {
		return e.Code == t.Code
	}
	return false
}

// NewSimError creates a new simulator error
func NewSimError(code ErrorCode, op, message string, err error) *SimError {
	return &SimError{
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Helper functions for common errors

func ErrUnknownPolicy(op, policy string) *SimError {
	return NewSimError(
		ErrCodeUnknownPolicy,
		op,
		fmt.Sprintf("unknown eviction policy %q", policy),
		nil,
	)
}

func ErrMissingRefreshRate(op string) *SimError {
	return NewSimError(
		ErrCodeMissingRefreshRate,
		op,
		"nru policy requires a positive refresh rate",
		nil,
	)
}

func ErrBadCapacity(op string, capacity int) *SimError {
	return NewSimError(
		ErrCodeBadCapacity,
		op,
		fmt.Sprintf("frame count must be positive, got %d", capacity),
		nil,
	)
}

func ErrInvalidConfig(op, message string) *SimError {
	return NewSimError(
		ErrCodeInvalidConfig,
		op,
		message,
		nil,
	)
}

func ErrTraceUnreadable(op, path string, err error) *SimError {
	return NewSimError(
		ErrCodeTraceUnreadable,
		op,
		fmt.Sprintf("cannot read trace %s", path),
		err,
	)
}

func ErrMalformedTrace(op string, lineNo int, line string) *SimError {
	return NewSimError(
		ErrCodeMalformedTrace,
		op,
		fmt.Sprintf("malformed trace line %d: %q", lineNo, line),
		nil,
	)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	if se, ok := err.(*SimError); ok {
		return se.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrCodeUnknown
func GetErrorCode(err error) ErrorCode {
	if se, ok := err.(*SimError); ok {
		return se.Code
	}
	return ErrCodeUnknown
}
