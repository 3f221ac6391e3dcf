// Package blasbridge structured error types for dispatch failures
package blasbridge

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// No kernel registered for the requested routine
	ErrTypeUnregistered ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Unknown or unusable complex return convention
	ErrTypeBadConvention
)

// BridgeError represents a structured error with context
type BridgeError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *BridgeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("blasbridge %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("blasbridge %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *BridgeError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeUnregistered:
		return "UnregisteredRoutine"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeBadConvention:
		return "UnsupportedConvention"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewUnregisteredError creates an error for a routine with no kernel bound
func NewUnregisteredError(op string, routine Routine) error {
	return &BridgeError{
		Type:    ErrTypeUnregistered,
		Op:      op,
		Message: fmt.Sprintf("no kernel registered for %q", routine),
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &BridgeError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewConventionError creates an error for an unusable complex return style
func NewConventionError(op string, message string) error {
	return &BridgeError{
		Type:    ErrTypeBadConvention,
		Op:      op,
		Message: message,
	}
}

// IsUnregisteredError checks if an error reports a missing kernel
func IsUnregisteredError(err error) bool {
	if e, ok := err.(*BridgeError); ok {
		return e.Type == ErrTypeUnregistered
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*BridgeError); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

// IsConventionError checks if an error reports an unusable return convention
func IsConventionError(err error) bool {
	if e, ok := err.(*BridgeError); ok {
		return e.Type == ErrTypeBadConvention
	}
	return false
}
