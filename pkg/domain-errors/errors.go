// Package domainerrors provides coded errors for the paper lifecycle engine.
// Services translate infrastructure sentinels into these codes so transport
// layers can map them to responses without inspecting error strings.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for transport mapping and logging.
type Code string

const (
	// CodeValidation marks missing or malformed caller input.
	CodeValidation Code = "validation_error"
	// CodeConflict marks a business-key collision (duplicate paperId).
	CodeConflict Code = "duplicate_key"
	// CodeNotFound marks a lookup of an unknown paper.
	CodeNotFound Code = "not_found"
	// CodeInvalidStage marks an advance request targeting a stage outside the
	// accepted set.
	CodeInvalidStage Code = "invalid_stage"
	// CodeSlotsIncomplete marks an advance attempted before every reviewer
	// slot is filled.
	CodeSlotsIncomplete Code = "slots_incomplete"
	// CodeDeliveryFailed marks a notification send failure. The stage change
	// may already be persisted when this is returned.
	CodeDeliveryFailed Code = "notification_delivery_failed"
	// CodeInvariantViolation marks a broken entity invariant at construction.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal marks persistence or other infrastructure failures.
	CodeInternal Code = "internal_error"
)

// Error carries a code, a human-readable message, and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs a coded error without a cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err or anything it wraps carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.Err
		de = nil
	}
	return false
}

// CodeOf returns the outermost code carried by err, or CodeInternal when err
// is not a coded error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the outermost message carried by err, or the raw error
// text for uncoded errors.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
