package scheduling

import (
	"errors"
	"fmt"
)

// Error codes returned by the scheduling engine.
const (
	CodeValidation  = "validation"
	CodeInvalidSlot = "invalidSlot"
	CodeConflict    = "conflict"
	CodeStore       = "storeUnavailable"
)

// Error is the engine's error type. Handlers switch on Code to pick an
// HTTP status; Err carries the underlying cause for store failures.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewInvalidSlotError(msg string) error {
	return &Error{Code: CodeInvalidSlot, Message: msg}
}

func NewConflictError() error {
	return &Error{Code: CodeConflict, Message: "slot no longer available"}
}

func NewStoreError(err error) error {
	return &Error{Code: CodeStore, Message: "reservation store unavailable", Err: err}
}

func codeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func IsValidation(err error) bool  { return codeOf(err) == CodeValidation }
func IsInvalidSlot(err error) bool { return codeOf(err) == CodeInvalidSlot }
func IsConflict(err error) bool    { return codeOf(err) == CodeConflict }
func IsStore(err error) bool       { return codeOf(err) == CodeStore }
