package wifi

import (
	"fmt"
	"strings"
)

// ErrorKind represents the category of encoder error that occurred.
type ErrorKind int

const (
	// ErrKindValidation indicates invalid credentials (empty SSID, missing
	// password for a secured network). Fatal to the run.
	ErrKindValidation ErrorKind = iota
	// ErrKindRecoverableInput indicates invalid auxiliary input (style,
	// color) for which a documented default is substituted. Never fatal.
	ErrKindRecoverableInput
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindValidation:
		return "Validation Error"
	case ErrKindRecoverableInput:
		return "Recoverable Input Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// EncodeError is an error produced while building or validating a payload.
type EncodeError struct {
	Kind    ErrorKind // Category of error
	Field   string    // Input field the error relates to ("ssid", "password", ...)
	Message string    // Human-readable error message
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewValidationError creates a fatal validation error for the given field.
func NewValidationError(field, message string) *EncodeError {
	return &EncodeError{Kind: ErrKindValidation, Field: field, Message: message}
}

// NewInputError creates a recoverable input error for the given field.
func NewInputError(field, message string) *EncodeError {
	return &EncodeError{Kind: ErrKindRecoverableInput, Field: field, Message: message}
}

// IsValidationError checks if an error is a fatal validation error.
func IsValidationError(err error) bool {
	if encErr, ok := err.(*EncodeError); ok {
		return encErr.Kind == ErrKindValidation
	}
	return false
}

// IsRecoverableInput checks if an error is a recoverable input error.
func IsRecoverableInput(err error) bool {
	if encErr, ok := err.(*EncodeError); ok {
		return encErr.Kind == ErrKindRecoverableInput
	}
	return false
}

// IsWarning checks if a validation result is an advisory warning rather than
// a fatal error. Warnings have messages starting with "warning:".
func IsWarning(err error) bool {
	if encErr, ok := err.(*EncodeError); ok {
		return strings.HasPrefix(encErr.Message, "warning:")
	}
	return strings.Contains(err.Error(), "warning:")
}

// SeparateWarningsAndErrors splits validation results into advisory warnings
// and fatal errors. Warnings are surfaced to the user but never abort a run.
func SeparateWarningsAndErrors(errs []error) (warnings []error, fatal []error) {
	for _, err := range errs {
		if IsWarning(err) {
			warnings = append(warnings, err)
		} else {
			fatal = append(fatal, err)
		}
	}
	return warnings, fatal
}
