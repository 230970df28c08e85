package generator

import "fmt"

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorInvalidVariables indicates a required template variable is missing or malformed.
	GeneratorInvalidVariables GeneratorErrorType = iota
)

// GeneratorError represents generator-specific errors.
//
// I/O failures raised while copying are never wrapped in a GeneratorError;
// they reach the caller exactly as the filesystem reported them.
type GeneratorError struct {
	// Type categorizes the error.
	Type GeneratorErrorType
	// Message is the error message.
	Message string
	// Field is the variable or path related to the error (if applicable).
	Field string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.Field != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (%s): %v", e.Message, e.Field, e.Cause)
		}
		return fmt.Sprintf("%s (%s)", e.Message, e.Field)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// newGeneratorError creates a new GeneratorError.
func newGeneratorError(typ GeneratorErrorType, message, field string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		Field:   field,
		Cause:   cause,
	}
}
