package provider

import (
	"errors"
	"fmt"
)

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// ProviderNotFound indicates the template does not exist.
	ProviderNotFound ProviderErrorType = iota
	// ProviderInvalidTemplate indicates the template structure is invalid.
	ProviderInvalidTemplate
	// ProviderReadFailed indicates the template source could not be read.
	ProviderReadFailed
	// ProviderInvalidCatalog indicates the template catalog could not be parsed.
	ProviderInvalidCatalog
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderNotFound:
		return "NotFound"
	case ProviderInvalidTemplate:
		return "InvalidTemplate"
	case ProviderReadFailed:
		return "ReadFailed"
	case ProviderInvalidCatalog:
		return "InvalidCatalog"
	default:
		return "Unknown"
	}
}

// ProviderError represents a provider-specific error.
type ProviderError struct {
	// Type is the error type classification.
	Type ProviderErrorType
	// Message is the human-readable error message.
	Message string
	// Provider is the provider name (e.g., "embedded", "local").
	Provider string
	// Template is the template name or path that caused the error.
	Template string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error [%s] for template '%s': %s (caused by: %v)",
			e.Provider, e.Type.String(), e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error [%s] for template '%s': %s",
		e.Provider, e.Type.String(), e.Template, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, provider, template, message string, cause error) *ProviderError {
	return &ProviderError{
		Type:     typ,
		Message:  message,
		Provider: provider,
		Template: template,
		Cause:    cause,
	}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, template string) *ProviderError {
	return NewProviderError(ProviderNotFound, provider, template, "template not found", nil)
}

// NewInvalidTemplateError creates an invalid template error.
func NewInvalidTemplateError(provider, template, message string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidTemplate, provider, template, message, cause)
}

// NewReadError creates a read failure error.
func NewReadError(provider, template string, cause error) *ProviderError {
	return NewProviderError(ProviderReadFailed, provider, template, "failed to read template", cause)
}

// IsNotFound reports whether err is a ProviderError of type ProviderNotFound.
func IsNotFound(err error) bool {
	var pErr *ProviderError
	return errors.As(err, &pErr) && pErr.Type == ProviderNotFound
}
