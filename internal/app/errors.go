package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates invalid user input. Nothing was written.
	ValidationFailed AppErrorType = iota
	// TemplateResolveFailed indicates the template could not be located.
	TemplateResolveFailed
	// CopyFailed indicates the template copy failed part way.
	CopyFailed
	// InstallFailed indicates dependency installation failed.
	InstallFailed
	// ConfigInitFailed indicates the config file could not be written.
	ConfigInitFailed
)

// String returns the error type name.
func (t AppErrorType) String() string {
	switch t {
	case ValidationFailed:
		return "ValidationFailed"
	case TemplateResolveFailed:
		return "TemplateResolveFailed"
	case CopyFailed:
		return "CopyFailed"
	case InstallFailed:
		return "InstallFailed"
	case ConfigInitFailed:
		return "ConfigInitFailed"
	default:
		return fmt.Sprintf("AppErrorType(%d)", int(t))
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewTemplateResolveError creates a template resolve error.
func NewTemplateResolveError(message string, cause error) *AppError {
	return NewAppError(TemplateResolveFailed, message, cause)
}

// NewCopyError creates a copy error.
func NewCopyError(message string, cause error) *AppError {
	return NewAppError(CopyFailed, message, cause)
}

// NewInstallError creates an install error.
func NewInstallError(message string, cause error) *AppError {
	return NewAppError(InstallFailed, message, cause)
}

// NewConfigInitError creates a config init error.
func NewConfigInitError(message string, cause error) *AppError {
	return NewAppError(ConfigInitFailed, message, cause)
}

// IsErrorType reports whether err is an AppError of the given type.
func IsErrorType(err error, errType AppErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errType
}
