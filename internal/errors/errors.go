// Package errors provides structured error handling with user-friendly messages.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors for better user experience.
type ErrorType string

const (
	// Configuration errors
	ConfigNotFound ErrorType = "config_not_found"
	ConfigInvalid  ErrorType = "config_invalid"

	// Suggestion source errors
	ItemsNotFound ErrorType = "items_not_found"
	ItemsInvalid  ErrorType = "items_invalid"
	ItemsWatch    ErrorType = "items_watch"

	// Terminal errors
	TerminalInit        ErrorType = "terminal_init"
	TerminalUnavailable ErrorType = "terminal_unavailable"

	// System errors
	PermissionDenied  ErrorType = "permission_denied"
	FileNotFound      ErrorType = "file_not_found"
	UnsupportedFormat ErrorType = "unsupported_format"

	// Validation errors
	ValidationFailed ErrorType = "validation_failed"

	// Internal errors
	InternalError ErrorType = "internal_error"
)

// AppError represents a structured error with user-friendly messaging.
type AppError struct {
	Type        ErrorType `json:"type"`
	Message     string    `json:"message"`
	Details     string    `json:"details,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Cause       error     `json:"-"`
}

func (e *AppError) Error() string {
	var parts []string

	parts = append(parts, e.Message)

	if e.Details != "" {
		parts = append(parts, fmt.Sprintf("Details: %s", e.Details))
	}

	if len(e.Suggestions) > 0 {
		parts = append(parts, fmt.Sprintf("Suggestions:\n  • %s", strings.Join(e.Suggestions, "\n  • ")))
	}

	return strings.Join(parts, "\n\n")
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError with the given type and message.
func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap creates a new AppError that wraps an existing error.
func Wrap(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   err,
	}
}

// WithDetails adds detailed information to an error.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithSuggestion adds a helpful suggestion to an error.
func (e *AppError) WithSuggestion(suggestion string) *AppError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple helpful suggestions to an error.
func (e *AppError) WithSuggestions(suggestions []string) *AppError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors

// ConfigNotFoundError creates an error for missing configuration.
func ConfigNotFoundError(path string) *AppError {
	return New(ConfigNotFound, "Configuration file not found").
		WithDetails(fmt.Sprintf("Looking for config at: %s", path)).
		WithSuggestions([]string{
			"Run 'autocomplete config init' to create a new configuration",
			"Check if the config file exists and is readable",
			"Set AUTOCOMPLETE_CONFIG to point at a config file",
		})
}

// ItemsNotFoundError creates an error for a missing suggestions file.
func ItemsNotFoundError(path string) *AppError {
	return New(ItemsNotFound, "Suggestions file not found").
		WithDetails(fmt.Sprintf("Looking for items at: %s", path)).
		WithSuggestions([]string{
			"Check the items.file setting in your configuration",
			"Pass --items with a readable YAML, TOML or JSON file",
			"Omit the items file to use the built-in demo data",
		})
}

// UnsupportedFormatError creates an error for a file extension no decoder handles.
func UnsupportedFormatError(path string) *AppError {
	return New(UnsupportedFormat, fmt.Sprintf("Unsupported file format: %s", path)).
		WithSuggestion("Use one of the .yml, .yaml, .toml or .json extensions")
}

// TerminalInitError creates an error for a terminal that could not be set up.
func TerminalInitError(err error) *AppError {
	return Wrap(err, TerminalInit, "Failed to initialize terminal").
		WithSuggestions([]string{
			"Make sure stdin and stdout are attached to a terminal",
			"Check that TERM is set to a value known to terminfo",
			"Use 'autocomplete filter' for non-interactive output",
		})
}

// ValidationError creates an error for validation failures.
func ValidationError(field string, value string, reason string) *AppError {
	return New(ValidationFailed, fmt.Sprintf("Validation failed for '%s'", field)).
		WithDetails(fmt.Sprintf("Value '%s' is invalid: %s", value, reason))
}

// PermissionDeniedError creates an error for permission issues.
func PermissionDeniedError(path string, operation string) *AppError {
	return New(PermissionDenied, fmt.Sprintf("Permission denied: cannot %s %s", operation, path)).
		WithSuggestions([]string{
			"Check file/directory permissions",
			"Ensure you have the required access rights",
		})
}

// IsType checks if an error chain contains an AppError of a specific type.
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetType returns the ErrorType of an AppError, or InternalError for other errors.
func GetType(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return InternalError
}
