package reqerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a document loading or parsing failure.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration or input option.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to load a specification document.
// This includes YAML/JSON deserialization errors and a non-mapping
// document root, the one structural condition treated as fatal.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a ParseError with the given source path and cause.
func NewParseError(path, message string, cause error) *ParseError {
	return &ParseError{Path: path, Message: message, Cause: cause}
}

// ConfigError represents an invalid configuration value, such as an
// unknown output format or an unsafe output path.
type ConfigError struct {
	// Option is the name of the offending option or flag
	Option string
	// Value is the rejected value
	Value string
	// Message describes why the value was rejected
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += fmt.Sprintf(" for %s", e.Option)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a ConfigError for the given option and value.
func NewConfigError(option, value, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}
