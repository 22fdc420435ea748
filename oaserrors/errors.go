// Package oaserrors provides structured error types for har2oas.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: JSON/YAML deserialization failures on input documents
//   - ConversionError: failures while extracting or translating documents
//   - ResourceLimitError: resource exhaustion (recursion depth, size limits)
//   - ConfigError: invalid configuration or input options
//
// Recoverable conditions (malformed bodies, missing optional fields) never
// surface as errors; they degrade to fallback values and are reported as
// issues on the conversion result. Only the fatal categories above produce
// errors.
//
// # Usage with errors.Is
//
//	result, err := har.Convert(data)
//	if err != nil {
//	    if errors.Is(err, oaserrors.ErrResourceLimit) {
//	        // input nested too deeply
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConversion indicates an extraction or translation failure.
	ErrConversion = errors.New("conversion error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrUnsupported indicates a conversion direction or input format
	// that har2oas does not implement.
	ErrUnsupported = errors.New("unsupported format")
)

// ParseError represents a failure to deserialize an input document.
// This covers HAR captures, collection exports, and interface documents.
type ParseError struct {
	// Path is the file path or source identifier (empty for inline input)
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

// ConversionError represents a failure during extraction or translation.
type ConversionError struct {
	// Source identifies the conversion input ("har", "hoppscotch", "oas3")
	Source string
	// Target identifies the conversion output ("oas3", "oas2")
	Target string
	// Message describes the conversion failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	msg := "conversion error"
	if e.Source != "" && e.Target != "" {
		msg += fmt.Sprintf(" (%s to %s)", e.Source, e.Target)
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
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when schema synthesis exceeds configured limits, typically
// on pathologically nested input bodies.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "nesting_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic option
	Option string
	// Value is the invalid value (may be nil)
	Value any
	// Message describes why the configuration is invalid
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += ": " + e.Option
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

// UnsupportedError represents a requested conversion that har2oas does not
// implement, such as upgrading an OAS 2.0 document to OAS 3.x.
type UnsupportedError struct {
	// Format is the unsupported input format or dialect
	Format string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *UnsupportedError) Error() string {
	msg := "unsupported format"
	if e.Format != "" {
		msg += ": " + e.Format
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
