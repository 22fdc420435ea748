// Package converter translates OpenAPI 3.0 documents into Swagger 2.0.
//
// The translation is structural and deliberately lossy: OAS 2.0 has a
// single body schema per operation and a single schema per response, so
// only the first content-type entry survives and the rest are dropped
// with issues on the result. Reference rewriting is a literal prefix
// substitution from the components namespace to the definitions
// namespace; refs that do not carry the expected prefix pass through
// unmodified.
//
// The reverse direction (Swagger 2.0 to OpenAPI 3.0) is not implemented
// and Upgrade reports it as unsupported.
package converter

import (
	"github.com/erraggy/har2oas/internal/issues"
	"github.com/erraggy/har2oas/internal/severity"
	"github.com/erraggy/har2oas/oaserrors"
	"github.com/erraggy/har2oas/spec"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates features that cannot be converted (data loss)
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// ConversionResult contains the results of translating a document.
type ConversionResult struct {
	// Document is the translated Swagger 2.0 document
	Document *spec.OAS2Document
	// Issues contains all conversion issues in encounter order
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if translation completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter translates OpenAPI 3.0 documents into Swagger 2.0.
type Converter struct {
	logger spec.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used during translation.
func WithLogger(logger spec.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Converter with default settings and applies opts.
func New(opts ...Option) *Converter {
	c := &Converter{logger: spec.NopLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Downgrade is a convenience function that translates an OpenAPI 3.0
// document into Swagger 2.0 with the given options. It's equivalent to
// creating a Converter with New() and calling Downgrade().
func Downgrade(doc *spec.OAS3Document, opts ...Option) (*ConversionResult, error) {
	return New(opts...).Downgrade(doc)
}

// Upgrade would translate a Swagger 2.0 document into OpenAPI 3.0. The
// direction has no implemented mapping and always returns an
// unsupported-operation error wrapping oaserrors.ErrUnsupported.
func Upgrade(doc *spec.OAS2Document) (*ConversionResult, error) {
	return nil, &oaserrors.UnsupportedError{
		Format:  "swagger-2.0",
		Message: "Swagger 2.0 to OpenAPI 3.0 translation is not implemented",
	}
}

// addIssue appends an issue to the result.
func (c *Converter) addIssue(result *ConversionResult, path, message string, sev Severity) {
	result.Issues = append(result.Issues, issues.Issue{
		Path:     path,
		Message:  message,
		Severity: sev,
	})
}

// finish tallies the issue counters and success flag on a result.
func finish(result *ConversionResult) *ConversionResult {
	result.InfoCount, result.WarningCount, result.CriticalCount = issues.Count(result.Issues)
	result.Success = result.CriticalCount == 0
	return result
}
