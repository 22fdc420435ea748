// Package har converts HTTP Archive (HAR) captures into OpenAPI 3.0
// documents.
//
// Extraction walks the capture entries in document order and merges them
// into a path/operation table with first-wins semantics per (path, method)
// pair. Request and response bodies with JSON content types are run through
// schema inference; everything the extractor cannot make sense of degrades
// to a documented fallback and is reported as an issue on the result,
// never as an error.
package har

import (
	"github.com/erraggy/har2oas/inference"
	"github.com/erraggy/har2oas/internal/issues"
	"github.com/erraggy/har2oas/internal/severity"
	"github.com/erraggy/har2oas/spec"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort fallbacks
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates data that could not be converted
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// Default document metadata used when the corresponding option is absent.
const (
	DefaultTitle       = "API generated from HAR"
	DefaultVersion     = "1.0.0"
	DefaultDescription = "API specification generated from HAR file"
)

// ConversionResult contains the results of converting a capture document.
type ConversionResult struct {
	// Document is the assembled OpenAPI 3.0 document
	Document *spec.OAS3Document
	// EntryCount is the number of capture entries processed
	EntryCount int
	// OperationCount is the number of distinct (path, method) operations
	OperationCount int
	// Issues contains all conversion issues in encounter order
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter extracts an OpenAPI 3.0 document from HAR captures.
// The zero value converts with default metadata; use New and the With*
// options to configure one.
type Converter struct {
	// Title is the generated document's info title
	Title string
	// Version is the generated document's info version
	Version string
	// Description is the generated document's info description
	Description string
	// Servers is the list of server URLs to emit (omitted when empty)
	Servers []string
	// BasePath, when set, is stripped from the front of extracted paths
	BasePath string
	// MaxDepth bounds schema synthesis recursion
	MaxDepth int

	logger spec.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithTitle sets the generated document's title.
func WithTitle(title string) Option {
	return func(c *Converter) { c.Title = title }
}

// WithVersion sets the generated document's version string.
func WithVersion(version string) Option {
	return func(c *Converter) { c.Version = version }
}

// WithDescription sets the generated document's description.
func WithDescription(description string) Option {
	return func(c *Converter) { c.Description = description }
}

// WithServers sets the server URLs emitted on the generated document.
func WithServers(urls ...string) Option {
	return func(c *Converter) { c.Servers = urls }
}

// WithBasePath sets a base path prefix to strip from extracted paths.
func WithBasePath(basePath string) Option {
	return func(c *Converter) { c.BasePath = basePath }
}

// WithMaxDepth overrides the schema synthesis recursion limit.
func WithMaxDepth(depth int) Option {
	return func(c *Converter) { c.MaxDepth = depth }
}

// WithLogger sets the logger used during extraction.
func WithLogger(logger spec.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Converter with default settings and applies opts.
func New(opts ...Option) *Converter {
	c := &Converter{
		MaxDepth: inference.DefaultMaxDepth,
		logger:   spec.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert is a convenience function that parses a serialized HAR capture
// and converts it with the given options. It's equivalent to creating a
// Converter with New() and calling ConvertArchive().
func Convert(data []byte, opts ...Option) (*ConversionResult, error) {
	archive, err := ParseArchive(data)
	if err != nil {
		return nil, err
	}
	return New(opts...).ConvertArchive(archive)
}

// finish tallies the issue counters and success flag on a result.
func finish(result *ConversionResult) *ConversionResult {
	result.InfoCount, result.WarningCount, result.CriticalCount = issues.Count(result.Issues)
	result.Success = result.CriticalCount == 0
	return result
}
