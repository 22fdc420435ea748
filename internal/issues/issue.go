// Package issues provides a unified issue type for extraction and
// conversion problems that are recovered rather than raised as errors.
package issues

import (
	"fmt"

	"github.com/erraggy/har2oas/internal/severity"
)

// Issue represents a single problem found during extraction or conversion.
type Issue struct {
	// Path is the document location of the problem
	// (e.g., "log.entries[3].request.postData" or "paths./pets.get")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Context provides additional information about how the issue was
	// resolved (e.g., the fallback value used). Optional.
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s [%s] %s: %s", symbol, i.Severity, i.Path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf(" (%s)", i.Context)
	}
	return result
}

// Count tallies issues by severity and returns (info, warning, critical).
func Count(list []Issue) (info, warning, critical int) {
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			info++
		case severity.SeverityWarning:
			warning++
		case severity.SeverityCritical:
			critical++
		}
	}
	return info, warning, critical
}
