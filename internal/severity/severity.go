// Package severity provides severity level constants and utilities
// for issues reported by the har, hoppscotch, and converter packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Critical
package severity

// Severity indicates the severity level of an issue reported during
// extraction or dialect translation.
type Severity int

const (
	// SeverityInfo indicates informational messages about processing choices,
	// such as a duplicate capture entry being dropped.
	SeverityInfo Severity = iota

	// SeverityWarning indicates lossy conversions or best-effort fallbacks,
	// such as a JSON body that failed to parse and degraded to a string schema.
	SeverityWarning

	// SeverityCritical indicates features that cannot be converted without
	// data loss, such as additional request-body content types dropped during
	// the OAS 2.0 downgrade.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
