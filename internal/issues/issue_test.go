package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/har2oas/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name: "info issue",
			issue: Issue{
				Path:     "log.entries[2]",
				Message:  "duplicate path and method, entry skipped",
				Severity: severity.SeverityInfo,
			},
			expected: "ℹ [info] log.entries[2]: duplicate path and method, entry skipped",
		},
		{
			name: "warning with context",
			issue: Issue{
				Path:     "log.entries[0].request.postData",
				Message:  "request body is not valid JSON",
				Severity: severity.SeverityWarning,
				Context:  "falling back to string schema",
			},
			expected: "⚠ [warning] log.entries[0].request.postData: request body is not valid JSON (falling back to string schema)",
		},
		{
			name: "critical issue",
			issue: Issue{
				Path:     "paths./pets.post.requestBody",
				Message:  "additional content types dropped",
				Severity: severity.SeverityCritical,
			},
			expected: "✗ [critical] paths./pets.post.requestBody: additional content types dropped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}

func TestCount(t *testing.T) {
	list := []Issue{
		{Severity: severity.SeverityInfo},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityCritical},
	}

	info, warning, critical := Count(list)
	assert.Equal(t, 1, info)
	assert.Equal(t, 2, warning)
	assert.Equal(t, 1, critical)
}

func TestCountEmpty(t *testing.T) {
	info, warning, critical := Count(nil)
	assert.Zero(t, info)
	assert.Zero(t, warning)
	assert.Zero(t, critical)
}
