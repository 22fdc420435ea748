package mcpserver

import (
	"fmt"
	"os"

	"github.com/erraggy/har2oas/internal/fileutil"
	"github.com/erraggy/har2oas/internal/issues"
	"github.com/erraggy/har2oas/spec"
)

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a document file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
}

// readInput resolves a docInput to raw bytes.
func readInput(in docInput) ([]byte, error) {
	switch {
	case in.File != "" && in.Content != "":
		return nil, fmt.Errorf("provide either file or content, not both")
	case in.File != "":
		data, err := os.ReadFile(in.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil
	case in.Content != "":
		return []byte(in.Content), nil
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}

// toolIssue is the wire shape of a conversion issue.
type toolIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

func toToolIssues(list []issues.Issue) []toolIssue {
	out := makeSlice[toolIssue](len(list))
	for _, issue := range list {
		out = append(out, toolIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}
	return out
}

// resolveFormat picks the serialization format for a tool's document
// output: an explicit request wins, otherwise the configured default.
func resolveFormat(requested string) (spec.SourceFormat, error) {
	format := requested
	if format == "" {
		format = cfg.OutputFormat
	}
	switch format {
	case "json":
		return spec.SourceFormatJSON, nil
	case "yaml":
		return spec.SourceFormatYAML, nil
	default:
		return spec.SourceFormatUnknown, fmt.Errorf("invalid format %q; valid values: json, yaml", requested)
	}
}

// deliver serializes a document and either writes it to outPath or
// returns it inline. Exactly one of the two return strings is set.
func deliver(doc any, format spec.SourceFormat, outPath string) (written, inline string, err error) {
	data, err := spec.Encode(doc, format)
	if err != nil {
		return "", "", err
	}
	if outPath != "" {
		if err := os.WriteFile(outPath, data, fileutil.ReadableByAll); err != nil {
			return "", "", fmt.Errorf("failed to write output file: %w", err)
		}
		return outPath, "", nil
	}
	return "", string(data), nil
}
