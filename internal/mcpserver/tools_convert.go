package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/har2oas/har"
	"github.com/erraggy/har2oas/hoppscotch"
)

type harConvertInput struct {
	Capture     docInput `json:"capture"               jsonschema:"The HAR capture to convert"`
	Title       string   `json:"title,omitempty"       jsonschema:"Generated document title"`
	Version     string   `json:"version,omitempty"     jsonschema:"Generated document version"`
	Description string   `json:"description,omitempty" jsonschema:"Generated document description"`
	Servers     []string `json:"servers,omitempty"     jsonschema:"Server URLs to emit on the document"`
	BasePath    string   `json:"base_path,omitempty"   jsonschema:"Base path prefix to strip from extracted paths"`
	Output      string   `json:"output,omitempty"      jsonschema:"File path to write the document. If omitted the document is returned inline."`
	Format      string   `json:"format,omitempty"      jsonschema:"Document serialization (json or yaml). Default from HAR2OAS_OUTPUT_FORMAT."`
}

type convertOutput struct {
	EntryCount     int         `json:"entry_count"`
	OperationCount int         `json:"operation_count"`
	SchemaCount    int         `json:"schema_count"`
	Success        bool        `json:"success"`
	IssueCount     int         `json:"issue_count"`
	Issues         []toolIssue `json:"issues,omitempty"`
	WrittenTo      string      `json:"written_to,omitempty"`
	Document       string      `json:"document,omitempty"`
}

func handleHARConvert(_ context.Context, _ *mcp.CallToolRequest, input harConvertInput) (*mcp.CallToolResult, convertOutput, error) {
	data, err := readInput(input.Capture)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	format, err := resolveFormat(input.Format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	result, err := har.Convert(data,
		har.WithTitle(input.Title),
		har.WithVersion(input.Version),
		har.WithDescription(input.Description),
		har.WithServers(input.Servers...),
		har.WithBasePath(input.BasePath),
		har.WithMaxDepth(cfg.MaxDepth),
	)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		EntryCount:     result.EntryCount,
		OperationCount: result.OperationCount,
		SchemaCount:    result.Document.Components.Schemas.Len(),
		Success:        result.Success,
		IssueCount:     len(result.Issues),
		Issues:         toToolIssues(result.Issues),
	}
	output.WrittenTo, output.Document, err = deliver(result.Document, format, input.Output)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	return nil, output, nil
}

type collectionConvertInput struct {
	Collection  docInput `json:"collection"            jsonschema:"The Hoppscotch collection export to convert"`
	Title       string   `json:"title,omitempty"       jsonschema:"Generated document title"`
	Version     string   `json:"version,omitempty"     jsonschema:"Generated document version"`
	Description string   `json:"description,omitempty" jsonschema:"Generated document description"`
	Servers     []string `json:"servers,omitempty"     jsonschema:"Server URLs to emit on the document"`
	BasePath    string   `json:"base_path,omitempty"   jsonschema:"Base path prefix to strip from extracted paths"`
	Output      string   `json:"output,omitempty"      jsonschema:"File path to write the document. If omitted the document is returned inline."`
	Format      string   `json:"format,omitempty"      jsonschema:"Document serialization (json or yaml). Default from HAR2OAS_OUTPUT_FORMAT."`
}

type collectionConvertOutput struct {
	RequestCount   int         `json:"request_count"`
	OperationCount int         `json:"operation_count"`
	SchemaCount    int         `json:"schema_count"`
	Success        bool        `json:"success"`
	IssueCount     int         `json:"issue_count"`
	Issues         []toolIssue `json:"issues,omitempty"`
	WrittenTo      string      `json:"written_to,omitempty"`
	Document       string      `json:"document,omitempty"`
}

func handleCollectionConvert(_ context.Context, _ *mcp.CallToolRequest, input collectionConvertInput) (*mcp.CallToolResult, collectionConvertOutput, error) {
	data, err := readInput(input.Collection)
	if err != nil {
		return errResult(err), collectionConvertOutput{}, nil
	}
	format, err := resolveFormat(input.Format)
	if err != nil {
		return errResult(err), collectionConvertOutput{}, nil
	}

	result, err := hoppscotch.Convert(data,
		hoppscotch.WithTitle(input.Title),
		hoppscotch.WithVersion(input.Version),
		hoppscotch.WithDescription(input.Description),
		hoppscotch.WithServers(input.Servers...),
		hoppscotch.WithBasePath(input.BasePath),
		hoppscotch.WithMaxDepth(cfg.MaxDepth),
	)
	if err != nil {
		return errResult(err), collectionConvertOutput{}, nil
	}

	output := collectionConvertOutput{
		RequestCount:   result.RequestCount,
		OperationCount: result.OperationCount,
		SchemaCount:    result.Document.Components.Schemas.Len(),
		Success:        result.Success,
		IssueCount:     len(result.Issues),
		Issues:         toToolIssues(result.Issues),
	}
	output.WrittenTo, output.Document, err = deliver(result.Document, format, input.Output)
	if err != nil {
		return errResult(err), collectionConvertOutput{}, nil
	}
	return nil, output, nil
}
