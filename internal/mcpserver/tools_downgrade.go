package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/har2oas/converter"
	"github.com/erraggy/har2oas/spec"
)

type downgradeInput struct {
	Spec   docInput `json:"spec"             jsonschema:"The OpenAPI 3.0 document to downgrade"`
	Output string   `json:"output,omitempty" jsonschema:"File path to write the Swagger 2.0 document. If omitted the document is returned inline."`
	Format string   `json:"format,omitempty" jsonschema:"Document serialization (json or yaml). Default from HAR2OAS_OUTPUT_FORMAT."`
}

type downgradeOutput struct {
	PathCount       int         `json:"path_count"`
	DefinitionCount int         `json:"definition_count"`
	Success         bool        `json:"success"`
	IssueCount      int         `json:"issue_count"`
	Issues          []toolIssue `json:"issues,omitempty"`
	WrittenTo       string      `json:"written_to,omitempty"`
	Document        string      `json:"document,omitempty"`
}

func handleDowngrade(_ context.Context, _ *mcp.CallToolRequest, input downgradeInput) (*mcp.CallToolResult, downgradeOutput, error) {
	data, err := readInput(input.Spec)
	if err != nil {
		return errResult(err), downgradeOutput{}, nil
	}
	format, err := resolveFormat(input.Format)
	if err != nil {
		return errResult(err), downgradeOutput{}, nil
	}

	doc, err := spec.LoadOAS3(data)
	if err != nil {
		return errResult(err), downgradeOutput{}, nil
	}
	result, err := converter.Downgrade(doc)
	if err != nil {
		return errResult(err), downgradeOutput{}, nil
	}

	output := downgradeOutput{
		PathCount:       len(result.Document.Paths),
		DefinitionCount: result.Document.Definitions.Len(),
		Success:         result.Success,
		IssueCount:      len(result.Issues),
		Issues:          toToolIssues(result.Issues),
	}
	output.WrittenTo, output.Document, err = deliver(result.Document, format, input.Output)
	if err != nil {
		return errResult(err), downgradeOutput{}, nil
	}
	return nil, output, nil
}
