// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes har2oas capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/har2oas"
)

const serverInstructions = `har2oas MCP server — converts HAR captures and Hoppscotch collection exports into OpenAPI 3.0 documents, and downgrades OpenAPI 3.0 documents to Swagger 2.0.

Configuration: All defaults are configurable via HAR2OAS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- HAR2OAS_MAX_DEPTH (default: 200) — schema synthesis recursion limit
- HAR2OAS_OUTPUT_FORMAT (default: yaml) — default document serialization (json or yaml)`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "har2oas", Version: har2oas.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "har_convert",
		Description: "Convert an HTTP Archive (HAR) capture into an OpenAPI 3.0 document. Request and response bodies with JSON content types are synthesized into named component schemas. Returns conversion issues and the generated document; use output to write to a file instead.",
	}, handleHARConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "collection_convert",
		Description: "Convert a Hoppscotch collection export into an OpenAPI 3.0 document. Saved requests in nested folders become operations; JSON request bodies are synthesized into component schemas named after the request. Returns conversion issues and the generated document; use output to write to a file instead.",
	}, handleCollectionConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "downgrade",
		Description: "Downgrade an OpenAPI 3.0 document to Swagger 2.0. The mapping is structural and lossy: only the first content-type entry of each request body and response survives, and component schema refs are rewritten into the definitions namespace. Returns conversion issues and the translated document.",
	}, handleDowngrade)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
