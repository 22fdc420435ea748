package har

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/har2oas/inference"
	"github.com/erraggy/har2oas/internal/issues"
	"github.com/erraggy/har2oas/internal/naming"
	"github.com/erraggy/har2oas/internal/pathutil"
	"github.com/erraggy/har2oas/internal/severity"
	"github.com/erraggy/har2oas/spec"
)

// excludedHeaders are transport-level request headers that never become
// operation parameters. Matching is case-insensitive.
var excludedHeaders = map[string]bool{
	"host":            true,
	"user-agent":      true,
	"accept":          true,
	"content-length":  true,
	"connection":      true,
	"cookie":          true,
	"accept-encoding": true,
	"accept-language": true,
}

// ConvertArchive extracts an OpenAPI 3.0 document from a parsed capture.
//
// The only fatal condition is schema synthesis exceeding the recursion
// limit; every malformed entry degrades to a fallback and is reported on
// the result's issue list.
func (c *Converter) ConvertArchive(archive *Archive) (*ConversionResult, error) {
	if c.logger == nil {
		c.logger = spec.NopLogger()
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = inference.DefaultMaxDepth
	}

	doc := c.assemble()
	syn := inference.NewSynthesizer(doc.Components.Schemas,
		inference.WithMaxDepth(maxDepth),
		inference.WithLogger(c.logger),
	)

	result := &ConversionResult{Document: doc}
	if archive != nil {
		result.EntryCount = len(archive.Log.Entries)
		for i, entry := range archive.Log.Entries {
			if err := c.extractEntry(i, entry, doc, syn, result); err != nil {
				return nil, err
			}
		}
	}

	for _, item := range doc.Paths {
		for _, method := range spec.Methods {
			if item.Operation(method) != nil {
				result.OperationCount++
			}
		}
	}
	c.logger.Info("extracted capture",
		"entries", result.EntryCount,
		"operations", result.OperationCount,
		"schemas", doc.Components.Schemas.Len(),
	)
	return finish(result), nil
}

// assemble builds the document skeleton: info block with defaults, optional
// servers, empty paths and components.
func (c *Converter) assemble() *spec.OAS3Document {
	info := &spec.Info{
		Title:       c.Title,
		Version:     c.Version,
		Description: c.Description,
	}
	if info.Title == "" {
		info.Title = DefaultTitle
	}
	if info.Version == "" {
		info.Version = DefaultVersion
	}
	if info.Description == "" {
		info.Description = DefaultDescription
	}

	doc := &spec.OAS3Document{
		OpenAPI:    "3.0.0",
		Info:       info,
		Paths:      make(spec.Paths),
		Components: spec.NewComponents(),
	}
	for _, url := range c.Servers {
		doc.Servers = append(doc.Servers, &spec.Server{URL: url})
	}
	return doc
}

// extractEntry merges one capture entry into the operation table.
func (c *Converter) extractEntry(index int, entry Entry, doc *spec.OAS3Document, syn *inference.Synthesizer, result *ConversionResult) error {
	entryPath := fmt.Sprintf("log.entries[%d]", index)

	method := strings.ToLower(entry.Request.Method)
	if !slices.Contains(spec.Methods, method) {
		result.Issues = append(result.Issues, issues.Issue{
			Path:     entryPath,
			Message:  fmt.Sprintf("unsupported HTTP method %q, entry skipped", entry.Request.Method),
			Severity: severity.SeverityWarning,
		})
		return nil
	}
	path := pathutil.FromURL(entry.Request.URL)
	if c.BasePath != "" {
		path = pathutil.StripBase(path, c.BasePath)
	}

	item := doc.Paths[path]
	if item == nil {
		item = &spec.PathItem{}
		doc.Paths[path] = item
	}
	if item.Operation(method) != nil {
		// First occurrence wins; later duplicates are dropped silently
		// from the document but surfaced as issues.
		result.Issues = append(result.Issues, issues.Issue{
			Path:     entryPath,
			Message:  fmt.Sprintf("duplicate entry for %s %s, keeping the first occurrence", strings.ToUpper(method), path),
			Severity: severity.SeverityInfo,
		})
		return nil
	}

	op := &spec.Operation{
		Summary:     fmt.Sprintf("%s %s", strings.ToUpper(method), path),
		OperationID: naming.OperationID(method, path),
		Responses:   make(map[string]*spec.Response),
	}

	for _, q := range entry.Request.QueryString {
		op.Parameters = append(op.Parameters, &spec.Parameter{
			Name:     q.Name,
			In:       "query",
			Required: true,
			Schema:   inference.InferString(q.Value),
		})
	}
	for _, h := range entry.Request.Headers {
		if excludedHeaders[strings.ToLower(h.Name)] {
			continue
		}
		op.Parameters = append(op.Parameters, &spec.Parameter{
			Name:     h.Name,
			In:       "header",
			Required: true,
			Schema:   inference.InferString(h.Value),
		})
	}

	if body := entry.Request.PostData; body != nil && body.Text != "" {
		schema, err := c.bodySchema("RequestBody", body.MimeType, body.Text, syn,
			entryPath+".request.postData", result)
		if err != nil {
			return err
		}
		content := spec.NewOrderedMap[*spec.MediaType]()
		content.Set(body.MimeType, &spec.MediaType{Schema: schema})
		op.RequestBody = &spec.RequestBody{Required: true, Content: content}
	}

	if err := c.extractResponse(entry.Response, op, syn, entryPath+".response", result); err != nil {
		return err
	}

	item.SetOperation(method, op)
	return nil
}

// extractResponse records the entry's response under its stringified
// status code.
func (c *Converter) extractResponse(response Response, op *spec.Operation, syn *inference.Synthesizer, issuePath string, result *ConversionResult) error {
	code := "200"
	if response.Status != 0 {
		code = strconv.Itoa(response.Status)
	}

	resp := &spec.Response{Description: response.StatusText}

	contentType := headerValue(response.Headers, "content-type")
	if response.Content != nil && response.Content.Text != "" && contentType != "" {
		schema, err := c.bodySchema("Response", contentType, response.Content.Text, syn, issuePath+".content", result)
		if err != nil {
			return err
		}
		resp.Content = spec.NewOrderedMap[*spec.MediaType]()
		resp.Content.Set(contentType, &spec.MediaType{Schema: schema})
	}

	op.Responses[code] = resp
	return nil
}

// bodySchema infers the schema for a request or response body. JSON content
// types are parsed and synthesized; anything else, including JSON that
// fails to parse, becomes a string schema carrying the raw text as example.
func (c *Converter) bodySchema(prefix, contentType, text string, syn *inference.Synthesizer, issuePath string, result *ConversionResult) (*spec.Schema, error) {
	if strings.Contains(strings.ToLower(contentType), "json") {
		if node, ok := inference.ParseJSON(text); ok {
			return syn.Synthesize(prefix, node)
		}
		result.Issues = append(result.Issues, issues.Issue{
			Path:     issuePath,
			Message:  fmt.Sprintf("body declared as %q is not valid JSON", contentType),
			Severity: severity.SeverityWarning,
			Context:  "falling back to string schema",
		})
	}
	return &spec.Schema{Type: "string", Example: text}, nil
}

// headerValue returns the value of the first header with the given
// lowercase name, or "".
func headerValue(headers []NameValue, name string) string {
	for _, h := range headers {
		if strings.ToLower(h.Name) == name {
			return h.Value
		}
	}
	return ""
}
