package hoppscotch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/har2oas/inference"
	"github.com/erraggy/har2oas/internal/issues"
	"github.com/erraggy/har2oas/internal/naming"
	"github.com/erraggy/har2oas/internal/pathutil"
	"github.com/erraggy/har2oas/internal/severity"
	"github.com/erraggy/har2oas/spec"
)

// ConvertCollections extracts an OpenAPI 3.0 document from parsed
// collection exports.
//
// The folder tree is walked depth-first in export order; requests merge
// into the path/operation table with first-wins semantics per
// (path, method). Later duplicates are dropped and surfaced as info
// issues. The only error condition is the schema synthesis depth limit;
// everything else degrades to a fallback plus an issue on the result.
func (c *Converter) ConvertCollections(collections []*Collection) (*ConversionResult, error) {
	logger := c.logger
	if logger == nil {
		logger = spec.NopLogger()
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = inference.DefaultMaxDepth
	}

	result := &ConversionResult{}
	doc := c.assemble()
	result.Document = doc

	syn := inference.NewSynthesizer(doc.Components.Schemas,
		inference.WithMaxDepth(maxDepth),
		inference.WithLogger(logger),
	)

	for _, collection := range collections {
		if err := c.walk(collection, collection.Name, doc, syn, result); err != nil {
			return nil, err
		}
	}

	for _, item := range doc.Paths {
		for _, method := range spec.Methods {
			if item.Operation(method) != nil {
				result.OperationCount++
			}
		}
	}
	logger.Info("extracted collection",
		"requests", result.RequestCount,
		"operations", result.OperationCount,
		"schemas", doc.Components.Schemas.Len(),
	)
	return finish(result), nil
}

// assemble builds the document skeleton the extracted operations merge
// into.
func (c *Converter) assemble() *spec.OAS3Document {
	title := c.Title
	if title == "" {
		title = DefaultTitle
	}
	version := c.Version
	if version == "" {
		version = DefaultVersion
	}
	description := c.Description
	if description == "" {
		description = DefaultDescription
	}

	doc := &spec.OAS3Document{
		OpenAPI: "3.0.0",
		Info: &spec.Info{
			Title:       title,
			Version:     version,
			Description: description,
		},
		Paths:      make(spec.Paths),
		Components: spec.NewComponents(),
	}
	for _, url := range c.Servers {
		doc.Servers = append(doc.Servers, &spec.Server{URL: url})
	}
	return doc
}

// walk recurses through a collection's folders, merging each saved
// request into the operation table. folderPath names the current folder
// for issue reporting.
func (c *Converter) walk(collection *Collection, folderPath string, doc *spec.OAS3Document, syn *inference.Synthesizer, result *ConversionResult) error {
	for _, req := range collection.Requests {
		result.RequestCount++
		if err := c.extractRequest(req, folderPath, doc, syn, result); err != nil {
			return err
		}
	}
	for _, folder := range collection.Folders {
		if err := c.walk(folder, folderPath+"/"+folder.Name, doc, syn, result); err != nil {
			return err
		}
	}
	return nil
}

// extractRequest merges one saved request into the operation table.
func (c *Converter) extractRequest(req *Request, folderPath string, doc *spec.OAS3Document, syn *inference.Synthesizer, result *ConversionResult) error {
	reqPath := folderPath + "/" + req.Name

	method := strings.ToLower(req.Method)
	if !slices.Contains(spec.Methods, method) {
		result.Issues = append(result.Issues, issues.Issue{
			Path:     reqPath,
			Message:  fmt.Sprintf("unsupported HTTP method %q, request skipped", req.Method),
			Severity: severity.SeverityWarning,
		})
		return nil
	}
	path := pathutil.FromURL(req.Endpoint)
	if c.BasePath != "" {
		path = pathutil.StripBase(path, c.BasePath)
	}

	item := doc.Paths[path]
	if item == nil {
		item = &spec.PathItem{}
		doc.Paths[path] = item
	}
	if item.Operation(method) != nil {
		result.Issues = append(result.Issues, issues.Issue{
			Path:     reqPath,
			Message:  fmt.Sprintf("duplicate request for %s %s, keeping the first occurrence", strings.ToUpper(method), path),
			Severity: severity.SeverityInfo,
		})
		return nil
	}

	summary := req.Name
	if summary == "" {
		summary = fmt.Sprintf("%s %s", strings.ToUpper(method), path)
	}
	op := &spec.Operation{
		Summary:     summary,
		OperationID: naming.OperationID(method, path),
		// Collections record no responses; document the happy path.
		Responses: map[string]*spec.Response{
			"200": {Description: "OK"},
		},
	}

	for _, p := range req.Params {
		if !p.Active || p.Key == "" {
			continue
		}
		op.Parameters = append(op.Parameters, &spec.Parameter{
			Name:     p.Key,
			In:       "query",
			Required: true,
			Schema:   inference.InferString(p.Value),
		})
	}
	for _, h := range req.Headers {
		if !h.Active || h.Key == "" {
			continue
		}
		op.Parameters = append(op.Parameters, &spec.Parameter{
			Name:     h.Key,
			In:       "header",
			Required: true,
			Schema:   inference.InferString(h.Value),
		})
	}

	if body := req.Body; body != nil && body.Body != "" {
		schema, err := c.bodySchema(req, syn, reqPath, result)
		if err != nil {
			return err
		}
		content := spec.NewOrderedMap[*spec.MediaType]()
		content.Set(body.ContentType, &spec.MediaType{Schema: schema})
		op.RequestBody = &spec.RequestBody{Required: true, Content: content}
	}

	item.SetOperation(method, op)
	return nil
}

// bodySchema synthesizes a schema for a saved request body. JSON bodies
// register component schemas prefixed by the request's name; anything
// else, including JSON that fails to parse, becomes an inline string
// schema carrying the raw text as its example.
func (c *Converter) bodySchema(req *Request, syn *inference.Synthesizer, reqPath string, result *ConversionResult) (*spec.Schema, error) {
	body := req.Body
	if strings.Contains(strings.ToLower(body.ContentType), "json") {
		if node, ok := inference.ParseJSON(body.Body); ok {
			prefix := naming.SchemaPrefix(req.Name)
			if prefix == "" {
				prefix = "RequestBody"
			} else {
				prefix += "Body"
			}
			return syn.Synthesize(prefix, node)
		}
		result.Issues = append(result.Issues, issues.Issue{
			Path:     reqPath + ".body",
			Message:  "request body is not valid JSON, falling back to a string schema",
			Severity: severity.SeverityWarning,
		})
	}
	return &spec.Schema{Type: "string", Example: body.Body}, nil
}
