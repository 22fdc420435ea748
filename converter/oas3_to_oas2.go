package converter

import (
	"fmt"
	"sort"

	"github.com/erraggy/har2oas/oaserrors"
	"github.com/erraggy/har2oas/spec"
)

// Downgrade translates an OpenAPI 3.0 document into Swagger 2.0.
//
// The input document is not modified; every schema that crosses into the
// output is cloned. Translation is permissive: missing or partial input
// shapes degrade to empty defaults, and the only error condition is a nil
// document.
func (c *Converter) Downgrade(src *spec.OAS3Document) (*ConversionResult, error) {
	if src == nil {
		return nil, &oaserrors.ConversionError{
			Source:  "oas3",
			Target:  "oas2",
			Message: "no document to translate",
		}
	}
	logger := c.logger
	if logger == nil {
		logger = spec.NopLogger()
	}

	result := &ConversionResult{}
	dst := &spec.OAS2Document{
		Swagger:     "2.0",
		Paths:       make(spec.Paths),
		Definitions: spec.NewSchemaRegistry(),
	}
	result.Document = dst

	if src.Info != nil {
		info := *src.Info
		dst.Info = &info
	}

	c.translateServers(src, dst, result)

	for path, item := range src.Paths {
		if item == nil {
			continue
		}
		dst.Paths[path] = c.translatePathItem(item, result, fmt.Sprintf("paths.%s", path))
	}

	if src.Components != nil && src.Components.Schemas != nil {
		for _, name := range src.Components.Schemas.Keys() {
			schema, _ := src.Components.Schemas.Get(name)
			dst.Definitions.Set(name, rewriteSchema(schema.Clone()))
		}
	}

	logger.Info("translated document",
		"paths", len(dst.Paths),
		"definitions", dst.Definitions.Len(),
		"issues", len(result.Issues),
	)
	return finish(result), nil
}

// translateServers decomposes the first server URL into host, basePath and
// schemes. A document without servers gets none of the three fields.
func (c *Converter) translateServers(src *spec.OAS3Document, dst *spec.OAS2Document, result *ConversionResult) {
	if len(src.Servers) == 0 {
		return
	}

	first := src.Servers[0]
	host, basePath, schemes, err := parseServerURL(first.URL)
	if err != nil {
		c.addIssue(result, "servers[0]",
			fmt.Sprintf("failed to parse server URL %q, omitting host/basePath/schemes: %v", first.URL, err),
			SeverityWarning)
		return
	}
	dst.Host = host
	dst.BasePath = basePath
	dst.Schemes = schemes

	if len(src.Servers) > 1 {
		c.addIssue(result, "servers",
			fmt.Sprintf("multiple servers defined (%d), using only the first", len(src.Servers)),
			SeverityWarning)
	}
}

// translatePathItem translates one path item operation by operation.
func (c *Converter) translatePathItem(src *spec.PathItem, result *ConversionResult, pathPrefix string) *spec.PathItem {
	dst := &spec.PathItem{}
	for _, method := range spec.Methods {
		op := src.Operation(method)
		if op == nil {
			continue
		}
		dst.SetOperation(method, c.translateOperation(op, result, fmt.Sprintf("%s.%s", pathPrefix, method)))
	}
	return dst
}

// translateOperation reshapes one operation: parameters are flattened or
// ref-rewritten, the request body becomes a synthetic body parameter, and
// each response keeps only its first content-type entry's schema.
func (c *Converter) translateOperation(src *spec.Operation, result *ConversionResult, opPath string) *spec.Operation {
	dst := &spec.Operation{
		Summary:     src.Summary,
		Description: src.Description,
		OperationID: src.OperationID,
	}

	for _, param := range src.Parameters {
		dst.Parameters = append(dst.Parameters, translateParameter(param))
	}

	if src.RequestBody != nil {
		bodyParam, consumes := c.translateRequestBody(src.RequestBody, result, opPath)
		if bodyParam != nil {
			dst.Parameters = append(dst.Parameters, bodyParam)
		}
		dst.Consumes = consumes
	}

	if len(src.Responses) > 0 {
		dst.Responses = make(map[string]*spec.Response, len(src.Responses))
		codes := make([]string, 0, len(src.Responses))
		for code := range src.Responses {
			codes = append(codes, code)
		}
		// Sorted so produces ordering and media-type issues are stable.
		sort.Strings(codes)
		for _, code := range codes {
			translated, produces := c.translateResponse(src.Responses[code], result, fmt.Sprintf("%s.responses.%s", opPath, code))
			dst.Responses[code] = translated
			dst.Produces = mergeContentTypes(dst.Produces, produces)
		}
	}

	return dst
}

// translateParameter applies the ref-rewrite-or-flatten rule: a $ref
// schema keeps only the rewritten reference, an inline schema's type and
// format are flattened onto the parameter itself, and parameters without
// a schema pass through unchanged.
func translateParameter(src *spec.Parameter) *spec.Parameter {
	dst := *src
	if src.Schema == nil {
		return &dst
	}
	if src.Schema.IsRef() {
		dst.Schema = &spec.Schema{Ref: rewriteRef(src.Schema.Ref)}
		return &dst
	}
	dst.Type = src.Schema.Type
	dst.Format = src.Schema.Format
	dst.Schema = nil
	return &dst
}

// translateRequestBody collapses a request body into a single OAS 2.0
// body parameter carrying the first content-type entry's schema. All
// content-type keys survive as the operation's consumes list.
func (c *Converter) translateRequestBody(src *spec.RequestBody, result *ConversionResult, opPath string) (*spec.Parameter, []string) {
	keys := src.Content.Keys()
	if len(keys) == 0 {
		return nil, nil
	}
	if len(keys) > 1 {
		c.addIssue(result, fmt.Sprintf("%s.requestBody", opPath),
			fmt.Sprintf("request body has %d media types, keeping only the first (%s) as the body schema", len(keys), keys[0]),
			SeverityWarning)
	}

	bodyParam := &spec.Parameter{
		Name:     "body",
		In:       "body",
		Required: src.Required,
	}
	if first, ok := src.Content.Get(keys[0]); ok && first != nil && first.Schema != nil {
		bodyParam.Schema = rewriteSchema(first.Schema.Clone())
	}
	return bodyParam, append([]string(nil), keys...)
}

// translateResponse keeps the description and the first content-type
// entry's schema; remaining content types are dropped. The returned
// content-type keys feed the operation's produces list.
func (c *Converter) translateResponse(src *spec.Response, result *ConversionResult, respPath string) (*spec.Response, []string) {
	dst := &spec.Response{Description: src.Description}
	if src.Content == nil {
		return dst, nil
	}
	keys := src.Content.Keys()
	if len(keys) == 0 {
		return dst, nil
	}
	if len(keys) > 1 {
		c.addIssue(result, respPath,
			fmt.Sprintf("response has %d media types, keeping only the first (%s) as the response schema", len(keys), keys[0]),
			SeverityWarning)
	}
	if first, ok := src.Content.Get(keys[0]); ok && first != nil && first.Schema != nil {
		dst.Schema = rewriteSchema(first.Schema.Clone())
	}
	return dst, append([]string(nil), keys...)
}

// mergeContentTypes appends the entries of add that are not already in
// list, preserving first-seen order.
func mergeContentTypes(list, add []string) []string {
	for _, ct := range add {
		found := false
		for _, existing := range list {
			if existing == ct {
				found = true
				break
			}
		}
		if !found {
			list = append(list, ct)
		}
	}
	return list
}
