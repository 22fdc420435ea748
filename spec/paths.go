package spec

// Paths holds the relative paths to the individual endpoints.
// Path strings are kept literal as extracted from capture URLs; no
// template-variable detection is performed.
type Paths map[string]*PathItem

// Methods lists the HTTP methods a PathItem can carry, in canonical order.
var Methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// PathItem describes the operations available on a single path.
// At most one operation exists per method.
type PathItem struct {
	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`
}

// Operation returns the operation registered for the given lowercase
// method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	switch method {
	case "get":
		return p.Get
	case "put":
		return p.Put
	case "post":
		return p.Post
	case "delete":
		return p.Delete
	case "options":
		return p.Options
	case "head":
		return p.Head
	case "patch":
		return p.Patch
	case "trace":
		return p.Trace
	default:
		return nil
	}
}

// SetOperation registers op under the given lowercase method. It returns
// false when the method is not one of the supported HTTP methods.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	switch method {
	case "get":
		p.Get = op
	case "put":
		p.Put = op
	case "post":
		p.Post = op
	case "delete":
		p.Delete = op
	case "options":
		p.Options = op
	case "head":
		p.Head = op
	case "patch":
		p.Patch = op
	case "trace":
		p.Trace = op
	default:
		return false
	}
	return true
}

// Operation describes a single API operation on a path.
type Operation struct {
	Summary     string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"` // OAS 3.x
	Responses   map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`
	// OAS 2.0 specific
	Consumes []string `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces []string `yaml:"produces,omitempty" json:"produces,omitempty"`
}

// Parameter describes a single operation parameter. In OAS 3.x the value
// shape lives in Schema; the OAS 2.0 downgrade flattens scalar schemas onto
// Type and Format instead.
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	In          string  `yaml:"in" json:"in"` // "query", "header", or "body" (OAS 2.0)
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example     any     `yaml:"example,omitempty" json:"example,omitempty"`
	// OAS 2.0 flattened fields
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// MediaType carries the schema for one content type.
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// RequestBody describes a request body keyed by content type (OAS 3.x).
type RequestBody struct {
	Required bool                    `yaml:"required,omitempty" json:"required,omitempty"`
	Content  *OrderedMap[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
}

// Response describes a single response of an operation.
type Response struct {
	Description string                  `yaml:"description" json:"description"`
	Content     *OrderedMap[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"` // OAS 3.x
	// OAS 2.0 specific
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}
