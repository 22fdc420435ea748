package spec

import (
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/har2oas/oaserrors"
)

// SourceFormat identifies the serialization format of an input file.
type SourceFormat int

const (
	// SourceFormatUnknown means the format could not be determined.
	SourceFormatUnknown SourceFormat = iota
	// SourceFormatJSON is a JSON document.
	SourceFormatJSON
	// SourceFormatYAML is a YAML document.
	SourceFormatYAML
)

// String returns the lowercase name of the format.
func (f SourceFormat) String() string {
	switch f {
	case SourceFormatJSON:
		return "json"
	case SourceFormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormatFromPath detects the source format from a file extension.
func DetectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json", ".har":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// Dialect identifies which interface-description dialect a document uses.
type Dialect int

const (
	// DialectUnknown means neither version marker was found.
	DialectUnknown Dialect = iota
	// DialectOAS3 is an OpenAPI 3.x document.
	DialectOAS3
	// DialectOAS2 is a Swagger 2.0 document.
	DialectOAS2
)

// DetectDialect inspects the version marker fields of a serialized
// interface document. YAML input is accepted; JSON is a YAML subset.
func DetectDialect(data []byte) Dialect {
	var markers struct {
		OpenAPI string `yaml:"openapi"`
		Swagger string `yaml:"swagger"`
	}
	if err := yaml.Unmarshal(data, &markers); err != nil {
		return DialectUnknown
	}
	switch {
	case markers.OpenAPI != "":
		return DialectOAS3
	case markers.Swagger != "":
		return DialectOAS2
	default:
		return DialectUnknown
	}
}

// LoadOAS3 deserializes an OpenAPI 3.x document from YAML or JSON bytes.
//
// Missing sections degrade to empty defaults rather than erroring; the only
// fatal conditions are undecodable input and a non-OAS3 dialect. Swagger 2.0
// input yields an [oaserrors.UnsupportedError]: upgrading is not
// implemented.
func LoadOAS3(data []byte) (*OAS3Document, error) {
	switch DetectDialect(data) {
	case DialectOAS2:
		return nil, &oaserrors.UnsupportedError{
			Format:  "swagger 2.0",
			Message: "only OAS 3.x documents can be downgraded",
		}
	case DialectUnknown:
		return nil, &oaserrors.ParseError{Message: "document has no openapi version marker"}
	}

	var doc OAS3Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid interface document", Cause: err}
	}

	// Permissive defaults for absent sections.
	if doc.Info == nil {
		doc.Info = &Info{}
	}
	if doc.Paths == nil {
		doc.Paths = make(Paths)
	}
	if doc.Components == nil {
		doc.Components = NewComponents()
	}
	if doc.Components.Schemas == nil {
		doc.Components.Schemas = NewSchemaRegistry()
	}
	return &doc, nil
}
