package spec

import (
	"encoding/json"

	"go.yaml.in/yaml/v4"
)

// EncodeJSON serializes a document to indented JSON.
func EncodeJSON(doc any) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// EncodeYAML serializes a document to YAML.
func EncodeYAML(doc any) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Encode serializes a document in the requested format, defaulting to YAML
// when the format is unknown.
func Encode(doc any, format SourceFormat) ([]byte, error) {
	if format == SourceFormatJSON {
		return EncodeJSON(doc)
	}
	return EncodeYAML(doc)
}
