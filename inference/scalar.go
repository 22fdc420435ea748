package inference

import (
	"encoding/json"
	"math"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/har2oas/spec"
)

// Infer returns the inline schema for a single scalar node. It is total:
// every input maps to a schema, unknown tags degrade to a string schema
// carrying the raw text as example.
func Infer(node *yaml.Node) *spec.Schema {
	if node == nil {
		return &spec.Schema{Type: "string"}
	}

	switch node.Tag {
	case "!!null":
		return &spec.Schema{Type: "null"}
	case "!!bool":
		// Booleans are resolved before the numeric cases: a boolean must
		// never be reported as an integer.
		return &spec.Schema{Type: "boolean"}
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			return &spec.Schema{Type: "integer", Example: i}
		}
		// Out of int64 range; fall through to the float handling.
		return floatSchema(node.Value)
	case "!!float":
		return floatSchema(node.Value)
	default:
		return &spec.Schema{Type: "string", Example: node.Value}
	}
}

// floatSchema infers a numeric schema, collapsing integer-valued numbers
// to the integer type.
func floatSchema(value string) *spec.Schema {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &spec.Schema{Type: "string", Example: value}
	}
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < math.MaxInt64 {
		return &spec.Schema{Type: "integer", Example: int64(f)}
	}
	return &spec.Schema{Type: "number", Example: f}
}

// InferString returns the schema for an observed textual value, such as a
// query-string entry or header. Captured text is always typed as a string;
// "42" in a query is still a string.
func InferString(value string) *spec.Schema {
	return &spec.Schema{Type: "string", Example: value}
}

// ParseJSON decodes body text that claims a JSON content type into a node
// tree, preserving object key order. It reports false when the text is not
// valid JSON; callers fall back to a string schema in that case.
func ParseJSON(text string) (*yaml.Node, bool) {
	if !json.Valid([]byte(text)) {
		return nil, false
	}
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return nil, false
	}
	return &node, true
}
