package converter

import (
	"strings"

	"github.com/erraggy/har2oas/spec"
)

// rewriteRef rewrites a components-namespace schema reference into the
// definitions namespace by literal prefix substitution.
//
//	"#/components/schemas/Pet" -> "#/definitions/Pet"
//
// References without the expected prefix pass through unmodified; no
// attempt is made to verify that the target schema exists.
func rewriteRef(ref string) string {
	return strings.Replace(ref, spec.OAS3SchemaRefPrefix, spec.OAS2SchemaRefPrefix, 1)
}

// rewriteSchema rewrites every $ref in a schema tree in place and returns
// the schema. Callers pass a clone; the walk recurses through properties
// and array items. Schema graphs built by extraction are acyclic, so the
// recursion terminates.
func rewriteSchema(s *spec.Schema) *spec.Schema {
	if s == nil {
		return nil
	}
	if s.Ref != "" {
		s.Ref = rewriteRef(s.Ref)
		return s
	}
	rewriteSchema(s.Items)
	if s.Properties != nil {
		for _, key := range s.Properties.Keys() {
			prop, _ := s.Properties.Get(key)
			rewriteSchema(prop)
		}
	}
	return s
}
