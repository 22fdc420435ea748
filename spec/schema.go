package spec

// Schema is a JSON-Schema-like type description. It is either a reference
// (Ref set, everything else empty), an object (Type "object" with
// Properties), an array (Type "array" with Items), or a scalar (primitive
// Type with an optional Example).
type Schema struct {
	Ref         string              `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type        string              `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string              `yaml:"format,omitempty" json:"format,omitempty"`
	Title       string              `yaml:"title,omitempty" json:"title,omitempty"`
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Properties  *OrderedMap[*Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items       *Schema             `yaml:"items,omitempty" json:"items,omitempty"`
	Required    []string            `yaml:"required,omitempty" json:"required,omitempty"`
	Enum        []any               `yaml:"enum,omitempty" json:"enum,omitempty"`
	Example     any                 `yaml:"example,omitempty" json:"example,omitempty"`
}

// IsRef reports whether the schema is a pure reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// Clone returns a deep copy of the schema.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	out.Items = s.Items.Clone()
	if s.Properties != nil {
		props := NewOrderedMap[*Schema]()
		for _, key := range s.Properties.Keys() {
			prop, _ := s.Properties.Get(key)
			props.Set(key, prop.Clone())
		}
		out.Properties = props
	}
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	if s.Enum != nil {
		out.Enum = append([]any(nil), s.Enum...)
	}
	return &out
}
