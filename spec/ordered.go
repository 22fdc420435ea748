package spec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// OrderedMap is a string-keyed map that remembers insertion order and
// serializes its entries in that order for both JSON and YAML. Document
// sections where ordering is significant (component schemas, object
// properties, body content types) use it instead of a plain map.
//
// The zero value is not usable; construct instances with [NewOrderedMap].
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Set stores value under key, appending the key to the order on first
// insertion. Setting an existing key overwrites its value in place.
func (m *OrderedMap[V]) Set(key string, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MarshalJSON emits the entries as a JSON object in insertion order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("marshaling entry %q: %w", key, err)
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits the entries as a YAML mapping in insertion order.
func (m *OrderedMap[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil {
		return node, nil
	}
	for _, key := range m.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[key]); err != nil {
			return nil, fmt.Errorf("encoding entry %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML (or JSON) mapping, preserving its key order.
func (m *OrderedMap[V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("cannot unmarshal %s into ordered map", value.Tag)
	}
	m.keys = nil
	m.values = make(map[string]V, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var v V
		if err := value.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("decoding entry %q: %w", value.Content[i].Value, err)
		}
		m.Set(value.Content[i].Value, v)
	}
	return nil
}

// SchemaRegistry stores named component schemas in insertion order.
// A registry belongs to exactly one conversion run; instances must not be
// shared across concurrent conversions.
type SchemaRegistry = OrderedMap[*Schema]

// NewSchemaRegistry returns an empty schema registry.
func NewSchemaRegistry() *SchemaRegistry {
	return NewOrderedMap[*Schema]()
}
