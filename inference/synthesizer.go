package inference

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/har2oas/oaserrors"
	"github.com/erraggy/har2oas/spec"
)

// DefaultMaxDepth bounds the recursion depth of schema synthesis. Inputs
// nested deeper than this produce a ResourceLimitError instead of
// exhausting the call stack.
const DefaultMaxDepth = 200

// Synthesizer builds named component schemas from composite values.
//
// Every object and array encountered during a walk is registered in the
// registry under a collision-free name before the reference to it is
// returned, so an assembled document never contains dangling references.
//
// A Synthesizer is bound to one registry and, like the registry, must not
// be shared across concurrent conversions.
type Synthesizer struct {
	registry *spec.SchemaRegistry
	maxDepth int
	logger   spec.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithMaxDepth overrides the recursion depth limit.
func WithMaxDepth(depth int) Option {
	return func(s *Synthesizer) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithLogger sets the logger used for synthesis diagnostics.
func WithLogger(logger spec.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSynthesizer returns a Synthesizer that registers schemas in registry.
func NewSynthesizer(registry *spec.SchemaRegistry, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		registry: registry,
		maxDepth: DefaultMaxDepth,
		logger:   spec.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize walks value and returns its schema. Composite values are
// registered under a name derived from prefix and the result is a
// reference; scalar values return their inline schema directly and leave
// the registry untouched.
//
// Name collisions are resolved with incrementing integer suffixes
// (Prefix1, Prefix2, ...). The used-names set is threaded through one
// top-level call: sibling structures with the same prefix get distinct
// names within a single synthesis, and names already present in the
// registry are never reused.
func (s *Synthesizer) Synthesize(prefix string, value *yaml.Node) (*spec.Schema, error) {
	alloc := newNameAllocator(s.registry)
	return s.synthesize(prefix, value, alloc, 0)
}

func (s *Synthesizer) synthesize(prefix string, node *yaml.Node, alloc *nameAllocator, depth int) (*spec.Schema, error) {
	if depth > s.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(s.maxDepth),
			Actual:       int64(depth),
			Message:      fmt.Sprintf("while synthesizing %q", prefix),
		}
	}
	if node == nil {
		return &spec.Schema{Type: "string"}, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return &spec.Schema{Type: "null"}, nil
		}
		return s.synthesize(prefix, node.Content[0], alloc, depth)

	case yaml.AliasNode:
		return s.synthesize(prefix, node.Alias, alloc, depth+1)

	case yaml.MappingNode:
		name := alloc.allocate(prefix)
		obj := &spec.Schema{Type: "object", Properties: spec.NewOrderedMap[*spec.Schema]()}
		s.registry.Set(name, obj)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			val := node.Content[i+1]
			if isComposite(val) {
				child, err := s.synthesize(name+"_"+key, val, alloc, depth+1)
				if err != nil {
					return nil, err
				}
				obj.Properties.Set(key, child)
			} else {
				obj.Properties.Set(key, Infer(val))
			}
		}
		s.logger.Debug("synthesized object schema", "name", name, "properties", obj.Properties.Len())
		return &spec.Schema{Ref: spec.OAS3SchemaRefPrefix + name}, nil

	case yaml.SequenceNode:
		name := alloc.allocate(prefix)
		arr := &spec.Schema{Type: "array"}
		s.registry.Set(name, arr)
		if len(node.Content) > 0 {
			// Only the first element is inspected; heterogeneous arrays
			// keep the first element's shape.
			first := node.Content[0]
			if isComposite(first) {
				item, err := s.synthesize(name+"_item", first, alloc, depth+1)
				if err != nil {
					return nil, err
				}
				arr.Items = item
			} else {
				arr.Items = Infer(first)
			}
		} else {
			arr.Items = &spec.Schema{Type: "string"}
		}
		s.logger.Debug("synthesized array schema", "name", name)
		return &spec.Schema{Ref: spec.OAS3SchemaRefPrefix + name}, nil

	default:
		return Infer(node), nil
	}
}

// isComposite reports whether the node is an object or array, following
// alias indirection.
func isComposite(node *yaml.Node) bool {
	if node == nil {
		return false
	}
	if node.Kind == yaml.AliasNode {
		return isComposite(node.Alias)
	}
	return node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode
}

// nameAllocator resolves schema name collisions within one top-level
// synthesis call. It is seeded with the registry's existing names so a
// later synthesis never clobbers an earlier registration.
type nameAllocator struct {
	used map[string]bool
}

func newNameAllocator(registry *spec.SchemaRegistry) *nameAllocator {
	used := make(map[string]bool, registry.Len())
	for _, name := range registry.Keys() {
		used[name] = true
	}
	return &nameAllocator{used: used}
}

func (a *nameAllocator) allocate(prefix string) string {
	if prefix == "" {
		prefix = "Schema"
	}
	name := prefix
	for i := 1; a.used[name]; i++ {
		name = fmt.Sprintf("%s%d", prefix, i)
	}
	a.used[name] = true
	return name
}
