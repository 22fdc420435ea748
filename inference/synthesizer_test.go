package inference

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/har2oas/oaserrors"
	"github.com/erraggy/har2oas/spec"
)

func synthesizeJSON(t *testing.T, reg *spec.SchemaRegistry, prefix, body string) *spec.Schema {
	t.Helper()
	node, ok := ParseJSON(body)
	require.True(t, ok)
	result, err := NewSynthesizer(reg).Synthesize(prefix, node)
	require.NoError(t, err)
	return result
}

func TestSynthesizeObject(t *testing.T) {
	reg := spec.NewSchemaRegistry()
	body := `{"name": "rex", "age": 3, "tags": ["good"], "owner": {"id": 1}}`

	result := synthesizeJSON(t, reg, "Pet", body)
	assert.Equal(t, "#/components/schemas/Pet", result.Ref)

	assert.Equal(t, []string{"Pet", "Pet_tags", "Pet_owner"}, reg.Keys())

	pet, _ := reg.Get("Pet")
	assert.Equal(t, "object", pet.Type)
	assert.Equal(t, []string{"name", "age", "tags", "owner"}, pet.Properties.Keys())

	name, _ := pet.Properties.Get("name")
	assert.Equal(t, &spec.Schema{Type: "string", Example: "rex"}, name)

	tags, _ := pet.Properties.Get("tags")
	assert.Equal(t, "#/components/schemas/Pet_tags", tags.Ref)

	tagsSchema, _ := reg.Get("Pet_tags")
	assert.Equal(t, "array", tagsSchema.Type)
	assert.Equal(t, &spec.Schema{Type: "string", Example: "good"}, tagsSchema.Items)

	owner, _ := reg.Get("Pet_owner")
	assert.Equal(t, "object", owner.Type)
	id, _ := owner.Properties.Get("id")
	assert.Equal(t, &spec.Schema{Type: "integer", Example: int64(1)}, id)
}

func TestSynthesizeScalarBypassesRegistry(t *testing.T) {
	reg := spec.NewSchemaRegistry()
	result := synthesizeJSON(t, reg, "Response", `"hello"`)

	assert.Equal(t, &spec.Schema{Type: "string", Example: "hello"}, result)
	assert.Zero(t, reg.Len(), "scalar synthesis must not register schemas")
}

func TestSynthesizeEmptyArray(t *testing.T) {
	reg := spec.NewSchemaRegistry()
	result := synthesizeJSON(t, reg, "List", `[]`)

	assert.Equal(t, "#/components/schemas/List", result.Ref)
	list, _ := reg.Get("List")
	assert.Equal(t, "array", list.Type)
	assert.Equal(t, &spec.Schema{Type: "string"}, list.Items, "empty arrays default to string items")
}

func TestSynthesizeArrayOfObjects(t *testing.T) {
	reg := spec.NewSchemaRegistry()
	result := synthesizeJSON(t, reg, "Response", `[{"id": 1}, {"different": true}]`)

	assert.Equal(t, "#/components/schemas/Response", result.Ref)
	assert.Equal(t, []string{"Response", "Response_item"}, reg.Keys())

	// Only the first element shapes the item schema.
	item, _ := reg.Get("Response_item")
	assert.Equal(t, []string{"id"}, item.Properties.Keys())
}

func TestSynthesizeNameCollisionWithinOneCall(t *testing.T) {
	reg := spec.NewSchemaRegistry()
	// "Top_a_b" is produced twice: once by the literal "a_b" key and once
	// by the nested b under a.
	body := `{"a_b": {"x": 1}, "a": {"b": {"y": 2}}}`
	synthesizeJSON(t, reg, "Top", body)

	assert.Equal(t, []string{"Top", "Top_a_b", "Top_a", "Top_a_b1"}, reg.Keys())
}

func TestSynthesizeNameCollisionAcrossCalls(t *testing.T) {
	reg := spec.NewSchemaRegistry()

	first := synthesizeJSON(t, reg, "RequestBody", `{"a": 1}`)
	second := synthesizeJSON(t, reg, "RequestBody", `{"b": 2}`)

	assert.Equal(t, "#/components/schemas/RequestBody", first.Ref)
	assert.Equal(t, "#/components/schemas/RequestBody1", second.Ref)

	// The first registration must be intact.
	original, _ := reg.Get("RequestBody")
	assert.Equal(t, []string{"a"}, original.Properties.Keys())
}

func TestSynthesizeIdempotentNaming(t *testing.T) {
	body := `{"users": [{"name": "a", "roles": ["admin"]}], "total": 2}`

	regA := spec.NewSchemaRegistry()
	regB := spec.NewSchemaRegistry()
	resultA := synthesizeJSON(t, regA, "Response", body)
	resultB := synthesizeJSON(t, regB, "Response", body)

	assert.Equal(t, resultA, resultB)
	require.Equal(t, regA.Keys(), regB.Keys())
	for _, name := range regA.Keys() {
		a, _ := regA.Get(name)
		b, _ := regB.Get(name)
		assert.Equal(t, a, b, "schema %s", name)
	}
}

func TestSynthesizeNoDanglingReferences(t *testing.T) {
	reg := spec.NewSchemaRegistry()
	body := `{"a": {"b": [{"c": {"d": 1}}]}, "e": [[1]]}`
	synthesizeJSON(t, reg, "Root", body)

	var check func(s *spec.Schema)
	check = func(s *spec.Schema) {
		if s == nil {
			return
		}
		if s.Ref != "" {
			name := strings.TrimPrefix(s.Ref, "#/components/schemas/")
			assert.True(t, reg.Has(name), "dangling reference %s", s.Ref)
		}
		check(s.Items)
		if s.Properties != nil {
			for _, key := range s.Properties.Keys() {
				prop, _ := s.Properties.Get(key)
				check(prop)
			}
		}
	}
	for _, name := range reg.Keys() {
		schema, _ := reg.Get(name)
		check(schema)
	}
}

func TestSynthesizeDepthLimit(t *testing.T) {
	depth := 40
	body := strings.Repeat(`{"child":`, depth) + `1` + strings.Repeat(`}`, depth)
	node, ok := ParseJSON(body)
	require.True(t, ok)

	reg := spec.NewSchemaRegistry()
	syn := NewSynthesizer(reg, WithMaxDepth(10))
	_, err := syn.Synthesize("Deep", node)

	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))
	var limitErr *oaserrors.ResourceLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, "nesting_depth", limitErr.ResourceType)
}

func TestSynthesizeEmptyPrefixFallsBack(t *testing.T) {
	reg := spec.NewSchemaRegistry()
	result := synthesizeJSON(t, reg, "", `{"a": 1}`)
	assert.Equal(t, "#/components/schemas/Schema", result.Ref)
}
