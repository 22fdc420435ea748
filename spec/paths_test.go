package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathItemSetAndGetOperation(t *testing.T) {
	item := &PathItem{}
	op := &Operation{OperationID: "get_pets"}

	require.True(t, item.SetOperation("get", op))
	assert.Same(t, op, item.Operation("get"))
	assert.Nil(t, item.Operation("post"))
}

func TestPathItemAllMethods(t *testing.T) {
	item := &PathItem{}
	for _, method := range Methods {
		op := &Operation{OperationID: method}
		require.True(t, item.SetOperation(method, op), "method %s", method)
		assert.Same(t, op, item.Operation(method), "method %s", method)
	}
}

func TestPathItemUnknownMethod(t *testing.T) {
	item := &PathItem{}
	assert.False(t, item.SetOperation("propfind", &Operation{}))
	assert.Nil(t, item.Operation("propfind"))
}

func TestPathItemNilReceiver(t *testing.T) {
	var item *PathItem
	assert.Nil(t, item.Operation("get"))
}

func TestSchemaClone(t *testing.T) {
	props := NewOrderedMap[*Schema]()
	props.Set("id", &Schema{Type: "integer", Example: 7})
	props.Set("tags", &Schema{Type: "array", Items: &Schema{Type: "string"}})
	original := &Schema{
		Type:       "object",
		Properties: props,
		Required:   []string{"id"},
	}

	clone := original.Clone()
	require.NotSame(t, original, clone)

	// Mutating the clone must not affect the original.
	cloneID, _ := clone.Properties.Get("id")
	cloneID.Type = "string"
	clone.Required[0] = "changed"

	origID, _ := original.Properties.Get("id")
	assert.Equal(t, "integer", origID.Type)
	assert.Equal(t, []string{"id"}, original.Required)
	assert.Equal(t, []string{"id", "tags"}, clone.Properties.Keys())
}

func TestSchemaCloneNil(t *testing.T) {
	var s *Schema
	assert.Nil(t, s.Clone())
}

func TestSchemaIsRef(t *testing.T) {
	assert.True(t, (&Schema{Ref: "#/components/schemas/Pet"}).IsRef())
	assert.False(t, (&Schema{Type: "string"}).IsRef())
	var s *Schema
	assert.False(t, s.IsRef())
}
