package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/har2oas/oaserrors"
)

func TestDetectFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected SourceFormat
	}{
		{"api.json", SourceFormatJSON},
		{"capture.har", SourceFormatJSON},
		{"api.yaml", SourceFormatYAML},
		{"api.yml", SourceFormatYAML},
		{"api.txt", SourceFormatUnknown},
		{"api", SourceFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormatFromPath(tt.path))
		})
	}
}

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Dialect
	}{
		{"oas3 yaml", "openapi: 3.0.0\ninfo:\n  title: t\n", DialectOAS3},
		{"oas3 json", `{"openapi": "3.0.0"}`, DialectOAS3},
		{"swagger", `{"swagger": "2.0"}`, DialectOAS2},
		{"neither", `{"title": "not a spec"}`, DialectUnknown},
		{"garbage", "{not yaml: [", DialectUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectDialect([]byte(tt.input)))
		})
	}
}

func TestLoadOAS3(t *testing.T) {
	input := `
openapi: 3.0.0
info:
  title: Pet Store
  version: 1.2.3
servers:
  - url: https://api.example.com/v1
paths:
  /pets:
    get:
      operationId: get_pets
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
          example: rex
`
	doc, err := LoadOAS3([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Equal(t, "Pet Store", doc.Info.Title)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com/v1", doc.Servers[0].URL)

	op := doc.Paths["/pets"].Get
	require.NotNil(t, op)
	assert.Equal(t, "get_pets", op.OperationID)
	resp := op.Responses["200"]
	require.NotNil(t, resp)
	mt, ok := resp.Content.Get("application/json")
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Pet", mt.Schema.Ref)

	pet, ok := doc.Components.Schemas.Get("Pet")
	require.True(t, ok)
	name, ok := pet.Properties.Get("name")
	require.True(t, ok)
	assert.Equal(t, "rex", name.Example)
}

func TestLoadOAS3PermissiveDefaults(t *testing.T) {
	doc, err := LoadOAS3([]byte(`{"openapi": "3.0.0"}`))
	require.NoError(t, err)

	assert.NotNil(t, doc.Info)
	assert.NotNil(t, doc.Paths)
	assert.NotNil(t, doc.Components)
	assert.NotNil(t, doc.Components.Schemas)
}

func TestLoadOAS3RejectsSwagger(t *testing.T) {
	_, err := LoadOAS3([]byte(`{"swagger": "2.0", "info": {"title": "t"}}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrUnsupported))
}

func TestLoadOAS3RejectsUnmarkedDocument(t *testing.T) {
	_, err := LoadOAS3([]byte(`{"info": {"title": "t"}}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
}
