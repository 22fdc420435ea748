package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/har2oas/oaserrors"
	"github.com/erraggy/har2oas/spec"
)

func mediaContent(pairs ...[2]string) *spec.OrderedMap[*spec.MediaType] {
	content := spec.NewOrderedMap[*spec.MediaType]()
	for _, p := range pairs {
		content.Set(p[0], &spec.MediaType{Schema: &spec.Schema{Ref: spec.OAS3SchemaRefPrefix + p[1]}})
	}
	return content
}

func petstoreOAS3() *spec.OAS3Document {
	components := spec.NewComponents()

	props := spec.NewOrderedMap[*spec.Schema]()
	props.Set("name", &spec.Schema{Type: "string"})
	props.Set("tags", &spec.Schema{
		Type:  "array",
		Items: &spec.Schema{Ref: spec.OAS3SchemaRefPrefix + "Tag"},
	})
	components.Schemas.Set("Pet", &spec.Schema{Type: "object", Properties: props})
	components.Schemas.Set("Tag", &spec.Schema{Type: "object"})

	return &spec.OAS3Document{
		OpenAPI: "3.0.0",
		Info:    &spec.Info{Title: "Petstore", Version: "1.0.0"},
		Servers: []*spec.Server{{URL: "https://api.example.com/v1"}},
		Paths: spec.Paths{
			"/pets": {
				Post: &spec.Operation{
					Summary:     "POST /pets",
					OperationID: "post_pets",
					Parameters: []*spec.Parameter{
						{
							Name: "X-Api-Key", In: "header", Required: true,
							Schema: &spec.Schema{Type: "string", Example: "abc"},
						},
					},
					RequestBody: &spec.RequestBody{
						Required: true,
						Content:  mediaContent([2]string{"application/json", "Pet"}),
					},
					Responses: map[string]*spec.Response{
						"200": {
							Description: "OK",
							Content:     mediaContent([2]string{"application/json", "Pet"}),
						},
					},
				},
			},
		},
		Components: components,
	}
}

func TestDowngradeTopLevel(t *testing.T) {
	result, err := Downgrade(petstoreOAS3())
	require.NoError(t, err)
	require.True(t, result.Success)

	doc := result.Document
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, &spec.Info{Title: "Petstore", Version: "1.0.0"}, doc.Info)
	assert.Equal(t, []string{"Pet", "Tag"}, doc.Definitions.Keys())
}

func TestDowngradeServerDecomposition(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		host     string
		basePath string
		schemes  []string
	}{
		{"with path", "https://api.example.com/v1", "api.example.com", "/v1", []string{"https"}},
		{"without path", "https://api.example.com", "api.example.com", "/", []string{"https"}},
		{"http scheme", "http://localhost:8080/api", "localhost:8080", "/api", []string{"http"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := petstoreOAS3()
			src.Servers = []*spec.Server{{URL: tt.url}}

			result, err := Downgrade(src)
			require.NoError(t, err)

			assert.Equal(t, tt.host, result.Document.Host)
			assert.Equal(t, tt.basePath, result.Document.BasePath)
			assert.Equal(t, tt.schemes, result.Document.Schemes)
		})
	}

	t.Run("no servers omits all three fields", func(t *testing.T) {
		src := petstoreOAS3()
		src.Servers = nil

		result, err := Downgrade(src)
		require.NoError(t, err)

		assert.Empty(t, result.Document.Host)
		assert.Empty(t, result.Document.BasePath)
		assert.Nil(t, result.Document.Schemes)
	})

	t.Run("multiple servers keeps the first and warns", func(t *testing.T) {
		src := petstoreOAS3()
		src.Servers = []*spec.Server{
			{URL: "https://api.example.com/v1"},
			{URL: "https://staging.example.com/v1"},
		}

		result, err := Downgrade(src)
		require.NoError(t, err)

		assert.Equal(t, "api.example.com", result.Document.Host)
		assert.Equal(t, 1, result.WarningCount)
	})
}

func TestDowngradeReferenceRewrite(t *testing.T) {
	result, err := Downgrade(petstoreOAS3())
	require.NoError(t, err)

	pet, ok := result.Document.Definitions.Get("Pet")
	require.True(t, ok)
	tags, ok := pet.Properties.Get("tags")
	require.True(t, ok)
	assert.Equal(t, "#/definitions/Tag", tags.Items.Ref)
}

func TestRewriteRef(t *testing.T) {
	assert.Equal(t, "#/definitions/Pet", rewriteRef("#/components/schemas/Pet"))
	// Unknown prefixes pass through untouched.
	assert.Equal(t, "#/components/parameters/Limit", rewriteRef("#/components/parameters/Limit"))
	assert.Equal(t, "external.yaml#/Pet", rewriteRef("external.yaml#/Pet"))
}

func TestDowngradeParameterReshaping(t *testing.T) {
	t.Run("inline schema is flattened", func(t *testing.T) {
		result, err := Downgrade(petstoreOAS3())
		require.NoError(t, err)

		op := result.Document.Paths["/pets"].Post
		require.NotEmpty(t, op.Parameters)
		param := op.Parameters[0]
		assert.Equal(t, "X-Api-Key", param.Name)
		assert.Equal(t, "string", param.Type)
		assert.Nil(t, param.Schema, "the nested schema wrapper must be dropped")
	})

	t.Run("ref schema keeps only the rewritten ref", func(t *testing.T) {
		src := petstoreOAS3()
		src.Paths["/pets"].Post.Parameters = []*spec.Parameter{
			{Name: "pet", In: "query", Schema: &spec.Schema{Ref: spec.OAS3SchemaRefPrefix + "Pet"}},
		}

		result, err := Downgrade(src)
		require.NoError(t, err)

		param := result.Document.Paths["/pets"].Post.Parameters[0]
		require.NotNil(t, param.Schema)
		assert.Equal(t, "#/definitions/Pet", param.Schema.Ref)
		assert.Empty(t, param.Type)
	})

	t.Run("parameter without schema passes through", func(t *testing.T) {
		src := petstoreOAS3()
		src.Paths["/pets"].Post.Parameters = []*spec.Parameter{
			{Name: "limit", In: "query", Type: "integer"},
		}

		result, err := Downgrade(src)
		require.NoError(t, err)

		param := result.Document.Paths["/pets"].Post.Parameters[0]
		assert.Equal(t, "integer", param.Type)
	})
}

func TestDowngradeRequestBody(t *testing.T) {
	result, err := Downgrade(petstoreOAS3())
	require.NoError(t, err)

	op := result.Document.Paths["/pets"].Post
	require.Len(t, op.Parameters, 2, "header parameter plus synthetic body parameter")

	body := op.Parameters[1]
	assert.Equal(t, "body", body.Name)
	assert.Equal(t, "body", body.In)
	assert.True(t, body.Required)
	require.NotNil(t, body.Schema)
	assert.Equal(t, "#/definitions/Pet", body.Schema.Ref)

	assert.Equal(t, []string{"application/json"}, op.Consumes)
	assert.Nil(t, op.RequestBody, "request bodies do not survive the downgrade")
}

func TestDowngradeMultipleMediaTypes(t *testing.T) {
	src := petstoreOAS3()
	src.Paths["/pets"].Post.RequestBody.Content = mediaContent(
		[2]string{"application/json", "Pet"},
		[2]string{"application/xml", "Pet"},
	)

	result, err := Downgrade(src)
	require.NoError(t, err)

	op := result.Document.Paths["/pets"].Post
	body := op.Parameters[len(op.Parameters)-1]
	assert.Equal(t, "#/definitions/Pet", body.Schema.Ref)
	// All keys survive as consumes even though only one schema does.
	assert.Equal(t, []string{"application/json", "application/xml"}, op.Consumes)
	assert.Equal(t, 1, result.WarningCount)
}

func TestDowngradeResponses(t *testing.T) {
	src := petstoreOAS3()
	src.Paths["/pets"].Post.Responses = map[string]*spec.Response{
		"200": {Description: "OK", Content: mediaContent([2]string{"application/json", "Pet"})},
		"404": {Description: "Not Found", Content: mediaContent([2]string{"application/json", "Error"})},
		"500": {Description: "Boom"},
	}
	src.Components.Schemas.Set("Error", &spec.Schema{Type: "object"})

	result, err := Downgrade(src)
	require.NoError(t, err)

	op := result.Document.Paths["/pets"].Post
	assert.Equal(t, "#/definitions/Pet", op.Responses["200"].Schema.Ref)
	assert.Equal(t, "#/definitions/Error", op.Responses["404"].Schema.Ref)
	assert.Nil(t, op.Responses["500"].Schema)
	assert.Nil(t, op.Responses["200"].Content, "content maps do not survive the downgrade")

	// produces unions content types across status codes, de-duplicated.
	assert.Equal(t, []string{"application/json"}, op.Produces)
}

func TestDowngradeProducesOrderDeterministic(t *testing.T) {
	// Responses are walked in sorted status-code order, so produces must
	// come out identically on every run regardless of map iteration order.
	build := func() *spec.OAS3Document {
		src := petstoreOAS3()
		src.Paths["/pets"].Post.Responses = map[string]*spec.Response{
			"200": {Description: "OK", Content: mediaContent([2]string{"application/json", "Pet"})},
			"400": {Description: "Bad Request", Content: mediaContent([2]string{"text/plain", "Pet"})},
			"404": {Description: "Not Found", Content: mediaContent([2]string{"text/html", "Pet"})},
			"500": {Description: "Boom", Content: mediaContent([2]string{"application/xml", "Pet"})},
		}
		return src
	}

	want := []string{"application/json", "text/plain", "text/html", "application/xml"}
	for i := 0; i < 50; i++ {
		result, err := Downgrade(build())
		require.NoError(t, err)
		require.Equal(t, want, result.Document.Paths["/pets"].Post.Produces)
	}
}

func TestDowngradeOmitsEmptyConsumesProduces(t *testing.T) {
	src := petstoreOAS3()
	src.Paths["/pets"].Post.RequestBody = nil
	src.Paths["/pets"].Post.Responses = map[string]*spec.Response{
		"204": {Description: "No Content"},
	}

	result, err := Downgrade(src)
	require.NoError(t, err)

	op := result.Document.Paths["/pets"].Post
	assert.Nil(t, op.Consumes)
	assert.Nil(t, op.Produces)
}

func TestDowngradeDoesNotMutateSource(t *testing.T) {
	src := petstoreOAS3()
	_, err := Downgrade(src)
	require.NoError(t, err)

	pet, ok := src.Components.Schemas.Get("Pet")
	require.True(t, ok)
	tags, _ := pet.Properties.Get("tags")
	assert.Equal(t, spec.OAS3SchemaRefPrefix+"Tag", tags.Items.Ref,
		"source refs must keep the components prefix")
	assert.NotNil(t, src.Paths["/pets"].Post.RequestBody)
}

func TestDowngradeNilDocument(t *testing.T) {
	_, err := Downgrade(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConversion))
}

func TestUpgradeUnsupported(t *testing.T) {
	_, err := Upgrade(&spec.OAS2Document{Swagger: "2.0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrUnsupported))
}

func TestDowngradeEmptyDocument(t *testing.T) {
	result, err := Downgrade(&spec.OAS3Document{OpenAPI: "3.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "2.0", result.Document.Swagger)
	assert.Empty(t, result.Document.Paths)
	assert.Zero(t, result.Document.Definitions.Len())
}
