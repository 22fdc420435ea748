package spec

// Ref prefixes for component schemas in the two dialects. The downgrade
// converter rewrites the former into the latter.
const (
	OAS3SchemaRefPrefix = "#/components/schemas/"
	OAS2SchemaRefPrefix = "#/definitions/"
)

// Info holds document metadata.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Server is a single server entry of an OAS 3.x document.
type Server struct {
	URL string `yaml:"url" json:"url"`
}

// Components holds the reusable objects of an OAS 3.x document. Extraction
// only ever populates Schemas; RequestBodies and Responses are emitted as
// empty maps for shape compatibility with downstream tooling.
type Components struct {
	Schemas       *SchemaRegistry         `yaml:"schemas" json:"schemas"`
	RequestBodies map[string]*RequestBody `yaml:"requestBodies" json:"requestBodies"`
	Responses     map[string]*Response    `yaml:"responses" json:"responses"`
}

// NewComponents returns a Components block with all sections initialized,
// so empty sections serialize as {} rather than null.
func NewComponents() *Components {
	return &Components{
		Schemas:       NewSchemaRegistry(),
		RequestBodies: make(map[string]*RequestBody),
		Responses:     make(map[string]*Response),
	}
}

// OAS3Document is an OpenAPI 3.0 document: the terminal artifact of
// extraction and the input artifact of the downgrade converter.
type OAS3Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       *Info       `yaml:"info" json:"info"`
	Servers    []*Server   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      Paths       `yaml:"paths" json:"paths"`
	Components *Components `yaml:"components" json:"components"`
}

// OAS2Document is a Swagger 2.0 document produced by the downgrade
// converter.
type OAS2Document struct {
	Swagger     string          `yaml:"swagger" json:"swagger"`
	Info        *Info           `yaml:"info" json:"info"`
	Host        string          `yaml:"host,omitempty" json:"host,omitempty"`
	BasePath    string          `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Schemes     []string        `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Paths       Paths           `yaml:"paths" json:"paths"`
	Definitions *SchemaRegistry `yaml:"definitions" json:"definitions"`
}
