package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/har2oas/inference"
)

// clearHAR2OASEnv clears all HAR2OAS_* env vars to isolate tests from the ambient environment.
func clearHAR2OASEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HAR2OAS_MAX_DEPTH", "HAR2OAS_OUTPUT_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearHAR2OASEnv(t)

	c := loadConfig()

	assert.Equal(t, inference.DefaultMaxDepth, c.MaxDepth)
	assert.Equal(t, "yaml", c.OutputFormat)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearHAR2OASEnv(t)
	t.Setenv("HAR2OAS_MAX_DEPTH", "50")
	t.Setenv("HAR2OAS_OUTPUT_FORMAT", "json")

	c := loadConfig()

	assert.Equal(t, 50, c.MaxDepth)
	assert.Equal(t, "json", c.OutputFormat)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearHAR2OASEnv(t)
	t.Setenv("HAR2OAS_MAX_DEPTH", "-3")
	t.Setenv("HAR2OAS_OUTPUT_FORMAT", "xml")

	c := loadConfig()

	assert.Equal(t, inference.DefaultMaxDepth, c.MaxDepth)
	assert.Equal(t, "yaml", c.OutputFormat)
}
