package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/har2oas/inference"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxDepth bounds schema synthesis recursion for the convert tools.
	MaxDepth int
	// OutputFormat is the default serialization format ("json" or "yaml").
	OutputFormat string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from HAR2OAS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDepth:     envInt("HAR2OAS_MAX_DEPTH", inference.DefaultMaxDepth),
		OutputFormat: envFormat("HAR2OAS_OUTPUT_FORMAT", "yaml"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if v != "json" && v != "yaml" {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}
