package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/reqgen/reqgen/render"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInlineSize caps inline spec content, in bytes.
	MaxInlineSize int64

	// DefaultFormat is the httpfile tool's format when none is requested.
	DefaultFormat render.Format

	// GroupFallback names the group for endpoints without tags.
	GroupFallback string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from REQGEN_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInlineSize: envInt64("REQGEN_MAX_INLINE_SIZE", 2*1024*1024),
		DefaultFormat: envFormat("REQGEN_DEFAULT_FORMAT", render.FormatRESTClient),
		GroupFallback: envString("REQGEN_GROUP_FALLBACK", "Other"),
	}
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envFormat(key string, fallback render.Format) render.Format {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !render.IsValidFormat(v) {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return render.Format(v)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
