// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes reqgen capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reqgen/reqgen"
)

const serverInstructions = `reqgen MCP server — extracts endpoints from OpenAPI/Swagger 2.0 specs and renders plaintext HTTP request templates.

Configuration: All defaults are configurable via REQGEN_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- REQGEN_MAX_INLINE_SIZE (default: 2097152) — maximum inline spec content size in bytes
- REQGEN_DEFAULT_FORMAT (default: rest-client) — default output format for the httpfile tool
- REQGEN_GROUP_FALLBACK (default: Other) — group name for endpoints without tags`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "reqgen", Version: reqgen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "endpoints",
		Description: "Extract endpoints from an OpenAPI/Swagger 2.0 specification. Returns resolved requests: absolute URLs with path parameters substituted and query parameters appended, security headers, and example JSON bodies. Filter by tag or HTTP method to narrow results on large specs.",
	}, handleEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "httpfile",
		Description: "Render an OpenAPI/Swagger 2.0 specification as a plaintext HTTP request template document, grouped by tag. Formats: rest-client (.http blocks), httpie, curl. Use output to write to a file instead of returning the document inline. The default format is configurable via the REQGEN_DEFAULT_FORMAT env var.",
	}, handleHTTPFile)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
