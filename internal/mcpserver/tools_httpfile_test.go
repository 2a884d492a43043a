package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFileTool_DefaultFormat(t *testing.T) {
	input := httpfileInput{Spec: specInput{Content: toolTestSpec}}
	result, output, err := handleHTTPFile(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "rest-client", output.Format)
	assert.Equal(t, 3, output.EndpointCount)
	assert.Empty(t, output.OutputPath)
	assert.True(t, strings.HasPrefix(output.Content, "### Generated from OpenAPI/Swagger specification\n"))
	assert.Contains(t, output.Content, "### Users")
	assert.Contains(t, output.Content, "GET https://api.example.com/v1/health")
}

func TestHTTPFileTool_CurlFormat(t *testing.T) {
	input := httpfileInput{Spec: specInput{Content: toolTestSpec}, Format: "curl"}
	_, output, err := handleHTTPFile(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "curl", output.Format)
	assert.True(t, strings.HasPrefix(output.Content, "# Generated from OpenAPI/Swagger specification\n"))
	assert.Contains(t, output.Content, "curl -X GET")
}

func TestHTTPFileTool_InvalidFormat(t *testing.T) {
	input := httpfileInput{Spec: specInput{Content: toolTestSpec}, Format: "wget"}
	result, _, err := handleHTTPFile(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHTTPFileTool_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.http")
	input := httpfileInput{Spec: specInput{Content: toolTestSpec}, Output: path}
	_, output, err := handleHTTPFile(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, path, output.OutputPath)
	assert.Empty(t, output.Content)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "### Base URL: https://api.example.com/v1")
}

func TestHTTPFileTool_BadInput(t *testing.T) {
	result, _, err := handleHTTPFile(context.Background(), &mcp.CallToolRequest{}, httpfileInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
