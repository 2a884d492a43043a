package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqgen/reqgen"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "no path",
			err:  errors.New("exactly one of file or content must be provided"),
			want: "exactly one of file or content must be provided",
		},
		{
			name: "tmp path stripped",
			err:  errors.New("open /tmp/secret/swagger.yaml: no such file"),
			want: "open <path>: no such file",
		},
		{
			name: "home path stripped",
			err:  errors.New("reading /home/alice/specs/api.yaml failed"),
			want: "reading <path> failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "boom", text.Text)
}

func TestRegisterAllTools(t *testing.T) {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "reqgen", Version: reqgen.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	// Registration panics on duplicate or malformed tool definitions.
	registerAllTools(server)
}
