package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolTestSpec = `swagger: "2.0"
host: api.example.com
basePath: /v1
schemes:
  - https
securityDefinitions:
  ApiKey:
    type: apiKey
    in: header
    name: X-API-Key
paths:
  /users:
    get:
      summary: List users
      tags:
        - users
    post:
      summary: Create a user
      tags:
        - users
      security:
        - ApiKey: []
      parameters:
        - name: body
          in: body
          schema:
            type: object
            properties:
              email:
                type: string
                format: email
  /health:
    get:
      summary: Health check
`

func TestEndpointsTool_All(t *testing.T) {
	input := endpointsInput{Spec: specInput{Content: toolTestSpec}}
	result, output, err := handleEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "https://api.example.com/v1", output.BaseURL)
	assert.Equal(t, 3, output.Total)
	assert.Equal(t, 3, output.Returned)
	require.Len(t, output.Endpoints, 3)
	assert.Equal(t, "GET", output.Endpoints[0].Method)
	assert.Equal(t, "https://api.example.com/v1/users", output.Endpoints[0].URL)
}

func TestEndpointsTool_FilterByTag(t *testing.T) {
	input := endpointsInput{Spec: specInput{Content: toolTestSpec}, Tag: "users"}
	_, output, err := handleEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 3, output.Total)
	assert.Equal(t, 2, output.Returned)
	for _, ep := range output.Endpoints {
		assert.Contains(t, ep.Tags, "users")
	}
}

func TestEndpointsTool_FilterByMethod(t *testing.T) {
	input := endpointsInput{Spec: specInput{Content: toolTestSpec}, Method: "post"}
	_, output, err := handleEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Equal(t, 1, output.Returned)
	ep := output.Endpoints[0]
	assert.Equal(t, "POST", ep.Method)

	value, ok := ep.HeaderValue("X-API-Key")
	require.True(t, ok)
	assert.Equal(t, "<your-token>", value)
	assert.Contains(t, ep.Body, `"email": "user@example.com"`)
}

func TestEndpointsTool_BadInput(t *testing.T) {
	result, _, err := handleEndpoints(context.Background(), &mcp.CallToolRequest{}, endpointsInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
