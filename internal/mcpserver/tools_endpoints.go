package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reqgen/reqgen/extract"
)

type endpointsInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The Swagger 2.0 document to extract from"`
	Tag    string    `json:"tag,omitempty"    jsonschema:"Only return endpoints carrying this tag"`
	Method string    `json:"method,omitempty" jsonschema:"Only return endpoints with this HTTP method"`
}

type endpointsOutput struct {
	BaseURL   string             `json:"base_url"`
	Total     int                `json:"total"`
	Returned  int                `json:"returned"`
	Endpoints []extract.Endpoint `json:"endpoints,omitempty"`
}

func handleEndpoints(_ context.Context, _ *mcp.CallToolRequest, input endpointsInput) (*mcp.CallToolResult, endpointsOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), endpointsOutput{}, nil
	}

	endpoints := extract.Extract(doc)

	output := endpointsOutput{
		BaseURL: extract.BaseURL(doc),
		Total:   len(endpoints),
	}
	for _, ep := range endpoints {
		if input.Method != "" && !strings.EqualFold(ep.Method, input.Method) {
			continue
		}
		if input.Tag != "" && !hasTag(ep, input.Tag) {
			continue
		}
		output.Endpoints = append(output.Endpoints, ep)
	}
	output.Returned = len(output.Endpoints)

	return nil, output, nil
}

func hasTag(ep extract.Endpoint, tag string) bool {
	for _, t := range ep.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
