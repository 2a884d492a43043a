package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reqgen/reqgen/extract"
	"github.com/reqgen/reqgen/render"
)

type httpfileInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The Swagger 2.0 document to render"`
	Format string    `json:"format,omitempty" jsonschema:"Output format: rest-client, httpie, or curl (default from REQGEN_DEFAULT_FORMAT)"`
	Output string    `json:"output,omitempty" jsonschema:"Write the rendered document to this file instead of returning it inline"`
}

type httpfileOutput struct {
	Format        string `json:"format"`
	EndpointCount int    `json:"endpoint_count"`
	Content       string `json:"content,omitempty"`
	OutputPath    string `json:"output_path,omitempty"`
}

func handleHTTPFile(_ context.Context, _ *mcp.CallToolRequest, input httpfileInput) (*mcp.CallToolResult, httpfileOutput, error) {
	format := cfg.DefaultFormat
	if input.Format != "" {
		if !render.IsValidFormat(input.Format) {
			return errResult(fmt.Errorf("invalid format %q: must be one of rest-client, httpie, curl", input.Format)), httpfileOutput{}, nil
		}
		format = render.Format(input.Format)
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), httpfileOutput{}, nil
	}

	endpoints := extract.Extract(doc)
	groups := extract.GroupByTag(endpoints, cfg.GroupFallback)
	baseURL := extract.BaseURL(doc)

	var sb strings.Builder
	if format == render.FormatRESTClient {
		render.HTTPFile(&sb, baseURL, groups)
	} else if err := render.ScriptFile(&sb, baseURL, groups, format); err != nil {
		return errResult(err), httpfileOutput{}, nil
	}

	output := httpfileOutput{
		Format:        string(format),
		EndpointCount: len(endpoints),
	}
	if input.Output != "" {
		if err := os.WriteFile(input.Output, []byte(sb.String()), 0600); err != nil {
			return errResult(err), httpfileOutput{}, nil
		}
		output.OutputPath = input.Output
	} else {
		output.Content = sb.String()
	}

	return nil, output, nil
}
