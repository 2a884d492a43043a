package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/reqgen/reqgen/extract"
	"github.com/reqgen/reqgen/internal/cliutil"
	"github.com/reqgen/reqgen/render"
	"github.com/reqgen/reqgen/spec"
)

// OpenAPIFlags contains flags for the openapi command
type OpenAPIFlags struct {
	Format        string
	Output        string
	OutputFormat  string
	GroupFallback string
	Verbose       bool
}

// SetupOpenAPIFlags creates and configures a FlagSet for the openapi command.
// Returns the FlagSet and an OpenAPIFlags struct with bound flag variables.
func SetupOpenAPIFlags() (*flag.FlagSet, *OpenAPIFlags) {
	fs := flag.NewFlagSet("openapi", flag.ContinueOnError)
	flags := &OpenAPIFlags{}

	fs.StringVar(&flags.Format, "f", string(render.FormatRESTClient), "request format (rest-client, httpie, curl)")
	fs.StringVar(&flags.Format, "format", string(render.FormatRESTClient), "request format (rest-client, httpie, curl)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.OutputFormat, "output-format", FormatText, "output format (text, json, yaml)")
	fs.StringVar(&flags.GroupFallback, "group-fallback", "Other", "group name for endpoints without tags")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose: log extraction details to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose: log extraction details to stderr")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: reqgen openapi [flags] <file|->\n\n")
		cliutil.Writef(output, "Generate HTTP request templates from an OpenAPI/Swagger 2.0 specification.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  reqgen openapi swagger.yaml\n")
		cliutil.Writef(output, "  reqgen openapi -o api.http swagger.yaml\n")
		cliutil.Writef(output, "  reqgen openapi -f curl -o api.sh swagger.yaml\n")
		cliutil.Writef(output, "  reqgen openapi --output-format json swagger.yaml\n")
		cliutil.Writef(output, "  cat swagger.yaml | reqgen openapi -\n")
		cliutil.Writef(output, "\nPipelining:\n")
		cliutil.Writef(output, "  - Use '-' as the file path to read from stdin\n")
	}

	return fs, flags
}

// endpointListing is the structured (json/yaml) output shape.
type endpointListing struct {
	BaseURL   string             `json:"base_url" yaml:"base_url"`
	Endpoints []extract.Endpoint `json:"endpoints" yaml:"endpoints"`
}

// HandleOpenAPI executes the openapi command
func HandleOpenAPI(args []string) error {
	fs, flags := SetupOpenAPIFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("openapi command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if !render.IsValidFormat(flags.Format) {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s", flags.Format, joinValidFormats())
	}
	if err := ValidateOutputFormat(flags.OutputFormat); err != nil {
		return err
	}

	var doc spec.Document
	var err error
	if specPath == StdinFilePath {
		doc, err = spec.LoadReader(os.Stdin)
	} else {
		doc, err = spec.Load(specPath)
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", FormatSpecPath(specPath), err)
	}

	var opts []extract.Option
	if flags.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, extract.WithLogger(extract.NewSlogAdapter(logger)))
	}

	endpoints := extract.Extract(doc, opts...)
	baseURL := extract.BaseURL(doc)

	var data []byte
	switch flags.OutputFormat {
	case FormatText:
		groups := extract.GroupByTag(endpoints, flags.GroupFallback)
		var buf bytes.Buffer
		if render.Format(flags.Format) == render.FormatRESTClient {
			render.HTTPFile(&buf, baseURL, groups)
		} else if err := render.ScriptFile(&buf, baseURL, groups, render.Format(flags.Format)); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		listing := endpointListing{BaseURL: baseURL, Endpoints: endpoints}
		data, err = MarshalStructured(listing, flags.OutputFormat)
		if err != nil {
			return err
		}
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{specPath}); err != nil {
			return err
		}
		if err := WriteOutputFile(flags.Output, data); err != nil {
			return err
		}
		cliutil.Writef(os.Stderr, "Generated %d request template(s) from %s\n", len(endpoints), FormatSpecPath(specPath))
		cliutil.Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		return nil
	}

	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing to stdout: %w", err)
	}
	return nil
}
