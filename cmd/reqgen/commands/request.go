package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/reqgen/reqgen/internal/cliutil"
	"github.com/reqgen/reqgen/render"
)

// headerFlags collects repeatable "Name: value" header arguments.
type headerFlags struct {
	headers []string
}

func (h *headerFlags) String() string {
	return strings.Join(h.headers, ", ")
}

func (h *headerFlags) Set(value string) error {
	if _, ok := render.ParseHeader(value); !ok {
		return fmt.Errorf("invalid header %q: expected 'Name: value'", value)
	}
	h.headers = append(h.headers, value)
	return nil
}

// RequestFlags contains flags for the request command
type RequestFlags struct {
	Headers headerFlags
	Body    string
	Format  string
	Output  string
}

// SetupRequestFlags creates and configures a FlagSet for the request command.
// Returns the FlagSet and a RequestFlags struct with bound flag variables.
func SetupRequestFlags() (*flag.FlagSet, *RequestFlags) {
	fs := flag.NewFlagSet("request", flag.ContinueOnError)
	flags := &RequestFlags{Format: string(render.FormatRESTClient)}

	fs.Var(&flags.Headers, "H", "request header as 'Name: value' (repeatable)")
	fs.Var(&flags.Headers, "header", "request header as 'Name: value' (repeatable)")
	fs.StringVar(&flags.Body, "b", "", "request body")
	fs.StringVar(&flags.Body, "body", "", "request body")
	fs.StringVar(&flags.Format, "f", string(render.FormatRESTClient), "output format (rest-client, httpie, curl)")
	fs.StringVar(&flags.Format, "format", string(render.FormatRESTClient), "output format (rest-client, httpie, curl)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: reqgen request [flags] <method> <url>\n\n")
		cliutil.Writef(output, "Build a single HTTP request template from explicit parameters.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  reqgen request GET https://api.example.com/v1/users\n")
		cliutil.Writef(output, "  reqgen request POST https://api.example.com/v1/users -H 'Content-Type: application/json' -b '{\"name\": \"x\"}'\n")
		cliutil.Writef(output, "  reqgen request -f curl DELETE https://api.example.com/v1/users/42\n")
		cliutil.Writef(output, "  reqgen request -f httpie -o request.sh GET https://api.example.com/v1/health\n")
	}

	return fs, flags
}

// HandleRequest executes the request command
func HandleRequest(args []string) error {
	fs, flags := SetupRequestFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("request command requires exactly a method and a URL")
	}

	if !render.IsValidFormat(flags.Format) {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s", flags.Format, joinValidFormats())
	}

	req := render.Request{
		Method: strings.ToUpper(fs.Arg(0)),
		URL:    fs.Arg(1),
	}
	for _, arg := range flags.Headers.headers {
		header, _ := render.ParseHeader(arg)
		req.Headers = append(req.Headers, header)
	}
	req.Body = flags.Body

	out, err := render.Render(req, render.Format(flags.Format))
	if err != nil {
		return err
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, nil); err != nil {
			return err
		}
		if err := WriteOutputFile(flags.Output, []byte(out+"\n")); err != nil {
			return err
		}
		cliutil.Writef(os.Stderr, "Request written to: %s\n", flags.Output)
		return nil
	}

	fmt.Println(out)
	return nil
}

func joinValidFormats() string {
	names := make([]string, 0, len(render.ValidFormats()))
	for _, f := range render.ValidFormats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
