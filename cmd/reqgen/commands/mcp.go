package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reqgen/reqgen/internal/cliutil"
	"github.com/reqgen/reqgen/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: reqgen mcp\n\n")
		cliutil.Writef(output, "Run the MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(output, "The server exposes reqgen capabilities as MCP tools for AI assistants.\n")
		cliutil.Writef(output, "Defaults are configurable via REQGEN_* environment variables:\n")
		cliutil.Writef(output, "  REQGEN_MAX_INLINE_SIZE   maximum inline spec content size in bytes (default: 2097152)\n")
		cliutil.Writef(output, "  REQGEN_DEFAULT_FORMAT    default output format for the httpfile tool (default: rest-client)\n")
		cliutil.Writef(output, "  REQGEN_GROUP_FALLBACK    group name for endpoints without tags (default: Other)\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
