package main

import (
	"fmt"
	"os"

	"github.com/reqgen/reqgen"
	"github.com/reqgen/reqgen/cmd/reqgen/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("reqgen v%s\n", reqgen.Version())
	case "help", "-h", "--help":
		printUsage()
	case "request":
		if err := commands.HandleRequest(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "openapi":
		if err := commands.HandleOpenAPI(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists commands eligible for typo suggestions.
var knownCommands = []string{"request", "openapi", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or the empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`reqgen - HTTP request template generator

Usage:
  reqgen <command> [options]

Commands:
  request     Build a single HTTP request template from explicit parameters
  openapi     Generate request templates from an OpenAPI/Swagger 2.0 specification
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  reqgen request GET https://api.example.com/v1/users
  reqgen request POST https://api.example.com/v1/users -H 'Content-Type: application/json' -b '{"name": "x"}'
  reqgen openapi swagger.yaml
  reqgen openapi -f curl swagger.yaml -o api.sh
  reqgen mcp

Run 'reqgen <command> --help' for more information on a command.`)
}
