package render

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/reqgen/reqgen/extract"
	"github.com/reqgen/reqgen/internal/cliutil"
)

// titleCaser title-cases tag names for group headings
// (strings.Title is deprecated).
var titleCaser = cases.Title(language.English)

// HTTPFile renders a grouped .http document for an extracted endpoint
// list. Each group opens with a "### <Tag>" heading; each endpoint gets
// comment lines for its summary and the first line of its description,
// followed by a rest-client request block.
func HTTPFile(w io.Writer, baseURL string, groups []extract.TagGroup) {
	cliutil.Writeln(w, "### Generated from OpenAPI/Swagger specification")
	cliutil.Writef(w, "### Base URL: %s\n", baseURL)
	cliutil.Writeln(w, "")

	for _, group := range groups {
		cliutil.Writef(w, "### %s\n", titleCaser.String(group.Name))
		cliutil.Writeln(w, "")

		for _, ep := range group.Endpoints {
			if ep.Summary != "" {
				cliutil.Writef(w, "### %s\n", ep.Summary)
			}
			if desc := firstLine(ep.Description); desc != "" && desc != ep.Summary {
				cliutil.Writef(w, "### %s\n", desc)
			}

			cliutil.Writeln(w, renderRESTClient(RequestFromEndpoint(ep)))
			cliutil.Writeln(w, "")
			cliutil.Writeln(w, "")
		}
	}
}

// HTTPFileString is HTTPFile rendered to a string.
func HTTPFileString(baseURL string, groups []extract.TagGroup) string {
	var sb strings.Builder
	HTTPFile(&sb, baseURL, groups)
	return sb.String()
}

// ScriptFile renders every endpoint as a httpie or curl block separated by
// blank lines, with a leading comment header. Used when a whole
// specification is exported in a shell-command format.
func ScriptFile(w io.Writer, baseURL string, groups []extract.TagGroup, format Format) error {
	cliutil.Writeln(w, "# Generated from OpenAPI/Swagger specification")
	cliutil.Writef(w, "# Base URL: %s\n", baseURL)
	cliutil.Writeln(w, "")

	for _, group := range groups {
		cliutil.Writef(w, "# %s\n", titleCaser.String(group.Name))
		cliutil.Writeln(w, "")

		for _, ep := range group.Endpoints {
			if ep.Summary != "" {
				cliutil.Writef(w, "# %s\n", ep.Summary)
			}
			out, err := Render(RequestFromEndpoint(ep), format)
			if err != nil {
				return err
			}
			cliutil.Writeln(w, out)
			cliutil.Writeln(w, "")
		}
	}
	return nil
}

// firstLine returns the first non-empty trimmed line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
