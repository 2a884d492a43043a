package render

import (
	"fmt"
	"strings"

	"github.com/reqgen/reqgen/reqerrors"
)

// Format names a single-request output format.
type Format string

// Supported output formats.
const (
	// FormatRESTClient is the .http request block syntax understood by
	// editor REST clients.
	FormatRESTClient Format = "rest-client"

	// FormatHTTPie is a multi-line httpie shell invocation.
	FormatHTTPie Format = "httpie"

	// FormatCurl is a multi-line curl shell invocation.
	FormatCurl Format = "curl"
)

// ValidFormats returns the supported format names in display order.
func ValidFormats() []Format {
	return []Format{FormatRESTClient, FormatHTTPie, FormatCurl}
}

// IsValidFormat reports whether name is a supported format.
func IsValidFormat(name string) bool {
	switch Format(name) {
	case FormatRESTClient, FormatHTTPie, FormatCurl:
		return true
	default:
		return false
	}
}

// Render serializes a request in the given format. Unknown formats are a
// configuration error.
func Render(req Request, format Format) (string, error) {
	switch format {
	case FormatRESTClient:
		return renderRESTClient(req), nil
	case FormatHTTPie:
		return renderHTTPie(req), nil
	case FormatCurl:
		return renderCurl(req), nil
	default:
		return "", reqerrors.NewConfigError("format", string(format),
			fmt.Sprintf("must be one of: %s", joinFormats()))
	}
}

func joinFormats() string {
	names := make([]string, 0, 3)
	for _, f := range ValidFormats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// renderRESTClient emits the .http request block: request line, header
// lines, then a blank line and the body.
func renderRESTClient(req Request) string {
	lines := []string{req.Method + " " + req.URL}
	for _, h := range req.Headers {
		lines = append(lines, h.Name+": "+h.Value)
	}
	if req.Body != "" {
		lines = append(lines, "", req.Body)
	}
	return strings.Join(lines, "\n")
}

// renderHTTPie emits an httpie invocation with one argument per
// continuation line.
func renderHTTPie(req Request) string {
	lines := []string{"http " + req.Method + " " + req.URL}
	for _, h := range req.Headers {
		lines = append(lines, "  "+h.Name+":"+h.Value)
	}
	if req.Body != "" {
		lines = append(lines, "  <<< '"+req.Body+"'")
	}
	return strings.Join(lines, " \\\n")
}

// renderCurl emits a curl invocation, URL last.
func renderCurl(req Request) string {
	parts := []string{"curl -X " + req.Method}
	for _, h := range req.Headers {
		parts = append(parts, "-H '"+h.Name+": "+h.Value+"'")
	}
	if req.Body != "" {
		parts = append(parts, "-d '"+req.Body+"'")
	}
	parts = append(parts, "'"+req.URL+"'")
	return strings.Join(parts, " \\\n  ")
}
