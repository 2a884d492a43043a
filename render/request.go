package render

import (
	"strings"

	"github.com/reqgen/reqgen/extract"
)

// Request is a single resolved HTTP request ready for formatting.
type Request struct {
	Method  string
	URL     string
	Headers []extract.Header
	Body    string
}

// RequestFromEndpoint adapts an extracted endpoint for the single-request
// renderers.
func RequestFromEndpoint(ep extract.Endpoint) Request {
	return Request{
		Method:  ep.Method,
		URL:     ep.URL,
		Headers: ep.Headers,
		Body:    ep.Body,
	}
}

// ParseHeader splits a "Name: value" flag argument into a header.
// Reports false for arguments without a colon.
func ParseHeader(arg string) (extract.Header, bool) {
	name, value, found := strings.Cut(arg, ":")
	if !found {
		return extract.Header{}, false
	}
	return extract.Header{
		Name:  strings.TrimSpace(name),
		Value: strings.TrimSpace(value),
	}, true
}
