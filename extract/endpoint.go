package extract

import "sort"

// Header is one HTTP header of a resolved endpoint. Headers are kept as an
// ordered slice rather than a map: security headers come first, in
// requirement order, followed by a synthesized Content-Type when a body
// was produced.
type Header struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Endpoint is the resolved, ready-to-render representation of one
// operation: one (path, method) pair from the source document.
// Endpoints are immutable once constructed.
type Endpoint struct {
	// Method is the uppercased HTTP method.
	Method string `json:"method" yaml:"method"`

	// URL is absolute, with path parameters substituted and query
	// parameters appended. Unresolved parameters appear as <name>.
	URL string `json:"url" yaml:"url"`

	// Headers holds security headers first, then Content-Type when a
	// body was synthesized.
	Headers []Header `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Body is a pretty-printed JSON example request body, empty when the
	// operation declares none that could be resolved.
	Body string `json:"body,omitempty" yaml:"body,omitempty"`

	Summary     string `json:"summary,omitempty"      yaml:"summary,omitempty"`
	Description string `json:"description,omitempty"  yaml:"description,omitempty"`
	OperationID string `json:"operation_id,omitempty" yaml:"operation_id,omitempty"`

	// Path is the original path template from the document.
	Path string `json:"path" yaml:"path"`

	// Tags are the operation's tags; the first tag groups the endpoint
	// for rendering.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// HeaderValue returns the value of the named header and whether it is set.
// Lookup is case-insensitive.
func (e Endpoint) HeaderValue(name string) (string, bool) {
	for _, h := range e.Headers {
		if equalHeaderNames(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// TagGroup is a named group of endpoints sharing the same first tag.
type TagGroup struct {
	Name      string     `json:"name"      yaml:"name"`
	Endpoints []Endpoint `json:"endpoints" yaml:"endpoints"`
}

// GroupByTag groups endpoints by their first tag, using fallback (or
// "Other" when fallback is empty) for untagged endpoints. Groups are
// sorted by name; within a group, extraction order is preserved.
func GroupByTag(endpoints []Endpoint, fallback string) []TagGroup {
	if fallback == "" {
		fallback = "Other"
	}

	byTag := make(map[string][]Endpoint)
	var names []string
	for _, ep := range endpoints {
		name := fallback
		if len(ep.Tags) > 0 && ep.Tags[0] != "" {
			name = ep.Tags[0]
		}
		if _, ok := byTag[name]; !ok {
			names = append(names, name)
		}
		byTag[name] = append(byTag[name], ep)
	}
	sort.Strings(names)

	groups := make([]TagGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, TagGroup{Name: name, Endpoints: byTag[name]})
	}
	return groups
}

// equalHeaderNames compares header names case-insensitively without
// allocating.
func equalHeaderNames(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
