package extract

import (
	"strings"

	"github.com/reqgen/reqgen/spec"
)

// securityHeaders resolves an operation's effective security requirements
// into concrete header placeholders.
//
// Operation-level security overrides the document's global security when
// non-empty. Only apiKey schemes delivered via a header are actionable;
// every other scheme type (basic, oauth2) is skipped without error and
// must be completed by hand in the generated template.
func securityHeaders(doc spec.Document, operation *spec.Map, log Logger) []Header {
	security, _ := spec.SliceAt(operation, "security")
	if len(security) == 0 {
		security, _ = spec.SliceAt(doc, "security")
	}
	if len(security) == 0 {
		return nil
	}

	definitions, ok := spec.MapAt(doc, "securityDefinitions")
	if !ok {
		return nil
	}

	var headers []Header
	for _, raw := range security {
		requirement, ok := spec.AsMap(raw)
		if !ok {
			continue
		}
		for _, schemeName := range requirement.Keys() {
			scheme, ok := spec.MapAt(definitions, schemeName)
			if !ok {
				log.Debug("security requirement names undefined scheme", "scheme", schemeName)
				continue
			}
			schemeType, _ := spec.StringAt(scheme, "type")
			schemeIn, _ := spec.StringAt(scheme, "in")
			if schemeType != "apiKey" || schemeIn != "header" {
				log.Debug("skipping non-header security scheme", "scheme", schemeName, "type", schemeType)
				continue
			}
			name, _ := spec.StringAt(scheme, "name")
			description, _ := spec.StringAt(scheme, "description")
			headers = setHeader(headers, name, tokenPlaceholder(description), true)
		}
	}
	return headers
}

// tokenPlaceholder decides the placeholder value for an apiKey header.
//
// OAS 2.0 apiKey schemes have no first-class notion of a bearer-token
// sub-type, so the scheme description is mined as a signal: a description
// mentioning "bearer" (case-insensitive) yields a Bearer-prefixed
// placeholder. Kept as its own function so the heuristic can be swapped
// without touching the extraction pipeline.
func tokenPlaceholder(description string) string {
	if strings.Contains(strings.ToLower(description), "bearer") {
		return "Bearer <your-token>"
	}
	return "<your-token>"
}
