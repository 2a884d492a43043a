// Package extract turns a loaded OpenAPI 2.0 document into an ordered list
// of ready-to-render Endpoints.
//
// For every operation declared under paths, the extractor resolves the
// absolute URL (base URL, path parameter substitution, query string),
// synthesizes security headers for header-based apiKey schemes, and
// produces an example request body from the operation's body parameter
// schema, following $ref pointers into the document's own definitions.
//
// The extractor is deliberately permissive: it never returns an error for
// per-operation or per-field anomalies. Wrong shapes fall back to defaults,
// unresolvable references skip the dependent feature, and unsupported
// security scheme types are silently ignored, so an imperfect specification
// still produces as many usable endpoints as possible.
//
// Extraction is purely sequential and stateless: the document tree is only
// read, and repeated calls over the same document yield equal results.
package extract
