// Package reqgen provides tools for generating human-editable HTTP request
// templates from explicit request parameters or OpenAPI 2.0 (Swagger)
// specification documents.
//
// reqgen consists of three primary packages:
//
//   - spec: Load a specification into an untyped document tree and read it
//     with defaulting, shape-tolerant accessors
//   - extract: Resolve every declared operation into a ready-to-render
//     Endpoint (absolute URL, security headers, example request body)
//   - render: Serialize single requests and extracted endpoint lists into
//     rest-client (.http), HTTPie, and curl formats
//
// # Quick Start
//
// Generate a grouped .http file from a Swagger document:
//
//	doc, err := spec.Load("api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	endpoints := extract.Extract(doc)
//	groups := extract.GroupByTag(endpoints, "Other")
//
//	var buf bytes.Buffer
//	render.HTTPFile(&buf, extract.BaseURL(doc), groups)
//
// Format a single request:
//
//	req := render.Request{Method: "POST", URL: "https://api.example.com/users"}
//	out, err := render.Render(req, render.FormatCurl)
//
// The extractor is deliberately permissive: malformed or partially-invalid
// documents degrade to defaults and omitted fields rather than errors, so an
// imperfect specification still yields as many usable endpoints as possible.
package reqgen
