package extract

import (
	"strings"

	"github.com/reqgen/reqgen/spec"
)

// httpMethods is the set of path-item keys interpreted as operations.
// Any other key (vendor extensions, summary, the shared parameters list)
// is ignored.
var httpMethods = map[string]bool{
	"get":     true,
	"post":    true,
	"put":     true,
	"patch":   true,
	"delete":  true,
	"head":    true,
	"options": true,
}

// Extract walks the document's paths and resolves every operation into an
// Endpoint. The result is ordered by document path order, then by method
// order as encountered within each path item.
//
// Extract never fails: malformed path items, operations, or parameters are
// skipped or defaulted, and the remaining document still produces output.
// The input document is never mutated.
func Extract(doc spec.Document, opts ...Option) []Endpoint {
	cfg := applyOptions(opts...)
	log := cfg.logger

	baseURL := BaseURL(doc)
	endpoints := make([]Endpoint, 0)

	paths, ok := spec.MapAt(doc, "paths")
	if !ok {
		log.Debug("document has no paths mapping")
		return endpoints
	}

	for _, pathTemplate := range paths.Keys() {
		pathItem, ok := spec.MapAt(paths, pathTemplate)
		if !ok {
			log.Debug("skipping non-mapping path item", "path", pathTemplate)
			continue
		}

		// Parameters shared by every operation on this path.
		commonParams, _ := spec.SliceAt(pathItem, "parameters")

		for _, key := range pathItem.Keys() {
			method := strings.ToLower(key)
			if !httpMethods[method] {
				continue
			}
			operation, ok := spec.MapAt(pathItem, key)
			if !ok {
				log.Debug("skipping non-mapping operation", "path", pathTemplate, "method", method)
				continue
			}

			endpoints = append(endpoints, resolveOperation(doc, cfg, baseURL, pathTemplate, method, commonParams, operation))
		}
	}

	log.Debug("extraction complete", "endpoints", len(endpoints))
	return endpoints
}

// BaseURL builds the base URL from the document's schemes, host, and
// basePath. The first scheme wins, defaulting to https. An empty host is
// accepted as-is; this is a template generator, not a request executor.
func BaseURL(doc spec.Document) string {
	scheme := "https"
	if schemes, ok := spec.SliceAt(doc, "schemes"); ok && len(schemes) > 0 {
		if s := spec.ValueToString(schemes[0]); s != "" {
			scheme = s
		}
	}
	host, _ := spec.StringAt(doc, "host")
	basePath, _ := spec.StringAt(doc, "basePath")
	return scheme + "://" + host + basePath
}

// resolveOperation builds the Endpoint for a single (path, method) pair.
func resolveOperation(doc spec.Document, cfg *config, baseURL, pathTemplate, method string, commonParams []any, operation *spec.Map) Endpoint {
	// Path-level entries logically precede operation-level entries.
	// Duplicate names are not deduplicated; later entries simply apply
	// another substitution pass (last write wins).
	opParams, _ := spec.SliceAt(operation, "parameters")
	params := mergeParameters(commonParams, opParams)

	url := buildURL(baseURL, pathTemplate, params)
	headers := securityHeaders(doc, operation, cfg.logger)
	body := requestBody(doc, params, cfg)
	if body != "" {
		headers = setHeader(headers, "Content-Type", "application/json", false)
	}

	summary, _ := spec.StringAt(operation, "summary")
	description, _ := spec.StringAt(operation, "description")
	operationID, _ := spec.StringAt(operation, "operationId")

	ep := Endpoint{
		Method:      strings.ToUpper(method),
		URL:         url,
		Headers:     headers,
		Body:        body,
		Summary:     summary,
		Description: description,
		OperationID: operationID,
		Path:        pathTemplate,
		Tags:        spec.StringSliceAt(operation, "tags"),
	}
	cfg.logger.Debug("resolved endpoint", "method", ep.Method, "path", ep.Path)
	return ep
}

// mergeParameters concatenates path-level and operation-level parameter
// sequences, keeping only mapping-shaped entries.
func mergeParameters(common, operation []any) []*spec.Map {
	params := make([]*spec.Map, 0, len(common)+len(operation))
	for _, raw := range common {
		if p, ok := spec.AsMap(raw); ok {
			params = append(params, p)
		}
	}
	for _, raw := range operation {
		if p, ok := spec.AsMap(raw); ok {
			params = append(params, p)
		}
	}
	return params
}

// buildURL concatenates the base URL and path template with exactly one
// slash at the join, substitutes path parameters, and appends query
// parameters in declaration order.
//
// Path placeholders {name} are replaced with the parameter's example, or
// the marker <name> when no example is declared. Query values use example,
// then default, then <name>. No percent-encoding is performed; values are
// meant to be human-edited before use.
func buildURL(baseURL, pathTemplate string, params []*spec.Map) string {
	url := strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(pathTemplate, "/") {
		url += "/"
	}
	url += pathTemplate

	for _, param := range params {
		if in, _ := spec.StringAt(param, "in"); in != "path" {
			continue
		}
		name, _ := spec.StringAt(param, "name")
		value := "<" + name + ">"
		if v, ok := param.Get("example"); ok && v != nil {
			value = spec.ValueToString(v)
		}
		url = strings.ReplaceAll(url, "{"+name+"}", value)
	}

	var query []string
	for _, param := range params {
		if in, _ := spec.StringAt(param, "in"); in != "query" {
			continue
		}
		name, _ := spec.StringAt(param, "name")
		value := "<" + name + ">"
		if v, ok := param.Get("example"); ok && v != nil {
			value = spec.ValueToString(v)
		} else if v, ok := param.Get("default"); ok && v != nil {
			value = spec.ValueToString(v)
		}
		query = append(query, name+"="+value)
	}
	if len(query) > 0 {
		url += "?" + strings.Join(query, "&")
	}

	return url
}

// setHeader sets a header value with dict-like semantics: an existing
// header of the same name (case-insensitive) is overwritten in place when
// overwrite is true, or left alone when false.
func setHeader(headers []Header, name, value string, overwrite bool) []Header {
	for i, h := range headers {
		if equalHeaderNames(h.Name, name) {
			if overwrite {
				headers[i].Value = value
			}
			return headers
		}
	}
	return append(headers, Header{Name: name, Value: value})
}
