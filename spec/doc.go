// Package spec loads OpenAPI 2.0 (Swagger) documents into an untyped tree
// and provides safe, defaulting, type-coercing access into that tree.
//
// A loaded document is a tree of *Map (an order-preserving string-keyed
// mapping), []any sequences, and scalar values as produced by YAML/JSON
// unmarshaling. Mapping key order follows the source document, so
// downstream consumers can iterate paths and schema properties in
// declaration order.
//
// No schema validation is performed; the accessor functions absorb wrong
// shapes and missing keys by reporting absence instead of failing, so
// callers supply their own defaults and never need inline null or type
// checks.
//
// The one structural condition treated as fatal is a document whose root
// is not a mapping; Load and friends surface that as a
// *reqerrors.ParseError before any extraction runs.
package spec
