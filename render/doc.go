// Package render serializes resolved HTTP requests into plaintext
// template formats.
//
// Three single-request formats are supported: rest-client (the .http
// request block syntax used by editor REST clients), httpie (a shell
// invocation of the http command), and curl. HTTPFile renders a full
// extracted endpoint list as a .http document grouped by tag.
//
// Renderers are pure formatting functions over already-resolved requests;
// they perform no encoding, validation, or network activity.
package render
