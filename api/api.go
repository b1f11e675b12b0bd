// Package api embeds the OpenAPI document describing the generator panels.
// The document drives the form fields of every front end and is served
// verbatim by the HTTP server.
package api

import _ "embed"

//go:embed openapi.yaml
var document []byte

// Document returns a copy of the embedded OpenAPI document.
func Document() []byte {
	return append([]byte(nil), document...)
}
