// Package template defines the renderer-agnostic template contract shared by
// the generation engine and the HTML front end. The pongo sub-package provides
// the pongo2-backed implementation.
package template
