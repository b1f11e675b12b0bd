package uekit

import (
	"io/fs"

	"github.com/goliatone/go-uekit/pkg/engine"
)

// EmbeddedTemplates exposes the built-in generator templates so callers can
// copy them into an override directory without importing the engine package.
func EmbeddedTemplates() fs.FS {
	return engine.TemplatesFS()
}
