package template

import (
	"io"
)

// TemplateRenderer is the seam the engine and the HTML renderer use to
// execute named templates. Implementations must be safe for concurrent use
// once constructed.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
