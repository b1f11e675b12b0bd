package engine

import "github.com/goliatone/go-uekit/pkg/model"

// MaterialSnippet renders the dynamic material helper. The color loses its
// leading '#'; metallic and roughness are inserted as written, followed by the
// float suffix.
func (e *Engine) MaterialSnippet(spec model.MaterialSpec) string {
	return e.render(TemplateMaterialSnippet, map[string]any{
		"color":     spec.BaseColor,
		"hex":       spec.HexDigits(),
		"metallic":  spec.Metallic,
		"roughness": spec.Roughness,
	})
}
