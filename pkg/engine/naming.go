package engine

import "github.com/goliatone/go-uekit/pkg/model"

// FormatAssetName builds the standard asset name (prefix + name, no
// separator) and wraps it in the naming guidance block. Unknown kinds use the
// Blueprint prefix but keep their own name in the output.
func (e *Engine) FormatAssetName(spec model.AssetSpec) string {
	if spec.Missing() {
		return MissingAssetName
	}
	kind := model.ParseAssetKind(string(spec.Kind))
	prefix := kind.Prefix()
	return e.render(TemplateAssetName, map[string]any{
		"kind":     kind.String(),
		"prefix":   prefix,
		"name":     spec.Name,
		"standard": StandardAssetName(spec),
		"folder":   kind.Folder(),
	})
}

// StandardAssetName returns just the prefixed name, or "" when the name is
// missing.
func StandardAssetName(spec model.AssetSpec) string {
	if spec.Missing() {
		return ""
	}
	return model.ParseAssetKind(string(spec.Kind)).Prefix() + spec.Name
}
