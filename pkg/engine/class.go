package engine

import "github.com/goliatone/go-uekit/pkg/model"

// ClassSkeleton renders the header and source skeleton for an AActor subclass
// named after spec.Name. The name is substituted verbatim; callers supply an
// identifier-safe value.
func (e *Engine) ClassSkeleton(spec model.ClassSpec) string {
	if spec.Missing() {
		return MissingClassName
	}
	return e.render(TemplateClassSkeleton, map[string]any{
		"name": spec.Name,
	})
}
