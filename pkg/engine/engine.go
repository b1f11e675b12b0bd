package engine

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/goliatone/go-uekit/pkg/render/template"
	"github.com/goliatone/go-uekit/pkg/render/template/pongo"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Template names resolved by the renderer. Override files placed in a
// template directory must use the same names with a .tpl extension.
const (
	TemplateClassSkeleton   = "class_skeleton"
	TemplateAssetName       = "asset_name"
	TemplateMaterialSnippet = "material_snippet"
)

// Messages returned instead of generated output when required input is
// missing.
const (
	MissingClassName = "Please enter a class name"
	MissingAssetName = "Please enter an asset name"
)

// TemplateNames lists every template the engine renders.
func TemplateNames() []string {
	return []string{TemplateClassSkeleton, TemplateAssetName, TemplateMaterialSnippet}
}

// TemplatesFS exposes the built-in templates so callers can copy them as a
// starting point for overrides.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures an Engine.
type Option func(*Engine)

// WithTemplateDir makes the engine look for template overrides in dir before
// falling back to the embedded templates.
func WithTemplateDir(dir string) Option {
	return func(e *Engine) {
		e.templateDir = strings.TrimSpace(dir)
	}
}

// WithRenderer replaces the template renderer entirely. The renderer must
// resolve every name returned by TemplateNames.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(e *Engine) {
		if renderer != nil {
			e.renderer = renderer
		}
	}
}

// Engine renders the generator templates. The zero value is not usable; call
// New or Default.
type Engine struct {
	renderer    template.TemplateRenderer
	templateDir string
}

// New constructs an Engine and compiles its templates eagerly so broken
// overrides fail here rather than at generation time.
func New(options ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	if e.renderer != nil {
		return e, nil
	}

	pongoOptions := []pongo.Option{
		pongo.WithName("uekit-engine"),
		pongo.WithFS(TemplatesFS()),
	}
	if e.templateDir != "" {
		pongoOptions = append(pongoOptions, pongo.WithBaseDir(e.templateDir))
	}
	renderer, err := pongo.New(pongoOptions...)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if err := renderer.Preload(TemplateNames()...); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e.renderer = renderer
	return e, nil
}

// MustNew is New that panics on error. Useful for init-time wiring.
func MustNew(options ...Option) *Engine {
	e, err := New(options...)
	if err != nil {
		panic(err)
	}
	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns a shared Engine backed by the embedded templates.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = MustNew()
	})
	return defaultEngine
}

// render executes a template and strips the single trailing newline template
// files end with. Generators are total, so a renderer failure is reported as
// text.
func (e *Engine) render(name string, data map[string]any) string {
	out, err := e.renderer.Render(name, data)
	if err != nil {
		return fmt.Sprintf("Unable to generate %s: %v", name, err)
	}
	return strings.TrimSuffix(out, "\n")
}
