// Package vanilla renders the panel page as server-side HTML with plain forms.
// Panel output is autoescaped inside <pre>; descriptions are Markdown and the
// operator notice is sanitized HTML.
package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-uekit/pkg/panels"
	rendertemplate "github.com/goliatone/go-uekit/pkg/render/template"
	"github.com/goliatone/go-uekit/pkg/render/template/pongo"
)

const pageTemplate = "templates/page"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	assetBase        string
	formBase         string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAssetBase sets the URL prefix the stylesheet is linked under.
func WithAssetBase(base string) Option {
	return func(cfg *config) {
		cfg.assetBase = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// WithFormBase sets the URL prefix panel forms post to (<base>/<panel id>).
func WithFormBase(base string) Option {
	return func(cfg *config) {
		cfg.formBase = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

// Page is the data rendered into one HTML page.
type Page struct {
	Title    string
	Subtitle string
	// Notice is operator-supplied HTML, sanitized before output.
	Notice string
	Panels []panels.Descriptor
	// Active marks the panel the request targeted.
	Active  string
	Values  map[string]panels.Values
	Outputs map[string]string
}

// Renderer renders Page values to HTML.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	markdown  goldmark.Markdown
	policy    *bluemonday.Policy
}

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		assetBase:  "/assets",
		formBase:   "/panels",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithName("uekit-vanilla"),
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		if err := engine.Preload(pageTemplate); err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
		renderer = engine
	}

	// Page chrome is identical across renders.
	if err := renderer.GlobalContext(map[string]any{
		"asset_base": cfg.assetBase,
		"form_base":  cfg.formBase,
		"stylesheet": StylesheetName,
	}); err != nil {
		return nil, fmt.Errorf("vanilla renderer: global context: %w", err)
	}

	return &Renderer{
		templates: renderer,
		markdown:  goldmark.New(),
		policy:    bluemonday.UGCPolicy(),
	}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "vanilla"
}

// ContentType reports the media type of Render output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML page.
func (r *Renderer) Render(ctx context.Context, page Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	views := make([]map[string]any, 0, len(page.Panels))
	for _, desc := range page.Panels {
		view, err := r.panelView(desc, page)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	result, err := r.templates.Render(pageTemplate, map[string]any{
		"title":    page.Title,
		"subtitle": page.Subtitle,
		"notice":   r.sanitize(page.Notice),
		"panels":   views,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) panelView(desc panels.Descriptor, page Page) (map[string]any, error) {
	description, err := r.renderMarkdown(desc.Description)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: panel %q description: %w", desc.ID, err)
	}

	values := page.Values[desc.ID]
	fields := make([]map[string]any, 0, len(desc.Fields))
	for _, field := range desc.Fields {
		value, ok := values[field.Name]
		if !ok {
			value = field.Default
		}
		fields = append(fields, map[string]any{
			"name":        field.Name,
			"label":       field.Label,
			"kind":        string(field.Kind),
			"input_type":  inputType(field.Kind),
			"value":       value,
			"placeholder": field.Placeholder,
			"options":     field.Options,
			"min":         field.Min,
			"max":         field.Max,
			"step":        field.Step,
			"required":    field.Required,
		})
	}

	return map[string]any{
		"id":               desc.ID,
		"title":            desc.Title,
		"description_html": description,
		"submit":           desc.Submit,
		"code":             desc.Code,
		"fields":           fields,
		"output":           page.Outputs[desc.ID],
		"active":           desc.ID == page.Active,
	}, nil
}

func (r *Renderer) renderMarkdown(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return r.sanitize(buf.String()), nil
}

func (r *Renderer) sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(r.policy.Sanitize(trimmed))
}

func inputType(kind panels.FieldKind) string {
	switch kind {
	case panels.FieldKindNumber:
		return "number"
	case panels.FieldKindColor:
		return "color"
	case panels.FieldKindRange:
		return "range"
	default:
		return "text"
	}
}
