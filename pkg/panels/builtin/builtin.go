// Package builtin wires the engine generators to the panel descriptors in the
// embedded OpenAPI document.
package builtin

import (
	"context"
	"fmt"

	"github.com/goliatone/go-uekit/api"
	"github.com/goliatone/go-uekit/internal/openapi"
	"github.com/goliatone/go-uekit/pkg/engine"
	"github.com/goliatone/go-uekit/pkg/model"
	"github.com/goliatone/go-uekit/pkg/panels"
)

// Panel IDs, matching the operation IDs in api/openapi.yaml.
const (
	PanelClassSkeleton = "class-skeleton"
	PanelPerformance   = "performance"
	PanelAssetName     = "asset-name"
	PanelMaterial      = "material"
)

// Field names shared by the descriptors and the generators.
const (
	FieldClassName = "className"
	FieldFPS       = "fps"
	FieldDrawCalls = "drawCalls"
	FieldTriangles = "triangles"
	FieldAssetName = "assetName"
	FieldAssetType = "assetType"
	FieldBaseColor = "baseColor"
	FieldMetallic  = "metallic"
	FieldRoughness = "roughness"
)

// Option configures NewRegistry.
type Option func(*config)

type config struct {
	document  []byte
	overrides map[string]map[string]string
}

// WithDocument replaces the embedded OpenAPI document.
func WithDocument(doc []byte) Option {
	return func(c *config) {
		if len(doc) > 0 {
			c.document = doc
		}
	}
}

// WithFieldDefault overrides the default value of a panel field, e.g. the
// material base color configured by an operator.
func WithFieldDefault(panelID, field, value string) Option {
	return func(c *config) {
		if c.overrides == nil {
			c.overrides = make(map[string]map[string]string)
		}
		if c.overrides[panelID] == nil {
			c.overrides[panelID] = make(map[string]string)
		}
		c.overrides[panelID][field] = value
	}
}

// Generators returns the panel ID to generator mapping backed by eng.
func Generators(eng *engine.Engine) map[string]panels.GenerateFunc {
	return map[string]panels.GenerateFunc{
		PanelClassSkeleton: func(v panels.Values) string {
			return eng.ClassSkeleton(model.ClassSpec{Name: v.Get(FieldClassName)})
		},
		PanelPerformance: func(v panels.Values) string {
			return eng.AnalyzeMetrics(model.ParsePerformanceSample(v.Get(FieldFPS), v.Get(FieldDrawCalls), v.Get(FieldTriangles)))
		},
		PanelAssetName: func(v panels.Values) string {
			return eng.FormatAssetName(model.ParseAssetSpec(v.Get(FieldAssetName), v.Get(FieldAssetType)))
		},
		PanelMaterial: func(v panels.Values) string {
			return eng.MaterialSnippet(model.MaterialSpec{
				BaseColor: v.Get(FieldBaseColor),
				Metallic:  v.Get(FieldMetallic),
				Roughness: v.Get(FieldRoughness),
			})
		},
	}
}

// NewRegistry loads the panel descriptors and registers the four built-in
// panels. Every built-in generator must have a matching operation in the
// document; extra operations without a generator are an error too.
func NewRegistry(ctx context.Context, eng *engine.Engine, options ...Option) (*panels.Registry, error) {
	if eng == nil {
		eng = engine.Default()
	}
	cfg := &config{document: api.Document()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	descriptors, err := openapi.New().Descriptors(ctx, cfg.document)
	if err != nil {
		return nil, fmt.Errorf("builtin: %w", err)
	}

	generators := Generators(eng)
	registry := panels.NewRegistry()
	for _, desc := range descriptors {
		generate, ok := generators[desc.ID]
		if !ok {
			return nil, fmt.Errorf("builtin: no generator for panel %q", desc.ID)
		}
		applyOverrides(&desc, cfg.overrides[desc.ID])
		if err := registry.Register(panels.New(desc, generate)); err != nil {
			return nil, fmt.Errorf("builtin: %w", err)
		}
	}

	for id := range generators {
		if !registry.Has(id) {
			return nil, fmt.Errorf("builtin: panel %q missing from document", id)
		}
	}
	return registry, nil
}

func applyOverrides(desc *panels.Descriptor, overrides map[string]string) {
	if len(overrides) == 0 {
		return
	}
	fields := append([]panels.Field(nil), desc.Fields...)
	for i := range fields {
		if value, ok := overrides[fields[i].Name]; ok {
			fields[i].Default = value
		}
	}
	desc.Fields = fields
}
