package builtin_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-uekit/pkg/engine"
	"github.com/goliatone/go-uekit/pkg/model"
	"github.com/goliatone/go-uekit/pkg/panels"
	"github.com/goliatone/go-uekit/pkg/panels/builtin"
	"github.com/goliatone/go-uekit/pkg/testsupport"
)

func newRegistry(t *testing.T, options ...builtin.Option) *panels.Registry {
	t.Helper()
	reg, err := builtin.NewRegistry(testsupport.Context(), engine.Default(), options...)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return reg
}

func TestNewRegistryWiresEveryPanel(t *testing.T) {
	reg := newRegistry(t)
	want := []string{builtin.PanelClassSkeleton, builtin.PanelPerformance, builtin.PanelAssetName, builtin.PanelMaterial}
	got := reg.IDs()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("ids = %v, want %v", got, want)
	}
}

func TestPanelsMatchEngineOutput(t *testing.T) {
	reg := newRegistry(t)
	eng := engine.Default()

	tests := []struct {
		id     string
		values panels.Values
		want   string
	}{
		{
			id:     builtin.PanelClassSkeleton,
			values: panels.Values{builtin.FieldClassName: "Hero"},
			want:   eng.ClassSkeleton(model.ClassSpec{Name: "Hero"}),
		},
		{
			id:     builtin.PanelClassSkeleton,
			values: panels.Values{},
			want:   engine.MissingClassName,
		},
		{
			id:     builtin.PanelPerformance,
			values: panels.Values{builtin.FieldFPS: "29", builtin.FieldDrawCalls: "2500", builtin.FieldTriangles: "4000000"},
			want:   eng.AnalyzeMetrics(model.PerformanceSample{FPS: 29, DrawCalls: 2500, Triangles: 4_000_000}),
		},
		{
			id:     builtin.PanelPerformance,
			values: panels.Values{builtin.FieldFPS: "abc"},
			want:   eng.AnalyzeMetrics(model.PerformanceSample{}),
		},
		{
			id:     builtin.PanelAssetName,
			values: panels.Values{builtin.FieldAssetName: "PlayerCharacter"},
			want:   eng.FormatAssetName(model.AssetSpec{Name: "PlayerCharacter", Kind: model.AssetKindBlueprint}),
		},
		{
			id:     builtin.PanelMaterial,
			values: panels.Values{},
			want:   eng.MaterialSnippet(model.MaterialSpec{BaseColor: "#808080", Metallic: "0.0", Roughness: "0.5"}),
		},
	}

	for _, tt := range tests {
		panel, err := reg.Get(tt.id)
		if err != nil {
			t.Fatalf("get %s: %v", tt.id, err)
		}
		if got := panel.Generate(tt.values); got != tt.want {
			t.Errorf("%s output mismatch for %v", tt.id, tt.values)
		}
	}
}

func TestWithFieldDefault(t *testing.T) {
	reg := newRegistry(t, builtin.WithFieldDefault(builtin.PanelMaterial, builtin.FieldBaseColor, "#112233"))
	panel, err := reg.Get(builtin.PanelMaterial)
	if err != nil {
		t.Fatalf("get material: %v", err)
	}
	field, _ := panel.Field(builtin.FieldBaseColor)
	if field.Default != "#112233" {
		t.Fatalf("override not applied: %+v", field)
	}
	if got := panel.Generate(nil); !strings.Contains(got, `TEXT("112233")`) {
		t.Fatalf("override default not used in output")
	}
}

func TestNewRegistryRejectsUnknownOperations(t *testing.T) {
	doc := []byte(`{
  "openapi": "3.0.3",
  "info": {"title": "t", "version": "1"},
  "paths": {"/api/panels/other": {"post": {"operationId": "other", "responses": {"200": {"description": "ok"}}}}}
}`)
	if _, err := builtin.NewRegistry(testsupport.Context(), nil, builtin.WithDocument(doc)); err == nil {
		t.Fatalf("expected error for operation without generator")
	}
}
