package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-uekit/api"
	"github.com/goliatone/go-uekit/pkg/panels"
)

func TestDescriptorsFromEmbeddedDocument(t *testing.T) {
	descs, err := New().Descriptors(context.Background(), api.Document())
	if err != nil {
		t.Fatalf("descriptors: %v", err)
	}

	var ids []string
	for _, desc := range descs {
		ids = append(ids, desc.ID)
	}
	if diff := cmp.Diff([]string{"class-skeleton", "performance", "asset-name", "material"}, ids); diff != "" {
		t.Fatalf("panel order mismatch (-want +got):\n%s", diff)
	}

	material := descs[3]
	want := panels.Descriptor{
		ID:          "material",
		Title:       "Material Code Generator",
		Description: "Generate C++ code for dynamic material instances.",
		Submit:      "Generate Code",
		Code:        true,
		Method:      "POST",
		Path:        "/api/panels/material",
		Fields: []panels.Field{
			{Name: "baseColor", Label: "Base Color", Kind: panels.FieldKindColor, Default: "#808080"},
			{Name: "metallic", Label: "Metallic (0-1)", Kind: panels.FieldKindRange, Default: "0.0", Min: "0", Max: "1", Step: "0.1"},
			{Name: "roughness", Label: "Roughness (0-1)", Kind: panels.FieldKindRange, Default: "0.5", Min: "0", Max: "1", Step: "0.1"},
		},
	}
	if diff := cmp.Diff(want, material, cmpopts.IgnoreFields(panels.Descriptor{}, "Order"), cmpopts.IgnoreFields(panels.Field{}, "Order")); diff != "" {
		t.Fatalf("material descriptor mismatch (-want +got):\n%s", diff)
	}

	naming := descs[2]
	assetType, ok := naming.Field("assetType")
	if !ok {
		t.Fatalf("assetType field missing")
	}
	if assetType.Kind != panels.FieldKindSelect || assetType.Default != "Blueprint" || len(assetType.Options) != 9 {
		t.Fatalf("unexpected assetType field: %+v", assetType)
	}
	if assetType.Options[3] != "Static Mesh" {
		t.Fatalf("enum order not preserved: %v", assetType.Options)
	}
	assetName, _ := naming.Field("assetName")
	if !assetName.Required || assetName.Placeholder != "PlayerCharacter" {
		t.Fatalf("unexpected assetName field: %+v", assetName)
	}

	perf := descs[1]
	if len(perf.Fields) != 3 || perf.Fields[0].Name != "fps" || perf.Fields[2].Name != "triangles" {
		t.Fatalf("unexpected performance fields: %+v", perf.Fields)
	}
	if perf.Fields[2].Placeholder != "1000000" || perf.Fields[2].Kind != panels.FieldKindNumber {
		t.Fatalf("unexpected triangles field: %+v", perf.Fields[2])
	}
	if perf.Code {
		t.Fatalf("performance output is not code")
	}
}

const inferenceDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "t", "version": "1"},
  "paths": {
    "/things": {
      "post": {
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "count": {"type": "integer", "minimum": 1, "maximum": 9},
                  "mode": {"type": "string", "enum": ["a", "b"]},
                  "label": {"type": "string", "default": "x"}
                }
              }
            }
          }
        },
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func TestDescriptorsInferFieldKinds(t *testing.T) {
	descs, err := New().Descriptors(context.Background(), []byte(inferenceDoc))
	if err != nil {
		t.Fatalf("descriptors: %v", err)
	}
	if len(descs) != 1 {
		t.Fatalf("expected one descriptor, got %d", len(descs))
	}
	desc := descs[0]
	if desc.ID != "post:/things" || desc.Title != "post:/things" || desc.Submit != "Generate" {
		t.Fatalf("unexpected descriptor defaults: %+v", desc)
	}

	want := []panels.Field{
		{Name: "count", Label: "count", Kind: panels.FieldKindNumber, Min: "1", Max: "9"},
		{Name: "label", Label: "label", Kind: panels.FieldKindText, Default: "x"},
		{Name: "mode", Label: "mode", Kind: panels.FieldKindSelect, Options: []string{"a", "b"}},
	}
	if diff := cmp.Diff(want, desc.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDescriptorsErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := New().Descriptors(ctx, nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := New().Descriptors(ctx, []byte("not: [valid")); err == nil {
		t.Fatalf("expected error for malformed document")
	}
	noPaths := []byte(`{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{}}`)
	if _, err := New().Descriptors(ctx, noPaths); err == nil {
		t.Fatalf("expected error for document without paths")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := New().Descriptors(cancelled, api.Document()); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"a", "a"},
		{float64(1), "1"},
		{0.1, "0.1"},
		{true, "true"},
		{int64(7), "7"},
	}
	for _, tt := range tests {
		if got := scalarString(tt.in); got != tt.want {
			t.Errorf("scalarString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
