// Package uekit generates Unreal Engine helper text from form input: C++ class
// skeletons, performance reports, asset names and material snippets.
//
// The top-level functions use a shared engine backed by the embedded
// templates. Use engine.New directly to override templates.
package uekit

import (
	"github.com/goliatone/go-uekit/pkg/engine"
	"github.com/goliatone/go-uekit/pkg/model"
)

// AssetKind aliases model.AssetKind for callers that only import the root
// package.
type AssetKind = model.AssetKind

// PerformanceSample aliases model.PerformanceSample.
type PerformanceSample = model.PerformanceSample

// NewEngine exposes the engine constructor from the top-level module.
func NewEngine(options ...engine.Option) (*engine.Engine, error) {
	return engine.New(options...)
}

// GenerateClassSkeleton returns the AActor header/source skeleton for name, or
// engine.MissingClassName when name is blank.
func GenerateClassSkeleton(name string) string {
	return engine.Default().ClassSkeleton(model.ClassSpec{Name: name})
}

// AnalyzeMetrics returns the tiered performance report for the given metrics.
func AnalyzeMetrics(fps float64, drawCalls, triangles int64) string {
	return engine.Default().AnalyzeMetrics(model.PerformanceSample{
		FPS:       fps,
		DrawCalls: drawCalls,
		Triangles: triangles,
	})
}

// AnalyzeRawMetrics parses raw form text (blank or non-numeric values count as
// zero) before analysing it.
func AnalyzeRawMetrics(fps, drawCalls, triangles string) string {
	return engine.Default().AnalyzeMetrics(model.ParsePerformanceSample(fps, drawCalls, triangles))
}

// FormatAssetName returns the naming guidance for name under kind. Unknown
// kinds use the Blueprint prefix.
func FormatAssetName(name, kind string) string {
	return engine.Default().FormatAssetName(model.ParseAssetSpec(name, kind))
}

// GenerateMaterialSnippet returns the dynamic material helper for a #RRGGBB
// color and the metallic/roughness values as written.
func GenerateMaterialSnippet(color, metallic, roughness string) string {
	return engine.Default().MaterialSnippet(model.MaterialSpec{
		BaseColor: color,
		Metallic:  metallic,
		Roughness: roughness,
	})
}
