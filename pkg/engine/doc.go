// Package engine implements the template generation engine: four total,
// deterministic generators that turn scalar form input into Unreal Engine
// helper text.
//
//   - ClassSkeleton renders an AActor subclass header and source pair.
//   - AnalyzeMetrics classifies fps, draw calls and triangles into tiers and
//     appends recommendations.
//   - FormatAssetName applies the asset naming prefix table.
//   - MaterialSnippet renders a dynamic material instance helper.
//
// Generators never return errors. Missing required input is reported through
// the returned text (see MissingClassName and MissingAssetName). An Engine only
// holds compiled templates, so a single instance can serve concurrent callers.
package engine
