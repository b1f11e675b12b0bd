package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-uekit/pkg/model"
)

// Tier is the qualitative label assigned to a metric.
type Tier string

const (
	TierExcellent  Tier = "excellent"
	TierAcceptable Tier = "acceptable"
	TierPoor       Tier = "poor"
	TierGood       Tier = "good"
	TierModerate   Tier = "moderate"
	TierHigh       Tier = "high"
)

// Thresholds used by the classifiers. Bounds are inclusive on the "better"
// side: 60 fps is excellent, 1000 draw calls is good.
const (
	FPSExcellent      = 60
	FPSAcceptable     = 30
	DrawCallsGood     = 1000
	DrawCallsModerate = 2000
	TrianglesGood     = 1_000_000
	TrianglesModerate = 3_000_000
	millionsExponent  = 6
)

// Classification holds the tier of each metric in a sample.
type Classification struct {
	FPS       Tier `json:"fps"`
	DrawCalls Tier `json:"drawCalls"`
	Triangles Tier `json:"triangles"`
}

// ClassifyFPS returns excellent (>=60), acceptable (>=30) or poor.
func ClassifyFPS(fps float64) Tier {
	switch {
	case fps >= FPSExcellent:
		return TierExcellent
	case fps >= FPSAcceptable:
		return TierAcceptable
	default:
		return TierPoor
	}
}

// ClassifyDrawCalls returns good (<=1000), moderate (<=2000) or high.
func ClassifyDrawCalls(drawCalls int64) Tier {
	switch {
	case drawCalls <= DrawCallsGood:
		return TierGood
	case drawCalls <= DrawCallsModerate:
		return TierModerate
	default:
		return TierHigh
	}
}

// ClassifyTriangles returns good (<=1M), moderate (<=3M) or high.
func ClassifyTriangles(triangles int64) Tier {
	switch {
	case triangles <= TrianglesGood:
		return TierGood
	case triangles <= TrianglesModerate:
		return TierModerate
	default:
		return TierHigh
	}
}

// Classify tiers every metric of a normalized sample.
func Classify(sample model.PerformanceSample) Classification {
	sample = sample.Normalize()
	return Classification{
		FPS:       ClassifyFPS(sample.FPS),
		DrawCalls: ClassifyDrawCalls(sample.DrawCalls),
		Triangles: ClassifyTriangles(sample.Triangles),
	}
}

// TrianglesInMillions formats a triangle count in millions with two decimals,
// rounding halves up on the exact decimal value: 1,005,000 gives "1.01",
// where binary float formatting would give "1.00".
func TrianglesInMillions(triangles int64) string {
	return decimal.NewFromInt(triangles).Shift(-millionsExponent).StringFixed(2)
}

var (
	fpsLines = map[Tier]string{
		TierExcellent:  "✓ FPS: Excellent (60+)",
		TierAcceptable: "⚠ FPS: Acceptable (30-60)",
		TierPoor:       "✗ FPS: Poor (<30) - Optimization needed",
	}
	drawCallLines = map[Tier]string{
		TierGood:     "✓ Draw Calls: Good (≤1000)",
		TierModerate: "⚠ Draw Calls: Moderate (1000-2000)",
		TierHigh:     "✗ Draw Calls: High (>2000) - Consider batching",
	}
	triangleLines = map[Tier]string{
		TierGood:     "✓ Triangles: Good (%sM)",
		TierModerate: "⚠ Triangles: Moderate (%sM)",
		TierHigh:     "✗ Triangles: High (%sM) - Consider LODs",
	}

	fpsTips      = []string{"Profile with Unreal Insights", "Check GPU/CPU bottlenecks"}
	drawCallTips = []string{"Enable instancing for repeated meshes", "Merge static meshes where possible"}
	triangleTips = []string{"Implement LOD system", "Use nanite for UE5 projects"}
)

// AnalyzeMetrics renders the tier report for a sample followed by the
// recommendations block. Tip pairs are appended in fps, draw call, triangle
// order and only for metrics outside their best tier.
func (e *Engine) AnalyzeMetrics(sample model.PerformanceSample) string {
	sample = sample.Normalize()
	tiers := Classify(sample)

	var b strings.Builder
	b.WriteString("=== Performance Analysis ===\n\n")
	writeLine(&b, fpsLines[tiers.FPS])
	writeLine(&b, drawCallLines[tiers.DrawCalls])
	writeLine(&b, strings.Replace(triangleLines[tiers.Triangles], "%s", TrianglesInMillions(sample.Triangles), 1))

	b.WriteString("\n=== Recommendations ===\n")
	if sample.FPS < FPSExcellent {
		writeTips(&b, fpsTips)
	}
	if sample.DrawCalls > DrawCallsGood {
		writeTips(&b, drawCallTips)
	}
	if sample.Triangles > TrianglesGood {
		writeTips(&b, triangleTips)
	}
	return b.String()
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteByte('\n')
}

func writeTips(b *strings.Builder, tips []string) {
	for _, tip := range tips {
		writeLine(b, "• "+tip)
	}
}
