package model

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParsePerformanceSample converts raw form values into a sample. Only the
// leading number of each value is read ("60fps" -> 60); values without one
// become 0. Numbers too large for a count saturate at math.MaxInt64. See
// PerformanceSample.Normalize for the remaining clamps.
func ParsePerformanceSample(fps, drawCalls, triangles string) PerformanceSample {
	return PerformanceSample{
		FPS:       parseFloat(fps),
		DrawCalls: parseCount(drawCalls),
		Triangles: parseCount(triangles),
	}.Normalize()
}

// ParseAssetSpec builds an AssetSpec from raw form values.
func ParseAssetSpec(name, kind string) AssetSpec {
	return AssetSpec{Name: name, Kind: ParseAssetKind(kind)}
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

func numberPrefix(raw string) string {
	return leadingNumber.FindString(strings.TrimSpace(raw))
}

// parseFloat reads the leading number of raw. Overflow yields ±Inf.
func parseFloat(raw string) float64 {
	prefix := numberPrefix(raw)
	if prefix == "" {
		return 0
	}
	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return value
}

// parseCount reads the leading number of raw, truncating decimals toward
// zero ("1500.9" -> 1500) and saturating at the int64 range.
func parseCount(raw string) int64 {
	prefix := numberPrefix(raw)
	if prefix == "" {
		return 0
	}
	if value, err := strconv.ParseInt(prefix, 10, 64); err == nil {
		return value
	}
	value := parseFloat(prefix)
	switch {
	case math.IsNaN(value):
		return 0
	case value >= math.MaxInt64:
		return math.MaxInt64
	case value <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(value)
	}
}
