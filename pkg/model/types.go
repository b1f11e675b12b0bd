package model

import (
	"math"
	"strings"
)

// ClassSpec carries the base name used to generate a C++ class skeleton.
type ClassSpec struct {
	Name string `json:"name"`
}

// Missing reports whether the name is empty after trimming whitespace.
func (s ClassSpec) Missing() bool {
	return strings.TrimSpace(s.Name) == ""
}

// PerformanceSample holds the three metrics classified by the analyzer.
type PerformanceSample struct {
	FPS       float64 `json:"fps"`
	DrawCalls int64   `json:"drawCalls"`
	Triangles int64   `json:"triangles"`
}

// Normalize clamps negative metrics and NaN frame rates to zero and caps an
// infinite frame rate at math.MaxFloat64 so every sample lands in a defined
// tier.
func (s PerformanceSample) Normalize() PerformanceSample {
	switch {
	case math.IsNaN(s.FPS) || s.FPS < 0:
		s.FPS = 0
	case math.IsInf(s.FPS, 1):
		s.FPS = math.MaxFloat64
	}
	if s.DrawCalls < 0 {
		s.DrawCalls = 0
	}
	if s.Triangles < 0 {
		s.Triangles = 0
	}
	return s
}

// AssetSpec pairs an asset name with the kind that selects its prefix.
type AssetSpec struct {
	Name string    `json:"name"`
	Kind AssetKind `json:"kind"`
}

// Missing reports whether the asset name is empty after trimming whitespace.
func (s AssetSpec) Missing() bool {
	return strings.TrimSpace(s.Name) == ""
}

// MaterialSpec carries the raw material parameters. Values are inserted into
// the generated snippet verbatim; nothing is validated or clamped.
type MaterialSpec struct {
	BaseColor string `json:"baseColor"`
	Metallic  string `json:"metallic"`
	Roughness string `json:"roughness"`
}

// HexDigits returns the base color without its leading '#'.
func (s MaterialSpec) HexDigits() string {
	return strings.TrimPrefix(s.BaseColor, "#")
}
