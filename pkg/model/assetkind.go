package model

import "strings"

// AssetKind names an Unreal asset category. Known kinds use their display
// name ("Static Mesh"); unknown kinds keep whatever text the caller supplied.
type AssetKind string

// Built-in asset kinds, in the order the naming panel offers them.
const (
	AssetKindBlueprint      AssetKind = "Blueprint"
	AssetKindMaterial       AssetKind = "Material"
	AssetKindTexture        AssetKind = "Texture"
	AssetKindStaticMesh     AssetKind = "Static Mesh"
	AssetKindSkeletalMesh   AssetKind = "Skeletal Mesh"
	AssetKindAnimation      AssetKind = "Animation"
	AssetKindSound          AssetKind = "Sound"
	AssetKindParticleSystem AssetKind = "Particle System"
	AssetKindWidget         AssetKind = "Widget"
)

// DefaultAssetPrefix is used for any kind missing from the prefix table.
const DefaultAssetPrefix = "BP_"

var assetKinds = []AssetKind{
	AssetKindBlueprint,
	AssetKindMaterial,
	AssetKindTexture,
	AssetKindStaticMesh,
	AssetKindSkeletalMesh,
	AssetKindAnimation,
	AssetKindSound,
	AssetKindParticleSystem,
	AssetKindWidget,
}

var assetPrefixes = map[AssetKind]string{
	AssetKindBlueprint:      "BP_",
	AssetKindMaterial:       "M_",
	AssetKindTexture:        "T_",
	AssetKindStaticMesh:     "SM_",
	AssetKindSkeletalMesh:   "SK_",
	AssetKindAnimation:      "A_",
	AssetKindSound:          "S_",
	AssetKindParticleSystem: "PS_",
	AssetKindWidget:         "W_",
}

// AssetKinds returns the built-in kinds in display order.
func AssetKinds() []AssetKind {
	return append([]AssetKind(nil), assetKinds...)
}

// ParseAssetKind resolves raw input to a known kind, matching
// case-insensitively and ignoring spaces so "staticmesh" resolves to
// AssetKindStaticMesh. Blank input means AssetKindBlueprint. Anything else is
// returned trimmed but otherwise untouched.
func ParseAssetKind(raw string) AssetKind {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AssetKindBlueprint
	}
	key := compactKey(trimmed)
	for _, kind := range assetKinds {
		if compactKey(string(kind)) == key {
			return kind
		}
	}
	return AssetKind(trimmed)
}

// Known reports whether the kind has an entry in the prefix table.
func (k AssetKind) Known() bool {
	_, ok := assetPrefixes[k]
	return ok
}

// Prefix returns the naming prefix for the kind, falling back to
// DefaultAssetPrefix for unknown kinds.
func (k AssetKind) Prefix() string {
	if prefix, ok := assetPrefixes[k]; ok {
		return prefix
	}
	return DefaultAssetPrefix
}

// Folder suggests the Content/ sub-folder for the kind: spaces removed and a
// trailing "s" appended ("Static Mesh" -> "StaticMeshs").
func (k AssetKind) Folder() string {
	return strings.ReplaceAll(string(k), " ", "") + "s"
}

func (k AssetKind) String() string {
	return string(k)
}

func compactKey(value string) string {
	return strings.ToLower(strings.ReplaceAll(value, " ", ""))
}
