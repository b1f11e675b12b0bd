// Package model defines the transient value objects passed to the generation
// engine: ClassSpec, PerformanceSample, AssetSpec and MaterialSpec. Values are
// created per call by the presentation layer and discarded afterwards; nothing
// in this package holds state between calls.
//
// Raw form input is converted with the Parse helpers, which apply the coercion
// policy shared by every front end (blank or non-numeric metrics become 0,
// asset kinds resolve case-insensitively and ignore spaces).
package model
