// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/gogpu/gg"
)

// Material describes the surface properties of a solid. Color is lit by
// the scene lights, and Emissive is added independent of any lighting.
type Material struct {

	// Color is the main color of the surface, used for diffuse lighting.
	Color gg.RGBA

	// Emissive is the color that the surface emits independent of any lighting,
	// i.e., glow.
	Emissive gg.RGBA

	// DoubleSided renders faces seen from behind instead of culling them.
	DoubleSided bool
}

// NewMaterial returns a new [Material] with the given color and no emission.
func NewMaterial(color gg.RGBA) *Material {
	return &Material{Color: color}
}

// NewHexMaterial returns a new [Material] with the given hex color, e.g. "#6688aa".
func NewHexMaterial(hex string) *Material {
	return NewMaterial(gg.Hex(hex))
}

// SetHSL sets both the color and emissive color from the given hue,
// saturation and lightness, all in the range [0, 1].
func (mt *Material) SetHSL(h, s, l float32) {
	c := gg.HSL(float64(h)*360, float64(s), float64(l))
	mt.Color = c
	mt.Emissive = c
}
