// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
)

// ShadowConfig holds the shadow parameters of a shadow-casting light.
// The bounds are in the light's view space, centered on its direction.
type ShadowConfig struct {

	// MapSize is the resolution of the shadow map.
	MapSize int

	// Left, Right, Top and Bottom bound the region that receives shadows.
	Left, Right, Top, Bottom float32

	// Near and Far are the clip distances along the light direction.
	Near, Far float32

	// Bias offsets shadows toward the light to avoid acne.
	Bias float32
}

// DefaultShadow returns a [ShadowConfig] covering a square of
// half-width d around the light direction.
func DefaultShadow(d float32) ShadowConfig {
	return ShadowConfig{MapSize: 2048, Left: -d, Right: d, Top: d, Bottom: -d, Near: 1, Far: 50, Bias: 0.001}
}

// DirLight is a directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun.
// Lights are stored on the [Scene] and not within the tree.
type DirLight struct {

	// Name is the name of the light.
	Name string

	// Pos is the position of the light; it shines toward the origin.
	Pos mgl32.Vec3

	// Color is the color of the light at full intensity.
	Color gg.RGBA

	// Intensity multiplies the color.
	Intensity float32

	// CastShadow is whether the light casts shadows.
	CastShadow bool

	// Shadow is the shadow configuration, used if CastShadow is set.
	Shadow ShadowConfig
}

// NewDirLight returns a new white [DirLight] with the given name,
// position and intensity.
func NewDirLight(name string, pos mgl32.Vec3, intensity float32) *DirLight {
	return &DirLight{Name: name, Pos: pos, Color: gg.White, Intensity: intensity}
}

// Dir returns the normalized direction the light travels in.
func (dl *DirLight) Dir() mgl32.Vec3 {
	if dl.Pos == (mgl32.Vec3{}) {
		return mgl32.Vec3{0, -1, 0}
	}
	return dl.Pos.Mul(-1).Normalize()
}

// InShadowBounds returns whether the given world point is inside the
// region covered by the light's shadow configuration, measured in the
// plane perpendicular to the light direction and along it from the light.
func (dl *DirLight) InShadowBounds(p mgl32.Vec3) bool {
	dir := dl.Dir()
	rot := LookAtRotation(dl.Pos, dl.Pos.Add(dir), AxisY) // -Z along dir
	rel := p.Sub(dl.Pos)
	x := rel.Dot(rot.Col(0).Vec3())
	y := rel.Dot(rot.Col(1).Vec3())
	depth := rel.Dot(dir)
	sh := dl.Shadow
	return x >= sh.Left && x <= sh.Right && y >= sh.Bottom && y <= sh.Top &&
		depth >= sh.Near && depth <= sh.Far
}
