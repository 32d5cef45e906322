// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// drawShadows projects the light-facing faces of every shadow caster
// along each shadow-casting light onto the floor plane, and fills them
// as a single translucent path per light so overlaps do not darken.
func (r *Renderer) drawShadows(fr *frame) error {
	if !fr.hasFloor || len(fr.casters) == 0 {
		return nil
	}
	for _, lt := range fr.sc.Lights {
		if !lt.CastShadow {
			continue
		}
		dir := lt.Dir()
		if dir.Y() >= 0 { // never reaches the floor
			continue
		}
		lift := lt.Shadow.Bias
		n := 0
		for _, cs := range fr.casters {
			if !lt.InShadowBounds(cs.world.Col(3).Vec3()) {
				continue
			}
			n += r.addShadowPaths(fr, cs, dir, fr.floorY+lift)
		}
		if n == 0 {
			continue
		}
		fr.stats.Shadows += n
		r.dc.SetRGBA(0, 0, 0, r.ShadowAlpha)
		if err := r.dc.Fill(); err != nil {
			return fmt.Errorf("render: drawing shadows of %q: %w", lt.Name, err)
		}
	}
	return nil
}

// addShadowPaths adds the projected light-facing faces of the caster
// to the current path, returning how many were added.
func (r *Renderer) addShadowPaths(fr *frame, cs caster, dir mgl32.Vec3, floorY float32) int {
	ms := cs.solid.Mesh
	toLight := dir.Mul(-1)
	n := 0
	for i, f := range ms.Faces {
		nrm := cs.world.Mul4x1(ms.Normals[i].Vec4(0)).Vec3()
		if nrm.Dot(toLight) <= 0 {
			continue
		}
		tri := make([]mgl32.Vec3, 3)
		above := true
		for k := range 3 {
			p := cs.world.Mul4x1(ms.Vertices[f[k]].Vec4(1)).Vec3()
			if p.Y() < floorY {
				above = false
				break
			}
			t := (floorY - p.Y()) / dir.Y()
			tri[k] = p.Add(dir.Mul(t))
		}
		if !above {
			continue
		}
		pts, _, ok := fr.project(tri)
		if !ok {
			continue
		}
		r.dc.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			r.dc.LineTo(pt.X, pt.Y)
		}
		r.dc.ClosePath()
		n++
	}
	return n
}
