// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// nearEps keeps clipped vertices strictly in front of the near plane.
const nearEps = 1e-6

// project transforms a world polygon into screen space, clipping it
// against the near plane. It returns false if nothing is visible.
// depth is the mean normalized device z, larger being further away.
func (fr *frame) project(poly []mgl32.Vec3) ([]point, float32, bool) {
	clip := make([]mgl32.Vec4, len(poly))
	for i, p := range poly {
		clip[i] = fr.viewProj.Mul4x1(p.Vec4(1))
	}
	clip, ok := clipPolygon(clip)
	if !ok {
		return nil, 0, false
	}
	pts, depth := fr.toScreen(clip)
	return pts, depth, true
}

// clipPolygon clips a clip space polygon against the near plane,
// returning false if no part of it can be in view. The view volume
// test is repeated after clipping, since points behind the camera
// have a negative w that defeats it.
func clipPolygon(clip []mgl32.Vec4) ([]mgl32.Vec4, bool) {
	if outside(clip) {
		return nil, false
	}
	clip = clipNear(clip)
	if len(clip) < 3 || outside(clip) {
		return nil, false
	}
	return clip, true
}

// projectSegment is [frame.project] for a line segment.
func (fr *frame) projectSegment(a, b mgl32.Vec3) ([]point, float32, bool) {
	ca := fr.viewProj.Mul4x1(a.Vec4(1))
	cb := fr.viewProj.Mul4x1(b.Vec4(1))
	if outside([]mgl32.Vec4{ca, cb}) {
		return nil, 0, false
	}
	da, db := ca.Z()+ca.W(), cb.Z()+cb.W()
	switch {
	case da < nearEps && db < nearEps:
		return nil, 0, false
	case da < nearEps:
		ca = lerp4(ca, cb, (nearEps-da)/(db-da))
	case db < nearEps:
		cb = lerp4(cb, ca, (nearEps-db)/(da-db))
	}
	if outside([]mgl32.Vec4{ca, cb}) {
		return nil, 0, false
	}
	pts, depth := fr.toScreen([]mgl32.Vec4{ca, cb})
	return pts, depth, true
}

// toScreen divides by w and maps normalized device coordinates
// to pixels, with y pointing down.
func (fr *frame) toScreen(clip []mgl32.Vec4) ([]point, float32) {
	pts := make([]point, len(clip))
	var depth float32
	for i, c := range clip {
		nx, ny, nz := c.X()/c.W(), c.Y()/c.W(), c.Z()/c.W()
		pts[i] = point{
			X: float64(nx+1) / 2 * fr.width,
			Y: float64(1-ny) / 2 * fr.height,
		}
		depth += nz
	}
	return pts, depth / float32(len(clip))
}

// outside returns whether all of the clip space points are beyond the
// same side of the view volume, so nothing can be visible.
func outside(clip []mgl32.Vec4) bool {
	tests := []func(c mgl32.Vec4) bool{
		func(c mgl32.Vec4) bool { return c.X() > c.W() },
		func(c mgl32.Vec4) bool { return c.X() < -c.W() },
		func(c mgl32.Vec4) bool { return c.Y() > c.W() },
		func(c mgl32.Vec4) bool { return c.Y() < -c.W() },
		func(c mgl32.Vec4) bool { return c.Z() > c.W() },
		func(c mgl32.Vec4) bool { return c.Z() < -c.W() },
	}
	for _, out := range tests {
		all := true
		for _, c := range clip {
			if !out(c) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// clipNear clips a closed polygon in clip space against the near
// plane z = -w, keeping the part in front of it.
func clipNear(poly []mgl32.Vec4) []mgl32.Vec4 {
	var res []mgl32.Vec4
	n := len(poly)
	for i := range n {
		cur, next := poly[i], poly[(i+1)%n]
		dc, dn := cur.Z()+cur.W(), next.Z()+next.W()
		if dc >= nearEps {
			res = append(res, cur)
		}
		if (dc >= nearEps) != (dn >= nearEps) {
			res = append(res, lerp4(cur, next, (nearEps-dc)/(dn-dc)))
		}
	}
	return res
}

func lerp4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}
