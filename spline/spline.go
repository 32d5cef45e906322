// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spline provides a closed, smooth 2D path through a set of
// control points, queried by a normalized time parameter.
package spline

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultDivisions is the default number of samples in the arc length
// table used by [Path.PointAt].
const DefaultDivisions = 200

// Path is a closed uniform Catmull-Rom curve passing through all of its
// control points, with the last point joining smoothly back to the first.
// All parameters are taken modulo 1, so there are no bounds failures.
type Path struct {

	// Points are the control points, in order. The curve passes through each.
	Points []mgl32.Vec2

	// Divisions is the number of samples in the arc length table.
	Divisions int

	// lengths is the cumulative arc length at each division, with
	// lengths[0] == 0 and lengths[Divisions] == total length.
	lengths []float32
}

// NewPath returns a new closed [Path] through the given control points,
// which are copied. At least three points are required.
func NewPath(points []mgl32.Vec2) (*Path, error) {
	return NewPathDivisions(points, DefaultDivisions)
}

// NewPathDivisions is [NewPath] with the given number of arc length divisions.
func NewPathDivisions(points []mgl32.Vec2, divisions int) (*Path, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("spline.NewPath: need at least 3 control points, have %d", len(points))
	}
	if divisions < 1 {
		return nil, fmt.Errorf("spline.NewPath: divisions must be positive, have %d", divisions)
	}
	for i, p := range points {
		if !finite(p[0]) || !finite(p[1]) {
			return nil, fmt.Errorf("spline.NewPath: control point %d is not finite: %v", i, p)
		}
	}
	ph := &Path{Divisions: divisions}
	ph.Points = make([]mgl32.Vec2, len(points))
	copy(ph.Points, points)
	ph.updateLengths()
	if ph.Length() == 0 {
		return nil, fmt.Errorf("spline.NewPath: control points are all coincident")
	}
	return ph, nil
}

// Wrap returns t modulo 1, in the range [0, 1).
func Wrap(t float32) float32 {
	t = math32.Mod(t, 1)
	if t < 0 {
		t++
	}
	if t >= 1 { // -tiny + 1 rounds up to 1
		t = 0
	}
	return t
}

// Point returns the point on the curve at raw curve parameter t,
// where each control point span covers an equal range of t.
func (ph *Path) Point(t float32) mgl32.Vec2 {
	n := len(ph.Points)
	p := Wrap(t) * float32(n)
	i := int(math32.Floor(p))
	w := p - float32(i)
	p0 := ph.Points[(i-1+n)%n]
	p1 := ph.Points[i%n]
	p2 := ph.Points[(i+1)%n]
	p3 := ph.Points[(i+2)%n]
	return mgl32.Vec2{
		catmullRom(w, p0[0], p1[0], p2[0], p3[0]),
		catmullRom(w, p0[1], p1[1], p2[1], p3[1]),
	}
}

// PointAt returns the point at normalized arc length u, such that
// equal steps of u cover equal distances along the curve.
// PointAt(0) is the first control point.
func (ph *Path) PointAt(u float32) mgl32.Vec2 {
	return ph.Point(ph.UToT(u))
}

// Facing returns the point at normalized arc length u, along with the
// point slightly further along at u+eps, which together give the
// direction of travel.
func (ph *Path) Facing(u, eps float32) (pos, ahead mgl32.Vec2) {
	return ph.PointAt(u), ph.PointAt(u + eps)
}

// Sample returns n+1 points evenly spaced by arc length, with the
// last point equal to the first, suitable for drawing the closed path.
func (ph *Path) Sample(n int) []mgl32.Vec2 {
	if n < 1 {
		n = 1
	}
	pts := make([]mgl32.Vec2, n+1)
	for i := range n {
		pts[i] = ph.PointAt(float32(i) / float32(n))
	}
	pts[n] = pts[0]
	return pts
}

// Length returns the total arc length of the path.
func (ph *Path) Length() float32 {
	return ph.lengths[len(ph.lengths)-1]
}

// UToT converts a normalized arc length u into the raw curve parameter t.
func (ph *Path) UToT(u float32) float32 {
	u = Wrap(u)
	target := u * ph.Length()
	// first index with length > target
	i := sort.Search(len(ph.lengths), func(i int) bool {
		return ph.lengths[i] > target
	}) - 1
	if i < 0 {
		i = 0
	}
	if i >= ph.Divisions {
		return 0
	}
	seg := ph.lengths[i+1] - ph.lengths[i]
	frac := float32(0)
	if seg > 0 {
		frac = (target - ph.lengths[i]) / seg
	}
	return (float32(i) + frac) / float32(ph.Divisions)
}

func (ph *Path) updateLengths() {
	ph.lengths = make([]float32, ph.Divisions+1)
	last := ph.Point(0)
	var sum float32
	for d := 1; d <= ph.Divisions; d++ {
		var cur mgl32.Vec2
		if d == ph.Divisions {
			cur = ph.Point(0)
		} else {
			cur = ph.Point(float32(d) / float32(ph.Divisions))
		}
		sum += cur.Sub(last).Len()
		ph.lengths[d] = sum
		last = cur
	}
}

// catmullRom interpolates between p1 and p2 with uniform tangents
// taken from the neighboring points p0 and p3.
func catmullRom(t, p0, p1, p2, p3 float32) float32 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t * t2
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

func finite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}
