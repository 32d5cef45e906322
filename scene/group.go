// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/go-gl/mathgl/mgl32"

// Group collects individual elements in a scene but does not have a Mesh or
// Material of its own. It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase
}

// NewGroup adds a new [Group] with the given name to the given parent.
func NewGroup(parent Node, name string) *Group {
	gp := &Group{}
	gp.InitName(gp, name)
	addTo(parent, gp)
	return gp
}

// SetPos sets the [Pose.Pos] position of the group.
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.SetPos(x, y, z)
	return gp
}

// SetScale sets the [Pose.Scale] scale of the group.
func (gp *Group) SetScale(x, y, z float32) *Group {
	gp.Pose.SetScale(x, y, z)
	return gp
}

// Line is a polyline drawn with a fixed color, such as a path overlay.
type Line struct {
	NodeBase

	// Points are the vertices of the line in local coordinates.
	Points []mgl32.Vec3

	// Material provides the line color.
	Material *Material

	// Width is the line width in pixels.
	Width float32
}

// NewLine adds a new [Line] with the given name, points and material to the given parent.
func NewLine(parent Node, name string, points []mgl32.Vec3, mat *Material) *Line {
	ln := &Line{Points: points, Material: mat, Width: 2}
	ln.InitName(ln, name)
	addTo(parent, ln)
	return ln
}

// addTo adds a freshly constructed node to parent, which cannot fail.
func addTo(parent, kid Node) {
	if parent == nil {
		return
	}
	_ = parent.AsNodeBase().AddChild(kid)
}
