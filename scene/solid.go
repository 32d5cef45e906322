// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
// Meshes and materials can be shared among solids.
type Solid struct {
	NodeBase

	// Mesh is the shape of the solid.
	Mesh *Mesh

	// Material contains the material properties of the surface.
	Material *Material

	// CastShadow is whether the solid casts shadows from shadow-casting lights.
	CastShadow bool

	// ReceiveShadow is whether shadows are drawn onto the solid.
	ReceiveShadow bool
}

// NewSolid adds a new [Solid] with the given name, mesh and material to the given parent.
func NewSolid(parent Node, name string, mesh *Mesh, mat *Material) *Solid {
	sld := &Solid{Mesh: mesh, Material: mat}
	sld.InitName(sld, name)
	addTo(parent, sld)
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid.
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.SetPos(x, y, z)
	return sld
}

// SetEulerRotation sets the [Pose.Quat] rotation of the solid
// from Euler angles in radians.
func (sld *Solid) SetEulerRotation(x, y, z float32) *Solid {
	sld.Pose.SetEulerRotation(x, y, z)
	return sld
}
