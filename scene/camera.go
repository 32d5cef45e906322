// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Default camera parameters.
const (
	DefaultFOV    = 40
	DefaultAspect = 2
	DefaultNear   = 0.1
	DefaultFar    = 1000
)

// Camera is a perspective camera node. It looks down its local -Z axis,
// with +Y up, and can be attached anywhere in the scene graph.
type Camera struct {
	NodeBase

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32

	// projection is the projection matrix, updated by UpdateProjection.
	projection mgl32.Mat4
}

// NewCamera adds a new [Camera] with the given name and field of view in
// degrees to the given parent, with default aspect and clip planes.
func NewCamera(parent Node, name string, fov float32) *Camera {
	cm := &Camera{}
	cm.InitName(cm, name)
	cm.Defaults()
	cm.FOV = fov
	cm.UpdateProjection()
	addTo(parent, cm)
	return cm
}

func (cm *Camera) Defaults() {
	cm.FOV = DefaultFOV
	cm.Aspect = DefaultAspect
	cm.Near = DefaultNear
	cm.Far = DefaultFar
}

// UpdateProjection recomputes the projection matrix from the
// current field of view, aspect and clip planes.
func (cm *Camera) UpdateProjection() {
	cm.projection = mgl32.Perspective(mgl32.DegToRad(cm.FOV), cm.Aspect, cm.Near, cm.Far)
}

// SetAspect sets the aspect ratio and recomputes the projection.
func (cm *Camera) SetAspect(aspect float32) {
	cm.Aspect = aspect
	cm.UpdateProjection()
}

// Projection returns the projection matrix.
func (cm *Camera) Projection() mgl32.Mat4 {
	return cm.projection
}

// ViewMatrix returns the view matrix, the inverse of the camera's world matrix.
func (cm *Camera) ViewMatrix() mgl32.Mat4 {
	return cm.WorldMatrix().Inv()
}

// LookAt rotates the camera so that it looks at the given world-space target.
func (cm *Camera) LookAt(target mgl32.Vec3) {
	cm.lookAt(target, true)
}
