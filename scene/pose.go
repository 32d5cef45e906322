// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Standard axis vectors.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Pose contains the full specification of position, orientation and scale,
// always relative to the parent element.
type Pose struct {

	// Pos is the position of the center of the element, relative to the parent.
	Pos mgl32.Vec3

	// Scale is the scale, relative to the parent.
	Scale mgl32.Vec3

	// Quat is the rotation, relative to the parent.
	Quat mgl32.Quat
}

// Defaults sets defaults only if current values are zero.
func (ps *Pose) Defaults() {
	if ps.Scale == (mgl32.Vec3{}) {
		ps.Scale = mgl32.Vec3{1, 1, 1}
	}
	if ps.Quat == (mgl32.Quat{}) {
		ps.Quat = mgl32.QuatIdent()
	}
}

// Matrix returns the local transform matrix based on position, rotation
// and scale, applied in scale, rotate, translate order.
func (ps *Pose) Matrix() mgl32.Mat4 {
	ps.Defaults()
	return mgl32.Translate3D(ps.Pos[0], ps.Pos[1], ps.Pos[2]).
		Mul4(ps.Quat.Mat4()).
		Mul4(mgl32.Scale3D(ps.Scale[0], ps.Scale[1], ps.Scale[2]))
}

// SetPos sets the position.
func (ps *Pose) SetPos(x, y, z float32) {
	ps.Pos = mgl32.Vec3{x, y, z}
}

// SetScale sets the scale.
func (ps *Pose) SetScale(x, y, z float32) {
	ps.Scale = mgl32.Vec3{x, y, z}
}

// SetEulerRotation sets the rotation from Euler angles in radians,
// applied about the X, then Y, then Z axes of the parent frame
// (i.e., the matrix is Rx * Ry * Rz).
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat = EulerQuat(x, y, z)
}

// EulerQuat returns the rotation for the given Euler angles in radians,
// in XYZ order.
func EulerQuat(x, y, z float32) mgl32.Quat {
	return mgl32.QuatRotate(x, AxisX).
		Mul(mgl32.QuatRotate(y, AxisY)).
		Mul(mgl32.QuatRotate(z, AxisZ))
}
