// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tank builds and animates the tank scene: a toy tank driving
// along a closed path, its turret tracking a bobbing target, and a rig
// of cameras attached at different points of the scene graph that take
// turns rendering the view.
package tank

import (
	"cogentcore.org/tankscene/config"
	"cogentcore.org/tankscene/scene"
	"cogentcore.org/tankscene/spline"
)

// Rig is a built tank scene, with the nodes that are animated each frame.
// Nodes of assemblies that failed to build are nil.
type Rig struct {

	// Config is the configuration the rig was built from.
	Config *config.Config

	// Scene is the root of the scene graph.
	Scene *scene.Scene

	// Path is the closed path the tank follows.
	Path *spline.Path

	// Ground is the shadow-receiving ground plane.
	Ground *scene.Solid

	// Tank is the group moved along the path; Body hangs under it.
	Tank *scene.Group
	Body *scene.Solid

	// BodyMaterial is shared by the body, dome and turret.
	BodyMaterial *scene.Material

	Wheels []*scene.Solid
	Dome   *scene.Solid

	// TurretPivot is turned to face the target.
	TurretPivot *scene.Group
	Turret      *scene.Solid

	// TargetOrbit rotates around the center; TargetElevation holds the
	// target away from the center; TargetBob moves it up and down.
	TargetOrbit     *scene.Group
	TargetElevation *scene.Group
	TargetBob       *scene.Group
	Target          *scene.Solid
	TargetMaterial  *scene.Material

	// TargetCameraPivot is turned to face the tank.
	TargetCameraPivot *scene.Group

	PathLine *scene.Line

	Detached     *scene.Camera
	TurretCamera *scene.Camera
	TargetCamera *scene.Camera
	TankCamera   *scene.Camera

	// Cameras are the cameras that take turns rendering, in order.
	Cameras []RigCamera
}

// RigCamera is a camera in the rig with its human readable description.
type RigCamera struct {
	*scene.Camera
	Desc string
}

// collectCameras sets [Rig.Cameras] from the cameras that were built.
func (rg *Rig) collectCameras() {
	all := []RigCamera{
		{rg.Detached, "detached camera"},
		{rg.TurretCamera, "on turret looking at target"},
		{rg.TargetCamera, "near target looking at tank"},
		{rg.TankCamera, "above back of tank"},
	}
	rg.Cameras = rg.Cameras[:0]
	for _, rc := range all {
		if rc.Camera != nil {
			rg.Cameras = append(rg.Cameras, rc)
		}
	}
}
