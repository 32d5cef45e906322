// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tank

import (
	"fmt"
	"log/slog"

	"cogentcore.org/tankscene/base/errors"
	"cogentcore.org/tankscene/config"
	"cogentcore.org/tankscene/scene"
	"cogentcore.org/tankscene/spline"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
)

// Assembly names, as reported in a [BuildReport].
const (
	Wheels   = "wheels"
	Dome     = "dome"
	Turret   = "turret"
	Target   = "target"
	PathLine = "path line"
)

// assembly is an optional part of the scene.
type assembly struct {
	name  string
	build func(rg *Rig) error
}

// assemblies are the optional parts of the scene, in build order.
var assemblies = []assembly{
	{Wheels, (*Rig).buildWheels},
	{Dome, (*Rig).buildDome},
	{Turret, (*Rig).buildTurret},
	{Target, (*Rig).buildTarget},
	{PathLine, (*Rig).buildPathLine},
}

// BuildReport records which optional assemblies were built and which
// were skipped because they failed.
type BuildReport struct {

	// Built lists the assemblies that were built, in build order.
	Built []string

	// Skipped lists the assemblies that failed, with their errors.
	Skipped []Skipped
}

// Skipped is an assembly that failed to build.
type Skipped struct {
	Name string
	Err  error
}

// Has returns whether the named assembly was built.
func (rp *BuildReport) Has(name string) bool {
	for _, b := range rp.Built {
		if b == name {
			return true
		}
	}
	return false
}

// Err returns the errors of all skipped assemblies joined together,
// or nil if nothing was skipped.
func (rp *BuildReport) Err() error {
	errs := make([]error, len(rp.Skipped))
	for i, s := range rp.Skipped {
		errs[i] = fmt.Errorf("%s: %w", s.Name, s.Err)
	}
	return errors.Join(errs...)
}

// run builds one optional assembly. A failure, including a panic,
// is logged and recorded; the assembly is then absent from the scene.
// Assemblies attach their nodes to the scene last, so that a failure
// leaves no partial assembly behind.
func (rp *BuildReport) run(name string, fn func() error) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}()
	if err != nil {
		slog.Warn("tank: skipped assembly", "assembly", name, "err", err)
		rp.Skipped = append(rp.Skipped, Skipped{name, err})
		return
	}
	rp.Built = append(rp.Built, name)
}

// Build constructs the scene graph of the tank, its target and the
// path, along with the camera rig. Failures of the ground, lights,
// tank body, path or core cameras are returned as an error; the
// wheels, dome, turret, target and path line are built on a best
// effort basis and any that fail are listed in the report.
func Build(cfg *config.Config) (*Rig, *BuildReport, error) {
	rg := &Rig{Config: cfg}
	rp := &BuildReport{}
	if err := rg.buildCore(); err != nil {
		return nil, nil, fmt.Errorf("tank.Build: %w", err)
	}
	for _, as := range assemblies {
		if as.name == PathLine && !cfg.Path.Show {
			continue
		}
		rp.run(as.name, func() error { return as.build(rg) })
	}
	rg.collectCameras()
	if err := rg.Scene.Validate(); err != nil {
		return nil, nil, fmt.Errorf("tank.Build: %w", err)
	}
	slog.Debug("tank: built scene", "built", rp.Built, "skipped", len(rp.Skipped), "cameras", len(rg.Cameras))
	return rg, rp, nil
}

func (rg *Rig) buildCore() error {
	cfg := rg.Config
	points := make([]mgl32.Vec2, len(cfg.Path.Points))
	for i, p := range cfg.Path.Points {
		points[i] = mgl32.Vec2{p.X, p.Y}
	}
	path, err := spline.NewPathDivisions(points, cfg.Path.Divisions)
	if err != nil {
		return err
	}
	rg.Path = path

	sc := scene.NewScene("scene")
	sc.Background = gg.Hex(cfg.Viewport.Background)
	rg.Scene = sc

	gc := cfg.Ground
	sun := scene.NewDirLight("overhead", mgl32.Vec3{0, 20, 0}, 1)
	sun.CastShadow = true
	sun.Shadow = scene.ShadowConfig{
		MapSize: gc.ShadowMapSize,
		Left:    -gc.ShadowExtent, Right: gc.ShadowExtent,
		Top: gc.ShadowExtent, Bottom: -gc.ShadowExtent,
		Near: gc.ShadowNear, Far: gc.ShadowFar, Bias: gc.ShadowBias,
	}
	sc.AddLight(sun)
	sc.AddLight(scene.NewDirLight("fill", mgl32.Vec3{1, 2, 4}, 1))

	groundMesh, err := scene.NewPlane(gc.Size, gc.Size)
	if err != nil {
		return err
	}
	rg.Ground = scene.NewSolid(sc, "ground", groundMesh, scene.NewHexMaterial(gc.Color)).
		SetEulerRotation(-math32.Pi/2, 0, 0)
	rg.Ground.ReceiveShadow = true

	tc := cfg.Tank
	bodyMesh, err := scene.NewBox(tc.Width, tc.Height, tc.Length)
	if err != nil {
		return err
	}
	rg.Tank = scene.NewGroup(sc, "tank")
	rg.BodyMaterial = scene.NewHexMaterial(tc.Color)
	rg.Body = scene.NewSolid(rg.Tank, "body", bodyMesh, rg.BodyMaterial).SetPos(0, tc.BodyY, 0)
	rg.Body.CastShadow = true

	cc := cfg.Cameras
	rg.Detached = rg.newCamera(sc, "detached camera", cc.FOV)
	rg.Detached.Pose.SetPos(cc.Detached.X, cc.Detached.Y, cc.Detached.Z)
	rg.Detached.LookAt(mgl32.Vec3{})

	rg.TankCamera = rg.newCamera(rg.Body, "tank camera", cc.TankFOV)
	rg.TankCamera.Pose.SetPos(0, 3, -6)
	rg.TankCamera.Pose.SetEulerRotation(0, math32.Pi, 0)
	return nil
}

func (rg *Rig) newCamera(parent scene.Node, name string, fov float32) *scene.Camera {
	cm := scene.NewCamera(parent, name, fov)
	cm.Near = rg.Config.Cameras.Near
	cm.Far = rg.Config.Cameras.Far
	cm.UpdateProjection()
	return cm
}

func (rg *Rig) buildWheels() error {
	tc := rg.Config.Tank
	mesh, err := scene.NewCylinder(tc.WheelRadius, tc.WheelRadius, tc.WheelThickness, tc.WheelSegments)
	if err != nil {
		return err
	}
	mat := scene.NewHexMaterial(tc.WheelColor)
	x := tc.Width/2 + tc.WheelThickness/2
	y := -tc.Height / 2
	wheels := make([]*scene.Solid, 0, 6)
	for i, z := range []float32{tc.Length / 3, 0, -tc.Length / 3} {
		for j, side := range []float32{-1, 1} {
			wh := scene.NewSolid(nil, fmt.Sprintf("wheel %d", 2*i+j), mesh, mat).
				SetPos(side*x, y, z).SetEulerRotation(0, 0, math32.Pi/2)
			wh.CastShadow = true
			wheels = append(wheels, wh)
		}
	}
	for _, wh := range wheels {
		if err := rg.Body.AddChild(wh); err != nil {
			return err
		}
	}
	rg.Wheels = wheels
	return nil
}

func (rg *Rig) buildDome() error {
	tc := rg.Config.Tank
	mesh, err := scene.NewSphere(tc.DomeRadius, tc.DomeSegments, tc.DomeSegments, 0, 2*math32.Pi, 0, math32.Pi/2)
	if err != nil {
		return err
	}
	dome := scene.NewSolid(nil, "dome", mesh, rg.BodyMaterial).SetPos(0, 0.5, 0)
	dome.CastShadow = true
	if err := rg.Body.AddChild(dome); err != nil {
		return err
	}
	rg.Dome = dome
	return nil
}

func (rg *Rig) buildTurret() error {
	tc := rg.Config.Tank
	length := tc.Length * 0.75 * 0.2
	mesh, err := scene.NewBox(0.1, 0.1, length)
	if err != nil {
		return err
	}
	pivot := scene.NewGroup(nil, "turret pivot").SetScale(tc.TurretScale, tc.TurretScale, tc.TurretScale).SetPos(0, 0.5, length/2)
	turret := scene.NewSolid(pivot, "turret", mesh, rg.BodyMaterial).SetPos(0, 0, length/2)
	turret.CastShadow = true
	cam := rg.newCamera(turret, "turret camera", rg.Config.Cameras.FOV)
	cam.Pose.SetPos(0, 0.75*0.2, 0)
	if err := rg.Body.AddChild(pivot); err != nil {
		return err
	}
	rg.TurretPivot, rg.Turret, rg.TurretCamera = pivot, turret, cam
	return nil
}

func (rg *Rig) buildTarget() error {
	tc := rg.Config.Target
	mesh, err := scene.NewSphere(tc.Radius, tc.WidthSegments, tc.HeightSegments, 0, 2*math32.Pi, 0, math32.Pi)
	if err != nil {
		return err
	}
	if !config.IsHex(tc.Color) {
		return fmt.Errorf("invalid color %q", tc.Color)
	}
	mat := scene.NewHexMaterial(tc.Color)
	mat.Emissive = gg.Hex(tc.Color)
	orbit := scene.NewGroup(nil, "target orbit")
	elevation := scene.NewGroup(orbit, "target elevation").SetPos(0, tc.Elevation, tc.Distance)
	bob := scene.NewGroup(elevation, "target bob")
	target := scene.NewSolid(bob, "target", mesh, mat)
	target.CastShadow = true
	pivot := scene.NewGroup(bob, "target camera pivot")
	cam := rg.newCamera(pivot, "target camera", rg.Config.Cameras.FOV)
	cam.Pose.SetPos(0, 1, -2)
	cam.Pose.SetEulerRotation(0, math32.Pi, 0)
	if err := rg.Scene.AddChild(orbit); err != nil {
		return err
	}
	rg.TargetOrbit, rg.TargetElevation, rg.TargetBob = orbit, elevation, bob
	rg.Target, rg.TargetMaterial = target, mat
	rg.TargetCameraPivot, rg.TargetCamera = pivot, cam
	return nil
}

func (rg *Rig) buildPathLine() error {
	pc := rg.Config.Path
	if !config.IsHex(pc.Color) {
		return fmt.Errorf("invalid color %q", pc.Color)
	}
	samples := rg.Path.Sample(pc.Samples)
	pts := make([]mgl32.Vec3, len(samples))
	for i, p := range samples {
		pts[i] = mgl32.Vec3{p.X(), p.Y(), 0}
	}
	ln := scene.NewLine(nil, "path", pts, scene.NewHexMaterial(pc.Color))
	ln.Pose.SetPos(0, 0.05, 0)
	ln.Pose.SetEulerRotation(math32.Pi/2, 0, 0)
	if err := rg.Scene.AddChild(ln); err != nil {
		return err
	}
	rg.PathLine = ln
	return nil
}
