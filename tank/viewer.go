// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tank

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/tankscene/config"
	"cogentcore.org/tankscene/host"
	"cogentcore.org/tankscene/render"
	"cogentcore.org/tankscene/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewer owns a built tank scene along with the state of its frame loop:
// the clock, the active camera, the caption and the renderer.
// All of its methods are expected to be called from the frame loop.
type Viewer struct {

	// Config is the viewer's own copy of the configuration of the scene.
	Config *config.Config

	// Rig is the built scene.
	Rig *Rig

	// Report lists the assemblies that were built and skipped.
	Report *BuildReport

	// Renderer draws each frame. If it is nil, frames are
	// animated but not drawn.
	Renderer *render.Renderer

	// Sink, if set, receives every rendered frame with its index.
	// An error from it stops the frame loop.
	Sink func(frame int, img image.Image) error

	// Time is the scene time in seconds of the last frame.
	Time float64

	// Frames is the number of frames updated.
	Frames int

	// Active is the index in [Rig.Cameras] of the active camera.
	Active int

	caption    string
	wheelAngle float32
	width      int
	height     int
	stopped    bool
	err        error
}

// NewViewer builds the scene for a copy of the given config and returns
// a new [Viewer] for it, sized to the configured viewport. Later changes
// to cfg do not affect the viewer. A nil config uses the defaults.
func NewViewer(cfg *config.Config, r *render.Renderer) (*Viewer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	cfg, err := cfg.Clone()
	if err != nil {
		return nil, fmt.Errorf("tank.NewViewer: %w", err)
	}
	rg, rp, err := Build(cfg)
	if err != nil {
		return nil, err
	}
	v := &Viewer{Config: cfg, Rig: rg, Report: rp, Renderer: r}
	if err := v.Resize(cfg.Viewport.Width, cfg.Viewport.Height); err != nil {
		return nil, fmt.Errorf("tank.NewViewer: %w", err)
	}
	v.Active = -1
	return v, nil
}

// Caption returns the description of the active camera.
func (v *Viewer) Caption() string {
	return v.caption
}

// Camera returns the active camera, or nil before the first frame.
func (v *Viewer) Camera() *RigCamera {
	if v.Active < 0 || v.Active >= len(v.Rig.Cameras) {
		return nil
	}
	return &v.Rig.Cameras[v.Active]
}

// WheelAngle returns the current wheel rotation in radians.
func (v *Viewer) WheelAngle() float32 {
	return v.wheelAngle
}

// Size returns the current viewport size.
func (v *Viewer) Size() (width, height int) {
	return v.width, v.height
}

// Resize sets the viewport size: the renderer output is resized, and
// every camera gets the new aspect ratio with its projection updated.
// Field of view and clip planes are unchanged. Resizing to the current
// size does nothing.
func (v *Viewer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("tank.Resize: invalid size %dx%d", width, height)
	}
	if width == v.width && height == v.height {
		return nil
	}
	if v.Renderer != nil {
		if err := v.Renderer.SetSize(width, height); err != nil {
			return err
		}
	}
	aspect := float32(width) / float32(height)
	for _, rc := range v.Rig.Cameras {
		rc.SetAspect(aspect)
	}
	v.width, v.height = width, height
	slog.Debug("tank: resized", "width", width, "height", height)
	return nil
}

// Stop stops the frame loop: subsequent frames return [host.Stop].
func (v *Viewer) Stop() {
	v.stopped = true
}

// Err returns the error that stopped the frame loop, if any.
func (v *Viewer) Err() error {
	return v.err
}

// Frame is a [host.FrameFunc] that runs [Update] for the given time
// in milliseconds. The first error or panic is logged, after which
// the loop is stopped and never restarted.
func (v *Viewer) Frame(ms float64) (sched host.Schedule) {
	if v.stopped {
		return host.Stop
	}
	defer func() {
		if r := recover(); r != nil {
			v.fail(fmt.Errorf("tank: panic in frame: %v", r))
			sched = host.Stop
		}
	}()
	sched, err := Update(v, ms)
	if err != nil {
		v.fail(err)
		return host.Stop
	}
	return sched
}

func (v *Viewer) fail(err error) {
	v.stopped = true
	v.err = err
	slog.Error("tank: frame loop stopped", "frame", v.Frames, "err", err)
}

// Update advances the scene to the given time in milliseconds and
// renders it from the active camera, returning [host.Next] to ask for
// the next frame.
func Update(v *Viewer, ms float64) (host.Schedule, error) {
	if v.stopped {
		return host.Stop, nil
	}
	rg := v.Rig
	cfg := v.Config
	time := ms * 0.001
	v.Time = time

	if rg.Target != nil {
		tc := cfg.Target
		rg.TargetOrbit.Pose.SetEulerRotation(0, scaled(time, tc.OrbitSpeed), 0)
		rg.TargetBob.Pose.Pos[1] = Bob(time, float64(tc.BobSpeed), float64(tc.BobHeight))
		rg.Target.Pose.SetEulerRotation(scaled(time, tc.SpinX), scaled(time, tc.SpinY), 0)
		rg.TargetMaterial.SetHSL(Hue(time, float64(tc.HueRate)), tc.Saturation, tc.Lightness)
	}

	tankTime := PathTime(time, float64(cfg.Tank.Speed))
	pos, ahead := rg.Path.Facing(tankTime, cfg.Tank.Lookahead)
	rg.Tank.Pose.SetPos(pos.X(), 0, pos.Y())
	rg.Tank.LookAt(mgl32.Vec3{ahead.X(), 0, ahead.Y()})

	if rg.Target != nil {
		tp := rg.Target.WorldPosition()
		if rg.TurretPivot != nil {
			rg.TurretPivot.LookAt(tp)
			rg.TurretCamera.LookAt(tp)
		}
		rg.TargetCameraPivot.LookAt(rg.Tank.WorldPosition())
	}

	v.wheelAngle = WheelAngle(time, float64(cfg.Tank.WheelSpeed))
	for _, wh := range rg.Wheels {
		wh.Pose.Quat = scene.EulerQuat(v.wheelAngle, 0, mgl32.DegToRad(90))
	}

	active := ActiveCamera(time, float64(cfg.Cameras.Rate), len(rg.Cameras))
	if active != v.Active {
		slog.Debug("tank: camera", "camera", rg.Cameras[active].Desc, "time", time)
	}
	v.Active = active
	cam := rg.Cameras[active]
	v.caption = cam.Desc

	if err := v.render(cam.Camera); err != nil {
		return host.Stop, err
	}
	v.Frames++
	return host.Next, nil
}

func (v *Viewer) render(cam *scene.Camera) error {
	if v.Renderer == nil {
		return nil
	}
	if err := v.Renderer.Render(v.Rig.Scene, cam); err != nil {
		return err
	}
	if err := v.Renderer.DrawCaption(v.caption); err != nil {
		return err
	}
	if v.Sink == nil {
		return nil
	}
	if err := v.Sink(v.Frames, v.Renderer.Image()); err != nil {
		return fmt.Errorf("tank: frame %d: %w", v.Frames, err)
	}
	return nil
}
