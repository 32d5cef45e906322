// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for the tank scene:
// the output viewport, the dimensions and animation rates of the tank
// and its target, the cameras, the path and the frame loop.
// Configs can be read from TOML or YAML files and watched for changes.
package config

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
)

// Config is the main config struct that contains all of the
// configuration options for the tank scene.
type Config struct {

	// the size and background of the rendered output
	Viewport Viewport `yaml:"Viewport"`

	// the ground plane and shadow-casting light
	Ground Ground `yaml:"Ground"`

	// the dimensions, colors and speeds of the tank
	Tank Tank `yaml:"Tank"`

	// the orbiting target the turret tracks
	Target Target `yaml:"Target"`

	// the camera rig and how cameras are cycled
	Cameras Cameras `yaml:"Cameras"`

	// the closed path the tank follows
	Path Path `yaml:"Path"`

	// how the frame loop is run and where frames are written
	Run Run `yaml:"Run"`
}

// Viewport has the output image settings.
type Viewport struct {

	// width of the output in pixels
	Width int `yaml:"Width"`

	// height of the output in pixels
	Height int `yaml:"Height"`

	// background clear color as a hex string
	Background string `yaml:"Background"`
}

// Ground has the ground plane and shadow settings.
type Ground struct {

	// width and depth of the square ground plane
	Size float32 `yaml:"Size"`

	// color of the ground as a hex string
	Color string `yaml:"Color"`

	// resolution of the shadow map of the main light
	ShadowMapSize int `yaml:"ShadowMapSize"`

	// half extent of the shadow region around the light axis
	ShadowExtent float32 `yaml:"ShadowExtent"`

	// near and far distances of the shadow region from the light
	ShadowNear float32 `yaml:"ShadowNear"`
	ShadowFar  float32 `yaml:"ShadowFar"`

	// offset applied to shadows to avoid self shadowing
	ShadowBias float32 `yaml:"ShadowBias"`
}

// Tank has the tank dimensions and animation rates.
type Tank struct {

	// width, height and length of the car body
	Width  float32 `yaml:"Width"`
	Height float32 `yaml:"Height"`
	Length float32 `yaml:"Length"`

	// height of the body above the ground
	BodyY float32 `yaml:"BodyY"`

	// body and dome color as a hex string
	Color string `yaml:"Color"`

	// wheel radius, thickness and number of segments
	WheelRadius    float32 `yaml:"WheelRadius"`
	WheelThickness float32 `yaml:"WheelThickness"`
	WheelSegments  int     `yaml:"WheelSegments"`

	// wheel color as a hex string
	WheelColor string `yaml:"WheelColor"`

	// wheel rotation in radians per second
	WheelSpeed float32 `yaml:"WheelSpeed"`

	// dome radius and number of segments around and down
	DomeRadius   float32 `yaml:"DomeRadius"`
	DomeSegments int     `yaml:"DomeSegments"`

	// scale of the turret pivot
	TurretScale float32 `yaml:"TurretScale"`

	// fraction of the path covered per second
	Speed float32 `yaml:"Speed"`

	// path distance ahead of the tank used to orient it
	Lookahead float32 `yaml:"Lookahead"`
}

// Target has the target placement and animation rates.
type Target struct {

	// radius and segments of the target sphere
	Radius         float32 `yaml:"Radius"`
	WidthSegments  int     `yaml:"WidthSegments"`
	HeightSegments int     `yaml:"HeightSegments"`

	// initial color as a hex string
	Color string `yaml:"Color"`

	// distance from the center and height of the orbit
	Distance  float32 `yaml:"Distance"`
	Elevation float32 `yaml:"Elevation"`

	// orbit rotation in radians per second
	OrbitSpeed float32 `yaml:"OrbitSpeed"`

	// bob angular speed and height
	BobSpeed  float32 `yaml:"BobSpeed"`
	BobHeight float32 `yaml:"BobHeight"`

	// spin in radians per second around x and y
	SpinX float32 `yaml:"SpinX"`
	SpinY float32 `yaml:"SpinY"`

	// hue cycles per second, and the saturation and lightness of the color
	HueRate    float32 `yaml:"HueRate"`
	Saturation float32 `yaml:"Saturation"`
	Lightness  float32 `yaml:"Lightness"`
}

// Cameras has the camera rig settings.
type Cameras struct {

	// active camera changes per second
	Rate float32 `yaml:"Rate"`

	// default field of view in degrees
	FOV float32 `yaml:"FOV"`

	// field of view of the camera above the back of the tank
	TankFOV float32 `yaml:"TankFOV"`

	// near and far clipping distances
	Near float32 `yaml:"Near"`
	Far  float32 `yaml:"Far"`

	// position of the detached camera, which looks at the origin
	Detached Point3 `yaml:"Detached"`
}

// Path has the path settings.
type Path struct {

	// control points of the closed path on the ground
	Points []Point `yaml:"Points"`

	// number of arc length divisions used to parameterize the path
	Divisions int `yaml:"Divisions"`

	// number of segments of the drawn path line
	Samples int `yaml:"Samples"`

	// path line color as a hex string
	Color string `yaml:"Color"`

	// whether the path line is drawn
	Show bool `yaml:"Show"`
}

// Run has the frame loop settings.
type Run struct {

	// frames per second
	Hz int `yaml:"Hz"`

	// number of frames to run, or 0 for no limit
	Frames int `yaml:"Frames"`

	// whether frames follow the wall clock instead of a simulated one
	Realtime bool `yaml:"Realtime"`

	// directory frames are written to as PNG files, none if empty
	Out string `yaml:"Out"`

	// write every nth frame
	Every int `yaml:"Every"`

	// scale factor applied to written frames
	Scale float32 `yaml:"Scale"`
}

// Point is a point on the ground plane.
type Point struct {
	X float32 `yaml:"X"`
	Y float32 `yaml:"Y"`
}

// Point3 is a point in space.
type Point3 struct {
	X float32 `yaml:"X"`
	Y float32 `yaml:"Y"`
	Z float32 `yaml:"Z"`
}

// Default returns a new [Config] with default values.
func Default() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the default values of the scene.
func (c *Config) Defaults() {
	c.Viewport = Viewport{Width: 300, Height: 150, Background: "#aaaaaa"}
	c.Ground = Ground{
		Size: 50, Color: "#cc8866", ShadowMapSize: 2048,
		ShadowExtent: 50, ShadowNear: 1, ShadowFar: 50, ShadowBias: 0.001,
	}
	c.Tank = Tank{
		Width: 4, Height: 1, Length: 8, BodyY: 1.4, Color: "#6688aa",
		WheelRadius: 1, WheelThickness: 0.5, WheelSegments: 6, WheelColor: "#888888", WheelSpeed: 3,
		DomeRadius: 2, DomeSegments: 12, TurretScale: 5, Speed: 0.05, Lookahead: 0.01,
	}
	c.Target = Target{
		Radius: 0.5, WidthSegments: 6, HeightSegments: 3, Color: "#00ff00",
		Distance: 16, Elevation: 8, OrbitSpeed: 0.27, BobSpeed: 2, BobHeight: 4,
		SpinX: 7, SpinY: 13, HueRate: 10, Saturation: 1, Lightness: 0.25,
	}
	c.Cameras = Cameras{
		Rate: 0.25, FOV: 40, TankFOV: 75, Near: 0.1, Far: 1000,
		Detached: Point3{24, 12, 30},
	}
	c.Path = Path{
		Points: []Point{
			{-10, 0}, {-5, 5}, {0, 0}, {5, -5}, {10, 0},
			{5, 10}, {-5, 10}, {-10, -10}, {-15, -8},
		},
		Divisions: 200, Samples: 50, Color: "#ff0000", Show: true,
	}
	c.Run = Run{Hz: 60, Every: 1, Scale: 1}
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() (*Config, error) {
	nc := &Config{}
	if err := copier.CopyWithOption(nc, c, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("config.Clone: %w", err)
	}
	return nc, nil
}

// Validate returns an error describing the first invalid setting.
func (c *Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Viewport.Width > 0 && c.Viewport.Height > 0, "Viewport size must be positive"},
		{c.Ground.Size > 0, "Ground.Size must be positive"},
		{c.Ground.ShadowNear < c.Ground.ShadowFar, "Ground.ShadowNear must be less than ShadowFar"},
		{c.Tank.Width > 0 && c.Tank.Height > 0 && c.Tank.Length > 0, "Tank dimensions must be positive"},
		{c.Tank.WheelSegments >= 3, "Tank.WheelSegments must be at least 3"},
		{c.Tank.DomeSegments >= 3, "Tank.DomeSegments must be at least 3"},
		{c.Target.WidthSegments >= 3 && c.Target.HeightSegments >= 2, "Target segments must be at least 3 around and 2 down"},
		{c.Cameras.FOV > 0 && c.Cameras.FOV < 180, "Cameras.FOV must be in (0, 180)"},
		{c.Cameras.TankFOV > 0 && c.Cameras.TankFOV < 180, "Cameras.TankFOV must be in (0, 180)"},
		{c.Cameras.Near > 0 && c.Cameras.Near < c.Cameras.Far, "Cameras.Near must be positive and less than Far"},
		{c.Cameras.Rate >= 0, "Cameras.Rate must not be negative"},
		{len(c.Path.Points) >= 3, "Path needs at least 3 points"},
		{c.Path.Divisions >= 1, "Path.Divisions must be at least 1"},
		{c.Path.Samples >= 1, "Path.Samples must be at least 1"},
		{c.Run.Hz > 0, "Run.Hz must be positive"},
		{c.Run.Frames >= 0, "Run.Frames must not be negative"},
		{c.Run.Every >= 1, "Run.Every must be at least 1"},
		{c.Run.Scale > 0 && c.Run.Scale <= 4, "Run.Scale must be in (0, 4]"},
	}
	for _, ck := range checks {
		if !ck.ok {
			return fmt.Errorf("config: %s", ck.what)
		}
	}
	for _, p := range c.Path.Points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("config: Path point %v is not finite", p)
		}
	}
	colors := map[string]string{
		"Viewport.Background": c.Viewport.Background,
		"Ground.Color":        c.Ground.Color,
		"Tank.Color":          c.Tank.Color,
		"Tank.WheelColor":     c.Tank.WheelColor,
		"Target.Color":        c.Target.Color,
		"Path.Color":          c.Path.Color,
	}
	names := make([]string, 0, len(colors))
	for k := range colors {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		if !IsHex(colors[k]) {
			return fmt.Errorf("config: %s %q is not a hex color", k, colors[k])
		}
	}
	return nil
}

// IsHex returns whether s is a hex color of the form #RGB, #RGBA,
// #RRGGBB or #RRGGBBAA, with an optional leading #.
func IsHex(s string) bool {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
