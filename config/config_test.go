// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Path.Points, 9)
	assert.Equal(t, Point{-10, 0}, c.Path.Points[0])
	assert.Equal(t, float32(40), c.Cameras.FOV)
	assert.Equal(t, Point3{24, 12, 30}, c.Cameras.Detached)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   string
	}{
		{"size", func(c *Config) { c.Viewport.Width = 0 }, "Viewport"},
		{"points", func(c *Config) { c.Path.Points = c.Path.Points[:2] }, "3 points"},
		{"color", func(c *Config) { c.Target.Color = "green" }, "Target.Color"},
		{"near", func(c *Config) { c.Cameras.Near = 2000 }, "Near"},
		{"fov", func(c *Config) { c.Cameras.TankFOV = 180 }, "TankFOV"},
		{"wheels", func(c *Config) { c.Tank.WheelSegments = 2 }, "WheelSegments"},
		{"every", func(c *Config) { c.Run.Every = 0 }, "Every"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex("#aaaaaa"))
	assert.True(t, IsHex("CC8866"))
	assert.True(t, IsHex("#0f0"))
	assert.False(t, IsHex("#12345"))
	assert.False(t, IsHex("#gggggg"))
	assert.False(t, IsHex(""))
}

func TestClone(t *testing.T) {
	c := Default()
	nc, err := c.Clone()
	require.NoError(t, err)
	assert.Equal(t, c, nc)
	nc.Path.Points[0].X = 99
	nc.Viewport.Width = 1
	assert.Equal(t, float32(-10), c.Path.Points[0].X)
	assert.Equal(t, 300, c.Viewport.Width)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestOpenTOML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "scene.toml", `
[Viewport]
Width = 1920
Height = 1080

[Path]
Points = [{X = 0, Y = 0}, {X = 10, Y = 0}, {X = 0, Y = 10}]
`)
	c, err := Open(p)
	require.NoError(t, err)
	assert.Equal(t, 1920, c.Viewport.Width)
	assert.Equal(t, 1080, c.Viewport.Height)
	assert.Equal(t, "#aaaaaa", c.Viewport.Background)
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {0, 10}}, c.Path.Points)
	assert.Equal(t, float32(0.05), c.Tank.Speed)
}

func TestOpenYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "scene.yml", `
Target:
  Color: "#ff00ff"
  BobHeight: 2
Run:
  Frames: 10
`)
	c, err := Open(p)
	require.NoError(t, err)
	assert.Equal(t, "#ff00ff", c.Target.Color)
	assert.Equal(t, float32(2), c.Target.BobHeight)
	assert.Equal(t, 10, c.Run.Frames)
	assert.Equal(t, float32(0.5), c.Target.Radius)

	empty := writeFile(t, t.TempDir(), "empty.yaml", "")
	_, err = Open(empty)
	assert.NoError(t, err)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, dir, "scene.json", "{}"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = Open(writeFile(t, dir, "unknown.toml", "[Tank]\nTracks = 2\n"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, dir, "unknown.yaml", "Tank:\n  Tracks: 2\n"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, dir, "invalid.toml", "[Viewport]\nWidth = -1\n"))
	assert.ErrorContains(t, err, "Viewport")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.toml", "out.yaml"} {
		c := Default()
		c.Viewport.Width = 640
		p := filepath.Join(dir, name)
		require.NoError(t, c.Save(p))
		nc, err := Open(p)
		require.NoError(t, err)
		assert.Equal(t, c, nc)
	}
	assert.Error(t, Default().Save(filepath.Join(dir, "out.ini")))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "toml", Format("a/b.TOML"))
	assert.Equal(t, "yaml", Format("b.yml"))
	assert.Equal(t, "yaml", Format("b.yaml"))
	assert.Equal(t, "", Format("b"))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "scene.toml", "[Viewport]\nWidth = 300\nHeight = 150\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Config, 8)
	require.NoError(t, Watch(ctx, p, func(c *Config) { got <- c }))

	// an invalid file is skipped
	writeFile(t, dir, "scene.toml", "[Viewport]\nWidth = 0\n")
	writeFile(t, dir, "other.toml", "[Viewport]\nWidth = 1\n")
	writeFile(t, dir, "scene.toml", "[Viewport]\nWidth = 1920\nHeight = 1080\n")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-got:
			if c.Viewport.Width == 1920 {
				assert.Equal(t, 1080, c.Viewport.Height)
				return
			}
			assert.NotContains(t, []int{0, 1}, c.Viewport.Width)
		case <-timeout:
			t.Fatal("no reload seen")
		}
	}
}
