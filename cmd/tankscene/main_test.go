// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/tankscene/config"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Viewport]\nWidth = 640\nHeight = 360\n[Run]\nFrames = 7\n"), 0o644))

	cfg := config.Default()
	opts, err := parse([]string{"-config", file, "-height", "480", "-every", "2", "-v"}, cfg)
	require.NoError(t, err)
	assert.True(t, opts.verbose)
	assert.Equal(t, 640, cfg.Viewport.Width)
	assert.Equal(t, 480, cfg.Viewport.Height)
	assert.Equal(t, 7, cfg.Run.Frames)
	assert.Equal(t, 2, cfg.Run.Every)
	assert.Equal(t, 60, cfg.Run.Hz)

	_, err = parse([]string{"-width", "-5"}, config.Default())
	assert.Error(t, err)
	_, err = parse([]string{"-nosuchflag"}, config.Default())
	assert.Error(t, err)
}

func TestRunWritesFrames(t *testing.T) {
	out := t.TempDir()
	code := run([]string{"-q", "-width", "64", "-height", "32", "-frames", "6", "-every", "2", "-out", out})
	assert.Equal(t, 0, code)
	files, err := filepath.Glob(filepath.Join(out, "*.png"))
	require.NoError(t, err)
	assert.Len(t, files, 3)

	img, err := imgio.Open(filepath.Join(out, "frame00004.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 32), img.Bounds())
}

func TestRunWriteConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scene.yaml")
	assert.Equal(t, 0, run([]string{"-q", "-write-config", file, "-width", "800"}))
	cfg, err := config.Open(file)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Viewport.Width)

	assert.Equal(t, 2, run([]string{"-q", "-config", filepath.Join(t.TempDir(), "missing.toml")}))
}

func TestPNGSinkScale(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	ps, err := newPNGSink(dir, 1, 0.5)
	require.NoError(t, err)
	require.NoError(t, ps.Write(3, image.NewRGBA(image.Rect(0, 0, 100, 40))))
	assert.Equal(t, 1, ps.written)
	img, err := imgio.Open(filepath.Join(dir, "frame00003.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 20), img.Bounds())
}
