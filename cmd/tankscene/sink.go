// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// pngSink writes every nth frame to dir as a numbered PNG file,
// scaled by the given factor.
type pngSink struct {
	dir     string
	every   int
	scale   float32
	written int
}

func newPNGSink(dir string, every int, scale float32) (*pngSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &pngSink{dir: dir, every: max(every, 1), scale: scale}, nil
}

// Write is a frame sink for [tank.Viewer.Sink].
func (ps *pngSink) Write(frame int, img image.Image) error {
	if frame%ps.every != 0 {
		return nil
	}
	if ps.scale > 0 && ps.scale != 1 {
		b := img.Bounds()
		w := max(int(float32(b.Dx())*ps.scale), 1)
		h := max(int(float32(b.Dy())*ps.scale), 1)
		img = transform.Resize(img, w, h, transform.Linear)
	}
	fn := filepath.Join(ps.dir, fmt.Sprintf("frame%05d.png", frame))
	if err := imgio.Save(fn, img, imgio.PNGEncoder()); err != nil {
		return err
	}
	ps.written++
	slog.Debug("wrote frame", "file", fn)
	return nil
}
