// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// HeadlessConfig controls the real time headless runner.
type HeadlessConfig struct {

	// Hz is the target frame rate; it defaults to 60.
	Hz int

	// Frames is the maximum number of frames to run, or 0 for no limit.
	Frames int
}

// RunHeadless runs the frame loop without a display until the frame
// function returns [Stop], the frame budget is used up, or ctx is done,
// in which case ctx.Err() is returned. Frame and resize callbacks are
// all made from the calling goroutine; a pending resize of win is
// delivered before the next frame. The time passed to frame is the
// monotonic time since the loop started.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, win *Window, frame FrameFunc, resize ResizeFunc) error {
	if frame == nil {
		return fmt.Errorf("host.RunHeadless: nil frame function")
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("host.RunHeadless: invalid hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	start := time.Now()
	last := -1.0
	n := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-win.Resized():
			deliverResize(win, resize)
		case <-t.C:
			deliverResize(win, resize)
			ms := float64(time.Since(start)) / float64(time.Millisecond)
			if ms <= last {
				ms = last
			}
			last = ms
			if frame(ms) == Stop {
				slog.Debug("host: frame loop stopped", "frames", n+1)
				return nil
			}
			n++
			if cfg.Frames > 0 && n >= cfg.Frames {
				return nil
			}
		}
	}
}

func deliverResize(win *Window, resize ResizeFunc) {
	w, h, ok := win.TakeResize()
	if !ok || resize == nil {
		return
	}
	slog.Debug("host: resize", "width", w, "height", h)
	resize(w, h)
}

// Step runs up to n frames on a simulated clock that starts at 0 and
// advances by dt milliseconds per frame, stopping early when the frame
// function returns [Stop]. It returns the number of frames run.
func Step(n int, dt float64, frame FrameFunc) int {
	for i := range n {
		if frame(float64(i)*dt) == Stop {
			return i + 1
		}
	}
	return n
}
