// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host provides the environment that drives a frame loop:
// a window size with resize notifications, a real time headless runner
// and a simulated clock for offline rendering.
package host

// Schedule is returned by a [FrameFunc] to say whether it wants another frame.
type Schedule int32

const (
	// Stop stops the frame loop; no further frames are delivered.
	Stop Schedule = iota

	// Next requests the next frame.
	Next
)

func (s Schedule) String() string {
	switch s {
	case Stop:
		return "Stop"
	case Next:
		return "Next"
	}
	return "Schedule(?)"
}

// FrameFunc is called once per frame with the elapsed time in milliseconds.
type FrameFunc func(ms float64) Schedule

// ResizeFunc is called when the output size changes.
type ResizeFunc func(width, height int)
