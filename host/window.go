// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"sync"
)

// Window is the output surface of a frame loop. Its size can be changed
// from any goroutine; any number of changes between two frames are
// coalesced into a single notification carrying the latest size.
type Window struct {
	mu      sync.Mutex
	width   int
	height  int
	pending bool
	notify  chan struct{}
}

// NewWindow returns a new [Window] with the given initial size.
func NewWindow(width, height int) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("host.NewWindow: invalid size %dx%d", width, height)
	}
	return &Window{width: width, height: height, notify: make(chan struct{}, 1)}, nil
}

// Size returns the current size.
func (w *Window) Size() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Resize sets a new size and signals a pending resize.
// Non-positive sizes and the current size are ignored.
func (w *Window) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.mu.Lock()
	if width == w.width && height == w.height {
		w.mu.Unlock()
		return
	}
	w.width, w.height = width, height
	w.pending = true
	w.mu.Unlock()
	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// Resized returns a channel that receives when a resize is pending.
// It is nil for a nil window.
func (w *Window) Resized() <-chan struct{} {
	if w == nil {
		return nil
	}
	return w.notify
}

// TakeResize returns the latest size if a resize is pending,
// clearing the pending state.
func (w *Window) TakeResize() (width, height int, ok bool) {
	if w == nil {
		return 0, 0, false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.pending {
		return 0, 0, false
	}
	w.pending = false
	return w.width, w.height, true
}
