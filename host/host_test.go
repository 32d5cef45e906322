// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	var times []float64
	n := Step(5, 10, func(ms float64) Schedule {
		times = append(times, ms)
		return Next
	})
	assert.Equal(t, 5, n)
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, times)

	calls := 0
	n = Step(100, 16, func(ms float64) Schedule {
		calls++
		if calls == 3 {
			return Stop
		}
		return Next
	})
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, calls)
}

func TestWindowCoalesce(t *testing.T) {
	_, err := NewWindow(0, 10)
	assert.Error(t, err)

	w, err := NewWindow(300, 150)
	require.NoError(t, err)
	_, _, ok := w.TakeResize()
	assert.False(t, ok)

	w.Resize(300, 150) // same size
	_, _, ok = w.TakeResize()
	assert.False(t, ok)

	w.Resize(640, 480)
	w.Resize(800, 600)
	w.Resize(-1, 600)
	w.Resize(1920, 1080)
	assert.Len(t, w.Resized(), 1)
	width, height, ok := w.TakeResize()
	assert.True(t, ok)
	assert.Equal(t, 1920, width)
	assert.Equal(t, 1080, height)
	_, _, ok = w.TakeResize()
	assert.False(t, ok)

	var nw *Window
	assert.Nil(t, nw.Resized())
	_, _, ok = nw.TakeResize()
	assert.False(t, ok)
}

func TestRunHeadlessBudget(t *testing.T) {
	var times []float64
	err := RunHeadless(context.Background(), HeadlessConfig{Hz: 1000, Frames: 5}, nil, func(ms float64) Schedule {
		times = append(times, ms)
		return Next
	}, nil)
	assert.NoError(t, err)
	require.Len(t, times, 5)
	for i := 1; i < len(times); i++ {
		assert.GreaterOrEqual(t, times[i], times[i-1])
	}
}

func TestRunHeadlessStop(t *testing.T) {
	calls := 0
	err := RunHeadless(context.Background(), HeadlessConfig{Hz: 1000}, nil, func(ms float64) Schedule {
		calls++
		if calls == 2 {
			return Stop
		}
		return Next
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	assert.Error(t, RunHeadless(context.Background(), HeadlessConfig{}, nil, nil, nil))
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, HeadlessConfig{Hz: 200}, nil, func(ms float64) Schedule {
		return Next
	}, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunHeadlessResize(t *testing.T) {
	win, err := NewWindow(300, 150)
	require.NoError(t, err)

	var mu sync.Mutex
	var sizes [][2]int
	frames := 0
	err = RunHeadless(context.Background(), HeadlessConfig{Hz: 500}, win, func(ms float64) Schedule {
		frames++
		if frames == 1 {
			// resizes from another goroutine are coalesced
			done := make(chan struct{})
			go func() {
				win.Resize(640, 480)
				win.Resize(1920, 1080)
				close(done)
			}()
			<-done
		}
		if frames == 4 {
			return Stop
		}
		return Next
	}, func(width, height int) {
		mu.Lock()
		sizes = append(sizes, [2]int{width, height})
		mu.Unlock()
	})
	assert.NoError(t, err)
	assert.Equal(t, [][2]int{{1920, 1080}}, sizes)
}
