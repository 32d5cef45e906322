// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spline

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-3

var tankPoints = []mgl32.Vec2{
	{-10, 0}, {-5, 5}, {0, 0}, {5, -5}, {10, 0},
	{5, 10}, {-5, 10}, {-10, -10}, {-15, -8},
}

func assertVec2(t *testing.T, want, have mgl32.Vec2, delta float64) {
	t.Helper()
	assert.InDelta(t, want[0], have[0], delta)
	assert.InDelta(t, want[1], have[1], delta)
}

func newTankPath(t *testing.T) *Path {
	ph, err := NewPath(tankPoints)
	require.NoError(t, err)
	return ph
}

func TestNewPathErrors(t *testing.T) {
	_, err := NewPath([]mgl32.Vec2{{0, 0}, {1, 1}})
	assert.Error(t, err)
	_, err = NewPathDivisions(tankPoints, 0)
	assert.Error(t, err)
	_, err = NewPath([]mgl32.Vec2{{1, 1}, {1, 1}, {1, 1}})
	assert.Error(t, err)
}

func TestPassesThroughControlPoints(t *testing.T) {
	ph := newTankPath(t)
	n := float32(len(tankPoints))
	for i, p := range tankPoints {
		assertVec2(t, p, ph.Point(float32(i)/n), tol)
	}
	assert.Equal(t, tankPoints[0], ph.PointAt(0))
}

func TestPeriodic(t *testing.T) {
	ph := newTankPath(t)
	for _, u := range []float32{0, 0.1, 0.25, 0.5, 0.73, 0.999} {
		assertVec2(t, ph.PointAt(u), ph.PointAt(u+1), tol)
		assertVec2(t, ph.PointAt(u), ph.PointAt(u-1), tol)
		assertVec2(t, ph.Point(u), ph.Point(u+1), tol)
	}
}

func TestContinuous(t *testing.T) {
	ph := newTankPath(t)
	// no jumps larger than the step allows, including across the wrap
	const steps = 2000
	maxStep := ph.Length()/steps*1.5 + tol
	prev := ph.PointAt(0)
	for i := 1; i <= steps; i++ {
		cur := ph.PointAt(float32(i) / steps)
		assert.LessOrEqual(t, cur.Sub(prev).Len(), maxStep)
		prev = cur
	}
}

func TestArcLength(t *testing.T) {
	ph := newTankPath(t)
	// equal steps in u cover equal distances
	const n = 40
	pts := ph.Sample(n)
	assert.Len(t, pts, n+1)
	assert.Equal(t, pts[0], pts[n])
	seg := ph.Length() / n
	for i := 1; i <= n; i++ {
		// chords are never longer than the arc they span
		chord := pts[i].Sub(pts[i-1]).Len()
		assert.LessOrEqual(t, chord, seg*1.01)
		assert.GreaterOrEqual(t, chord, seg*0.75)
	}
}

func TestFacing(t *testing.T) {
	ph := newTankPath(t)
	pos, ahead := ph.Facing(0, 0.01)
	assert.Equal(t, tankPoints[0], pos)
	dir := ahead.Sub(pos)
	assert.Greater(t, dir.Len(), float32(0))
	// the path leaves the first point heading toward the second
	toNext := tankPoints[1].Sub(tankPoints[0])
	assert.Greater(t, dir.Dot(toNext), float32(0))

	pos, ahead = ph.Facing(0.995, 0.01)
	assert.Greater(t, ahead.Sub(pos).Len(), float32(0))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, float32(0), Wrap(0))
	assert.Equal(t, float32(0), Wrap(1))
	assert.InDelta(t, 0.25, Wrap(2.25), 1e-6)
	assert.InDelta(t, 0.75, Wrap(-0.25), 1e-6)
	assert.Equal(t, float32(0), Wrap(-1e-9))
}
