// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, UserLevel, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, slog.LevelInfo))

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Info("frame", "camera", "detached camera", "n", 3)
	assert.Equal(t, "INFO frame camera=detached camera n=3\n", buf.String())

	buf.Reset()
	l.With("assembly", "wheels").WithGroup("err").Warn("skipped", "msg", "bad")
	assert.Equal(t, "WARN skipped assembly=wheels err.msg=bad\n", buf.String())

	buf.Reset()
	l.Error("fail", slog.Group("size", "w", 1, "h", 2))
	assert.Equal(t, "ERROR fail size.w=1 size.h=2\n", buf.String())
}
