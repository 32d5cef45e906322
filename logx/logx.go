// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger used by
// tankscene commands, with colored level labels on terminals.
package logx

import (
	"log/slog"
	"os"

	"github.com/gogpu/gg"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. It is set from command line flags through
// [LevelFromFlags]. The default user level is [slog.LevelInfo], or
// [slog.LevelDebug] with the "debug" build tag and [slog.LevelWarn] with
// the "release" build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [UserLevel])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// SetDefaultLogger sets the default logger to one that writes to
// [os.Stderr] through a [Handler] at [UserLevel], and points the
// gg rasterizer logger at it as well.
func SetDefaultLogger() {
	l := slog.New(NewHandler(os.Stderr, UserLevel))
	slog.SetDefault(l)
	gg.SetLogger(l)
}
