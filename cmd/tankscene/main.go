// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tankscene renders the tank scene headless: a tank drives along
// a closed path while its turret tracks a bobbing target, with the view
// cycling between cameras attached around the scene. Frames can be
// written out as PNG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/tankscene/base/errors"
	"cogentcore.org/tankscene/config"
	"cogentcore.org/tankscene/host"
	"cogentcore.org/tankscene/logx"
	"cogentcore.org/tankscene/render"
	"cogentcore.org/tankscene/tank"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// options are the command line options, which override the config file.
type options struct {
	config      string
	writeConfig string
	watch       bool
	verbose     bool
	veryVerbose bool
	quiet       bool
}

func parse(args []string, cfg *config.Config) (*options, error) {
	fs := flag.NewFlagSet("tankscene", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.config, "config", "", "config file (.toml, .yaml or .yml)")
	fs.StringVar(&opts.writeConfig, "write-config", "", "write the resulting config to this file and exit")
	fs.BoolVar(&opts.watch, "watch", false, "watch the config file and apply viewport size changes")
	fs.BoolVar(&opts.verbose, "v", false, "verbose output")
	fs.BoolVar(&opts.veryVerbose, "vv", false, "very verbose output")
	fs.BoolVar(&opts.quiet, "q", false, "only print errors")

	var run config.Run
	var vp config.Viewport
	fs.StringVar(&run.Out, "out", "", "directory to write PNG frames to")
	fs.IntVar(&run.Frames, "frames", 0, "number of frames to run, 0 for no limit")
	fs.IntVar(&run.Every, "every", 1, "write every nth frame")
	fs.IntVar(&run.Hz, "hz", 60, "frames per second")
	fs.BoolVar(&run.Realtime, "realtime", false, "run frames on the wall clock")
	fs.IntVar(&vp.Width, "width", 0, "output width in pixels")
	fs.IntVar(&vp.Height, "height", 0, "output height in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.config != "" {
		if err := cfg.Open(opts.config); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Run.Out = run.Out
		case "frames":
			cfg.Run.Frames = run.Frames
		case "every":
			cfg.Run.Every = run.Every
		case "hz":
			cfg.Run.Hz = run.Hz
		case "realtime":
			cfg.Run.Realtime = run.Realtime
		case "width":
			cfg.Viewport.Width = vp.Width
		case "height":
			cfg.Viewport.Height = vp.Height
		}
	})
	return opts, cfg.Validate()
}

func run(args []string) int {
	cfg := config.Default()
	opts, err := parse(args, cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "tankscene:", err)
		return 2
	}
	logx.UserLevel = logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet)
	logx.SetDefaultLogger()

	if opts.writeConfig != "" {
		if errors.Log(cfg.Save(opts.writeConfig)) != nil {
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v, err := start(cfg)
	if err != nil {
		slog.Error("tankscene: initialization failed", "err", err)
		return 1
	}
	defer v.Renderer.Close()

	win, err := host.NewWindow(cfg.Viewport.Width, cfg.Viewport.Height)
	if err != nil {
		slog.Error("tankscene: initialization failed", "err", err)
		return 1
	}
	if opts.watch && opts.config != "" {
		err := config.Watch(ctx, opts.config, func(c *config.Config) {
			win.Resize(c.Viewport.Width, c.Viewport.Height)
		})
		if err != nil {
			slog.Error("tankscene: initialization failed", "err", err)
			return 1
		}
	}
	resize := func(width, height int) {
		errors.Log(v.Resize(width, height))
	}

	if cfg.Run.Realtime {
		err = host.RunHeadless(ctx, host.HeadlessConfig{Hz: cfg.Run.Hz, Frames: cfg.Run.Frames}, win, v.Frame, resize)
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("tankscene", "err", err)
			return 1
		}
	} else {
		n := cfg.Run.Frames
		if n == 0 {
			n = math.MaxInt
		}
		host.Step(n, 1000/float64(cfg.Run.Hz), func(ms float64) host.Schedule {
			if ctx.Err() != nil {
				return host.Stop
			}
			if w, h, ok := win.TakeResize(); ok {
				resize(w, h)
			}
			return v.Frame(ms)
		})
	}
	if v.Err() != nil {
		return 1
	}
	slog.Info("tankscene: done", "frames", v.Frames, "time", v.Time)
	return 0
}

// start creates the renderer and the viewer, with the frame sink
// given by the config.
func start(cfg *config.Config) (*tank.Viewer, error) {
	r, err := render.New(cfg.Viewport.Width, cfg.Viewport.Height)
	if err != nil {
		return nil, err
	}
	v, err := tank.NewViewer(cfg, r)
	if err != nil {
		r.Close()
		return nil, err
	}
	if cfg.Run.Out != "" {
		ps, err := newPNGSink(cfg.Run.Out, cfg.Run.Every, cfg.Run.Scale)
		if err != nil {
			r.Close()
			return nil, err
		}
		v.Sink = ps.Write
	}
	return v, nil
}
