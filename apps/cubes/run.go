// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/cubes/run.go
// Summary: The frame loop: render, present, advance, sleep.
// Notes: Pacing is a fixed sleep after each frame; slow frames are not made up.

package cubes

import (
	"context"
	"fmt"
	"time"

	"github.com/framegrace/texelcube/texel"
)

// Stats summarises a finished run.
type Stats struct {
	Frames  int
	Elapsed time.Duration
}

// FPS returns the average frame rate of the run.
func (s Stats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// Run drives scene on driver until ctx is done, the driver reports an
// interrupt, or opts.MaxFrames frames were shown. Cancellation is a normal
// exit and returns a nil error.
func Run(ctx context.Context, driver texel.ScreenDriver, scene *Scene, opts Options, observer FrameObserver) (Stats, error) {
	if err := driver.Init(); err != nil {
		return Stats{}, fmt.Errorf("init driver: %w", err)
	}
	defer driver.Fini()

	var interrupt <-chan struct{}
	if in, ok := driver.(texel.Interrupter); ok {
		interrupt = in.Interrupted()
	}

	var stats Stats
	start := time.Now()
	done := func() (Stats, error) {
		stats.Elapsed = time.Since(start)
		return stats, nil
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for opts.MaxFrames <= 0 || stats.Frames < opts.MaxFrames {
		select {
		case <-ctx.Done():
			return done()
		case <-interrupt:
			return done()
		default:
		}

		frameStart := time.Now()
		canvas := scene.Render()
		rendered := time.Now()
		if err := driver.Draw(canvas); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, fmt.Errorf("frame %d: %w", stats.Frames, err)
		}
		if observer != nil {
			observer.ObserveFrame(stats.Frames, rendered.Sub(frameStart), time.Since(rendered))
		}
		scene.Step()
		stats.Frames++

		if opts.FrameDelay <= 0 {
			continue
		}
		if timer == nil {
			timer = time.NewTimer(opts.FrameDelay)
		} else {
			timer.Reset(opts.FrameDelay)
		}
		select {
		case <-ctx.Done():
			return done()
		case <-interrupt:
			return done()
		case <-timer.C:
		}
	}
	return done()
}
