// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/cubes/metrics.go
// Summary: Frame timing observers.

package cubes

import (
	"log"
	"time"
)

// FrameObserver receives per-frame timings from Run.
type FrameObserver interface {
	ObserveFrame(frame int, render, present time.Duration)
}

// FrameLogger logs averaged frame timings every Every frames.
type FrameLogger struct {
	logger *log.Logger
	every  int

	count   int
	render  time.Duration
	present time.Duration
	since   time.Time
}

// NewFrameLogger creates an observer that logs to l, or the default logger.
func NewFrameLogger(l *log.Logger, every int) *FrameLogger {
	if l == nil {
		l = log.Default()
	}
	if every <= 0 {
		every = 600
	}
	return &FrameLogger{logger: l, every: every}
}

func (f *FrameLogger) ObserveFrame(frame int, render, present time.Duration) {
	if f == nil || f.logger == nil {
		return
	}
	if f.count == 0 {
		f.since = time.Now()
	}
	f.count++
	f.render += render
	f.present += present
	if f.count < f.every {
		return
	}
	elapsed := time.Since(f.since)
	n := time.Duration(f.count)
	f.logger.Printf("frames=%d render=%s present=%s fps=%.1f", frame+1, f.render/n, f.present/n, float64(f.count)/elapsed.Seconds())
	f.count = 0
	f.render = 0
	f.present = 0
}
