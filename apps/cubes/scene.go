// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/cubes/scene.go
// Summary: Owns the cubes and the canvas, renders and advances one frame at a time.

package cubes

import (
	"fmt"

	"github.com/framegrace/texelcube/raster"
)

// Scene holds everything a frame needs. It is not safe for concurrent use.
type Scene struct {
	cubes     []Cube
	canvas    *raster.Canvas
	projector raster.Projector
	bound     float64
}

// NewScene allocates the canvas and the initial cube states.
func NewScene(opts Options) (*Scene, error) {
	canvas, err := raster.NewCanvas(opts.Width, opts.Height, opts.Background)
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	s := &Scene{
		canvas:    canvas,
		projector: raster.Projector{Zoom: opts.Zoom, Glyphs: opts.Glyphs},
		bound:     float64(opts.Width / 2),
	}
	for _, co := range opts.Cubes {
		s.cubes = append(s.cubes, Cube{
			Center:    co.Center,
			Size:      co.Size,
			Angle:     co.Angle,
			Spin:      co.Spin,
			VelocityX: co.VelocityX,
		})
	}
	return s, nil
}

// Cubes returns a copy of the current cube states in draw order.
func (s *Scene) Cubes() []Cube {
	out := make([]Cube, len(s.cubes))
	copy(out, s.cubes)
	return out
}

// Render clears the canvas and draws every cube at its current state.
func (s *Scene) Render() *raster.Canvas {
	s.canvas.Reset()
	for i := range s.cubes {
		c := &s.cubes[i]
		s.projector.Draw(s.canvas, c.Cloud(), c.Center, c.Angle)
	}
	return s.canvas
}

// Step advances every cube by one frame.
func (s *Scene) Step() {
	for i := range s.cubes {
		s.cubes[i] = Advance(s.cubes[i], s.bound)
	}
}
