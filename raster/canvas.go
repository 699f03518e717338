// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: raster/canvas.go
// Summary: Fixed-size character frame buffer with a parallel depth buffer.
// Usage: Built once at startup, reset every frame, then read row by row by drivers.

package raster

import "fmt"

// DepthSentinel is the reset depth; it is farther than any drawable point.
const DepthSentinel = 100000.0

// FrameBuffer is a width×height grid of display characters.
type FrameBuffer struct {
	width, height int
	background    rune
	cells         []rune
}

// DepthBuffer is a width×height grid holding the nearest depth per cell.
type DepthBuffer struct {
	width, height int
	depth         []float64
}

// Canvas owns a FrameBuffer and a DepthBuffer of identical dimensions.
type Canvas struct {
	Frame *FrameBuffer
	Depth *DepthBuffer
}

// NewCanvas allocates both buffers and resets them.
func NewCanvas(width, height int, background rune) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", width, height)
	}
	c := &Canvas{
		Frame: &FrameBuffer{
			width:      width,
			height:     height,
			background: background,
			cells:      make([]rune, width*height),
		},
		Depth: &DepthBuffer{
			width:  width,
			height: height,
			depth:  make([]float64, width*height),
		},
	}
	c.Reset()
	return c, nil
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) {
	return c.Frame.width, c.Frame.height
}

// Background returns the rune cells are reset to.
func (c *Canvas) Background() rune {
	return c.Frame.background
}

// Reset fills the frame with the background and the depth with DepthSentinel.
func (c *Canvas) Reset() {
	for i := range c.Frame.cells {
		c.Frame.cells[i] = c.Frame.background
	}
	for i := range c.Depth.depth {
		c.Depth.depth[i] = DepthSentinel
	}
}

// InBounds reports whether (x, y) addresses a cell.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Frame.width && y >= 0 && y < c.Frame.height
}

// Plot writes glyph at (x, y) if the cell exists and z is strictly nearer than
// the depth already stored there. It reports whether the cell was written.
func (c *Canvas) Plot(x, y int, z float64, glyph rune) bool {
	if !c.InBounds(x, y) {
		return false
	}
	idx := x + y*c.Frame.width
	if !(z < c.Depth.depth[idx]) {
		return false
	}
	c.Depth.depth[idx] = z
	c.Frame.cells[idx] = glyph
	return true
}

// At returns the glyph at (x, y), or the background when out of range.
func (c *Canvas) At(x, y int) rune {
	if !c.InBounds(x, y) {
		return c.Frame.background
	}
	return c.Frame.cells[x+y*c.Frame.width]
}

// DepthAt returns the stored depth at (x, y), or DepthSentinel when out of range.
func (c *Canvas) DepthAt(x, y int) float64 {
	if !c.InBounds(x, y) {
		return DepthSentinel
	}
	return c.Depth.depth[x+y*c.Depth.width]
}

// Row returns row y of the frame. The slice aliases the buffer and is only
// valid until the next Reset or Plot.
func (c *Canvas) Row(y int) []rune {
	if y < 0 || y >= c.Frame.height {
		return nil
	}
	start := y * c.Frame.width
	return c.Frame.cells[start : start+c.Frame.width]
}

// String renders the frame as newline-terminated rows. Handy in tests and logs.
func (c *Canvas) String() string {
	out := make([]rune, 0, (c.Frame.width+1)*c.Frame.height)
	for y := 0; y < c.Frame.height; y++ {
		out = append(out, c.Row(y)...)
		out = append(out, '\n')
	}
	return string(out)
}
