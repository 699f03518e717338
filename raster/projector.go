// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: raster/projector.go
// Summary: Perspective projection and depth-tested drawing of point clouds.
// Notes: z close to zero is not guarded. The divide yields huge or non-finite
// coordinates that the bounds check normally discards.

package raster

import (
	"github.com/framegrace/texelcube/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// AspectRatio widens x because terminal cells are about twice as tall as wide.
const AspectRatio = 2.0

// Projector maps world points onto a Canvas.
type Projector struct {
	Zoom   float64
	Glyphs GlyphSet
}

// Project applies the perspective divide and aspect correction.
func (p Projector) Project(v r3.Vec) geom.Point2D {
	d := p.Zoom / v.Z
	return geom.Point2D{
		X: v.X * d * AspectRatio,
		Y: v.Y * d,
	}
}

// Cell maps a projected point onto grid coordinates with row 0 at the top.
// Conversion truncates toward zero.
func (p Projector) Cell(s geom.Point2D, width, height int) (int, int) {
	gx := int(float64(width/2) + s.X)
	gy := int(float64(height) - (float64(height/2) + s.Y))
	return gx, gy
}

// Draw rotates every point of cloud about center by angles, projects it and
// plots it with a depth test. It returns how many cells were written.
func (p Projector) Draw(c *Canvas, cloud geom.Cloud, center, angles r3.Vec) int {
	width, height := c.Size()
	rot := geom.NewRotation(angles)
	written := 0
	for _, pt := range cloud {
		world := rot.About(pt, center)
		gx, gy := p.Cell(p.Project(world.Vec), width, height)
		if c.Plot(gx, gy, world.Z, p.Glyphs.For(world.Face)) {
			written++
		}
	}
	return written
}
