// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/cubes/cube.go
// Summary: Per-cube animation state and its pure frame update.

package cubes

import (
	"github.com/framegrace/texelcube/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cube is the animation state of one cube.
type Cube struct {
	Center    r3.Vec
	Size      int
	Angle     r3.Vec // accumulated rotation in radians per axis
	Spin      r3.Vec // radians added to Angle each frame
	VelocityX float64

	cloud     geom.Cloud
	cloudAt   r3.Vec
	cloudSize int
}

// Cloud returns the cube's surface sample at its current center. The sample
// is only regenerated after the cube moved or was resized.
func (c *Cube) Cloud() geom.Cloud {
	if c.cloud == nil || c.cloudAt != c.Center || c.cloudSize != c.Size {
		c.cloud = geom.GenerateCube(c.Center, c.Size)
		c.cloudAt = c.Center
		c.cloudSize = c.Size
	}
	return c.cloud
}

// Advance returns c one frame later: angles accumulate Spin, the center moves
// by VelocityX, and the velocity reverses once the new center lies beyond
// ±bound on the horizontal axis.
func Advance(c Cube, bound float64) Cube {
	c.Angle = r3.Add(c.Angle, c.Spin)
	c.Center.X += c.VelocityX
	if c.Center.X > bound || c.Center.X < -bound {
		c.VelocityX = -c.VelocityX
	}
	return c
}
