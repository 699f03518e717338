// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: geom/rotate.go
// Summary: Right-handed axis rotations and pivoted X-Y-Z rotation of points.
// Notes: Rotations do not commute; Rotation always applies X, then Y, then Z.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis selects a rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Rotate rotates v by angle radians about axis through the origin.
func Rotate(v r3.Vec, angle float64, axis Axis) r3.Vec {
	sin, cos := math.Sincos(angle)
	return rotateSC(v, sin, cos, axis)
}

// RotateX rotates v about the X axis.
func RotateX(v r3.Vec, angle float64) r3.Vec { return Rotate(v, angle, AxisX) }

// RotateY rotates v about the Y axis.
func RotateY(v r3.Vec, angle float64) r3.Vec { return Rotate(v, angle, AxisY) }

// RotateZ rotates v about the Z axis.
func RotateZ(v r3.Vec, angle float64) r3.Vec { return Rotate(v, angle, AxisZ) }

func rotateSC(v r3.Vec, sin, cos float64, axis Axis) r3.Vec {
	switch axis {
	case AxisX:
		return r3.Vec{
			X: v.X,
			Y: v.Y*cos - v.Z*sin,
			Z: v.Y*sin + v.Z*cos,
		}
	case AxisY:
		return r3.Vec{
			X: v.X*cos + v.Z*sin,
			Y: v.Y,
			Z: -v.X*sin + v.Z*cos,
		}
	case AxisZ:
		return r3.Vec{
			X: v.X*cos - v.Y*sin,
			Y: v.X*sin + v.Y*cos,
			Z: v.Z,
		}
	}
	return v
}

// Rotation is a composed X-then-Y-then-Z rotation with its sines and cosines
// computed once, so a whole cloud can be transformed without per-point trig.
type Rotation struct {
	sinX, cosX float64
	sinY, cosY float64
	sinZ, cosZ float64
}

// NewRotation builds a Rotation from per-axis angles in radians.
func NewRotation(angles r3.Vec) Rotation {
	var r Rotation
	r.sinX, r.cosX = math.Sincos(angles.X)
	r.sinY, r.cosY = math.Sincos(angles.Y)
	r.sinZ, r.cosZ = math.Sincos(angles.Z)
	return r
}

// Apply rotates v about the origin.
func (r Rotation) Apply(v r3.Vec) r3.Vec {
	v = rotateSC(v, r.sinX, r.cosX, AxisX)
	v = rotateSC(v, r.sinY, r.cosY, AxisY)
	return rotateSC(v, r.sinZ, r.cosZ, AxisZ)
}

// About rotates p about center instead of the world origin. The face tag is kept.
func (r Rotation) About(p Point, center r3.Vec) Point {
	local := r3.Sub(p.Vec, center)
	return Point{Vec: r3.Add(r.Apply(local), center), Face: p.Face}
}
