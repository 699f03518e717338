// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: geom/point.go
// Summary: Point types shared by the model generator, transforms, and projector.

package geom

import "gonum.org/v1/gonum/spatial/r3"

// Face identifies which side of a cube a sample point lies on.
type Face uint8

const (
	FaceNone Face = iota
	FaceFront
	FaceTop
	FaceBottom
	FaceBack
	FaceRight
	FaceLeft
)

// FaceCount is the number of tagged cube faces.
const FaceCount = 6

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceBack:
		return "back"
	case FaceRight:
		return "right"
	case FaceLeft:
		return "left"
	default:
		return "none"
	}
}

// Valid reports whether f is one of the six cube faces.
func (f Face) Valid() bool {
	return f >= FaceFront && f <= FaceLeft
}

// Point is a world-space sample with the face it was generated on.
type Point struct {
	r3.Vec
	Face Face
}

// Point2D is a projected screen-space coordinate before grid mapping.
type Point2D struct {
	X, Y float64
}

// Cloud is an ordered surface sample of one model.
type Cloud []Point
