// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: geom/cube.go
// Summary: Point-cloud model of a cube's six faces.

package geom

import "gonum.org/v1/gonum/spatial/r3"

// CubeStep is the world-space distance between neighbouring samples on a face.
const CubeStep = 0.4

// stepSlack lets the last sample land on the far edge despite rounding.
const stepSlack = 0.1

// GenerateCube samples the six faces of an axis-aligned cube centered at center
// with edge length size. Faces are emitted front, top, bottom, back, right, left.
func GenerateCube(center r3.Vec, size int) Cloud {
	half := float64(size / 2)
	lo := r3.Sub(center, r3.Vec{X: half, Y: half, Z: half})
	hi := r3.Add(center, r3.Vec{X: half, Y: half, Z: half})

	nx, ny, nz := samples(lo.X, hi.X), samples(lo.Y, hi.Y), samples(lo.Z, hi.Z)
	cloud := make(Cloud, 0, 2*(nx*ny+nx*nz+ny*nz))

	face := func(f Face, at func(u, v int) r3.Vec, nu, nv int) {
		for i := 0; i < nu; i++ {
			for j := 0; j < nv; j++ {
				cloud = append(cloud, Point{Vec: at(i, j), Face: f})
			}
		}
	}

	face(FaceFront, func(i, j int) r3.Vec {
		return r3.Vec{X: stride(lo.X, i), Y: stride(lo.Y, j), Z: lo.Z}
	}, nx, ny)
	face(FaceTop, func(i, j int) r3.Vec {
		return r3.Vec{X: stride(lo.X, i), Y: hi.Y, Z: stride(lo.Z, j)}
	}, nx, nz)
	face(FaceBottom, func(i, j int) r3.Vec {
		return r3.Vec{X: stride(lo.X, i), Y: lo.Y, Z: stride(lo.Z, j)}
	}, nx, nz)
	face(FaceBack, func(i, j int) r3.Vec {
		return r3.Vec{X: stride(lo.X, i), Y: stride(lo.Y, j), Z: hi.Z}
	}, nx, ny)
	face(FaceRight, func(i, j int) r3.Vec {
		return r3.Vec{X: hi.X, Y: stride(lo.Y, i), Z: stride(lo.Z, j)}
	}, ny, nz)
	face(FaceLeft, func(i, j int) r3.Vec {
		return r3.Vec{X: lo.X, Y: stride(lo.Y, i), Z: stride(lo.Z, j)}
	}, ny, nz)

	return cloud
}

func stride(from float64, i int) float64 {
	return from + float64(i)*CubeStep
}

// samples counts the strides from lo that stay within hi (plus slack).
func samples(lo, hi float64) int {
	n := 0
	for stride(lo, n) <= hi+stepSlack {
		n++
	}
	return n
}
