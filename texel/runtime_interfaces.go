// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/runtime_interfaces.go
// Summary: Interfaces the frame loop uses to reach the terminal.

package texel

import "github.com/framegrace/texelcube/raster"

// ScreenDriver abstracts the surface frames are presented on. Implementations
// own terminal setup and teardown.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	Draw(c *raster.Canvas) error
}

// Interrupter is implemented by drivers that capture the terminal and therefore
// have to report a user's request to quit themselves.
type Interrupter interface {
	Interrupted() <-chan struct{}
}
