// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/cubes/options.go
// Summary: Scene options, reference defaults, and mapping from the config store.

package cubes

import (
	"log"
	"time"

	"github.com/framegrace/texelcube/config"
	"github.com/framegrace/texelcube/raster"
	"gonum.org/v1/gonum/spatial/r3"
)

// CubeOptions describes a cube's initial state.
type CubeOptions struct {
	Center    r3.Vec
	Size      int
	Angle     r3.Vec
	Spin      r3.Vec
	VelocityX float64
}

// Options configures a Scene and its frame loop.
type Options struct {
	Width      int
	Height     int
	Zoom       float64
	Background rune
	Glyphs     raster.GlyphSet
	FrameDelay time.Duration
	// Cubes are drawn in order; earlier cubes win equal-depth ties.
	Cubes []CubeOptions
	// MaxFrames stops the loop after that many frames. Zero runs until cancelled.
	MaxFrames int
}

// DefaultOptions returns the reference scene: a stationary cube in front of a
// second cube that bounces horizontally.
func DefaultOptions() Options {
	return Options{
		Width:      180,
		Height:     50,
		Zoom:       95,
		Background: ' ',
		Glyphs:     raster.MustGlyphSet(raster.DefaultGlyphs),
		FrameDelay: 16666 * time.Microsecond,
		Cubes: []CubeOptions{
			{
				Center: r3.Vec{X: 0, Y: 0, Z: 100},
				Size:   20,
				Spin:   r3.Vec{X: 0.01, Y: 0.02, Z: 0.05},
			},
			{
				Center:    r3.Vec{X: 34, Y: 0, Z: 200},
				Size:      20,
				Angle:     r3.Vec{X: 1, Y: 2, Z: 3},
				Spin:      r3.Vec{X: 0.07, Y: 0.02, Z: 0.05},
				VelocityX: 0.6,
			},
		},
	}
}

// OptionsFromConfig reads the render and cube sections. Invalid values are
// logged and replaced by the defaults.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()

	opts.Width = positiveInt(cfg, config.SectionRender, "width", opts.Width)
	opts.Height = positiveInt(cfg, config.SectionRender, "height", opts.Height)
	if zoom := cfg.GetFloat(config.SectionRender, "zoom", opts.Zoom); zoom > 0 {
		opts.Zoom = zoom
	} else {
		log.Printf("Cubes: Ignoring non-positive zoom %v", zoom)
	}
	opts.FrameDelay = cfg.GetDuration(config.SectionRender, "frame_delay_us", time.Microsecond, opts.FrameDelay)

	if bg := []rune(cfg.GetString(config.SectionRender, "background", " ")); len(bg) == 1 && raster.CheckCell(bg[0]) == nil {
		opts.Background = bg[0]
	} else {
		log.Printf("Cubes: Ignoring background %q, want one single-cell character", string(bg))
	}
	if gs, err := raster.NewGlyphSet(cfg.GetString(config.SectionRender, "glyphs", raster.DefaultGlyphs)); err == nil {
		opts.Glyphs = gs
	} else {
		log.Printf("Cubes: Ignoring glyphs: %v", err)
	}

	sections := []string{config.SectionStationary, config.SectionMoving}
	for i, name := range sections {
		opts.Cubes[i] = cubeFromConfig(cfg, name, opts.Cubes[i])
	}
	return opts
}

func cubeFromConfig(cfg config.Config, section string, def CubeOptions) CubeOptions {
	vec := func(prefix string, v r3.Vec) r3.Vec {
		return r3.Vec{
			X: cfg.GetFloat(section, prefix+"_x", v.X),
			Y: cfg.GetFloat(section, prefix+"_y", v.Y),
			Z: cfg.GetFloat(section, prefix+"_z", v.Z),
		}
	}
	return CubeOptions{
		Center:    vec("center", def.Center),
		Size:      positiveInt(cfg, section, "size", def.Size),
		Angle:     vec("angle", def.Angle),
		Spin:      vec("spin", def.Spin),
		VelocityX: cfg.GetFloat(section, "velocity_x", def.VelocityX),
	}
}

func positiveInt(cfg config.Config, section, key string, def int) int {
	v := cfg.GetInt(section, key, def)
	if v <= 0 {
		log.Printf("Cubes: Ignoring %s.%s=%d, must be positive", section, key, v)
		return def
	}
	return v
}
