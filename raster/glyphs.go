// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: raster/glyphs.go
// Summary: Face-to-character mapping used at the rasterization boundary.

package raster

import (
	"fmt"

	"github.com/framegrace/texelcube/geom"
	"github.com/mattn/go-runewidth"
)

// DefaultGlyphs lists the face glyphs in face order: front, top, bottom, back, right, left.
const DefaultGlyphs = `/$*-:"`

// GlyphSet maps each cube face to the character drawn for it.
type GlyphSet [geom.FaceCount]rune

// NewGlyphSet parses six single-cell glyphs in face order.
func NewGlyphSet(s string) (GlyphSet, error) {
	var gs GlyphSet
	runes := []rune(s)
	if len(runes) != geom.FaceCount {
		return gs, fmt.Errorf("glyph set needs %d runes, got %d in %q", geom.FaceCount, len(runes), s)
	}
	for i, r := range runes {
		if err := CheckCell(r); err != nil {
			return gs, fmt.Errorf("glyph for %s face: %w", geom.Face(i+1), err)
		}
		gs[i] = r
	}
	return gs, nil
}

// MustGlyphSet is NewGlyphSet for known-good literals.
func MustGlyphSet(s string) GlyphSet {
	gs, err := NewGlyphSet(s)
	if err != nil {
		panic(err)
	}
	return gs
}

// For returns the glyph of face f. Untagged points draw as '?'.
func (gs GlyphSet) For(f geom.Face) rune {
	if !f.Valid() {
		return '?'
	}
	return gs[f-1]
}

// CheckCell rejects runes that do not occupy exactly one terminal cell; wide or
// zero-width glyphs would shear every row they appear in.
func CheckCell(r rune) error {
	if w := runewidth.RuneWidth(r); w != 1 {
		return fmt.Errorf("%q is %d cells wide, want 1", r, w)
	}
	return nil
}
