// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package raster

import (
	"testing"

	"github.com/framegrace/texelcube/geom"
)

func TestDefaultGlyphsInFaceOrder(t *testing.T) {
	gs := MustGlyphSet(DefaultGlyphs)
	tests := map[geom.Face]rune{
		geom.FaceFront:  '/',
		geom.FaceTop:    '$',
		geom.FaceBottom: '*',
		geom.FaceBack:   '-',
		geom.FaceRight:  ':',
		geom.FaceLeft:   '"',
	}
	for face, want := range tests {
		if got := gs.For(face); got != want {
			t.Fatalf("face %s: expected %q, got %q", face, want, got)
		}
	}
	if got := gs.For(geom.FaceNone); got != '?' {
		t.Fatalf("untagged face should draw '?', got %q", got)
	}
}

func TestNewGlyphSetRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "/$*-:", `/$*-:"#`, "/$*-:世", "/$*-:\u0301"} {
		if _, err := NewGlyphSet(s); err == nil {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
	if _, err := NewGlyphSet("abcdef"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
