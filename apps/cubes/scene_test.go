// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cubes

import (
	"math"
	"strings"
	"testing"

	"github.com/framegrace/texelcube/config"
	"github.com/framegrace/texelcube/raster"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func newDefaultScene(t *testing.T) *Scene {
	t.Helper()
	s, err := NewScene(DefaultOptions())
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestSceneFirstFrame(t *testing.T) {
	s := newDefaultScene(t)
	c := s.Render()

	if got := c.At(90, 25); got != '/' {
		t.Fatalf("expected stationary front face at the center cell, got %q", got)
	}
	if got := c.DepthAt(90, 25); got != 90 {
		t.Fatalf("expected depth 90 at the center cell, got %v", got)
	}

	// The moving cube's center (34, 0, 200) projects near column 90+32.3.
	hit := false
	for y := 24; y <= 26; y++ {
		for x := 121; x <= 123; x++ {
			if !strings.ContainsRune(raster.DefaultGlyphs, c.At(x, y)) {
				continue
			}
			hit = true
			if d := c.DepthAt(x, y); d < 180 || d > 220 {
				t.Fatalf("expected moving cube depth near 200 at (%d, %d), got %v", x, y, d)
			}
		}
	}
	if !hit {
		t.Fatalf("moving cube missing around (122, 25):\n%s", c.String())
	}
}

func TestSceneRenderIsDeterministic(t *testing.T) {
	a, b := newDefaultScene(t), newDefaultScene(t)
	for i := 0; i < 30; i++ {
		a.Step()
		b.Step()
	}
	if diff := cmp.Diff(a.Render().String(), b.Render().String()); diff != "" {
		t.Fatalf("identical scenes rendered differently:\n%s", diff)
	}
}

func TestSceneStepMovesOnlyTheMovingCube(t *testing.T) {
	s := newDefaultScene(t)
	before := s.Cubes()
	s.Step()
	after := s.Cubes()

	if after[0].Center != before[0].Center {
		t.Fatalf("stationary cube moved to %v", after[0].Center)
	}
	if after[1].Center.X != before[1].Center.X+0.6 {
		t.Fatalf("moving cube x: %v -> %v", before[1].Center.X, after[1].Center.X)
	}
	if after[0].Angle != r3.Add(before[0].Angle, before[0].Spin) {
		t.Fatalf("stationary cube angle not advanced")
	}
}

func TestSceneResetsBetweenFrames(t *testing.T) {
	opts := DefaultOptions()
	opts.Cubes = opts.Cubes[1:]
	opts.Cubes[0].Spin = r3.Vec{}
	s, err := NewScene(opts)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	left := leftmostColumn(s.Render())
	if left < 0 {
		t.Fatalf("moving cube not visible")
	}
	for i := 0; i < 20; i++ {
		s.Step()
	}
	c := s.Render()
	// 20 frames at 0.6 shift the cube about 11 columns right, so the old
	// leftmost column must have been cleared.
	for y := 0; y < 50; y++ {
		if got := c.At(left, y); got != ' ' {
			t.Fatalf("stale cell %q at (%d, %d)", got, left, y)
		}
	}
	if now := leftmostColumn(c); now <= left {
		t.Fatalf("expected cube to move right: column %d -> %d", left, now)
	}
}

func leftmostColumn(c *raster.Canvas) int {
	w, h := c.Size()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if c.At(x, y) != c.Background() {
				return x
			}
		}
	}
	return -1
}

func TestNewSceneRejectsEmptyCanvas(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 0
	if _, err := NewScene(opts); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestOptionsFromDefaultConfigMatchDefaults(t *testing.T) {
	got := OptionsFromConfig(config.Defaults())
	if diff := cmp.Diff(DefaultOptions(), got); diff != "" {
		t.Fatalf("config defaults drifted from DefaultOptions (-want +got):\n%s", diff)
	}
}

func TestOptionsFromConfigOverrides(t *testing.T) {
	cfg := config.Defaults()
	cfg.Set(config.SectionRender, "width", 80)
	cfg.Set(config.SectionRender, "glyphs", "abcdef")
	cfg.Set(config.SectionMoving, "velocity_x", -1.5)
	cfg.Set(config.SectionStationary, "center_z", 150.0)

	got := OptionsFromConfig(cfg)
	if got.Width != 80 {
		t.Fatalf("expected width 80, got %d", got.Width)
	}
	if got.Glyphs != raster.MustGlyphSet("abcdef") {
		t.Fatalf("expected custom glyphs, got %q", string(got.Glyphs[:]))
	}
	if got.Cubes[1].VelocityX != -1.5 {
		t.Fatalf("expected moving velocity -1.5, got %v", got.Cubes[1].VelocityX)
	}
	if got.Cubes[0].Center.Z != 150 {
		t.Fatalf("expected stationary z 150, got %v", got.Cubes[0].Center.Z)
	}
}

func TestOptionsFromConfigRejectsInvalid(t *testing.T) {
	cfg := config.Defaults()
	cfg.Set(config.SectionRender, "width", -5)
	cfg.Set(config.SectionRender, "zoom", 0)
	cfg.Set(config.SectionRender, "glyphs", "ab")
	cfg.Set(config.SectionRender, "background", "世")
	cfg.Set(config.SectionMoving, "size", 0)

	got := OptionsFromConfig(cfg)
	want := DefaultOptions()
	if got.Width != want.Width || got.Zoom != want.Zoom || got.Glyphs != want.Glyphs || got.Background != want.Background {
		t.Fatalf("invalid render values were not replaced: %+v", got)
	}
	if got.Cubes[1].Size != want.Cubes[1].Size {
		t.Fatalf("invalid size kept: %d", got.Cubes[1].Size)
	}
}

type cellSnapshot struct {
	glyph rune
	depth float64
}

func renderCells(t *testing.T, opts Options) [][]cellSnapshot {
	t.Helper()
	s, err := NewScene(opts)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	c := s.Render()
	w, h := c.Size()
	cells := make([][]cellSnapshot, h)
	for y := range cells {
		cells[y] = make([]cellSnapshot, w)
		for x := range cells[y] {
			cells[y][x] = cellSnapshot{glyph: c.At(x, y), depth: c.DepthAt(x, y)}
		}
	}
	return cells
}

func TestSceneEarlierCubeWinsDepthTies(t *testing.T) {
	first := CubeOptions{Center: r3.Vec{Z: 100}, Size: 20}
	// A quarter turn about X brings the bottom face to z=90, the plane of the
	// first cube's front face, with a different glyph.
	second := CubeOptions{Center: r3.Vec{Z: 100}, Size: 20, Angle: r3.Vec{X: math.Pi / 2}}

	opts := DefaultOptions()
	opts.Cubes = []CubeOptions{first}
	a := renderCells(t, opts)
	opts.Cubes = []CubeOptions{second}
	b := renderCells(t, opts)
	opts.Cubes = []CubeOptions{first, second}
	both := renderCells(t, opts)

	ties := 0
	for y := range both {
		for x := range both[y] {
			ca, cb := a[y][x], b[y][x]
			want := ca
			if cb.depth < ca.depth {
				want = cb
			}
			if got := both[y][x]; got != want {
				t.Fatalf("cell (%d, %d): got %q at %v, want %q at %v", x, y, got.glyph, got.depth, want.glyph, want.depth)
			}
			if ca.depth == cb.depth && ca.depth != raster.DepthSentinel && ca.glyph != cb.glyph {
				ties++
			}
		}
	}
	if ties == 0 {
		t.Fatalf("expected equal-depth cells with different glyphs")
	}
}
