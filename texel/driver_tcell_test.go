// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texel

import (
	"testing"
	"time"

	"github.com/framegrace/texelcube/raster"
	"github.com/gdamore/tcell/v2"
)

func newSimDriver(t *testing.T, styles map[rune]tcell.Style) (*TcellScreenDriver, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	d := NewTcellScreenDriver(screen, styles)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(d.Fini)
	return d, screen
}

func TestTcellDriverDrawsCanvas(t *testing.T) {
	gs := raster.MustGlyphSet(raster.DefaultGlyphs)
	styles := FaceStyles(gs)
	d, screen := newSimDriver(t, styles)

	c, err := raster.NewCanvas(4, 2, ' ')
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	c.Plot(1, 0, 1, '/')
	c.Plot(3, 1, 1, ':')
	if err := d.Draw(c); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	mainc, _, style, _ := screen.GetContent(1, 0)
	if mainc != '/' {
		t.Fatalf("expected '/', got %q", mainc)
	}
	if style != styles['/'] {
		t.Fatalf("expected front face style")
	}
	if mainc, _, _, _ := screen.GetContent(3, 1); mainc != ':' {
		t.Fatalf("expected ':', got %q", mainc)
	}
	if mainc, _, style, _ := screen.GetContent(0, 0); mainc != ' ' || style != tcell.StyleDefault {
		t.Fatalf("expected plain background, got %q", mainc)
	}
}

func TestTcellDriverInterruptOnEsc(t *testing.T) {
	d, screen := newSimDriver(t, nil)

	select {
	case <-d.Interrupted():
		t.Fatalf("interrupted before any key")
	default:
	}

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	select {
	case <-d.Interrupted():
	case <-time.After(2 * time.Second):
		t.Fatalf("Esc did not interrupt")
	}

	// Further quit keys must not panic on a closed channel.
	_ = screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone))
}

func TestFaceStylesDistinct(t *testing.T) {
	styles := FaceStyles(raster.MustGlyphSet(raster.DefaultGlyphs))
	seen := make(map[tcell.Style]rune)
	for r, st := range styles {
		if other, ok := seen[st]; ok {
			t.Fatalf("%q and %q share a style", r, other)
		}
		seen[st] = r
	}
	if len(styles) != 6 {
		t.Fatalf("expected 6 styles, got %d", len(styles))
	}
}
