// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/driver_tcell.go
// Summary: Presents frames through a tcell.Screen with optional per-face colors.
// Usage: Selected with -backend tcell. Esc, Ctrl-C, or q end the animation.

package texel

import (
	"sync"

	"github.com/framegrace/texelcube/geom"
	"github.com/framegrace/texelcube/raster"
	"github.com/gdamore/tcell/v2"
)

var facePalette = [geom.FaceCount]tcell.Color{
	tcell.ColorAqua,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorBlue,
}

// FaceStyles colors each glyph of gs with a distinct palette entry.
func FaceStyles(gs raster.GlyphSet) map[rune]tcell.Style {
	styles := make(map[rune]tcell.Style, len(gs))
	for i, r := range gs {
		styles[r] = tcell.StyleDefault.Foreground(facePalette[i])
	}
	return styles
}

// TcellScreenDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellScreenDriver struct {
	screen    tcell.Screen
	styles    map[rune]tcell.Style
	interrupt chan struct{}
	once      sync.Once
}

// NewTcellScreenDriver wraps the provided screen. styles may be nil.
func NewTcellScreenDriver(screen tcell.Screen, styles map[rune]tcell.Style) *TcellScreenDriver {
	return &TcellScreenDriver{
		screen:    screen,
		styles:    styles,
		interrupt: make(chan struct{}),
	}
}

func (d *TcellScreenDriver) Init() error {
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.HideCursor()
	d.screen.Clear()
	go d.pollEvents()
	return nil
}

// Fini restores the terminal. PollEvent returns nil afterwards, which ends
// the event goroutine.
func (d *TcellScreenDriver) Fini() {
	d.screen.Fini()
}

func (d *TcellScreenDriver) Size() (int, int) {
	return d.screen.Size()
}

// Interrupted is closed once the user asks to quit.
func (d *TcellScreenDriver) Interrupted() <-chan struct{} {
	return d.interrupt
}

func (d *TcellScreenDriver) Draw(c *raster.Canvas) error {
	w, h := c.Size()
	for y := 0; y < h; y++ {
		row := c.Row(y)
		for x := 0; x < w; x++ {
			d.screen.SetContent(x, y, row[x], nil, d.style(row[x]))
		}
	}
	d.screen.Show()
	return nil
}

func (d *TcellScreenDriver) style(r rune) tcell.Style {
	if st, ok := d.styles[r]; ok {
		return st
	}
	return tcell.StyleDefault
}

func (d *TcellScreenDriver) pollEvents() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				d.once.Do(func() { close(d.interrupt) })
			}
		}
	}
}
