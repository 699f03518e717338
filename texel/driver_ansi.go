// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/driver_ansi.go
// Summary: Writes frames to a byte stream using raw ANSI control sequences.
// Usage: Default driver; each frame is one write of cursor-home plus all rows.

package texel

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/framegrace/texelcube/raster"
	"golang.org/x/term"
)

const (
	seqClearScreen = "\x1b[2J"
	seqCursorHome  = "\x1b[1;1H"
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
)

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// ANSIDriver presents frames on any io.Writer. When the writer is a terminal
// its size can be queried.
type ANSIDriver struct {
	out    io.Writer
	fd     int
	isTerm bool
	buf    bytes.Buffer
}

// NewANSIDriver wraps out, typically os.Stdout.
func NewANSIDriver(out io.Writer) *ANSIDriver {
	d := &ANSIDriver{out: out, fd: -1}
	if f, ok := out.(fdWriter); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			d.fd = fd
			d.isTerm = true
		}
	}
	return d
}

// IsTerminal reports whether the output is attached to a terminal.
func (d *ANSIDriver) IsTerminal() bool {
	return d.isTerm
}

// Init clears the screen and hides the cursor.
func (d *ANSIDriver) Init() error {
	if _, err := io.WriteString(d.out, seqClearScreen+seqHideCursor); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	return nil
}

// Fini shows the cursor again.
func (d *ANSIDriver) Fini() {
	if _, err := io.WriteString(d.out, seqShowCursor); err != nil {
		log.Printf("ANSIDriver: Failed to restore cursor: %v", err)
	}
}

// Size returns the terminal size in cells, or 0x0 when unknown.
func (d *ANSIDriver) Size() (int, int) {
	if !d.isTerm {
		return 0, 0
	}
	w, h, err := term.GetSize(d.fd)
	if err != nil {
		log.Printf("ANSIDriver: Failed to query terminal size: %v", err)
		return 0, 0
	}
	return w, h
}

// Draw homes the cursor and writes every row, each preceded by a newline, with
// a final newline after the last row.
func (d *ANSIDriver) Draw(c *raster.Canvas) error {
	w, h := c.Size()
	d.buf.Reset()
	d.buf.Grow(len(seqCursorHome) + (w+1)*h + 1)
	d.buf.WriteString(seqCursorHome)
	for y := 0; y < h; y++ {
		d.buf.WriteByte('\n')
		for _, r := range c.Row(y) {
			d.buf.WriteRune(r)
		}
	}
	d.buf.WriteByte('\n')
	if _, err := d.out.Write(d.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
