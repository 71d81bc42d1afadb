package world

import (
	"strings"

	"github.com/samdwyer/depths/internal/gamedata"
)

// Surface is a render target. SetCell writes a full background cell; Stamp
// draws an entity glyph over whatever the cell holds, keeping its
// background.
type Surface interface {
	SetCell(x, y int, g gamedata.Glyph)
	Stamp(x, y int, r rune, fg gamedata.RGB)
}

// Frame is an in-memory glyph grid. It is both the composed background of a
// floor and a Surface that can be rendered into.
type Frame struct {
	Width, Height int
	cells         []gamedata.Glyph
}

// NewFrame creates a frame of zero glyphs.
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, cells: make([]gamedata.Glyph, width*height)}
}

// At returns the glyph at (x, y), or the zero glyph off-frame.
func (f *Frame) At(x, y int) gamedata.Glyph {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return gamedata.Glyph{}
	}
	return f.cells[y*f.Width+x]
}

// SetCell implements Surface.
func (f *Frame) SetCell(x, y int, g gamedata.Glyph) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.cells[y*f.Width+x] = g
}

// Stamp implements Surface.
func (f *Frame) Stamp(x, y int, r rune, fg gamedata.RGB) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	c := &f.cells[y*f.Width+x]
	c.Rune = r
	c.FG = fg
}

// Blit copies every cell of f into s.
func (f *Frame) Blit(s Surface) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			s.SetCell(x, y, f.cells[y*f.Width+x])
		}
	}
}

// String returns the runes of the frame, one line per row.
func (f *Frame) String() string {
	var b strings.Builder
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			b.WriteRune(f.cells[y*f.Width+x].Rune)
		}
		if y < f.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
