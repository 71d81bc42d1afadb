package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/depths/internal/gamedata"
	"github.com/samdwyer/depths/internal/world"
)

// Canvas is the part of a screen the renderer draws on. *Screen implements it.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
}

// Glyphs are laid out one per column, so anything that is not exactly one
// column wide is drawn as placeholder.
const placeholder = '?'

var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Renderer draws floors onto a Canvas. It implements world.Surface and
// remembers each cell's background so entity stamps keep it.
type Renderer struct {
	canvas        Canvas
	width, height int
	bg            []gamedata.RGB
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws the floor, its entities and a status line below the map.
func (r *Renderer) Render(m *world.GridMap, status string) {
	r.canvas.Clear()
	r.resize(m.Width, m.Height)
	m.Render(r)
	r.RenderMessage(status, m.Height)
	r.canvas.Show()
}

func (r *Renderer) resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.bg = make([]gamedata.RGB, width*height)
}

// SetCell implements world.Surface.
func (r *Renderer) SetCell(x, y int, g gamedata.Glyph) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.bg[y*r.width+x] = g.BG
	style := tcell.StyleDefault.Foreground(g.FG.TCell()).Background(g.BG.TCell())
	r.canvas.SetContent(x, y, cellRune(g.Rune), style)
}

// Stamp implements world.Surface.
func (r *Renderer) Stamp(x, y int, ch rune, fg gamedata.RGB) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	style := tcell.StyleDefault.Foreground(fg.TCell()).Background(r.bg[y*r.width+x].TCell())
	r.canvas.SetContent(x, y, cellRune(ch), style)
}

// RenderNotice clears the canvas and shows only msg on the first row.
func (r *Renderer) RenderNotice(msg string) {
	r.canvas.Clear()
	r.RenderMessage(msg, 0)
	r.canvas.Show()
}

// RenderMessage displays a message at row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		w := narrow.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.canvas.SetContent(x, y, ch, style)
		x += w
	}
}

func cellRune(ch rune) rune {
	switch {
	case ch == 0:
		return ' '
	case narrow.RuneWidth(ch) != 1:
		return placeholder
	default:
		return ch
	}
}
