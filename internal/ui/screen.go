// Package ui draws floors on a tcell terminal.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal the game owns while it runs. It implements Canvas.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(term)
}

// NewScreenFrom takes over term, which must not be initialized yet. Tests
// pass a simulation screen.
func NewScreenFrom(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.term.Fini() }

// PollEvent blocks until the next key or resize event.
func (s *Screen) PollEvent() tcell.Event { return s.term.PollEvent() }

// Sync redraws everything after a resize.
func (s *Screen) Sync() { s.term.Sync() }

// Clear implements Canvas.
func (s *Screen) Clear() { s.term.Clear() }

// Show implements Canvas.
func (s *Screen) Show() { s.term.Show() }

// SetContent implements Canvas.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

// Fits reports whether a width x height area fits on the terminal.
func (s *Screen) Fits(width, height int) bool {
	w, h := s.term.Size()
	return w >= width && h >= height
}
