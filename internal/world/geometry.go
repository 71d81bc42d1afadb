// Package world holds the per-floor map state: raw geometry, resolved tiles,
// visibility layers and the entities on the floor.
package world

import "strings"

// Cell is one raw geometry value.
type Cell uint8

const (
	// Floor is an open cell.
	Floor Cell = iota
	// Wall is solid rock.
	Wall
)

// String returns the cell name.
func (c Cell) String() string {
	if c == Floor {
		return "floor"
	}
	return "wall"
}

// Geometry is the raw wall/floor layout of a floor. It is indexed by (x, y)
// with x growing east and y growing south.
type Geometry struct {
	Width, Height int
	cells         []Cell
}

// NewGeometry creates a geometry filled with walls.
func NewGeometry(width, height int) *Geometry {
	g := &Geometry{Width: width, Height: height, cells: make([]Cell, width*height)}
	for i := range g.cells {
		g.cells[i] = Wall
	}
	return g
}

// ParseGeometry builds a geometry from rows of text where '#' is a wall and
// anything else is floor. Rows shorter than the longest row are padded with
// walls.
func ParseGeometry(rows ...string) *Geometry {
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	g := NewGeometry(width, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r != '#' {
				g.Set(x, y, Floor)
			}
		}
	}
	return g
}

// InBounds reports whether (x, y) is inside the geometry.
func (g *Geometry) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y). Off-grid coordinates read as Wall.
func (g *Geometry) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.Width+x]
}

// IsWall reports whether (x, y) is an in-bounds wall.
func (g *Geometry) IsWall(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.Width+x] == Wall
}

// Set changes the cell at (x, y). Off-grid writes are ignored.
func (g *Geometry) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y*g.Width+x] = c
	}
}

// String renders the geometry in the ParseGeometry format.
func (g *Geometry) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			if g.cells[y*g.Width+x] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
