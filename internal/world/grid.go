package world

import "github.com/samdwyer/depths/internal/gamedata"

// BoolGrid is a width x height grid of flags.
type BoolGrid struct {
	Width, Height int
	cells         []bool
}

// NewBoolGrid creates an all-false grid.
func NewBoolGrid(width, height int) *BoolGrid {
	return &BoolGrid{Width: width, Height: height, cells: make([]bool, width*height)}
}

// Get returns the flag at (x, y). Off-grid coordinates read as false.
func (g *BoolGrid) Get(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}
	return g.cells[y*g.Width+x]
}

// Set changes the flag at (x, y). Off-grid writes are ignored.
func (g *BoolGrid) Set(x, y int, v bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.cells[y*g.Width+x] = v
}

// Fill sets every cell to v.
func (g *BoolGrid) Fill(v bool) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Count returns the number of true cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// CopyFrom overwrites g with src. Both grids must share dimensions.
func (g *BoolGrid) CopyFrom(src *BoolGrid) {
	g.mustMatch(src)
	copy(g.cells, src.cells)
}

// OrWith sets every cell that is true in src. Cells already true stay true.
func (g *BoolGrid) OrWith(src *BoolGrid) {
	g.mustMatch(src)
	for i, v := range src.cells {
		if v {
			g.cells[i] = true
		}
	}
}

func (g *BoolGrid) mustMatch(o *BoolGrid) {
	if g.Width != o.Width || g.Height != o.Height {
		panic("world: grid dimensions differ")
	}
}

// TileGrid holds the resolved tile definition of every cell.
type TileGrid struct {
	Width, Height int
	cells         []*gamedata.TileDef
}

// NewTileGrid creates a grid with every cell set to fill.
func NewTileGrid(width, height int, fill *gamedata.TileDef) *TileGrid {
	t := &TileGrid{Width: width, Height: height, cells: make([]*gamedata.TileDef, width*height)}
	for i := range t.cells {
		t.cells[i] = fill
	}
	return t
}

// At returns the tile at (x, y), or nil off-grid.
func (t *TileGrid) At(x, y int) *gamedata.TileDef {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return nil
	}
	return t.cells[y*t.Width+x]
}

// Set replaces the tile at (x, y). Off-grid writes are ignored.
func (t *TileGrid) Set(x, y int, def *gamedata.TileDef) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.cells[y*t.Width+x] = def
}
