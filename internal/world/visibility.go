package world

import "github.com/samdwyer/depths/internal/gamedata"

// Visibility is the three-layer visibility state of a floor.
//
//   - Visible: in the field of view this turn. Replaced every FOV pass.
//   - Explored: has ever been visible. Never cleared.
//   - Explorable: may take part in autotiling. Maintained by the FOV pass.
type Visibility struct {
	Visible    *BoolGrid
	Explored   *BoolGrid
	Explorable *BoolGrid
}

// NewVisibility creates all-false layers.
func NewVisibility(width, height int) *Visibility {
	return &Visibility{
		Visible:    NewBoolGrid(width, height),
		Explored:   NewBoolGrid(width, height),
		Explorable: NewBoolGrid(width, height),
	}
}

// Observe records the result of a field-of-view pass: lit replaces Visible
// and is added to Explored and Explorable. Rendering never calls this.
func (v *Visibility) Observe(lit *BoolGrid) {
	v.Visible.CopyFrom(lit)
	v.Explored.OrWith(lit)
	v.Explorable.OrWith(lit)
}

// SelectGlyph picks how one cell is drawn, in priority order: lit tile,
// remembered tile, shroud.
func SelectGlyph(tile *gamedata.TileDef, visible, explored bool, shroud gamedata.Glyph) gamedata.Glyph {
	if visible {
		return tile.Light
	}
	if explored {
		return tile.Dark
	}
	return shroud
}

// Compose builds the background frame of a floor from its resolved tiles.
func (v *Visibility) Compose(tiles *TileGrid, shroud gamedata.Glyph) *Frame {
	f := NewFrame(tiles.Width, tiles.Height)
	for y := 0; y < tiles.Height; y++ {
		for x := 0; x < tiles.Width; x++ {
			f.SetCell(x, y, SelectGlyph(tiles.At(x, y), v.Visible.Get(x, y), v.Explored.Get(x, y), shroud))
		}
	}
	return f
}
