package world

import "github.com/samdwyer/depths/internal/gamedata"

// Neighbour bits of a wall mask. West and east are the x axis, north and
// south the y axis.
const (
	MaskNorth = 1 << iota
	MaskSouth
	MaskWest
	MaskEast
)

// Box-drawing glyphs used for walls.
const (
	GlyphPillar     = '○'
	GlyphVertical   = '║'
	GlyphHorizontal = '═'
	GlyphCornerNW   = '╝' // walls to the north and west
	GlyphCornerSW   = '╗' // walls to the south and west
	GlyphCornerNE   = '╚' // walls to the north and east
	GlyphCornerSE   = '╔' // walls to the south and east
	GlyphTeeWest    = '╣'
	GlyphTeeEast    = '╠'
	GlyphTeeNorth   = '╩'
	GlyphTeeSouth   = '╦'
	GlyphCross      = '╬'

	// GlyphGeneric is not a box-drawing rune; the catalog maps it to the
	// plain wall.
	GlyphGeneric rune = 0
)

// Resolve returns the tile of every cell of raw. Floor cells get the floor
// tile; wall cells get a box-drawing wall chosen from their explorable wall
// neighbours. Neither input is modified.
func Resolve(raw *Geometry, explorable *BoolGrid, cat *gamedata.Catalog) *TileGrid {
	dst := NewTileGrid(raw.Width, raw.Height, cat.Wall)
	ResolveInto(dst, raw, explorable, cat)
	return dst
}

// ResolveInto is Resolve writing into an existing grid of the same size.
func ResolveInto(dst *TileGrid, raw *Geometry, explorable *BoolGrid, cat *gamedata.Catalog) {
	for y := 0; y < raw.Height; y++ {
		for x := 0; x < raw.Width; x++ {
			if raw.At(x, y) == Floor {
				dst.Set(x, y, cat.Floor)
				continue
			}
			dst.Set(x, y, cat.WallGlyph(WallRune(raw, explorable, x, y)))
		}
	}
}

// isKnownWall is the neighbour test of the resolver: a geometric wall the
// player may know about. Off-grid cells are never walls.
func isKnownWall(raw *Geometry, explorable *BoolGrid, x, y int) bool {
	return raw.IsWall(x, y) && explorable.Get(x, y)
}

// WallMask returns the neighbour mask of (x, y).
func WallMask(raw *Geometry, explorable *BoolGrid, x, y int) int {
	mask := 0
	if isKnownWall(raw, explorable, x, y-1) {
		mask |= MaskNorth
	}
	if isKnownWall(raw, explorable, x, y+1) {
		mask |= MaskSouth
	}
	if isKnownWall(raw, explorable, x-1, y) {
		mask |= MaskWest
	}
	if isKnownWall(raw, explorable, x+1, y) {
		mask |= MaskEast
	}
	return mask
}

// WallRune returns the glyph for the wall at (x, y). Three-sided masks look
// at the diagonals on the open side's opposite edge: a filled diagonal means
// the wall is the face of a thick block rather than a junction.
func WallRune(raw *Geometry, explorable *BoolGrid, x, y int) rune {
	known := func(dx, dy int) bool {
		return isKnownWall(raw, explorable, x+dx, y+dy)
	}

	switch mask := WallMask(raw, explorable, x, y); mask {
	case 0:
		return GlyphPillar
	case MaskNorth, MaskSouth, MaskNorth | MaskSouth:
		return GlyphVertical
	case MaskWest, MaskEast, MaskWest | MaskEast:
		return GlyphHorizontal
	case MaskNorth | MaskWest:
		return GlyphCornerNW
	case MaskSouth | MaskWest:
		return GlyphCornerSW
	case MaskNorth | MaskEast:
		return GlyphCornerNE
	case MaskSouth | MaskEast:
		return GlyphCornerSE
	case MaskNorth | MaskSouth | MaskWest:
		if known(-1, 1) || known(-1, -1) {
			return GlyphVertical
		}
		return GlyphTeeWest
	case MaskNorth | MaskSouth | MaskEast:
		if known(1, 1) || known(1, -1) {
			return GlyphVertical
		}
		return GlyphTeeEast
	case MaskNorth | MaskWest | MaskEast:
		return pickSide(known(-1, -1), known(1, -1), GlyphCornerNE, GlyphCornerNW, GlyphTeeNorth)
	case MaskSouth | MaskWest | MaskEast:
		return pickSide(known(-1, 1), known(1, 1), GlyphCornerSE, GlyphCornerSW, GlyphTeeSouth)
	case MaskNorth | MaskSouth | MaskWest | MaskEast:
		return GlyphCross
	default:
		return GlyphGeneric
	}
}

// pickSide resolves a horizontal three-way mask from its two diagonals.
func pickSide(west, east bool, westOnly, eastOnly, neither rune) rune {
	switch {
	case west && east:
		return GlyphHorizontal
	case west:
		return westOnly
	case east:
		return eastOnly
	default:
		return neither
	}
}
