package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Tile ids every catalog must define.
const (
	TileFloor      = "floor"
	TileWall       = "wall"
	TileDownStairs = "down_stairs"
)

// Glyph is one drawable cell: a codepoint with foreground and background.
type Glyph struct {
	Rune rune
	FG   RGB
	BG   RGB
}

// TileDef is an immutable tile definition. Tiles are shared by pointer.
type TileDef struct {
	ID          string
	Walkable    bool // True if this tile can be walked over.
	Transparent bool // True if this tile doesn't block FOV.
	Dark        Glyph
	Light       Glyph
}

// GlyphDef is the JSON form of a Glyph.
type GlyphDef struct {
	Glyph string `json:"glyph"`
	FG    string `json:"fg"`
	BG    string `json:"bg"`
}

// TileJSON is the JSON form of a TileDef.
type TileJSON struct {
	ID          string   `json:"id"`
	Walkable    bool     `json:"walkable"`
	Transparent bool     `json:"transparent"`
	Dark        GlyphDef `json:"dark"`
	Light       GlyphDef `json:"light"`
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Shroud     GlyphDef   `json:"shroud"`
	WallGlyphs string     `json:"wallGlyphs"`
	Tiles      []TileJSON `json:"tiles"`
}

// Catalog is the registry of tile definitions for a game.
// It is never mutated after NewCatalog returns.
type Catalog struct {
	Floor      *TileDef
	Wall       *TileDef
	DownStairs *TileDef
	Shroud     Glyph

	byID  map[string]*TileDef
	walls map[rune]*TileDef
}

// NewCatalog builds a catalog from decoded tile data. A wall variant is
// created for every rune in WallGlyphs, carrying the wall's colors.
func NewCatalog(file TilesFile) (*Catalog, error) {
	shroud, err := file.Shroud.toGlyph()
	if err != nil {
		return nil, fmt.Errorf("shroud: %w", err)
	}

	c := &Catalog{
		Shroud: shroud,
		byID:   make(map[string]*TileDef, len(file.Tiles)),
		walls:  make(map[rune]*TileDef),
	}
	for _, tj := range file.Tiles {
		if _, dup := c.byID[tj.ID]; dup {
			return nil, fmt.Errorf("duplicate tile id %q", tj.ID)
		}
		def, err := tj.toDef()
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", tj.ID, err)
		}
		c.byID[tj.ID] = def
	}

	var errs []error
	for _, id := range []string{TileFloor, TileWall, TileDownStairs} {
		if c.byID[id] == nil {
			errs = append(errs, fmt.Errorf("missing required tile %q", id))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	c.Floor = c.byID[TileFloor]
	c.Wall = c.byID[TileWall]
	c.DownStairs = c.byID[TileDownStairs]

	c.walls[c.Wall.Dark.Rune] = c.Wall
	for _, r := range file.WallGlyphs {
		if _, ok := c.walls[r]; ok {
			continue
		}
		w := *c.Wall
		w.Dark.Rune = r
		w.Light.Rune = r
		c.walls[r] = &w
	}
	return c, nil
}

// LoadCatalog loads the catalog from the embedded tiles.json.
func LoadCatalog() (*Catalog, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return NewCatalog(file)
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// WallGlyph returns the wall variant drawn with r. Runes that were not
// declared in wallGlyphs get the generic wall.
func (c *Catalog) WallGlyph(r rune) *TileDef {
	if w, ok := c.walls[r]; ok {
		return w
	}
	return c.Wall
}

// GetByID returns the tile with the given id, or nil if not found.
func (c *Catalog) GetByID(id string) *TileDef {
	return c.byID[id]
}

func (g GlyphDef) toGlyph() (Glyph, error) {
	r, size := utf8.DecodeRuneInString(g.Glyph)
	if size == 0 || r == utf8.RuneError {
		return Glyph{}, fmt.Errorf("invalid glyph %q", g.Glyph)
	}
	fg, err := ParseHexColor(g.FG)
	if err != nil {
		return Glyph{}, err
	}
	bg, err := ParseHexColor(g.BG)
	if err != nil {
		return Glyph{}, err
	}
	return Glyph{Rune: r, FG: fg, BG: bg}, nil
}

func (t TileJSON) toDef() (*TileDef, error) {
	dark, err := t.Dark.toGlyph()
	if err != nil {
		return nil, fmt.Errorf("dark: %w", err)
	}
	light, err := t.Light.toGlyph()
	if err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	return &TileDef{
		ID:          t.ID,
		Walkable:    t.Walkable,
		Transparent: t.Transparent,
		Dark:        dark,
		Light:       light,
	}, nil
}
