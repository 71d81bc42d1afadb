package world

import (
	"strings"
	"testing"

	"github.com/samdwyer/depths/internal/gamedata"
)

// allExplorable returns a fully explorable grid matching g.
func allExplorable(g *Geometry) *BoolGrid {
	e := NewBoolGrid(g.Width, g.Height)
	e.Fill(true)
	return e
}

// runes renders the light runes of a tile grid, one line per row.
func runes(t *TileGrid) string {
	var b strings.Builder
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			b.WriteRune(t.At(x, y).Light.Rune)
		}
		if y < t.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func TestResolveEnclosedFloorCell(t *testing.T) {
	cat := gamedata.MustLoadCatalog()
	raw := ParseGeometry(
		"#####",
		"#####",
		"##.##",
		"#####",
		"#####",
	)
	explorable := allExplorable(raw)

	wantMasks := [5][5]int{
		{10, 14, 14, 14, 6},
		{11, 15, 13, 15, 7},
		{11, 7, 0, 11, 7},
		{11, 15, 14, 15, 7},
		{9, 13, 13, 13, 5},
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x == 2 && y == 2 {
				continue
			}
			if got := WallMask(raw, explorable, x, y); got != wantMasks[y][x] {
				t.Errorf("WallMask(%d,%d) = %d, want %d", x, y, got, wantMasks[y][x])
			}
		}
	}

	want := strings.Join([]string{
		"╔═══╗",
		"║╬═╬║",
		"║║`║║",
		"║╬═╬║",
		"╚═══╝",
	}, "\n")
	tiles := Resolve(raw, explorable, cat)
	if got := runes(tiles); got != want {
		t.Errorf("Resolve:\n%s\nwant:\n%s", got, want)
	}
	if tiles.At(2, 2) != cat.Floor {
		t.Error("center floor cell should resolve to the floor tile")
	}
}

func TestWallRuneTable(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want rune
	}{
		{"isolated pillar", []string{"...", ".#.", "..."}, GlyphPillar},
		{"north only", []string{".#.", ".#.", "..."}, GlyphVertical},
		{"south only", []string{"...", ".#.", ".#."}, GlyphVertical},
		{"north and south", []string{".#.", ".#.", ".#."}, GlyphVertical},
		{"west only", []string{"...", "##.", "..."}, GlyphHorizontal},
		{"east only", []string{"...", ".##", "..."}, GlyphHorizontal},
		{"west and east", []string{"...", "###", "..."}, GlyphHorizontal},
		{"north west corner", []string{".#.", "##.", "..."}, GlyphCornerNW},
		{"south west corner", []string{"...", "##.", ".#."}, GlyphCornerSW},
		{"north east corner", []string{".#.", ".##", "..."}, GlyphCornerNE},
		{"south east corner", []string{"...", ".##", ".#."}, GlyphCornerSE},
		{"mask 7 junction", []string{".#.", "##.", ".#."}, GlyphTeeWest},
		{"mask 7 south west diagonal", []string{".#.", "##.", "##."}, GlyphVertical},
		{"mask 7 north west diagonal", []string{"##.", "##.", ".#."}, GlyphVertical},
		{"mask 7 both diagonals", []string{"##.", "##.", "##."}, GlyphVertical},
		{"mask 11 junction", []string{".#.", ".##", ".#."}, GlyphTeeEast},
		{"mask 11 north east diagonal", []string{".##", ".##", ".#."}, GlyphVertical},
		{"mask 11 south east diagonal", []string{".#.", ".##", ".##"}, GlyphVertical},
		{"mask 13 junction", []string{".#.", "###", "..."}, GlyphTeeNorth},
		{"mask 13 both diagonals", []string{"###", "###", "..."}, GlyphHorizontal},
		{"mask 13 north west only", []string{"##.", "###", "..."}, GlyphCornerNE},
		{"mask 13 north east only", []string{".##", "###", "..."}, GlyphCornerNW},
		{"mask 14 junction", []string{"...", "###", ".#."}, GlyphTeeSouth},
		{"mask 14 both diagonals", []string{"...", "###", "###"}, GlyphHorizontal},
		{"mask 14 south west only", []string{"...", "###", "##."}, GlyphCornerSE},
		{"mask 14 south east only", []string{"...", "###", ".##"}, GlyphCornerSW},
		{"cross", []string{".#.", "###", ".#."}, GlyphCross},
		{"cross ignores diagonals", []string{"###", "###", "###"}, GlyphCross},
	}

	cat := gamedata.MustLoadCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := ParseGeometry(tt.rows...)
			explorable := allExplorable(raw)

			if got := WallRune(raw, explorable, 1, 1); got != tt.want {
				t.Errorf("WallRune = %q, want %q (mask %d)", got, tt.want, WallMask(raw, explorable, 1, 1))
			}
			if got := Resolve(raw, explorable, cat).At(1, 1); got != cat.WallGlyph(tt.want) {
				t.Errorf("Resolve tile = %q, want %q", got.Light.Rune, tt.want)
			}
		})
	}
}

func TestUnexplorableWallIsNotANeighbour(t *testing.T) {
	raw := ParseGeometry(
		"###",
		"###",
		"###",
	)
	explorable := allExplorable(raw)
	explorable.Set(1, 0, false)

	if got := WallMask(raw, explorable, 1, 1); got != MaskSouth|MaskWest|MaskEast {
		t.Errorf("center mask = %d, want %d", got, MaskSouth|MaskWest|MaskEast)
	}
	// Its own neighbours still count for the hidden cell itself.
	if got := WallMask(raw, explorable, 1, 0); got != MaskSouth|MaskWest|MaskEast {
		t.Errorf("hidden cell mask = %d, want %d", got, MaskSouth|MaskWest|MaskEast)
	}
	// (0,0) and (2,0) lose their east/west neighbour.
	if got := WallMask(raw, explorable, 0, 0); got != MaskSouth {
		t.Errorf("(0,0) mask = %d, want %d", got, MaskSouth)
	}
	if got := WallMask(raw, explorable, 2, 0); got != MaskSouth {
		t.Errorf("(2,0) mask = %d, want %d", got, MaskSouth)
	}
}

func TestUnexplorableDiagonalIsIgnored(t *testing.T) {
	raw := ParseGeometry(
		"##.",
		"###",
		"...",
	)
	explorable := allExplorable(raw)
	if got := WallRune(raw, explorable, 1, 1); got != GlyphCornerNE {
		t.Fatalf("with the diagonal known: %q, want %q", got, GlyphCornerNE)
	}

	explorable.Set(0, 0, false)
	if got := WallRune(raw, explorable, 1, 1); got != GlyphTeeNorth {
		t.Errorf("with the diagonal hidden: %q, want %q", got, GlyphTeeNorth)
	}
}

func TestResolveNothingExplorable(t *testing.T) {
	cat := gamedata.MustLoadCatalog()
	raw := ParseGeometry(
		"####",
		"#..#",
		"####",
	)
	tiles := Resolve(raw, NewBoolGrid(raw.Width, raw.Height), cat)

	want := strings.Join([]string{
		"○○○○",
		"○``○",
		"○○○○",
	}, "\n")
	if got := runes(tiles); got != want {
		t.Errorf("Resolve:\n%s\nwant:\n%s", got, want)
	}
}

func TestResolveOffGridIsNotAWall(t *testing.T) {
	cat := gamedata.MustLoadCatalog()

	single := ParseGeometry("#")
	if got := WallRune(single, allExplorable(single), 0, 0); got != GlyphPillar {
		t.Errorf("1x1 wall = %q, want pillar", got)
	}

	row := ParseGeometry("###")
	if got := runes(Resolve(row, allExplorable(row), cat)); got != "═══" {
		t.Errorf("single row = %q, want ═══", got)
	}

	// Corners of a solid block: two in-grid neighbours, diagonals off-grid.
	block := ParseGeometry("##", "##")
	if got := runes(Resolve(block, allExplorable(block), cat)); got != "╔╗\n╚╝" {
		t.Errorf("2x2 block = %q", got)
	}
}

func TestResolveIsPure(t *testing.T) {
	cat := gamedata.MustLoadCatalog()
	raw := ParseGeometry(
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	explorable := allExplorable(raw)
	explorable.Set(2, 2, false)

	first := runes(Resolve(raw, explorable, cat))
	second := runes(Resolve(raw, explorable, cat))
	if first != second {
		t.Errorf("Resolve is not deterministic:\n%s\n%s", first, second)
	}
	if explorable.Get(2, 2) || explorable.Count() != 24 {
		t.Error("Resolve modified the explorable grid")
	}
	if raw.At(2, 2) != Wall || raw.At(1, 1) != Floor {
		t.Error("Resolve modified the geometry")
	}
}

func TestResolveIntoReusesGrid(t *testing.T) {
	cat := gamedata.MustLoadCatalog()
	raw := ParseGeometry("#.#")
	dst := NewTileGrid(3, 1, cat.Floor)

	ResolveInto(dst, raw, allExplorable(raw), cat)
	if dst.At(1, 0) != cat.Floor || dst.At(0, 0) != cat.WallGlyph(GlyphPillar) {
		t.Errorf("ResolveInto = %q", runes(dst))
	}
}
