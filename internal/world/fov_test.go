package world

import (
	"testing"

	"github.com/samdwyer/depths/internal/gamedata"
)

func TestFOVOriginAlwaysVisible(t *testing.T) {
	m := openMap(t, 20, 20)
	ComputeFOV(m, 5, 5, 5)

	if !m.Vis.Visible.Get(5, 5) || !m.Vis.Explored.Get(5, 5) || !m.Vis.Explorable.Get(5, 5) {
		t.Error("origin must be visible, explored and explorable")
	}
}

func TestFOVZeroRadiusLightsOnlyOrigin(t *testing.T) {
	m := openMap(t, 10, 10)
	ComputeFOV(m, 4, 4, 0)

	if m.Vis.Visible.Count() != 1 {
		t.Errorf("visible cells = %d, want 1", m.Vis.Visible.Count())
	}
}

func TestFOVNearbyTilesVisible(t *testing.T) {
	// dx²+dy² < radius² → 9 < 25
	m := openMap(t, 20, 20)
	ComputeFOV(m, 10, 10, 5)

	for _, pos := range [][2]int{{10, 7}, {10, 13}, {7, 10}, {13, 10}} {
		if !m.Vis.Visible.Get(pos[0], pos[1]) {
			t.Errorf("tile (%d,%d) at distance 3 should be visible (radius=5)", pos[0], pos[1])
		}
	}
	for _, pos := range [][2]int{{10, 15}, {10, 5}, {15, 10}, {5, 10}} {
		if m.Vis.Visible.Get(pos[0], pos[1]) {
			t.Errorf("tile (%d,%d) at distance 5 should not be visible (radius=5)", pos[0], pos[1])
		}
	}
}

func TestFOVWallBlocksLight(t *testing.T) {
	m := openMap(t, 20, 20)
	m.Raw.Set(10, 8, Wall)
	ComputeFOV(m, 10, 10, 8)

	if !m.Vis.Visible.Get(10, 8) {
		t.Error("the wall tile at (10,8) should be visible")
	}
	if m.Vis.Visible.Get(10, 7) {
		t.Error("tile (10,7) behind the wall at (10,8) should not be visible")
	}
}

func TestFOVExploredPersistsAfterMoving(t *testing.T) {
	m := openMap(t, 30, 10)
	ComputeFOV(m, 3, 5, 3)
	if !m.Vis.Visible.Get(3, 5) {
		t.Fatal("start should be visible")
	}

	ComputeFOV(m, 25, 5, 3)
	if m.Vis.Visible.Get(3, 5) {
		t.Error("old position should no longer be visible")
	}
	if !m.Vis.Explored.Get(3, 5) || !m.Vis.Explorable.Get(3, 5) {
		t.Error("old position should stay explored and explorable")
	}
	if !m.Vis.Visible.Get(25, 5) {
		t.Error("new position should be visible")
	}
}

func TestFOVOutOfBoundsOriginClearsVisible(t *testing.T) {
	m := openMap(t, 10, 10)
	ComputeFOV(m, 5, 5, 4)
	ComputeFOV(m, -1, -1, 4)

	if m.Vis.Visible.Count() != 0 {
		t.Error("an off-map origin sees nothing")
	}
	if m.Vis.Explored.Count() == 0 {
		t.Error("explored must survive")
	}
}

func TestFOVGatesAutotiling(t *testing.T) {
	// A corridor along y=2; only its west end has been seen.
	m := NewGridMapFrom(ParseGeometry(
		"##########",
		"##########",
		"#........#",
		"##########",
		"##########",
	), gamedata.MustLoadCatalog())
	ComputeFOV(m, 1, 2, 3)
	m.Refresh()

	if got := m.Tiles.At(2, 1).Light.Rune; got == GlyphPillar {
		t.Errorf("seen corridor wall = %q, want a connected wall", got)
	}
	if got := m.Tiles.At(8, 1).Light.Rune; got != GlyphPillar {
		t.Errorf("unseen corridor wall = %q, want pillar", got)
	}
}

func TestFOVSymmetricInOpenRoom(t *testing.T) {
	m := openMap(t, 21, 21)
	ComputeFOV(m, 10, 10, 6)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := m.Vis.Visible.Get(x, y)
			mx, my := 20-x, 20-y
			if v != m.Vis.Visible.Get(mx, y) || v != m.Vis.Visible.Get(x, my) || v != m.Vis.Visible.Get(y, x) {
				t.Fatalf("visibility of (%d,%d) is not mirrored across every octant", x, y)
			}
		}
	}
	if m.Vis.Visible.Get(10, 4) || !m.Vis.Visible.Get(10, 5) {
		t.Error("radius 6 should light distance 5 but not distance 6")
	}
}
