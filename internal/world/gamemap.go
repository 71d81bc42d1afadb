package world

import (
	"iter"

	"github.com/samdwyer/depths/internal/entity"
	"github.com/samdwyer/depths/internal/gamedata"
)

// GridMap is one dungeon floor. It owns the raw geometry, the resolved
// tiles, the visibility layers and the entities; all grids share Width and
// Height.
type GridMap struct {
	Width, Height int
	Raw           *Geometry
	Tiles         *TileGrid
	Vis           *Visibility
	Entities      *EntityIndex

	catalog      *gamedata.Catalog
	downX, downY int
	hasDown      bool
}

// NewGridMap creates a floor of solid wall with empty visibility and no
// entities.
func NewGridMap(width, height int, catalog *gamedata.Catalog) *GridMap {
	return &GridMap{
		Width:    width,
		Height:   height,
		Raw:      NewGeometry(width, height),
		Tiles:    NewTileGrid(width, height, catalog.Wall),
		Vis:      NewVisibility(width, height),
		Entities: NewEntityIndex(),
		catalog:  catalog,
	}
}

// NewGridMapFrom creates a floor around existing geometry.
func NewGridMapFrom(raw *Geometry, catalog *gamedata.Catalog) *GridMap {
	m := NewGridMap(raw.Width, raw.Height, catalog)
	m.Raw = raw
	return m
}

// Catalog returns the tile catalog the floor draws from.
func (m *GridMap) Catalog() *gamedata.Catalog {
	return m.catalog
}

// InBounds reports whether (x, y) is inside the map.
func (m *GridMap) InBounds(x, y int) bool {
	return 0 <= x && x < m.Width && 0 <= y && y < m.Height
}

// SetDownstairs marks (x, y) as the way to the next floor. The cell is
// carved to floor if it is not already.
func (m *GridMap) SetDownstairs(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	m.Raw.Set(x, y, Floor)
	m.downX, m.downY, m.hasDown = x, y, true
}

// Downstairs returns the stairs location and whether one was set.
func (m *GridMap) Downstairs() (x, y int, ok bool) {
	return m.downX, m.downY, m.hasDown
}

// IsDownstairs reports whether (x, y) holds the stairs.
func (m *GridMap) IsDownstairs(x, y int) bool {
	return m.hasDown && x == m.downX && y == m.downY
}

// baseTile is the unresolved definition of a cell; every wall variant
// shares the plain wall's walkable and transparent flags.
func (m *GridMap) baseTile(x, y int) *gamedata.TileDef {
	switch {
	case m.IsDownstairs(x, y):
		return m.catalog.DownStairs
	case m.Raw.At(x, y) == Floor:
		return m.catalog.Floor
	default:
		return m.catalog.Wall
	}
}

// IsWalkable reports whether (x, y) is in bounds and can be walked on.
func (m *GridMap) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.baseTile(x, y).Walkable
}

// IsTransparent reports whether (x, y) is in bounds and lets light through.
func (m *GridMap) IsTransparent(x, y int) bool {
	return m.InBounds(x, y) && m.baseTile(x, y).Transparent
}

// AddEntity places e on this floor.
func (m *GridMap) AddEntity(e *entity.Entity) {
	m.Entities.Add(e)
}

// RemoveEntity takes e off this floor and reports whether it was present.
func (m *GridMap) RemoveEntity(e *entity.Entity) bool {
	return m.Entities.Remove(e)
}

// BlockingEntityAt returns the first blocking entity at (x, y), or nil.
func (m *GridMap) BlockingEntityAt(x, y int) *entity.Entity {
	return m.Entities.BlockingAt(x, y)
}

// ActorAt returns the first living actor at (x, y), or nil.
func (m *GridMap) ActorAt(x, y int) *entity.Entity {
	return m.Entities.ActorAt(x, y)
}

// LivingActors yields the living actors on this floor.
func (m *GridMap) LivingActors() iter.Seq[*entity.Entity] {
	return m.Entities.LivingActors()
}

// Items yields the items lying on this floor.
func (m *GridMap) Items() iter.Seq[*entity.Entity] {
	return m.Entities.Items()
}

// Refresh re-resolves the tile grid from the raw geometry and the
// explorable layer, then lays the stairs over their floor cell.
func (m *GridMap) Refresh() {
	ResolveInto(m.Tiles, m.Raw, m.Vis.Explorable, m.catalog)
	if m.hasDown {
		m.Tiles.Set(m.downX, m.downY, m.catalog.DownStairs)
	}
}

// Frame refreshes the tiles and returns the composed background, without
// entities.
func (m *GridMap) Frame() *Frame {
	m.Refresh()
	return m.Vis.Compose(m.Tiles, m.catalog.Shroud)
}

// Render draws the floor into s: the composed background first, then every
// entity standing on a visible cell in ascending render order.
func (m *GridMap) Render(s Surface) {
	m.Frame().Blit(s)

	for _, e := range m.Entities.DrawOrder() {
		if m.Vis.Visible.Get(e.X, e.Y) {
			s.Stamp(e.X, e.Y, e.Glyph, e.Color)
		}
	}
}
