package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/depths/internal/gamedata"
)

// NewMonster creates a living, blocking monster from a data-driven definition.
func NewMonster(def *gamedata.MonsterDef, x, y int) *Entity {
	return &Entity{
		ID:             uuid.New(),
		Name:           def.Name,
		X:              x,
		Y:              y,
		Glyph:          def.GlyphRune(),
		Color:          def.RGB(),
		Order:          RenderActor,
		BlocksMovement: true,
		actor:          &Actor{HP: def.HP, MaxHP: def.HP, Power: def.Power, Defense: def.Defense},
	}
}

// NewItem creates a non-blocking item lying on the floor.
func NewItem(def *gamedata.ItemDef, x, y int) *Entity {
	return &Entity{
		ID:    uuid.New(),
		Name:  def.Name,
		X:     x,
		Y:     y,
		Glyph: def.GlyphRune(),
		Color: def.RGB(),
		Order: RenderItem,
		item:  &Item{Kind: def.ID},
	}
}
