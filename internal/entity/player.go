package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/depths/internal/gamedata"
)

// Player defaults.
const (
	PlayerSymbol = '@'
	PlayerHP     = 30
)

// NewPlayer creates the player entity. Its position is assigned by the
// generator of each floor.
func NewPlayer() *Entity {
	return &Entity{
		ID:             uuid.New(),
		Name:           "Player",
		Glyph:          PlayerSymbol,
		Color:          gamedata.RGB{R: 255, G: 255, B: 255},
		Order:          RenderActor,
		BlocksMovement: true,
		actor:          &Actor{HP: PlayerHP, MaxHP: PlayerHP, Power: 5, Defense: 2},
	}
}
