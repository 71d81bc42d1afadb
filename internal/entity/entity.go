// Package entity provides the things that occupy a dungeon floor: the
// player, monsters, items and corpses.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/depths/internal/gamedata"
)

// RenderOrder decides draw order among entities sharing a cell.
// Lower values are drawn first and end up underneath.
type RenderOrder int

const (
	RenderCorpse RenderOrder = iota
	RenderItem
	RenderActor
)

// String returns a human-readable render order name.
func (o RenderOrder) String() string {
	switch o {
	case RenderCorpse:
		return "corpse"
	case RenderItem:
		return "item"
	case RenderActor:
		return "actor"
	default:
		return "unknown"
	}
}

// Entity is anything placed on the grid. Capabilities are optional parts:
// an entity with an Actor part can act and die, one with an Item part can
// be picked up.
type Entity struct {
	ID             uuid.UUID
	Name           string
	X, Y           int
	Glyph          rune
	Color          gamedata.RGB
	Order          RenderOrder
	BlocksMovement bool

	actor *Actor
	item  *Item
}

// Actor holds the state of an entity that takes turns.
type Actor struct {
	HP, MaxHP int
	Power     int
	Defense   int
}

// Alive reports whether the actor still has hit points.
func (a *Actor) Alive() bool {
	return a.HP > 0
}

// Item holds the state of an entity that can be picked up.
type Item struct {
	Kind string // item definition id, e.g. "health_potion"
}

// AsActor returns the actor part, if any.
func (e *Entity) AsActor() (*Actor, bool) {
	return e.actor, e.actor != nil
}

// AsItem returns the item part, if any.
func (e *Entity) AsItem() (*Item, bool) {
	return e.item, e.item != nil
}

// IsLivingActor reports whether e has an actor part that is alive.
func (e *Entity) IsLivingActor() bool {
	return e.actor != nil && e.actor.Alive()
}

// Position returns the current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}

// Place moves the entity to an absolute position.
func (e *Entity) Place(x, y int) {
	e.X, e.Y = x, y
}

// Move updates the entity position by the given delta.
func (e *Entity) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Kill turns an actor into a corpse that no longer blocks movement.
// It is a no-op for entities without an actor part.
func (e *Entity) Kill() {
	if e.actor == nil {
		return
	}
	e.actor.HP = 0
	e.Name = "remains of " + e.Name
	e.Glyph = '%'
	e.Color = gamedata.RGB{R: 191}
	e.Order = RenderCorpse
	e.BlocksMovement = false
}
