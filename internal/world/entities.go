package world

import (
	"iter"
	"slices"

	"github.com/google/uuid"

	"github.com/samdwyer/depths/internal/entity"
)

// EntityIndex is the set of entities on a floor, unique by ID.
//
// Iteration order is insertion order. Every query that returns "the first
// match" returns the earliest-added one, so two blocking entities on the
// same cell resolve to the one placed first.
type EntityIndex struct {
	order []*entity.Entity
	byID  map[uuid.UUID]int
}

// NewEntityIndex creates an index holding the given entities.
func NewEntityIndex(entities ...*entity.Entity) *EntityIndex {
	idx := &EntityIndex{byID: make(map[uuid.UUID]int)}
	for _, e := range entities {
		idx.Add(e)
	}
	return idx
}

// Add inserts e. Adding an entity already present does nothing.
func (idx *EntityIndex) Add(e *entity.Entity) {
	if _, ok := idx.byID[e.ID]; ok {
		return
	}
	idx.byID[e.ID] = len(idx.order)
	idx.order = append(idx.order, e)
}

// Remove deletes e and reports whether it was present.
func (idx *EntityIndex) Remove(e *entity.Entity) bool {
	i, ok := idx.byID[e.ID]
	if !ok {
		return false
	}
	idx.order = slices.Delete(idx.order, i, i+1)
	delete(idx.byID, e.ID)
	for j := i; j < len(idx.order); j++ {
		idx.byID[idx.order[j].ID] = j
	}
	return true
}

// Contains reports whether e is in the index.
func (idx *EntityIndex) Contains(e *entity.Entity) bool {
	_, ok := idx.byID[e.ID]
	return ok
}

// Len returns the number of entities.
func (idx *EntityIndex) Len() int {
	return len(idx.order)
}

// All yields every entity in insertion order. The sequence must not be
// resumed after the index is modified; start a new query instead.
func (idx *EntityIndex) All() iter.Seq[*entity.Entity] {
	return func(yield func(*entity.Entity) bool) {
		for _, e := range idx.order {
			if !yield(e) {
				return
			}
		}
	}
}

// filter yields the entities for which keep returns true.
func (idx *EntityIndex) filter(keep func(*entity.Entity) bool) iter.Seq[*entity.Entity] {
	return func(yield func(*entity.Entity) bool) {
		for _, e := range idx.order {
			if keep(e) && !yield(e) {
				return
			}
		}
	}
}

// LivingActors yields the entities with a living actor part.
func (idx *EntityIndex) LivingActors() iter.Seq[*entity.Entity] {
	return idx.filter((*entity.Entity).IsLivingActor)
}

// Items yields the entities with an item part.
func (idx *EntityIndex) Items() iter.Seq[*entity.Entity] {
	return idx.filter(func(e *entity.Entity) bool {
		_, ok := e.AsItem()
		return ok
	})
}

// BlockingAt returns the first blocking entity at (x, y), or nil.
func (idx *EntityIndex) BlockingAt(x, y int) *entity.Entity {
	for _, e := range idx.order {
		if e.BlocksMovement && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// ActorAt returns the first living actor at (x, y), or nil.
func (idx *EntityIndex) ActorAt(x, y int) *entity.Entity {
	for e := range idx.LivingActors() {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// DrawOrder returns the entities sorted by ascending render order. Entities
// with equal order keep insertion order, so later ones are drawn on top.
func (idx *EntityIndex) DrawOrder() []*entity.Entity {
	sorted := slices.Clone(idx.order)
	slices.SortStableFunc(sorted, func(a, b *entity.Entity) int {
		return int(a.Order) - int(b.Order)
	})
	return sorted
}
