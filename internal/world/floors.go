package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/depths/internal/entity"
	"github.com/samdwyer/depths/internal/logger"
	"github.com/samdwyer/depths/internal/telemetry"
)

// GenConfig holds the generation settings of every floor.
type GenConfig struct {
	Width              int `yaml:"width"`
	Height             int `yaml:"height"`
	MaxRooms           int `yaml:"max_rooms"`
	RoomMinSize        int `yaml:"room_min_size"`
	RoomMaxSize        int `yaml:"room_max_size"`
	MaxMonstersPerRoom int `yaml:"max_monsters_per_room"`
	MaxItemsPerRoom    int `yaml:"max_items_per_room"`
}

// Generator builds a fully populated floor: geometry carved, the player and
// other entities placed, downstairs set, visibility all false.
type Generator interface {
	Generate(ctx context.Context, cfg GenConfig, player *entity.Entity) (*GridMap, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, cfg GenConfig, player *entity.Entity) (*GridMap, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, cfg GenConfig, player *entity.Entity) (*GridMap, error) {
	return f(ctx, cfg, player)
}

// FloorSequencer tracks the current floor number and swaps in a freshly
// generated map on every descent. Only the player survives a descent.
type FloorSequencer struct {
	cfg     GenConfig
	gen     Generator
	player  *entity.Entity
	current int
	active  *GridMap
}

// NewFloorSequencer creates a sequencer at floor 0 with no active map.
func NewFloorSequencer(cfg GenConfig, gen Generator, player *entity.Entity) *FloorSequencer {
	return &FloorSequencer{cfg: cfg, gen: gen, player: player}
}

// CurrentFloor returns the number of descents so far.
func (s *FloorSequencer) CurrentFloor() int {
	return s.current
}

// Map returns the active floor, or nil before the first descent.
func (s *FloorSequencer) Map() *GridMap {
	return s.active
}

// Config returns the generation settings.
func (s *FloorSequencer) Config() GenConfig {
	return s.cfg
}

// Player returns the entity carried between floors.
func (s *FloorSequencer) Player() *entity.Entity {
	return s.player
}

// Descend moves to the next floor. The floor counter is advanced before the
// generator runs and is not rolled back: a generator error is returned as
// is, and the previous map stays active with its entities untouched.
func (s *FloorSequencer) Descend(ctx context.Context) error {
	ctx, span := telemetry.Tracer("world").Start(ctx, "floors.descend")
	defer span.End()

	s.current++
	span.SetAttributes(attribute.Int("floor.number", s.current))
	log := logger.For("floors").WithField("floor", s.current)

	next, err := s.gen.Generate(ctx, s.cfg, s.player)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).Error("floor generation failed")
		return err
	}

	if s.active != nil {
		s.active.RemoveEntity(s.player)
	}
	next.AddEntity(s.player)
	s.active = next
	log.WithField("entities", next.Entities.Len()).Info("descended")
	return nil
}
