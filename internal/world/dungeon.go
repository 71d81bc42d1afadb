package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/depths/internal/entity"
	"github.com/samdwyer/depths/internal/gamedata"
	"github.com/samdwyer/depths/internal/logger"
	"github.com/samdwyer/depths/internal/telemetry"
)

// Default floor settings.
const (
	DefaultWidth  = 80
	DefaultHeight = 43
)

// DefaultGenConfig returns the standard floor settings.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		MaxRooms:           30,
		RoomMinSize:        4,
		RoomMaxSize:        12,
		MaxMonstersPerRoom: 2,
		MaxItemsPerRoom:    2,
	}
}

// Validate checks that cfg can hold at least one room.
func (cfg GenConfig) Validate() error {
	var errs []error
	if cfg.RoomMinSize < 1 {
		errs = append(errs, fmt.Errorf("room_min_size %d must be at least 1", cfg.RoomMinSize))
	}
	if cfg.RoomMaxSize < cfg.RoomMinSize {
		errs = append(errs, fmt.Errorf("room_max_size %d is below room_min_size %d", cfg.RoomMaxSize, cfg.RoomMinSize))
	}
	if cfg.Width < cfg.RoomMinSize+4 || cfg.Height < cfg.RoomMinSize+4 {
		errs = append(errs, fmt.Errorf("map %dx%d is too small for rooms of size %d", cfg.Width, cfg.Height, cfg.RoomMinSize))
	}
	if cfg.MaxRooms < 1 {
		errs = append(errs, fmt.Errorf("max_rooms %d must be at least 1", cfg.MaxRooms))
	}
	if cfg.MaxMonstersPerRoom < 0 || cfg.MaxItemsPerRoom < 0 {
		errs = append(errs, errors.New("per-room densities must not be negative"))
	}
	return errors.Join(errs...)
}

// ErrNoRooms is returned when a floor ends up without any room.
var ErrNoRooms = errors.New("world: no rooms generated")

// BSPGenerator carves floors by binary space partitioning: the map is split
// recursively, each leaf gets a room and sibling subtrees are joined by
// corridors.
type BSPGenerator struct {
	catalog  *gamedata.Catalog
	monsters *gamedata.MonsterRegistry
	items    *gamedata.ItemRegistry
	rng      *rand.Rand
}

// NewBSPGenerator creates a generator. A nil rng seeds from the clock;
// nil registries leave floors unpopulated.
func NewBSPGenerator(catalog *gamedata.Catalog, monsters *gamedata.MonsterRegistry, items *gamedata.ItemRegistry, rng *rand.Rand) *BSPGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &BSPGenerator{catalog: catalog, monsters: monsters, items: items, rng: rng}
}

// Generate implements Generator.
func (g *BSPGenerator) Generate(ctx context.Context, cfg GenConfig, player *entity.Entity) (*GridMap, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.generate")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: invalid generation config: %w", err)
	}

	startTime := time.Now()
	b := &builder{
		m:   NewGridMap(cfg.Width, cfg.Height, g.catalog),
		cfg: cfg,
		rng: g.rng,
	}

	root := &bspNode{x: 1, y: 1, width: cfg.Width - 2, height: cfg.Height - 2}
	b.splitNode(root)
	b.createRooms(root)
	b.connectRooms(root)

	if len(b.rooms) == 0 {
		return nil, ErrNoRooms
	}

	if player != nil {
		player.Place(b.rooms[0].Center())
		b.m.AddEntity(player)
	}
	b.m.SetDownstairs(b.rooms[len(b.rooms)-1].Center())
	for _, room := range b.rooms {
		b.populate(room, g.monsters, g.items)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", cfg.Width),
		attribute.Int("dungeon.height", cfg.Height),
		attribute.Int("dungeon.room_count", len(b.rooms)),
		attribute.Int("dungeon.entity_count", b.m.Entities.Len()),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logger.For("dungeon").WithField("rooms", len(b.rooms)).Debug("floor generated")

	return b.m, nil
}

// builder carries the state of one Generate call.
type builder struct {
	m     *GridMap
	cfg   GenConfig
	rng   *rand.Rand
	rooms []Room
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// minLeaf is the smallest leaf that still fits a room and its walls.
func (b *builder) minLeaf() int {
	return b.cfg.RoomMinSize + 2
}

// splitNode recursively splits a BSP node.
func (b *builder) splitNode(node *bspNode) {
	minLeaf := b.minLeaf()

	var splitHorizontally bool
	switch {
	case node.width > node.height && node.width >= minLeaf*2:
		splitHorizontally = false
	case node.height >= minLeaf*2:
		splitHorizontally = true
	case node.width >= minLeaf*2:
		splitHorizontally = false
	default:
		return
	}

	// Leaves at or below the largest room size stop splitting half the time
	// so room sizes vary.
	if node.width <= b.cfg.RoomMaxSize+2 && node.height <= b.cfg.RoomMaxSize+2 && b.rng.Intn(2) == 0 {
		return
	}

	size := node.width
	if splitHorizontally {
		size = node.height
	}
	splitPos := minLeaf + b.rng.Intn(size-2*minLeaf+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	b.splitNode(node.left)
	b.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree, up to MaxRooms.
func (b *builder) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		b.createRooms(node.left)
		b.createRooms(node.right)
		return
	}
	if len(b.rooms) >= b.cfg.MaxRooms {
		return
	}

	maxW := min(b.cfg.RoomMaxSize, node.width-2)
	maxH := min(b.cfg.RoomMaxSize, node.height-2)
	if maxW < b.cfg.RoomMinSize || maxH < b.cfg.RoomMinSize {
		return
	}
	roomWidth := b.cfg.RoomMinSize + b.rng.Intn(maxW-b.cfg.RoomMinSize+1)
	roomHeight := b.cfg.RoomMinSize + b.rng.Intn(maxH-b.cfg.RoomMinSize+1)

	room := Room{
		X:      node.x + 1 + b.rng.Intn(node.width-roomWidth-1),
		Y:      node.y + 1 + b.rng.Intn(node.height-roomHeight-1),
		Width:  roomWidth,
		Height: roomHeight,
	}
	node.room = &room
	b.rooms = append(b.rooms, room)
	b.carveRoom(room)
}

// carveRoom sets all tiles within the room to floor.
func (b *builder) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			b.carve(x, y)
		}
	}
}

// carve opens (x, y) unless it lies on the outer border.
func (b *builder) carve(x, y int) {
	if x > 0 && x < b.cfg.Width-1 && y > 0 && y < b.cfg.Height-1 {
		b.m.Raw.Set(x, y, Floor)
	}
}

// connectRooms connects rooms with corridors.
func (b *builder) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	b.connectRooms(node.left)
	b.connectRooms(node.right)

	leftRoom := getRoom(node.left)
	rightRoom := getRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		b.carveCorridor(*leftRoom, *rightRoom)
	}
}

// getRoom returns a room from a subtree (any room will do).
func getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := getRoom(node.left); room != nil {
		return room
	}
	return getRoom(node.right)
}

// carveCorridor creates an L-shaped corridor between two room centres.
func (b *builder) carveCorridor(room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	if b.rng.Intn(2) == 0 {
		b.carveHorizontalTunnel(x1, x2, y1)
		b.carveVerticalTunnel(y1, y2, x2)
	} else {
		b.carveVerticalTunnel(y1, y2, x1)
		b.carveHorizontalTunnel(x1, x2, y2)
	}
}

func (b *builder) carveHorizontalTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.carve(x, y)
	}
}

func (b *builder) carveVerticalTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.carve(x, y)
	}
}

// populate drops up to the configured number of monsters and items in room,
// skipping cells already taken. Monsters never stand on the downstairs.
func (b *builder) populate(room Room, monsters *gamedata.MonsterRegistry, items *gamedata.ItemRegistry) {
	if monsters != nil {
		for range b.rng.Intn(b.cfg.MaxMonstersPerRoom + 1) {
			x, y := b.randomPointInRoom(room)
			if b.m.IsDownstairs(x, y) || b.m.BlockingEntityAt(x, y) != nil {
				continue
			}
			if def := monsters.SpawnRandom(b.rng); def != nil {
				b.m.AddEntity(entity.NewMonster(def, x, y))
			}
		}
	}
	if items != nil {
		for range b.rng.Intn(b.cfg.MaxItemsPerRoom + 1) {
			x, y := b.randomPointInRoom(room)
			if b.m.BlockingEntityAt(x, y) != nil || b.itemAt(x, y) {
				continue
			}
			if def := items.SpawnRandom(b.rng); def != nil {
				b.m.AddEntity(entity.NewItem(def, x, y))
			}
		}
	}
}

func (b *builder) itemAt(x, y int) bool {
	for e := range b.m.Items() {
		if e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

func (b *builder) randomPointInRoom(room Room) (int, int) {
	return room.X + b.rng.Intn(room.Width), room.Y + b.rng.Intn(room.Height)
}
