package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/depths/internal/entity"
	"github.com/samdwyer/depths/internal/gamedata"
	"github.com/samdwyer/depths/internal/logger"
	"github.com/samdwyer/depths/internal/telemetry"
	"github.com/samdwyer/depths/internal/ui"
	"github.com/samdwyer/depths/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	floors   *world.FloorSequencer
	player   *entity.Entity
	state    State
	message  string
}

// New creates a game on the terminal.
func New(cfg Config) (*Game, error) {
	g, err := newGame(cfg)
	if err != nil {
		return nil, err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	return g, nil
}

// newGame wires the floor sequencer without touching the terminal.
func newGame(cfg Config) (*Game, error) {
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, err
	}
	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, err
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.For("game").WithField("seed", seed).Info("new game")

	player := entity.NewPlayer()
	gen := world.NewBSPGenerator(catalog, monsters, items, rand.New(rand.NewSource(seed)))
	return &Game{
		cfg:    cfg,
		floors: world.NewFloorSequencer(cfg.Map, gen, player),
		player: player,
		state:  StatePlaying,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	if err := g.start(ctx); err != nil {
		return err
	}

	for g.state == StatePlaying {
		g.draw()

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			g.handleKeyEvent(ctx, ev)
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
	return nil
}

// draw renders the floor and status line, or a notice when the terminal
// cannot hold them.
func (g *Game) draw() {
	m := g.floors.Map()
	if !g.screen.Fits(m.Width, m.Height+1) {
		g.renderer.RenderNotice(fmt.Sprintf("Terminal too small: need %dx%d.", m.Width, m.Height+1))
		return
	}
	g.renderer.Render(m, g.Status())
}

// start generates the first floor.
func (g *Game) start(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	if err := g.floors.Descend(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("game: generate first floor: %w", err)
	}
	g.updateFOV()
	g.message = "You enter the depths."

	span.SetAttributes(
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.state = StateQuit

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.state = StateQuit
		case 'k':
			g.tryMove(0, -1)
		case 'j':
			g.tryMove(0, 1)
		case 'h':
			g.tryMove(-1, 0)
		case 'l':
			g.tryMove(1, 0)
		case 'y':
			g.tryMove(-1, -1)
		case 'u':
			g.tryMove(1, -1)
		case 'b':
			g.tryMove(-1, 1)
		case 'n':
			g.tryMove(1, 1)
		case '>':
			g.tryDescend(ctx)
		}
	}
}

// tryMove attempts to move the player by the given delta.
func (g *Game) tryMove(dx, dy int) {
	m := g.floors.Map()
	x, y := g.player.X+dx, g.player.Y+dy

	if !m.IsWalkable(x, y) {
		return
	}
	if blocker := m.BlockingEntityAt(x, y); blocker != nil {
		g.message = fmt.Sprintf("The %s is in the way.", blocker.Name)
		return
	}

	g.player.Move(dx, dy)
	g.message = ""
	for item := range m.Items() {
		if item.X == x && item.Y == y {
			g.message = fmt.Sprintf("You see a %s here.", item.Name)
			break
		}
	}
	g.updateFOV()
}

// tryDescend takes the stairs when the player stands on them.
func (g *Game) tryDescend(ctx context.Context) {
	if !g.floors.Map().IsDownstairs(g.player.X, g.player.Y) {
		g.message = "There are no stairs here."
		return
	}
	if err := g.floors.Descend(ctx); err != nil {
		g.message = "The stairs are blocked."
		return
	}
	g.updateFOV()
	g.message = "You descend the staircase."
}

func (g *Game) updateFOV() {
	world.ComputeFOV(g.floors.Map(), g.player.X, g.player.Y, g.cfg.FOVRadius)
}

// Status returns the line shown under the map.
func (g *Game) Status() string {
	a, _ := g.player.AsActor()
	status := fmt.Sprintf("Floor %d  HP %d/%d", g.floors.CurrentFloor(), a.HP, a.MaxHP)
	if g.message != "" {
		status += "  " + g.message
	}
	return status
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
