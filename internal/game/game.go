// Package game provides the frame loop that ties the map, the entities and the terminal together.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/agent2199/internal/entity"
	"github.com/samdwyer/agent2199/internal/gamedata"
	"github.com/samdwyer/agent2199/internal/telemetry"
	"github.com/samdwyer/agent2199/internal/ui"
	"github.com/samdwyer/agent2199/internal/world"
)

// Terminal presents frames and supplies key presses.
type Terminal interface {
	// Present blits the frame at the destination and flushes it.
	Present(f *ui.Frame, dst ui.Blit)
	// WaitKey blocks for one key press. It returns false once the terminal is closed.
	WaitKey() (ui.KeyEvent, bool)
	ToggleFullscreen()
	Close()
}

// Game holds the entire session state.
type Game struct {
	term     Terminal
	log      logrus.FieldLogger
	session  string
	grid     *world.Grid
	entities []*entity.Entity // entities[0] is the player
	palette  ui.Palette
	frame    *ui.Frame
	blit     ui.Blit
	running  bool
}

// New generates the level's map and places its entities. term may be nil
// when the game is only rendered to text.
func New(ctx context.Context, term Terminal, level gamedata.LevelDef, cfg Config, log logrus.FieldLogger) (*Game, error) {
	session := cfg.SessionID
	if session == "" {
		session = uuid.NewString()
	}
	log = log.WithField("session", session)

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()
	span.SetAttributes(telemetry.SessionID(session), attribute.String("level.name", level.Name))

	grid, err := world.Generate(ctx, level.Layout())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("generate level %q: %w", level.Name, err)
	}

	entities, err := level.NewEntities()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(entities) == 0 {
		err := fmt.Errorf("level %q has no player", level.Name)
		span.RecordError(err)
		return nil, err
	}
	for _, e := range entities {
		tile, err := grid.TileAt(e.X, e.Y)
		if err != nil {
			err = fmt.Errorf("place %s: %w", e.Name, err)
			span.RecordError(err)
			return nil, err
		}
		if tile.Blocked() {
			log.WithField("entity", e.Name).Warnf("Entity starts inside a wall at (%d,%d)", e.X, e.Y)
		}
	}

	palette, err := level.UIPalette()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	player := entities[0]
	span.SetAttributes(
		attribute.Int("entity.count", len(entities)),
		attribute.Int("player.start_x", player.X),
		attribute.Int("player.start_y", player.Y),
	)
	log.WithFields(logrus.Fields{
		"level":    level.Name,
		"width":    grid.Width(),
		"height":   grid.Height(),
		"rooms":    len(level.Rooms),
		"entities": len(entities),
	}).Info("Level generated")

	return &Game{
		term:     term,
		log:      log,
		session:  session,
		grid:     grid,
		entities: entities,
		palette:  palette,
		frame:    ui.NewFrame(grid.Width(), grid.Height()),
		blit:     ui.Blit{X: 0, Y: 0, Scale: cfg.Scale},
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or the terminal closes.
// The terminal is closed on return.
func (g *Game) Run(ctx context.Context) error {
	if g.term == nil {
		return errors.New("game has no terminal")
	}
	defer g.term.Close()

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()
	span.SetAttributes(telemetry.SessionID(g.session))

	turns := 0
	for g.running {
		if err := g.draw(); err != nil {
			span.RecordError(err)
			return err
		}

		// Blocking input
		ev, ok := g.term.WaitKey()
		if !ok {
			g.log.Info("Terminal closed")
			break
		}
		g.Apply(ctx, Translate(ev))
		turns++
	}

	span.SetAttributes(attribute.Int("game.turns", turns))
	g.log.WithField("turns", turns).Info("Game loop finished")
	return nil
}

// Apply performs one command. Only the player moves.
func (g *Game) Apply(ctx context.Context, cmd Command) {
	if cmd.Kind == CommandNone {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.command")
	defer span.End()
	span.SetAttributes(attribute.String("command", cmd.Kind.String()))

	switch cmd.Kind {
	case CommandMove:
		player := g.Player()
		moved, err := player.MoveBy(cmd.DX, cmd.DY, g.grid)
		if err != nil {
			span.RecordError(err)
			g.log.WithError(err).Warn("Move left the map")
		} else if !moved {
			g.log.WithFields(logrus.Fields{"dx": cmd.DX, "dy": cmd.DY}).Debug("Move blocked")
		}
		span.SetAttributes(
			attribute.Bool("moved", moved),
			attribute.Int("x", player.X),
			attribute.Int("y", player.Y),
		)

	case CommandToggleFullscreen:
		if g.term != nil {
			g.term.ToggleFullscreen()
		}
		g.log.Info("Fullscreen toggled")

	case CommandQuit:
		g.running = false
		g.log.Info("Quit requested")
	}
}

// draw clears the frame, composes the scene and hands it to the terminal.
func (g *Game) draw() error {
	if err := g.compose(); err != nil {
		return err
	}
	g.term.Present(g.frame, g.blit)
	return nil
}

func (g *Game) compose() error {
	g.frame.Clear()
	return ui.Compose(g.frame, g.grid, g.entities, g.palette)
}

// Snapshot composes the current scene and renders it as styled text.
func (g *Game) Snapshot(r *lipgloss.Renderer) (string, error) {
	if err := g.compose(); err != nil {
		return "", err
	}
	return ui.RenderText(r, g.frame, g.grid), nil
}

// Player returns the entity controlled by the keyboard.
func (g *Game) Player() *entity.Entity { return g.entities[0] }

// Entities returns all entities in draw order.
func (g *Game) Entities() []*entity.Entity { return g.entities }

// Grid returns the generated map.
func (g *Game) Grid() *world.Grid { return g.grid }

// SessionID returns the session's unique identifier.
func (g *Game) SessionID() string { return g.session }

// Running returns false once a quit command has been applied.
func (g *Game) Running() bool { return g.running }
