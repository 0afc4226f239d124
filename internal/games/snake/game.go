// Package snake implements the logic core of a grid snake on a wrap-around
// field: discrete grid state, an eased head per step, self-collision, eating,
// apple spawning and seam clipping. Rendering, input capture and scorekeeping
// are collaborators reached through Renderer, Direction values and Events.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wrapsnake/internal/config"
	"github.com/vovakirdan/wrapsnake/internal/core"
)

// InitialHeading is the direction a fresh snake travels.
const InitialHeading = core.DirLeft

// ErrNoRenderer is returned by New when no renderer is supplied.
var ErrNoRenderer = errors.New("snake: renderer is required")

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source used for animation. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithSeed seeds apple placement. Defaults to the current time.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithLogger sets the logger for game events. Defaults to discarding logs.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithEvents sets the scoring notifications.
func WithEvents(events Events) Option {
	return func(g *Game) { g.events = events }
}

// GameState is a read-only view of the game for hosts.
type GameState struct {
	Score    uint
	Paused   bool
	GameOver bool // Set when a collision reset the game, cleared on resume
	Heading  core.Direction
	Apple    core.Vec2
	HasApple bool
	Segments []core.Vec2
}

// Game ties the snake, spawner, input queue and renderer together and runs
// once per host tick. It is not safe for concurrent use; the host delivers
// ticks and input from a single goroutine.
type Game struct {
	cfg      config.SnakeConfig
	field    Field
	collider core.Collider
	renderer Renderer
	events   Events
	logger   *log.Logger
	now      func() time.Time
	seed     int64

	snake    *Snake
	spawner  *Spawner
	input    InputQueue
	frame    *Frame
	apple    core.Vec2
	hasApple bool
	paused   bool
	gameOver bool
	tick     uint64
}

// New validates cfg and creates a paused game ready for its first tick.
func New(cfg config.SnakeConfig, renderer Renderer, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		return nil, ErrNoRenderer
	}

	g := &Game{
		cfg:      cfg,
		renderer: renderer,
		now:      time.Now,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	g.field = Field{
		Width:  cfg.Field.Width,
		Height: cfg.Field.Height,
		CellW:  cfg.CellWidth(),
		CellH:  cfg.CellHeight(),
	}
	g.collider = core.Collider{
		CellW:  g.field.CellW,
		CellH:  g.field.CellH,
		Margin: cfg.Collision.Margin,
	}
	g.spawner = NewSpawner(g.field, g.collider, rand.New(rand.NewSource(g.seed)))
	g.frame = NewFrame(g.field)
	g.reset()

	g.logger.Debug("game created",
		"field", fmt.Sprintf("%vx%v", g.field.Width, g.field.Height),
		"grid", fmt.Sprintf("%dx%d", g.field.Cols(), g.field.Rows()),
		"seed", g.seed,
	)
	return g, nil
}

// reset starts a fresh round: a centred snake heading left, no animation,
// Left queued and the game paused.
func (g *Game) reset() {
	g.snake = NewSnake(
		g.field,
		g.collider,
		g.cfg.Collision.NeckSegments,
		g.cfg.AnimationDuration(),
		g.cfg.Snake.RenderQuantum,
		g.field.Center(),
		InitialHeading,
		g.cfg.Snake.StartLength,
	)
	g.input.Reset(InitialHeading)
	g.hasApple = false
	g.paused = true
}

// Field returns the play-field geometry.
func (g *Game) Field() Field {
	return g.field
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Score returns the segment count minus the starting length.
func (g *Game) Score() uint {
	return g.snake.Score(g.cfg.Snake.StartLength)
}

// OnDirection queues a heading change. It is observed on the next tick.
func (g *Game) OnDirection(dir core.Direction) {
	heading := g.snake.Heading()
	if !g.input.Push(dir, heading) {
		g.logger.Debug("direction rejected", "dir", dir, "heading", heading)
	}
}

// OnTogglePause flips the paused state and freezes or resumes the step in flight.
func (g *Game) OnTogglePause() {
	now := g.now()
	g.paused = !g.paused
	if g.paused {
		g.snake.Pause(now)
		return
	}
	g.gameOver = false
	g.snake.Resume(now)
}

// Tick runs one frame. Steps run in a fixed order:
//  1. while paused nothing happens
//  2. a collision on the committed state ends the round and resets
//  3. eating on the committed state grows the snake and scores
//  4. the step in flight advances, snapping and wrapping when done
//  5. when idle, the next pending direction (or the heading) starts a step
//  6. render anchors are computed
//  7. an apple is spawned if there is none
//  8. the frame is assembled and handed to the renderer
func (g *Game) Tick() error {
	if g.paused {
		return nil
	}
	g.tick++
	now := g.now()

	if g.snake.CheckSelfCollision() {
		score := g.Score()
		g.logger.Info("game over", "score", score, "length", g.snake.Len(), "tick", g.tick)
		g.events.gameOver(score)
		g.reset()
		g.gameOver = true
		return g.draw(now)
	}

	if g.hasApple && g.snake.CheckEat(g.apple) {
		g.snake.Grow()
		g.hasApple = false
		score := g.Score()
		g.logger.Debug("apple eaten", "score", score, "x", g.apple.X, "y", g.apple.Y)
		g.events.scored(score)
	}

	g.snake.Advance(now)

	if g.snake.State() == StateIdle {
		g.startStep(now)
	}

	return g.draw(now)
}

// Redraw hands the current state to the renderer without advancing it.
// Hosts call it when the output surface changes while the game is paused.
func (g *Game) Redraw() error {
	return g.draw(g.now())
}

// startStep starts the next step from pending input, falling back to the
// current heading so the snake keeps moving.
func (g *Game) startStep(now time.Time) {
	for {
		dir, ok := g.input.Pop()
		if !ok {
			break
		}
		if g.snake.ProposeMove(dir, now) {
			return
		}
	}
	g.snake.ProposeMove(g.snake.Heading(), now)
}

// draw runs the render half of the tick: anchors, spawning and the frame.
func (g *Game) draw(now time.Time) error {
	anchors := g.snake.RenderAnchors(now)

	if !g.hasApple {
		if apple, ok := g.spawner.Spawn(g.snake.Occupied()); ok {
			g.apple = apple
			g.hasApple = true
		} else {
			g.logger.Debug("no free cell for apple", "length", g.snake.Len())
		}
	}

	g.frame.Reset()
	snakeColor := g.cfg.Colors.Snake.Color()
	for _, a := range anchors {
		g.frame.AddCell(a, snakeColor)
	}
	if g.hasApple {
		g.frame.AddBox(g.field.CellBox(g.apple), g.cfg.Colors.Apple.Color())
	}

	if err := g.renderer.Draw(g.frame.Vertices(), g.frame.Colors()); err != nil {
		return fmt.Errorf("snake: draw failed: %w", err)
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() GameState {
	segs := make([]core.Vec2, g.snake.Len())
	copy(segs, g.snake.Segments())
	return GameState{
		Score:    g.Score(),
		Paused:   g.paused,
		GameOver: g.gameOver,
		Heading:  g.snake.Heading(),
		Apple:    g.apple,
		HasApple: g.hasApple,
		Segments: segs,
	}
}
