package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Score    uint
	SnakeLen int
	Head     core.Vec2
	Dir      core.Direction
	Move     MoveState
	Apple    core.Vec2
	HasApple bool
	Pending  int
	Paused   bool
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.Score(),
		SnakeLen: g.snake.Len(),
		Head:     g.snake.Head(),
		Dir:      g.snake.Heading(),
		Move:     g.snake.State(),
		Apple:    g.apple,
		HasApple: g.hasApple,
		Pending:  g.input.Len(),
		Paused:   g.paused,
		GameOver: g.gameOver,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d\n", s.Tick, s.Score))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, %s\n", s.SnakeLen, s.Dir, s.Move))
	b.WriteString(fmt.Sprintf("Head: (%v, %v), Apple: (%v, %v) present=%v\n", s.Head.X, s.Head.Y, s.Apple.X, s.Apple.Y, s.HasApple))
	b.WriteString(fmt.Sprintf("Paused: %v, GameOver: %v, Pending: %d\n", s.Paused, s.GameOver, s.Pending))
	return b.String()
}
