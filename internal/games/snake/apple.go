package snake

import (
	"math/rand"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Spawner places apples on cells the snake does not cover.
type Spawner struct {
	field    Field
	collider core.Collider
	rng      *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(field Field, collider core.Collider, rng *rand.Rand) *Spawner {
	return &Spawner{field: field, collider: collider, rng: rng}
}

// Candidates returns every cell whose box overlaps none of occupied.
func (s *Spawner) Candidates(occupied []core.Vec2) []core.Vec2 {
	cells := s.field.Cells()
	free := cells[:0]
	for _, c := range cells {
		if !s.collider.OverlapsAny(c, occupied) {
			free = append(free, c)
		}
	}
	return free
}

// Spawn picks a free cell uniformly at random. It returns false when every
// cell is covered; the caller simply tries again on a later tick.
func (s *Spawner) Spawn(occupied []core.Vec2) (core.Vec2, bool) {
	free := s.Candidates(occupied)
	if len(free) == 0 {
		return core.Vec2{}, false
	}
	return free[s.rng.Intn(len(free))], true
}
