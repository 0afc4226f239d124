package snake

import (
	"time"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// MoveState is the state of the snake's movement machine.
type MoveState int

const (
	// StateIdle means no step is in flight and a new move may start.
	StateIdle MoveState = iota
	// StateMoving means one step animation is in flight.
	StateMoving
)

// String returns a human-readable name for the state.
func (s MoveState) String() string {
	if s == StateMoving {
		return "moving"
	}
	return "idle"
}

// Snake owns the ordered body segments, the committed heading and the step
// animation. Segments hold committed anchors only; eased positions exist
// only while rendering.
type Snake struct {
	field    Field
	collider core.Collider
	neck     int // Segments behind the head excluded from self-collision
	duration time.Duration
	quantum  float32

	segments []core.Vec2 // Head at index 0
	heading  core.Direction
	anim     *Animation // Non-nil while Moving

	prevTail    core.Vec2 // Tail anchor before the last completed step
	hasPrevTail bool
}

// NewSnake creates a snake of length segments whose head sits at head and
// whose body trails away opposite to heading.
func NewSnake(field Field, collider core.Collider, neck int, duration time.Duration, quantum float32,
	head core.Vec2, heading core.Direction, length int) *Snake {
	s := &Snake{
		field:    field,
		collider: collider,
		neck:     neck,
		duration: duration,
		quantum:  quantum,
		heading:  heading,
	}

	back := heading.Opposite().Step(field.CellW, field.CellH)
	pos := head
	for range length {
		s.segments = append(s.segments, pos)
		pos = field.Relocate(pos.Add(back))
	}
	return s
}

// Segments returns the committed segment anchors, head first.
func (s *Snake) Segments() []core.Vec2 {
	return s.segments
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Head returns the committed head anchor.
func (s *Snake) Head() core.Vec2 {
	return s.segments[0]
}

// Heading returns the committed direction of travel.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// State returns Idle or Moving.
func (s *Snake) State() MoveState {
	if s.anim != nil {
		return StateMoving
	}
	return StateIdle
}

// Animation returns the in-flight step, or nil when Idle.
func (s *Snake) Animation() *Animation {
	return s.anim
}

// ProposeMove starts a step in dir. It is rejected while a step is in flight
// and when dir reverses the committed heading.
func (s *Snake) ProposeMove(dir core.Direction, now time.Time) bool {
	if s.anim != nil || !dir.Valid() || dir == s.heading.Opposite() {
		return false
	}

	from := make([]core.Vec2, len(s.segments))
	copy(from, s.segments)

	// Rigid follow: the head steps one cell, every other segment takes the
	// anchor its predecessor held before the move.
	to := make([]core.Vec2, len(s.segments))
	to[0] = s.segments[0].Add(dir.Step(s.field.CellW, s.field.CellH))
	copy(to[1:], s.segments[:len(s.segments)-1])

	s.anim = NewAnimation(now, s.duration, from, to, s.quantum)
	s.heading = dir
	return true
}

// Advance completes the in-flight step once its time is up. On completion
// the segments snap exactly to the target anchors and the head is relocated
// across any edge it crossed. Returns true if a step completed.
func (s *Snake) Advance(now time.Time) bool {
	if s.anim == nil || !s.anim.Done(now) {
		return false
	}

	from := s.anim.From()
	s.prevTail = from[len(from)-1]
	s.hasPrevTail = true

	s.segments = append(s.segments[:0], s.anim.To()...)
	s.segments[0] = s.field.Relocate(s.segments[0])
	s.anim = nil
	return true
}

// CheckSelfCollision reports whether the head overlaps any body segment
// beyond the neck.
func (s *Snake) CheckSelfCollision() bool {
	if len(s.segments) <= s.neck {
		return false
	}
	return s.collider.OverlapsAny(s.segments[0], s.segments[s.neck:])
}

// CheckEat reports whether the head overlaps the apple at apple.
func (s *Snake) CheckEat(apple core.Vec2) bool {
	return s.collider.Overlaps(s.segments[0], apple)
}

// Grow appends one segment where the tail was before the last completed
// step, so the new segment appears exactly where the old tail left from.
// Without a known previous tail the segment stacks on the current tail.
// A step in flight is extended so its completion keeps the new segment.
func (s *Snake) Grow() {
	tail := s.segments[len(s.segments)-1]
	grown := tail
	if s.hasPrevTail {
		grown = s.prevTail
	}

	s.segments = append(s.segments, grown)
	if s.anim != nil {
		s.anim.extend(grown, tail)
	}
	s.hasPrevTail = false
}

// Score returns the number of segments grown beyond startLen.
func (s *Snake) Score(startLen int) uint {
	if len(s.segments) <= startLen {
		return 0
	}
	return uint(len(s.segments) - startLen)
}

// Pause freezes the in-flight step, if any.
func (s *Snake) Pause(now time.Time) {
	if s.anim != nil {
		s.anim.Pause(now)
	}
}

// Resume unfreezes the in-flight step, if any.
func (s *Snake) Resume(now time.Time) {
	if s.anim != nil {
		s.anim.Resume(now)
	}
}

// RenderAnchors returns the anchors to draw at now. While Moving, trailing
// segments are drawn at their target anchors and only the head is eased,
// which keeps corners sharp while the head glides.
func (s *Snake) RenderAnchors(now time.Time) []core.Vec2 {
	if s.anim == nil {
		out := make([]core.Vec2, len(s.segments))
		copy(out, s.segments)
		return out
	}

	to := s.anim.To()
	out := make([]core.Vec2, len(to))
	copy(out, to)
	out[0] = s.anim.HeadAt(now)
	return out
}

// Occupied returns every anchor the snake holds or is moving into.
func (s *Snake) Occupied() []core.Vec2 {
	out := make([]core.Vec2, 0, len(s.segments)+1)
	out = append(out, s.segments...)
	if s.anim != nil {
		out = append(out, s.field.Relocate(s.anim.To()[0]))
	}
	return out
}
