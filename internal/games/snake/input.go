package snake

import "github.com/vovakirdan/wrapsnake/internal/core"

// MaxPendingInputs bounds how many turns may be buffered ahead of the snake.
const MaxPendingInputs = 2

// InputQueue buffers directional input between ticks. The input side only
// pushes; the tick only pops.
type InputQueue struct {
	pending []core.Direction
}

// Push queues dir unless it repeats or reverses the direction it would
// follow (the last pending one, or heading when nothing is pending), or the
// queue is full. Returns whether dir was queued.
func (q *InputQueue) Push(dir core.Direction, heading core.Direction) bool {
	if !dir.Valid() || len(q.pending) >= MaxPendingInputs {
		return false
	}

	last := heading
	if n := len(q.pending); n > 0 {
		last = q.pending[n-1]
		if dir == last {
			return false
		}
	}
	if dir == last.Opposite() {
		return false
	}

	q.pending = append(q.pending, dir)
	return true
}

// Pop removes and returns the oldest pending direction.
func (q *InputQueue) Pop() (core.Direction, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	dir := q.pending[0]
	q.pending = q.pending[1:]
	return dir, true
}

// Len returns the number of pending directions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Reset discards pending input and optionally seeds an initial direction.
func (q *InputQueue) Reset(initial ...core.Direction) {
	q.pending = append(q.pending[:0], initial...)
}
