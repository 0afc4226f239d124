package snake

import (
	"math"
	"time"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Animation eases one step of the snake from one set of committed anchors
// to the next. Only the head is interpolated; trailing segments render at
// their target anchors.
type Animation struct {
	start    time.Time
	duration time.Duration
	from     []core.Vec2
	to       []core.Vec2
	quantum  float32

	paused     bool
	pauseStart time.Time
	pauseAccum time.Duration
}

// NewAnimation starts an animation at now. from and to must have equal length.
func NewAnimation(now time.Time, duration time.Duration, from, to []core.Vec2, quantum float32) *Animation {
	return &Animation{
		start:    now,
		duration: duration,
		from:     from,
		to:       to,
		quantum:  quantum,
	}
}

// From returns the anchors the step started at.
func (a *Animation) From() []core.Vec2 { return a.from }

// To returns the anchors the step ends at.
func (a *Animation) To() []core.Vec2 { return a.to }

// Duration returns the configured length of the step.
func (a *Animation) Duration() time.Duration { return a.duration }

// Paused reports whether the animation is frozen.
func (a *Animation) Paused() bool { return a.paused }

// Elapsed returns the animation time that has passed, excluding paused time.
// While paused the value stays frozen at the moment of pausing.
func (a *Animation) Elapsed(now time.Time) time.Duration {
	if a.paused {
		now = a.pauseStart
	}
	return now.Sub(a.start) - a.pauseAccum
}

// Done reports whether the elapsed time has reached the duration.
func (a *Animation) Done(now time.Time) bool {
	return a.Elapsed(now) >= a.duration
}

// Progress returns elapsed/duration clamped to [0, 1].
func (a *Animation) Progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	return core.ClampF(float64(a.Elapsed(now))/float64(a.duration), 0, 1)
}

// HeadAt returns the eased head anchor at now, snapped to the render quantum.
// The endpoints are returned exactly.
func (a *Animation) HeadAt(now time.Time) core.Vec2 {
	return a.Interpolate(a.Progress(now))
}

// Interpolate returns the head anchor at progress p in [0, 1].
func (a *Animation) Interpolate(p float64) core.Vec2 {
	from, to := a.from[0], a.to[0]
	switch {
	case p <= 0:
		return from
	case p >= 1:
		return to
	}
	return core.Vec2{
		X: a.snap(from.X + (to.X-from.X)*float32(p)),
		Y: a.snap(from.Y + (to.Y-from.Y)*float32(p)),
	}
}

func (a *Animation) snap(v float32) float32 {
	if a.quantum <= 0 {
		return v
	}
	return float32(math.Round(float64(v/a.quantum))) * a.quantum
}

// Pause freezes the animation. Pausing an already paused animation is a no-op.
func (a *Animation) Pause(now time.Time) {
	if a.paused {
		return
	}
	a.paused = true
	a.pauseStart = now
}

// Resume unfreezes the animation, discounting the time spent paused.
func (a *Animation) Resume(now time.Time) {
	if !a.paused {
		return
	}
	a.pauseAccum += now.Sub(a.pauseStart)
	a.paused = false
	a.pauseStart = time.Time{}
}

// extend appends a segment to both ends of the animation.
func (a *Animation) extend(from, to core.Vec2) {
	a.from = append(a.from, from)
	a.to = append(a.to, to)
}
