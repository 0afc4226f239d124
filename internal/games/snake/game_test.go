package snake

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/wrapsnake/internal/config"
	"github.com/vovakirdan/wrapsnake/internal/core"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recorder struct {
	calls    int
	vertices []float32
	colors   []float32
	err      error
}

func (r *recorder) Draw(vertices, colors []float32) error {
	r.calls++
	r.vertices = append(r.vertices[:0], vertices...)
	r.colors = append(r.colors[:0], colors...)
	return r.err
}

type harness struct {
	game     *Game
	clock    *fakeClock
	renderer *recorder
	scored   []uint
	gameOver []uint
}

func newHarness(t *testing.T, cfg config.SnakeConfig, seed int64) *harness {
	t.Helper()
	h := &harness{
		clock:    &fakeClock{now: epoch},
		renderer: &recorder{},
	}
	g, err := New(cfg, h.renderer,
		WithClock(h.clock.Now),
		WithSeed(seed),
		WithEvents(Events{
			OnScored:   func(s uint) { h.scored = append(h.scored, s) },
			OnGameOver: func(s uint) { h.gameOver = append(h.gameOver, s) },
		}),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	h.game = g
	return h
}

func (h *harness) tick(t *testing.T) {
	t.Helper()
	if err := h.game.Tick(); err != nil {
		t.Fatalf("Tick() error: %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Cols = 0
	if _, err := New(cfg, &recorder{}); err == nil {
		t.Error("New() with zero cols should fail")
	}
}

func TestNewRequiresRenderer(t *testing.T) {
	_, err := New(config.DefaultSnakeConfig(), nil)
	if !errors.Is(err, ErrNoRenderer) {
		t.Errorf("New(nil renderer) error = %v, expected ErrNoRenderer", err)
	}
}

func TestStartsPaused(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)

	st := h.game.State()
	if !st.Paused || st.GameOver {
		t.Errorf("fresh game paused=%v gameOver=%v, expected paused only", st.Paused, st.GameOver)
	}
	if st.Heading != core.DirLeft {
		t.Errorf("Heading = %v, expected left", st.Heading)
	}
	if st.Segments[0] != (core.Vec2{X: 640, Y: 400}) {
		t.Errorf("head = %v, expected centre (640, 400)", st.Segments[0])
	}

	h.tick(t)
	if h.renderer.calls != 0 {
		t.Errorf("paused tick drew %d frames, expected none", h.renderer.calls)
	}
	if h.game.Snapshot().Tick != 0 {
		t.Errorf("paused tick advanced the counter")
	}
}

func TestFirstTickStartsStep(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	h.game.OnTogglePause()
	h.tick(t)

	snap := h.game.Snapshot()
	if snap.Move != StateMoving || snap.Dir != core.DirLeft {
		t.Errorf("after first tick move=%v dir=%v, expected moving left", snap.Move, snap.Dir)
	}
	if snap.Pending != 0 {
		t.Errorf("Pending = %d, expected the seeded left to be consumed", snap.Pending)
	}
	if !snap.HasApple {
		t.Error("an apple should be spawned on the first drawn frame")
	}
	if h.renderer.calls != 1 {
		t.Fatalf("renderer called %d times, expected 1", h.renderer.calls)
	}

	// Four snake cells and one apple, no slivers.
	if got := len(h.renderer.vertices); got != 5*12 {
		t.Errorf("len(vertices) = %d, expected %d", got, 5*12)
	}
	if got := len(h.renderer.colors); got != len(h.renderer.vertices)/2*3 {
		t.Errorf("len(colors) = %d, expected %d", got, len(h.renderer.vertices)/2*3)
	}

	apple := config.DefaultSnakeConfig().Colors.Apple
	tail := h.renderer.colors[len(h.renderer.colors)-3:]
	for i := range 3 {
		if tail[i] != apple[i] {
			t.Errorf("last vertex colour = %v, expected apple %v", tail, apple)
			break
		}
	}
}

func TestReverseInputIgnored(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	h.game.OnTogglePause()
	h.game.OnDirection(core.DirRight)
	h.tick(t)

	if h.game.Snapshot().Dir != core.DirLeft {
		t.Errorf("Dir = %v, expected left after a reverse input", h.game.Snapshot().Dir)
	}
}

func TestInputObservedAfterStep(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	h.game.OnTogglePause()
	h.tick(t)

	h.game.OnDirection(core.DirUp)
	h.clock.Advance(100 * time.Millisecond)
	h.tick(t)
	if snap := h.game.Snapshot(); snap.Dir != core.DirLeft || snap.Pending != 1 {
		t.Errorf("mid-step dir=%v pending=%d, expected left with 1 pending", snap.Dir, snap.Pending)
	}

	h.clock.Advance(100 * time.Millisecond)
	h.tick(t)
	snap := h.game.Snapshot()
	if snap.Dir != core.DirUp || snap.Pending != 0 {
		t.Errorf("after step dir=%v pending=%d, expected up with none pending", snap.Dir, snap.Pending)
	}
	if snap.Head != (core.Vec2{X: 560, Y: 400}) {
		t.Errorf("Head = %v, expected (560, 400)", snap.Head)
	}
}

func TestContinuousMotionWraps(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	h.game.OnTogglePause()
	h.tick(t)

	for range 9 {
		h.clock.Advance(stepDuration)
		h.tick(t)
	}

	snap := h.game.Snapshot()
	if snap.Head != (core.Vec2{X: 1200, Y: 400}) {
		t.Errorf("Head after 9 steps = %v, expected wrapped to (1200, 400)", snap.Head)
	}
	if snap.Dir != core.DirLeft || snap.Move != StateMoving {
		t.Errorf("dir=%v move=%v, expected to keep moving left", snap.Dir, snap.Move)
	}
}

func TestEatScores(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	g := h.game
	g.apple = g.snake.Head()
	g.hasApple = true

	g.OnTogglePause()
	h.tick(t)

	if len(h.scored) != 1 || h.scored[0] != 1 {
		t.Errorf("OnScored calls = %v, expected [1]", h.scored)
	}
	if g.Score() != 1 || g.snake.Len() != 5 {
		t.Errorf("score=%d len=%d, expected 1 and 5", g.Score(), g.snake.Len())
	}
	if g.hasApple && g.apple == g.snake.Head() {
		t.Error("a new apple was spawned under the snake")
	}
}

func TestCollisionResets(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	g := h.game

	head := core.Vec2{X: 400, Y: 400}
	segs := []core.Vec2{head}
	for i := 1; i < 12; i++ {
		segs = append(segs, core.Vec2{X: float32(i-1) * 80, Y: 80})
	}
	segs[4] = head
	g.snake.segments = segs

	g.OnTogglePause()
	h.tick(t)

	if len(h.gameOver) != 1 || h.gameOver[0] != 8 {
		t.Fatalf("OnGameOver calls = %v, expected [8]", h.gameOver)
	}
	st := g.State()
	if !st.Paused || !st.GameOver {
		t.Errorf("after collision paused=%v gameOver=%v, expected both", st.Paused, st.GameOver)
	}
	if len(st.Segments) != 4 || st.Segments[0] != (core.Vec2{X: 640, Y: 400}) {
		t.Errorf("snake not reset: %v", st.Segments)
	}
	if st.Score != 0 || st.Heading != core.DirLeft {
		t.Errorf("score=%d heading=%v, expected 0 and left", st.Score, st.Heading)
	}
	if g.snake.State() != StateIdle {
		t.Error("reset snake should be idle")
	}
	if h.renderer.calls != 1 {
		t.Errorf("renderer called %d times, expected the fresh frame once", h.renderer.calls)
	}

	g.OnTogglePause()
	if g.State().GameOver {
		t.Error("resuming should clear the game-over flag")
	}
}

func TestPauseFreezesStep(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	g := h.game
	g.OnTogglePause()
	h.tick(t)

	h.clock.Advance(100 * time.Millisecond)
	g.OnTogglePause()
	calls := h.renderer.calls

	h.clock.Advance(5 * time.Second)
	h.tick(t)
	if h.renderer.calls != calls {
		t.Error("paused tick should not draw")
	}

	g.OnTogglePause()
	h.clock.Advance(50 * time.Millisecond)
	h.tick(t)
	if snap := g.Snapshot(); snap.Head != (core.Vec2{X: 640, Y: 400}) || snap.Move != StateMoving {
		t.Errorf("step completed early: head=%v move=%v", snap.Head, snap.Move)
	}

	h.clock.Advance(100 * time.Millisecond)
	h.tick(t)
	if snap := g.Snapshot(); snap.Head != (core.Vec2{X: 560, Y: 400}) {
		t.Errorf("Head = %v, expected (560, 400)", snap.Head)
	}
}

func TestDrawErrorWrapped(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	sentinel := errors.New("gpu lost")
	h.renderer.err = sentinel

	h.game.OnTogglePause()
	if err := h.game.Tick(); !errors.Is(err, sentinel) {
		t.Errorf("Tick() error = %v, expected wrapped %v", err, sentinel)
	}
}

func TestNoAppleWhenFieldFull(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Field.Width, cfg.Field.Height = 160, 80
	cfg.Grid.Cols, cfg.Grid.Rows = 2, 1
	cfg.Snake.StartLength = 1

	h := newHarness(t, cfg, 1)
	h.game.OnTogglePause()
	h.tick(t)

	if h.game.Snapshot().HasApple {
		t.Error("no apple should spawn when every cell is taken")
	}
	if got := len(h.renderer.vertices); got != 12 {
		t.Errorf("len(vertices) = %d, expected one snake cell", got)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []Snapshot {
		h := newHarness(t, config.DefaultSnakeConfig(), 12345)
		h.game.OnTogglePause()

		var snaps []Snapshot
		for i := range 60 {
			switch i {
			case 5:
				h.game.OnDirection(core.DirUp)
			case 15:
				h.game.OnDirection(core.DirRight)
			case 30:
				h.game.OnDirection(core.DirDown)
			}
			h.clock.Advance(50 * time.Millisecond)
			h.tick(t)
			snaps = append(snaps, h.game.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d differs:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestWrapSliverRendered(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	g := h.game
	g.snake = newTestSnake(core.Vec2{X: 0, Y: 400}, core.DirLeft, 4)
	g.hasApple = true
	g.apple = core.Vec2{X: 640, Y: 0}

	g.OnTogglePause()
	h.tick(t)
	h.clock.Advance(100 * time.Millisecond)
	h.tick(t)

	// Head halfway across the left edge: one extra sliver box.
	if got := len(h.renderer.vertices); got != 6*12 {
		t.Fatalf("len(vertices) = %d, expected %d", got, 6*12)
	}
	sliver := core.NewBox(1240, 400, 40, 80).Vertices()
	got := h.renderer.vertices[12:24]
	for i := range sliver {
		if got[i] != sliver[i] {
			t.Errorf("sliver vertices = %v, expected %v", got, sliver)
			break
		}
	}
}

func TestRedrawWhilePaused(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	before := h.game.Snapshot()

	if err := h.game.Redraw(); err != nil {
		t.Fatalf("Redraw() error: %v", err)
	}
	if h.renderer.calls != 1 {
		t.Errorf("renderer called %d times, expected 1", h.renderer.calls)
	}

	after := h.game.Snapshot()
	if after.Tick != before.Tick || after.Head != before.Head || after.Move != StateIdle {
		t.Errorf("Redraw() changed the game: %+v -> %+v", before, after)
	}
}

func TestDebugState(t *testing.T) {
	h := newHarness(t, config.DefaultSnakeConfig(), 1)
	if h.game.DebugState() == "" {
		t.Error("DebugState() returned empty string")
	}
}
