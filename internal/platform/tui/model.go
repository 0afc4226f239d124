package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wrapsnake/internal/config"
	"github.com/vovakirdan/wrapsnake/internal/core"
	"github.com/vovakirdan/wrapsnake/internal/games/snake"
)

// hudHeight is the number of terminal rows below the field: status and help.
const hudHeight = 2

var (
	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f0f0f0")).Background(lipgloss.Color("#1a331a")).Padding(0, 1)
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a1a1a")).Background(lipgloss.Color("#e6c619")).Padding(0, 1)
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f0f0f0")).Background(lipgloss.Color("#a61a1a")).Padding(0, 1)
)

// sessionStats tracks scores across rounds for one player session.
// It is shared by pointer so game events can update it from Update.
type sessionStats struct {
	best  uint
	last  uint
	games int
}

func (s *sessionStats) scored(score uint) {
	s.best = max(s.best, score)
}

func (s *sessionStats) gameOver(score uint) {
	s.last = score
	s.games++
	s.best = max(s.best, score)
}

// Model is the Bubble Tea model for running the snake.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	stats    *sessionStats
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model running a fresh game.
// The field is scaled onto the terminal, minus the rows the HUD needs.
func NewModel(cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH-hudHeight)
	raster, err := NewRasterizer(screen, cfg.Field.Width, cfg.Field.Height, cfg.Colors.Background.Color())
	if err != nil {
		return Model{}, err
	}

	stats := &sessionStats{}
	game, err := snake.New(cfg, raster,
		snake.WithSeed(rt.Seed),
		snake.WithLogger(logger),
		snake.WithEvents(snake.Events{
			OnScored:   stats.scored,
			OnGameOver: stats.gameOver,
		}),
	)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		game:    game,
		screen:  screen,
		stats:   stats,
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
	}, nil
}

// Init draws the paused opening frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.game.Redraw(); err != nil {
		m.logger.Error("initial draw failed", "error", err)
	}
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Directions and pause go straight to
// the game; they take effect on its next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.game.OnTogglePause()
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.game.OnDirection(dir)
	}
	return m, nil
}

// handleResize rescales the field onto the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-hudHeight)
	m.help.Width = msg.Width

	if err := m.game.Redraw(); err != nil {
		m.logger.Error("redraw after resize failed", "error", err)
	}
	return m, nil
}

// handleTick runs one game tick. A renderer failure ends the program.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.game.Tick(); err != nil {
		m.logger.Error("tick failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot saves the current field to a text file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.game.State()
	switch {
	case st.GameOver:
		mid := m.screen.Height() / 2
		m.screen.DrawTextCentered(mid-1, " GAME OVER ")
		m.screen.DrawTextCentered(mid, fmt.Sprintf(" Score: %d ", m.stats.last))
		m.screen.DrawTextCentered(mid+1, " SPACE to play again ")
	case st.Paused:
		mid := m.screen.Height() / 2
		m.screen.DrawTextCentered(mid, " PAUSED - SPACE to play ")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.statusLine(st),
		m.help.View(m.keys),
	)
}

// statusLine renders the score and state row under the field.
func (m Model) statusLine(st snake.GameState) string {
	score := scoreStyle.Render(fmt.Sprintf("Score %d  Best %d", st.Score, m.stats.best))
	switch {
	case st.GameOver:
		return lipgloss.JoinHorizontal(lipgloss.Top, score, " ", overStyle.Render("GAME OVER"))
	case st.Paused:
		return lipgloss.JoinHorizontal(lipgloss.Top, score, " ", pausedStyle.Render("PAUSED"))
	}
	return score
}

// Run starts the Bubble Tea program with a new snake game.
func Run(cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
