package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickhero/internal/core"
	"github.com/vovakirdan/stickhero/internal/stick"
)

// helpRows is the space below the play field taken by the help line.
const helpRows = 1

// Model is the Bubble Tea model for one game of Stick Hero.
//
// Frames are only requested while the scheduler runs: the model starts a
// tick chain when an action wakes the game and lets it end when Frame says
// the game is stationary.
type Model struct {
	sched   *stick.Scheduler
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    GameKeyMap
	mapper  *KeyMapper
	help    help.Model
	logger  *log.Logger
	shotDir string

	ticking  bool // A TickMsg is pending
	quitting bool
}

// NewModel creates a model driving game.
func NewModel(game *stick.Game, maxFrameMs float64, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	keys := DefaultGameKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sched:   stick.NewScheduler(game, maxFrameMs),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		config:  cfg,
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    h,
		logger:  logger,
		shotDir: defaultScreenshotDir(),
	}
}

// Init does nothing: the game waits for the first press.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.mapper.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(m.mapper.MapMouse(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		st := m.sched.Game().State()
		m.logger.Info("Player quit", "score", st.Score, "max", st.MaxScore, "game_over", st.GameOver)
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionReset:
		m.logger.Debug("Game reset")
	}

	if m.sched.Handle(a) && !m.ticking {
		m.ticking = true
		return m, frameNow
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if _, more := m.sched.Frame(now); more {
		return m, tickCmd(m.config.TickRate)
	}
	m.ticking = false
	return m, nil
}

// saveScreenshot writes the current frame to a text file.
func (m *Model) saveScreenshot() {
	stick.Render(m.screen, m.sched.Game().Snapshot())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Error("Cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", stick.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("Cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("Screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.sched.Game().Snapshot()
	stick.Render(m.screen, snap)

	// The restart hint only shows once the game is over.
	keys := m.keys
	keys.Reset.SetEnabled(snap.GameOver)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(keys))
}

// Game returns the game driven by this model.
func (m Model) Game() *stick.Game {
	return m.sched.Game()
}

// Ticking reports whether the model is waiting for a frame.
func (m Model) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true once the player asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "stickhero", "screenshots")
	}
	return filepath.Join(home, ".stickhero", "screenshots")
}

// Run starts a full-screen Bubble Tea program for model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
