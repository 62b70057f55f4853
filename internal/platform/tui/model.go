package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/sim"
	"github.com/vovakirdan/tui-survivor/internal/storage"
	"github.com/vovakirdan/tui-survivor/internal/upgrades"
)

// defaultHoldTicks is how long a key press keeps its direction held.
// Terminal auto-repeat fires roughly every 30-50ms, so a press bridges
// the gap to the next repeat at 60 ticks per second.
const defaultHoldTicks = 8

// Options carries the dependencies of a play session.
type Options struct {
	Config     config.SurvivorConfig
	Runtime    core.RuntimeConfig
	Upgrades   *upgrades.Service // Nil uses the built-in fallback cards
	Store      *storage.Store    // Nil disables run history
	Logger     *log.Logger       // Nil discards
	Difficulty string
	HoldTicks  int
}

// cardsMsg delivers the upgrade cards fetched for a level-up.
type cardsMsg struct {
	level int
	cards []sim.UpgradeCard
}

// Model is the Bubble Tea model for a survivor session.
type Model struct {
	opts    Options
	engine  *sim.Engine
	seed    int64
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	held    *HeldInput
	width   int
	height  int

	summary   sim.Summary
	request   *sim.UpgradeRequest
	cards     []sim.UpgradeCard
	loading   bool
	saved     bool
	newBest   bool
	highScore int
	quitting  bool
}

// NewModel creates a session parked on the start screen.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Upgrades == nil {
		opts.Upgrades = upgrades.NewService(nil, 0, opts.Logger)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = defaultHoldTicks
	}
	if opts.Difficulty == "" {
		opts.Difficulty = string(config.DifficultyNormal)
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("208"))),
	)

	m := Model{
		opts:    opts,
		screen:  core.NewScreen(opts.Runtime.ScreenW, arenaRows(opts.Runtime.ScreenH)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		held:    NewHeldInput(opts.HoldTicks),
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}
	m.engine = m.newEngine()
	m.summary = m.engine.Summary()
	m.highScore = m.loadHighScore()
	return m
}

func arenaRows(height int) int {
	return max(1, height-hudHeight)
}

// newEngine builds a fresh engine. A fixed seed replays the same run on
// every restart; otherwise each run is seeded from the clock.
func (m *Model) newEngine() *sim.Engine {
	m.seed = m.opts.Runtime.Seed
	if m.seed == 0 {
		m.seed = time.Now().UnixNano()
	}
	rt := m.opts.Runtime
	rt.Seed = m.seed

	logger := m.opts.Logger
	return sim.NewEngine(m.opts.Config, rt,
		sim.WithPhaseSink(func(from, to sim.Phase) {
			logger.Debug("phase changed", "from", from, "to", to)
		}),
	)
}

func (m Model) loadHighScore() int {
	if m.opts.Store == nil {
		return 0
	}
	high, err := m.opts.Store.HighScore()
	if err != nil {
		m.opts.Logger.Warn("cannot load high score", "err", err)
		return 0
	}
	return high
}

// Init sets the window title. Ticking starts when the run does.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Survivor")
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

	case cardsMsg:
		return m.handleCards(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.engine.Phase() {
	case sim.PhaseMenu:
		if action == core.ActionConfirm {
			if err := m.engine.Start(); err != nil {
				m.opts.Logger.Error("cannot start run", "err", err)
				return m, nil
			}
			m.opts.Logger.Info("run started", "seed", m.seed, "difficulty", m.opts.Difficulty)
			return m, tickCmd(m.opts.Runtime.TickRate)
		}

	case sim.PhasePlaying:
		m.held.Press(action)

	case sim.PhaseLevelUp:
		switch action {
		case core.ActionPick1:
			return m.pick(0)
		case core.ActionPick2:
			return m.pick(1)
		case core.ActionPick3:
			return m.pick(2)
		}

	case sim.PhaseGameOver:
		if action == core.ActionRestart || action == core.ActionConfirm {
			return m.restart()
		}
	}

	return m, nil
}

// handleResize processes window resize events. The run is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, arenaRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation one frame. Ticks arriving outside
// Playing end the tick chain; it is restarted when play resumes.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.engine.Phase() != sim.PhasePlaying {
		return m, nil
	}

	res := m.engine.Step(m.held.Frame())
	if res.Summary != nil {
		m.summary = *res.Summary
	}

	switch {
	case res.LevelUp != nil:
		m.held.Reset()
		m.summary = m.engine.Summary()
		m.request = res.LevelUp
		m.cards = nil
		m.loading = true
		m.opts.Logger.Debug("level up", "level", res.LevelUp.Level, "boss", res.LevelUp.BossReward)
		return m, tea.Batch(m.spinner.Tick, m.fetchCards(*res.LevelUp))

	case res.Phase == sim.PhaseGameOver:
		m.held.Reset()
		m.summary = m.engine.Summary()
		m.finishRun()
		return m, nil
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// fetchCards asks the upgrade service for cards off the UI goroutine.
func (m Model) fetchCards(req sim.UpgradeRequest) tea.Cmd {
	svc := m.opts.Upgrades
	return func() tea.Msg {
		cards := svc.Offer(context.Background(), req.Level, req.BossReward)
		return cardsMsg{level: req.Level, cards: cards}
	}
}

// handleCards shows fetched cards if they still match the pending level-up.
func (m Model) handleCards(msg cardsMsg) (tea.Model, tea.Cmd) {
	if m.engine.Phase() != sim.PhaseLevelUp || m.request == nil || m.request.Level != msg.level {
		return m, nil
	}
	m.loading = false
	m.cards = msg.cards
	return m, nil
}

// pick applies the i-th offered card and resumes ticking.
func (m Model) pick(i int) (tea.Model, tea.Cmd) {
	if m.loading || i < 0 || i >= len(m.cards) {
		return m, nil
	}
	card := m.cards[i]
	if err := m.engine.ApplyUpgrade(card); err != nil {
		m.opts.Logger.Warn("upgrade rejected", "card", card.Name, "kind", card.Kind, "err", err)
		return m, nil
	}
	m.opts.Logger.Debug("upgrade applied", "card", card.Name, "kind", card.Kind, "value", card.Value)

	m.cards = nil
	m.request = nil
	m.summary = m.engine.Summary()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// finishRun records the finished run once.
func (m *Model) finishRun() {
	if m.saved {
		return
	}
	m.saved = true

	snap := m.engine.Snapshot()
	m.newBest = snap.Score > m.highScore
	m.opts.Logger.Info("run finished",
		"score", snap.Score, "level", snap.Player.Level, "kills", snap.Kills,
		"time", snap.GameClock(m.opts.Runtime.TickRate))

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Score:      snap.Score,
		Level:      snap.Player.Level,
		Kills:      snap.Kills,
		Bosses:     snap.Bosses,
		GameTime:   snap.GameTime,
		Seed:       m.seed,
		Difficulty: m.opts.Difficulty,
		Source:     m.opts.Upgrades.SourceID(),
	})
	if err != nil {
		m.opts.Logger.Warn("cannot save run", "err", err)
	}
}

// restart replaces the finished engine with a new run.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if m.newBest {
		m.highScore = m.engine.Snapshot().Score
	}
	m.engine = m.newEngine()
	m.summary = m.engine.Summary()
	m.request = nil
	m.cards = nil
	m.loading = false
	m.saved = false
	m.newBest = false
	m.held.Reset()

	if err := m.engine.Start(); err != nil {
		m.opts.Logger.Error("cannot start run", "err", err)
		return m, nil
	}
	m.opts.Logger.Info("run started", "seed", m.seed, "difficulty", m.opts.Difficulty)
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot writes the arena as plain text under ~/.survivor/screenshots
// and copies it to the system clipboard when one is available.
func (m *Model) saveScreenshot() {
	m.drawArena()
	text := m.screen.String()
	if err := clipboard.WriteAll(text); err != nil {
		m.opts.Logger.Debug("clipboard unavailable", "err", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}

	dir := filepath.Join(home, ".survivor", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	path := filepath.Join(dir, fmt.Sprintf("survivor_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// drawArena renders the current snapshot into the screen buffer.
func (m Model) drawArena() sim.Snapshot {
	snap := m.engine.Snapshot()
	cam := NewCamera(m.screen.Width(), m.screen.Height())
	cam.Center = snap.Player.Pos
	DrawWorld(m.screen, snap, cam)
	return snap
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.engine.Phase() {
	case sim.PhaseMenu:
		return m.viewMenu()
	case sim.PhaseLevelUp:
		return m.viewLevelUp()
	case sim.PhaseGameOver:
		return m.viewGameOver()
	}

	snap := m.drawArena()
	return RenderScreen(m.screen) + "\n" +
		renderHUD(m.summary, snap.GameClock(m.opts.Runtime.TickRate), snap.Kills, m.width)
}

func (m Model) viewMenu() string {
	logo := bannerStyle.Render("S U R V I V O R")
	lines := []string{
		logo,
		dimStyle.Render("outlast the horde"),
		"",
		fmt.Sprintf("%s %s", labelStyle.Render("high score"), valueStyle.Render(fmt.Sprint(m.highScore))),
		fmt.Sprintf("%s %s", labelStyle.Render("difficulty"), valueStyle.Render(m.opts.Difficulty)),
		fmt.Sprintf("%s %s", labelStyle.Render("upgrades"), valueStyle.Render(m.opts.Upgrades.SourceID())),
		"",
		titleStyle.Render("press enter to start"),
		"",
		m.help.View(m.keys),
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewLevelUp() string {
	var body string
	if m.loading || len(m.cards) == 0 {
		body = fmt.Sprintf("%s summoning upgrades...", m.spinner.View())
	} else {
		boss := m.request != nil && m.request.BossReward
		body = renderCards(m.cards, boss, m.width)
	}

	snap := m.engine.Snapshot()
	hud := renderHUD(m.summary, snap.GameClock(m.opts.Runtime.TickRate), snap.Kills, m.width)
	return lipgloss.Place(m.width, arenaRows(m.height), lipgloss.Center, lipgloss.Center, body) + "\n" + hud
}

func (m Model) viewGameOver() string {
	snap := m.engine.Snapshot()

	lines := []string{
		bannerStyle.Render("GAME OVER"),
		"",
		fmt.Sprintf("%s %s", labelStyle.Render("score"), valueStyle.Render(fmt.Sprint(snap.Score))),
		fmt.Sprintf("%s %s", labelStyle.Render("level"), valueStyle.Render(fmt.Sprint(snap.Player.Level))),
		fmt.Sprintf("%s %s", labelStyle.Render("kills"), valueStyle.Render(fmt.Sprint(snap.Kills))),
		fmt.Sprintf("%s %s", labelStyle.Render("bosses"), valueStyle.Render(fmt.Sprint(snap.Bosses))),
		fmt.Sprintf("%s %s", labelStyle.Render("survived"), valueStyle.Render(snap.GameClock(m.opts.Runtime.TickRate))),
	}
	if m.newBest {
		lines = append(lines, "", titleStyle.Render("new high score!"))
	}
	lines = append(lines, "", dimStyle.Render("r new run · q quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 4).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Run starts the Bubble Tea program for a session.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
