package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/sim"
	"github.com/vovakirdan/tui-survivor/internal/storage"
	"github.com/vovakirdan/tui-survivor/internal/upgrades"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
}

// levelUpConfig makes the first kill level the player up.
func levelUpConfig() config.SurvivorConfig {
	cfg := config.DefaultSurvivorConfig()
	cfg.World.Decorations = config.DecorationsConfig{}
	cfg.Player.HP = 10000
	cfg.Player.Damage = 1000
	cfg.Player.AttackRange = 1000
	cfg.Player.XPToNextLevel = 1
	cfg.Progression.MagnetRadius = 5000
	cfg.Progression.PickupRadius = 5000
	return cfg
}

// deathConfig spawns enemies next to a fragile, unarmed player.
func deathConfig() config.SurvivorConfig {
	cfg := config.DefaultSurvivorConfig()
	cfg.World.Decorations = config.DecorationsConfig{}
	cfg.Player.HP = 1
	cfg.Player.AttackRange = 0
	cfg.Spawner.RingRadius = 15
	cfg.Spawner.BaseInterval = 1
	cfg.Spawner.MinInterval = 1
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func startRun(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, sim.PhasePlaying, m.engine.Phase())
	require.NotNil(t, cmd, "starting schedules the first tick")
	return m
}

// tickUntil ticks until phase is reached or the limit runs out.
func tickUntil(t *testing.T, m Model, phase sim.Phase, limit int) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for i := 0; i < limit && m.engine.Phase() != phase; i++ {
		m, cmd = update(t, m, TickMsg{})
	}
	require.Equal(t, phase, m.engine.Phase())
	return m, cmd
}

func TestModelStartsOnMenu(t *testing.T) {
	m := NewModel(Options{Config: config.DefaultSurvivorConfig(), Runtime: testRuntime()})

	assert.Equal(t, sim.PhaseMenu, m.engine.Phase())
	assert.Contains(t, m.View(), "press enter to start")

	m, cmd := update(t, m, TickMsg{})
	assert.Nil(t, cmd, "no ticking before the run starts")
	assert.Equal(t, uint64(0), m.engine.Snapshot().Frame)
}

func TestModelTicksWhilePlaying(t *testing.T) {
	m := startRun(t, NewModel(Options{Config: config.DefaultSurvivorConfig(), Runtime: testRuntime()}))

	for i := 0; i < 12; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{})
		require.NotNil(t, cmd)
	}
	assert.Equal(t, uint64(12), m.engine.Snapshot().Frame)
	assert.Equal(t, 1, m.summary.Level)
	assert.Contains(t, m.View(), "SCORE")
}

func TestModelMovesWithHeldKey(t *testing.T) {
	m := startRun(t, NewModel(Options{Config: config.DefaultSurvivorConfig(), Runtime: testRuntime(), HoldTicks: 4}))
	start := m.engine.Snapshot().Player.Pos

	m, _ = update(t, m, runes("d"))
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	pos := m.engine.Snapshot().Player.Pos
	assert.InDelta(t, start.X+4*3, pos.X, 1e-9, "moves for the hold window only")
	assert.InDelta(t, start.Y, pos.Y, 1e-9)
}

func TestModelLevelUpFlow(t *testing.T) {
	m := startRun(t, NewModel(Options{Config: levelUpConfig(), Runtime: testRuntime()}))

	m, cmd := tickUntil(t, m, sim.PhaseLevelUp, 2000)
	require.NotNil(t, cmd, "card fetch is scheduled")
	require.NotNil(t, m.request)
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "summoning upgrades")

	frame := m.engine.Snapshot().Frame
	m, cmd = update(t, m, TickMsg{})
	assert.Nil(t, cmd, "ticking is suspended")
	assert.Equal(t, frame, m.engine.Snapshot().Frame)

	m, _ = update(t, m, cardsMsg{level: m.request.Level + 1, cards: upgrades.Fallback(false)})
	assert.True(t, m.loading, "cards for another level are ignored")

	m, _ = update(t, m, cardsMsg{level: m.request.Level, cards: upgrades.Fallback(false)})
	assert.False(t, m.loading)
	require.Len(t, m.cards, 3)
	assert.Contains(t, m.View(), "LEVEL UP")

	m, cmd = update(t, m, runes("1"))
	require.NotNil(t, cmd, "ticking resumes")
	assert.Equal(t, sim.PhasePlaying, m.engine.Phase())
	assert.Equal(t, 2, m.engine.Snapshot().Player.Level)
	assert.Nil(t, m.cards)
}

func TestModelPickOutOfRange(t *testing.T) {
	m := startRun(t, NewModel(Options{Config: levelUpConfig(), Runtime: testRuntime()}))
	m, _ = tickUntil(t, m, sim.PhaseLevelUp, 2000)

	m, cmd := update(t, m, runes("2"))
	assert.Nil(t, cmd, "nothing to pick while loading")
	assert.Equal(t, sim.PhaseLevelUp, m.engine.Phase())

	m, _ = update(t, m, cardsMsg{level: m.request.Level, cards: upgrades.Fallback(false)[:1]})
	m, cmd = update(t, m, runes("3"))
	assert.Nil(t, cmd)
	assert.Equal(t, sim.PhaseLevelUp, m.engine.Phase())
}

func TestModelGameOverSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := startRun(t, NewModel(Options{
		Config:     deathConfig(),
		Runtime:    testRuntime(),
		Store:      store,
		Difficulty: "hard",
	}))

	m, cmd := tickUntil(t, m, sim.PhaseGameOver, 500)
	assert.Nil(t, cmd, "no ticks after game over")
	assert.True(t, m.saved)
	assert.Contains(t, m.View(), "GAME OVER")

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(3), runs[0].Seed)
	assert.Equal(t, "hard", runs[0].Difficulty)
	assert.Equal(t, "fallback", runs[0].Source)
	assert.Equal(t, m.engine.Snapshot().GameTime, runs[0].GameTime)

	m, _ = update(t, m, TickMsg{})
	runs, _ = store.TopRuns(10)
	assert.Len(t, runs, 1, "a run is saved once")

	m, cmd = update(t, m, runes("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, sim.PhasePlaying, m.engine.Phase())
	assert.False(t, m.saved)
	assert.Equal(t, uint64(0), m.engine.Snapshot().Frame)
}

func TestModelQuit(t *testing.T) {
	m := NewModel(Options{Config: config.DefaultSurvivorConfig(), Runtime: testRuntime()})

	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := startRun(t, NewModel(Options{Config: config.DefaultSurvivorConfig(), Runtime: testRuntime()}))
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 40-hudHeight, m.screen.Height())
	assert.Equal(t, uint64(1), m.engine.Snapshot().Frame)
}
