package main

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/sim"
	"github.com/vovakirdan/tui-survivor/internal/upgrades"
)

func arena(player core.Vec2) sim.Snapshot {
	return sim.Snapshot{Width: 2000, Height: 2000, Player: sim.Player{Pos: player, HP: 100, MaxHP: 100}}
}

func TestAutopilotFleesEnemies(t *testing.T) {
	s := arena(core.V(1000, 1000))
	s.Enemies = []sim.Enemy{{Pos: core.V(1050, 1000)}}

	dir := newAutopilot().Steer(s)
	assert.Less(t, dir.X, 0.0)
	assert.InDelta(t, 0, dir.Y, 1e-9)
	assert.InDelta(t, 1, dir.Len(), 1e-9)
}

func TestAutopilotIgnoresDistantEnemies(t *testing.T) {
	s := arena(core.V(1000, 1000))
	s.Enemies = []sim.Enemy{{Pos: core.V(1500, 1000)}}

	assert.True(t, newAutopilot().Steer(s).IsZero())
}

func TestAutopilotSeeksOrbs(t *testing.T) {
	s := arena(core.V(1000, 1000))
	s.Orbs = []sim.XPOrb{{Pos: core.V(1000, 800)}, {Pos: core.V(1000, 1300)}}

	dir := newAutopilot().Steer(s)
	assert.InDelta(t, 0, dir.X, 1e-9)
	assert.InDelta(t, -1, dir.Y, 1e-9, "nearest orb first")
}

func TestAutopilotAvoidsEdges(t *testing.T) {
	dir := newAutopilot().Steer(arena(core.V(30, 1990)))
	assert.Greater(t, dir.X, 0.0)
	assert.Less(t, dir.Y, 0.0)
}

func TestRankCards(t *testing.T) {
	cards := []sim.UpgradeCard{
		{Name: "xp", Kind: sim.UpgradeXP},
		{Name: "hp", Kind: sim.UpgradeHealth},
		{Name: "dmg", Kind: sim.UpgradeDamage},
	}

	healthy := sim.Player{HP: 100, MaxHP: 100}
	assert.Equal(t, "dmg", rankCards(cards, healthy)[0].Name)

	hurt := sim.Player{HP: 20, MaxHP: 100}
	ranked := rankCards(cards, hurt)
	assert.Equal(t, "hp", ranked[0].Name)
	assert.Equal(t, "xp", ranked[2].Name)

	assert.Equal(t, "xp", cards[0].Name, "input is not reordered")
}

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultSurvivorConfig()
	logger := log.New(io.Discard)

	run := func() runReport {
		svc := upgrades.NewService(upgrades.NewCatalog(9), 0, logger)
		rep, err := simulate(context.Background(), cfg, 9, 3000, 60, svc, logger)
		require.NoError(t, err)
		return rep
	}

	a, b := run(), run()
	assert.Equal(t, a, b)
	assert.Equal(t, int64(9), a.Seed)
	assert.LessOrEqual(t, a.Ticks, 3000)
	assert.Positive(t, a.Kills, "the autopilot survives long enough to fight")
}

func TestSimulateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := upgrades.NewService(nil, 0, nil)
	_, err := simulate(ctx, config.DefaultSurvivorConfig(), 1, 100, 60, svc, log.New(io.Discard))
	assert.ErrorIs(t, err, context.Canceled)
}
