package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// seqSource replays a fixed sequence of values and counts draws.
type seqSource struct {
	vals  []float64
	draws int
}

func (s *seqSource) Float64() float64 {
	if len(s.vals) == 0 {
		s.draws++
		return 0.5
	}
	v := s.vals[s.draws%len(s.vals)]
	s.draws++
	return v
}

// quietConfig disables decorations and regular spawns so a scenario only
// contains the entities a test places.
func quietConfig() config.SurvivorConfig {
	cfg := config.DefaultSurvivorConfig()
	cfg.World.Decorations = config.DecorationsConfig{}
	cfg.Spawner.BaseInterval = 1 << 30
	cfg.Spawner.MinInterval = 1 << 30
	return cfg
}

func newPlaying(t *testing.T, cfg config.SurvivorConfig, src core.Source, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithSource(src)}, opts...)
	e := NewEngine(cfg, core.DefaultConfig(), opts...)
	require.NoError(t, e.Start())
	return e
}

// placeEnemy adds a stationary regular enemy and returns its id.
func placeEnemy(w *World, pos core.Vec2, hp float64) uint64 {
	id := w.newID()
	w.Enemies = append(w.Enemies, Enemy{ID: id, Pos: pos, HP: hp, MaxHP: hp, Kind: KindSlime})
	return id
}

func enemyByID(w *World, id uint64) *Enemy {
	if i := w.findEnemy(id); i >= 0 {
		return &w.Enemies[i]
	}
	return nil
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func cardOf(kind UpgradeKind, value float64) UpgradeCard {
	return UpgradeCard{ID: "test-" + string(kind), Name: string(kind), Kind: kind, Value: value, Rarity: RarityCommon}
}

// play steps e until ticks have run or the run ends, applying a card
// whenever a level-up is pending. check runs after every step.
func play(t *testing.T, e *Engine, ticks int, input func(i int) core.InputFrame, check func(Snapshot)) {
	t.Helper()
	picks := 0
	for i := 0; i < ticks; i++ {
		res := e.Step(input(i))
		if check != nil && res.Ran {
			check(e.Snapshot())
		}
		switch e.Phase() {
		case PhaseGameOver:
			return
		case PhaseLevelUp:
			kind := UpgradeKinds[picks%len(UpgradeKinds)]
			picks++
			require.NoError(t, e.ApplyUpgrade(cardOf(kind, 1)))
		}
	}
}
