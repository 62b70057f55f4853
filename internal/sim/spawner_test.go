package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

func TestSpawnInterval(t *testing.T) {
	w := NewWorld(quietConfig(), &seqSource{})
	s := NewSpawner(config.DefaultSurvivorConfig().Spawner, w, &seqSource{})

	tests := []struct {
		level     int
		bossAlive bool
		expected  int
	}{
		{0, false, 60},
		{1, false, 58},
		{10, false, 40},
		{25, false, 10},
		{40, false, 10},
		{1, true, 174},
		{40, true, 30},
	}

	for _, tc := range tests {
		if got := s.Interval(tc.level, tc.bossAlive); got != tc.expected {
			t.Errorf("Interval(%d, %v) = %d, expected %d", tc.level, tc.bossAlive, got, tc.expected)
		}
	}
}

func TestRegularSpawn(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawner = config.DefaultSurvivorConfig().Spawner
	e := newPlaying(t, cfg, &seqSource{vals: []float64{0}})
	w := e.world
	w.Frame = 57

	e.Step(idle())

	require.Len(t, w.Enemies, 1)
	en := w.Enemies[0]
	assert.Equal(t, KindBat, en.Kind)
	assert.False(t, en.IsBoss)
	assert.Equal(t, 15.0, en.HP)
	assert.Equal(t, 6.0, en.Damage)
	assert.InDelta(t, 1.1, en.Speed, 1e-9)
	// Spawned 400 to the right, then one step of seeking.
	assert.InDelta(t, w.Player.Pos.X+400-1.1, en.Pos.X, 1e-9)
}

func TestRegularSpawnOffCadence(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawner = config.DefaultSurvivorConfig().Spawner
	e := newPlaying(t, cfg, &seqSource{vals: []float64{0}})

	for i := 0; i < 57; i++ {
		e.Step(idle())
	}
	assert.Empty(t, e.world.Enemies)
}

func TestSpawnOutsideWorldIsSkipped(t *testing.T) {
	cfg := quietConfig()
	cfg.Spawner = config.DefaultSurvivorConfig().Spawner
	src := &seqSource{vals: []float64{0.5}}
	e := newPlaying(t, cfg, src)
	w := e.world
	w.Player.Pos = core.V(30, 1000)
	w.Frame = 57

	e.Step(idle())

	assert.Empty(t, w.Enemies)
	assert.Equal(t, 1, src.draws, "no retry and no kind roll")
}

func TestBossSchedule(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	w.GameTime = 17998

	e.Step(idle())
	assert.Empty(t, w.Enemies, "game time 17999 is not a multiple")

	e.Step(idle())
	require.Len(t, w.Enemies, 1)
	boss := w.Enemies[0]
	assert.True(t, boss.IsBoss)
	assert.Equal(t, KindBoss, boss.Kind)
	assert.Equal(t, 1100.0, boss.HP)
	assert.Equal(t, 31.0, boss.Damage)
	assert.Equal(t, 1.5, boss.Speed)
	assert.InDelta(t, w.Player.Pos.X+300-1.5, boss.Pos.X, 1e-9)
	assert.True(t, w.BossAlive())

	var announced bool
	for _, tx := range w.Texts {
		announced = announced || tx.Text == "BOSS INCOMING!"
	}
	assert.True(t, announced)

	e.Step(idle())
	assert.Len(t, w.Enemies, 1, "one boss per multiple")
}

func TestBossSpawnClampedToWorld(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	w.Player.Pos = core.V(1900, 1000)
	w.GameTime = 17999

	e.Step(idle())
	require.Len(t, w.Enemies, 1)
	assert.LessOrEqual(t, w.Enemies[0].Pos.X, 1980.0)
}

func TestFreezeHalvesSpeedForTheTick(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	start := core.V(1500, 1000)
	id := placeEnemy(w, start, 100)
	en := enemyByID(w, id)
	en.Speed = 2
	en.FreezeTimer = 2

	e.Step(idle())
	en = enemyByID(w, id)
	assert.InDelta(t, start.X-1, en.Pos.X, 1e-9)
	assert.Equal(t, 1, en.FreezeTimer)

	e.Step(idle())
	e.Step(idle())
	en = enemyByID(w, id)
	assert.InDelta(t, start.X-1-1-2, en.Pos.X, 1e-9, "full speed once the timer runs out")
	assert.Zero(t, en.FreezeTimer)
}

func TestBurnTicksOnInterval(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	id := placeEnemy(w, core.V(1500, 1000), 100)
	enemyByID(w, id).BurnTimer = 100
	w.Frame = 28

	e.Step(idle())
	assert.Equal(t, 100.0, enemyByID(w, id).HP)
	assert.Equal(t, 99, enemyByID(w, id).BurnTimer)

	e.Step(idle())
	assert.Equal(t, 98.0, enemyByID(w, id).HP, "ceil(20% of 10)")
	assert.Equal(t, 98, enemyByID(w, id).BurnTimer)
}

func TestBurnKillPaysOut(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	w.Player.Damage = 12
	at := core.V(1500, 1000)
	id := placeEnemy(w, at, 3)
	enemyByID(w, id).BurnTimer = 10
	w.Frame = 29

	e.Step(idle())

	assert.Nil(t, enemyByID(w, id))
	require.Len(t, w.Orbs, 1)
	assert.Equal(t, at, w.Orbs[0].Pos, "killed before it could move")
	assert.Equal(t, 10, w.Score)
}

func TestContactDamageThrottle(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	id := placeEnemy(w, w.Player.Pos.Add(core.V(5, 0)), 1e6)
	enemyByID(w, id).Damage = 6

	for i := 1; i < 30; i++ {
		e.Step(idle())
	}
	assert.Equal(t, 100.0, w.Player.HP)

	e.Step(idle())
	assert.Equal(t, 94.0, w.Player.HP)
}

func TestFloatingTextsAge(t *testing.T) {
	w := NewWorld(quietConfig(), &seqSource{})
	w.addText(core.V(100, 100), "hi", core.ColorWhite)
	require.Len(t, w.Texts, 1)
	assert.Equal(t, 80.0, w.Texts[0].Pos.Y)

	for i := 0; i < 39; i++ {
		w.ageTexts()
	}
	require.Len(t, w.Texts, 1)
	assert.Equal(t, 1, w.Texts[0].Life)
	assert.InDelta(t, 80-39*0.5, w.Texts[0].Pos.Y, 1e-9)

	w.ageTexts()
	assert.Empty(t, w.Texts)
}

func TestDecorationsGeneratedOnce(t *testing.T) {
	cfg := config.DefaultSurvivorConfig()
	w := NewWorld(cfg, core.NewSimpleRNG(3))

	dc := cfg.World.Decorations
	require.Len(t, w.Decorations, dc.Pillars+dc.Grass+dc.Rocks)
	counts := map[DecorationKind]int{}
	for _, d := range w.Decorations {
		counts[d.Kind]++
		assert.True(t, d.Pos.X >= 0 && d.Pos.X < cfg.World.Width)
		assert.True(t, d.Pos.Y >= 0 && d.Pos.Y < cfg.World.Height)
		if d.Kind == DecorPillar {
			assert.True(t, d.Scale >= 3 && d.Scale < 4)
		}
	}
	assert.Equal(t, dc.Pillars, counts[DecorPillar])
	assert.Equal(t, dc.Rocks, counts[DecorRock])
	assert.Equal(t, dc.Grass, counts[DecorGrass]+counts[DecorFlower])
}
