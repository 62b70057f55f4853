package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

func TestProjectileKillsEnemy(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	at := w.Player.Pos.Add(core.V(150, 0))
	placeEnemy(w, at, 10)
	w.Projectiles = append(w.Projectiles, Projectile{
		ID:       w.newID(),
		Pos:      at.Sub(core.V(6, 0)),
		Velocity: core.V(6, 0),
		Damage:   15,
		Duration: 100,
		Kind:     ProjectileStandard,
	})

	e.Step(idle())

	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Projectiles, "standard projectiles do not pierce")
	require.Len(t, w.Orbs, 1)
	assert.Equal(t, 11.0, w.Orbs[0].Value, "10 + level")
	assert.Equal(t, at, w.Orbs[0].Pos)
	assert.False(t, w.Orbs[0].IsBossDrop)
	assert.Equal(t, 10, w.Score)
}

func TestProjectileHitsFirstEnemyOnly(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	at := w.Player.Pos.Add(core.V(150, 0))
	first := placeEnemy(w, at, 100)
	second := placeEnemy(w, at.Add(core.V(2, 0)), 100)
	w.Projectiles = append(w.Projectiles, Projectile{
		ID: w.newID(), Pos: at, Damage: 15, Duration: 100, Kind: ProjectileStandard, Effect: EffectFreeze,
	})

	e.Step(idle())

	assert.Equal(t, 85.0, enemyByID(w, first).HP)
	assert.Equal(t, 120, enemyByID(w, first).FreezeTimer)
	assert.Equal(t, 100.0, enemyByID(w, second).HP)
	assert.Empty(t, w.Projectiles)
}

func TestKillIsIdempotent(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	id := placeEnemy(w, core.V(500, 500), 10)

	assert.True(t, e.combat.Kill(w, id))
	assert.False(t, e.combat.Kill(w, id))

	assert.Len(t, w.Orbs, 1)
	assert.Equal(t, 10, w.Score)
	assert.Equal(t, 1, w.Kills)
}

func TestBossDeathPayout(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	id := placeEnemy(w, core.V(500, 500), 10)
	boss := enemyByID(w, id)
	boss.IsBoss = true
	boss.Kind = KindBoss

	require.True(t, e.combat.Kill(w, id))
	require.Len(t, w.Orbs, 1)
	assert.True(t, w.Orbs[0].IsBossDrop)
	assert.Equal(t, w.Player.XPToNextLevel, w.Orbs[0].Value)
	assert.Equal(t, 1000, w.Score)
	assert.Equal(t, 1, w.Bosses)
}

func TestAutoAttackFan(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	w.Player.ProjectileCount = 3
	placeEnemy(w, w.Player.Pos.Add(core.V(100, 0)), 100)
	w.Frame = 29

	e.Step(idle())

	require.Len(t, w.Projectiles, 3)
	for i, expected := range []float64{-0.2, 0, 0.2} {
		v := w.Projectiles[i].Velocity
		assert.InDelta(t, expected, math.Atan2(v.Y, v.X), 1e-9, "slot %d", i)
		assert.InDelta(t, 6, v.Len(), 1e-9)
		assert.Equal(t, 10.0, w.Projectiles[i].Damage)
	}
}

func TestAutoAttackNeedsTargetInRange(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	placeEnemy(w, w.Player.Pos.Add(core.V(200, 0)), 100)
	w.Frame = 29

	e.Step(idle())
	assert.Empty(t, w.Projectiles, "range is exclusive")
}

func TestAutoAttackTargetsNearest(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	placeEnemy(w, w.Player.Pos.Add(core.V(150, 0)), 100)
	placeEnemy(w, w.Player.Pos.Add(core.V(0, -80)), 100)
	w.Frame = 29

	e.Step(idle())

	require.Len(t, w.Projectiles, 1)
	v := w.Projectiles[0].Velocity
	assert.InDelta(t, -math.Pi/2, math.Atan2(v.Y, v.X), 1e-9)
}

func TestRollEffect(t *testing.T) {
	tests := []struct {
		name          string
		burn, freeze  float64
		vals          []float64
		expected      Effect
		expectedDraws int
	}{
		{"no chances draw nothing", 0, 0, []float64{0}, EffectNone, 0},
		{"burn wins over freeze", 1, 1, []float64{0}, EffectBurn, 1},
		{"burn miss falls to freeze", 0.5, 0.5, []float64{0.7, 0.1}, EffectFreeze, 2},
		{"both miss", 0.5, 0.5, []float64{0.9}, EffectNone, 2},
		{"freeze only", 0, 1, []float64{0.3}, EffectFreeze, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &seqSource{vals: tc.vals}
			c := NewCombat(quietConfig().Combat, src)
			p := Player{BurnChance: tc.burn, FreezeChance: tc.freeze}

			assert.Equal(t, tc.expected, c.rollEffect(&p))
			assert.Equal(t, tc.expectedDraws, src.draws)
		})
	}
}

func TestPoisonAura(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	w.Player.PoisonDamage = 5
	edge := placeEnemy(w, w.Player.Pos.Add(core.V(150, 0)), 100)
	outside := placeEnemy(w, w.Player.Pos.Add(core.V(0, 151)), 100)
	dying := placeEnemy(w, w.Player.Pos.Add(core.V(-40, 0)), 5)

	w.Frame = 58
	e.Step(idle())
	assert.Equal(t, 100.0, enemyByID(w, edge).HP, "poison waits for its interval")

	e.Step(idle())
	assert.Equal(t, 95.0, enemyByID(w, edge).HP, "range is inclusive")
	assert.Equal(t, 100.0, enemyByID(w, outside).HP)
	assert.Nil(t, enemyByID(w, dying))
	assert.Len(t, w.Orbs, 1)
}

func TestMeteorBlast(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	at := core.V(1500, 1000)
	killed := placeEnemy(w, at.Add(core.V(30, 0)), 20)
	hurt := placeEnemy(w, at.Add(core.V(-40, 0)), 100)
	spared := placeEnemy(w, at.Add(core.V(0, 60)), 100)
	w.Projectiles = append(w.Projectiles, Projectile{
		ID: w.newID(), Pos: at, Damage: 30, Duration: 1, Kind: ProjectileMeteor, BlastRadius: 60, Effect: EffectBurn,
	})

	e.Step(idle())

	assert.Nil(t, enemyByID(w, killed))
	assert.Equal(t, 70.0, enemyByID(w, hurt).HP)
	assert.Zero(t, enemyByID(w, hurt).BurnTimer, "blasts do not ignite")
	assert.Equal(t, 100.0, enemyByID(w, spared).HP, "radius is exclusive")
	assert.Empty(t, w.Projectiles)
}

func TestMeteorsPassThroughEnemies(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{})
	w := e.world
	at := core.V(1500, 1000)
	id := placeEnemy(w, at, 100)
	w.Projectiles = append(w.Projectiles, Projectile{
		ID: w.newID(), Pos: at, Damage: 30, Duration: 10, Kind: ProjectileMeteor, BlastRadius: 60,
	})

	e.Step(idle())
	assert.Equal(t, 100.0, enemyByID(w, id).HP)
	assert.Len(t, w.Projectiles, 1)
}

func TestMeteorLevelZeroNeverSpawns(t *testing.T) {
	src := &seqSource{vals: []float64{0}}
	e := newPlaying(t, quietConfig(), src)

	for i := 0; i < 500; i++ {
		e.Step(idle())
	}
	assert.Empty(t, e.world.Projectiles)
	assert.Zero(t, src.draws)
}

func TestMeteorRainSpawns(t *testing.T) {
	e := newPlaying(t, quietConfig(), &seqSource{vals: []float64{0, 0, 1}})
	w := e.world
	w.Player.MeteorLevel = 1

	e.Step(idle())

	require.Len(t, w.Projectiles, 1)
	m := w.Projectiles[0]
	assert.Equal(t, ProjectileMeteor, m.Kind)
	assert.Equal(t, EffectBurn, m.Effect)
	assert.Equal(t, 30.0, m.Damage)
	assert.Equal(t, 60.0, m.BlastRadius)
	assert.Equal(t, 30, m.Duration)

	// Angle 0 at full radius targets player + (300, 0); the meteor starts 300 above it.
	target := w.Player.Pos.Add(core.V(300, 0))
	assert.InDelta(t, target.X, m.Pos.X, 1e-9)
	assert.InDelta(t, target.Y-300, m.Pos.Y, 1e-9)
}

func TestMeteorTargetStaysInScatterRadius(t *testing.T) {
	for _, draw := range [][2]float64{{0.125, 1}, {0.375, 1}, {0.625, 0.99}, {0.875, 1}, {0.3, 0.5}} {
		e := newPlaying(t, quietConfig(), &seqSource{vals: []float64{0, draw[0], draw[1]}})
		w := e.world
		w.Player.MeteorLevel = 1

		e.Step(idle())

		require.Len(t, w.Projectiles, 1)
		m := w.Projectiles[0]
		target := m.Pos.Add(m.Velocity.Scale(float64(m.Duration)))
		dist := core.Distance(w.Player.Pos, target)
		assert.LessOrEqual(t, dist, 300+1e-9, "angle %.3f radius %.2f", draw[0], draw[1])
		assert.InDelta(t, draw[1]*300, dist, 1e-6)
	}
}
