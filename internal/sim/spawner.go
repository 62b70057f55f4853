package sim

import (
	"math"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Spawner introduces regular enemies on a level-scaled cadence and a boss on
// a fixed game-time schedule.
type Spawner struct {
	cfg    config.SpawnerConfig
	rng    core.Source
	bounds core.Bounds // Full world rectangle for placement checks
}

// NewSpawner creates a spawner for a world of the given size.
func NewSpawner(cfg config.SpawnerConfig, w *World, rng core.Source) *Spawner {
	return &Spawner{
		cfg:    cfg,
		rng:    rng,
		bounds: core.NewBounds(w.Width, w.Height, 0),
	}
}

// Interval returns the number of frames between regular spawns.
func (s *Spawner) Interval(level int, bossAlive bool) int {
	interval := core.Max(s.cfg.MinInterval, s.cfg.BaseInterval-s.cfg.IntervalPerLevel*level)
	if bossAlive {
		interval *= s.cfg.BossSlowdown
	}
	return interval
}

// Update runs the spawn stage for one tick.
func (s *Spawner) Update(w *World) {
	if w.GameTime > 0 && w.GameTime%s.cfg.BossInterval == 0 {
		s.spawnBoss(w)
	}

	interval := s.Interval(w.Player.Level, w.BossAlive())
	if w.Frame%uint64(interval) == 0 { //#nosec G115 -- interval is validated positive
		s.spawnRegular(w)
	}
}

func (s *Spawner) spawnBoss(w *World) {
	level := float64(w.Player.Level)
	// Offset to the player's right, pulled back inside the arena near the east wall.
	pos := w.Bounds.Clamp(w.Player.Pos.Add(core.V(s.cfg.BossOffset, 0)))
	hp := s.cfg.BossHPBase + s.cfg.BossHPPerLevel*level

	w.Enemies = append(w.Enemies, Enemy{
		ID:     w.newID(),
		Pos:    pos,
		HP:     hp,
		MaxHP:  hp,
		Speed:  s.cfg.BossSpeed,
		Damage: s.cfg.BossDamageBase + level,
		Kind:   KindBoss,
		IsBoss: true,
	})
	w.addText(w.Player.Pos, "BOSS INCOMING!", core.ColorBrightRed)
}

// spawnRegular places one enemy on the ring around the player.
// Placements outside the world are skipped without retry.
func (s *Spawner) spawnRegular(w *World) {
	angle := s.rng.Float64() * 2 * math.Pi
	pos := w.Player.Pos.Add(core.FromAngle(angle, s.cfg.RingRadius))
	if !s.bounds.ContainsOpen(pos) {
		return
	}

	kind := KindSlime
	if s.rng.Float64() < s.cfg.FlyingChance {
		kind = KindBat
	}

	level := float64(w.Player.Level)
	hp := s.cfg.EnemyHPBase + s.cfg.EnemyHPPerLevel*level
	w.Enemies = append(w.Enemies, Enemy{
		ID:     w.newID(),
		Pos:    pos,
		HP:     hp,
		MaxHP:  hp,
		Speed:  s.cfg.EnemySpeedBase + s.cfg.EnemySpeedLevel*level,
		Damage: s.cfg.EnemyDamageBase + level,
		Kind:   kind,
	})
}
