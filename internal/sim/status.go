package sim

import (
	"math"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// StatusEngine ticks burn and freeze timers and sets each enemy's movement
// speed for the current frame.
type StatusEngine struct {
	cfg config.CombatConfig
}

// NewStatusEngine creates a status engine.
func NewStatusEngine(cfg config.CombatConfig) *StatusEngine {
	return &StatusEngine{cfg: cfg}
}

// BurnDamage returns the damage of one burn tick for the given player damage.
func (s *StatusEngine) BurnDamage(playerDamage float64) float64 {
	return math.Ceil(playerDamage * s.cfg.BurnRatio)
}

// Update runs the status stage. Enemies killed by burn are removed through
// the combat resolver and skip the rest of this stage.
func (s *StatusEngine) Update(w *World, combat *Combat) {
	burnTick := w.Frame%uint64(s.cfg.BurnInterval) == 0 //#nosec G115 -- validated positive

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := &w.Enemies[i]
		e.moveSpeed = e.Speed

		if e.FreezeTimer > 0 {
			e.FreezeTimer--
			e.moveSpeed *= s.cfg.FreezeSlow
		}

		if e.BurnTimer > 0 {
			e.BurnTimer--
			if burnTick {
				if combat.Hit(w, i, s.BurnDamage(w.Player.Damage), core.ColorOrange) {
					continue
				}
			}
		}
	}
}
