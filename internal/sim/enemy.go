package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// EnemyAI moves enemies straight at the player and applies contact damage.
type EnemyAI struct {
	cfg config.CombatConfig
}

// NewEnemyAI creates the seek stage.
func NewEnemyAI(cfg config.CombatConfig) *EnemyAI {
	return &EnemyAI{cfg: cfg}
}

// ContactRadius returns the collision radius between e and the player.
func (a *EnemyAI) ContactRadius(e *Enemy) float64 {
	if e.IsBoss {
		return a.cfg.BossContactRadius
	}
	return a.cfg.EnemyRadius
}

// Update runs the seek and contact stage.
func (a *EnemyAI) Update(w *World) {
	p := &w.Player
	contactTick := w.Frame%uint64(a.cfg.ContactInterval) == 0 //#nosec G115 -- validated positive

	for i := range w.Enemies {
		e := &w.Enemies[i]
		angle := core.AngleTo(e.Pos, p.Pos)
		e.Pos = w.Bounds.Clamp(e.Pos.Add(core.FromAngle(angle, e.moveSpeed)))

		if contactTick && core.Distance(e.Pos, p.Pos) < a.ContactRadius(e) {
			p.HP -= e.Damage
			w.addText(p.Pos, fmt.Sprintf("-%.0f", e.Damage), core.ColorRed)
		}
	}
}
