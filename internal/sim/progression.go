package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// UpgradeRequest describes a pending level-up selection.
type UpgradeRequest struct {
	Level      int  // The level the player reaches once a card is applied
	BossReward bool // Triggered by a boss-drop orb
}

// Progression pulls in XP orbs, detects level-ups and applies upgrade cards.
type Progression struct {
	cfg config.ProgressionConfig
}

// NewProgression creates the progression system.
func NewProgression(cfg config.ProgressionConfig) *Progression {
	return &Progression{cfg: cfg}
}

// Update attracts and collects orbs. It returns a request when a level-up
// was triggered; orbs after the triggering one wait for the next tick.
func (g *Progression) Update(w *World) *UpgradeRequest {
	p := &w.Player
	for i := len(w.Orbs) - 1; i >= 0; i-- {
		orb := &w.Orbs[i]
		dist := core.Distance(orb.Pos, p.Pos)
		if dist < g.cfg.MagnetRadius {
			orb.Pos = orb.Pos.Add(p.Pos.Sub(orb.Pos).Scale(g.cfg.MagnetPull))
		}
		if dist >= g.cfg.PickupRadius {
			continue
		}

		p.XP += orb.Value * p.XPMultiplier
		boss := orb.IsBossDrop
		w.Orbs = append(w.Orbs[:i], w.Orbs[i+1:]...)

		if boss || p.XP >= p.XPToNextLevel {
			return &UpgradeRequest{Level: p.Level + 1, BossReward: boss}
		}
	}
	return nil
}

// Apply mutates the player with card and completes the level-up.
func (g *Progression) Apply(p *Player, card UpgradeCard) error {
	switch card.Kind {
	case UpgradeDamage:
		p.Damage += card.Value
	case UpgradeSpeed:
		p.Speed += card.Value
	case UpgradeHealth:
		p.MaxHP += card.Value
		p.HP = p.MaxHP
	case UpgradeProjectile:
		p.ProjectileCount += int(card.Value)
	case UpgradeCooldown:
		p.AttackCooldown = core.Max(g.cfg.MinCooldown, p.AttackCooldown-int(card.Value))
	case UpgradeElemental:
		if card.ResolveElement() == EffectBurn {
			p.BurnChance = 1
		} else {
			p.FreezeChance = 1
		}
	case UpgradeArea:
		p.PoisonDamage += card.Value
		p.PoisonRange += g.cfg.PoisonRangeStep
	case UpgradeMeteor:
		p.MeteorLevel += int(card.Value)
	case UpgradeXP:
		p.XPMultiplier += card.Value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, card.Kind)
	}

	p.Level++
	p.XP = 0
	p.XPToNextLevel *= g.cfg.XPGrowth
	return nil
}
