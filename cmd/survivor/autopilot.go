package main

import (
	"slices"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/sim"
)

// autopilot steers away from nearby enemies and toward loose orbs.
type autopilot struct {
	danger float64 // Enemies closer than this push the player away
	margin float64 // Distance from the arena edge that pushes back inward
}

func newAutopilot() autopilot {
	return autopilot{danger: 160, margin: 120}
}

// Steer returns a unit stick vector for the next tick, or zero to stand still.
func (a autopilot) Steer(s sim.Snapshot) core.Vec2 {
	p := s.Player.Pos

	var push core.Vec2
	for _, e := range s.Enemies {
		d := core.Distance(p, e.Pos)
		if d >= a.danger || d == 0 {
			continue
		}
		w := (a.danger - d) / a.danger
		if e.IsBoss {
			w *= 2
		}
		push = push.Add(p.Sub(e.Pos).Normalize().Scale(w))
	}

	switch {
	case p.X < a.margin:
		push.X++
	case p.X > s.Width-a.margin:
		push.X--
	}
	switch {
	case p.Y < a.margin:
		push.Y++
	case p.Y > s.Height-a.margin:
		push.Y--
	}

	if push.IsZero() {
		best := -1.0
		var target core.Vec2
		for _, o := range s.Orbs {
			if d := core.Distance(p, o.Pos); best < 0 || d < best {
				best, target = d, o.Pos
			}
		}
		if best > 0 {
			push = target.Sub(p)
		}
	}
	return push.Normalize()
}

// cardPriority is the autopilot's preference order, best first.
var cardPriority = []sim.UpgradeKind{
	sim.UpgradeProjectile,
	sim.UpgradeDamage,
	sim.UpgradeCooldown,
	sim.UpgradeElemental,
	sim.UpgradeMeteor,
	sim.UpgradeArea,
	sim.UpgradeHealth,
	sim.UpgradeSpeed,
	sim.UpgradeXP,
}

// rankCards orders cards by preference. Health comes first when the
// player is below half health.
func rankCards(cards []sim.UpgradeCard, p sim.Player) []sim.UpgradeCard {
	rank := func(k sim.UpgradeKind) int {
		if k == sim.UpgradeHealth && p.HP < p.MaxHP/2 {
			return -1
		}
		if i := slices.Index(cardPriority, k); i >= 0 {
			return i
		}
		return len(cardPriority)
	}

	out := slices.Clone(cards)
	slices.SortStableFunc(out, func(a, b sim.UpgradeCard) int {
		return rank(a.Kind) - rank(b.Kind)
	})
	return out
}
