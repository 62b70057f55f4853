package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Combat resolves auto-attacks, projectiles, passive areas and enemy deaths.
type Combat struct {
	cfg config.CombatConfig
	rng core.Source
}

// NewCombat creates the combat resolver.
func NewCombat(cfg config.CombatConfig, rng core.Source) *Combat {
	return &Combat{cfg: cfg, rng: rng}
}

// HitRadius returns the projectile collision radius for e.
func (c *Combat) HitRadius(e *Enemy) float64 {
	if e.IsBoss {
		return c.cfg.BossHitRadius
	}
	return c.cfg.EnemyRadius
}

// Update runs the combat stage: auto-attack, projectile motion, poison aura
// and meteor rain, in that order.
func (c *Combat) Update(w *World) {
	c.autoAttack(w)
	c.moveProjectiles(w)
	c.poisonAura(w)
	c.meteorRain(w)
}

// Hit applies damage to the enemy at index i and runs death handling when
// its hp drops to zero. It reports whether the enemy died.
func (c *Combat) Hit(w *World, i int, damage float64, color core.Color) bool {
	e := &w.Enemies[i]
	e.HP -= damage
	w.addText(e.Pos, fmt.Sprintf("%.0f", damage), color)
	if e.HP > 0 {
		return false
	}
	return c.Kill(w, e.ID)
}

// Kill removes the enemy with the given id and pays out its orb and score.
// Calling it for an enemy that is already gone does nothing and returns false.
func (c *Combat) Kill(w *World, id uint64) bool {
	i := w.findEnemy(id)
	if i < 0 {
		return false
	}
	e := w.Enemies[i]
	w.removeEnemy(i)

	orb := XPOrb{ID: w.newID(), Pos: e.Pos}
	if e.IsBoss {
		orb.Value = w.Player.XPToNextLevel
		orb.IsBossDrop = true
		w.Score += c.cfg.BossScore
		w.Bosses++
		w.addText(e.Pos, "BOSS DEFEATED!", core.ColorBrightYellow)
	} else {
		orb.Value = c.cfg.OrbBaseValue + float64(w.Player.Level)
		w.Score += c.cfg.EnemyScore
		w.addText(e.Pos, "+XP", core.ColorBrightCyan)
	}
	w.Orbs = append(w.Orbs, orb)
	w.Kills++
	return true
}

// nearest returns the index of the closest enemy strictly inside rangeLimit, or -1.
func nearest(w *World, from core.Vec2, rangeLimit float64) int {
	best, bestDist := -1, math.Inf(1)
	for i := range w.Enemies {
		d := core.Distance(from, w.Enemies[i].Pos)
		if d < rangeLimit && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (c *Combat) autoAttack(w *World) {
	p := &w.Player
	if w.Frame%uint64(p.AttackCooldown) != 0 { //#nosec G115 -- cooldown floor keeps it positive
		return
	}

	target := nearest(w, p.Pos, p.AttackRange)
	if target < 0 {
		return
	}

	base := core.AngleTo(p.Pos, w.Enemies[target].Pos)
	center := float64(p.ProjectileCount-1) / 2
	for slot := 0; slot < p.ProjectileCount; slot++ {
		angle := base + (float64(slot)-center)*c.cfg.SpreadAngle
		w.Projectiles = append(w.Projectiles, Projectile{
			ID:       w.newID(),
			Pos:      p.Pos,
			Velocity: core.FromAngle(angle, c.cfg.ProjectileSpeed),
			Damage:   p.Damage,
			Duration: c.cfg.ProjectileDuration,
			Effect:   c.rollEffect(p),
			Kind:     ProjectileStandard,
		})
	}
}

// rollEffect picks at most one element for a projectile; burn is tried first.
// A zero chance never draws from the random source.
func (c *Combat) rollEffect(p *Player) Effect {
	if p.BurnChance > 0 && c.rng.Float64() < p.BurnChance {
		return EffectBurn
	}
	if p.FreezeChance > 0 && c.rng.Float64() < p.FreezeChance {
		return EffectFreeze
	}
	return EffectNone
}

func (c *Combat) moveProjectiles(w *World) {
	for i := len(w.Projectiles) - 1; i >= 0; i-- {
		pr := &w.Projectiles[i]
		pr.Pos = pr.Pos.Add(pr.Velocity)
		pr.Duration--

		if pr.Duration <= 0 {
			if pr.Kind == ProjectileMeteor {
				c.blast(w, pr.Pos, pr.BlastRadius, pr.Damage)
			}
			w.Projectiles = append(w.Projectiles[:i], w.Projectiles[i+1:]...)
			continue
		}

		if pr.Kind == ProjectileMeteor {
			continue
		}
		if c.collide(w, pr) {
			w.Projectiles = append(w.Projectiles[:i], w.Projectiles[i+1:]...)
		}
	}
}

// collide applies pr to the first enemy it touches and reports whether it hit.
func (c *Combat) collide(w *World, pr *Projectile) bool {
	for j := range w.Enemies {
		e := &w.Enemies[j]
		if core.Distance(pr.Pos, e.Pos) >= c.HitRadius(e) {
			continue
		}

		switch pr.Effect {
		case EffectBurn:
			e.BurnTimer = c.cfg.BurnDuration
		case EffectFreeze:
			e.FreezeTimer = c.cfg.FreezeDuration
		}
		c.Hit(w, j, pr.Damage, core.ColorBrightWhite)
		return true
	}
	return false
}

func (c *Combat) blast(w *World, at core.Vec2, radius, damage float64) {
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		if core.Distance(at, w.Enemies[i].Pos) < radius {
			c.Hit(w, i, damage, core.ColorOrange)
		}
	}
}

func (c *Combat) poisonAura(w *World) {
	p := &w.Player
	if p.PoisonDamage <= 0 || w.Frame%uint64(c.cfg.PoisonInterval) != 0 { //#nosec G115 -- validated positive
		return
	}
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		if core.Distance(p.Pos, w.Enemies[i].Pos) <= p.PoisonRange {
			c.Hit(w, i, p.PoisonDamage, core.ColorGreen)
		}
	}
}

func (c *Combat) meteorRain(w *World) {
	p := &w.Player
	if p.MeteorLevel <= 0 {
		return
	}
	if c.rng.Float64() >= c.cfg.MeteorChance*float64(p.MeteorLevel) {
		return
	}

	// Uniform angle and radius inside the scatter disc.
	angle := c.rng.Float64() * 2 * math.Pi
	target := p.Pos.Add(core.FromAngle(angle, c.rng.Float64()*c.cfg.MeteorScatter))
	fall := c.cfg.MeteorFallSpeed * float64(c.cfg.MeteorDuration)
	w.Projectiles = append(w.Projectiles, Projectile{
		ID:          w.newID(),
		Pos:         target.Sub(core.V(0, fall)),
		Velocity:    core.V(0, c.cfg.MeteorFallSpeed),
		Damage:      p.Damage * c.cfg.MeteorDamageMult,
		Duration:    c.cfg.MeteorDuration,
		Effect:      EffectBurn,
		Kind:        ProjectileMeteor,
		BlastRadius: c.cfg.MeteorBlastRadius,
	})
}
