package sim

import (
	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// World is the entity registry. It owns every live entity and is mutated
// only by the Engine and the stage functions it calls during a tick.
type World struct {
	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
	Orbs        []XPOrb
	Texts       []FloatingText
	Decorations []Decoration

	Width, Height float64
	Bounds        core.Bounds // Inset clamp rectangle

	Frame    uint64 // Drives every cadence
	GameTime uint64 // Drives the boss schedule and the clock
	Score    int
	Kills    int
	Bosses   int // Bosses defeated

	nextID uint64
	fx     config.FeedbackConfig
}

// NewWorld creates a world with the player centered and decorations scattered.
func NewWorld(cfg config.SurvivorConfig, rng core.Source) *World {
	w := &World{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
		Bounds: core.NewBounds(cfg.World.Width, cfg.World.Height, cfg.World.Margin),
		fx:     cfg.Feedback,
	}
	w.Player = newPlayer(cfg.Player, core.V(cfg.World.Width/2, cfg.World.Height/2))
	w.Decorations = w.scatter(cfg.World.Decorations, rng)
	return w
}

func newPlayer(pc config.PlayerConfig, pos core.Vec2) Player {
	return Player{
		Pos:             pos,
		HP:              pc.HP,
		MaxHP:           pc.HP,
		Speed:           pc.Speed,
		Damage:          pc.Damage,
		AttackCooldown:  pc.AttackCooldown,
		AttackRange:     pc.AttackRange,
		Level:           1,
		XPToNextLevel:   pc.XPToNextLevel,
		ProjectileCount: pc.ProjectileCount,
		PoisonRange:     pc.PoisonRange,
		XPMultiplier:    pc.XPMultiplier,
	}
}

func (w *World) scatter(dc config.DecorationsConfig, rng core.Source) []Decoration {
	decor := make([]Decoration, 0, dc.Pillars+dc.Grass+dc.Rocks)
	place := func(kind DecorationKind, scale float64) {
		pos := core.V(rng.Float64()*w.Width, rng.Float64()*w.Height)
		decor = append(decor, Decoration{ID: w.newID(), Pos: pos, Kind: kind, Scale: scale})
	}

	for i := 0; i < dc.Pillars; i++ {
		place(DecorPillar, 3+rng.Float64())
	}
	for i := 0; i < dc.Grass; i++ {
		kind := DecorGrass
		if rng.Float64() < dc.FlowerRatio {
			kind = DecorFlower
		}
		place(kind, 1)
	}
	for i := 0; i < dc.Rocks; i++ {
		place(DecorRock, 1+rng.Float64())
	}
	return decor
}

func (w *World) newID() uint64 {
	w.nextID++
	return w.nextID
}

// findEnemy returns the index of the enemy with the given id, or -1.
func (w *World) findEnemy(id uint64) int {
	for i := range w.Enemies {
		if w.Enemies[i].ID == id {
			return i
		}
	}
	return -1
}

func (w *World) removeEnemy(i int) {
	w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
}

// BossAlive reports whether any boss is in the registry.
func (w *World) BossAlive() bool {
	for i := range w.Enemies {
		if w.Enemies[i].IsBoss {
			return true
		}
	}
	return false
}

// addText emits a floating text slightly above pos.
func (w *World) addText(pos core.Vec2, text string, color core.Color) {
	w.Texts = append(w.Texts, FloatingText{
		ID:    w.newID(),
		Pos:   core.V(pos.X, pos.Y-w.fx.TextOffset),
		Text:  text,
		Color: color,
		Life:  w.fx.TextLife,
	})
}

// ageTexts drifts floating texts upward and drops expired ones.
func (w *World) ageTexts() {
	kept := w.Texts[:0]
	for _, t := range w.Texts {
		t.Life--
		if t.Life <= 0 {
			continue
		}
		t.Pos.Y -= w.fx.TextRise
		kept = append(kept, t)
	}
	w.Texts = kept
}
