// Package sim implements the survivor simulation: a fixed-update,
// single-threaded world where a player auto-attacks waves of enemies,
// collects experience and picks upgrades.
//
// The package is pure logic. It never logs, sleeps or touches the terminal;
// the host drives it one Step per frame and renders Snapshots.
package sim

import (
	"strings"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// EnemyKind is the visual flavor of an enemy.
// Regular kinds share stats; only bosses differ.
type EnemyKind string

const (
	KindSlime EnemyKind = "slime" // Slow ground enemy
	KindBat   EnemyKind = "bat"   // Fast flying enemy
	KindBoss  EnemyKind = "boss"
)

// Effect is an elemental status carried by a projectile or granted by a card.
type Effect string

const (
	EffectNone   Effect = ""
	EffectBurn   Effect = "burn"
	EffectFreeze Effect = "freeze"
)

// ProjectileKind distinguishes direct hits from delayed area impacts.
type ProjectileKind string

const (
	ProjectileStandard ProjectileKind = "standard"
	ProjectileMeteor   ProjectileKind = "meteor"
)

// Player is the single player record. It is mutated in place and never destroyed.
type Player struct {
	Pos             core.Vec2
	HP              float64
	MaxHP           float64
	Speed           float64
	Damage          float64
	AttackCooldown  int // Frames between auto-attacks
	AttackRange     float64
	Level           int
	XP              float64
	XPToNextLevel   float64
	ProjectileCount int
	BurnChance      float64 // 0 to 1
	FreezeChance    float64 // 0 to 1
	PoisonDamage    float64 // 0 = aura inactive
	PoisonRange     float64
	MeteorLevel     int // 0 = meteor rain inactive
	XPMultiplier    float64
}

// Enemy is a hostile unit seeking the player.
type Enemy struct {
	ID          uint64
	Pos         core.Vec2
	HP          float64
	MaxHP       float64
	Speed       float64
	Damage      float64
	Kind        EnemyKind
	IsBoss      bool
	FreezeTimer int // Frames left, 0 = inactive
	BurnTimer   int // Frames left, 0 = inactive

	// moveSpeed is the speed for the current tick after status effects.
	moveSpeed float64
}

// Projectile is a moving attack. Standard projectiles hit the first enemy
// they touch; meteors always fly their full duration and then detonate.
type Projectile struct {
	ID          uint64
	Pos         core.Vec2
	Velocity    core.Vec2
	Damage      float64
	Duration    int // Frames to live
	Effect      Effect
	Kind        ProjectileKind
	BlastRadius float64 // Meteors only
}

// XPOrb is experience dropped by a dead enemy.
type XPOrb struct {
	ID         uint64
	Pos        core.Vec2
	Value      float64
	IsBossDrop bool
}

// FloatingText is cosmetic feedback for damage and events.
type FloatingText struct {
	ID    uint64
	Pos   core.Vec2
	Text  string
	Color core.Color
	Life  int // Frames left
}

// DecorationKind is the prop type of a decoration.
type DecorationKind string

const (
	DecorPillar DecorationKind = "pillar"
	DecorRock   DecorationKind = "rock"
	DecorGrass  DecorationKind = "grass"
	DecorFlower DecorationKind = "flower"
)

// Decoration is an immutable prop generated once at start.
type Decoration struct {
	ID    uint64
	Pos   core.Vec2
	Kind  DecorationKind
	Scale float64
}

// UpgradeKind is the effect an upgrade card applies to the player.
type UpgradeKind string

const (
	UpgradeDamage     UpgradeKind = "DAMAGE"
	UpgradeSpeed      UpgradeKind = "SPEED"
	UpgradeHealth     UpgradeKind = "HEALTH"
	UpgradeProjectile UpgradeKind = "PROJECTILE"
	UpgradeCooldown   UpgradeKind = "COOLDOWN"
	UpgradeElemental  UpgradeKind = "ELEMENTAL"
	UpgradeArea       UpgradeKind = "AREA"
	UpgradeMeteor     UpgradeKind = "METEOR"
	UpgradeXP         UpgradeKind = "XP"
)

// UpgradeKinds lists every kind in display order.
var UpgradeKinds = []UpgradeKind{
	UpgradeDamage, UpgradeSpeed, UpgradeHealth, UpgradeProjectile, UpgradeCooldown,
	UpgradeElemental, UpgradeArea, UpgradeMeteor, UpgradeXP,
}

// Valid reports whether k is one of the known kinds.
func (k UpgradeKind) Valid() bool {
	for _, known := range UpgradeKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Rarity is the tier of an upgrade card.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityDivine    Rarity = "divine"
)

// Rarities lists every tier from lowest to highest.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityDivine}

// Valid reports whether r is one of the known tiers.
func (r Rarity) Valid() bool {
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}

// UpgradeCard is one choice offered on level-up.
type UpgradeCard struct {
	ID          string
	Name        string
	Description string
	Kind        UpgradeKind
	Value       float64
	Rarity      Rarity
	Element     Effect // ELEMENTAL cards only
}

// ResolveElement returns the element an ELEMENTAL card grants.
// Cards without an explicit element are classified by their wording.
func (c UpgradeCard) ResolveElement() Effect {
	if c.Element == EffectBurn || c.Element == EffectFreeze {
		return c.Element
	}
	text := strings.ToLower(c.Name + " " + c.Description)
	for _, word := range []string{"fire", "burn", "flame", "fogo", "queimadura"} {
		if strings.Contains(text, word) {
			return EffectBurn
		}
	}
	return EffectFreeze
}
