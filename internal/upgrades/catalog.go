package upgrades

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/sim"
)

// cardsPerOffer is how many cards one level-up presents.
const cardsPerOffer = 3

type template struct {
	name        string
	description string
	base        float64
}

var templates = map[sim.UpgradeKind]template{
	sim.UpgradeDamage:     {"Sharpened Edge", "Increases base damage.", 5},
	sim.UpgradeSpeed:      {"Swift Boots", "Increases movement speed.", 0.5},
	sim.UpgradeHealth:     {"Vital Surge", "Heals and raises max HP.", 20},
	sim.UpgradeProjectile: {"Split Shot", "Adds a projectile to every attack.", 1},
	sim.UpgradeCooldown:   {"Quick Draw", "Shortens the time between attacks.", 3},
	sim.UpgradeArea:       {"Toxic Cloud", "Poison aura that hurts nearby foes.", 5},
	sim.UpgradeMeteor:     {"Meteor Shower", "Meteors fall from the sky.", 1},
	sim.UpgradeXP:         {"Ancient Wisdom", "Gain more XP from monsters.", 0.1},
}

var rarityScale = map[sim.Rarity]float64{
	sim.RarityCommon:    1,
	sim.RarityRare:      1.5,
	sim.RarityEpic:      2,
	sim.RarityLegendary: 3,
	sim.RarityDivine:    4,
}

// Catalog builds cards offline from fixed templates.
// With a non-zero seed the offers are reproducible.
type Catalog struct {
	mu  sync.Mutex
	rng *core.SimpleRNG
}

// NewCatalog creates a catalog source. A zero seed uses the clock.
func NewCatalog(seed int64) *Catalog {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Catalog{rng: core.NewSimpleRNG(seed)}
}

func (c *Catalog) ID() string    { return "catalog" }
func (c *Catalog) Title() string { return "Offline Catalog" }

// Generate implements registry.Source. It picks distinct kinds.
func (c *Catalog) Generate(ctx context.Context, level int, bossReward bool) ([]sim.UpgradeCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kinds := append([]sim.UpgradeKind(nil), sim.UpgradeKinds...)
	for i := len(kinds) - 1; i > 0; i-- {
		j := c.rng.Intn(i + 1)
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}

	cards := make([]sim.UpgradeCard, 0, cardsPerOffer)
	for i, kind := range kinds[:cardsPerOffer] {
		rarity := c.rollRarity(bossReward)
		card := c.build(kind, rarity)
		card.ID = fmt.Sprintf("cat-%d-%d", level, i)
		cards = append(cards, card)
	}
	return cards, nil
}

func (c *Catalog) rollRarity(bossReward bool) sim.Rarity {
	roll := c.rng.Float64()
	if bossReward {
		if roll < 0.25 {
			return sim.RarityDivine
		}
		return sim.RarityLegendary
	}
	switch {
	case roll < 0.6:
		return sim.RarityCommon
	case roll < 0.9:
		return sim.RarityRare
	default:
		return sim.RarityEpic
	}
}

func (c *Catalog) build(kind sim.UpgradeKind, rarity sim.Rarity) sim.UpgradeCard {
	if kind == sim.UpgradeElemental {
		if c.rng.Float64() < 0.5 {
			return sim.UpgradeCard{Name: "Ember Rounds", Description: "Attacks set enemies on fire.",
				Kind: kind, Value: 1, Rarity: rarity, Element: sim.EffectBurn}
		}
		return sim.UpgradeCard{Name: "Frost Rounds", Description: "Attacks freeze enemies in place.",
			Kind: kind, Value: 1, Rarity: rarity, Element: sim.EffectFreeze}
	}

	t := templates[kind]
	return sim.UpgradeCard{
		Name:        t.name,
		Description: t.description,
		Kind:        kind,
		Value:       scaleValue(kind, t.base, rarity),
		Rarity:      rarity,
	}
}

// scaleValue multiplies a base value by the rarity scale.
// Count-like kinds stay whole numbers.
func scaleValue(kind sim.UpgradeKind, base float64, rarity sim.Rarity) float64 {
	v := base * rarityScale[rarity]
	switch kind {
	case sim.UpgradeProjectile, sim.UpgradeMeteor:
		if rarity == sim.RarityLegendary || rarity == sim.RarityDivine {
			return 2
		}
		return 1
	case sim.UpgradeCooldown:
		return math.Round(v)
	default:
		return math.Round(v*100) / 100
	}
}
