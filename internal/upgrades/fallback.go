// Package upgrades generates the cards offered on level-up.
//
// Sources (remote, offline catalog, static) are registered with the registry
// package; Service wraps any of them so that a request always ends with a
// non-empty set of cards.
package upgrades

import (
	"context"
	"errors"

	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/sim"
)

var (
	// ErrMissingCredential is returned by remote sources without an API key.
	ErrMissingCredential = errors.New("upgrades: missing API credential")
	// ErrEmptyResponse is returned when a source yields no usable card.
	ErrEmptyResponse = errors.New("upgrades: empty response")
)

var levelFallback = []sim.UpgradeCard{
	{ID: "f1", Name: "Toxic Cloud", Description: "Creates a poison area around you.", Kind: sim.UpgradeArea, Value: 5, Rarity: sim.RarityRare},
	{ID: "f2", Name: "Meteor Shower", Description: "Calls meteors down from the sky.", Kind: sim.UpgradeMeteor, Value: 1, Rarity: sim.RarityEpic},
	{ID: "f3", Name: "Ancient Wisdom", Description: "Gain more XP from monsters.", Kind: sim.UpgradeXP, Value: 0.2, Rarity: sim.RarityCommon},
}

var bossFallback = []sim.UpgradeCard{
	{ID: "fb1", Name: "Plague Nova", Description: "A wide, deadly poison aura.", Kind: sim.UpgradeArea, Value: 10, Rarity: sim.RarityLegendary},
	{ID: "fb2", Name: "Starfall", Description: "Meteors fall twice as often.", Kind: sim.UpgradeMeteor, Value: 2, Rarity: sim.RarityDivine},
	{ID: "fb3", Name: "Titan's Heart", Description: "Heals fully and raises max HP.", Kind: sim.UpgradeHealth, Value: 50, Rarity: sim.RarityLegendary},
}

// Fallback returns the fixed card set used when generation fails.
// The returned slice is a fresh copy.
func Fallback(bossReward bool) []sim.UpgradeCard {
	if bossReward {
		return append([]sim.UpgradeCard(nil), bossFallback...)
	}
	return append([]sim.UpgradeCard(nil), levelFallback...)
}

// Static always returns the fallback set.
type Static struct{}

func (Static) ID() string    { return "fallback" }
func (Static) Title() string { return "Static Fallback" }

// Generate implements registry.Source.
func (Static) Generate(_ context.Context, _ int, bossReward bool) ([]sim.UpgradeCard, error) {
	return Fallback(bossReward), nil
}

func init() {
	registry.Register("fallback", func(registry.SourceConfig) registry.Source { return Static{} })
	registry.Register("catalog", func(cfg registry.SourceConfig) registry.Source { return NewCatalog(cfg.Seed) })
	registry.Register("gemini", func(cfg registry.SourceConfig) registry.Source { return NewGemini(cfg.APIKey, cfg.Model) })
}
