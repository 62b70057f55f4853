package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid config")

// LoadSurvivor loads the simulation configuration.
// Search order: customPath -> ~/.survivor/configs/survivor.yaml -> ./configs/survivor.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadSurvivor(customPath string) (SurvivorConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SurvivorConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SurvivorConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("survivor.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/survivor.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSurvivorYAML)
	if err != nil {
		return DefaultSurvivorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (SurvivorConfig, error) {
	cfg := DefaultSurvivorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SurvivorConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SurvivorConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the tick loop cannot run with.
// Every cadence is used as a modulus, so it must be positive.
func (c SurvivorConfig) Validate() error {
	positive := map[string]int{
		"player.attack_cooldown":     c.Player.AttackCooldown,
		"spawner.base_interval":      c.Spawner.BaseInterval,
		"spawner.min_interval":       c.Spawner.MinInterval,
		"spawner.boss_slowdown":      c.Spawner.BossSlowdown,
		"combat.contact_interval":    c.Combat.ContactInterval,
		"combat.burn_interval":       c.Combat.BurnInterval,
		"combat.poison_interval":     c.Combat.PoisonInterval,
		"progression.min_cooldown":   c.Progression.MinCooldown,
		"feedback.summary_interval":  c.Feedback.SummaryInterval,
		"combat.projectile_duration": c.Combat.ProjectileDuration,
		"combat.meteor_duration":     c.Combat.MeteorDuration,
		"feedback.text_life":         c.Feedback.TextLife,
		"player.projectile_count":    c.Player.ProjectileCount,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, name, v)
		}
	}
	if c.Spawner.BossInterval == 0 {
		return fmt.Errorf("%w: spawner.boss_interval must be positive", ErrInvalidConfig)
	}
	if c.World.Width <= 2*c.World.Margin || c.World.Height <= 2*c.World.Margin {
		return fmt.Errorf("%w: world %gx%g too small for margin %g", ErrInvalidConfig,
			c.World.Width, c.World.Height, c.World.Margin)
	}
	if c.Player.XPToNextLevel <= 0 {
		return fmt.Errorf("%w: player.xp_to_next_level must be positive", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survivor", "configs", filename)
}
