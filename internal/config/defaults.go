package config

import (
	_ "embed"
)

//go:embed defaults/survivor.yaml
var defaultSurvivorYAML []byte

// DefaultSurvivorConfig returns the built-in configuration.
// It mirrors defaults/survivor.yaml and is used when the embedded file cannot be parsed.
func DefaultSurvivorConfig() SurvivorConfig {
	return SurvivorConfig{
		World: WorldConfig{
			Width:  2000,
			Height: 2000,
			Margin: 20,
			Decorations: DecorationsConfig{
				Pillars:     25,
				Grass:       600,
				Rocks:       50,
				FlowerRatio: 0.2,
			},
		},
		Player: PlayerConfig{
			HP:              100,
			Speed:           3,
			Damage:          10,
			AttackCooldown:  30,
			AttackRange:     200,
			XPToNextLevel:   50,
			ProjectileCount: 1,
			PoisonRange:     150,
			XPMultiplier:    1,
		},
		Spawner: SpawnerConfig{
			BaseInterval:     60,
			MinInterval:      10,
			IntervalPerLevel: 2,
			BossSlowdown:     3,
			RingRadius:       400,
			FlyingChance:     0.3,
			EnemyHPBase:      10,
			EnemyHPPerLevel:  5,
			EnemySpeedBase:   1,
			EnemySpeedLevel:  0.1,
			EnemyDamageBase:  5,
			BossInterval:     18000, // 5 minutes at 60fps
			BossOffset:       300,
			BossSpeed:        1.5,
			BossHPBase:       1000,
			BossHPPerLevel:   100,
			BossDamageBase:   30,
		},
		Combat: CombatConfig{
			EnemyRadius:        20,
			BossContactRadius:  50,
			BossHitRadius:      40,
			ContactInterval:    30,
			ProjectileSpeed:    6,
			ProjectileDuration: 120,
			SpreadAngle:        0.2,
			BurnDuration:       180,
			FreezeDuration:     120,
			BurnInterval:       30,
			BurnRatio:          0.2,
			FreezeSlow:         0.5,
			PoisonInterval:     60,
			MeteorChance:       0.005,
			MeteorScatter:      300,
			MeteorBlastRadius:  60,
			MeteorDuration:     30,
			MeteorFallSpeed:    10,
			MeteorDamageMult:   3,
			BossScore:          1000,
			EnemyScore:         10,
			OrbBaseValue:       10,
		},
		Progression: ProgressionConfig{
			MagnetRadius:    100,
			MagnetPull:      0.1,
			PickupRadius:    20,
			XPGrowth:        1.5,
			MinCooldown:     5,
			PoisonRangeStep: 20,
		},
		Feedback: FeedbackConfig{
			SummaryInterval: 10,
			TextLife:        40,
			TextRise:        0.5,
			TextOffset:      20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSurvivorYAML
}
