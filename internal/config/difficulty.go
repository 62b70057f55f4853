package config

// ApplySurvivorPreset modifies the config based on a difficulty preset.
// Normal (or an empty preset) keeps the loaded values.
func ApplySurvivorPreset(cfg *SurvivorConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.HP *= 1.5
		cfg.Player.Damage += 5
		cfg.Spawner.BaseInterval += cfg.Spawner.BaseInterval / 4
	case DifficultyHard:
		cfg.Player.HP *= 0.75
		cfg.Spawner.BaseInterval -= cfg.Spawner.BaseInterval / 4
		cfg.Spawner.EnemyDamageBase += 2
		cfg.Spawner.BossInterval = cfg.Spawner.BossInterval * 4 / 5
	}

	// Keep the cadence usable after scaling
	if cfg.Spawner.BaseInterval < cfg.Spawner.MinInterval {
		cfg.Spawner.BaseInterval = cfg.Spawner.MinInterval
	}
	if cfg.Spawner.BossInterval == 0 {
		cfg.Spawner.BossInterval = 1
	}
}
