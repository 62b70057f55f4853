// Package config provides YAML-based configuration loading and difficulty
// presets for the survivor simulation.
package config

// SurvivorConfig contains every tunable of the simulation.
type SurvivorConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Combat      CombatConfig      `yaml:"combat"`
	Progression ProgressionConfig `yaml:"progression"`
	Feedback    FeedbackConfig    `yaml:"feedback"`
}

// WorldConfig defines the arena and its decorations.
type WorldConfig struct {
	Width       float64           `yaml:"width"`
	Height      float64           `yaml:"height"`
	Margin      float64           `yaml:"margin"` // Inset clamp for player and bounds check
	Decorations DecorationsConfig `yaml:"decorations"`
}

// DecorationsConfig defines how many props are scattered at start.
type DecorationsConfig struct {
	Pillars     int     `yaml:"pillars"`
	Grass       int     `yaml:"grass"`
	Rocks       int     `yaml:"rocks"`
	FlowerRatio float64 `yaml:"flower_ratio"` // Share of grass tufts drawn as flowers
}

// PlayerConfig defines the starting player record.
type PlayerConfig struct {
	HP              float64 `yaml:"hp"`
	Speed           float64 `yaml:"speed"`
	Damage          float64 `yaml:"damage"`
	AttackCooldown  int     `yaml:"attack_cooldown"` // Frames between auto-attacks
	AttackRange     float64 `yaml:"attack_range"`
	XPToNextLevel   float64 `yaml:"xp_to_next_level"`
	ProjectileCount int     `yaml:"projectile_count"`
	PoisonRange     float64 `yaml:"poison_range"`
	XPMultiplier    float64 `yaml:"xp_multiplier"`
}

// SpawnerConfig defines regular and boss spawning.
type SpawnerConfig struct {
	BaseInterval     int     `yaml:"base_interval"`      // Frames between spawns at level 0
	MinInterval      int     `yaml:"min_interval"`       // Floor for the spawn cadence
	IntervalPerLevel int     `yaml:"interval_per_level"` // Cadence reduction per player level
	BossSlowdown     int     `yaml:"boss_slowdown"`      // Cadence multiplier while a boss lives
	RingRadius       float64 `yaml:"ring_radius"`
	FlyingChance     float64 `yaml:"flying_chance"`
	EnemyHPBase      float64 `yaml:"enemy_hp_base"`
	EnemyHPPerLevel  float64 `yaml:"enemy_hp_per_level"`
	EnemySpeedBase   float64 `yaml:"enemy_speed_base"`
	EnemySpeedLevel  float64 `yaml:"enemy_speed_per_level"`
	EnemyDamageBase  float64 `yaml:"enemy_damage_base"`
	BossInterval     uint64  `yaml:"boss_interval"` // Game-time frames between bosses
	BossOffset       float64 `yaml:"boss_offset"`
	BossSpeed        float64 `yaml:"boss_speed"`
	BossHPBase       float64 `yaml:"boss_hp_base"`
	BossHPPerLevel   float64 `yaml:"boss_hp_per_level"`
	BossDamageBase   float64 `yaml:"boss_damage_base"`
}

// CombatConfig defines attacks, projectiles, statuses and passives.
type CombatConfig struct {
	EnemyRadius        float64 `yaml:"enemy_radius"` // Contact and hit radius, regular enemies
	BossContactRadius  float64 `yaml:"boss_contact_radius"`
	BossHitRadius      float64 `yaml:"boss_hit_radius"`
	ContactInterval    int     `yaml:"contact_interval"` // Frames between contact damage ticks
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	ProjectileDuration int     `yaml:"projectile_duration"`
	SpreadAngle        float64 `yaml:"spread_angle"` // Radians between fan slots
	BurnDuration       int     `yaml:"burn_duration"`
	FreezeDuration     int     `yaml:"freeze_duration"`
	BurnInterval       int     `yaml:"burn_interval"`
	BurnRatio          float64 `yaml:"burn_ratio"` // Share of player damage dealt per burn tick
	FreezeSlow         float64 `yaml:"freeze_slow"`
	PoisonInterval     int     `yaml:"poison_interval"`
	MeteorChance       float64 `yaml:"meteor_chance"` // Per frame, per meteor level
	MeteorScatter      float64 `yaml:"meteor_scatter"`
	MeteorBlastRadius  float64 `yaml:"meteor_blast_radius"`
	MeteorDuration     int     `yaml:"meteor_duration"`
	MeteorFallSpeed    float64 `yaml:"meteor_fall_speed"`
	MeteorDamageMult   float64 `yaml:"meteor_damage_mult"`
	BossScore          int     `yaml:"boss_score"`
	EnemyScore         int     `yaml:"enemy_score"`
	OrbBaseValue       float64 `yaml:"orb_base_value"`
}

// ProgressionConfig defines XP pickup and leveling.
type ProgressionConfig struct {
	MagnetRadius    float64 `yaml:"magnet_radius"`
	MagnetPull      float64 `yaml:"magnet_pull"` // Share of remaining distance per frame
	PickupRadius    float64 `yaml:"pickup_radius"`
	XPGrowth        float64 `yaml:"xp_growth"`
	MinCooldown     int     `yaml:"min_cooldown"`
	PoisonRangeStep float64 `yaml:"poison_range_step"`
}

// FeedbackConfig defines host-facing sampling and cosmetic feedback.
type FeedbackConfig struct {
	SummaryInterval int     `yaml:"summary_interval"` // Frames between UI summaries
	TextLife        int     `yaml:"text_life"`
	TextRise        float64 `yaml:"text_rise"`
	TextOffset      float64 `yaml:"text_offset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
