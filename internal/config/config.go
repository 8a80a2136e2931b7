// Package config provides YAML-based game configuration loading and
// difficulty management for Egg Hunt.
package config

import "time"

// EggHuntConfig contains all tunables of the Egg Hunt simulation.
// Distances are world units (the playfield is 960x640), durations are
// simulated time since scene start.
type EggHuntConfig struct {
	World      EggHuntWorld      `yaml:"world"`
	Player     EggHuntPlayer     `yaml:"player"`
	Chicks     EggHuntChicks     `yaml:"chicks"`
	Projectile EggHuntProjectile `yaml:"projectile"`
	Boss       EggHuntBoss       `yaml:"boss"`
	Effects    EggHuntEffects    `yaml:"effects"`
	Scoring    EggHuntScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// EggHuntWorld defines the playfield.
type EggHuntWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"` // Bounds are inset from every edge by this much
}

// EggHuntPlayer defines the player character.
type EggHuntPlayer struct {
	StartX    float64       `yaml:"start_x"`
	StartY    float64       `yaml:"start_y"`
	TileSize  float64       `yaml:"tile_size"`
	MoveDelay time.Duration `yaml:"move_delay"`
	HalfSize  float64       `yaml:"half_size"`
}

// EggHuntChicks defines the wandering enemies.
type EggHuntChicks struct {
	Count            int           `yaml:"count"`
	SpawnMargin      int           `yaml:"spawn_margin"`
	WanderSpeed      int           `yaml:"wander_speed"` // Components drawn from [-speed, speed]
	EvadeSpeed       float64       `yaml:"evade_speed"`
	EvadeRadius      float64       `yaml:"evade_radius"`
	DecisionInterval time.Duration `yaml:"decision_interval"`
	HalfSize         float64       `yaml:"half_size"`
}

// EggHuntProjectile defines thrown eggs.
type EggHuntProjectile struct {
	Speed    float64       `yaml:"speed"` // Units per second
	TTL      time.Duration `yaml:"ttl"`
	HalfSize float64       `yaml:"half_size"`
}

// EggHuntBoss defines the legendary encounter.
type EggHuntBoss struct {
	StartY   float64       `yaml:"start_y"`
	Descent  time.Duration `yaml:"descent"`
	HalfSize float64       `yaml:"half_size"`
}

// EggHuntEffects defines transient visual effects.
type EggHuntEffects struct {
	HitDuration        time.Duration `yaml:"hit_duration"`
	FireworkRise       float64       `yaml:"firework_rise"`
	FireworkRiseTime   time.Duration `yaml:"firework_rise_time"`
	FireworkBurstTime  time.Duration `yaml:"firework_burst_time"`
	CelebrationStagger time.Duration `yaml:"celebration_stagger"`
}

// EggHuntScoring defines points awarded for defeats.
type EggHuntScoring struct {
	ChickPoints int `yaml:"chick_points"`
	BossPoints  int `yaml:"boss_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to chick speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction shaved off the decision interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
