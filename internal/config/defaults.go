package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/egghunt.yaml
var defaultEggHuntYAML []byte

// DefaultEggHuntConfig returns the built-in Egg Hunt configuration.
// It mirrors defaults/egghunt.yaml and is used when the embedded file cannot be parsed.
func DefaultEggHuntConfig() EggHuntConfig {
	return EggHuntConfig{
		World: EggHuntWorld{
			Width:  960,
			Height: 640,
			Inset:  32,
		},
		Player: EggHuntPlayer{
			StartX:    50,
			StartY:    50,
			TileSize:  32,
			MoveDelay: 200 * time.Millisecond,
			HalfSize:  16,
		},
		Chicks: EggHuntChicks{
			Count:            5,
			SpawnMargin:      64,
			WanderSpeed:      32,
			EvadeSpeed:       32,
			EvadeRadius:      64,
			DecisionInterval: 500 * time.Millisecond,
			HalfSize:         16,
		},
		Projectile: EggHuntProjectile{
			Speed:    200,
			TTL:      480 * time.Millisecond,
			HalfSize: 16,
		},
		Boss: EggHuntBoss{
			StartY:   -128,
			Descent:  3 * time.Second,
			HalfSize: 64,
		},
		Effects: EggHuntEffects{
			HitDuration:        900 * time.Millisecond, // 9 frames at 10 fps
			FireworkRise:       64,
			FireworkRiseTime:   800 * time.Millisecond,
			FireworkBurstTime:  800 * time.Millisecond,
			CelebrationStagger: 250 * time.Millisecond,
		},
		Scoring: EggHuntScoring{
			ChickPoints: 100,
			BossPoints:  1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "egghunt":
		return defaultEggHuntYAML
	default:
		return nil
	}
}
