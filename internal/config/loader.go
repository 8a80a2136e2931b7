package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadEggHunt loads Egg Hunt configuration.
// Search order: customPath -> ~/.egghunt/configs/egghunt.yaml -> ./configs/egghunt.yaml -> embedded default
func LoadEggHunt(customPath string) (EggHuntConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultEggHuntConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local files are best-effort: a broken file falls through
	candidates := []string{userConfigPath("egghunt.yaml"), filepath.Join("configs", "egghunt.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultEggHuntConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	embedded := DefaultEggHuntConfig()
	if err := yaml.Unmarshal(defaultEggHuntYAML, &embedded); err != nil {
		return DefaultEggHuntConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".egghunt", "configs", filename)
}

// Validate reports every value that would make the simulation misbehave.
func (c EggHuntConfig) Validate() error {
	var errs []error
	if c.World.Width <= 2*c.World.Inset || c.World.Height <= 2*c.World.Inset {
		errs = append(errs, errors.New("world must be larger than twice its inset"))
	}
	if c.Player.TileSize <= 0 {
		errs = append(errs, errors.New("player.tile_size must be positive"))
	}
	if c.Player.MoveDelay < 0 {
		errs = append(errs, errors.New("player.move_delay must not be negative"))
	}
	if c.Chicks.Count <= 0 {
		errs = append(errs, errors.New("chicks.count must be positive"))
	}
	if c.Chicks.DecisionInterval <= 0 {
		errs = append(errs, errors.New("chicks.decision_interval must be positive"))
	}
	if c.Chicks.WanderSpeed < 0 {
		errs = append(errs, errors.New("chicks.wander_speed must not be negative"))
	}
	if c.Projectile.Speed <= 0 || c.Projectile.TTL <= 0 {
		errs = append(errs, errors.New("projectile speed and ttl must be positive"))
	}
	if c.Boss.Descent <= 0 {
		errs = append(errs, errors.New("boss.descent must be positive"))
	}
	return errors.Join(errs...)
}

// ApplyEggHuntPreset modifies the config based on a difficulty preset.
func ApplyEggHuntPreset(cfg *EggHuntConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust chick behaviour based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Chicks.WanderSpeed = 24
		cfg.Chicks.EvadeRadius = 48
		cfg.Chicks.DecisionInterval = cfg.Chicks.DecisionInterval * 7 / 5
	case DifficultyHard:
		cfg.Chicks.WanderSpeed = 48
		cfg.Chicks.EvadeSpeed = 48
		cfg.Chicks.EvadeRadius = 96
	}
}

// Marshal renders a config as YAML, e.g. for `egghunt config`.
func Marshal(cfg EggHuntConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
