package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/river-raid/internal/core"
)

const raidFile = "raid.yaml"

// LoadRaid loads the River Raid configuration.
// Search order: customPath -> ~/.raid/configs/raid.yaml -> ./configs/raid.yaml -> embedded default
//
// Files are decoded over the built-in defaults, so a file only needs the keys
// it overrides. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when unusable.
func LoadRaid(customPath string) (RaidConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RaidConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRaid(data)
		if err != nil {
			return RaidConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RaidConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(raidFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", raidFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseRaid(defaultRaidYAML)
	if err != nil {
		return DefaultRaidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (RaidConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RaidConfig{}, false
	}
	cfg, err := parseRaid(data)
	if err != nil || cfg.Validate() != nil {
		return RaidConfig{}, false
	}
	return cfg, true
}

func parseRaid(data []byte) (RaidConfig, error) {
	cfg := DefaultRaidConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RaidConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c RaidConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".raid", "configs", filename)
}

// ApplyRaidPreset modifies the config based on a difficulty preset.
func ApplyRaidPreset(cfg *RaidConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.StartLives = 5
		cfg.Difficulty.NarrowPerLevel = 5
		cfg.Fuel.ConsumptionRate *= 0.75
	case DifficultyHard:
		cfg.Player.StartLives = 2
		cfg.Difficulty.NarrowPerLevel = 15
		cfg.Fuel.ConsumptionRate *= 1.25
		cfg.Spawn.Chance *= 1.5
	}
}

// Validate reports every inconsistent value in the configuration.
func (c RaidConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: dimensions must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.InitialLeftBank >= 0 && c.World.InitialLeftBank < c.World.InitialRightBank && c.World.InitialRightBank <= c.World.Width,
		"world: initial banks must satisfy 0 <= left < right <= width, got %v..%v", c.World.InitialLeftBank, c.World.InitialRightBank)
	check(c.World.InitialBuffer >= 0, "world: initial_buffer must not be negative")

	check(c.Player.Width > 0 && c.Player.Height > 0, "player: dimensions must be positive")
	check(c.Player.Width < c.World.Width, "player: width %v does not fit the world", c.Player.Width)
	check(c.Player.StartLives > 0, "player: start_lives must be positive, got %d", c.Player.StartLives)
	check(c.Player.BottomOffset >= c.Player.Height && c.Player.BottomOffset <= c.World.Height,
		"player: bottom_offset must be within [height, world height], got %v", c.Player.BottomOffset)

	check(c.Speed.Min > 0 && c.Speed.Min <= c.Speed.Initial && c.Speed.Initial <= c.Speed.Max,
		"speed: must satisfy 0 < min <= initial <= max, got %v/%v/%v", c.Speed.Min, c.Speed.Initial, c.Speed.Max)
	check(c.Speed.Accel >= 0 && c.Speed.Decel >= 0 && c.Speed.Drift >= 0, "speed: rates must not be negative")

	check(c.Fuel.Max > 0, "fuel: max must be positive")
	check(c.Fuel.ConsumptionRate >= 0 && c.Fuel.RefillPerFrame >= 0, "fuel: rates must not be negative")

	check(c.Weapon.ProjectileSpeed > 0 && c.Weapon.ProjectileSize > 0, "weapon: projectile speed and size must be positive")
	check(c.Weapon.CooldownMS >= 0, "weapon: cooldown_ms must not be negative")

	t := c.Terrain
	check(t.SliceStep > 0, "terrain: slice_step must be positive")
	check(t.MinWidth > 0 && t.MinWidth+2*t.EdgePadding <= c.World.Width,
		"terrain: min_width %v plus padding does not fit the world", t.MinWidth)
	check(c.World.InitialLeftBank >= t.EdgePadding && c.World.InitialRightBank <= c.World.Width-t.EdgePadding,
		"terrain: initial banks must respect edge_padding %v", t.EdgePadding)
	check(t.CenterJitter >= 0 && t.WidthJitter >= 0 && t.IslandJitter >= 0, "terrain: jitter must not be negative")
	check(t.IslandMaxHalfWidth >= t.IslandStartHalfWidth, "terrain: island_max_half_width must be >= island_start_half_width")
	check(inUnit(t.IslandStartChance) && inUnit(t.IslandEndChance) && inUnit(t.DecorationChance) &&
		inUnit(t.HouseChance) && inUnit(t.IslandTreeChance), "terrain: chances must be within [0, 1]")

	s := c.Spawn
	check(inUnit(s.Chance), "spawn: chance must be within [0, 1], got %v", s.Chance)
	check(s.BridgeInterval > 0 && s.BridgeHeight > 0, "spawn: bridge interval and height must be positive")
	check(s.Weights.Depot >= 0 && s.Weights.Vessel >= 0 && s.Weights.Rotary >= 0 && s.Weights.FixedWing >= 0,
		"spawn: weights must not be negative")
	check(s.Weights.Total() > 0, "spawn: at least one weight must be positive")
	check(s.DepotSize.W > 0 && s.DepotSize.H > 0 && s.HostileSize.W > 0 && s.HostileSize.H > 0,
		"spawn: entity sizes must be positive")

	check(c.Scoring.Bridge >= 0 && c.Scoring.Hostile >= 0 && c.Scoring.Depot >= 0, "scoring: rewards must not be negative")

	p := c.Particles
	check(p.Count >= 0 && p.Max >= 0, "particles: counts must not be negative")
	check(p.Decay > 0, "particles: decay must be positive")
	for _, name := range []string{p.Highlight, p.PlayerColor, p.HostileColor, p.DepotColor, p.BridgeColor} {
		_, ok := core.ParseColor(name)
		check(ok, "particles: unknown color %q", name)
	}

	check(c.Difficulty.StartLevel >= 1, "difficulty: start_level must be at least 1")
	check(c.Difficulty.NarrowPerLevel >= 0 && c.Difficulty.SpawnChancePerLevel >= 0, "difficulty: scaling must not be negative")

	return errors.Join(errs...)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
