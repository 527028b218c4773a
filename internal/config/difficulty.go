package config

import "math"

// DifficultyManager maps the bridge-driven level counter onto world parameters.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.StartLevel < 1 {
		cfg.StartLevel = 1
	}
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// StartLevel returns the level of a fresh game.
func (d *DifficultyManager) StartLevel() int {
	return d.cfg.StartLevel
}

// Effective returns the level the world should be generated at. With
// progression disabled the counter keeps counting but the world stays at
// the starting level.
func (d *DifficultyManager) Effective(level int) int {
	if !d.cfg.Enabled {
		return d.cfg.StartLevel
	}
	return max(level, d.cfg.StartLevel)
}

// NarrowPerLevel returns how much the target channel width shrinks per level.
func (d *DifficultyManager) NarrowPerLevel() float64 {
	return d.cfg.NarrowPerLevel
}

// SpawnChance returns the per-slice spawn probability at the given level.
func (d *DifficultyManager) SpawnChance(base float64, level int) float64 {
	steps := float64(d.Effective(level) - d.cfg.StartLevel)
	chance := base + steps*d.cfg.SpawnChancePerLevel
	if d.cfg.MaxSpawnChance > 0 {
		chance = math.Min(chance, d.cfg.MaxSpawnChance)
	}
	return clampF(chance, 0.0, 1.0)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
