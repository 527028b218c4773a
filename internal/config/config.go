// Package config provides YAML-based game configuration loading and
// difficulty management for River Raid.
package config

// RaidConfig contains every tunable of the simulation. It is loaded once at
// startup and never mutated while a game runs.
type RaidConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Speed      SpeedConfig      `yaml:"speed"`
	Fuel       FuelConfig       `yaml:"fuel"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Particles  ParticleConfig   `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the world dimensions and the terrain window around the view.
type WorldConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	LeadMargin        float64 `yaml:"lead_margin"`         // Terrain is generated until the leading slice is this far above the view
	TrailMargin       float64 `yaml:"trail_margin"`        // Slices this far below the view are dropped
	EntityTrailMargin float64 `yaml:"entity_trail_margin"` // Entities this far below the view are dropped
	InitialBuffer     int     `yaml:"initial_buffer"`      // Slices generated beyond the view height on reset
	InitialLeftBank   float64 `yaml:"initial_left_bank"`
	InitialRightBank  float64 `yaml:"initial_right_bank"`
}

// PlayerConfig defines the craft.
type PlayerConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	BottomOffset      float64 `yaml:"bottom_offset"` // Distance of the craft's top edge from the bottom of the view
	LateralSpeed      float64 `yaml:"lateral_speed"`
	HitboxInset       float64 `yaml:"hitbox_inset"`        // Forgiveness against entities
	IslandHitboxInset float64 `yaml:"island_hitbox_inset"` // Forgiveness against islands
	StartLives        int     `yaml:"start_lives"`
	SafetyDistance    float64 `yaml:"safety_distance"` // Entities closer than this above the craft are purged on respawn
}

// SpeedConfig defines the scroll speed (throttle) envelope.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"` // Also the cruise speed the throttle returns to
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Accel   float64 `yaml:"accel"`
	Decel   float64 `yaml:"decel"`
	Drift   float64 `yaml:"drift"` // Per-frame return toward cruise with no throttle input
}

// FuelConfig defines fuel capacity, consumption and refill.
type FuelConfig struct {
	Max             float64 `yaml:"max"`
	ConsumptionRate float64 `yaml:"consumption_rate"`
	IdleFactor      float64 `yaml:"idle_factor"` // Consumption multiplier floor at speed <= 1
	RefillPerFrame  float64 `yaml:"refill_per_frame"`
}

// WeaponConfig defines projectiles.
type WeaponConfig struct {
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileSize  float64 `yaml:"projectile_size"`
	CooldownMS      int     `yaml:"cooldown_ms"`
	LeadMargin      float64 `yaml:"lead_margin"` // Projectiles this far above the view are dropped
}

// TerrainConfig defines the procedural channel generator.
type TerrainConfig struct {
	SliceStep    float64 `yaml:"slice_step"`
	BaseWidth    float64 `yaml:"base_width"`
	MinWidth     float64 `yaml:"min_width"`
	WidthSlack   float64 `yaml:"width_slack"`
	EdgePadding  float64 `yaml:"edge_padding"`
	CenterJitter float64 `yaml:"center_jitter"`
	WidthJitter  float64 `yaml:"width_jitter"`

	IslandMinChannel     float64 `yaml:"island_min_channel"`
	IslandStartChance    float64 `yaml:"island_start_chance"`
	IslandEndChance      float64 `yaml:"island_end_chance"`
	IslandStartHalfWidth float64 `yaml:"island_start_half_width"`
	IslandMaxHalfWidth   float64 `yaml:"island_max_half_width"`
	IslandGrowth         float64 `yaml:"island_growth"`
	IslandJitter         float64 `yaml:"island_jitter"`
	MinPassage           float64 `yaml:"min_passage"`

	DecorationChance      float64 `yaml:"decoration_chance"`
	DecorationMinOffset   float64 `yaml:"decoration_min_offset"`
	DecorationOffsetRange float64 `yaml:"decoration_offset_range"`
	HouseChance           float64 `yaml:"house_chance"`
	IslandTreeChance      float64 `yaml:"island_tree_chance"`
}

// SpawnConfig defines entity spawning.
type SpawnConfig struct {
	Chance         float64      `yaml:"chance"` // Per generated slice, at the starting level
	Margin         float64      `yaml:"margin"`
	BridgeInterval float64      `yaml:"bridge_interval"`
	BridgeHeight   float64      `yaml:"bridge_height"`
	JetDrift       float64      `yaml:"jet_drift"`
	PatrolDrift    float64      `yaml:"patrol_drift"` // Vessels and helicopters; 0 keeps them stationary
	Weights        SpawnWeights `yaml:"weights"`
	DepotSize      Size         `yaml:"depot_size"`
	HostileSize    Size         `yaml:"hostile_size"`
}

// SpawnWeights are the relative weights of the randomly spawned kinds.
type SpawnWeights struct {
	Depot     float64 `yaml:"depot"`
	Vessel    float64 `yaml:"vessel"`
	Rotary    float64 `yaml:"rotary"`
	FixedWing float64 `yaml:"fixed_wing"`
}

// Total returns the sum of all weights.
func (w SpawnWeights) Total() float64 {
	return w.Depot + w.Vessel + w.Rotary + w.FixedWing
}

// Size is a width/height pair.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ScoringConfig defines rewards.
type ScoringConfig struct {
	Bridge  int `yaml:"bridge"`
	Hostile int `yaml:"hostile"`
	Depot   int `yaml:"depot"`
}

// ParticleConfig defines explosion bursts. Colors are names understood by core.ParseColor.
type ParticleConfig struct {
	Count        int     `yaml:"count"`
	Spread       float64 `yaml:"spread"`
	LifeMin      float64 `yaml:"life_min"`
	LifeRange    float64 `yaml:"life_range"`
	Decay        float64 `yaml:"decay"`
	Max          int     `yaml:"max"`
	Highlight    string  `yaml:"highlight"`
	PlayerColor  string  `yaml:"player_color"`
	HostileColor string  `yaml:"hostile_color"`
	DepotColor   string  `yaml:"depot_color"`
	BridgeColor  string  `yaml:"bridge_color"`
}

// DifficultyConfig defines how the difficulty level scales the world.
type DifficultyConfig struct {
	Enabled             bool    `yaml:"enabled"`     // false keeps the world at StartLevel forever
	StartLevel          int     `yaml:"start_level"` // Level of a fresh game
	NarrowPerLevel      float64 `yaml:"narrow_per_level"`
	SpawnChancePerLevel float64 `yaml:"spawn_chance_per_level"`
	MaxSpawnChance      float64 `yaml:"max_spawn_chance"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty input yields an empty preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
