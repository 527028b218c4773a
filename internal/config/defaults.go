package config

import (
	_ "embed"
)

//go:embed defaults/raid.yaml
var defaultRaidYAML []byte

// DefaultRaidConfig returns the built-in configuration. It matches the embedded
// defaults/raid.yaml and is used when that file cannot be parsed.
func DefaultRaidConfig() RaidConfig {
	return RaidConfig{
		World: WorldConfig{
			Width:             600,
			Height:            800,
			LeadMargin:        50,
			TrailMargin:       100,
			EntityTrailMargin: 50,
			InitialBuffer:     200,
			InitialLeftBank:   100,
			InitialRightBank:  500,
		},
		Player: PlayerConfig{
			Width:             32,
			Height:            36,
			BottomOffset:      150,
			LateralSpeed:      5,
			HitboxInset:       4,
			IslandHitboxInset: 5,
			StartLives:        3,
			SafetyDistance:    300,
		},
		Speed: SpeedConfig{
			Initial: 1.5,
			Min:     0.5,
			Max:     6,
			Accel:   0.05,
			Decel:   0.1,
			Drift:   0.02,
		},
		Fuel: FuelConfig{
			Max:             100,
			ConsumptionRate: 0.04,
			IdleFactor:      0.5,
			RefillPerFrame:  2.5,
		},
		Weapon: WeaponConfig{
			ProjectileSpeed: 12,
			ProjectileSize:  4,
			CooldownMS:      250,
			LeadMargin:      50,
		},
		Terrain: TerrainConfig{
			SliceStep:    1,
			BaseWidth:    250,
			MinWidth:     100,
			WidthSlack:   50,
			EdgePadding:  20,
			CenterJitter: 5,
			WidthJitter:  2,

			IslandMinChannel:     180,
			IslandStartChance:    0.005,
			IslandEndChance:      0.01,
			IslandStartHalfWidth: 10,
			IslandMaxHalfWidth:   20,
			IslandGrowth:         0.5,
			IslandJitter:         1,
			MinPassage:           40,

			DecorationChance:      0.05,
			DecorationMinOffset:   10,
			DecorationOffsetRange: 100,
			HouseChance:           0.2,
			IslandTreeChance:      0.1,
		},
		Spawn: SpawnConfig{
			Chance:         0.03,
			Margin:         20,
			BridgeInterval: 3000,
			BridgeHeight:   24,
			JetDrift:       2.5,
			PatrolDrift:    0,
			Weights: SpawnWeights{
				Depot:     0.35,
				Vessel:    0.30,
				Rotary:    0.175,
				FixedWing: 0.175,
			},
			DepotSize:   Size{W: 30, H: 50},
			HostileSize: Size{W: 40, H: 30},
		},
		Scoring: ScoringConfig{
			Bridge:  500,
			Hostile: 100,
			Depot:   80,
		},
		Particles: ParticleConfig{
			Count:        20,
			Spread:       10,
			LifeMin:      1.0,
			LifeRange:    0.5,
			Decay:        0.05,
			Max:          600,
			Highlight:    "bright_white",
			PlayerColor:  "bright_red",
			HostileColor: "bright_yellow",
			DepotColor:   "bright_magenta",
			BridgeColor:  "yellow",
		},
		Difficulty: DifficultyConfig{
			Enabled:             true,
			StartLevel:          1,
			NarrowPerLevel:      10,
			SpawnChancePerLevel: 0.002,
			MaxSpawnChance:      0.06,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRaidYAML
}
