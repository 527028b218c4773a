package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRaid(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if want := DefaultRaidConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults differ from DefaultRaidConfig:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultRaidConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadRaidCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raid.yaml")
	data := "player:\n  start_lives: 7\nspeed:\n  max: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRaid(path)
	if err != nil {
		t.Fatalf("LoadRaid: %v", err)
	}
	if cfg.Player.StartLives != 7 {
		t.Errorf("StartLives = %d, expected 7", cfg.Player.StartLives)
	}
	if cfg.Speed.Max != 4 {
		t.Errorf("Speed.Max = %v, expected 4", cfg.Speed.Max)
	}
	def := DefaultRaidConfig()
	if cfg.Player.Width != def.Player.Width || cfg.Speed.Initial != def.Speed.Initial {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadRaidCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
		want    string
	}{
		{"missing file", "", false, "failed to read config"},
		{"bad yaml", "player: [1, 2", true, "failed to parse config"},
		{"invalid values", "speed:\n  min: 3\n  initial: 1\n", true, "invalid config"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.Repeat("x", i+1)+".yaml")
			if tt.create {
				if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
					t.Fatal(err)
				}
			}
			_, err := LoadRaid(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultRaidConfig()
	cfg.Player.StartLives = 0
	cfg.Spawn.Chance = 2
	cfg.Particles.PlayerColor = "ultraviolet"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"start_lives", "spawn: chance", "ultraviolet"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestApplyRaidPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
		{"", 3, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRaidConfig()
			ApplyRaidPreset(&cfg, tt.preset)
			if cfg.Player.StartLives != tt.lives {
				t.Errorf("StartLives = %d, expected %d", cfg.Player.StartLives, tt.lives)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced an invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if p, ok := ParsePreset(""); !ok || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultRaidConfig()
	cfg.Player.StartLives = 9

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := parseRaid(data)
	if err != nil {
		t.Fatalf("parseRaid: %v", err)
	}
	if got.Player.StartLives != 9 {
		t.Errorf("StartLives = %d after round trip", got.Player.StartLives)
	}
}
