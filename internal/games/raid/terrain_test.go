package raid

import (
	"math"
	"testing"

	"github.com/vovakirdan/river-raid/internal/config"
)

const eps = 1e-9

func TestNextSliceInvariants(t *testing.T) {
	cfg := config.DefaultRaidConfig()
	cfg.Terrain.IslandStartChance = 0.05 // exercise islands often
	p := NewTerrainParams(cfg)
	rng := NewSimpleRNG(42)

	prev := FirstSlice(cfg)
	islands := 0
	for i := range 40000 {
		difficulty := 1 + i/2000
		next := NextSlice(prev, difficulty, rng, p)

		if !(next.Left < next.Right) {
			t.Fatalf("slice %d: left %v >= right %v", i, next.Left, next.Right)
		}
		if next.Left < 0 || next.Right > cfg.World.Width {
			t.Fatalf("slice %d: banks %v..%v outside world", i, next.Left, next.Right)
		}
		if next.Width() < p.MinWidth-eps {
			t.Fatalf("slice %d: width %v below minimum %v", i, next.Width(), p.MinWidth)
		}
		if d := math.Abs(next.Left - prev.Left); d > p.MaxBankStep()+eps {
			t.Fatalf("slice %d: left bank moved %v", i, d)
		}
		if d := math.Abs(next.Right - prev.Right); d > p.MaxBankStep()+eps {
			t.Fatalf("slice %d: right bank moved %v", i, d)
		}
		if next.Y != prev.Y-p.SliceStep {
			t.Fatalf("slice %d: y = %v, expected %v", i, next.Y, prev.Y-p.SliceStep)
		}
		if next.HasIsland {
			islands++
			if !(next.Island.Left < next.Island.Right) {
				t.Fatalf("slice %d: island %v is empty", i, next.Island)
			}
			if !(next.Left < next.Island.Left && next.Island.Right < next.Right) {
				t.Fatalf("slice %d: island %v not strictly inside %v..%v", i, next.Island, next.Left, next.Right)
			}
		}
		prev = next
	}

	if islands == 0 {
		t.Error("expected at least one island to be generated")
	}
}

func TestNextSliceNarrowsTowardTarget(t *testing.T) {
	cfg := config.DefaultRaidConfig()
	p := NewTerrainParams(cfg)
	rng := NewSimpleRNG(7)

	const difficulty = 10
	target := p.TargetWidth(difficulty)
	prev := FirstSlice(cfg)
	for range 2000 {
		prev = NextSlice(prev, difficulty, rng, p)
	}

	if w := prev.Width(); w > target+p.WidthSlack+eps || w < target-p.WidthSlack-eps {
		t.Errorf("width %v should settle within %v of target %v", w, p.WidthSlack, target)
	}
}

func TestTargetWidthFloor(t *testing.T) {
	p := NewTerrainParams(config.DefaultRaidConfig())
	if got := p.TargetWidth(100); got != p.MinWidth {
		t.Errorf("TargetWidth(100) = %v, expected floor %v", got, p.MinWidth)
	}
	if got := p.TargetWidth(-100); got != p.MaxChannel() {
		t.Errorf("TargetWidth(-100) = %v, expected ceiling %v", got, p.MaxChannel())
	}
}

func TestNextSliceDeterministic(t *testing.T) {
	cfg := config.DefaultRaidConfig()
	p := NewTerrainParams(cfg)
	r1, r2 := NewSimpleRNG(99), NewSimpleRNG(99)

	a, b := FirstSlice(cfg), FirstSlice(cfg)
	for i := range 5000 {
		a = NextSlice(a, 3, r1, p)
		b = NextSlice(b, 3, r2, p)
		if a.Left != b.Left || a.Right != b.Right || a.HasIsland != b.HasIsland || len(a.Decorations) != len(b.Decorations) {
			t.Fatalf("slice %d differs between runs with the same seed", i)
		}
	}
}

func TestIslandKeepsPassages(t *testing.T) {
	cfg := config.DefaultRaidConfig()
	cfg.Terrain.IslandStartChance = 1
	cfg.Terrain.IslandEndChance = 0
	p := NewTerrainParams(cfg)
	rng := NewSimpleRNG(3)

	prev := FirstSlice(cfg)
	for i := range 3000 {
		prev = NextSlice(prev, 1, rng, p)
		if !prev.HasIsland {
			continue
		}
		if lp := prev.Island.Left - prev.Left; lp < p.MinPassage {
			t.Fatalf("slice %d: left passage %v narrower than %v", i, lp, p.MinPassage)
		}
		if rp := prev.Right - prev.Island.Right; rp < p.MinPassage {
			t.Fatalf("slice %d: right passage %v narrower than %v", i, rp, p.MinPassage)
		}
		if half := prev.Island.Width() / 2; half > p.IslandMaxHalfWidth+p.IslandJitter+eps {
			t.Fatalf("slice %d: island half width %v exceeds maximum", i, half)
		}
	}
}

func TestIslandNeedsWideChannel(t *testing.T) {
	cfg := config.DefaultRaidConfig()
	cfg.Terrain.IslandStartChance = 1
	cfg.Terrain.CenterJitter = 0
	cfg.Terrain.WidthJitter = 0
	p := NewTerrainParams(cfg)
	rng := NewSimpleRNG(5)

	narrow := Slice{Y: 0, Left: 225, Right: 375} // 150 < IslandMinChannel
	for range 100 {
		narrow = NextSlice(narrow, 1, rng, p)
		if narrow.HasIsland {
			t.Fatal("an island must not start in a channel narrower than the island minimum")
		}
	}

	wide := Slice{Y: 0, Left: 150, Right: 450}
	if next := NextSlice(wide, 1, rng, p); !next.HasIsland {
		t.Error("an island should start in a wide channel with start chance 1")
	}
}

func TestDecorationsStayOnLand(t *testing.T) {
	cfg := config.DefaultRaidConfig()
	cfg.Terrain.DecorationChance = 1
	cfg.Terrain.IslandTreeChance = 1
	cfg.Terrain.IslandStartChance = 0.2
	p := NewTerrainParams(cfg)
	rng := NewSimpleRNG(11)

	prev := FirstSlice(cfg)
	houses := 0
	for i := range 2000 {
		prev = NextSlice(prev, 1, rng, p)
		for _, d := range prev.Decorations {
			if d.Kind == DecorationHouse {
				houses++
			}
			if d.OnIsland {
				if d.X < prev.Island.Left || d.X > prev.Island.Right {
					t.Fatalf("slice %d: island decoration at %v outside island %v", i, d.X, prev.Island)
				}
				continue
			}
			if d.X > prev.Left && d.X < prev.Right {
				t.Fatalf("slice %d: decoration at %v in the water %v..%v", i, d.X, prev.Left, prev.Right)
			}
			if d.X < 0 || d.X > cfg.World.Width {
				t.Fatalf("slice %d: decoration at %v outside the world", i, d.X)
			}
		}
	}

	if houses == 0 {
		t.Error("expected some houses among the decorations")
	}
}

func TestSimpleRNGRange(t *testing.T) {
	rng := NewSimpleRNG(0)
	for range 10000 {
		if v := rng.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, outside [0, 1)", v)
		}
	}
}
