package raid

import (
	"math"

	"github.com/vovakirdan/river-raid/internal/config"
	"github.com/vovakirdan/river-raid/internal/core"
)

// DecorationKind is the kind of scenery attached to a slice.
type DecorationKind int

const (
	DecorationTree DecorationKind = iota
	DecorationHouse
)

// String returns the name of the decoration kind.
func (k DecorationKind) String() string {
	if k == DecorationHouse {
		return "house"
	}
	return "tree"
}

// Decoration is a scenery marker on land. It has no gameplay effect.
type Decoration struct {
	X        float64
	Kind     DecorationKind
	OnIsland bool
}

// Span is a horizontal interval.
type Span struct {
	Left, Right float64
}

// Width returns the length of the span.
func (s Span) Width() float64 {
	return s.Right - s.Left
}

// Center returns the midpoint of the span.
func (s Span) Center() float64 {
	return (s.Left + s.Right) / 2
}

// Slice is one cross-section of the channel at a world y.
type Slice struct {
	Y           float64
	Left        float64 // Left bank: water starts here
	Right       float64 // Right bank: water ends here
	Island      Span    // Valid only when HasIsland is set
	HasIsland   bool
	Decorations []Decoration
}

// Width returns the channel width.
func (s Slice) Width() float64 {
	return s.Right - s.Left
}

// Center returns the channel center.
func (s Slice) Center() float64 {
	return (s.Left + s.Right) / 2
}

// clone returns a copy that shares no memory with s.
func (s Slice) clone() Slice {
	if s.Decorations != nil {
		s.Decorations = append([]Decoration(nil), s.Decorations...)
	}
	return s
}

// TerrainParams are the generator tunables together with the world width
// and the per-level narrowing they depend on.
type TerrainParams struct {
	config.TerrainConfig
	WorldWidth     float64
	NarrowPerLevel float64
}

// NewTerrainParams derives generator parameters from the game configuration.
func NewTerrainParams(cfg config.RaidConfig) TerrainParams {
	return TerrainParams{
		TerrainConfig:  cfg.Terrain,
		WorldWidth:     cfg.World.Width,
		NarrowPerLevel: cfg.Difficulty.NarrowPerLevel,
	}
}

// MaxChannel returns the widest channel that fits inside the padded world.
func (p TerrainParams) MaxChannel() float64 {
	return math.Max(p.WorldWidth-2*p.EdgePadding, p.MinWidth)
}

// MaxBankStep returns the largest change of either bank between two
// consecutive slices.
func (p TerrainParams) MaxBankStep() float64 {
	return p.CenterJitter + p.WidthJitter
}

// TargetWidth returns the channel width the generator steers toward at the
// given difficulty level.
func (p TerrainParams) TargetWidth(difficulty int) float64 {
	target := p.BaseWidth - float64(difficulty)*p.NarrowPerLevel
	return core.ClampF(target, p.MinWidth, p.MaxChannel())
}

// FirstSlice returns the slice a fresh terrain buffer grows from.
func FirstSlice(cfg config.RaidConfig) Slice {
	return Slice{
		Y:     cfg.World.Height,
		Left:  cfg.World.InitialLeftBank,
		Right: cfg.World.InitialRightBank,
	}
}

// NextSlice generates the slice that follows prev toward the leading edge.
//
// The banks move by at most MaxBankStep per slice. The width follows the
// difficulty target only as fast as WidthJitter allows, so a level-up narrows
// the channel gradually instead of in one step. Islands always leave a
// passage of at least MinPassage on both sides.
func NextSlice(prev Slice, difficulty int, rng Rand, p TerrainParams) Slice {
	maxChannel := p.MaxChannel()
	target := p.TargetWidth(difficulty)
	bandLo := math.Max(p.MinWidth, target-p.WidthSlack)
	bandHi := math.Min(maxChannel, target+p.WidthSlack)

	center := prev.Center() + uniform(rng, -p.CenterJitter, p.CenterJitter)

	prevWidth := prev.Width()
	width := prevWidth + uniform(rng, -p.WidthJitter, p.WidthJitter)
	width = core.ClampF(width, bandLo, bandHi)
	width = core.ClampF(width, prevWidth-p.WidthJitter, prevWidth+p.WidthJitter)
	width = core.ClampF(width, p.MinWidth, maxChannel)

	half := width / 2
	center = core.ClampF(center, p.EdgePadding+half, p.WorldWidth-p.EdgePadding-half)

	next := Slice{
		Y:     prev.Y - p.SliceStep,
		Left:  center - half,
		Right: center + half,
	}

	next.Island, next.HasIsland = nextIsland(prev, next, rng, p)
	next.Decorations = decorate(prev, next, rng, p)
	return next
}

// nextIsland continues, starts or ends the island of the new slice.
func nextIsland(prev, next Slice, rng Rand, p TerrainParams) (Span, bool) {
	var island Span
	center := next.Center()

	switch {
	case prev.HasIsland:
		if chance(rng, p.IslandEndChance) {
			return Span{}, false
		}
		half := math.Min(prev.Island.Width()/2+p.IslandGrowth, p.IslandMaxHalfWidth)
		island = Span{
			Left:  center - half + uniform(rng, -p.IslandJitter, p.IslandJitter),
			Right: center + half + uniform(rng, -p.IslandJitter, p.IslandJitter),
		}
	case next.Width() > p.IslandMinChannel && chance(rng, p.IslandStartChance):
		island = Span{
			Left:  center - p.IslandStartHalfWidth,
			Right: center + p.IslandStartHalfWidth,
		}
	default:
		return Span{}, false
	}

	leftPassage := island.Left - next.Left
	rightPassage := next.Right - island.Right
	if island.Width() <= 0 || leftPassage <= 0 || rightPassage <= 0 ||
		leftPassage < p.MinPassage || rightPassage < p.MinPassage {
		return Span{}, false
	}
	return island, true
}

// decorate places scenery outside the banks and on continuing islands.
// Markers that would fall outside the world are not emitted.
func decorate(prev, next Slice, rng Rand, p TerrainParams) []Decoration {
	var decorations []Decoration

	if chance(rng, p.DecorationChance) {
		x := next.Left - p.DecorationMinOffset - rng.Float64()*p.DecorationOffsetRange
		kind := pickDecoration(rng, p.HouseChance)
		if x >= 0 {
			decorations = append(decorations, Decoration{X: x, Kind: kind})
		}
	}
	if chance(rng, p.DecorationChance) {
		x := next.Right + p.DecorationMinOffset + rng.Float64()*p.DecorationOffsetRange
		kind := pickDecoration(rng, p.HouseChance)
		if x <= p.WorldWidth {
			decorations = append(decorations, Decoration{X: x, Kind: kind})
		}
	}
	if next.HasIsland && prev.HasIsland && chance(rng, p.IslandTreeChance) {
		decorations = append(decorations, Decoration{
			X:        next.Island.Center(),
			Kind:     DecorationTree,
			OnIsland: true,
		})
	}
	return decorations
}

func pickDecoration(rng Rand, houseChance float64) DecorationKind {
	if chance(rng, houseChance) {
		return DecorationHouse
	}
	return DecorationTree
}
