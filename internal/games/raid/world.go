package raid

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/river-raid/internal/config"
	"github.com/vovakirdan/river-raid/internal/core"
)

// Death causes reported in Contact.Cause besides entity kind names.
const (
	CauseLand = "land"
	CauseFuel = "fuel"
)

// Kill is an entity destroyed by a projectile during collision resolution.
type Kill struct {
	Kind EntityKind
	X, Y float64 // Center of the destroyed entity
}

// Contact is the outcome of collision resolution for one frame. The world
// reports it; the game decides what it means for the player.
type Contact struct {
	Cause  string  // First fatal cause found, empty if none
	Refuel float64 // Fuel offered by depots touching the craft
	Kills  []Kill  // In the order they happened
}

// Fatal reports whether the craft struck something this frame.
func (c Contact) Fatal() bool {
	return c.Cause != ""
}

// World owns the terrain window, entities and projectiles.
type World struct {
	cfg        *config.RaidConfig
	terrain    TerrainParams
	difficulty *config.DifficultyManager
	rng        Rand

	slices      []Slice // Trailing edge (largest y) first, leading edge last
	entities    []Entity
	projectiles []Projectile

	distance     float64 // Total scroll distance this game
	nextBridgeAt float64 // Distance at which the next bridge spawns
	nextID       int
}

// NewWorld creates an empty world. Call Reset before scrolling it.
func NewWorld(cfg *config.RaidConfig, diff *config.DifficultyManager, rng Rand) *World {
	return &World{
		cfg:         cfg,
		terrain:     NewTerrainParams(*cfg),
		difficulty:  diff,
		rng:         rng,
		slices:      make([]Slice, 0, int(cfg.World.Height)+cfg.World.InitialBuffer+64),
		entities:    make([]Entity, 0, 32),
		projectiles: make([]Projectile, 0, 16),
	}
}

// Reset clears everything and generates a fresh terrain buffer covering the
// view plus the configured lead. The buffer carries no entities.
func (w *World) Reset(level int) {
	w.slices = w.slices[:0]
	w.entities = w.entities[:0]
	w.projectiles = w.projectiles[:0]
	w.distance = 0
	w.nextBridgeAt = w.cfg.Spawn.BridgeInterval
	w.nextID = 0

	effective := w.difficulty.Effective(level)
	prev := FirstSlice(*w.cfg)
	w.slices = append(w.slices, prev)
	for range w.bufferLength() - 1 {
		prev = NextSlice(prev, effective, w.rng, w.terrain)
		w.slices = append(w.slices, prev)
	}
}

// bufferLength returns the number of slices in a fresh terrain buffer.
func (w *World) bufferLength() int {
	return int(math.Ceil(w.cfg.World.Height/w.terrain.SliceStep)) + w.cfg.World.InitialBuffer
}

// Scroll moves the terrain window by speed, drops slices past the trailing
// edge and generates new ones at the leading edge, evaluating the spawn
// policy once per generated slice.
func (w *World) Scroll(speed float64, level int) {
	w.distance += speed
	for i := range w.slices {
		w.slices[i].Y += speed
	}

	// The leading slice always stays; the generator grows from it.
	limit := w.cfg.World.Height + w.cfg.World.TrailMargin
	drop := 0
	for drop < len(w.slices)-1 && w.slices[drop].Y >= limit {
		drop++
	}
	if drop > 0 {
		w.slices = append(w.slices[:0], w.slices[drop:]...)
	}

	effective := w.difficulty.Effective(level)
	for w.leading().Y > -w.cfg.World.LeadMargin {
		next := NextSlice(w.leading(), effective, w.rng, w.terrain)
		w.slices = append(w.slices, next)
		w.spawn(next, level)
	}
}

func (w *World) leading() Slice {
	return w.slices[len(w.slices)-1]
}

// spawn places at most one entity on a newly generated slice. A due bridge
// takes the slice; otherwise a random kind may appear inside the channel.
func (w *World) spawn(s Slice, level int) {
	sp := w.cfg.Spawn

	if w.distance >= w.nextBridgeAt {
		w.addEntity(Entity{
			Kind: KindBridge,
			X:    0,
			Y:    s.Y - sp.BridgeHeight,
			W:    w.cfg.World.Width,
			H:    sp.BridgeHeight,
		})
		for w.nextBridgeAt <= w.distance {
			w.nextBridgeAt += sp.BridgeInterval
		}
		return
	}

	if !chance(w.rng, w.difficulty.SpawnChance(sp.Chance, level)) {
		return
	}

	kind := pickKind(w.rng, sp.Weights)
	size := sp.HostileSize
	if kind == KindDepot {
		size = sp.DepotSize
	}

	// The margin applies to both edges of the entity.
	lo := s.Left + sp.Margin
	hi := s.Right - sp.Margin - size.W
	if hi <= lo {
		return
	}
	x := uniform(w.rng, lo, hi)

	var vx float64
	switch kind {
	case KindFixedWing:
		vx = sign(w.rng) * sp.JetDrift
	case KindVessel, KindRotary:
		if sp.PatrolDrift > 0 {
			vx = sign(w.rng) * sp.PatrolDrift
		}
	}

	w.addEntity(Entity{
		Kind: kind,
		X:    x,
		Y:    s.Y - size.H,
		W:    size.W,
		H:    size.H,
		VX:   vx,
	})
}

// pickKind chooses a random entity kind by relative weight.
func pickKind(rng Rand, wt config.SpawnWeights) EntityKind {
	r := rng.Float64() * wt.Total()
	switch {
	case r < wt.Depot:
		return KindDepot
	case r < wt.Depot+wt.Vessel:
		return KindVessel
	case r < wt.Depot+wt.Vessel+wt.Rotary:
		return KindRotary
	default:
		return KindFixedWing
	}
}

func (w *World) addEntity(e Entity) {
	w.nextID++
	e.ID = w.nextID
	w.entities = append(w.entities, e)
}

// Fire launches a projectile whose top-left corner is at (x, y).
func (w *World) Fire(x, y float64) {
	w.nextID++
	w.projectiles = append(w.projectiles, Projectile{
		ID:   w.nextID,
		X:    x,
		Y:    y,
		VY:   -w.cfg.Weapon.ProjectileSpeed,
		Size: w.cfg.Weapon.ProjectileSize,
	})
}

// Advance moves entities with the scroll and projectiles along their
// velocity, marking whatever leaves the window. Drifting entities bounce off
// the world edges, not the banks.
func (w *World) Advance(speed float64) {
	width := w.cfg.World.Width
	trailing := w.cfg.World.Height + w.cfg.World.EntityTrailMargin

	for i := range w.entities {
		e := &w.entities[i]
		e.Y += speed
		if e.VX != 0 {
			e.X += e.VX
			if e.X < 0 || e.X+e.W > width {
				e.VX = -e.VX
			}
		}
		if e.Y > trailing {
			e.Dead = true
		}
	}

	leading := -w.cfg.Weapon.LeadMargin
	for i := range w.projectiles {
		p := &w.projectiles[i]
		p.Y += p.VY
		if p.Y < leading {
			p.Dead = true
		}
	}
}

// Resolve runs every collision test for the frame against the craft box.
// Projectiles are resolved first, so a hostile shot down this frame cannot
// also kill the craft.
func (w *World) Resolve(craft core.Rect) Contact {
	var c Contact
	c.Kills = w.resolveProjectiles()

	if w.HitsLand(craft) {
		c.Cause = CauseLand
	}

	hitbox := craft.Inset(w.cfg.Player.HitboxInset)
	for _, e := range w.entities {
		if e.Dead || !hitbox.Overlaps(e.Rect()) {
			continue
		}
		if !e.Kind.Fatal() {
			c.Refuel += w.cfg.Fuel.RefillPerFrame
			continue
		}
		if c.Cause == "" {
			c.Cause = e.Kind.String()
		}
	}
	return c
}

// resolveProjectiles lets each live projectile destroy the first live entity
// it overlaps, in existence order. The projectile is consumed by the hit.
func (w *World) resolveProjectiles() []Kill {
	var kills []Kill
	for i := range w.projectiles {
		p := &w.projectiles[i]
		if p.Dead {
			continue
		}
		box := p.Rect()
		for j := range w.entities {
			e := &w.entities[j]
			if e.Dead || !box.Overlaps(e.Rect()) {
				continue
			}
			e.Dead = true
			p.Dead = true
			x, y := e.Rect().Center()
			kills = append(kills, Kill{Kind: e.Kind, X: x, Y: y})
			break
		}
	}
	return kills
}

// HitsLand reports whether the craft box touches land in any slice whose y
// lies within its vertical extent. Banks use the full box; islands use a box
// shrunk by the island inset.
func (w *World) HitsLand(craft core.Rect) bool {
	island := craft.Inset(w.cfg.Player.IslandHitboxInset)
	for _, s := range w.slices {
		if s.Y < craft.Y || s.Y > craft.Bottom() {
			continue
		}
		if !craft.WithinSpan(s.Left, s.Right) {
			return true
		}
		if s.HasIsland {
			band := core.NewRect(s.Island.Left, s.Y, s.Island.Width(), w.terrain.SliceStep)
			if island.Overlaps(band) {
				return true
			}
		}
	}
	return false
}

// SafeX returns a craft x that keeps the craft clear of land in every row it
// covers: the middle of the widest stretch of water that fits it. Rows are
// taken from the craft's center outward; when no x clears all of them, the
// result clears as many rows around the center as possible and ok is false.
func (w *World) SafeX(craft core.Rect) (x float64, ok bool) {
	_, cy := craft.Center()
	inset := w.cfg.Player.IslandHitboxInset
	box := craft.Inset(inset)

	type row struct {
		dist    float64
		allowed []Span
	}
	var rows []row
	for _, s := range w.slices {
		if s.Y < craft.Y || s.Y > craft.Bottom() {
			continue
		}
		allowed := []Span{{Left: s.Left, Right: s.Right - craft.W}}
		if s.HasIsland && box.Y < s.Y+w.terrain.SliceStep && s.Y < box.Bottom() {
			allowed = []Span{
				{Left: s.Left, Right: math.Min(s.Right-craft.W, s.Island.Left-craft.W+inset)},
				{Left: math.Max(s.Left, s.Island.Right-inset), Right: s.Right - craft.W},
			}
		}
		rows = append(rows, row{dist: math.Abs(s.Y - cy), allowed: allowed})
	}
	slices.SortStableFunc(rows, func(a, b row) int {
		return cmp.Compare(a.dist, b.dist)
	})

	free := []Span{{Left: 0, Right: w.cfg.World.Width - craft.W}}
	ok = true
	for _, r := range rows {
		next := intersectSpans(free, r.allowed)
		if len(next) == 0 {
			ok = false
			break
		}
		free = next
	}
	if len(free) == 0 {
		return craft.X, false
	}

	best := free[0]
	for _, f := range free[1:] {
		if f.Width() > best.Width() {
			best = f
		}
	}
	return best.Center(), ok
}

// intersectSpans returns the non-empty pairwise intersections of a and b.
func intersectSpans(a, b []Span) []Span {
	var out []Span
	for _, x := range a {
		for _, y := range b {
			lo := math.Max(x.Left, y.Left)
			hi := math.Min(x.Right, y.Right)
			if lo <= hi {
				out = append(out, Span{Left: lo, Right: hi})
			}
		}
	}
	return out
}

// SliceAt returns the slice closest to world y.
func (w *World) SliceAt(y float64) (Slice, bool) {
	if len(w.slices) == 0 {
		return Slice{}, false
	}
	i := int(math.Round((w.slices[0].Y - y) / w.terrain.SliceStep))
	i = core.Clamp(i, 0, len(w.slices)-1)
	return w.slices[i], true
}

// ClearAround removes every entity lower than distance above y, so a
// respawned craft at y cannot be hit immediately.
func (w *World) ClearAround(y, distance float64) {
	limit := y - distance
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.Y < limit {
			kept = append(kept, e)
		}
	}
	clear(w.entities[len(kept):])
	w.entities = kept
}

// Retire drops entities and projectiles marked for removal.
func (w *World) Retire() {
	liveE := w.entities[:0]
	for _, e := range w.entities {
		if !e.Dead {
			liveE = append(liveE, e)
		}
	}
	clear(w.entities[len(liveE):])
	w.entities = liveE

	liveP := w.projectiles[:0]
	for _, p := range w.projectiles {
		if !p.Dead {
			liveP = append(liveP, p)
		}
	}
	clear(w.projectiles[len(liveP):])
	w.projectiles = liveP
}

// Distance returns the scroll distance covered this game.
func (w *World) Distance() float64 {
	return w.distance
}

// Slices returns the live terrain window, trailing edge first.
// The slice is owned by the world.
func (w *World) Slices() []Slice {
	return w.slices
}

// Entities returns the live entities. The slice is owned by the world.
func (w *World) Entities() []Entity {
	return w.entities
}

// Projectiles returns the live projectiles. The slice is owned by the world.
func (w *World) Projectiles() []Projectile {
	return w.projectiles
}
