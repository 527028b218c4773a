package raid

import "math"

// Snapshot is a deep copy of the game taken between ticks. Hosts may read it
// from any goroutine while the game keeps stepping.
type Snapshot struct {
	Tick     uint64
	State    State
	Player   Player
	Level    int
	Distance float64

	Slices      []Slice // Trailing edge first
	Entities    []Entity
	Projectiles []Projectile
	Particles   []Particle

	// RNG state when the game runs on its own SimpleRNG, zero otherwise
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	slices := make([]Slice, len(g.world.Slices()))
	for i, s := range g.world.Slices() {
		slices[i] = s.clone()
	}

	snap := Snapshot{
		Tick:        g.tick,
		State:       g.state,
		Player:      g.player,
		Level:       g.level,
		Distance:    g.world.Distance(),
		Slices:      slices,
		Entities:    append([]Entity(nil), g.world.Entities()...),
		Projectiles: append([]Projectile(nil), g.world.Projectiles()...),
		Particles:   append([]Particle(nil), g.particles.All()...),
	}
	if r, ok := g.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(f float64) {
		mix(math.Float64bits(f))
	}
	mixI := func(i int) {
		mix(uint64(i)) //#nosec G115 -- hash computation
	}

	mixI(int(snap.State))
	mixF(snap.Player.X)
	mixF(snap.Player.VX)
	mixF(snap.Player.Speed)
	mixF(snap.Player.Fuel)
	mixI(snap.Player.Score)
	mixI(snap.Player.Lives)
	mixI(snap.Level)
	mixF(snap.Distance)

	mixI(len(snap.Slices))
	for _, s := range snap.Slices {
		mixF(s.Y)
		mixF(s.Left)
		mixF(s.Right)
		if s.HasIsland {
			mixF(s.Island.Left)
			mixF(s.Island.Right)
		}
		for _, d := range s.Decorations {
			mixF(d.X)
			mixI(int(d.Kind))
		}
	}

	mixI(len(snap.Entities))
	for _, e := range snap.Entities {
		mixI(e.ID)
		mixI(int(e.Kind))
		mixF(e.X)
		mixF(e.Y)
		mixF(e.VX)
	}

	mixI(len(snap.Projectiles))
	for _, p := range snap.Projectiles {
		mixI(p.ID)
		mixF(p.X)
		mixF(p.Y)
	}

	mixI(len(snap.Particles))
	for _, p := range snap.Particles {
		mixF(p.X)
		mixF(p.Y)
		mixF(p.Life)
		mixI(int(p.Color))
	}

	mix(snap.RNGState)
	return h
}
