package raid

import (
	"github.com/vovakirdan/river-raid/internal/config"
	"github.com/vovakirdan/river-raid/internal/core"
)

// Particle is a short-lived explosion fragment. Purely visual.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  core.Color
}

// ParticleParams control explosion bursts.
type ParticleParams struct {
	Count     int
	Spread    float64 // Each velocity component lies in [-Spread/2, Spread/2)
	LifeMin   float64
	LifeRange float64
	Decay     float64 // Life lost per frame
	Max       int     // Live particle cap; 0 means unlimited
	Highlight core.Color
}

// NewParticleParams derives burst parameters from the game configuration.
func NewParticleParams(cfg config.ParticleConfig) ParticleParams {
	return ParticleParams{
		Count:     cfg.Count,
		Spread:    cfg.Spread,
		LifeMin:   cfg.LifeMin,
		LifeRange: cfg.LifeRange,
		Decay:     cfg.Decay,
		Max:       cfg.Max,
		Highlight: colorOr(cfg.Highlight, core.ColorBrightWhite),
	}
}

// Explosion creates a burst of exactly p.Count particles at (x, y). Each
// particle takes either the base color or the highlight color.
func Explosion(x, y float64, base core.Color, rng Rand, p ParticleParams) []Particle {
	burst := make([]Particle, p.Count)
	half := p.Spread / 2
	for i := range burst {
		c := base
		if chance(rng, 0.5) {
			c = p.Highlight
		}
		burst[i] = Particle{
			X:     x,
			Y:     y,
			VX:    uniform(rng, -half, half),
			VY:    uniform(rng, -half, half),
			Life:  p.LifeMin + rng.Float64()*p.LifeRange,
			Color: c,
		}
	}
	return burst
}

// Particles owns the live particle set.
type Particles struct {
	params ParticleParams
	items  []Particle
}

// NewParticles creates an empty particle set.
func NewParticles(p ParticleParams) *Particles {
	return &Particles{params: p}
}

// Emit adds an explosion burst. When the cap is exceeded the oldest
// particles are dropped.
func (ps *Particles) Emit(x, y float64, base core.Color, rng Rand) {
	ps.items = append(ps.items, Explosion(x, y, base, rng, ps.params)...)
	if ps.params.Max > 0 && len(ps.items) > ps.params.Max {
		over := len(ps.items) - ps.params.Max
		ps.items = append(ps.items[:0], ps.items[over:]...)
	}
}

// Advance integrates every particle by one frame and removes the expired ones.
func (ps *Particles) Advance() {
	live := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= ps.params.Decay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(ps.items[len(live):])
	ps.items = live
}

// Clear removes all particles.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.items)
}

// All returns the live particles. The slice is owned by the set and is only
// valid until the next call that modifies it.
func (ps *Particles) All() []Particle {
	return ps.items
}
