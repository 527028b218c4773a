// Package raid implements a River Raid-style scrolling shooter.
// The craft flies up a procedurally generated river, shooting hostiles and
// bridges while keeping its fuel topped up at depots.
package raid

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/river-raid/internal/config"
	"github.com/vovakirdan/river-raid/internal/core"
)

// State is the game state machine position.
type State int

const (
	StateMenu     State = iota // Waiting for the first start
	StatePlaying               // A run is in progress
	StateGameOver              // Lives exhausted; waiting for a restart
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Player is the craft and the run's bookkeeping.
type Player struct {
	X, Y  float64
	W, H  float64
	VX    float64 // Lateral movement applied this frame
	Speed float64 // Scroll speed; doubles as the throttle
	Fuel  float64
	Score int
	Lives int
}

// Rect returns the craft's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the clock used for the fire cooldown.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithRand replaces the seeded generator. Reset no longer reseeds it.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
		g.injectedRNG = true
	}
}

// palette holds the burst colors per kind.
type palette struct {
	player  core.Color
	hostile core.Color
	depot   core.Color
	bridge  core.Color
}

func newPalette(cfg config.ParticleConfig) palette {
	return palette{
		player:  colorOr(cfg.PlayerColor, core.ColorBrightRed),
		hostile: colorOr(cfg.HostileColor, core.ColorBrightYellow),
		depot:   colorOr(cfg.DepotColor, core.ColorBrightMagenta),
		bridge:  colorOr(cfg.BridgeColor, core.ColorYellow),
	}
}

func (p palette) forKind(k EntityKind) core.Color {
	switch k {
	case KindDepot:
		return p.depot
	case KindBridge:
		return p.bridge
	default:
		return p.hostile
	}
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// Game implements the River Raid simulation.
type Game struct {
	cfg        config.RaidConfig
	difficulty *config.DifficultyManager
	world      *World
	particles  *Particles
	palette    palette

	rng         Rand
	injectedRNG bool
	clock       Clock
	runtime     core.RuntimeConfig

	state     State
	player    Player
	level     int
	tick      uint64
	lastShot  time.Time
	hasShot   bool
	refueling bool
}

// New creates a game in the menu state. The configuration must be valid.
func New(cfg config.RaidConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		particles:  NewParticles(NewParticleParams(cfg.Particles)),
		palette:    newPalette(cfg.Particles),
		clock:      systemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "raid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "River Raid"
}

// Reset reseeds the generator and returns to the menu with a fresh river
// behind the title.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.injectedRNG {
		g.rng = NewSimpleRNG(rc.Seed)
	}
	g.world = NewWorld(&g.cfg, g.difficulty, g.rng)
	g.newRun()
	g.state = StateMenu
}

// newRun resets the player, the world and the particles for a new game.
// Starting from the menu and restarting after game over both come here.
func (g *Game) newRun() {
	w := g.cfg.World
	p := g.cfg.Player
	g.player = Player{
		X:     g.defaultX(),
		Y:     w.Height - p.BottomOffset,
		W:     p.Width,
		H:     p.Height,
		Speed: g.cfg.Speed.Initial,
		Fuel:  g.cfg.Fuel.Max,
		Lives: p.StartLives,
	}
	g.level = g.difficulty.StartLevel()
	g.tick = 0
	g.hasShot = false
	g.lastShot = time.Time{}
	g.refueling = false
	g.particles.Clear()
	g.world.Reset(g.level)
}

func (g *Game) defaultX() float64 {
	return g.cfg.World.Width/2 - g.cfg.Player.Width/2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.state {
	case StateMenu, StateGameOver:
		if in.Has(core.ActionStart) {
			g.newRun()
			g.state = StatePlaying
			events = append(events, core.Event{Kind: core.EventGameStarted, Value: g.player.Lives})
		}
	case StatePlaying:
		g.tick++
		events = g.play(in)
	}

	// Explosions keep fading on the game over screen.
	g.particles.Advance()

	return core.StepResult{State: g.State(), Events: events}
}

// play runs one frame of a run in progress.
func (g *Game) play(in core.InputFrame) []core.Event {
	g.steer(in)
	g.throttle(in)
	if in.Has(core.ActionFire) {
		g.fire()
	}

	g.world.Scroll(g.player.Speed, g.level)
	g.world.Advance(g.player.Speed)
	contact := g.world.Resolve(g.player.Rect())

	events := g.award(contact.Kills, nil)
	events = g.burnFuel(contact.Refuel, events)

	// Every fatal condition funnels into a single death.
	cause := contact.Cause
	if cause == "" && g.player.Fuel <= 0 {
		cause = CauseFuel
	}
	if cause != "" {
		events = g.die(cause, events)
	}

	g.world.Retire()
	return events
}

func (g *Game) steer(in core.InputFrame) {
	var dx float64
	if in.Has(core.ActionLeft) {
		dx -= g.cfg.Player.LateralSpeed
	}
	if in.Has(core.ActionRight) {
		dx += g.cfg.Player.LateralSpeed
	}
	x := core.ClampF(g.player.X+dx, 0, g.cfg.World.Width-g.player.W)
	g.player.VX = x - g.player.X
	g.player.X = x
}

func (g *Game) throttle(in core.InputFrame) {
	s := g.cfg.Speed
	up := in.Has(core.ActionUp)
	down := in.Has(core.ActionDown)

	switch {
	case up && !down:
		g.player.Speed = math.Min(g.player.Speed+s.Accel, s.Max)
	case down && !up:
		g.player.Speed = math.Max(g.player.Speed-s.Decel, s.Min)
	default:
		diff := s.Initial - g.player.Speed
		if math.Abs(diff) <= s.Drift {
			g.player.Speed = s.Initial
		} else {
			g.player.Speed += math.Copysign(s.Drift, diff)
		}
	}
}

func (g *Game) fire() {
	now := g.clock.Now()
	cooldown := time.Duration(g.cfg.Weapon.CooldownMS) * time.Millisecond
	if g.hasShot && now.Sub(g.lastShot) < cooldown {
		return
	}
	g.hasShot = true
	g.lastShot = now

	size := g.cfg.Weapon.ProjectileSize
	g.world.Fire(g.player.X+g.player.W/2-size/2, g.player.Y)
}

// award scores the kills of the frame. Bridges also raise the level.
func (g *Game) award(kills []Kill, events []core.Event) []core.Event {
	sc := g.cfg.Scoring
	for _, k := range kills {
		var reward int
		switch k.Kind {
		case KindBridge:
			reward = sc.Bridge
			g.level++
		case KindDepot:
			reward = sc.Depot
		default:
			reward = sc.Hostile
		}
		g.player.Score += reward
		g.particles.Emit(k.X, k.Y, g.palette.forKind(k.Kind), g.rng)

		if k.Kind == KindBridge {
			events = append(events, core.Event{
				Kind:   core.EventBridgeDestroyed,
				Detail: fmt.Sprintf("level %d", g.level),
				Value:  reward,
			})
		} else {
			events = append(events, core.Event{
				Kind:   core.EventEntityDestroyed,
				Detail: k.Kind.String(),
				Value:  reward,
			})
		}
	}
	return events
}

// burnFuel applies depot refuelling, capped at the tank size, then the
// frame's consumption, which grows with speed above 1.
func (g *Game) burnFuel(refuel float64, events []core.Event) []core.Event {
	f := g.cfg.Fuel
	if refuel > 0 {
		g.player.Fuel = math.Min(g.player.Fuel+refuel, f.Max)
		if !g.refueling {
			events = append(events, core.Event{Kind: core.EventRefuel})
		}
	}
	g.refueling = refuel > 0

	g.player.Fuel = math.Max(g.player.Fuel-g.consumption(), 0)
	return events
}

// consumption returns the fuel burned per frame at the current speed.
func (g *Game) consumption() float64 {
	factor := g.cfg.Fuel.IdleFactor
	if g.player.Speed > 1 {
		factor = g.player.Speed / 2
	}
	return g.cfg.Fuel.ConsumptionRate * factor
}

// die is the only way a life is lost.
func (g *Game) die(cause string, events []core.Event) []core.Event {
	cx, cy := g.player.Rect().Center()
	g.particles.Emit(cx, cy, g.palette.player, g.rng)

	g.player.Lives--
	events = append(events, core.Event{Kind: core.EventDeath, Detail: cause, Value: g.player.Lives})

	if g.player.Lives <= 0 {
		g.player.Lives = 0
		g.player.VX = 0
		g.state = StateGameOver
		return append(events, core.Event{Kind: core.EventGameOver, Value: g.player.Score})
	}

	g.respawn()
	return events
}

// respawn puts the craft back at the default x with a full tank and clears
// the entities around it. If the default x is over land the craft is moved
// to the widest stretch of water across all of its rows.
func (g *Game) respawn() {
	g.player.X = g.defaultX()
	g.player.VX = 0
	g.player.Fuel = g.cfg.Fuel.Max
	g.refueling = false
	g.world.ClearAround(g.player.Y, g.cfg.Player.SafetyDistance)

	if g.world.HitsLand(g.player.Rect()) {
		x, _ := g.world.SafeX(g.player.Rect())
		g.player.X = core.ClampF(x, 0, g.cfg.World.Width-g.player.W)
	}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.Score,
		Lives:    g.player.Lives,
		Playing:  g.state == StatePlaying,
		GameOver: g.state == StateGameOver,
	}
}

// Phase returns the state machine position.
func (g *Game) Phase() State {
	return g.state
}

// Level returns the difficulty counter. It starts at the configured start
// level and grows by one per destroyed bridge.
func (g *Game) Level() int {
	return g.level
}

// Player returns a copy of the craft state.
func (g *Game) Player() Player {
	return g.player
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.RaidConfig {
	return g.cfg
}

// Distance returns how far the current or last run scrolled.
func (g *Game) Distance() float64 {
	return g.world.Distance()
}
