package raid

import (
	"github.com/vovakirdan/river-raid/internal/core"
)

// EntityKind is the closed set of things that share the channel with the craft.
type EntityKind int

const (
	KindVessel    EntityKind = iota // Surface vessel
	KindRotary                      // Helicopter
	KindFixedWing                   // Jet; the only kind that drifts by default
	KindDepot                       // Fuel depot; refuels on contact
	KindBridge                      // Full-width crossing; destroying one raises the level
)

// String returns the name of the kind, used in events and logs.
func (k EntityKind) String() string {
	switch k {
	case KindVessel:
		return "vessel"
	case KindRotary:
		return "helicopter"
	case KindFixedWing:
		return "jet"
	case KindDepot:
		return "depot"
	case KindBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// Fatal reports whether touching an entity of this kind kills the craft.
func (k EntityKind) Fatal() bool {
	return k != KindDepot
}

// Entity is a hostile, a depot or a bridge.
type Entity struct {
	ID   int
	Kind EntityKind
	X, Y float64
	W, H float64
	VX   float64 // Horizontal drift per frame
	Dead bool    // Marked for removal
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Projectile is a shot fired by the craft. It travels straight up.
type Projectile struct {
	ID   int
	X, Y float64
	VY   float64 // Negative: up
	Size float64
	Dead bool
}

// Rect returns the projectile's bounding box.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}
