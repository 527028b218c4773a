package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventGameStarted EventKind = iota
	EventEntityDestroyed
	EventBridgeDestroyed
	EventRefuel
	EventDeath
	EventGameOver
)

// String returns a short name for the event kind, used as a log message.
func (k EventKind) String() string {
	switch k {
	case EventGameStarted:
		return "game started"
	case EventEntityDestroyed:
		return "entity destroyed"
	case EventBridgeDestroyed:
		return "bridge destroyed"
	case EventRefuel:
		return "refuel"
	case EventDeath:
		return "death"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by a tick. Events are informational only;
// nothing the platform does with them feeds back into the simulation.
type Event struct {
	Kind   EventKind
	Detail string // e.g. the entity kind or the cause of death
	Value  int    // score awarded, lives left, or final score depending on Kind
}
