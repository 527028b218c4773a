package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/river-raid/internal/core"
)

// DefaultHoldWindow is how long a steering, throttle or fire key counts as
// held after its last press. Terminals report presses and auto-repeat only,
// never releases.
const DefaultHoldWindow = 120 * time.Millisecond

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Fire       key.Binding
	Start      key.Binding
	Pause      key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Fire, k.Start, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Start, k.Pause, k.Back},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "faster"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "slower"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Screenshot and help keys are not actions and map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// Input turns key presses into per-tick intent frames.
// Held actions stay set until the hold window after their last press
// expires. Start is edge-triggered and reaches exactly one frame.
type Input struct {
	window  time.Duration
	held    map[core.Action]time.Time
	pending map[core.Action]bool
}

// NewInput creates an input tracker. A non-positive window uses DefaultHoldWindow.
func NewInput(window time.Duration) *Input {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &Input{
		window:  window,
		held:    make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// Press records a key press at the given time.
func (in *Input) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionFire:
		// Reversing direction releases the opposite key at once.
		if opp, ok := opposite(a); ok {
			delete(in.held, opp)
		}
		in.held[a] = now.Add(in.window)
		in.pending[a] = true
	case core.ActionStart:
		in.pending[a] = true
	}
}

// Frame builds the intent frame for a tick at the given time.
// Every press reaches at least one frame even if the tick is late.
func (in *Input) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range in.held {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(in.held, a)
		}
	}
	for a := range in.pending {
		frame.Set(a)
		delete(in.pending, a)
	}
	return frame
}

// Release drops every held and pending action.
func (in *Input) Release() {
	clear(in.held)
	clear(in.pending)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}
