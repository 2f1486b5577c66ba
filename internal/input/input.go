// Package input implements the canonical key bindings: hjkl/yubn movement,
// f/t two-key direction prompts for attack and torch placement, and the
// remaining single-key commands.
package input

import "github.com/gdamore/tcell/v2"

// Action is a player-requested command, independent of any particular key.
type Action uint8

const (
	None Action = iota
	MoveW
	MoveS
	MoveN
	MoveE
	MoveNW
	MoveNE
	MoveSW
	MoveSE
	Attack
	PlaceTorch
	ToggleLantern
	Descend
	Ascend
	Pickup
	DebugRefuel
	Quit
)

// Delta returns the (dx, dy) a movement action represents; ok is false for
// non-movement actions.
func Delta(a Action) (dx, dy int, ok bool) {
	switch a {
	case MoveW:
		return -1, 0, true
	case MoveE:
		return 1, 0, true
	case MoveN:
		return 0, -1, true
	case MoveS:
		return 0, 1, true
	case MoveNW:
		return -1, -1, true
	case MoveNE:
		return 1, -1, true
	case MoveSW:
		return -1, 1, true
	case MoveSE:
		return 1, 1, true
	}
	return 0, 0, false
}

// keyToAction maps a raw key event to an action, independent of any
// two-key prompt state.
func keyToAction(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyEscape {
		return Quit
	}
	switch ev.Rune() {
	case 'h':
		return MoveW
	case 'j':
		return MoveS
	case 'k':
		return MoveN
	case 'l':
		return MoveE
	case 'y':
		return MoveNW
	case 'u':
		return MoveNE
	case 'b':
		return MoveSW
	case 'n':
		return MoveSE
	case 'f':
		return Attack
	case 't':
		return PlaceTorch
	case 'e':
		return ToggleLantern
	case '>':
		return Descend
	case '<':
		return Ascend
	case ',':
		return Pickup
	case 'E':
		return DebugRefuel
	case 'Q':
		return Quit
	}
	return None
}

// Command is a fully resolved player command: an action, plus a direction
// in DX/DY when the action is an attack or torch placement. Movement
// commands leave DX/DY zero; their direction comes from Delta(Action).
type Command struct {
	Action Action
	DX, DY int
}

// prompt names which directional action is awaiting its direction key.
type prompt uint8

const (
	noPrompt prompt = iota
	attackPrompt
	torchPrompt
)

// Reader turns a stream of key events into Commands, holding the small
// amount of state needed for f/t's two-key "action, then direction"
// sequence.
type Reader struct {
	pending prompt
}

// Handle consumes one key event and returns the command it completes, or
// Command{Action: None} if the event starts (or is irrelevant to) a
// two-key sequence still in progress.
func (r *Reader) Handle(ev *tcell.EventKey) Command {
	if r.pending != noPrompt {
		dx, dy, ok := Delta(keyToAction(ev))
		action := r.pending
		r.pending = noPrompt
		if !ok {
			return Command{Action: None}
		}
		if action == attackPrompt {
			return Command{Action: Attack, DX: dx, DY: dy}
		}
		return Command{Action: PlaceTorch, DX: dx, DY: dy}
	}

	a := keyToAction(ev)
	switch a {
	case Attack:
		r.pending = attackPrompt
		return Command{Action: None}
	case PlaceTorch:
		r.pending = torchPrompt
		return Command{Action: None}
	}
	return Command{Action: a}
}
