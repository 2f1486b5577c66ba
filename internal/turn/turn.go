// Package turn implements the turn controller: on a player action it
// clears per-tile light, updates every entity on the current floor in
// insertion order, checks for the player's death, and signals the caller
// to redraw. internal/game's flicker tick runs the same clear+relight shape
// on the Flicker-capable entities only, between turns.
package turn

import (
	"torch/internal/component"
	"torch/internal/light"
	"torch/internal/world"
)

// Result is the small integer result code an action reports: zero means the
// action consumed a turn, non-zero means it did not (a bumped wall, an
// empty pickup, a non-stair tile).
type Result uint8

const (
	Acted Result = iota
	DidNotAct
)

// Action performs one player action against the world and reports whether
// it consumed a turn.
type Action func(w *world.World) Result

// Updater is invoked once per turn for every entity on the current floor,
// in insertion order. It may deposit light, move, attack, spawn, or mark
// itself for removal by zeroing its own Combat.HP.
type Updater func(w *world.World, f *world.Floor, e *component.Entity)

// Outcome reports what happened after Advance ran one turn.
type Outcome struct {
	PlayerDied bool
}

// Advance runs one full turn: action, clear lights, per-entity update in
// list order, death check. It does nothing (and returns a zero Outcome) if
// action reports DidNotAct, since a rejected action must not clear lights
// or run updates; the ordering guarantees below only apply once a turn is
// actually taken.
func Advance(w *world.World, action Action, update Updater, playerID component.EntityID) Outcome {
	if action(w) == DidNotAct {
		return Outcome{}
	}

	f := w.CurrentFloor()
	light.Clear(f)

	for _, e := range f.Entities() {
		update(w, f, e)
	}

	f.RemoveDead()

	player := f.Entity(playerID)
	died := player == nil || (player.Combat != nil && player.Combat.Dead())
	return Outcome{PlayerDied: died}
}
