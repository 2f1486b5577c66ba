// Package stairs implements floor transitions: moving the player between
// floors at matched staircase endpoints, generating the destination floor
// lazily on first arrival.
package stairs

import (
	"torch/internal/component"
	"torch/internal/world"
)

// Generator builds and populates a floor the first time it is reached. It
// is supplied by internal/game (which carves with internal/mapgen) so this
// package stays free of any dependency on cave carving or spawning.
type Generator func(w *world.World, floorID int)

// Descend moves the player from a Downstair tile to its paired floor's
// upstair. It fails with ErrNoStair (consuming no turn) if the player is
// not standing on a downstair.
func Descend(w *world.World, playerID component.EntityID, generate Generator) error {
	return transition(w, playerID, generate, world.TileDownstair)
}

// Ascend moves the player from an Upstair tile to its paired floor's
// downstair.
func Ascend(w *world.World, playerID component.EntityID, generate Generator) error {
	return transition(w, playerID, generate, world.TileUpstair)
}

func transition(w *world.World, playerID component.EntityID, generate Generator, kind world.TileKind) error {
	f := w.CurrentFloor()
	player := f.Entity(playerID)
	if player == nil {
		return world.ErrNoStair
	}

	tile := f.At(player.X, player.Y)
	if tile.Kind != kind {
		return world.ErrNoStair
	}

	endpoint := func() world.StairEndpoint {
		if kind == world.TileDownstair {
			return f.Downstair
		}
		return f.Upstair
	}

	dest := endpoint()
	destFloor := w.Floors[dest.Floor]
	if !destFloor.Generated {
		// The generator fills in this floor's arrival coordinates once the
		// destination's own stair placement is known, so re-read the
		// endpoint afterward rather than trusting the pre-generation value.
		generate(w, dest.Floor)
		dest = endpoint()
		destFloor = w.Floors[dest.Floor]
	}

	f.Remove(playerID)
	player.X, player.Y = dest.X, dest.Y
	if err := destFloor.AddEntity(dest.Floor, player); err != nil {
		return err
	}

	w.Current = dest.Floor
	return nil
}
