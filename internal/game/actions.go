package game

import (
	"torch/internal/component"
	"torch/internal/input"
	"torch/internal/stairs"
	"torch/internal/turn"
	"torch/internal/world"
)

// applyCommand is the turn.Action for one resolved input command: it
// performs the command against the world and reports whether it consumed a
// turn.
func (g *Game) applyCommand(w *world.World, cmd input.Command) turn.Result {
	f := w.CurrentFloor()
	player := f.Entity(g.playerID)
	if player == nil {
		return turn.DidNotAct
	}

	if dx, dy, ok := input.Delta(cmd.Action); ok {
		return g.tryMove(f, player, dx, dy)
	}

	switch cmd.Action {
	case input.Attack:
		return g.tryAttack(f, player, cmd.DX, cmd.DY)
	case input.PlaceTorch:
		return g.tryPlaceTorch(f, player, cmd.DX, cmd.DY)
	case input.ToggleLantern:
		player.Capabilities ^= component.LightSource
		return turn.Acted
	case input.Pickup:
		return g.tryPickup(f, player)
	case input.Descend:
		if err := stairs.Descend(w, g.playerID, g.generateNextFloor); err != nil {
			return turn.DidNotAct
		}
		g.depth++
		return turn.Acted
	case input.Ascend:
		if err := stairs.Ascend(w, g.playerID, g.generateNextFloor); err != nil {
			return turn.DidNotAct
		}
		g.depth--
		return turn.Acted
	case input.DebugRefuel:
		player.Fuel += 50
		return turn.Acted
	}
	return turn.DidNotAct
}

func (g *Game) tryMove(f *world.Floor, player *component.Entity, dx, dy int) turn.Result {
	tx, ty := player.X+dx, player.Y+dy
	tile := f.At(tx, ty)
	if tile.Occupant != component.NoEntity {
		// Bumping another entity is not a move; attacking is a separate,
		// explicit action (f + direction).
		return turn.DidNotAct
	}
	if err := f.MoveTo(player.ID, tx, ty); err != nil {
		return turn.DidNotAct
	}
	return turn.Acted
}

func (g *Game) tryAttack(f *world.Floor, player *component.Entity, dx, dy int) turn.Result {
	tx, ty := player.X+dx, player.Y+dy
	tile := f.At(tx, ty)
	if tile.Occupant == component.NoEntity {
		return turn.Acted // a swing at nothing still consumes a turn (S5's "miss")
	}
	target := f.Entity(tile.Occupant)
	if target == nil || target.Combat == nil {
		return turn.Acted
	}
	target.Combat.HP -= 2
	return turn.Acted
}

func (g *Game) tryPlaceTorch(f *world.Floor, player *component.Entity, dx, dy int) turn.Result {
	if player.Torches <= 0 {
		return turn.DidNotAct
	}
	tx, ty := player.X+dx, player.Y+dy
	tile := f.At(tx, ty)
	if tile.Blocks || tile.Occupant != component.NoEntity {
		return turn.DidNotAct
	}
	torch := &component.Entity{
		ID:           g.w.NextEntityID(),
		Kind:         component.Torch,
		Capabilities: component.Flicker | component.LightSource,
		X:            tx, Y: ty,
		Color: torchColor, Glyph: "i",
		Light: &component.LightEmission{Brightness: torchBrightness, Color: torchColor},
	}
	if err := f.AddEntity(player.FloorID, torch); err != nil {
		return turn.DidNotAct
	}
	player.Torches--
	return turn.Acted
}

func (g *Game) tryPickup(f *world.Floor, player *component.Entity) turn.Result {
	tile := f.MutableAt(player.X, player.Y)
	if tile == nil || len(tile.Items) == 0 {
		return turn.DidNotAct
	}
	n := len(tile.Items)
	item := tile.Items[n-1]
	tile.Items = tile.Items[:n-1]
	player.Inventory = append(player.Inventory, item)
	return turn.Acted
}
