package game

import (
	"torch/internal/component"
	"torch/internal/light"
	"torch/internal/world"
)

// updateEntity is the turn.Updater dispatched once per turn for every
// entity on the current floor, in insertion order: a tagged-kind switch
// rather than a per-entity function pointer, per the design note on
// dynamic dispatch.
func (g *Game) updateEntity(w *world.World, f *world.Floor, e *component.Entity) {
	switch e.Kind {
	case component.Player:
		g.updatePlayer(f, e)
	case component.Torch:
		g.updateTorch(f, e)
	case component.Snake:
		g.updateSnake(f, e)
	}
}

func (g *Game) updatePlayer(f *world.Floor, player *component.Entity) {
	if !player.Capabilities.Has(component.LightSource) || player.Light == nil {
		return
	}
	if player.Fuel <= 0 {
		player.Capabilities &^= component.LightSource | component.Flicker
		return
	}
	light.Deposit(f, player.X, player.Y, player.Light.Brightness, player.Light.Color)
	player.Fuel -= fuelBurnPerTurn
	if player.Fuel < 0 {
		player.Fuel = 0
	}
}

func (g *Game) updateTorch(f *world.Floor, torch *component.Entity) {
	if torch.Light == nil {
		return
	}
	light.Deposit(f, torch.X, torch.Y, g.jitteredBrightness(torch.Light.Brightness), torch.Light.Color)
}

// updateSnake chases the player one step per turn, retreats if the step
// lands it on a brightly lit tile, and attacks on diagonal adjacency.
func (g *Game) updateSnake(f *world.Floor, snake *component.Entity) {
	player := f.Entity(g.playerID)
	if player == nil {
		return
	}

	dx, dy := step(snake.X, player.X), step(snake.Y, player.Y)
	if dx != 0 || dy != 0 {
		if err := f.MoveTo(snake.ID, snake.X+dx, snake.Y+dy); err == nil {
			if f.At(snake.X, snake.Y).Light > snakeRetreatLight {
				f.MoveTo(snake.ID, snake.X-dx, snake.Y-dy)
			}
		}
	}

	if abs(snake.X-player.X) == 1 && abs(snake.Y-player.Y) == 1 && player.Combat != nil {
		player.Combat.HP -= 1
	}
}

func step(from, to int) int {
	switch {
	case from < to:
		return 1
	case from > to:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
