// Package mapgen carves cellular-automaton cave floors and scatters the
// player, stairs, and entities onto them.
package mapgen

import (
	"math/rand"

	"torch/internal/colorx"
	"torch/internal/component"
	"torch/internal/world"
)

// Config controls one floor's cave carving and population.
type Config struct {
	H, W           int
	FillRate       float64 // initial chance a cell starts alive (wall)
	Iterations     int
	Birth, Survive int
	SnakeCount     int
}

// Default is the standard cave tuning: 45% fill, 12 iterations of
// birth=5/survive=4, ten wandering snakes per floor.
func Default(h, w int) Config {
	return Config{H: h, W: w, FillRate: 0.45, Iterations: 12, Birth: 5, Survive: 4, SnakeCount: 10}
}

// Carve returns a new floor whose tiles are the result of cellular-automaton
// cave generation: a random fill followed by birth/survive iterations,
// written into wall ('#', blocks) or floor ('.', open) tiles.
func Carve(cfg Config, rng *rand.Rand) *world.Floor {
	grid := populateGrid(cfg, rng)
	for i := 0; i < cfg.Iterations; i++ {
		grid = iterateGrid(grid, cfg)
	}

	f := world.NewFloor(cfg.H, cfg.W, "cave")
	for y := 0; y < cfg.H; y++ {
		for x := 0; x < cfg.W; x++ {
			t := f.MutableAt(x, y)
			if grid[y][x] == 1 {
				t.Token = "#"
				t.Blocks = true
			} else {
				t.Token = "."
				t.Blocks = false
				t.Kind = world.TileFloor
			}
			t.SeenAs.Token = " "
		}
	}
	return f
}

func populateGrid(cfg Config, rng *rand.Rand) [][]int {
	grid := make([][]int, cfg.H)
	for y := range grid {
		grid[y] = make([]int, cfg.W)
		for x := range grid[y] {
			if rng.Float64() < cfg.FillRate {
				grid[y][x] = 1
			}
		}
	}
	return grid
}

func iterateGrid(grid [][]int, cfg Config) [][]int {
	h, w := len(grid), len(grid[0])
	next := make([][]int, h)
	for y := range next {
		next[y] = make([]int, w)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alive := aliveNeighbours(grid, y, x)
			if grid[y][x] == 1 {
				if alive >= cfg.Survive {
					next[y][x] = 1
				}
			} else {
				if alive >= cfg.Birth {
					next[y][x] = 1
				}
			}
		}
	}
	return next
}

// cellAt treats out-of-bounds neighbours as alive (walls), so caves never
// open onto the map edge.
func cellAt(grid [][]int, y, x int) int {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[0]) {
		return 1
	}
	return grid[y][x]
}

func aliveNeighbours(grid [][]int, y, x int) int {
	alive := 0
	for _, d := range [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}} {
		alive += cellAt(grid, y+d[0], x+d[1])
	}
	return alive
}

// RandomOpenTile retries a uniform-random pick until it lands on a
// non-blocking tile; used to place the player, items, and stair endpoints.
func RandomOpenTile(f *world.Floor, rng *rand.Rand) (int, int) {
	for {
		x := rng.Intn(f.W)
		y := rng.Intn(f.H)
		if !f.At(x, y).Blocks {
			return x, y
		}
	}
}

// PlaceSword drops one sword item on a random open tile.
func PlaceSword(f *world.Floor, rng *rand.Rand) {
	x, y := RandomOpenTile(f, rng)
	t := f.MutableAt(x, y)
	t.Items = append(t.Items, component.Item{
		Name:  "Sword",
		Glyph: "/",
		Color: colorx.Color{R: 0x55, G: 0x66, B: 0x77},
	})
}

// ScatterSnakes spawns cfg.SnakeCount wandering snakes on random open tiles.
func ScatterSnakes(w *world.World, floorID int, cfg Config, rng *rand.Rand, newEntityID func() component.EntityID) {
	f := w.Floors[floorID]
	for i := 0; i < cfg.SnakeCount; i++ {
		x, y := RandomOpenTile(f, rng)
		if f.At(x, y).Occupant != component.NoEntity {
			continue
		}
		snake := &component.Entity{
			ID:           newEntityID(),
			Kind:         component.Snake,
			Capabilities: component.Combat | component.Charge,
			X:            x,
			Y:            y,
			Color:        colorx.Color{R: 0x33, G: 0xaa, B: 0x33},
			Glyph:        "s",
			BlocksLight:  false,
			Combat:       &component.CombatStats{HP: 4, HPMax: 4},
			Charge:       &component.ChargeState{},
		}
		f.AddEntity(floorID, snake)
	}
}
