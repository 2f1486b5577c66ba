package stairs

import (
	"testing"

	"torch/internal/component"
	"torch/internal/world"
)

func openFloor(n int) *world.Floor {
	f := world.NewFloor(n, n, "cave")
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			t := f.MutableAt(x, y)
			t.Token = "."
			t.Blocks = false
			t.Kind = world.TileFloor
		}
	}
	return f
}

// Floor 0 downstair at (50,50) paired to floor 1 upstair at (20,20).
func TestStairRoundTrip(t *testing.T) {
	w := world.New()

	f0 := openFloor(60)
	f0.MutableAt(50, 50).Kind = world.TileDownstair
	f0.Downstair = world.StairEndpoint{Floor: 1, X: 20, Y: 20}
	f0.Generated = true
	w.AddFloor(f0)

	f1 := openFloor(30)
	f1.MutableAt(20, 20).Kind = world.TileUpstair
	f1.Upstair = world.StairEndpoint{Floor: 0, X: 50, Y: 50}
	w.AddFloor(f1)

	playerID := w.NextEntityID()
	player := &component.Entity{ID: playerID, Kind: component.Player, X: 50, Y: 50}
	f0.AddEntity(0, player)

	generated := false
	gen := func(w *world.World, floorID int) {
		w.Floors[floorID].Generated = true
		generated = true
	}

	if err := Descend(w, playerID, gen); err != nil {
		t.Fatalf("Descend: %v", err)
	}
	if w.Current != 1 {
		t.Fatalf("Current = %d, want 1", w.Current)
	}
	if player.X != 20 || player.Y != 20 {
		t.Fatalf("player pos = (%d,%d), want (20,20)", player.X, player.Y)
	}
	if !generated || !w.Floors[1].Generated {
		t.Fatal("destination floor was not lazily generated")
	}

	if err := Ascend(w, playerID, gen); err != nil {
		t.Fatalf("Ascend: %v", err)
	}
	if w.Current != 0 {
		t.Fatalf("Current = %d, want 0", w.Current)
	}
	if player.X != 50 || player.Y != 50 {
		t.Fatalf("player pos = (%d,%d), want (50,50)", player.X, player.Y)
	}
}

func TestDescendWrongTileNoOp(t *testing.T) {
	w := world.New()
	f0 := openFloor(10)
	w.AddFloor(f0)
	playerID := w.NextEntityID()
	player := &component.Entity{ID: playerID, X: 1, Y: 1}
	f0.AddEntity(0, player)

	if err := Descend(w, playerID, func(*world.World, int) {}); err != world.ErrNoStair {
		t.Fatalf("Descend off a stair = %v, want ErrNoStair", err)
	}
	if w.Current != 0 {
		t.Fatal("failed descend changed current floor")
	}
}
