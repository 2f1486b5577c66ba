package world

import (
	"testing"

	"torch/internal/component"
)

func openFloor(h, w int) *Floor {
	f := NewFloor(h, w, "test")
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := f.MutableAt(x, y)
			t.Token = "."
			t.Blocks = false
			t.Kind = TileFloor
		}
	}
	return f
}

func TestOutOfBoundsSentinel(t *testing.T) {
	f := openFloor(3, 3)
	tile := f.At(-1, 0)
	if tile.Token != " " || tile.Blocks {
		t.Fatalf("sentinel tile wrong: %+v", tile)
	}
	if f.MutableAt(10, 10) != nil {
		t.Fatal("MutableAt should return nil out of bounds")
	}
}

func TestAddEntityOccupiesTile(t *testing.T) {
	f := openFloor(3, 3)
	e := &component.Entity{ID: 1, Kind: component.Player, X: 1, Y: 1}
	if err := f.AddEntity(0, e); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	tile := f.At(1, 1)
	if tile.Occupant != e.ID {
		t.Fatalf("tile occupant = %v, want %v", tile.Occupant, e.ID)
	}
	if e.FloorID != 0 {
		t.Fatalf("entity FloorID = %d, want 0", e.FloorID)
	}
}

func TestAddEntityRejectsOccupiedTile(t *testing.T) {
	f := openFloor(3, 3)
	a := &component.Entity{ID: 1, X: 1, Y: 1}
	b := &component.Entity{ID: 2, X: 1, Y: 1}
	if err := f.AddEntity(0, a); err != nil {
		t.Fatal(err)
	}
	if err := f.AddEntity(0, b); err != ErrOccupied {
		t.Fatalf("AddEntity second entity = %v, want ErrOccupied", err)
	}
}

// A successful move leaves exactly one tile with the occupant.
func TestMoveAtomicity(t *testing.T) {
	f := openFloor(5, 5)
	e := &component.Entity{ID: 1, X: 1, Y: 1}
	if err := f.AddEntity(0, e); err != nil {
		t.Fatal(err)
	}
	if err := f.MoveTo(e.ID, 2, 1); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if f.At(1, 1).Occupant == e.ID {
		t.Fatal("old tile still holds occupant")
	}
	if f.At(2, 1).Occupant != e.ID {
		t.Fatal("new tile does not hold occupant")
	}
	if e.X != 2 || e.Y != 1 {
		t.Fatalf("entity position not updated: (%d,%d)", e.X, e.Y)
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	f := openFloor(3, 3)
	e := &component.Entity{ID: 1, X: 0, Y: 0}
	if err := f.AddEntity(0, e); err != nil {
		t.Fatal(err)
	}
	wall := f.MutableAt(1, 0)
	wall.Blocks = true
	if err := f.MoveTo(e.ID, 1, 0); err != ErrBlocked {
		t.Fatalf("MoveTo into wall = %v, want ErrBlocked", err)
	}
}

func TestMoveOccupied(t *testing.T) {
	f := openFloor(3, 3)
	a := &component.Entity{ID: 1, X: 0, Y: 0}
	b := &component.Entity{ID: 2, X: 1, Y: 0}
	f.AddEntity(0, a)
	f.AddEntity(0, b)
	if err := f.MoveTo(a.ID, 1, 0); err != ErrOccupied {
		t.Fatalf("MoveTo onto occupied tile = %v, want ErrOccupied", err)
	}
}

func TestClearLightsIdempotent(t *testing.T) {
	f := openFloor(2, 2)
	tile := f.MutableAt(0, 0)
	tile.Light = 5
	f.ClearLights()
	f.ClearLights()
	if f.At(0, 0).Light != 0 {
		t.Fatal("ClearLights did not reset light")
	}
}

func TestRemoveDeadSweepsCombatEntities(t *testing.T) {
	f := openFloor(3, 3)
	alive := &component.Entity{ID: 1, X: 0, Y: 0, Combat: &component.CombatStats{HP: 5, HPMax: 5}}
	dead := &component.Entity{ID: 2, X: 1, Y: 0, Combat: &component.CombatStats{HP: 0, HPMax: 5}}
	f.AddEntity(0, alive)
	f.AddEntity(0, dead)

	removed := f.RemoveDead()
	if len(removed) != 1 || removed[0] != dead.ID {
		t.Fatalf("RemoveDead = %v, want [%v]", removed, dead.ID)
	}
	if f.At(1, 0).Occupant != component.NoEntity {
		t.Fatal("dead entity's tile still has an occupant")
	}
	if f.Entity(alive.ID) == nil {
		t.Fatal("living entity was removed")
	}
}

func TestEntitiesInsertionOrder(t *testing.T) {
	f := openFloor(3, 3)
	ids := []component.EntityID{3, 1, 2}
	for i, id := range ids {
		f.AddEntity(0, &component.Entity{ID: id, X: i, Y: 0})
	}
	got := f.Entities()
	for i, e := range got {
		if e.ID != ids[i] {
			t.Fatalf("Entities()[%d] = %v, want %v", i, e.ID, ids[i])
		}
	}
}
