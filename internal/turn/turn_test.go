package turn

import (
	"testing"

	"torch/internal/component"
	"torch/internal/world"
)

func newWorldWithPlayer(hp int) (*world.World, component.EntityID) {
	w := world.New()
	f := world.NewFloor(5, 5, "test")
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			t := f.MutableAt(x, y)
			t.Token = "."
			t.Blocks = false
			t.Kind = world.TileFloor
		}
	}
	w.AddFloor(f)
	id := w.NextEntityID()
	player := &component.Entity{ID: id, Kind: component.Player, X: 2, Y: 2, Combat: &component.CombatStats{HP: hp, HPMax: hp}}
	f.AddEntity(0, player)
	return w, id
}

func TestDidNotActSkipsUpdatesAndClear(t *testing.T) {
	w, playerID := newWorldWithPlayer(10)
	f := w.CurrentFloor()
	f.MutableAt(2, 2).Light = 9 // stray light that must survive a DidNotAct turn

	updateRan := false
	action := func(*world.World) Result { return DidNotAct }
	update := func(*world.World, *world.Floor, *component.Entity) { updateRan = true }

	out := Advance(w, action, update, playerID)
	if out.PlayerDied {
		t.Fatal("PlayerDied true on a rejected action")
	}
	if updateRan {
		t.Fatal("update ran despite DidNotAct")
	}
	if f.At(2, 2).Light != 9 {
		t.Fatal("clear_lights ran despite DidNotAct")
	}
}

func TestAdvanceOrdering(t *testing.T) {
	w, playerID := newWorldWithPlayer(10)
	f := w.CurrentFloor()
	f.MutableAt(2, 2).Light = 9

	var order []string
	action := func(*world.World) Result {
		order = append(order, "action")
		return Acted
	}
	update := func(w *world.World, f *world.Floor, e *component.Entity) {
		order = append(order, "update:"+e.Kind.String())
	}

	Advance(w, action, update, playerID)

	if len(order) < 2 || order[0] != "action" {
		t.Fatalf("action did not run first: %v", order)
	}
	if f.At(2, 2).Light != 0 {
		t.Fatal("clear_lights did not run before updates")
	}
}

// Player at hp=1, an update drops their hp to 0; Advance reports death.
func TestPlayerDeathDetected(t *testing.T) {
	w, playerID := newWorldWithPlayer(1)
	action := func(*world.World) Result { return Acted }
	update := func(w *world.World, f *world.Floor, e *component.Entity) {
		if e.ID == playerID {
			e.Combat.HP = 0
		}
	}

	out := Advance(w, action, update, playerID)
	if !out.PlayerDied {
		t.Fatal("expected PlayerDied = true")
	}
}

func TestRemovalSweepsDeadNonPlayerEntities(t *testing.T) {
	w, playerID := newWorldWithPlayer(10)
	f := w.CurrentFloor()
	snakeID := w.NextEntityID()
	snake := &component.Entity{ID: snakeID, Kind: component.Snake, X: 3, Y: 2, Combat: &component.CombatStats{HP: 1, HPMax: 1}}
	f.AddEntity(0, snake)

	action := func(*world.World) Result { return Acted }
	update := func(w *world.World, f *world.Floor, e *component.Entity) {
		if e.ID == snakeID {
			e.Combat.HP = 0
		}
	}
	Advance(w, action, update, playerID)

	if f.Entity(snakeID) != nil {
		t.Fatal("dead snake was not removed from the floor")
	}
	if f.At(3, 2).Occupant != component.NoEntity {
		t.Fatal("dead snake's tile still has an occupant")
	}
}
