package world

import "torch/internal/component"

// AddEntity inserts e into the floor at its current (X, Y): appends it to
// the entity list, stamps its FloorID, and writes it into the tile's
// occupant slot. Fails without mutating anything if the target is out of
// bounds or already occupied.
func (f *Floor) AddEntity(floorID int, e *component.Entity) error {
	t := f.MutableAt(e.X, e.Y)
	if t == nil {
		return ErrOutOfBounds
	}
	if t.Occupant != component.NoEntity {
		return ErrOccupied
	}
	e.FloorID = floorID
	f.entities[e.ID] = e
	f.order = append(f.order, e.ID)
	t.Occupant = e.ID
	return nil
}

// MoveTo relocates entity id to (x, y): fails with ErrOutOfBounds,
// ErrBlocked, or ErrOccupied without mutating any tile. On success the old
// tile's occupant is cleared and the new one set atomically with the
// entity's own coordinates, so exactly one tile holds the occupant
// afterward.
func (f *Floor) MoveTo(id component.EntityID, x, y int) error {
	e, ok := f.entities[id]
	if !ok {
		return ErrOutOfBounds
	}
	dst := f.MutableAt(x, y)
	if dst == nil {
		return ErrOutOfBounds
	}
	if dst.Blocks {
		return ErrBlocked
	}
	if dst.Occupant != component.NoEntity && dst.Occupant != id {
		return ErrOccupied
	}

	if src := f.MutableAt(e.X, e.Y); src != nil && src.Occupant == id {
		src.Occupant = component.NoEntity
	}
	dst.Occupant = id
	e.X, e.Y = x, y
	return nil
}

// RemoveDead sweeps combat-capable entities with HP ≤ 0: a mark pass
// collects the dead so the sweep never removes-during-iterate, then each is
// severed from the order, the entity table, and its tile's occupant slot.
func (f *Floor) RemoveDead() []component.EntityID {
	var dead []component.EntityID
	for _, id := range f.order {
		e, ok := f.entities[id]
		if !ok {
			continue
		}
		if e.Combat != nil && e.Combat.Dead() {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		f.remove(id)
	}
	return dead
}

// Remove deletes an entity outright (destroy), independent of combat state.
func (f *Floor) Remove(id component.EntityID) {
	f.remove(id)
}

func (f *Floor) remove(id component.EntityID) {
	e, ok := f.entities[id]
	if !ok {
		return
	}
	if t := f.MutableAt(e.X, e.Y); t != nil && t.Occupant == id {
		t.Occupant = component.NoEntity
	}
	delete(f.entities, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}
