// Package world implements the floor/tile/entity data model: a fixed-size
// tile grid with ambient, lighting, memory, and contents fields, and an
// entity table owned by each floor. Tile and Entity reference each other
// only through stable integer handles (EntityID, floor index), never raw
// pointers, so there is no occupant/floor reference cycle to break.
package world

import (
	"errors"

	"torch/internal/colorx"
	"torch/internal/component"
)

// Errors surfaced by movement and insertion, per the small result-code
// taxonomy: callers turn these into "action did not consume a turn".
var (
	ErrOutOfBounds        = errors.New("out of bounds")
	ErrBlocked            = errors.New("tile blocks movement")
	ErrOccupied           = errors.New("tile already occupied")
	ErrEmptyInventoryTile = errors.New("no items here")
	ErrNoStair            = errors.New("not standing on a stair")
)

// TileKind is a tile's role within the floor, independent of its ambient
// appearance.
type TileKind uint8

const (
	TileNone TileKind = iota
	TileFloor
	TileUpstair
	TileDownstair
)

// SeenAs is the best-lit rendering of a tile ever observed, used to draw
// explored-but-currently-unlit tiles dimmed.
type SeenAs struct {
	Token string
	Color colorx.Color
	Light float64
}

// Tile is one cell of a floor.
type Tile struct {
	// Ambient.
	Token        string
	AmbientColor colorx.Color
	Blocks       bool
	Kind         TileKind

	// Transient lighting, reset every turn/flicker pass by ClearLights.
	Light    float64
	Lighting colorx.Color

	// Memory.
	Seen   bool
	SeenAs SeenAs

	// Contents.
	Occupant component.EntityID
	Items    []component.Item
}

// outOfBounds is the immutable sentinel returned by At for coordinates off
// the grid: blank ' ' glyph, no occupant, does not block.
var outOfBounds = Tile{Token: " ", Blocks: false}

// StairEndpoint names the floor and coordinates a staircase leads to (or,
// for the floor it sits on, the coordinates a player arrives at).
type StairEndpoint struct {
	Floor int
	X, Y  int
}

// Floor is one level: a fixed H×W tile grid plus the entities living on it.
type Floor struct {
	H, W  int
	tiles []Tile

	entities map[component.EntityID]*component.Entity
	order    []component.EntityID // insertion order; entities update in this order

	Upstair   StairEndpoint
	Downstair StairEndpoint
	Generated bool
	Kind      string

	// UpstairPos/DownstairPos are this floor's own staircase tile
	// coordinates, distinct from Upstair/Downstair (which name the arrival
	// point on the *other* side of the pair). A floor's generator needs its
	// own stair position to hand to the floor it is pairing with.
	UpstairPos, DownstairPos [2]int
}

// NewFloor allocates an H×W grid of solid wall tiles; map generation carves
// floor out of it before the floor is used.
func NewFloor(h, w int, kind string) *Floor {
	tiles := make([]Tile, h*w)
	for i := range tiles {
		tiles[i] = Tile{Token: "#", Blocks: true, Kind: TileNone}
	}
	return &Floor{
		H: h, W: w,
		tiles:    tiles,
		entities: make(map[component.EntityID]*component.Entity),
		Kind:     kind,
	}
}

// InBounds reports whether (x, y) lies within the floor's grid.
func (f *Floor) InBounds(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

func (f *Floor) index(x, y int) int {
	return y*f.W + x
}

// At returns a copy of the tile at (x, y), or the immutable sentinel tile if
// out of bounds.
func (f *Floor) At(x, y int) Tile {
	if !f.InBounds(x, y) {
		return outOfBounds
	}
	return f.tiles[f.index(x, y)]
}

// MutableAt returns a pointer to the tile at (x, y) for in-place mutation,
// or nil out of bounds; callers must check for nil rather than writing
// through it, since there is no storage backing an out-of-bounds write.
func (f *Floor) MutableAt(x, y int) *Tile {
	if !f.InBounds(x, y) {
		return nil
	}
	return &f.tiles[f.index(x, y)]
}

// ClearLights resets the transient light and lighting accumulators on every
// tile of the floor. Idempotent: calling it twice in a row is the same as
// calling it once.
func (f *Floor) ClearLights() {
	for i := range f.tiles {
		f.tiles[i].Light = 0
		f.tiles[i].Lighting = colorx.Black
	}
}

// Entity looks up a live entity by ID, or nil if it has none or was removed.
func (f *Floor) Entity(id component.EntityID) *component.Entity {
	return f.entities[id]
}

// Entities returns the floor's entities in insertion order. The slice is
// owned by the caller and safe to range over while the floor is mutated,
// since it is a fresh copy of the order, not the live index.
func (f *Floor) Entities() []*component.Entity {
	out := make([]*component.Entity, 0, len(f.order))
	for _, id := range f.order {
		if e, ok := f.entities[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Opaque reports whether the tile at (x, y) blocks light: either the tile
// itself blocks, or its occupant does.
func (f *Floor) Opaque(x, y int) bool {
	t := f.At(x, y)
	if t.Blocks {
		return true
	}
	if t.Occupant != component.NoEntity {
		if occ := f.Entity(t.Occupant); occ != nil {
			return occ.BlocksLight
		}
	}
	return false
}
