// Package component defines the plain data carried by entities and tiles:
// capability bits, entity kinds, combat/charge state, and items. It holds no
// behaviour and no back-references to floors or worlds, so it can be
// imported by both the world model and every subsystem that reads entities
// without creating an import cycle.
package component

import "torch/internal/colorx"

// EntityID is a stable, never-reused handle into a floor's entity table.
// Zero is reserved to mean "no entity" so tiles can use it as a sentinel
// occupant value instead of a pointer.
type EntityID uint64

// NoEntity is the zero value of EntityID, meaning "tile has no occupant".
const NoEntity EntityID = 0

// Capability is a bitset gating which per-turn passes touch an entity,
// replacing per-feature tag components with a single fast membership test.
type Capability uint8

const (
	Combat Capability = 1 << iota
	Flicker
	LightSource
	Charge
)

// Has reports whether c includes all bits of want.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// Kind distinguishes entity archetypes for the tagged-variant update dispatch
// in internal/game; behaviour is a switch on Kind, not a function pointer.
type Kind uint8

const (
	Player Kind = iota
	Torch
	Snake
	ItemKind
)

func (k Kind) String() string {
	switch k {
	case Player:
		return "Player"
	case Torch:
		return "Torch"
	case Snake:
		return "Snake"
	case ItemKind:
		return "Item"
	default:
		return "Unknown"
	}
}

// CombatStats holds hit points for Combat-capable entities.
type CombatStats struct {
	HP, HPMax int
}

// Dead reports whether the entity should be removed from its floor.
func (c *CombatStats) Dead() bool {
	return c.HP <= 0
}

// ChargeState holds a Charge-capable entity's memory of the player: a
// last-seen direction and a round count. Snakes are spawned with one, but
// the snake update does not read or write it; snakes always step straight
// toward the player's current position.
type ChargeState struct {
	LastSeenDX, LastSeenDY int
	Rounds                 int
}

// Item is a pickup: glyph, color, and name, held in a tile's or entity's
// inventory list.
type Item struct {
	Name  string
	Glyph string
	Color colorx.Color
}

// LightEmission is carried by LightSource-capable entities (the player's
// lantern, torches): the brightness/color fed to the lighting deposit pass.
type LightEmission struct {
	Brightness float64
	Color      colorx.Color
}

// Entity is a positioned actor: player, torch, snake, or dropped item.
// Its FloorID is a plain index into World.Floors rather than a pointer, so
// moving an entity between floors never touches a back-reference cycle.
type Entity struct {
	ID           EntityID
	Kind         Kind
	Capabilities Capability
	X, Y         int
	FloorID      int
	Color        colorx.Color
	Glyph        string
	BlocksLight  bool

	Combat *CombatStats
	Charge *ChargeState
	Light  *LightEmission

	Inventory []Item

	// Fuel is the player's lantern reservoir; zero for non-player entities.
	Fuel float64

	// Torches is the player's carried torch count, spent one per
	// tryPlaceTorch; zero for non-player entities.
	Torches int
}
