// Package render implements the composer: for each tile in the player's
// field of view it blends ambient color with accumulated light into a
// displayed color, falls back to a dimmed "remembered map" for
// explored-but-unlit tiles, and draws a status row.
package render

import (
	"torch/internal/colorx"
	"torch/internal/component"
	"torch/internal/shadowcast"
	"torch/internal/term"
	"torch/internal/world"

	"github.com/gdamore/tcell/v2"
)

// rememberedFloorGray is the constant dim gray used to draw a remembered
// floor tile.
var rememberedFloorGray = colorx.Gray(0.12)

// Composer draws one floor to a terminal screen.
type Composer struct {
	screen *term.Screen
	camera *Camera
	hudRows int
}

// New creates a Composer reserving hudRows rows at the bottom of the screen
// for the status row.
func New(screen *term.Screen, hudRows int) *Composer {
	rows, cols := screen.Dimensions()
	return &Composer{
		screen:  screen,
		camera:  NewCamera(0, 0, cols, rows-hudRows),
		hudRows: hudRows,
	}
}

// Resize recomputes the camera's viewport from the terminal's current
// dimensions; callers must invoke this on every tcell.EventResize since the
// viewport size is otherwise fixed at New's call time.
func (c *Composer) Resize() {
	rows, cols := c.screen.Dimensions()
	c.camera.ViewWidth = cols
	c.camera.ViewHeight = rows - c.hudRows
}

// Draw clears the screen, composes the floor around the player, and draws the
// status row, then flushes.
func (c *Composer) Draw(f *world.Floor, player *component.Entity, depth int) {
	c.screen.Clear()
	c.camera.Center(player.X, player.Y)

	radius := c.camera.ViewWidth
	if c.camera.ViewHeight > radius {
		radius = c.camera.ViewHeight
	}
	radius /= 2

	visited := make(map[[2]int]bool)
	shadowcast.Cast(player.X, player.Y, radius, f.Opaque, f.InBounds, func(x, y int) {
		visited[[2]int{x, y}] = true
		c.composeTile(f, x, y)
	})

	c.drawRemembered(f, visited)
	c.drawHUD(player, depth)
	c.screen.Flush()
}

// composeTile blends and draws a single in-FOV tile, then updates its
// seen_as memory.
func (c *Composer) composeTile(f *world.Floor, x, y int) {
	tile := f.At(x, y)
	row, col, onScreen := c.camera.WorldToScreen(x, y)

	glyph, fgColor := foreground(f, tile)

	if tile.Light > 0 {
		displayed := colorx.Add(colorx.Mul(fgColor, tile.Light), tile.Lighting)
		if onScreen {
			attr := term.Attr{Reverse: tile.Blocks}
			c.screen.DrawAt(row, col, glyph, tcellColor(displayed), tcell.ColorBlack, attr)
		}
		c.updateSeenAs(f, x, y, tile, glyph, displayed)
	}
}

// updateSeenAs applies the asymmetric memory rule: floors refresh every
// visit, walls (and everything else) only refresh on a strictly brighter
// sighting than what is already remembered.
func (c *Composer) updateSeenAs(f *world.Floor, x, y int, tile world.Tile, glyph string, displayed colorx.Color) {
	isFloor := tile.Token == "."
	if !isFloor && tile.Light <= tile.SeenAs.Light {
		return
	}

	mutTile := f.MutableAt(x, y)
	if mutTile == nil {
		return
	}
	rememberedGlyph := glyph
	if glyph == "@" {
		// Never remember the player's own glyph standing on a tile.
		rememberedGlyph = mutTile.Token
	}
	mutTile.SeenAs = world.SeenAs{Token: rememberedGlyph, Color: displayed, Light: tile.Light}
}

// drawRemembered draws every seen-but-not-currently-visited tile dimmed:
// floor tiles as a constant dim gray, everything else as grayscale at
// 40-60% intensity (0.4 plus 0.2 times its remembered light, clamped to 0-1).
func (c *Composer) drawRemembered(f *world.Floor, visited map[[2]int]bool) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if visited[[2]int{x, y}] {
				continue
			}
			tile := f.At(x, y)
			if !tile.Seen {
				continue
			}
			row, col, onScreen := c.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}

			if tile.Token == "." {
				c.screen.DrawAt(row, col, tile.SeenAs.Token, tcellColor(rememberedFloorGray), tcell.ColorBlack, term.Attr{})
				continue
			}
			intensity := 0.4 + 0.2*clamp01(tile.SeenAs.Light)
			gray := colorx.Gray(intensity)
			c.screen.DrawAt(row, col, tile.SeenAs.Token, tcellColor(gray), tcell.ColorBlack, term.Attr{})
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// foreground picks what to draw on a tile: occupant, else top item, else the
// tile itself, per the composer's precedence rule.
func foreground(f *world.Floor, tile world.Tile) (glyph string, fg colorx.Color) {
	if tile.Occupant != component.NoEntity {
		if occ := f.Entity(tile.Occupant); occ != nil {
			return occ.Glyph, occ.Color
		}
	}
	if n := len(tile.Items); n > 0 {
		top := tile.Items[n-1]
		return top.Glyph, top.Color
	}
	return tile.Token, tile.AmbientColor
}

func tcellColor(c colorx.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
