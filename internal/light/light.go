// Package light implements the lighting deposit pass: it clears a floor's
// per-tile accumulators and, for each light-emitting entity, drives
// internal/shadowcast with a visitor that accumulates scalar intensity and
// RGB color contribution per tile.
package light

import (
	"math"

	"torch/internal/colorx"
	"torch/internal/shadowcast"
	"torch/internal/world"
)

// sensitivity is the constant S in the brightness-to-radius derivation: the
// point at which a source's contribution is considered visually negligible.
const sensitivity = 6.0

// Radius derives the cast radius for a source of the given brightness and
// color, so the shadowcaster never walks tiles whose contribution would
// fall below the visible threshold.
func Radius(brightness float64, c colorx.Color) int {
	maxChannel := float64(c.R)
	if float64(c.G) > maxChannel {
		maxChannel = float64(c.G)
	}
	if float64(c.B) > maxChannel {
		maxChannel = float64(c.B)
	}
	r := (maxChannel*brightness - sensitivity) / (2 * sensitivity)
	if r < 0 {
		return 0
	}
	return int(math.Floor(r))
}

// Deposit casts light from (lx, ly) with the given brightness and color onto
// floor f, accumulating into every tile's light and lighting fields. A
// per-pass dedup set prevents shadowcast's legitimate double-visits from
// depositing a tile's contribution twice.
func Deposit(f *world.Floor, lx, ly int, brightness float64, c colorx.Color) {
	radius := Radius(brightness, c)
	if radius <= 0 {
		if t := f.MutableAt(lx, ly); t != nil {
			t.Light += brightness
			t.Seen = true
		}
		return
	}

	drawnTo := make(map[[2]int]bool)

	shadowcast.Cast(lx, ly, radius, f.Opaque, f.InBounds, func(x, y int) {
		if drawnTo[[2]int{x, y}] {
			return
		}
		drawnTo[[2]int{x, y}] = true

		t := f.MutableAt(x, y)
		if t == nil {
			return
		}
		t.Seen = true

		if x == lx && y == ly {
			t.Light += brightness
			return
		}

		dist := math.Sqrt(float64((x-lx)*(x-lx) + (y-ly)*(y-ly)))
		d := math.Max(1, math.Round(dist))
		dlight := brightness / (2*d + 1)

		t.Light += dlight
		t.Lighting = colorx.Add(t.Lighting, colorx.Mul(c, dlight))
	})
}

// Clear resets every tile's transient lighting on f before a new deposit
// pass; a thin, named wrapper so callers in internal/turn and internal/game's
// flicker tick read as "clear lights" rather than reaching into Floor
// directly.
func Clear(f *world.Floor) {
	f.ClearLights()
}
