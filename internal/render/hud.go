package render

import (
	"fmt"

	"torch/internal/colorx"
	"torch/internal/component"
	"torch/internal/term"

	"github.com/gdamore/tcell/v2"
)

// drawHUD renders the bottom status row: fuel, torch count, an HP bar, and
// the current depth.
func (c *Composer) drawHUD(player *component.Entity, depth int) {
	row := c.camera.ViewHeight

	hp, hpMax := 0, 0
	if player.Combat != nil {
		hp, hpMax = player.Combat.HP, player.Combat.HPMax
	}

	status := fmt.Sprintf("Fuel:%3.0f  Torches:%d  Depth:%d  HP:", player.Fuel, player.Torches, depth)
	for i, ch := range status {
		c.screen.DrawAt(row, i, string(ch), tcell.ColorWhite, tcell.ColorBlack, term.Attr{})
	}

	c.drawHPBar(row, len([]rune(status)), hp, hpMax)
}

// drawHPBar lays down the bar's space-glyph content with DrawAt, then
// recolors the filled portion with SetAttrAt instead of redrawing those
// cells' glyphs a second time.
func (c *Composer) drawHPBar(row, col, hp, hpMax int) {
	const width = 20
	c.screen.DrawAt(row, col, "[", tcell.ColorWhite, tcell.ColorBlack, term.Attr{})
	for i := 0; i < width; i++ {
		c.screen.DrawAt(row, col+1+i, " ", tcell.ColorBlack, tcell.ColorGray, term.Attr{})
	}
	c.screen.DrawAt(row, col+1+width, "]", tcell.ColorWhite, tcell.ColorBlack, term.Attr{})

	filled := 0
	if hpMax > 0 {
		filled = width * hp / hpMax
	}
	barColor := barColorFor(hp, hpMax)
	for i := 0; i < filled; i++ {
		c.screen.SetAttrAt(row, col+1+i, tcell.ColorBlack, barColor, term.Attr{})
	}
}

func barColorFor(hp, hpMax int) tcell.Color {
	if hpMax <= 0 {
		return tcellColor(colorx.Color{R: 0x55, G: 0x55, B: 0x55})
	}
	ratio := float64(hp) / float64(hpMax)
	switch {
	case ratio > 0.5:
		return tcellColor(colorx.Color{G: 0xcc})
	case ratio > 0.25:
		return tcellColor(colorx.Color{R: 0xcc, G: 0xcc})
	default:
		return tcellColor(colorx.Color{R: 0xcc})
	}
}
