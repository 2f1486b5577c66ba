// Package term wraps a tcell.Screen to expose exactly the terminal
// capability the core needs: init/quit, dimensions, drawing a glyph with
// 24-bit fg/bg and boolean attributes, attribute-only updates (for the
// HP-bar overlay), clear/flush, a blocking event poll, and posting synthetic
// events (used by internal/flicker to hand ticks to the main loop).
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Attr is the boolean attribute set draw_at/set_attr_at accept.
type Attr struct {
	Bold, Italic, Underline, Blink, Reverse bool
}

func (a Attr) style(fg, bg tcell.Color) tcell.Style {
	s := tcell.StyleDefault.Foreground(fg).Background(bg)
	s = s.Bold(a.Bold).Italic(a.Italic).Underline(a.Underline).Blink(a.Blink).Reverse(a.Reverse)
	return s
}

// Screen is the terminal capability the core depends on.
type Screen struct {
	s tcell.Screen
}

// Init switches to the alternate screen, hides the cursor, and clears all
// attributes.
func Init() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Screen{s: s}, nil
}

// Quit restores the terminal.
func (t *Screen) Quit() {
	t.s.Fini()
}

// Dimensions returns the current (rows, cols); callers must re-query after
// every resize event since it may change at any time.
func (t *Screen) Dimensions() (rows, cols int) {
	cols, rows = t.s.Size()
	return rows, cols
}

// DrawAt places a glyph with the given foreground/background and attributes
// into the back-buffer at (row, col).
func (t *Screen) DrawAt(row, col int, glyph string, fg, bg tcell.Color, attr Attr) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	style := attr.style(fg, bg)
	var comb []rune
	if len(runes) > 1 {
		comb = runes[1:]
	}
	t.s.SetContent(col, row, runes[0], comb, style)
	if runewidth.RuneWidth(runes[0]) == 2 {
		t.s.SetContent(col+1, row, ' ', nil, style)
	}
}

// SetAttrAt changes the attributes of the cell at (row, col) without
// touching its glyph, used for the HP-bar overlay.
func (t *Screen) SetAttrAt(row, col int, fg, bg tcell.Color, attr Attr) {
	mainc, comb, _, _ := t.s.GetContent(col, row)
	t.s.SetContent(col, row, mainc, comb, attr.style(fg, bg))
}

// Clear resets the back-buffer.
func (t *Screen) Clear() {
	t.s.Clear()
}

// Flush emits the differences between the back-buffer and the terminal.
func (t *Screen) Flush() {
	t.s.Show()
}

// PollEvent blocks until the next tcell event, including events injected by
// PostEvent (see internal/flicker). All world and screen mutation happens
// here, in whatever goroutine calls PollEvent, never in the goroutine that
// posts.
func (t *Screen) PollEvent() tcell.Event {
	return t.s.PollEvent()
}

// PostEvent injects a synthetic event into the poll queue so a background
// goroutine (internal/flicker's ticker) can ask for work without touching
// screen or world state itself.
func (t *Screen) PostEvent(ev tcell.Event) error {
	return t.s.PostEvent(ev)
}
