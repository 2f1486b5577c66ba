package render

// Camera translates between world coordinates and screen rows/columns. Every
// glyph this game draws is single-width ASCII, so there is no ×2 column
// multiplier for double-width tiles.
type Camera struct {
	OffsetX, OffsetY      int
	ViewWidth, ViewHeight int
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so world position (cx, cy) is in the middle
// of the viewport.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - c.ViewWidth/2
	c.OffsetY = cy - c.ViewHeight/2
}

// WorldToScreen converts world (wx, wy) to screen (row, col); visible is
// false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (row, col int, visible bool) {
	col = wx - c.OffsetX
	row = wy - c.OffsetY
	visible = col >= 0 && col < c.ViewWidth && row >= 0 && row < c.ViewHeight
	return
}
