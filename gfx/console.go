package gfx

import "strings"

// consolePadding is the gap between the background and the text.
const consolePadding = 4

// Console collects text and draws it as a block over a background.
type Console struct {
	x, y float32
	bg   Color
	fg   Color
	size float32
	buf  strings.Builder
}

// NewConsole returns an empty console at x, y.
func NewConsole(x, y float32) *Console {
	return &Console{x: x, y: y, bg: 0x000000CF, fg: 0xFFFFFFFF, size: 0.3}
}

func (c *Console) SetBGColor(col Color) {
	c.bg = col
}

func (c *Console) SetFontColor(col Color) {
	c.fg = col
}

func (c *Console) SetFontSize(size float32) {
	c.size = size
}

// Write implements io.Writer.
func (c *Console) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

// WriteString implements io.StringWriter.
func (c *Console) WriteString(s string) (int, error) {
	return c.buf.WriteString(s)
}

// String returns the collected text.
func (c *Console) String() string {
	return c.buf.String()
}

// Reset drops the collected text.
func (c *Console) Reset() {
	c.buf.Reset()
}

// Draw renders the background sized to fit the text, then the text.
func (c *Console) Draw(r Renderer) {
	text := strings.TrimRight(c.buf.String(), "\n")
	if text == "" {
		return
	}
	lines := strings.Split(text, "\n")

	var width float32
	for _, l := range lines {
		width = max(width, r.MeasureText(l, c.size))
	}
	lh := r.LineHeight(c.size)

	r.FillRect(c.x, c.y, width+2*consolePadding, lh*float32(len(lines))+2*consolePadding, c.bg)
	for i, l := range lines {
		r.DrawText(l, c.x+consolePadding, c.y+consolePadding+lh*float32(i), c.size, c.fg)
	}
}
