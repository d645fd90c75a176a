package gfx

import "strings"

// TabWidth is the spacing of tab stops, at size 1.0.
const TabWidth = 96

// TextWriter prints runs of text and symbols left to right, like the host's
// own text writer.
type TextWriter struct {
	r      Renderer
	left   float32
	x, y   float32
	size   float32
	colour Color
}

// NewTextWriter returns a writer at the origin printing white text at size 0.5.
func NewTextWriter(r Renderer) *TextWriter {
	return &TextWriter{r: r, size: 0.5, colour: 0xFFFFFFFF}
}

// SetPosition moves the pen and the left margin used after a newline.
func (w *TextWriter) SetPosition(x, y float32) {
	w.left, w.x, w.y = x, x, y
}

func (w *TextWriter) SetFontColor(c Color) {
	w.colour = c
}

func (w *TextWriter) SetFontSize(size float32) {
	w.size = size
}

// Position returns the pen.
func (w *TextWriter) Position() (x, y float32) {
	return w.x, w.y
}

// Print draws s at the pen and advances it. Tabs jump to the next tab stop and
// newlines return to the left margin.
func (w *TextWriter) Print(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			w.x = w.left
			w.y += w.r.LineHeight(w.size)
		}
		for j, run := range strings.Split(line, "\t") {
			if j > 0 {
				w.tab()
			}
			if run == "" {
				continue
			}
			w.r.DrawText(run, w.x, w.y, w.size, w.colour)
			w.x += w.r.MeasureText(run, w.size)
		}
	}
}

// PrintSymbol draws button glyphs at the pen and advances it.
func (w *TextWriter) PrintSymbol(sym Symbol) {
	w.r.DrawSymbol(sym, w.x, w.y, w.size, w.colour)
	w.x += w.r.MeasureSymbol(sym, w.size)
}

func (w *TextWriter) tab() {
	stop := TabWidth * w.size
	if stop <= 0 {
		return
	}
	n := int((w.x-w.left)/stop) + 1
	w.x = w.left + float32(n)*stop
}
