// Package gfx is the drawing boundary the overlay renders through. The host
// supplies a Renderer; the overlay only ever fills rectangles and draws text
// and button symbols in the host's 640x480 screen space.
package gfx

import "image/color"

// Screen space of the host, independent of the window size.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Color is 0xRRGGBBAA.
type Color uint32

// RGBA converts to the standard library colour type.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}

// Symbol is a run of glyph codes in the host's button symbol font.
type Symbol string

const (
	SymbolA             Symbol = "\x20"
	SymbolB             Symbol = "\x21"
	SymbolDpadUpDown    Symbol = "\x2F\x30"
	SymbolDpadLeftRight Symbol = "\x31\x32"
)

var symbolLabels = map[Symbol]string{
	SymbolA:             "(A)",
	SymbolB:             "(B)",
	SymbolDpadUpDown:    "(Up/Dn)",
	SymbolDpadLeftRight: "(L/R)",
}

// Label is a plain text stand-in for renderers without the symbol font.
func (s Symbol) Label() string {
	if l, ok := symbolLabels[s]; ok {
		return l
	}
	return "(?)"
}

// Renderer draws in host screen space. Text positions are the top-left of the
// line; size is a scale where 1.0 is the host's regular font.
type Renderer interface {
	FillRect(x, y, w, h float32, c Color)
	DrawText(s string, x, y, size float32, c Color)
	DrawSymbol(sym Symbol, x, y, size float32, c Color)
	MeasureText(s string, size float32) float32
	MeasureSymbol(sym Symbol, size float32) float32
	LineHeight(size float32) float32
}
