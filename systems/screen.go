package systems

import (
	"github.com/automoto/ss-practice/fonts"
	"github.com/automoto/ss-practice/gfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// basePixelSize is the pixel height of size 1.0 text.
const basePixelSize = 32

// Screen is the overlay renderer for the sandbox window. Its logical size
// matches the host screen. A Screen with no image only measures.
type Screen struct {
	dst *ebiten.Image
}

// NewScreen wraps dst.
func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

func face(size float32) font.Face {
	return fonts.Mono.Size(float64(size * basePixelSize))
}

func (s *Screen) FillRect(x, y, w, h float32, c gfx.Color) {
	vector.FillRect(s.dst, x, y, w, h, c.RGBA(), false)
}

func (s *Screen) DrawText(str string, x, y, size float32, c gfx.Color) {
	f := face(size)
	ascent := f.Metrics().Ascent.Round()
	text.Draw(s.dst, str, f, int(x), int(y)+ascent, c.RGBA())
}

// DrawSymbol prints the symbol's text label; the sandbox has no button font.
func (s *Screen) DrawSymbol(sym gfx.Symbol, x, y, size float32, c gfx.Color) {
	s.DrawText(sym.Label(), x, y, size, c)
}

func (s *Screen) MeasureText(str string, size float32) float32 {
	return float32(font.MeasureString(face(size), str).Round())
}

func (s *Screen) MeasureSymbol(sym gfx.Symbol, size float32) float32 {
	return s.MeasureText(sym.Label(), size)
}

func (s *Screen) LineHeight(size float32) float32 {
	return float32(face(size).Metrics().Height.Round())
}
