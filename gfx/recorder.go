package gfx

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Metrics of the Recorder's imaginary fixed-width font at size 1.0.
const (
	recorderGlyphWidth = 16
	recorderLineHeight = 32
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpRect OpKind = iota
	OpText
	OpSymbol
)

// Op is one recorded draw call.
type Op struct {
	Kind       OpKind
	Text       string
	X, Y, W, H float32
	Size       float32
	Color      Color
}

// Recorder is a headless Renderer that keeps every draw call. Text is measured
// in terminal columns so wide runes take two cells.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(x, y, w, h float32, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawText(s string, x, y, size float32, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, X: x, Y: y, Size: size, Color: c})
}

func (r *Recorder) DrawSymbol(sym Symbol, x, y, size float32, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpSymbol, Text: string(sym), X: x, Y: y, Size: size, Color: c})
}

func (r *Recorder) MeasureText(s string, size float32) float32 {
	return float32(runewidth.StringWidth(s)) * recorderGlyphWidth * size
}

func (r *Recorder) MeasureSymbol(sym Symbol, size float32) float32 {
	return float32(len(sym)) * recorderGlyphWidth * size
}

func (r *Recorder) LineHeight(size float32) float32 {
	return recorderLineHeight * size
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Texts returns the text of every DrawText call in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether any DrawText call contained s.
func (r *Recorder) HasText(s string) bool {
	for _, t := range r.Texts() {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

// Find returns the first DrawText op whose text equals s.
func (r *Recorder) Find(s string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}
