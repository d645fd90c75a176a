package gfx

// Measurer is the measuring half of a Renderer.
type Measurer interface {
	MeasureText(s string, size float32) float32
	MeasureSymbol(sym Symbol, size float32) float32
	LineHeight(size float32) float32
}

// Buffer records a frame's draw calls for replay later, measuring text with
// the renderer it will be replayed onto.
type Buffer struct {
	Recorder
	m Measurer
}

func NewBuffer(m Measurer) *Buffer {
	return &Buffer{m: m}
}

func (b *Buffer) MeasureText(s string, size float32) float32 {
	return b.m.MeasureText(s, size)
}

func (b *Buffer) MeasureSymbol(sym Symbol, size float32) float32 {
	return b.m.MeasureSymbol(sym, size)
}

func (b *Buffer) LineHeight(size float32) float32 {
	return b.m.LineHeight(size)
}

// Replay issues every recorded call on r in order.
func (r *Recorder) Replay(dst Renderer) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpRect:
			dst.FillRect(op.X, op.Y, op.W, op.H, op.Color)
		case OpText:
			dst.DrawText(op.Text, op.X, op.Y, op.Size, op.Color)
		case OpSymbol:
			dst.DrawSymbol(Symbol(op.Text), op.X, op.Y, op.Size, op.Color)
		}
	}
}
