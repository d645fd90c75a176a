package button

import "github.com/automoto/ss-practice/hostmem"

// State is one frame of controller input as the host records it.
type State struct {
	Down     Buttons
	Pressed  Buttons
	Released Buttons
	StickX   float32
	StickY   float32
}

// Next derives this frame's edges from the previous frame's held buttons.
func Next(prev, down Buttons, sx, sy float32) State {
	return State{
		Down:     down,
		Pressed:  down &^ prev,
		Released: prev &^ down,
		StickX:   sx,
		StickY:   sy,
	}
}

// Store writes s into the controller record. This is the host's side of the
// boundary.
func (p *Pad) Store(s State) {
	if p == nil || !p.h.Present() {
		return
	}
	p.h.SetU32("down", uint32(s.Down))
	p.h.SetU32("pressed", uint32(s.Pressed))
	p.h.SetU32("released", uint32(s.Released))
	p.h.SetF32At("stick", 0, s.StickX)
	p.h.SetF32At("stick", 1, s.StickY)
}

// Bind views a controller record at a fixed address.
func Bind(m hostmem.Memory, base hostmem.Addr) *Pad {
	return &Pad{h: hostmem.Bind(m, PadLayout, base)}
}
