// Package button reads the host's controller state and, when the overlay
// consumes a press, hides it from the host.
package button

import (
	"strings"

	"github.com/automoto/ss-practice/hostmem"
)

// Buttons is a bit set in the host's controller encoding.
type Buttons uint32

const (
	DpadLeft  Buttons = 0x0001
	DpadRight Buttons = 0x0002
	DpadDown  Buttons = 0x0004
	DpadUp    Buttons = 0x0008
	Plus      Buttons = 0x0010
	Two       Buttons = 0x0100
	One       Buttons = 0x0200
	B         Buttons = 0x0400
	A         Buttons = 0x0800
	Minus     Buttons = 0x1000
	Z         Buttons = 0x2000
	C         Buttons = 0x4000
	Home      Buttons = 0x8000

	Dpad = DpadLeft | DpadRight | DpadDown | DpadUp
)

var names = []struct {
	b    Buttons
	name string
}{
	{A, "A"}, {B, "B"}, {One, "1"}, {Two, "2"},
	{Minus, "-"}, {Plus, "+"}, {Home, "HOME"},
	{DpadUp, "UP"}, {DpadDown, "DOWN"}, {DpadLeft, "LEFT"}, {DpadRight, "RIGHT"},
	{C, "C"}, {Z, "Z"},
}

func (b Buttons) String() string {
	var s []string
	for _, n := range names {
		if b&n.b != 0 {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, " ")
}

// PadLayout is the host's per-frame controller record.
var PadLayout = hostmem.NewLayout("Pad", 0x20,
	hostmem.Field{Name: "down", Offset: 0x00, Size: 4},
	hostmem.Field{Name: "pressed", Offset: 0x04, Size: 4},
	hostmem.Field{Name: "released", Offset: 0x08, Size: 4},
	hostmem.Field{Name: "stick", Offset: 0x10, Size: 8},
)

// Pad is the overlay view of the controller record. A Pad that cannot be
// resolved reports nothing held and ignores suppression.
type Pad struct {
	h hostmem.Handle
}

// Attach resolves the controller record through the host pointer slot.
func Attach(m hostmem.Memory, slot hostmem.Pointer) *Pad {
	return &Pad{h: hostmem.Attach(m, PadLayout, slot)}
}

// Handle exposes the underlying record, for the host side that fills it in.
func (p *Pad) Handle() hostmem.Handle {
	return p.h
}

func (p *Pad) bits(field string) Buttons {
	if p == nil {
		return 0
	}
	v, _ := p.h.U32(field)
	return Buttons(v)
}

// Down returns every button currently held.
func (p *Pad) Down() Buttons {
	return p.bits("down")
}

// IsDown reports whether all of b are held.
func (p *Pad) IsDown(b Buttons) bool {
	return b != 0 && p.Down()&b == b
}

// IsPressed reports whether all of b went down this frame.
func (p *Pad) IsPressed(b Buttons) bool {
	return b != 0 && p.bits("pressed")&b == b
}

// IsReleased reports whether all of b came up this frame.
func (p *Pad) IsReleased(b Buttons) bool {
	return b != 0 && p.bits("released")&b == b
}

// Stick returns the analog stick position in [-1, 1].
func (p *Pad) Stick() (x, y float32) {
	if p == nil {
		return 0, 0
	}
	x, _ = p.h.F32At("stick", 0)
	y, _ = p.h.F32At("stick", 1)
	return x, y
}

// SetNotPressed clears b from the held and pressed sets so the host does not
// act on a press the overlay already consumed.
func (p *Pad) SetNotPressed(b Buttons) {
	if p == nil || !p.h.Present() {
		return
	}
	down, _ := p.h.U32("down")
	pressed, _ := p.h.U32("pressed")
	p.h.SetU32("down", down&^uint32(b))
	p.h.SetU32("pressed", pressed&^uint32(b))
}
