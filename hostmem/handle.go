package hostmem

import "fmt"

// Pointer is the address of a host global that holds a pointer to a record,
// for example the current player actor.
type Pointer Addr

// Resolve reads the pointer slot. Zero means unset (or unreadable).
func (p Pointer) Resolve(m Memory) Addr {
	if p == 0 || m == nil {
		return 0
	}
	v, ok := ReadU32(m, Addr(p))
	if !ok {
		return 0
	}
	return Addr(v)
}

// Handle is a non-owning view of one host record. A handle with no base is
// absent: reads report ok=false and writes do nothing.
type Handle struct {
	mem    Memory
	layout *Layout
	base   Addr
}

// Bind views the record at base.
func Bind(m Memory, l *Layout, base Addr) Handle {
	return Handle{mem: m, layout: l, base: base}
}

// Attach views the record that the host pointer slot currently points at.
func Attach(m Memory, l *Layout, p Pointer) Handle {
	return Bind(m, l, p.Resolve(m))
}

// Present reports whether the handle refers to a record.
func (h Handle) Present() bool {
	return h.mem != nil && h.layout != nil && h.base != 0
}

// Base address of the record, zero when absent.
func (h Handle) Base() Addr {
	if !h.Present() {
		return 0
	}
	return h.base
}

// Layout of the viewed record.
func (h Handle) Layout() *Layout {
	return h.layout
}

// Addr of the named field, with ok=false when the handle is absent.
func (h Handle) Addr(field string) (Addr, bool) {
	if !h.Present() {
		return 0, false
	}
	f := h.layout.Field(field)
	return h.base + Addr(f.Offset), true
}

// field resolves name and checks the access width against the field.
func (h Handle) field(name string, width uint32) (Addr, bool) {
	if !h.Present() {
		return 0, false
	}
	f := h.layout.Field(name)
	if width > f.Size {
		panic(fmt.Sprintf("hostmem: %d byte access to %s.%s (%d bytes)", width, h.layout.Name, name, f.Size))
	}
	return h.base + Addr(f.Offset), true
}

// fieldAt resolves element i of an array field made of width-byte elements.
func (h Handle) fieldAt(name string, i int, width uint32) (Addr, bool) {
	if !h.Present() || i < 0 {
		return 0, false
	}
	f := h.layout.Field(name)
	off := uint64(i) * uint64(width)
	if off+uint64(width) > uint64(f.Size) {
		return 0, false
	}
	return h.base + Addr(f.Offset) + Addr(off), true
}

func (h Handle) U8(field string) (uint8, bool) {
	a, ok := h.field(field, 1)
	if !ok {
		return 0, false
	}
	return ReadU8(h.mem, a)
}

func (h Handle) U16(field string) (uint16, bool) {
	a, ok := h.field(field, 2)
	if !ok {
		return 0, false
	}
	return ReadU16(h.mem, a)
}

func (h Handle) S16(field string) (int16, bool) {
	a, ok := h.field(field, 2)
	if !ok {
		return 0, false
	}
	return ReadS16(h.mem, a)
}

func (h Handle) U32(field string) (uint32, bool) {
	a, ok := h.field(field, 4)
	if !ok {
		return 0, false
	}
	return ReadU32(h.mem, a)
}

func (h Handle) F32(field string) (float32, bool) {
	a, ok := h.field(field, 4)
	if !ok {
		return 0, false
	}
	return ReadF32(h.mem, a)
}

// Bytes copies the whole field out of host memory.
func (h Handle) Bytes(field string) ([]byte, bool) {
	if !h.Present() {
		return nil, false
	}
	f := h.layout.Field(field)
	p := make([]byte, f.Size)
	if !h.mem.Read(h.base+Addr(f.Offset), p) {
		return nil, false
	}
	return p, true
}

// U16s reads an array field as consecutive 16-bit words.
func (h Handle) U16s(field string) ([]uint16, bool) {
	p, ok := h.Bytes(field)
	if !ok {
		return nil, false
	}
	words := make([]uint16, len(p)/2)
	for i := range words {
		words[i] = ByteOrder.Uint16(p[i*2:])
	}
	return words, true
}

// U32At reads element i of an array field of 32-bit words.
func (h Handle) U32At(field string, i int) (uint32, bool) {
	a, ok := h.fieldAt(field, i, 4)
	if !ok {
		return 0, false
	}
	return ReadU32(h.mem, a)
}

// F32At reads element i of an array field of 32-bit floats.
func (h Handle) F32At(field string, i int) (float32, bool) {
	a, ok := h.fieldAt(field, i, 4)
	if !ok {
		return 0, false
	}
	return ReadF32(h.mem, a)
}

// S16At reads element i of an array field of signed 16-bit words.
func (h Handle) S16At(field string, i int) (int16, bool) {
	a, ok := h.fieldAt(field, i, 2)
	if !ok {
		return 0, false
	}
	return ReadS16(h.mem, a)
}

// U16At reads element i of an array field of 16-bit words.
func (h Handle) U16At(field string, i int) (uint16, bool) {
	a, ok := h.fieldAt(field, i, 2)
	if !ok {
		return 0, false
	}
	return ReadU16(h.mem, a)
}

func (h Handle) SetU8(field string, v uint8) {
	if a, ok := h.field(field, 1); ok {
		WriteU8(h.mem, a, v)
	}
}

func (h Handle) SetU16(field string, v uint16) {
	if a, ok := h.field(field, 2); ok {
		WriteU16(h.mem, a, v)
	}
}

func (h Handle) SetS16(field string, v int16) {
	if a, ok := h.field(field, 2); ok {
		WriteS16(h.mem, a, v)
	}
}

func (h Handle) SetU32(field string, v uint32) {
	if a, ok := h.field(field, 4); ok {
		WriteU32(h.mem, a, v)
	}
}

func (h Handle) SetF32(field string, v float32) {
	if a, ok := h.field(field, 4); ok {
		WriteF32(h.mem, a, v)
	}
}

func (h Handle) SetU16At(field string, i int, v uint16) {
	if a, ok := h.fieldAt(field, i, 2); ok {
		WriteU16(h.mem, a, v)
	}
}

func (h Handle) SetU32At(field string, i int, v uint32) {
	if a, ok := h.fieldAt(field, i, 4); ok {
		WriteU32(h.mem, a, v)
	}
}

func (h Handle) SetF32At(field string, i int, v float32) {
	if a, ok := h.fieldAt(field, i, 4); ok {
		WriteF32(h.mem, a, v)
	}
}

func (h Handle) SetS16At(field string, i int, v int16) {
	if a, ok := h.fieldAt(field, i, 2); ok {
		WriteS16(h.mem, a, v)
	}
}

// SetBytes writes p at the start of the field. p longer than the field is
// truncated to the field size so neighbouring bytes are never touched.
func (h Handle) SetBytes(field string, p []byte) {
	if !h.Present() {
		return
	}
	f := h.layout.Field(field)
	if uint32(len(p)) > f.Size {
		p = p[:f.Size]
	}
	h.mem.Write(h.base+Addr(f.Offset), p)
}
