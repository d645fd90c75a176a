// Package hostmem is the only place that touches host memory. Everything the
// overlay knows about the host's data structures is expressed as a Layout of
// named fields, and every read or write goes through one of those fields.
package hostmem

import (
	"encoding/binary"
	"math"
)

// Addr is an absolute address in the host's 32-bit address space.
type Addr uint32

// Memory is the host memory boundary. Read and Write either transfer the
// whole of p or nothing at all.
type Memory interface {
	Read(addr Addr, p []byte) bool
	Write(addr Addr, p []byte) bool
}

// ByteOrder of the host. The host CPU is big-endian PowerPC.
var ByteOrder = binary.BigEndian

// Arena is a contiguous block of host memory starting at Base.
type Arena struct {
	Base Addr
	data []byte
}

// NewArena allocates size bytes of zeroed memory mapped at base.
func NewArena(base Addr, size uint32) *Arena {
	return &Arena{Base: base, data: make([]byte, size)}
}

// Size of the arena in bytes.
func (a *Arena) Size() uint32 {
	return uint32(len(a.data))
}

// Contains reports whether the n bytes at addr are all inside the arena.
func (a *Arena) Contains(addr Addr, n int) bool {
	if addr < a.Base || n < 0 {
		return false
	}
	off := uint64(addr - a.Base)
	return off+uint64(n) <= uint64(len(a.data))
}

func (a *Arena) Read(addr Addr, p []byte) bool {
	if !a.Contains(addr, len(p)) {
		return false
	}
	copy(p, a.data[addr-a.Base:])
	return true
}

func (a *Arena) Write(addr Addr, p []byte) bool {
	if !a.Contains(addr, len(p)) {
		return false
	}
	copy(a.data[addr-a.Base:], p)
	return true
}

// Reset zeroes the whole arena.
func (a *Arena) Reset() {
	clear(a.data)
}

func ReadU8(m Memory, addr Addr) (uint8, bool) {
	var b [1]byte
	if !m.Read(addr, b[:]) {
		return 0, false
	}
	return b[0], true
}

func ReadU16(m Memory, addr Addr) (uint16, bool) {
	var b [2]byte
	if !m.Read(addr, b[:]) {
		return 0, false
	}
	return ByteOrder.Uint16(b[:]), true
}

func ReadS16(m Memory, addr Addr) (int16, bool) {
	v, ok := ReadU16(m, addr)
	return int16(v), ok
}

func ReadU32(m Memory, addr Addr) (uint32, bool) {
	var b [4]byte
	if !m.Read(addr, b[:]) {
		return 0, false
	}
	return ByteOrder.Uint32(b[:]), true
}

func ReadF32(m Memory, addr Addr) (float32, bool) {
	v, ok := ReadU32(m, addr)
	return math.Float32frombits(v), ok
}

func WriteU8(m Memory, addr Addr, v uint8) bool {
	return m.Write(addr, []byte{v})
}

func WriteU16(m Memory, addr Addr, v uint16) bool {
	var b [2]byte
	ByteOrder.PutUint16(b[:], v)
	return m.Write(addr, b[:])
}

func WriteS16(m Memory, addr Addr, v int16) bool {
	return WriteU16(m, addr, uint16(v))
}

func WriteU32(m Memory, addr Addr, v uint32) bool {
	var b [4]byte
	ByteOrder.PutUint32(b[:], v)
	return m.Write(addr, b[:])
}

func WriteF32(m Memory, addr Addr, v float32) bool {
	return WriteU32(m, addr, math.Float32bits(v))
}
