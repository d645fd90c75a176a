package game

import (
	"fmt"
	"math"

	"github.com/automoto/ss-practice/hostmem"
)

// Vec3f is the host's float vector.
type Vec3f struct {
	X, Y, Z float32
}

func (v Vec3f) String() string {
	return fmt.Sprintf("%.2f, %.2f, %.2f", v.X, v.Y, v.Z)
}

// DistXZ is the horizontal distance between two points, ignoring height.
func (v Vec3f) DistXZ(o Vec3f) float32 {
	dx := float64(v.X - o.X)
	dz := float64(v.Z - o.Z)
	return float32(math.Hypot(dx, dz))
}

// Vec3s is the host's angle triple, 0x10000 units per turn.
type Vec3s struct {
	X, Y, Z int16
}

func (v Vec3s) String() string {
	return fmt.Sprintf("%04X %04X %04X", uint16(v.X), uint16(v.Y), uint16(v.Z))
}

func readVec3f(h hostmem.Handle, field string) (Vec3f, bool) {
	var v Vec3f
	var ok bool
	if v.X, ok = h.F32At(field, 0); !ok {
		return Vec3f{}, false
	}
	v.Y, _ = h.F32At(field, 1)
	v.Z, _ = h.F32At(field, 2)
	return v, true
}

func writeVec3f(h hostmem.Handle, field string, v Vec3f) {
	h.SetF32At(field, 0, v.X)
	h.SetF32At(field, 1, v.Y)
	h.SetF32At(field, 2, v.Z)
}

func readVec3s(h hostmem.Handle, field string) (Vec3s, bool) {
	var v Vec3s
	var ok bool
	if v.X, ok = h.S16At(field, 0); !ok {
		return Vec3s{}, false
	}
	v.Y, _ = h.S16At(field, 1)
	v.Z, _ = h.S16At(field, 2)
	return v, true
}

func writeVec3s(h hostmem.Handle, field string, v Vec3s) {
	h.SetS16At(field, 0, v.X)
	h.SetS16At(field, 1, v.Y)
	h.SetS16At(field, 2, v.Z)
}
