package game

import "github.com/automoto/ss-practice/hostmem"

// StaminaFull is the host's value for a full stamina gauge.
const StaminaFull = 1_000_000

// PlayerLayout is the player actor. It extends the actor base object; the
// stamina gauge sits far past it.
var PlayerLayout = hostmem.NewLayout("ActorLink", 0x449C,
	hostmem.Field{Name: "vtable", Offset: actorVtable, Size: 4},
	hostmem.Field{Name: "angle", Offset: actorAngle, Size: 6},
	hostmem.Field{Name: "pos", Offset: actorPos, Size: 12},
	hostmem.Field{Name: "stamina_amount", Offset: 0x4498, Size: 4},
)

// Player is a view of the player actor. It is absent between stages, when
// the host has no player loaded.
type Player struct {
	h hostmem.Handle
}

func (p Player) Present() bool {
	return p.h.Present()
}

// Addr of the player actor.
func (p Player) Addr() hostmem.Addr {
	return p.h.Base()
}

// Handle gives the host side direct access to the record.
func (p Player) Handle() hostmem.Handle {
	return p.h
}

func (p Player) Position() (Vec3f, bool) {
	return readVec3f(p.h, "pos")
}

func (p Player) SetPosition(v Vec3f) {
	writeVec3f(p.h, "pos", v)
}

func (p Player) Angle() (Vec3s, bool) {
	return readVec3s(p.h, "angle")
}

func (p Player) SetAngle(v Vec3s) {
	writeVec3s(p.h, "angle", v)
}

func (p Player) Stamina() (uint32, bool) {
	return p.h.U32("stamina_amount")
}

func (p Player) SetStamina(v uint32) {
	p.h.SetU32("stamina_amount", v)
}
