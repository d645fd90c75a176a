package game

import "github.com/automoto/ss-practice/hostmem"

// Offsets shared by every actor record. The base object occupies the first
// 0x330 bytes; only the fields below are understood.
const (
	actorVtable = 0x60
	actorAngle  = 0xB8
	actorPos    = 0xC0
	actorSize   = 0x330
)

// ActorLayout is the generic actor base object.
var ActorLayout = hostmem.NewLayout("Actor", actorSize,
	hostmem.Field{Name: "vtable", Offset: actorVtable, Size: 4},
	hostmem.Field{Name: "angle", Offset: actorAngle, Size: 6},
	hostmem.Field{Name: "pos", Offset: actorPos, Size: 12},
)

// Actor is a view of any actor's base object.
type Actor struct {
	h hostmem.Handle
}

// Addr of the actor, the value the host passes around as the actor pointer.
func (a Actor) Addr() hostmem.Addr {
	return a.h.Base()
}

func (a Actor) Present() bool {
	return a.h.Present()
}

// Vtable identifies the actor's class.
func (a Actor) Vtable() (uint32, bool) {
	return a.h.U32("vtable")
}

func (a Actor) SetVtable(v uint32) {
	a.h.SetU32("vtable", v)
}

func (a Actor) Position() (Vec3f, bool) {
	return readVec3f(a.h, "pos")
}

func (a Actor) SetPosition(v Vec3f) {
	writeVec3f(a.h, "pos", v)
}

// MaxActors is the capacity of the host's actor list.
const MaxActors = 64

// ActorListLayout is the host's static table of live actor pointers.
var ActorListLayout = hostmem.NewLayout("ActorList", 4+4*MaxActors,
	hostmem.Field{Name: "count", Offset: 0x00, Size: 4},
	hostmem.Field{Name: "actors", Offset: 0x04, Size: 4 * MaxActors},
)

// ActorList is a view of the actor table.
type ActorList struct {
	mem hostmem.Memory
	h   hostmem.Handle
}

// Len is the number of live entries, zero when the table is absent.
func (l ActorList) Len() int {
	n, ok := l.h.U32("count")
	if !ok {
		return 0
	}
	return min(int(n), MaxActors)
}

// At returns the actor in slot i. Empty slots give an absent Actor.
func (l ActorList) At(i int) Actor {
	if i >= l.Len() {
		return Actor{}
	}
	p, _ := l.h.U32At("actors", i)
	return Actor{h: hostmem.Bind(l.mem, ActorLayout, hostmem.Addr(p))}
}

// ActorAt views the actor at addr, as host routines receive it.
func ActorAt(m hostmem.Memory, addr hostmem.Addr) Actor {
	return Actor{h: hostmem.Bind(m, ActorLayout, addr)}
}

// Set replaces the table contents. Entries past MaxActors are dropped.
func (l ActorList) Set(actors []hostmem.Addr) {
	if !l.h.Present() {
		return
	}
	n := min(len(actors), MaxActors)
	for i := 0; i < MaxActors; i++ {
		var p uint32
		if i < n {
			p = uint32(actors[i])
		}
		l.h.SetU32At("actors", i, p)
	}
	l.h.SetU32("count", uint32(n))
}
