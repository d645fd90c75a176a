package game

import (
	"github.com/automoto/ss-practice/hostcall"
	"github.com/automoto/ss-practice/hostmem"
)

// CheckXZDistanceFromLink asks the host whether actor is within distance of
// the player on the horizontal plane.
func (h *Host) CheckXZDistanceFromLink(actor hostmem.Addr, distance float32) bool {
	if h.Calls == nil || h.Symbols.CheckXZDistanceFromLink == 0 {
		return false
	}
	args := hostcall.NewArgs().Ptr(actor).F32(distance)
	return h.Calls.Invoke(h.Symbols.CheckXZDistanceFromLink, args).Bool()
}

// Transition types understood by TriggerEntrance.
const (
	TransitionFade  uint8 = 0
	TransitionWhite uint8 = 1
)

// Entrance is a full TriggerEntrance request.
type Entrance struct {
	Stage       string
	Room        uint8
	Layer       uint8
	Entrance    uint8
	ForcedNight bool
	ForcedTrial bool
	Transition  uint8
	FadeFrames  uint8
}

// TriggerEntrance asks the host to load a stage. The stage name is copied
// into the scratch buffer and passed by pointer.
func (h *Host) TriggerEntrance(e Entrance) {
	if h.Calls == nil || h.Symbols.TriggerEntrance == 0 {
		return
	}
	scratch := hostmem.Bind(h.Mem, ScratchLayout, h.Symbols.Scratch)
	if !scratch.Present() {
		return
	}

	name := make([]byte, len(e.Stage)+1)
	copy(name, e.Stage)
	scratch.SetBytes("buf", name)

	args := hostcall.NewArgs().
		Ptr(scratch.Base()).
		U8(e.Room).
		U8(e.Layer).
		U8(e.Entrance).
		Bool(e.ForcedNight).
		Bool(e.ForcedTrial).
		U8(e.Transition).
		U8(e.FadeFrames)
	h.Calls.Invoke(h.Symbols.TriggerEntrance, args)
}

// DecodeEntrance reads TriggerEntrance arguments on the host side.
func DecodeEntrance(m hostmem.Memory, args *hostcall.Args) (Entrance, bool) {
	stage, ok := ReadString(m, hostmem.Addr(args.Int(0)), 8)
	if !ok {
		return Entrance{}, false
	}
	return Entrance{
		Stage:       stage,
		Room:        uint8(args.Int(1)),
		Layer:       uint8(args.Int(2)),
		Entrance:    uint8(args.Int(3)),
		ForcedNight: args.Int(4) != 0,
		ForcedTrial: args.Int(5) != 0,
		Transition:  uint8(args.Int(6)),
		FadeFrames:  uint8(args.Int(7)),
	}, true
}

// ReadString reads a NUL terminated string of at most limit bytes. Host
// routines use it to decode string arguments.
func ReadString(m hostmem.Memory, addr hostmem.Addr, limit int) (string, bool) {
	if addr == 0 {
		return "", false
	}
	out := make([]byte, 0, limit)
	for i := 0; i < limit; i++ {
		b, ok := hostmem.ReadU8(m, addr+hostmem.Addr(i))
		if !ok {
			return "", false
		}
		if b == 0 {
			break
		}
		out = append(out, b)
	}
	return string(out), true
}
