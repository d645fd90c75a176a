// Package game describes the host's data structures and routines that the
// overlay uses. Layouts are fixed by the host build; symbol addresses change
// between host versions and are supplied through Symbols.
package game

import (
	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/hostcall"
	"github.com/automoto/ss-practice/hostmem"
)

// Symbols are the host addresses for one host version.
type Symbols struct {
	LinkPtr          hostmem.Pointer `yaml:"link_ptr"`
	PadPtr           hostmem.Pointer `yaml:"pad_ptr"`
	SceneflagManager hostmem.Pointer `yaml:"sceneflag_manager"`
	ActorList        hostmem.Addr    `yaml:"actor_list"`
	StageInfo        hostmem.Addr    `yaml:"stage_info"`
	Scratch          hostmem.Addr    `yaml:"scratch"`

	CheckXZDistanceFromLink hostmem.Addr `yaml:"check_xz_distance_from_link"`
	TriggerEntrance         hostmem.Addr `yaml:"trigger_entrance"`
}

// ScratchLayout is a buffer in host memory reserved for the overlay, used to
// pass strings to host routines.
var ScratchLayout = hostmem.NewLayout("Scratch", 0x40,
	hostmem.Field{Name: "buf", Offset: 0, Size: 0x40},
)

// Host bundles the memory and call boundaries with the symbols of the running
// host version.
type Host struct {
	Mem     hostmem.Memory
	Calls   hostcall.Invoker
	Symbols Symbols
}

// NewHost returns a Host for the given boundaries.
func NewHost(mem hostmem.Memory, calls hostcall.Invoker, sym Symbols) *Host {
	return &Host{Mem: mem, Calls: calls, Symbols: sym}
}

// Player resolves the current player actor.
func (h *Host) Player() Player {
	return Player{h: hostmem.Attach(h.Mem, PlayerLayout, h.Symbols.LinkPtr)}
}

// Flags resolves the scene flag manager.
func (h *Host) Flags() Flags {
	return Flags{h: hostmem.Attach(h.Mem, SceneflagLayout, h.Symbols.SceneflagManager)}
}

// Actors views the actor table.
func (h *Host) Actors() ActorList {
	return ActorList{mem: h.Mem, h: hostmem.Bind(h.Mem, ActorListLayout, h.Symbols.ActorList)}
}

// StageInfo views the current location record.
func (h *Host) StageInfo() StageInfo {
	return StageInfo{h: hostmem.Bind(h.Mem, StageInfoLayout, h.Symbols.StageInfo)}
}

// Pad resolves the controller record.
func (h *Host) Pad() *button.Pad {
	return button.Attach(h.Mem, h.Symbols.PadPtr)
}
