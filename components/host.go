package components

import (
	"github.com/automoto/ss-practice/gfx"
	"github.com/automoto/ss-practice/practice"
	"github.com/automoto/ss-practice/sandbox"
	"github.com/yohamta/donburi"
)

// HostData ties the stand-in host to the overlay running inside it
type HostData struct {
	Sandbox *sandbox.Sandbox
	Tool    *practice.Tool
	// Overlay draw calls from the last update, replayed each draw
	Overlay *gfx.Buffer
}

var Host = donburi.NewComponentType[HostData]()
