package systems

import (
	"github.com/automoto/ss-practice/components"
	"github.com/automoto/ss-practice/gfx"
	"github.com/automoto/ss-practice/practice"
	"github.com/automoto/ss-practice/sandbox"
	"github.com/automoto/ss-practice/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// CreateHost adds the singleton host entity wrapping sb and the overlay
// attached to it.
func CreateHost(ecs *ecs.ECS, sb *sandbox.Sandbox) *components.HostData {
	entry := ecs.World.Entry(ecs.World.Create(tags.Host, components.Host))
	host := components.Host.Get(entry)
	host.Sandbox = sb
	host.Tool = practice.New(sb.Host)
	host.Overlay = gfx.NewBuffer(&Screen{})
	return host
}

func getHost(ecs *ecs.ECS) (*components.HostData, bool) {
	entry, ok := components.Host.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Host.Get(entry), true
}

// UpdateHost advances the sandbox by one tick. Runs after the overlay has
// seen this frame's input so its suppressions take effect.
func UpdateHost(ecs *ecs.ECS) {
	host, ok := getHost(ecs)
	if !ok {
		return
	}
	host.Sandbox.Step(1 / float32(ebiten.TPS()))
}
