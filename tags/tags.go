package tags

import "github.com/yohamta/donburi"

var (
	Host = donburi.NewTag().SetName("Host")
)

// Resolv tags for sandbox collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvActor  = "Actor"
)
