package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the sandbox window options
type SettingsData struct {
	ResolutionIndex int
	Fullscreen      bool
	ShowWalls       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
