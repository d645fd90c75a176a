package components

import (
	"github.com/automoto/ss-practice/button"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// InputData stores this frame's and the previous frame's held buttons.
// Pressed and released edges are derived by comparing the two.
type InputData struct {
	Current         button.Buttons
	Previous        button.Buttons
	StickX          float32
	StickY          float32
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
