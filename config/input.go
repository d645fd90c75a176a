package config

import (
	"github.com/automoto/ss-practice/button"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and gamepad buttons for one host button
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// StickBinding maps keys onto the analog stick
type StickBinding struct {
	Left, Right, Up, Down []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[button.Buttons]InputBinding
	Stick    StickBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Stick: StickBinding{
			Left:  []ebiten.Key{ebiten.KeyA},
			Right: []ebiten.Key{ebiten.KeyD},
			Up:    []ebiten.Key{ebiten.KeyW},
			Down:  []ebiten.Key{ebiten.KeyS},
		},
		Bindings: map[button.Buttons]InputBinding{
			button.DpadUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			button.DpadDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			button.DpadLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			button.DpadRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			button.A: {
				Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			button.B: {
				Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
			button.One: {
				Keys:                   []ebiten.Key{ebiten.Key1},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			button.Two: {
				Keys:                   []ebiten.Key{ebiten.Key2},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			button.Minus: {
				Keys:                   []ebiten.Key{ebiten.KeyMinus},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			button.Plus: {
				Keys:                   []ebiten.Key{ebiten.KeyEqual},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			button.Home: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			button.C: {
				Keys:                   []ebiten.Key{ebiten.KeyC},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
			},
			button.Z: {
				// Z is sprint in the sandbox
				Keys:                   []ebiten.Key{ebiten.KeyShiftLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
			},
		},
	}
}
