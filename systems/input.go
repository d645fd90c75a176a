package systems

import (
	"strings"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/components"
	cfg "github.com/automoto/ss-practice/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls the keyboard and gamepads, then writes the frame's
// controller record into host memory. Must run BEFORE UpdatePractice.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for b, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current |= b
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current |= b
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	sx, sy := getKeyStickState()
	if sx != 0 || sy != 0 {
		keyboardUsed = true
	}
	if ax, ay, gpID, ok := getAnalogStickState(gamepadIDs); ok {
		sx, sy = ax, ay
		gamepadUsed = true
		activeGamepadID = gpID
	}
	input.StickX, input.StickY = sx, sy

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	if host, ok := getHost(ecs); ok {
		host.Sandbox.Pad().Store(button.Next(input.Previous, input.Current, input.StickX, input.StickY))
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getKeyStickState turns the stick keys into a unit-length stick.
func getKeyStickState() (x, y float32) {
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	stick := cfg.Input.Stick
	if held(stick.Left) {
		x--
	}
	if held(stick.Right) {
		x++
	}
	if held(stick.Up) {
		y--
	}
	if held(stick.Down) {
		y++
	}
	if x != 0 && y != 0 {
		x *= 0.7071
		y *= 0.7071
	}
	return x, y
}

// getAnalogStickState reads the left analog stick from the first gamepad
// pushed past the deadzone
func getAnalogStickState(gamepads []ebiten.GamepadID) (x, y float32, gpID ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal*horizontal+vertical*vertical < deadzone*deadzone {
			continue
		}
		return float32(horizontal), float32(vertical), id, true
	}

	return 0, 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
