package config

import (
	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/gfx"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	OverlayLayer
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PracticeConfig contains overlay behaviour values
type PracticeConfig struct {
	// Buttons that must all be held to open the main menu
	Chord button.Buttons
	// Buttons the main menu hides from the host when it closes
	Intercepted button.Buttons

	// Radius used by the nearby actors panel, in host units
	NearbyRadius float32

	// Warp transition parameters passed to the host
	WarpFadeFrames uint8
}

// OverlayConfig contains menu drawing values
type OverlayConfig struct {
	// Screen dim behind an open menu
	DimColor gfx.Color

	// Input guide along the bottom of the screen
	GuideX     float32
	GuideY     float32
	GuideColor gfx.Color
	GuideSize  float32

	// Menu list
	MenuX             float32
	MenuY             float32
	MenuWidth         float32
	FontSize          float32
	LineGap           float32
	HeadingColor      gfx.Color
	TextColorNormal   gfx.Color
	TextColorSelected gfx.Color
	ValueColor        gfx.Color
	HighlightColor    gfx.Color
}

// PanelConfig places one live info panel
type PanelConfig struct {
	X          float32
	Y          float32
	Background gfx.Color
	Foreground gfx.Color
	FontSize   float32
}

// SandboxConfig contains values for the stand-in host
type SandboxConfig struct {
	// Memory
	ArenaBase uint32
	ArenaSize uint32
	HeapStart uint32

	// Movement, host units per frame
	WalkSpeed   float64
	SprintSpeed float64

	// Stamina change per frame
	StaminaDrain uint32
	StaminaRegen uint32

	// Seconds for each half of a warp fade
	FadeSeconds float32

	// Actor collision box size, host units
	PlayerSize float64
	ActorSize  float64

	// Colours
	SkyColor    gfx.Color
	WallColor   gfx.Color
	PlayerColor gfx.Color
	ActorColor  gfx.Color
	OpenedColor gfx.Color
	HUDColor    gfx.Color
}

// DebugConfig contains command-line options
type DebugConfig struct {
	Version   string // Host version whose symbol table is used
	ShowWalls bool   // Outline collision boxes
}

// Global configuration instances
var C *Config
var Practice PracticeConfig
var Overlay OverlayConfig
var Panels []PanelConfig
var Sandbox SandboxConfig
var Debug DebugConfig

// Shared colours
const (
	White        gfx.Color = 0xFFFFFFFF
	Black        gfx.Color = 0x000000FF
	BlackOverlay gfx.Color = 0x000000C0
	PanelBlack   gfx.Color = 0x000000CF
	BrightOrange gfx.Color = 0xFFA028FF
	LightGray    gfx.Color = 0xB4B4B4FF
	Highlight    gfx.Color = 0x3C64C8A0
)

func init() {
	C = &Config{
		Width:  gfx.ScreenWidth,
		Height: gfx.ScreenHeight,
		Title:  "SS Practice Sandbox",
	}

	Practice = PracticeConfig{
		Chord: button.DpadRight | button.Two,
		Intercepted: button.B | button.A | button.DpadRight | button.DpadDown |
			button.DpadLeft | button.DpadUp | button.Two,
		NearbyRadius:   120,
		WarpFadeFrames: 15,
	}

	Overlay = OverlayConfig{
		DimColor:   BlackOverlay,
		GuideX:     10,
		GuideY:     420,
		GuideColor: White,
		GuideSize:  0.5,

		MenuX:             40,
		MenuY:             40,
		MenuWidth:         360,
		FontSize:          0.6,
		LineGap:           4,
		HeadingColor:      BrightOrange,
		TextColorNormal:   White,
		TextColorSelected: White,
		ValueColor:        LightGray,
		HighlightColor:    Highlight,
	}

	// Indexed by liveinfo.Panel
	Panels = []PanelConfig{
		{X: 0, Y: 0, Background: PanelBlack, Foreground: White, FontSize: 0.3},
		{X: 0, Y: 40, Background: PanelBlack, Foreground: White, FontSize: 0.3},
		{X: 0, Y: 460, Background: PanelBlack, Foreground: White, FontSize: 0.3},
		{X: 440, Y: 0, Background: PanelBlack, Foreground: White, FontSize: 0.3},
	}

	Sandbox = SandboxConfig{
		ArenaBase: 0x80000000,
		ArenaSize: 0x00100000,
		HeapStart: 0x80010000,

		WalkSpeed:   2,
		SprintSpeed: 4,

		StaminaDrain: 8000,
		StaminaRegen: 4000,

		FadeSeconds: 0.25,

		PlayerSize: 16,
		ActorSize:  16,

		SkyColor:    0x1E3250FF,
		WallColor:   0x50505AFF,
		PlayerColor: 0x3CC850FF,
		ActorColor:  0xDCB43CFF,
		OpenedColor: 0x6E6446FF,
		HUDColor:    White,
	}

	Debug = DebugConfig{
		Version: "rev0",
	}
}
