package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/fonts"
	"github.com/automoto/ss-practice/sandbox"
	"github.com/automoto/ss-practice/scenes"
	"github.com/automoto/ss-practice/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(sb *sandbox.Sandbox) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSandboxScene(sb),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.Version, "version", config.Debug.Version, "host version whose symbol table is used")
	flag.BoolVar(&config.Debug.ShowWalls, "walls", config.Debug.ShowWalls, "outline collision boxes")
	flag.Parse()

	sym, err := config.Lookup(config.Debug.Version)
	if err != nil {
		log.Fatalf("Failed to select host version: %v (known: %v)", err, config.Versions())
	}
	sb, err := sandbox.New(sym)
	if err != nil {
		log.Fatalf("Failed to lay out sandbox: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	res := config.Settings.Resolutions[config.Settings.DefaultResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(sb)); err != nil {
		log.Fatal(err)
	}
}
