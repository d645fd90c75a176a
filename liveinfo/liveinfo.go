// Package liveinfo reads host state and formats it for on-screen panels. It
// never writes to the host.
package liveinfo

import (
	"fmt"
	"strings"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
	"github.com/automoto/ss-practice/gfx"
)

// FormatFlags renders a flag bank as label followed by each word's high and
// low byte in uppercase hex.
func FormatFlags(label string, words []uint16) string {
	var b strings.Builder
	b.WriteString(label)
	for _, w := range words {
		fw := game.FlagWord(w)
		fmt.Fprintf(&b, " %02X %02X", fw.Hi(), fw.Lo())
	}
	return b.String()
}

// SceneFlags renders the scene and temp flag banks.
func SceneFlags(host *game.Host) string {
	flags := host.Flags()
	if !flags.Present() {
		return ""
	}
	return FormatFlags("Scene:", flags.Words(game.BankScene)) + "\n" +
		FormatFlags(" Temp:", flags.Words(game.BankTemp))
}

// PlayerInfo renders the player's position, facing and stamina.
func PlayerInfo(host *game.Host) string {
	p := host.Player()
	pos, ok := p.Position()
	if !ok {
		return ""
	}
	angle, _ := p.Angle()
	stamina, _ := p.Stamina()

	var b strings.Builder
	fmt.Fprintf(&b, "Pos:     %v\n", pos)
	fmt.Fprintf(&b, "Angle:   %v\n", angle)
	fmt.Fprintf(&b, "Stamina: %d", stamina)
	if loc, ok := host.StageInfo().Location(); ok && loc.Stage != "" {
		fmt.Fprintf(&b, "\nStage:   %s r%d l%d e%d", loc.Stage, loc.Room, loc.Layer, loc.Entrance)
	}
	return b.String()
}

// InputViewer renders the buttons currently held.
func InputViewer(pad *button.Pad) string {
	down := pad.Down()
	if down == 0 {
		return "Input: -"
	}
	return "Input: " + down.String()
}

// NearbyActors counts actors the host considers within radius of the player.
func NearbyActors(host *game.Host, radius float32) string {
	if !host.Player().Present() {
		return ""
	}
	actors := host.Actors()
	near := 0
	for i := 0; i < actors.Len(); i++ {
		a := actors.At(i)
		if !a.Present() {
			continue
		}
		if host.CheckXZDistanceFromLink(a.Addr(), radius) {
			near++
		}
	}
	return fmt.Sprintf("Actors within %.0f: %d/%d", radius, near, actors.Len())
}

// Panel is one live info display.
type Panel int

const (
	PanelSceneFlags Panel = iota
	PanelPlayerInfo
	PanelInputViewer
	PanelNearbyActors
	PanelCount
)

var panelNames = [PanelCount]string{
	PanelSceneFlags:   "Scene Flags",
	PanelPlayerInfo:   "Player Info",
	PanelInputViewer:  "Input Viewer",
	PanelNearbyActors: "Nearby Actors",
}

func (p Panel) String() string {
	if p < 0 || p >= PanelCount {
		return "Unknown"
	}
	return panelNames[p]
}

// Render draws the panel's text in a console placed according to config.
// Panels with nothing to show draw nothing.
func Render(p Panel, host *game.Host, r gfx.Renderer) {
	cfg := config.Panels[p]

	var text string
	switch p {
	case PanelSceneFlags:
		text = SceneFlags(host)
	case PanelPlayerInfo:
		text = PlayerInfo(host)
	case PanelInputViewer:
		text = InputViewer(host.Pad())
	case PanelNearbyActors:
		text = NearbyActors(host, config.Practice.NearbyRadius)
	}
	if text == "" {
		return
	}

	console := gfx.NewConsole(cfg.X, cfg.Y)
	console.SetBGColor(cfg.Background)
	console.SetFontColor(cfg.Foreground)
	console.SetFontSize(cfg.FontSize)
	_, _ = console.WriteString(text)
	console.Draw(r)
}
