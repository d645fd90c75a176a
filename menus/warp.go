package menus

import (
	"strconv"

	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/config"
	"github.com/automoto/ss-practice/game"
)

type warpState int

const (
	warpOff warpState = iota
	warpStageSelect
	warpDetails
)

// Rows of the details screen.
const (
	rowRoom = iota
	rowLayer
	rowEntrance
	rowNight
	rowWarp
	detailRows
)

// WarpMenu picks a stage, then a room, layer and entrance, and asks the host
// to load it.
type WarpMenu struct {
	state      warpState
	stage      int
	cursor     int
	forceClose bool

	room     uint8
	layer    uint8
	entrance uint8
	night    bool
}

func NewWarpMenu() *WarpMenu {
	return &WarpMenu{}
}

func (m *WarpMenu) IsActive() bool {
	return m.state != warpOff
}

// Selected returns the destination as it would be passed to the host.
func (m *WarpMenu) Selected() game.Entrance {
	return game.Entrance{
		Stage:       game.Stages[m.stage].Code,
		Room:        m.room,
		Layer:       m.layer,
		Entrance:    m.entrance,
		ForcedNight: m.night,
		Transition:  game.TransitionFade,
		FadeFrames:  config.Practice.WarpFadeFrames,
	}
}

func (m *WarpMenu) Enable(f *Frame) {
	if m.IsActive() {
		return
	}
	m.state = warpStageSelect
}

func (m *WarpMenu) Disable(f *Frame) {
	m.forceClose = true
	suppress(f)
}

func (m *WarpMenu) Input(f *Frame) {
	switch m.state {
	case warpStageSelect:
		if f.Pad.IsPressed(button.B) {
			m.state = warpOff
			f.Pad.SetNotPressed(button.B)
		} else if f.Pad.IsPressed(button.A) {
			m.state = warpDetails
			m.cursor = 0
			m.room, m.layer, m.entrance, m.night = 0, 0, 0, false
			f.Pad.SetNotPressed(button.A)
		}
	case warpDetails:
		if f.Pad.IsPressed(button.B) {
			m.state = warpStageSelect
			f.Pad.SetNotPressed(button.B)
			return
		}
		if f.Pad.IsPressed(button.A) && m.cursor == rowWarp {
			f.Host.TriggerEntrance(m.Selected())
			closeAll(m, f)
			return
		}
		switch {
		case f.Pad.IsPressed(button.DpadLeft):
			m.change(-1)
		case f.Pad.IsPressed(button.DpadRight):
			m.change(1)
		}
	}
}

// change steps the value on the cursor row, wrapping inside the stage's
// limits.
func (m *WarpMenu) change(delta int) {
	s := game.Stages[m.stage]
	switch m.cursor {
	case rowRoom:
		m.room = step(m.room, delta, s.Rooms)
	case rowLayer:
		m.layer = step(m.layer, delta, s.Layers)
	case rowEntrance:
		m.entrance = step(m.entrance, delta, s.Entrances)
	case rowNight:
		m.night = !m.night
	}
}

func step(v uint8, delta int, limit uint8) uint8 {
	if limit == 0 {
		return 0
	}
	n := int(limit)
	return uint8(((int(v)+delta)%n + n) % n)
}

func (m *WarpMenu) Display(f *Frame) {
	switch m.state {
	case warpStageSelect:
		rows := make([]row, len(game.Stages))
		for i, s := range game.Stages {
			rows[i] = row{s.Name, s.Code}
		}
		list := newList("Warp Menu", len(game.Stages), m.stage, rows...)
		list.Draw(f.Gfx)
		m.stage = list.MoveCursor(f.Pad)
	case warpDetails:
		s := game.Stages[m.stage]
		list := newList(s.Name, detailRows, m.cursor,
			row{"Room", strconv.Itoa(int(m.room))},
			row{"Layer", strconv.Itoa(int(m.layer))},
			row{"Entrance", strconv.Itoa(int(m.entrance))},
			row{"Night", onOff(m.night)},
			row{label: "Warp"},
		)
		list.Draw(f.Gfx)
		m.cursor = list.MoveCursor(f.Pad)
	}

	if m.forceClose {
		m.forceClose = false
		m.state = warpOff
	}
}
