package menus

import (
	"github.com/automoto/ss-practice/button"
	"github.com/automoto/ss-practice/game"
)

type action int

const (
	actionSavePosition action = iota
	actionLoadPosition
	actionRefillStamina
	actionCount
)

var actionLabels = [actionCount]string{
	actionSavePosition:  "Save Position",
	actionLoadPosition:  "Load Position",
	actionRefillStamina: "Refill Stamina",
}

type savedPosition struct {
	pos   game.Vec3f
	angle game.Vec3s
}

// ActionMenu runs one-shot changes to the player and closes the overlay.
type ActionMenu struct {
	active     bool
	cursor     int
	forceClose bool
	saved      *savedPosition
}

func NewActionMenu() *ActionMenu {
	return &ActionMenu{}
}

func (m *ActionMenu) IsActive() bool {
	return m.active
}

// HasSave reports whether a position has been saved.
func (m *ActionMenu) HasSave() bool {
	return m.saved != nil
}

func (m *ActionMenu) Enable(f *Frame) {
	m.active = true
}

func (m *ActionMenu) Disable(f *Frame) {
	m.forceClose = true
	suppress(f)
}

func (m *ActionMenu) Input(f *Frame) {
	if !m.active {
		return
	}
	if f.Pad.IsPressed(button.B) {
		m.active = false
		f.Pad.SetNotPressed(button.B)
	} else if f.Pad.IsPressed(button.A) {
		m.run(action(m.cursor), f.Host.Player())
		closeAll(m, f)
	}
}

func (m *ActionMenu) run(a action, p game.Player) {
	switch a {
	case actionSavePosition:
		pos, ok := p.Position()
		if !ok {
			return
		}
		angle, _ := p.Angle()
		m.saved = &savedPosition{pos: pos, angle: angle}
	case actionLoadPosition:
		if m.saved == nil {
			return
		}
		p.SetPosition(m.saved.pos)
		p.SetAngle(m.saved.angle)
	case actionRefillStamina:
		p.SetStamina(game.StaminaFull)
	}
}

func (m *ActionMenu) Display(f *Frame) {
	if m.active {
		rows := make([]row, actionCount)
		for i, label := range actionLabels {
			rows[i] = row{label: label}
		}
		list := newList("Action Menu", int(actionCount), m.cursor, rows...)
		list.Draw(f.Gfx)
		m.cursor = list.MoveCursor(f.Pad)
	}

	if m.forceClose {
		m.forceClose = false
		m.active = false
	}
}
