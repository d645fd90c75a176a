package game

import (
	"bytes"

	"github.com/automoto/ss-practice/hostmem"
)

// StageInfoLayout is the host's record of where the player currently is.
var StageInfoLayout = hostmem.NewLayout("StageInfo", 0x10,
	hostmem.Field{Name: "name", Offset: 0x00, Size: 8},
	hostmem.Field{Name: "room", Offset: 0x08, Size: 1},
	hostmem.Field{Name: "layer", Offset: 0x09, Size: 1},
	hostmem.Field{Name: "entrance", Offset: 0x0A, Size: 1},
	hostmem.Field{Name: "night", Offset: 0x0B, Size: 1},
)

// Location is a decoded StageInfo.
type Location struct {
	Stage    string
	Room     uint8
	Layer    uint8
	Entrance uint8
	Night    bool
}

// StageInfo is a view of the current location record.
type StageInfo struct {
	h hostmem.Handle
}

// Handle gives the host side direct access to the record.
func (s StageInfo) Handle() hostmem.Handle {
	return s.h
}

// Location reads the record, ok=false when it is absent.
func (s StageInfo) Location() (Location, bool) {
	name, ok := s.h.Bytes("name")
	if !ok {
		return Location{}, false
	}
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	room, _ := s.h.U8("room")
	layer, _ := s.h.U8("layer")
	entrance, _ := s.h.U8("entrance")
	night, _ := s.h.U8("night")
	return Location{
		Stage:    string(name),
		Room:     room,
		Layer:    layer,
		Entrance: entrance,
		Night:    night != 0,
	}, true
}

// SetLocation writes the record. Stage names longer than the field are cut.
func (s StageInfo) SetLocation(l Location) {
	name := make([]byte, 8)
	copy(name, l.Stage)
	s.h.SetBytes("name", name)
	s.h.SetU8("room", l.Room)
	s.h.SetU8("layer", l.Layer)
	s.h.SetU8("entrance", l.Entrance)
	var night uint8
	if l.Night {
		night = 1
	}
	s.h.SetU8("night", night)
}

// Stage is a warp destination known to the overlay.
type Stage struct {
	Name      string
	Code      string
	Rooms     uint8
	Layers    uint8
	Entrances uint8
}

// Stages is the warp table.
var Stages = []Stage{
	{Name: "Skyloft", Code: "F000", Rooms: 1, Layers: 4, Entrances: 4},
	{Name: "Faron Woods", Code: "F100", Rooms: 1, Layers: 3, Entrances: 3},
	{Name: "Eldin Volcano", Code: "F200", Rooms: 2, Layers: 3, Entrances: 2},
	{Name: "Lanayru Desert", Code: "F300", Rooms: 1, Layers: 2, Entrances: 3},
}

// StageByCode finds a stage in the warp table.
func StageByCode(code string) (Stage, bool) {
	for _, s := range Stages {
		if s.Code == code {
			return s, true
		}
	}
	return Stage{}, false
}
