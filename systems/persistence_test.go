package systems

import (
	"testing"

	"github.com/automoto/ss-practice/components"
)

func TestFromSaved(t *testing.T) {
	tests := []struct {
		name      string
		flagWalls bool
		saved     SavedSettings
		want      components.SettingsData
	}{
		{"all fields", false, SavedSettings{ResolutionIndex: 2, Fullscreen: true, ShowWalls: true},
			components.SettingsData{ResolutionIndex: 2, Fullscreen: true, ShowWalls: true}},
		{"resolution out of range", false, SavedSettings{ResolutionIndex: 9},
			components.SettingsData{ResolutionIndex: 1}},
		{"negative resolution", false, SavedSettings{ResolutionIndex: -1},
			components.SettingsData{ResolutionIndex: 1}},
		{"flag keeps walls on", true, SavedSettings{ResolutionIndex: 0},
			components.SettingsData{ResolutionIndex: 0, ShowWalls: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &components.SettingsData{ResolutionIndex: 1, ShowWalls: tt.flagWalls}
			fromSaved(s, &tt.saved)
			if *s != tt.want {
				t.Errorf("fromSaved = %+v, want %+v", *s, tt.want)
			}
		})
	}
}

func TestToSaved(t *testing.T) {
	s := &components.SettingsData{ResolutionIndex: 2, ShowWalls: true}
	got := toSaved(s)
	want := SavedSettings{ResolutionIndex: 2, ShowWalls: true}
	if *got != want {
		t.Errorf("toSaved = %+v, want %+v", *got, want)
	}
}
