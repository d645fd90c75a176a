package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/ss-practice/components"
	cfg "github.com/automoto/ss-practice/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ResolutionIndex int  `json:"resolutionIndex"`
	Fullscreen      bool `json:"fullscreen"`
	ShowWalls       bool `json:"showWalls"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// Settings read at startup, picked up by the first scene
var startupSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.StorageKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies window settings before any scene exists.
// The rest is kept for GetOrCreateSettings.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	startupSettings = saved

	ebiten.SetFullscreen(saved.Fullscreen)
	applyResolution(saved.ResolutionIndex, saved.Fullscreen)
}

func applyResolution(index int, fullscreen bool) {
	// Only if not fullscreen
	if fullscreen || index < 0 || index >= len(cfg.Settings.Resolutions) {
		return
	}
	res := cfg.Settings.Resolutions[index]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// toSaved copies the settings component into its on-disk form
func toSaved(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		ResolutionIndex: s.ResolutionIndex,
		Fullscreen:      s.Fullscreen,
		ShowWalls:       s.ShowWalls,
	}
}

// fromSaved fills the settings component from disk. The command line can
// switch wall outlines on but not off.
func fromSaved(s *components.SettingsData, saved *SavedSettings) {
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		s.ResolutionIndex = saved.ResolutionIndex
	}
	s.Fullscreen = saved.Fullscreen
	s.ShowWalls = s.ShowWalls || saved.ShowWalls
}

// GetOrCreateSettings returns the singleton settings component. A new one
// starts from the command line and whatever was loaded at startup.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		s := components.Settings.Get(entry)
		s.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
		s.ShowWalls = cfg.Debug.ShowWalls
		if startupSettings != nil {
			fromSaved(s, startupSettings)
		}
		return s
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the sandbox window keys and saves whenever a
// setting changes.
func UpdateSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		s.ResolutionIndex = (s.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
		applyResolution(s.ResolutionIndex, s.Fullscreen)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
		applyResolution(s.ResolutionIndex, s.Fullscreen)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.ShowWalls = !s.ShowWalls
		changed = true
	}

	if changed {
		_ = SaveSettings(toSaved(s))
	}
}
