package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains the sandbox window options
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	// Key under which settings are stored on disk
	StorageKey string
	AppName    string
}

// Settings is the global sandbox settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 640, Height: 480, Label: "640 x 480"},
			{Width: 960, Height: 720, Label: "960 x 720"},
			{Width: 1280, Height: 960, Label: "1280 x 960"},
		},
		DefaultResolutionIndex: 1,
		StorageKey:             "settings",
		AppName:                "ss-practice",
	}
}
