package config

import "sort"

// Presets are named starting points layered under a config file and flags.
var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"compact": {
		GridMultiplier: 1, SimulationDelay: 80, DelayStep: 10, PollInterval: 25,
		CursorJump: 2, PanStep: 2, GalleryWidth: 22, Theme: "mono", LogLevel: DefaultLogLevel,
	},
	"huge": {
		GridMultiplier: 6, MaxGridWidth: 2000, MaxGridHeight: 1000, SimulationDelay: 30,
		DelayStep: 10, PollInterval: 25, CursorJump: 8, PanStep: 16, GalleryWidth: 28,
		Theme: "classic", LogLevel: DefaultLogLevel,
	},
	"turbo": {
		GridMultiplier: 3, SimulationDelay: 0, DelayStep: 5, PollInterval: 10,
		CursorJump: 4, PanStep: 4, GalleryWidth: 28, Theme: "neon", LogLevel: DefaultLogLevel,
	},
	"slowmo": {
		GridMultiplier: 2, SimulationDelay: 400, DelayStep: 50, PollInterval: 25,
		CursorJump: 4, PanStep: 4, GalleryWidth: 28, Theme: "ocean", StartPaused: true,
		LogLevel: DefaultLogLevel,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
