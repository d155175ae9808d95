package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGridMultiplier  = 3
	DefaultSimulationDelay = 50
	DefaultDelayStep       = 10
	DefaultPollInterval    = 25
	DefaultCursorJump      = 4
	DefaultPanStep         = 4
	DefaultGalleryWidth    = 28
	DefaultTheme           = "classic"
	DefaultLogLevel        = "info"
)

// Config holds every tunable of the editor. Durations are in milliseconds.
type Config struct {
	Catalog         string `yaml:"catalog"`
	GridMultiplier  int    `yaml:"grid_multiplier"`
	MaxGridWidth    int    `yaml:"max_grid_width"`
	MaxGridHeight   int    `yaml:"max_grid_height"`
	SimulationDelay int    `yaml:"simulation_delay"`
	DelayStep       int    `yaml:"delay_step"`
	PollInterval    int    `yaml:"poll_interval"`
	CursorJump      int    `yaml:"cursor_jump"`
	PanStep         int    `yaml:"pan_step"`
	GalleryWidth    int    `yaml:"gallery_width"`
	Theme           string `yaml:"theme"`
	StartPaused     bool   `yaml:"start_paused"`
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		GridMultiplier:  DefaultGridMultiplier,
		SimulationDelay: DefaultSimulationDelay,
		DelayStep:       DefaultDelayStep,
		PollInterval:    DefaultPollInterval,
		CursorJump:      DefaultCursorJump,
		PanStep:         DefaultPanStep,
		GalleryWidth:    DefaultGalleryWidth,
		Theme:           DefaultTheme,
		LogLevel:        DefaultLogLevel,
	}
}

// Load reads a YAML file on top of base. Keys missing from the file keep the
// values of base; a nil base means DefaultConfig.
func Load(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if base != nil {
		c := *base
		cfg = &c
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects negative sizes and delays and a multiplier below one.
func (c *Config) Validate() error {
	if c.GridMultiplier < 1 {
		return fmt.Errorf("config: grid_multiplier must be at least 1, got %d", c.GridMultiplier)
	}
	checks := []struct {
		name  string
		value int
	}{
		{"max_grid_width", c.MaxGridWidth},
		{"max_grid_height", c.MaxGridHeight},
		{"simulation_delay", c.SimulationDelay},
		{"delay_step", c.DelayStep},
		{"poll_interval", c.PollInterval},
		{"cursor_jump", c.CursorJump},
		{"pan_step", c.PanStep},
		{"gallery_width", c.GalleryWidth},
	}
	for _, chk := range checks {
		if chk.value < 0 {
			return fmt.Errorf("config: %s must not be negative, got %d", chk.name, chk.value)
		}
	}
	return nil
}

func (c *Config) SimulationDelayDuration() time.Duration {
	return time.Duration(c.SimulationDelay) * time.Millisecond
}

func (c *Config) DelayStepDuration() time.Duration {
	return time.Duration(c.DelayStep) * time.Millisecond
}

func (c *Config) PollIntervalDuration() time.Duration {
	return time.Duration(c.PollInterval) * time.Millisecond
}
