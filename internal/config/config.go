package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"slidereel/internal/carousel"
	"slidereel/internal/eventbus"
)

// FileName is the per-directory config file name
const FileName = ".slidereel.toml"

// Duration is a time.Duration written as "5s" / "450ms" in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// Config represents the application configuration
type Config struct {
	Version       int        `toml:"version"`
	SourceURL     string     `toml:"source_url"`     // remote slide endpoint
	Manifest      string     `toml:"manifest"`       // local YAML manifest, used when source_url is empty
	FallbackSlide string     `toml:"fallback_slide"` // shown when the source yields nothing
	Interval      Duration   `toml:"interval"`
	Transition    Duration   `toml:"transition"`
	Autoplay      bool       `toml:"autoplay"`
	SortByOrder   bool       `toml:"sort_by_order"`
	UISettings    UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCounter bool `toml:"show_counter"`
	ShowURL     bool `toml:"show_url"`
}

// CarouselOptions converts the timing settings for the controller
func (c *Config) CarouselOptions() carousel.Options {
	return carousel.Options{
		Interval:           c.Interval.Duration,
		TransitionDuration: c.Transition.Duration,
		Autoplay:           c.Autoplay,
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted at path. An empty path
// selects the user config directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		path = filepath.Join(configDir, "slidereel", "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration, returning defaults if the file doesn't exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their defaults
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// normalize replaces non-positive durations with defaults
func (c *Config) normalize() {
	if c.Interval.Duration <= 0 {
		c.Interval.Duration = carousel.DefaultInterval
	}
	if c.Transition.Duration <= 0 {
		c.Transition.Duration = carousel.DefaultTransitionDuration
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Interval:   Duration{carousel.DefaultInterval},
		Transition: Duration{carousel.DefaultTransitionDuration},
		Autoplay:   true,
		UISettings: UISettings{
			ShowCounter: true,
			ShowURL:     true,
		},
	}
}
