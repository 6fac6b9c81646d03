package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"multiselect/internal/eventbus"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	LogFile    string     `toml:"log_file"` // empty discards log output
	UISettings UISettings `toml:"ui"`
	Colors     Colors     `toml:"colors"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Pointer     string `toml:"pointer"`
	Checked     string `toml:"checked"`
	Unchecked   string `toml:"unchecked"`
	ShowSummary bool   `toml:"show_summary"` // "Selected: ..." line under the list
	ShowHelp    bool   `toml:"show_help"`    // key hints footer
	UsePager    bool   `toml:"use_pager"`    // open help in ov instead of an overlay
	AltScreen   bool   `toml:"alt_screen"`
	MaxVisible  int    `toml:"max_visible"` // 0 fits the terminal height
}

// Colors holds lipgloss color values (ANSI numbers or hex)
type Colors struct {
	Title     string `toml:"title"`
	Highlight string `toml:"highlight"`
	Selected  string `toml:"selected"`
	Error     string `toml:"error"`
	Dim       string `toml:"dim"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "multiselect", "config.toml")
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path, bus: bus}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

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

// normalize restores defaults for settings that must not be blank
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.UISettings.Pointer == "" {
		c.UISettings.Pointer = def.UISettings.Pointer
	}
	if c.UISettings.Checked == "" {
		c.UISettings.Checked = def.UISettings.Checked
	}
	if c.UISettings.Unchecked == "" {
		c.UISettings.Unchecked = def.UISettings.Unchecked
	}
	if c.UISettings.MaxVisible < 0 {
		c.UISettings.MaxVisible = 0
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Pointer:     "›",
			Checked:     "◼",
			Unchecked:   "◻",
			ShowSummary: true,
			ShowHelp:    true,
			UsePager:    false,
			AltScreen:   false,
			MaxVisible:  0,
		},
		Colors: Colors{
			Title:     "99",
			Highlight: "39",
			Selected:  "78",
			Error:     "203",
			Dim:       "241",
		},
	}
}
