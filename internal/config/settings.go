package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/nrlgen/internal/barrier"
	"github.com/danieljhkim/nrlgen/internal/node"
	"github.com/danieljhkim/nrlgen/internal/util"
)

var validate = validator.New()

// Settings holds persisted user-configurable settings.
type Settings struct {
	Barrier      barrier.Barrier `yaml:"barrier"`
	PrefixLength int             `yaml:"prefix_length" validate:"min=1,max=32"`
	Log          LogSettings     `yaml:"log"`
}

// LogSettings configures the diagnostic logger.
type LogSettings struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// DefaultSettings returns the built-in settings: a 10 x 100ms barrier,
// /24 node networks and info-level console logging.
func DefaultSettings() *Settings {
	return &Settings{
		Barrier:      barrier.Default(),
		PrefixLength: node.DefaultPrefixLen,
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks every field against its constraints.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// SettingsManager handles settings persistence.
type SettingsManager struct {
	paths *Paths
}

// NewSettingsManager creates a settings manager.
func NewSettingsManager(paths *Paths) *SettingsManager {
	return &SettingsManager{paths: paths}
}

// Path returns the settings file path.
func (sm *SettingsManager) Path() string {
	return sm.paths.SettingsFile()
}

// Load reads settings from disk. Keys missing from the file keep their
// default values.
func (sm *SettingsManager) Load() (*Settings, error) {
	data, err := os.ReadFile(sm.Path())
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	sanitize(settings)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to disk.
func (sm *SettingsManager) Save(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings required")
	}
	sanitize(settings)
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := util.MkdirAll(sm.paths.BaseDir); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return util.WriteFile(sm.Path(), data, 0644)
}

// LoadOrDefault reads settings if available, otherwise returns defaults.
func (sm *SettingsManager) LoadOrDefault() (*Settings, error) {
	settings, err := sm.Load()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return DefaultSettings(), nil
}

func sanitize(settings *Settings) {
	settings.Log.Level = strings.ToLower(strings.TrimSpace(settings.Log.Level))
	settings.Log.Format = strings.ToLower(strings.TrimSpace(settings.Log.Format))
	if settings.Log.Level == "" {
		settings.Log.Level = "info"
	}
	if settings.Log.Format == "" {
		settings.Log.Format = "console"
	}
}
