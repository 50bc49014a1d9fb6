package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "coachdash/internal/platform/errors"
)

const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"

	stateDir   = ".coachdash"
	configFile = "config.yaml"
)

type Config struct {
	DataPath          string        `yaml:"-"`
	DBPath            string        `yaml:"-"`
	EntriesPath       string        `yaml:"-"`
	DemoMode          bool          `yaml:"demo_mode"`
	DefaultClientName string        `yaml:"default_client_name"`
	Storage           StorageConfig `yaml:"storage"`
	Log               LogConfig     `yaml:"log"`
	UI                UIConfig      `yaml:"ui"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// UIConfig toggles the optional dashboard sections.
type UIConfig struct {
	Emoji        bool `yaml:"emoji"`
	ShowInsights bool `yaml:"show_insights"`
	ShowQuote    bool `yaml:"show_quote"`
}

func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	return Config{
		DataPath:          dataPath,
		DBPath:            filepath.Join(dataPath, stateDir, "coachdash.db"),
		EntriesPath:       filepath.Join(dataPath, stateDir, "entries"),
		DefaultClientName: "Welcome",
		Storage:           StorageConfig{Driver: StoreSQLite},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dataPath, stateDir, "coachdash.log"),
		},
		UI: UIConfig{Emoji: true, ShowInsights: true, ShowQuote: true},
	}, nil
}

// Path returns the location of the optional config file for dataPath.
func Path(dataPath string) string {
	return filepath.Join(dataPath, stateDir, configFile)
}

// Load builds the defaults for dataPath and overlays the config file when
// one exists.
func Load(dataPath string) (Config, error) {
	cfg, err := New(dataPath)
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(Path(dataPath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(dataPath, stateDir, "coachdash.log")
	}
	if strings.TrimSpace(cfg.DefaultClientName) == "" {
		cfg.DefaultClientName = "Welcome"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StoreSQLite, StoreFile:
	default:
		return fmt.Errorf("%w: unsupported storage driver %q", apperrors.ErrInvalidInput, c.Storage.Driver)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unsupported log level %q", apperrors.ErrInvalidInput, c.Log.Level)
	}
	return nil
}
