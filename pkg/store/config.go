package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configName    = ".dreams"
	envPrefix     = "DREAMS"
	envConfigPath = "DREAMS_CONFIG_PATH"

	defaultVault     = "~/dreams"
	defaultExtension = "md"
)

// Config describes where entries live.
type Config interface {
	// VaultPath is the directory documents are written to.
	VaultPath() string
	// Extension is the document suffix without the dot.
	Extension() string
}

// Settings is the persisted settings record.
type Settings struct {
	Vault     string `mapstructure:"vault" json:"vault"`
	Extension string `mapstructure:"extension" json:"extension"`
}

// DefaultSettings returns the values used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{Vault: defaultVault, Extension: defaultExtension}
}

// Config resolves the settings into a Config.
func (s Settings) Config() Config {
	return &fileConfig{Settings: s}
}

type fileConfig struct {
	Settings
}

func (f *fileConfig) VaultPath() string {
	p, err := homedir.Expand(f.Vault)
	if err != nil {
		return f.Vault
	}
	return p
}

func (f *fileConfig) Extension() string {
	ext := strings.TrimPrefix(f.Settings.Extension, ".")
	if ext == "" {
		return defaultExtension
	}
	return ext
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("vault", defaultVault)
	v.SetDefault("extension", defaultExtension)
	v.SetConfigName(configName) // .yaml is implicit
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if override := os.Getenv(envConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// LoadSettings reads .dreams.yaml from $DREAMS_CONFIG_PATH, the working
// directory or $HOME, in that order. Environment variables DREAMS_VAULT and
// DREAMS_EXTENSION override the file. A missing file is not an error.
// The second return value names the file that was read, if any.
func LoadSettings() (Settings, string, error) {
	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, "", fmt.Errorf("store: read config: %w", err)
		}
	}
	s := DefaultSettings()
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, "", fmt.Errorf("store: decode config: %w", err)
	}
	return s, v.ConfigFileUsed(), nil
}

// LoadConfig resolves the active Config.
func LoadConfig() (Config, error) {
	s, _, err := LoadSettings()
	if err != nil {
		return nil, err
	}
	return s.Config(), nil
}

// DefaultSettingsPath is where SaveSettings writes when no path is given.
func DefaultSettingsPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("store: locate home: %w", err)
	}
	return filepath.Join(home, configName+".yaml"), nil
}

// SaveSettings writes s to path, replacing any previous file.
func SaveSettings(path string, s Settings) error {
	if path == "" {
		var err error
		if path, err = DefaultSettingsPath(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("store: ensure config dir: %w", err)
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("vault", s.Vault)
	v.Set("extension", s.Extension)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("store: write config: %w", err)
	}
	return nil
}
