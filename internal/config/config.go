// internal/config/config.go
//
// This package handles configuration and the hangedman home directory.
// Settings come from two places: <home>/config.yaml for the word list and
// display preferences, and HANGEDMAN_* environment variables (optionally
// loaded from a .env file in the working directory) for per-run overrides.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/hanged-man/internal/words"
)

const (
	// HomeDirName is the directory created under the user config dir.
	HomeDirName = "hangedman"

	defaultPacksDir = "packs"
	defaultAccent   = "#FF6B6B"
)

const defaultConfigYAML = `# hangedman configuration
version: 1

# Extra secret words (a-z only). When this list and every pack are empty the
# built-in words are used.
words: []

packs:
  # Directory holding *.yaml word packs, relative to this file.
  dir: packs
  # Pack names to load. Leave empty to load every pack in dir.
  enabled: []

ui:
  accent: "#FF6B6B"
`

// PacksConfig selects word packs.
type PacksConfig struct {
	Dir     string   `yaml:"dir"`
	Enabled []string `yaml:"enabled,omitempty"`
}

// UIConfig captures display preferences.
type UIConfig struct {
	Accent string `yaml:"accent"`
}

// FileConfig models <home>/config.yaml.
type FileConfig struct {
	Version int         `yaml:"version"`
	Words   []string    `yaml:"words"`
	Packs   PacksConfig `yaml:"packs"`
	UI      UIConfig    `yaml:"ui"`
}

// Env holds the HANGEDMAN_* overrides.
type Env struct {
	Home     string `env:"HANGEDMAN_HOME"`
	Seed     int64  `env:"HANGEDMAN_SEED"`
	LogLevel string `env:"HANGEDMAN_LOG_LEVEL" envDefault:"info"`
	Plain    bool   `env:"HANGEDMAN_PLAIN"`
}

// Config holds the runtime configuration for one game.
type Config struct {
	// Home is where config.yaml, logs/ and packs/ live.
	Home string

	Env  Env
	File FileConfig
}

// Load reads .env from workDir (when present), parses the environment,
// prepares the home directory and loads config.yaml.
func Load(workDir string) (*Config, error) {
	if err := loadDotEnv(workDir); err != nil {
		return nil, err
	}
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	home := strings.TrimSpace(e.Home)
	if home == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: locate user config dir: %w", err)
		}
		home = filepath.Join(base, HomeDirName)
	}
	if err := InitHome(home); err != nil {
		return nil, err
	}
	cfg := &Config{Home: home, Env: e, File: defaultFileConfig()}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitHome creates the home directory layout and writes a default
// config.yaml if none exists.
//
// Structure created:
// <home>/
// ├── config.yaml
// ├── logs/     <- hangedman.log (diagnostics) and rounds.log (history)
// └── packs/    <- optional *.yaml word packs
func InitHome(home string) error {
	for _, dir := range []string{
		filepath.Join(home, "logs"),
		filepath.Join(home, defaultPacksDir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: ensure %s: %w", dir, err)
		}
	}
	return ensureConfig(filepath.Join(home, "config.yaml"))
}

// ConfigPath returns the on-disk location of config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Home, "config.yaml")
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.Home, "logs")
}

// LogPath is the diagnostics log.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogsDir(), "hangedman.log")
}

// HistoryPath is the round history kept by the logbook.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.LogsDir(), "rounds.log")
}

// PacksDir returns the resolved word pack directory.
func (c *Config) PacksDir() string {
	return c.File.Packs.Dir
}

// Words returns extra words from config.yaml.
func (c *Config) Words() []string {
	return c.File.Words
}

// EnabledPacks returns the pack names to load; empty means all.
func (c *Config) EnabledPacks() []string {
	return c.File.Packs.Enabled
}

// Accent returns the UI accent color.
func (c *Config) Accent() string {
	return c.File.UI.Accent
}

// Seed returns the picker seed; zero means random.
func (c *Config) Seed() int64 {
	return c.Env.Seed
}

// LogLevel returns the diagnostics level name.
func (c *Config) LogLevel() string {
	return c.Env.LogLevel
}

// Plain reports whether the line-oriented console should be used even on a
// terminal.
func (c *Config) Plain() bool {
	return c.Env.Plain
}

func (c *Config) loadFile() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.File.normalize(c.Home)
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.Home)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.File = parsed
	return nil
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version: 1,
		Packs:   PacksConfig{Dir: defaultPacksDir},
		UI:      UIConfig{Accent: defaultAccent},
	}
}

func (fc *FileConfig) applyDefaults() {
	if fc.Version == 0 {
		fc.Version = 1
	}
	if strings.TrimSpace(fc.Packs.Dir) == "" {
		fc.Packs.Dir = defaultPacksDir
	}
	if strings.TrimSpace(fc.UI.Accent) == "" {
		fc.UI.Accent = defaultAccent
	}
}

func (fc *FileConfig) normalize(base string) {
	for i, w := range fc.Words {
		fc.Words[i] = strings.ToLower(strings.TrimSpace(w))
	}
	for i, name := range fc.Packs.Enabled {
		fc.Packs.Enabled[i] = strings.ToLower(strings.TrimSpace(name))
	}
	fc.Packs.Dir = resolvePath(base, fc.Packs.Dir)
	fc.UI.Accent = strings.TrimSpace(fc.UI.Accent)
}

func (fc *FileConfig) validate() error {
	if fc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	for i, w := range fc.Words {
		if _, err := words.NormalizeWord(w); err != nil {
			return fmt.Errorf("words[%d]: %w", i, err)
		}
	}
	for i, name := range fc.Packs.Enabled {
		if name == "" {
			return fmt.Errorf("packs.enabled[%d]: name is required", i)
		}
	}
	if fc.Packs.Dir == "" {
		return fmt.Errorf("packs.dir is required")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

func loadDotEnv(workDir string) error {
	if strings.TrimSpace(workDir) == "" {
		return nil
	}
	path := filepath.Join(workDir, ".env")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}
