// Package config loads bmdocs settings from defaults, an optional YAML file
// and BMDOCS_* environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/blazemetrics/bmdocs/pkg/history"
	"github.com/blazemetrics/bmdocs/pkg/navigation"
	"github.com/blazemetrics/bmdocs/pkg/responsive"
)

// EnvPrefix marks environment overrides. A double underscore nests keys:
// BMDOCS_SEARCH__MODE=fuzzy sets search.mode.
const EnvPrefix = "BMDOCS_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Themes accepted by the theme key.
var Themes = []string{"auto", "dark", "light"}

// Config is the top-level settings file.
type Config struct {
	Theme       string         `yaml:"theme" koanf:"theme"`
	StartPage   string         `yaml:"start_page" koanf:"start_page"`
	LogFile     string         `yaml:"log_file" koanf:"log_file"`
	Breakpoints map[string]int `yaml:"breakpoints" koanf:"breakpoints"`
	Search      SearchConfig   `yaml:"search" koanf:"search"`
	Content     ContentConfig  `yaml:"content" koanf:"content"`
	History     HistoryConfig  `yaml:"history" koanf:"history"`
}

// SearchConfig controls the search bar.
type SearchConfig struct {
	Mode       string `yaml:"mode" koanf:"mode"`
	DebounceMS int    `yaml:"debounce_ms" koanf:"debounce_ms"`
	MaxResults int    `yaml:"max_results" koanf:"max_results"`
}

// ContentConfig points at an optional on-disk page directory.
type ContentConfig struct {
	Dir   string `yaml:"dir" koanf:"dir"`
	Watch bool   `yaml:"watch" koanf:"watch"`
}

// HistoryConfig controls the recently-viewed store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Path    string `yaml:"path" koanf:"path"`
	Limit   int    `yaml:"limit" koanf:"limit"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Theme:       "auto",
		StartPage:   "/",
		Breakpoints: responsive.TerminalTable.Widths(),
		Search: SearchConfig{
			Mode:       string(navigation.ModeSubstring),
			DebounceMS: 300,
			MaxResults: navigation.SearchLimit,
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   history.DefaultLimit,
		},
	}
}

// DefaultPath returns ~/.config/bmdocs/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bmdocs.yaml"
	}
	return filepath.Join(home, ".config", "bmdocs", "config.yaml")
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envKey maps BMDOCS_SEARCH__DEBOUNCE_MS to search.debounce_ms.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validTheme(c.Theme) {
		return fmt.Errorf("%w: theme %q must be one of %s", ErrInvalid, c.Theme, strings.Join(Themes, ", "))
	}
	if !strings.HasPrefix(c.StartPage, "/") {
		return fmt.Errorf("%w: start_page %q must begin with /", ErrInvalid, c.StartPage)
	}
	if _, err := c.Table(); err != nil {
		return fmt.Errorf("%w: breakpoints: %w", ErrInvalid, err)
	}
	if !navigation.ValidMode(navigation.Mode(c.Search.Mode)) {
		return fmt.Errorf("%w: search.mode %q must be one of substring, fuzzy, fulltext", ErrInvalid, c.Search.Mode)
	}
	if c.Search.DebounceMS < 0 || c.Search.DebounceMS > 5000 {
		return fmt.Errorf("%w: search.debounce_ms must be between 0 and 5000", ErrInvalid)
	}
	if c.Search.MaxResults < 1 || c.Search.MaxResults > 50 {
		return fmt.Errorf("%w: search.max_results must be between 1 and 50", ErrInvalid)
	}
	if c.Content.Watch && c.Content.Dir == "" {
		return fmt.Errorf("%w: content.watch requires content.dir", ErrInvalid)
	}
	if c.History.Limit < 1 || c.History.Limit > 50 {
		return fmt.Errorf("%w: history.limit must be between 1 and 50", ErrInvalid)
	}
	return nil
}

// Table builds the breakpoint table from the configured widths.
func (c *Config) Table() (responsive.Table, error) {
	return responsive.TableFromWidths(c.Breakpoints)
}

// HistoryPath returns the configured history database path or the default.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return history.DefaultPath()
}

func validTheme(t string) bool {
	for _, v := range Themes {
		if v == t {
			return true
		}
	}
	return false
}
