// Package config loads uniprompt settings from defaults, an optional YAML
// file and UNIPROMPT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/uniprompt/internal/composer"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the CLI needs at startup.
type Config struct {
	// DBPath is the local database holding the liked-prompt set.
	DBPath string `yaml:"db_path"`
	// LibraryDBPath is the shared prompt store. Empty shares DBPath.
	LibraryDBPath string `yaml:"library_db_path"`

	MetaInstructions bool                       `yaml:"meta_instructions"`
	CoreHeading      composer.CoreHeadingPolicy `yaml:"core_heading"`
	LogUseCases      bool                       `yaml:"log_use_cases"`
	RenderMarkdown   bool                       `yaml:"render_markdown"`
}

// DefaultConfig returns a Config rooted at dir (usually ~/.uniprompt).
func DefaultConfig(dir string) Config {
	return Config{
		DBPath:           filepath.Join(dir, "uniprompt.db"),
		MetaInstructions: true,
		CoreHeading:      composer.CoreHeadingOmit,
	}
}

// DefaultDir returns ~/.uniprompt.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".uniprompt"), nil
}

// Load builds the effective configuration. The YAML file is read from
// UNIPROMPT_CONFIG, or dir/config.yaml when that variable is unset; a missing
// default file is not an error.
func Load(dir string) (Config, error) {
	cfg := DefaultConfig(dir)

	path := os.Getenv("UNIPROMPT_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, "config.yaml")
	}
	if err := loadFile(&cfg, path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	policy, err := composer.ParseCoreHeadingPolicy(string(cfg.CoreHeading))
	if err != nil {
		return Config{}, err
	}
	cfg.CoreHeading = policy
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("UNIPROMPT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("UNIPROMPT_LIBRARY_DB"); v != "" {
		cfg.LibraryDBPath = v
	}
	applyBoolEnv(&cfg.MetaInstructions, "UNIPROMPT_META_INSTRUCTIONS")
	applyBoolEnv(&cfg.LogUseCases, "UNIPROMPT_LOG_USECASES")
	applyBoolEnv(&cfg.RenderMarkdown, "UNIPROMPT_RENDER_MARKDOWN")
	if v := os.Getenv("UNIPROMPT_CORE_HEADING"); v != "" {
		cfg.CoreHeading = composer.CoreHeadingPolicy(v)
	}
}

// applyBoolEnv leaves dst untouched when the variable is unset or unparsable.
func applyBoolEnv(dst *bool, name string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}

// LibraryPath returns the shared store path, falling back to DBPath.
func (c Config) LibraryPath() string {
	if c.LibraryDBPath != "" {
		return c.LibraryDBPath
	}
	return c.DBPath
}

// ComposerOptions maps the config onto composer options.
func (c Config) ComposerOptions() composer.Options {
	return composer.Options{
		MetaInstructions: c.MetaInstructions,
		CoreHeading:      c.CoreHeading,
	}
}
