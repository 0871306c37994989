// Package config loads mdfind's on-disk settings: the default search
// directory, the directory/file exclude lists, the allowed extensions, and
// case-sensitivity, following the same viper+yaml.v3 load/ensureDefaults
// shape the rest of the ambient stack uses for configuration.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/spf13/viper"

	"github.com/kestrel-notes/mdfind/internal/walk"
)

// Config is mdfind's persisted configuration.
type Config struct {
	Dir           string   `yaml:"dir"            json:"dir"`
	CaseSensitive bool     `yaml:"case_sensitive" json:"case_sensitive"`
	ExcludeDirs   []string `yaml:"exclude_dirs"   json:"exclude_dirs"`
	ExcludeFiles  []string `yaml:"exclude_files"  json:"exclude_files"`
	Extensions    []string `yaml:"extensions"     json:"extensions"`
	Editor        string   `yaml:"editor"         json:"editor"`
}

func newConfig() *Config {
	return &Config{
		CaseSensitive: true,
		ExcludeDirs:   append([]string(nil), walk.DefaultExcludeDirs...),
		Extensions:    append([]string(nil), walk.DefaultExtensions...),
		Editor:        "vi",
	}
}

func (cfg *Config) ensureDefaults() {
	defaults := newConfig()
	if cfg.ExcludeDirs == nil {
		cfg.ExcludeDirs = defaults.ExcludeDirs
	}
	if cfg.Extensions == nil {
		cfg.Extensions = defaults.Extensions
	}
	if cfg.Editor == "" {
		cfg.Editor = defaults.Editor
	}
}

// GetConfigPath returns the on-disk path of mdfind's config file under home.
func GetConfigPath(home string) string {
	return filepath.Join(home, ".config", "mdfind", "config.yaml")
}

// Load reads the config file under home, creating one with defaults if it
// does not exist yet, and syncs it into viper so flag-binding callers (the
// cobra commands) can override individual fields without re-reading yaml.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := newConfig()
		cfg.ensureDefaults()
		if saveErr := save(path, cfg); saveErr != nil {
			return nil, saveErr
		}
		syncViper(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.ensureDefaults()
	syncViper(cfg)
	return cfg, nil
}

func save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Save persists cfg back to home's config file.
func (cfg *Config) Save(home string) error {
	cfg.ensureDefaults()
	syncViper(cfg)
	return save(GetConfigPath(home), cfg)
}

func syncViper(cfg *Config) {
	viper.Set("dir", cfg.Dir)
	viper.Set("case_sensitive", cfg.CaseSensitive)
	viper.Set("exclude_dirs", cfg.ExcludeDirs)
	viper.Set("exclude_files", cfg.ExcludeFiles)
	viper.Set("extensions", cfg.Extensions)
	viper.Set("editor", cfg.Editor)
}

// WalkOptions builds walk.Options from the config's exclude lists and
// extensions, with the default file-size ceiling.
func (cfg *Config) WalkOptions() walk.Options {
	return walk.Options{
		ExcludeDirs:  cfg.ExcludeDirs,
		ExcludeFiles: cfg.ExcludeFiles,
		Extensions:   cfg.Extensions,
		MaxFileSize:  walk.DefaultMaxFileSize,
	}
}
