// Package config holds the tool configuration: the structural markers
// the scanner keys on, and the proposal/category scope for tag
// derivation. Everything has defaults matching the cranelift tree; a
// YAML file can override them.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mmcloughlin/arrival/internal/extractor"
	"github.com/mmcloughlin/arrival/internal/tags"
)

// Config is the top-level tool configuration.
type Config struct {
	Scan ScanConfig `yaml:"scan,omitempty" mapstructure:"scan"`
	Tags TagsConfig `yaml:"tags,omitempty" mapstructure:"tags"`
}

// ScanConfig configures the translator source scanner.
type ScanConfig struct {
	// Source overrides the translator source path. Empty means the fixed
	// relative path from the executable location.
	Source string `yaml:"source,omitempty" mapstructure:"source"`

	// FuncAnchor is the translation function signature line prefix.
	FuncAnchor string `yaml:"funcAnchor,omitempty" mapstructure:"funcAnchor"`

	// DispatchOpen is the dispatch construct opening line prefix.
	DispatchOpen string `yaml:"dispatchOpen,omitempty" mapstructure:"dispatchOpen"`

	// DispatchClose is the dispatch construct closing line prefix.
	DispatchClose string `yaml:"dispatchClose,omitempty" mapstructure:"dispatchClose"`
}

// TagsConfig configures tag derivation scope.
type TagsConfig struct {
	// Proposals lists the in-scope proposal names.
	Proposals []string `yaml:"proposals,omitempty" mapstructure:"proposals"`

	// IgnoreCategories lists operator categories excluded from tagging.
	IgnoreCategories []string `yaml:"ignoreCategories,omitempty" mapstructure:"ignoreCategories"`
}

// DefaultConfig returns the configuration for the cranelift tree:
// code_translator.rs markers, the mvp proposal, and the category
// exclusions used for verification tagging.
func DefaultConfig() *Config {
	profile := extractor.DefaultProfile()
	return &Config{
		Scan: ScanConfig{
			FuncAnchor:    profile.FuncAnchor,
			DispatchOpen:  profile.DispatchOpen,
			DispatchClose: profile.DispatchClose,
		},
		Tags: TagsConfig{
			Proposals: []string{"mvp"},
			IgnoreCategories: []string{
				"locals",
				"globals",
				"stack",
				"control_flow",
				"calls",
				"memory_management",
			},
		},
	}
}

// Load reads configuration from the given file over the defaults. An
// empty path returns the defaults unchanged.
func Load(cfgFile string) (*Config, error) {
	cfg := DefaultConfig()
	if cfgFile == "" {
		return cfg, nil
	}
	if _, err := os.Stat(cfgFile); err != nil {
		return nil, fmt.Errorf("config file not found: %s", cfgFile)
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: path=%s err=%w", cfgFile, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: path=%s err=%w", cfgFile, err)
	}
	return cfg, nil
}

// Profile converts scan configuration to a scanner profile, filling
// unset markers from the default profile.
func (c ScanConfig) Profile() extractor.Profile {
	profile := extractor.DefaultProfile()
	if c.FuncAnchor != "" {
		profile.FuncAnchor = c.FuncAnchor
	}
	if c.DispatchOpen != "" {
		profile.DispatchOpen = c.DispatchOpen
	}
	if c.DispatchClose != "" {
		profile.DispatchClose = c.DispatchClose
	}
	return profile
}

// Scope converts tag configuration to a derivation scope.
func (c TagsConfig) Scope() tags.Scope {
	return tags.NewScope(c.Proposals, c.IgnoreCategories)
}
