// Package config provides configuration types and helpers for cssmin.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bimmerbailey/cssmin/internal/enhance"
	"github.com/bimmerbailey/cssmin/internal/minify"
)

// ErrUnknownPreset is returned when the preset name is not known.
var ErrUnknownPreset = errors.New("unknown preset")

// Config holds the application-wide configuration.
type Config struct {
	Format    string       `mapstructure:"format" yaml:"format"`
	Color     string       `mapstructure:"color" yaml:"color"`
	Verbose   bool         `mapstructure:"verbose" yaml:"verbose"`
	LogLevel  string       `mapstructure:"log_level" yaml:"log_level"`
	LineBreak int          `mapstructure:"line_break" yaml:"line_break"`
	Preset    string       `mapstructure:"preset" yaml:"preset"`
	Jobs      int          `mapstructure:"jobs" yaml:"jobs"`
	Suffix    string       `mapstructure:"suffix" yaml:"suffix"`
	Minify    MinifyConfig `mapstructure:"minify" yaml:"minify"`
	Watch     WatchConfig  `mapstructure:"watch" yaml:"watch"`
}

// MinifyConfig toggles the optional passes run after the core compressor.
type MinifyConfig struct {
	MergeDuplicateSelectors     bool `mapstructure:"merge_duplicate_selectors" yaml:"merge_duplicate_selectors"`
	OptimizeShorthandProperties bool `mapstructure:"optimize_shorthand_properties" yaml:"optimize_shorthand_properties"`
	AdvancedColorOptimization   bool `mapstructure:"advanced_color_optimization" yaml:"advanced_color_optimization"`
	PreserveImportantComments   bool `mapstructure:"preserve_important_comments" yaml:"preserve_important_comments"`
	PreserveIEHacks             bool `mapstructure:"preserve_ie_hacks" yaml:"preserve_ie_hacks"`
	StrictErrorHandling         bool `mapstructure:"strict_error_handling" yaml:"strict_error_handling"`
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	// Debounce is how long to wait after a change before recompressing,
	// e.g. "200ms".
	Debounce string `mapstructure:"debounce" yaml:"debounce"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:    "text",
		Color:     "auto",
		LogLevel:  "info",
		LineBreak: minify.DefaultLineBreak,
		Suffix:    ".min",
		Minify: MinifyConfig{
			PreserveImportantComments: true,
			PreserveIEHacks:           true,
		},
		Watch: WatchConfig{Debounce: "200ms"},
	}
}

// SetDefaults registers every key of Default with v.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("format", d.Format)
	v.SetDefault("color", d.Color)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("line_break", d.LineBreak)
	v.SetDefault("preset", d.Preset)
	v.SetDefault("jobs", d.Jobs)
	v.SetDefault("suffix", d.Suffix)
	v.SetDefault("minify.merge_duplicate_selectors", d.Minify.MergeDuplicateSelectors)
	v.SetDefault("minify.optimize_shorthand_properties", d.Minify.OptimizeShorthandProperties)
	v.SetDefault("minify.advanced_color_optimization", d.Minify.AdvancedColorOptimization)
	v.SetDefault("minify.preserve_important_comments", d.Minify.PreserveImportantComments)
	v.SetDefault("minify.preserve_ie_hacks", d.Minify.PreserveIEHacks)
	v.SetDefault("minify.strict_error_handling", d.Minify.StrictErrorHandling)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
}

// Load decodes the effective configuration from v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// EnhanceConfig maps the configuration onto the compressor options. A
// preset is the starting point; the minify section can only enable more
// passes on top of it.
func (c Config) EnhanceConfig() (enhance.Config, error) {
	cfg := enhance.DefaultConfig()
	if name := strings.TrimSpace(c.Preset); name != "" {
		preset, ok := enhance.Preset(name)
		if !ok {
			return enhance.Config{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownPreset, name, strings.Join(enhance.PresetNames(), ", "))
		}
		cfg = preset
	}

	m := c.Minify
	cfg.LineBreak = c.LineBreak
	cfg.MergeDuplicateSelectors = cfg.MergeDuplicateSelectors || m.MergeDuplicateSelectors
	cfg.OptimizeShorthandProperties = cfg.OptimizeShorthandProperties || m.OptimizeShorthandProperties
	cfg.AdvancedColorOptimization = cfg.AdvancedColorOptimization || m.AdvancedColorOptimization
	cfg.PreserveImportantComments = cfg.PreserveImportantComments && m.PreserveImportantComments
	cfg.PreserveIEHacks = cfg.PreserveIEHacks && m.PreserveIEHacks
	cfg.StrictErrorHandling = cfg.StrictErrorHandling || m.StrictErrorHandling

	return cfg, nil
}

// DebounceDuration parses Watch.Debounce. An empty value means no delay.
func (c Config) DebounceDuration() (time.Duration, error) {
	if strings.TrimSpace(c.Watch.Debounce) == "" {
		return 0, nil
	}
	d, err := ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("watch.debounce: %w", err)
	}
	return d, nil
}

// EffectiveLogLevel returns the level the logger should use.
func (c Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "debug"
	}
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}
