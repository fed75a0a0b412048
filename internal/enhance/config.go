package enhance

import (
	"sort"
	"strings"

	"github.com/bimmerbailey/cssmin/internal/minify"
)

// Config selects the optional passes run after the core compressor.
type Config struct {
	// LineBreak is the line-length budget handed to the core compressor.
	LineBreak int

	MergeDuplicateSelectors     bool
	OptimizeShorthandProperties bool
	AdvancedColorOptimization   bool

	// PreserveImportantComments keeps /*! ... */ comments. Default true.
	PreserveImportantComments bool
	// PreserveIEHacks keeps the /*\*/ ... /**/ and html>/**/body comments.
	// Default true.
	PreserveIEHacks bool

	// StrictErrorHandling returns the first failure as a *CompressionError
	// instead of falling back.
	StrictErrorHandling bool
	StatisticsEnabled   bool
}

// DefaultConfig returns the configuration that behaves exactly like the
// core compressor.
func DefaultConfig() Config {
	return Config{
		LineBreak:                 minify.DefaultLineBreak,
		PreserveImportantComments: true,
		PreserveIEHacks:           true,
	}
}

// Conservative enables nothing beyond the core compressor.
func Conservative() Config {
	return DefaultConfig()
}

// Aggressive enables every optional pass.
func Aggressive() Config {
	cfg := DefaultConfig()
	cfg.MergeDuplicateSelectors = true
	cfg.OptimizeShorthandProperties = true
	cfg.AdvancedColorOptimization = true
	return cfg
}

// Modern is Aggressive with statistics collection.
func Modern() Config {
	cfg := Aggressive()
	cfg.StatisticsEnabled = true
	return cfg
}

var presets = map[string]func() Config{
	"conservative": Conservative,
	"aggressive":   Aggressive,
	"modern":       Modern,
}

// Preset returns the named preset. Names are case-insensitive.
func Preset(name string) (Config, bool) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, false
	}
	return fn(), true
}

// PresetNames lists the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enhanced reports whether any optional pass is enabled.
func (c Config) Enhanced() bool {
	return c.MergeDuplicateSelectors ||
		c.OptimizeShorthandProperties ||
		c.AdvancedColorOptimization ||
		!c.PreserveImportantComments ||
		!c.PreserveIEHacks
}

// FromMap builds a Config from loosely typed options, starting from
// DefaultConfig. Unknown keys and values of the wrong type are ignored.
func FromMap(options map[string]any) Config {
	cfg := DefaultConfig()

	for key, value := range options {
		switch strings.ToLower(key) {
		case "line_break", "linebreak", "linebreakpos":
			if n, ok := toInt(value); ok {
				cfg.LineBreak = n
			}
		case "merge_duplicate_selectors":
			setBool(&cfg.MergeDuplicateSelectors, value)
		case "optimize_shorthand_properties":
			setBool(&cfg.OptimizeShorthandProperties, value)
		case "advanced_color_optimization":
			setBool(&cfg.AdvancedColorOptimization, value)
		case "preserve_important_comments":
			setBool(&cfg.PreserveImportantComments, value)
		case "preserve_ie_hacks":
			setBool(&cfg.PreserveIEHacks, value)
		case "strict_error_handling":
			setBool(&cfg.StrictErrorHandling, value)
		case "statistics_enabled":
			setBool(&cfg.StatisticsEnabled, value)
		}
	}

	return cfg
}

func setBool(dst *bool, value any) {
	if b, ok := value.(bool); ok {
		*dst = b
	}
}

func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
