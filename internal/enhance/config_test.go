package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"aggressive", "conservative", "modern"}, PresetNames())

	cfg, ok := Preset(" Aggressive ")
	assert.True(t, ok)
	assert.True(t, cfg.MergeDuplicateSelectors)
	assert.True(t, cfg.OptimizeShorthandProperties)
	assert.True(t, cfg.AdvancedColorOptimization)
	assert.False(t, cfg.StatisticsEnabled)

	cfg, ok = Preset("modern")
	assert.True(t, ok)
	assert.True(t, cfg.StatisticsEnabled)

	cfg, ok = Preset("conservative")
	assert.True(t, ok)
	assert.False(t, cfg.Enhanced())

	_, ok = Preset("turbo")
	assert.False(t, ok)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]any{
		"merge_duplicate_selectors":   true,
		"preserve_important_comments": false,
		"linebreakpos":                80,
		"strict_error_handling":       "yes",
		"generate_source_map":         true,
		"nonsense":                    42,
	})

	assert.True(t, cfg.MergeDuplicateSelectors)
	assert.False(t, cfg.PreserveImportantComments)
	assert.True(t, cfg.PreserveIEHacks)
	assert.Equal(t, 80, cfg.LineBreak)
	assert.False(t, cfg.StrictErrorHandling, "wrong type is ignored")
}

func TestFromMapEmpty(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}
