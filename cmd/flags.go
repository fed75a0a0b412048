package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bimmerbailey/cssmin/internal/config"
)

// addMinifyFlags registers the compressor options shared by compress,
// stats and watch.
func addMinifyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("preset", "", "option preset (conservative, aggressive, modern)")
	flags.Int("line-break", 0, "insert a line break after a rule once a line exceeds this many bytes (0 disables)")
	flags.Bool("merge-selectors", false, "merge adjacent rules with the same selector")
	flags.Bool("optimize-shorthand", false, "shorten shorthand and layout properties")
	flags.Bool("optimize-colors", false, "convert hsl() colours to hex or keywords")
	flags.Bool("drop-important-comments", false, "remove /*! ... */ comments")
	flags.Bool("drop-ie-hacks", false, "remove comment-based IE hacks")
	flags.Bool("strict", false, "fail instead of falling back when a stage fails")
}

// applyMinifyFlags overlays the flags the user set on cfg.
func applyMinifyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("preset") {
		cfg.Preset, _ = flags.GetString("preset")
	}
	if flags.Changed("line-break") {
		cfg.LineBreak, _ = flags.GetInt("line-break")
	}

	setBool(flags, "merge-selectors", &cfg.Minify.MergeDuplicateSelectors)
	setBool(flags, "optimize-shorthand", &cfg.Minify.OptimizeShorthandProperties)
	setBool(flags, "optimize-colors", &cfg.Minify.AdvancedColorOptimization)
	setBool(flags, "strict", &cfg.Minify.StrictErrorHandling)

	if drop, _ := flags.GetBool("drop-important-comments"); drop {
		cfg.Minify.PreserveImportantComments = false
	}
	if drop, _ := flags.GetBool("drop-ie-hacks"); drop {
		cfg.Minify.PreserveIEHacks = false
	}
}

func setBool(flags *pflag.FlagSet, name string, dst *bool) {
	if !flags.Changed(name) {
		return
	}
	*dst, _ = flags.GetBool(name)
}
