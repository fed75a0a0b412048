package enhance

import (
	"regexp"
	"strings"

	"github.com/bimmerbailey/cssmin/internal/minify"
)

// pass is one optional rewrite over masked, minified CSS.
type pass struct {
	name    string
	enabled func(Config) bool
	run     func(pc *passContext, css string) string
}

// passContext is shared by the passes of one run.
type passContext struct {
	cfg   Config
	vault *minify.Vault
	stats *Statistics
}

func defaultPasses() []pass {
	shorthand := func(c Config) bool { return c.OptimizeShorthandProperties }

	// Comments go first: a kept comment is part of the next rule's selector
	// text and would keep that rule from merging.
	return []pass{
		{
			name:    "comment_policy",
			enabled: func(c Config) bool { return !c.PreserveImportantComments || !c.PreserveIEHacks },
			run:     applyCommentPolicy,
		},
		{
			name:    "merge_duplicate_selectors",
			enabled: func(c Config) bool { return c.MergeDuplicateSelectors },
			run:     mergeDuplicateSelectors,
		},
		{name: "optimize_shorthand_properties", enabled: shorthand, run: optimizeShorthand},
		{name: "optimize_zero_units", enabled: shorthand, run: optimizeZeroUnits},
		{name: "optimize_layout_properties", enabled: shorthand, run: optimizeLayout},
		{
			name:    "advanced_color_optimization",
			enabled: func(c Config) bool { return c.AdvancedColorOptimization },
			run:     optimizeColors,
		},
	}
}

// declBlockRe matches a block holding declarations only.
var declBlockRe = regexp.MustCompile(`\{([^{}]*)\}`)

// declaration is one "property:value" pair of a block.
type declaration struct {
	Property string
	Value    string
}

// rewriteDeclarations calls fn for every declaration of every innermost
// block and reports how many fn changed. Pieces without a colon are kept
// as they are.
func rewriteDeclarations(css string, fn func(d declaration) declaration) (string, int) {
	changed := 0
	out := declBlockRe.ReplaceAllStringFunc(css, func(block string) string {
		body := block[1 : len(block)-1]
		parts := strings.Split(body, ";")
		for i, part := range parts {
			colon := strings.IndexByte(part, ':')
			if colon <= 0 {
				continue
			}
			d := declaration{Property: part[:colon], Value: part[colon+1:]}
			next := fn(d)
			if next != d {
				changed++
				parts[i] = next.Property + ":" + next.Value
			}
		}
		return "{" + strings.Join(parts, ";") + "}"
	})
	return out, changed
}

// splitImportant separates a trailing !important from a value.
func splitImportant(value string) (string, string) {
	if i := strings.IndexByte(value, '!'); i >= 0 {
		return value[:i], value[i:]
	}
	return value, ""
}

func applyCommentPolicy(pc *passContext, css string) string {
	out, removed := pc.vault.RewriteComments(css, func(body string) bool {
		if strings.HasPrefix(body, "!") {
			return pc.cfg.PreserveImportantComments
		}
		// Only hack comments survive the core compressor.
		return pc.cfg.PreserveIEHacks
	})
	pc.stats.CommentsRemoved += removed
	return out
}
