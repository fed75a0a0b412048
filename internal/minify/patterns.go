package minify

import "regexp"

// units that collapse to a bare zero.
const zeroUnits = `(?:px|em|%|in|cm|mm|pc|pt|ex|deg|g?rad|m?s|k?hz)`

// Rewrite rules, compiled once. Go's regexp has no lookaround, so the rules
// that need left or right context capture it and put it back.
var (
	dataURLRegex = regexp.MustCompile(`(?i)url\(\s*(["']?)data:`)

	stringRegex     = regexp.MustCompile(`("([^\\"]|\\.|\\)*")|('([^\\']|\\.|\\)*')`)
	alphaOpacityRe  = regexp.MustCompile(`(?i)progid:DXImageTransform\.Microsoft\.Alpha\(Opacity=`)
	whitespaceRegex = regexp.MustCompile(`\s+`)

	calcRegex         = regexp.MustCompile(`calc\([^)]*\)`)
	calcMulDivRegex   = regexp.MustCompile(`\s*([*/])\s*`)
	calcAddSubRegex   = regexp.MustCompile(`\s+([+-])\s+`)
	pseudoChainRegex  = regexp.MustCompile(`(:[\w-]+(?:\([^)]*\))?(?:\s+:[\w-]+(?:\([^)]*\))?)+)`)
	selectorColonRe   = regexp.MustCompile(`(^|\})(([^\{:])+:)+([^\{]*\{)`)
	spaceBeforeRegex  = regexp.MustCompile(`\s+([!{};:>+)\],])`)
	spaceParenRegex   = regexp.MustCompile(`([^+\-/*])\s+\(`)
	mediaAndRegex     = regexp.MustCompile(`(?i)\band\(`)
	spaceAfterRegex   = regexp.MustCompile(`([!{}:;>+(\[,])\s+`)
	firstLineRegex    = regexp.MustCompile(`(?i):first-(line|letter)(\{|,)`)
	commentSpaceRegex = regexp.MustCompile(`\*/\s+`)
	charsetRegex      = regexp.MustCompile(`(?i)@charset "[^"]*";`)
	emptyDeclRegex    = regexp.MustCompile(`;+\}`)

	zeroValueRegex    = regexp.MustCompile(`(?i)(^|: ?)((?:[0-9a-z\-.]+ )*?)?(?:0?\.)?0` + zeroUnits)
	zeroArgumentRegex = regexp.MustCompile(`(?i)\( ?((?:[0-9a-z\-.]+[ ,])*)?(?:0?\.)?0` + zeroUnits)
	decimalZeroRegex  = regexp.MustCompile(`(?i)([0-9])\.0(px|em|%|in|cm|mm|pc|pt|ex|deg|g?rad|m?s|k?hz| |;)`)
	zeroShorthandRes  = []*regexp.Regexp{
		regexp.MustCompile(`:0 0 0 0(;|\})`),
		regexp.MustCompile(`:0 0 0(;|\})`),
		regexp.MustCompile(`:0 0(;|\})`),
	}
	zeroPositionRegex = regexp.MustCompile(`(?i)(background-position|transform-origin|webkit-transform-origin|moz-transform-origin|o-transform-origin|ms-transform-origin):0(;|\})`)
	leadingZeroRegex  = regexp.MustCompile(`(:|\s)0+\.(\d+)`)

	rgbRegex     = regexp.MustCompile(`(?i)rgb\s*\(\s*([0-9,\s]+)\s*\)(\d+%)?`)
	hexSixRegex  = regexp.MustCompile(`(?i)(=\s*?["']?)?#([0-9a-f])([0-9a-f])([0-9a-f])([0-9a-f])([0-9a-f])([0-9a-f])(:?\}|[^0-9a-f{][^{]*?\})`)
	hexAnyRegex  = regexp.MustCompile(`(?i)#(?:[0-9a-f]{6}|[0-9a-f]{3})`)
	filterRegex  = regexp.MustCompile(`(?i)filter\s*:[^;}]+`)
	noneRegex    = regexp.MustCompile(`(?i)(border|border-top|border-right|border-bottom|border-left|outline|background):none(;|\})`)
	emptyRuleRe  = regexp.MustCompile(`[^};{/]+\{\}`)
	semicolonsRe = regexp.MustCompile(`;;+`)

	maskedCommentRe = regexp.MustCompile(`/\*___PRESERVED_TOKEN_(\d+)___(?:\*/)?`)
)

// colorKeywords maps hex colours to CSS keywords. Both the long and short
// form of red are listed on purpose.
var colorKeywords = map[string]string{
	"#ff0000": "red",
	"#f00":    "red",
	"#000080": "navy",
	"#008000": "green",
	"#008080": "teal",
	"#800000": "maroon",
	"#800080": "purple",
	"#808000": "olive",
	"#808080": "gray",
	"#c0c0c0": "silver",
	"#ffa500": "orange",
}

const (
	pseudoColonSentinel = "___PRESERVED_PSEUDOCLASSCOLON___"
	pseudoSpaceSentinel = "___PRESERVED_SPACE___"
)
