package minify

import (
	"regexp"
	"strings"
)

// optimizeValues shortens numeric values: zero lengths lose their unit,
// all-zero shorthands collapse and fractions lose their leading zero.
func optimizeValues(css string) string {
	css = untilStable(css, func(s string) string {
		return zeroValueRegex.ReplaceAllString(s, "${1}${2}0")
	})
	css = untilStable(css, func(s string) string {
		return zeroArgumentRegex.ReplaceAllString(s, "(${1}0")
	})

	css = decimalZeroRegex.ReplaceAllString(css, "${1}${2}")

	for _, re := range zeroShorthandRes {
		css = collapseZeroShorthand(re, css)
	}

	css = replaceSubmatchFunc(zeroPositionRegex, css, func(sub []string) string {
		return strings.ToLower(sub[1]) + ":0 0" + sub[2]
	})

	css = leadingZeroRegex.ReplaceAllString(css, "${1}.${2}")
	return css
}

// untilStable applies rewrite until the text stops changing. Every rewrite
// used here strictly shortens the text when it fires, so the loop ends.
func untilStable(css string, rewrite func(string) string) string {
	for {
		next := rewrite(css)
		if next == css {
			return css
		}
		css = next
	}
}

// collapseZeroShorthand rewrites ":0 0 0 0;" style values to ":0", except on
// the flex shorthand where "0 0 0" is not the same as "0".
func collapseZeroShorthand(re *regexp.Regexp, css string) string {
	locs := re.FindAllStringSubmatchIndex(css, -1)
	if locs == nil {
		return css
	}

	var sb strings.Builder
	sb.Grow(len(css))
	last := 0
	for _, loc := range locs {
		sb.WriteString(css[last:loc[0]])
		if strings.HasSuffix(css[:loc[0]], "flex") {
			sb.WriteString(css[loc[0]:loc[1]])
		} else {
			sb.WriteString(":0")
			sb.WriteString(css[loc[2]:loc[3]])
		}
		last = loc[1]
	}
	sb.WriteString(css[last:])
	return sb.String()
}

// replaceNone turns "none" into "0" on the properties where both mean the
// same thing.
func replaceNone(css string) string {
	return replaceSubmatchFunc(noneRegex, css, func(sub []string) string {
		return strings.ToLower(sub[1]) + ":0" + sub[2]
	})
}

// removeEmptyRules drops rules whose block ended up empty.
func removeEmptyRules(css string) string {
	return emptyRuleRe.ReplaceAllLiteralString(css, "")
}

// replaceSubmatchFunc is ReplaceAllStringFunc with access to the submatches
// of each match.
func replaceSubmatchFunc(re *regexp.Regexp, css string, repl func(sub []string) string) string {
	locs := re.FindAllStringSubmatchIndex(css, -1)
	if locs == nil {
		return css
	}

	var sb strings.Builder
	sb.Grow(len(css))
	last := 0
	for _, loc := range locs {
		sb.WriteString(css[last:loc[0]])
		sub := make([]string, len(loc)/2)
		for i := range sub {
			if loc[2*i] >= 0 {
				sub[i] = css[loc[2*i]:loc[2*i+1]]
			}
		}
		sb.WriteString(repl(sub))
		last = loc[1]
	}
	sb.WriteString(css[last:])
	return sb.String()
}
