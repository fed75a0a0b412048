package minify

import (
	"strings"
)

// normalizeWhitespace collapses whitespace and strips it around structural
// punctuation. calc() expressions are protected on the way, since the
// stripping below would break their operator spacing.
func normalizeWhitespace(css string, v *Vault) string {
	css = whitespaceRegex.ReplaceAllLiteralString(css, " ")

	css = calcRegex.ReplaceAllStringFunc(css, func(expr string) string {
		return v.Protect(KindCalc, normalizeCalc(expr))
	})

	// Spaces between chained pseudo-classes are descendant combinators.
	css = pseudoChainRegex.ReplaceAllStringFunc(css, func(chain string) string {
		return whitespaceRegex.ReplaceAllLiteralString(chain, pseudoSpaceSentinel)
	})
	// Keep "p :link" apart from "p:link".
	css = selectorColonRe.ReplaceAllStringFunc(css, func(sel string) string {
		return strings.ReplaceAll(sel, ":", pseudoColonSentinel)
	})

	css = spaceBeforeRegex.ReplaceAllString(css, "$1")
	css = spaceParenRegex.ReplaceAllString(css, "$1(")

	css = strings.ReplaceAll(css, pseudoColonSentinel, ":")
	css = strings.ReplaceAll(css, pseudoSpaceSentinel, " ")

	// @media screen and (-webkit-min-device-pixel-ratio:0)
	css = mediaAndRegex.ReplaceAllLiteralString(css, "and (")

	css = spaceAfterRegex.ReplaceAllString(css, "$1")

	css = firstLineRegex.ReplaceAllStringFunc(css, func(m string) string {
		sub := firstLineRegex.FindStringSubmatch(m)
		return ":first-" + strings.ToLower(sub[1]) + " " + sub[2]
	})

	css = commentSpaceRegex.ReplaceAllLiteralString(css, "*/")
	css = hoistCharset(css)
	css = emptyDeclRegex.ReplaceAllLiteralString(css, "}")

	return css
}

// normalizeCalc puts exactly one space around '*' and '/'. '+' and '-' are
// only normalized when they already have whitespace on both sides: without
// it they are signs or part of an identifier such as --gap.
func normalizeCalc(expr string) string {
	expr = calcMulDivRegex.ReplaceAllString(expr, " $1 ")
	expr = calcAddSubRegex.ReplaceAllString(expr, " $1 ")
	return expr
}

// hoistCharset keeps only the first @charset rule and moves it to the top.
// A space the removed rules leave behind is dropped with them.
func hoistCharset(css string) string {
	locs := charsetRegex.FindAllStringIndex(css, -1)
	if len(locs) == 0 {
		return css
	}
	if trimmed := strings.TrimLeft(css, " "); len(trimmed) < len(css) {
		css = trimmed
		locs = charsetRegex.FindAllStringIndex(css, -1)
	}

	first := css[locs[0][0]:locs[0][1]]

	var sb strings.Builder
	sb.Grow(len(css))
	sb.WriteString(first)
	last := 0
	for _, loc := range locs {
		sb.WriteString(css[last:loc[0]])
		last = loc[1]
		if last < len(css) && css[last] == ' ' {
			last++
		}
	}
	sb.WriteString(css[last:])
	return sb.String()
}
