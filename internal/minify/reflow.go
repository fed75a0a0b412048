package minify

import "strings"

// Reflow inserts a newline after the first '}' found once a line has
// grown past maxLineLen bytes. A line with no '}' past the limit stays long.
// maxLineLen <= 0 disables it.
func Reflow(css string, maxLineLen int) string {
	if maxLineLen <= 0 {
		return css
	}

	var sb strings.Builder
	sb.Grow(len(css) + len(css)/maxLineLen + 1)

	lineStart := 0
	for i := 0; i < len(css); i++ {
		sb.WriteByte(css[i])
		if css[i] == '}' && i+1-lineStart > maxLineLen {
			sb.WriteByte('\n')
			// The newline counts toward the next line.
			lineStart = i
		}
	}
	return sb.String()
}

// restore puts every protected fragment back. calc() goes first because its
// bodies may still hold string tokens.
func restore(css string, v *Vault) string {
	css = v.Restore(KindCalc, css)
	css = v.Restore(KindToken, css)
	return css
}
