package minify

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultLineBreak is the line length after which Compress starts a new line
// at the next closing brace.
const DefaultLineBreak = 5000

// Compress minifies css. maxLineLen is the line-length budget in bytes;
// zero or less keeps the output on a single line.
//
// The pipeline stages:
//  1. Protection: data URLs, comments and strings move into a Vault
//  2. Normalization: whitespace and selector spacing
//  3. Values: zeros, units, decimals, colours
//  4. Reflow and restoration of the protected fragments
//
// Compress never fails. Unterminated comments, strings and data URLs are
// treated as running to the end of the text or left as they are.
func Compress(css string, maxLineLen int) string {
	v := NewVault()

	// Stage 1: Protection
	css = extractDataURLs(css, v)
	css = collectComments(css, v)
	css = preserveStrings(css, v)
	css = resolveComments(css, v)

	// Stage 2: Normalization
	css = normalizeWhitespace(css, v)

	// Stage 3: Values
	css = optimizeValues(css)
	css = optimizeColors(css, v)
	css = replaceNone(css)
	css = alphaOpacityRe.ReplaceAllLiteralString(css, "alpha(opacity=")
	css = removeEmptyRules(css)

	// Stage 4: Reflow and restoration
	css = Reflow(css, maxLineLen)
	css = semicolonsRe.ReplaceAllLiteralString(css, ";")
	css = restore(css, v)

	return strings.TrimSpace(css)
}

// CompressReader reads the whole stylesheet from r and compresses it.
func CompressReader(r io.Reader, maxLineLen int) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stylesheet: %w", err)
	}
	return Compress(string(data), maxLineLen), nil
}

// Minify compresses src with the default line-length budget.
func Minify(src []byte) []byte {
	return []byte(Compress(string(src), DefaultLineBreak))
}

// Mask protects the data URLs, comments and strings of already minified CSS
// so further rewrites only see the skeleton. Comments keep their delimiters
// around a KindToken placeholder, strings keep their quotes. Unmask reverses
// it.
func Mask(css string) (string, *Vault) {
	v := NewVault()
	css = extractDataURLs(css, v)
	css = collectComments(css, v)
	css = preserveStrings(css, v)

	for i := 0; i < v.Len(KindComment); i++ {
		token := Placeholder(KindComment, i)
		if !strings.Contains(css, token) {
			continue
		}
		body, _ := v.Resolve(KindComment, i)
		css = strings.Replace(css, token, v.Protect(KindToken, v.Expand(body)), 1)
	}
	return css, v
}

// Unmask restores everything Mask protected.
func (v *Vault) Unmask(css string) string {
	return restore(css, v)
}

// RewriteComments calls keep for the body of every comment in text masked
// by Mask and removes the comments it rejects, delimiters included. It
// returns the new text and the number of comments removed.
func (v *Vault) RewriteComments(masked string, keep func(body string) bool) (string, int) {
	removed := 0
	out := maskedCommentRe.ReplaceAllStringFunc(masked, func(comment string) string {
		sub := maskedCommentRe.FindStringSubmatch(comment)
		i, err := strconv.Atoi(sub[1])
		if err != nil {
			return comment
		}
		body, ok := v.Resolve(KindToken, i)
		if !ok || keep(body) {
			return comment
		}
		removed++
		return ""
	})
	return out, removed
}
