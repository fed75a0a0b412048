package minify

// preserveStrings protects the body of every quoted string. The quote
// characters stay in the working text around the placeholder.
//
// Comment candidates collected inside a string were never comments, so their
// bodies go back into the string before it is protected.
func preserveStrings(css string, v *Vault) string {
	return stringRegex.ReplaceAllStringFunc(css, func(match string) string {
		quote := match[:1]
		body := match[1 : len(match)-1]

		body = v.Restore(KindComment, body)
		body = v.Expand(body)
		body = alphaOpacityRe.ReplaceAllLiteralString(body, "alpha(opacity=")

		return quote + v.Protect(KindToken, body) + quote
	})
}
