package minify

import "strings"

// commentAction is the decision taken for one candidate comment.
type commentAction int

const (
	actionDelete commentAction = iota
	// actionPreserveVerbatim keeps /*! ... */ comments as written.
	actionPreserveVerbatim
	// actionPreserveBackslash opens the Mac/IE5 hack: /*\*/ ... /**/.
	actionPreserveBackslash
	// actionPreserveEmpty keeps an empty comment (IE7 child selector hack,
	// or the closing half of the Mac/IE5 hack).
	actionPreserveEmpty
)

// collectComments swaps every comment body for a candidate token. Strings
// are not protected yet, so some candidates may really sit inside a string;
// the string pass puts those back.
//
// A comment without a closing */ runs to the end of the text.
func collectComments(css string, v *Vault) string {
	var sb strings.Builder
	sb.Grow(len(css))

	for {
		start := strings.Index(css, "/*")
		if start < 0 {
			break
		}
		bodyStart := start + 2
		end := strings.Index(css[bodyStart:], "*/")
		if end < 0 {
			end = len(css)
		} else {
			end += bodyStart
		}

		sb.WriteString(css[:bodyStart])
		sb.WriteString(v.Protect(KindComment, css[bodyStart:end]))
		css = css[end:]
		if strings.HasPrefix(css, "*/") {
			sb.WriteString("*/")
			css = css[2:]
		}
	}

	sb.WriteString(css)
	return sb.String()
}

// classifyComment decides what happens to a comment body. before is the
// byte right in front of the opening /*, or 0 at the start of the text.
// Rules apply in order: leading '!', trailing backslash, empty after '>'.
func classifyComment(body string, before byte) commentAction {
	switch {
	case strings.HasPrefix(body, "!"):
		return actionPreserveVerbatim
	case strings.HasSuffix(body, `\`):
		return actionPreserveBackslash
	case body == "" && before == '>':
		return actionPreserveEmpty
	default:
		return actionDelete
	}
}

// resolveComments applies the classification to every candidate comment
// still present in css.
func resolveComments(css string, v *Vault) string {
	n := v.Len(KindComment)
	for i := 0; i < n; i++ {
		token := Placeholder(KindComment, i)
		pos := strings.Index(css, token)
		if pos < 0 {
			// Restored inside a string.
			continue
		}

		body, _ := v.Resolve(KindComment, i)
		var before byte
		if pos >= 3 {
			before = css[pos-3]
		}

		switch classifyComment(body, before) {
		case actionPreserveVerbatim:
			css = strings.ReplaceAll(css, token, v.Protect(KindToken, v.Expand(body)))
		case actionPreserveBackslash:
			css = strings.ReplaceAll(css, token, v.Protect(KindToken, `\`))
			// The next comment closes the hack.
			if i+1 < n {
				i++
				css = strings.ReplaceAll(css, Placeholder(KindComment, i), v.Protect(KindToken, ""))
			}
		case actionPreserveEmpty:
			css = strings.ReplaceAll(css, token, v.Protect(KindToken, ""))
		default:
			css = deleteComment(css, token)
		}
	}
	return css
}

// deleteComment removes /*token*/ from css. An unterminated comment has no
// closing delimiter and is removed up to the end of the text.
func deleteComment(css, token string) string {
	open := "/*" + token
	for {
		pos := strings.Index(css, open)
		if pos < 0 {
			return css
		}
		rest := css[pos+len(open):]
		if strings.HasPrefix(rest, "*/") {
			rest = rest[2:]
		} else {
			rest = ""
		}
		css = css[:pos] + rest
	}
}
