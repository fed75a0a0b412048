package minify

import "strings"

// extractDataURLs replaces the payload of every url(data:...) with a vault
// token before any other pass runs. Large base64 payloads would otherwise be
// rescanned by every regex, and their content can look like CSS syntax.
//
// A data URL without a terminator is emitted unchanged and scanning resumes
// right after the matched prefix.
func extractDataURLs(css string, v *Vault) string {
	var sb strings.Builder
	sb.Grow(len(css))

	for {
		loc := dataURLRegex.FindStringSubmatchIndex(css)
		if loc == nil {
			break
		}

		start := loc[0] + len("url(")
		terminator := css[loc[2]:loc[3]]
		if terminator == "" {
			terminator = ")"
		}

		end, found := findTerminator(css, loc[1]-1, terminator)

		sb.WriteString(css[:loc[0]])
		if !found {
			sb.WriteString(css[loc[0]:loc[1]])
			css = css[loc[1]:]
			continue
		}

		sb.WriteString("url(")
		sb.WriteString(v.Protect(KindToken, css[start:end]))
		sb.WriteString(")")
		css = css[end+1:]
	}

	sb.WriteString(css)
	return sb.String()
}

// findTerminator scans css after position from for an unescaped terminator.
// For quoted URLs it then moves on to the closing paren. It returns the index
// of that closing paren.
func findTerminator(css string, from int, terminator string) (int, bool) {
	end := from
	for end+1 <= len(css) {
		idx := strings.Index(css[end+1:], terminator)
		if idx < 0 {
			return 0, false
		}
		end += 1 + idx

		if end > 0 && css[end-1] == '\\' {
			continue
		}

		if terminator != ")" {
			paren := strings.IndexByte(css[end:], ')')
			if paren < 0 {
				return 0, false
			}
			end += paren
		}
		return end, true
	}
	return 0, false
}
