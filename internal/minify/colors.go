package minify

import (
	"fmt"
	"strconv"
	"strings"
)

// OptimizeColors applies the colour rewrites of the pipeline to a fragment
// of already minified CSS: rgb() to hex, #aabbcc to #abc and hex to keyword.
func OptimizeColors(css string) string {
	return optimizeColors(css, NewVault())
}

func optimizeColors(css string, v *Vault) string {
	css = replaceSubmatchFunc(rgbRegex, css, rgbToHex)
	css = shortenHex(css)

	// filter values keep their hex form.
	before := v.Len(KindFilter)
	css = filterRegex.ReplaceAllStringFunc(css, func(decl string) string {
		return v.Protect(KindFilter, decl)
	})
	css = hexToKeyword(css)
	if v.Len(KindFilter) > before {
		css = v.Restore(KindFilter, css)
	}
	return css
}

// rgbToHex rewrites rgb(r,g,b) as #rrggbb. Each channel is clamped to 255.
// Anything other than three comma separated channels is left alone.
func rgbToHex(sub []string) string {
	channels := strings.Split(sub[1], ",")
	if len(channels) != 3 {
		return sub[0]
	}

	var sb strings.Builder
	sb.WriteByte('#')
	for _, ch := range channels {
		n := leadingInt(ch)
		if n > 255 {
			n = 255
		}
		fmt.Fprintf(&sb, "%02x", n)
	}
	if sub[2] != "" {
		sb.WriteByte(' ')
		sb.WriteString(sub[2])
	}
	return sb.String()
}

// leadingInt parses the decimal digits at the start of s after leading
// whitespace, returning 0 when there are none.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\f")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow; clamps to 255 anyway.
		return 256
	}
	return n
}

// shortenHex rewrites #aabbcc as #abc inside declaration blocks. A colour
// preceded by '=' (filter syntax) is kept as written, and a colour followed
// by '{' is an ID selector.
func shortenHex(css string) string {
	var sb strings.Builder
	sb.Grow(len(css))

	rest := css
	for {
		m := hexSixRegex.FindStringSubmatchIndex(rest)
		if m == nil {
			break
		}

		if m[2] >= 0 {
			// "=#AABBCC": copy through untouched.
			end := m[3] + 7
			sb.WriteString(rest[:end])
			rest = rest[end:]
			continue
		}

		sb.WriteString(rest[:m[0]])
		digits := strings.ToLower(rest[m[0]+1 : m[0]+7])
		if digits[0] == digits[1] && digits[2] == digits[3] && digits[4] == digits[5] {
			sb.WriteByte('#')
			sb.WriteByte(digits[0])
			sb.WriteByte(digits[2])
			sb.WriteByte(digits[4])
		} else {
			sb.WriteByte('#')
			sb.WriteString(digits)
		}
		rest = rest[m[0]+7:]
	}

	sb.WriteString(rest)
	return sb.String()
}

// hexToKeyword replaces hex colours that have a keyword no longer than
// themselves. Only whole hex tokens inside a declaration block qualify.
func hexToKeyword(css string) string {
	locs := hexAnyRegex.FindAllStringIndex(css, -1)
	if locs == nil {
		return css
	}

	var sb strings.Builder
	sb.Grow(len(css))
	last := 0
	for _, loc := range locs {
		hex := css[loc[0]:loc[1]]
		name, ok := colorKeywords[strings.ToLower(hex)]
		if !ok || len(name) > len(hex) || continuesToken(css, loc[1]) || !inDeclaration(css, loc[1]) {
			continue
		}
		sb.WriteString(css[last:loc[0]])
		sb.WriteString(name)
		last = loc[1]
	}
	sb.WriteString(css[last:])
	return sb.String()
}

// continuesToken reports whether the byte at i extends an identifier or hex
// sequence, e.g. the 7th digit of #f000000.
func continuesToken(css string, i int) bool {
	if i >= len(css) {
		return false
	}
	c := css[i]
	return c == '-' || c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// inDeclaration reports whether position i is inside a declaration block,
// i.e. the next brace is a closing one.
func inDeclaration(css string, i int) bool {
	next := strings.IndexAny(css[i:], "{}")
	return next >= 0 && css[i+next] == '}'
}
