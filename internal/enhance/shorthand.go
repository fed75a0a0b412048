package enhance

import (
	"regexp"
	"strings"
)

var (
	modernZeroRe = regexp.MustCompile(`(?i)(^|[\s,(])-?(?:0*\.)?0+(?:rem|ch|vw|vh|vmin|vmax)($|[\s,)])`)
	mathFuncRe   = regexp.MustCompile(`(?i)\b(?:calc|min|max|clamp)\(`)
)

func optimizeShorthand(pc *passContext, css string) string {
	out, changed := rewriteDeclarations(css, func(d declaration) declaration {
		value, important := splitImportant(d.Value)

		switch strings.ToLower(d.Property) {
		case "margin", "padding":
			value = reduceBox(value)
		case "font-weight":
			switch strings.ToLower(value) {
			case "normal":
				value = "400"
			case "bold":
				value = "700"
			}
		case "background-repeat":
			if strings.EqualFold(value, "repeat repeat") {
				value = "repeat"
			}
		case "background":
			const initial = "none repeat scroll 0 0 "
			if len(value) > len(initial) && strings.EqualFold(value[:len(initial)], initial) {
				value = value[len(initial):]
			}
		}

		d.Value = value + important
		return d
	})
	pc.stats.PropertiesOptimized += changed
	return out
}

// reduceBox drops the values of a margin or padding shorthand that repeat
// their counterpart: "1px 2px 1px 2px" is "1px 2px".
func reduceBox(value string) string {
	parts := strings.Fields(value)
	if len(parts) < 2 || len(parts) > 4 {
		return value
	}

	if len(parts) == 4 && parts[3] == parts[1] {
		parts = parts[:3]
	}
	if len(parts) == 3 && parts[2] == parts[0] {
		parts = parts[:2]
	}
	if len(parts) == 2 && parts[1] == parts[0] {
		parts = parts[:1]
	}
	return strings.Join(parts, " ")
}

// optimizeZeroUnits drops the unit of zero lengths in the units the core
// compressor does not know about. flex values and math functions keep
// theirs: a unitless zero means something else there.
func optimizeZeroUnits(pc *passContext, css string) string {
	out, changed := rewriteDeclarations(css, func(d declaration) declaration {
		if strings.Contains(strings.ToLower(d.Property), "flex") || mathFuncRe.MatchString(d.Value) {
			return d
		}
		for {
			next := modernZeroRe.ReplaceAllString(d.Value, "${1}0${2}")
			if next == d.Value {
				return d
			}
			d.Value = next
		}
	})
	pc.stats.PropertiesOptimized += changed
	return out
}

var gapRenames = map[string]string{
	"grid-gap":        "gap",
	"grid-row-gap":    "row-gap",
	"grid-column-gap": "column-gap",
}

func optimizeLayout(pc *passContext, css string) string {
	out, changed := rewriteDeclarations(css, func(d declaration) declaration {
		value, important := splitImportant(d.Value)
		prop := strings.ToLower(d.Property)

		if renamed, ok := gapRenames[prop]; ok {
			d.Property = renamed
			prop = renamed
		}

		switch prop {
		case "gap":
			if parts := strings.Fields(value); len(parts) == 2 && parts[0] == parts[1] {
				value = parts[0]
			}
		case "flex":
			switch strings.ToLower(value) {
			case "0 0 auto":
				value = "none"
			case "1 1 auto":
				value = "auto"
			}
		case "place-items", "place-content":
			if strings.EqualFold(value, "center center") {
				value = "center"
			}
		}

		d.Value = value + important
		return d
	})
	pc.stats.PropertiesOptimized += changed
	return out
}
