package enhance

import (
	"regexp"
	"strings"
)

var basicRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`/\*[\s\S]*?\*/`), ""},
	{regexp.MustCompile(`\s+`), " "},
	{regexp.MustCompile(`\s*([{};])\s*`), "$1"},
	{regexp.MustCompile(`:\s+`), ":"},
}

// basicCompress is the last-resort compressor: comments and whitespace
// only, nothing that needs the placeholder machinery.
func basicCompress(css string) string {
	for _, rule := range basicRules {
		css = rule.re.ReplaceAllString(css, rule.repl)
	}
	return strings.TrimSpace(css)
}
