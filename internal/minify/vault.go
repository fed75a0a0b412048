package minify

import (
	"fmt"
	"regexp"
	"strconv"
)

// Kind selects a placeholder namespace. Each namespace is indexed from zero
// independently of the others.
type Kind int

const (
	// KindComment holds candidate comment bodies until they are classified.
	KindComment Kind = iota
	// KindToken holds strings, kept comments and data-URL payloads.
	KindToken
	// KindCalc holds whole calc() expressions.
	KindCalc
	// KindFilter holds filter declarations while colour keywords are applied.
	KindFilter
)

var kindNames = [...]string{
	KindComment: "CANDIDATE_COMMENT",
	KindToken:   "TOKEN",
	KindCalc:    "CALC",
	KindFilter:  "FILTER",
}

// String returns the namespace name used inside placeholder tokens.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// placeholderPatterns match the tokens of each namespace.
var placeholderPatterns = func() [len(kindNames)]*regexp.Regexp {
	var res [len(kindNames)]*regexp.Regexp
	for k, name := range kindNames {
		res[k] = regexp.MustCompile(`___PRESERVED_` + name + `_(\d+)___`)
	}
	return res
}()

// Vault stores fragments of source text that must survive the rewrite passes
// untouched. A Vault belongs to a single compression run.
type Vault struct {
	fragments [len(kindNames)][]string
}

// NewVault returns an empty vault.
func NewVault() *Vault {
	return &Vault{}
}

// Placeholder returns the token text for index i of namespace k.
func Placeholder(k Kind, i int) string {
	return fmt.Sprintf("___PRESERVED_%s_%d___", k, i)
}

// Protect appends fragment to namespace k and returns its placeholder.
func (v *Vault) Protect(k Kind, fragment string) string {
	v.fragments[k] = append(v.fragments[k], fragment)
	return Placeholder(k, len(v.fragments[k])-1)
}

// Resolve returns the fragment stored at index i of namespace k.
func (v *Vault) Resolve(k Kind, i int) (string, bool) {
	if i < 0 || i >= len(v.fragments[k]) {
		return "", false
	}
	return v.fragments[k][i], true
}

// Len returns the number of fragments in namespace k.
func (v *Vault) Len(k Kind) int {
	return len(v.fragments[k])
}

// Restore replaces every placeholder of namespace k in text with its
// fragment. Replacement text is never rescanned, so a fragment that happens to
// contain placeholder-looking text comes back literally. Unknown indices are
// left as they are.
func (v *Vault) Restore(k Kind, text string) string {
	if len(v.fragments[k]) == 0 {
		return text
	}
	return placeholderPatterns[k].ReplaceAllStringFunc(text, func(token string) string {
		sub := placeholderPatterns[k].FindStringSubmatch(token)
		i, err := strconv.Atoi(sub[1])
		if err != nil {
			return token
		}
		if fragment, ok := v.Resolve(k, i); ok {
			return fragment
		}
		return token
	})
}

// Expand resolves KindToken placeholders inside a fragment that is about to
// be protected itself. Data URLs are extracted before anything else, so their
// tokens can end up inside string and comment bodies.
func (v *Vault) Expand(fragment string) string {
	return v.Restore(KindToken, fragment)
}
