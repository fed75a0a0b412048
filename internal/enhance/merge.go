package enhance

import (
	"strings"
)

// node is one top-level item of a stylesheet: a rule, an at-rule block or
// anything else kept verbatim (statements, stray text).
type node struct {
	prelude string
	body    string
	block   bool
}

func (n node) String() string {
	if !n.block {
		return n.prelude
	}
	return n.prelude + "{" + n.body + "}"
}

// key is the selector or at-rule prelude used to compare nodes.
func (n node) key() string {
	return strings.TrimSpace(n.prelude)
}

// plainRule reports whether n is a style rule.
func (n node) plainRule() bool {
	return n.block && !strings.HasPrefix(n.key(), "@") && !strings.Contains(n.body, "{")
}

// groupRule reports whether n is a conditional group whose body is a list
// of rules.
func (n node) groupRule() bool {
	if !n.block {
		return false
	}
	k := strings.ToLower(n.key())
	return strings.HasPrefix(k, "@media") || strings.HasPrefix(k, "@supports")
}

// parseNodes splits minified css into top-level nodes.
func parseNodes(css string) []node {
	var nodes []node

	for css != "" {
		i := strings.IndexAny(css, "{;}")
		if i < 0 {
			nodes = append(nodes, node{prelude: css})
			break
		}

		switch css[i] {
		case ';', '}':
			nodes = append(nodes, node{prelude: css[:i+1]})
			css = css[i+1:]
			continue
		}

		end := matchingBrace(css, i)
		if end < 0 {
			nodes = append(nodes, node{prelude: css})
			break
		}
		nodes = append(nodes, node{prelude: css[:i], body: css[i+1 : end], block: true})
		css = css[end+1:]
	}

	return nodes
}

// matchingBrace returns the index of the '}' closing the '{' at open.
func matchingBrace(css string, open int) int {
	depth := 0
	for i := open; i < len(css); i++ {
		switch css[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func mergeDuplicateSelectors(pc *passContext, css string) string {
	out, merged := mergeNodes(css)
	pc.stats.SelectorsMerged += merged
	return out
}

// mergeNodes joins adjacent rules with the same selector, and adjacent
// @media or @supports blocks with the same condition. Rules that are not
// adjacent are never merged: moving a rule changes the cascade.
func mergeNodes(css string) (string, int) {
	nodes := parseNodes(css)
	merged := 0

	out := make([]node, 0, len(nodes))
	for _, n := range nodes {
		if n.groupRule() {
			var count int
			n.body, count = mergeNodes(n.body)
			merged += count
		}

		if len(out) == 0 {
			out = append(out, n)
			continue
		}

		prev := &out[len(out)-1]
		switch {
		case prev.plainRule() && n.plainRule() && prev.key() == n.key():
			prev.body = joinDeclarations(prev.body, n.body)
			merged++
		case prev.groupRule() && n.groupRule() && prev.key() == n.key():
			body, count := mergeNodes(prev.body + n.body)
			prev.body = body
			merged += count + 1
		default:
			out = append(out, n)
		}
	}

	var sb strings.Builder
	sb.Grow(len(css))
	for _, n := range out {
		sb.WriteString(n.String())
	}
	return sb.String(), merged
}

// joinDeclarations concatenates two declaration lists. A declaration that
// appears again later is dropped from its earlier position, since the later
// copy wins anyway.
func joinDeclarations(first, second string) string {
	var decls []string
	for _, d := range strings.Split(first+";"+second, ";") {
		if d != "" {
			decls = append(decls, d)
		}
	}

	seen := make(map[string]bool, len(decls))
	kept := make([]string, 0, len(decls))
	for i := len(decls) - 1; i >= 0; i-- {
		if seen[decls[i]] {
			continue
		}
		seen[decls[i]] = true
		kept = append(kept, decls[i])
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, ";")
}
