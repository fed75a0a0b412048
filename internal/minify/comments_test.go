package minify

import (
	"strings"
	"testing"
)

func TestClassifyComment(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		before byte
		want   commentAction
	}{
		{"documentation", " plain ", ' ', actionDelete},
		{"important", "! license ", ' ', actionPreserveVerbatim},
		{"important ending in backslash", `! keep \`, ' ', actionPreserveVerbatim},
		{"mac hack opener", ` hide from IE mac \`, '}', actionPreserveBackslash},
		{"empty after child combinator", "", '>', actionPreserveEmpty},
		{"empty elsewhere", "", ' ', actionDelete},
		{"empty at start of text", "", 0, actionDelete},
		{"backslash only after child combinator", `\`, '>', actionPreserveBackslash},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyComment(tt.body, tt.before); got != tt.want {
				t.Errorf("classifyComment(%q, %q) = %v, want %v", tt.body, tt.before, got, tt.want)
			}
		})
	}
}

func TestCollectComments(t *testing.T) {
	v := NewVault()

	got := collectComments("a{}/* one */b{}/*two", v)

	want := "a{}/*" + Placeholder(KindComment, 0) + "*/b{}/*" + Placeholder(KindComment, 1)
	if got != want {
		t.Errorf("collectComments() = %q, want %q", got, want)
	}
	if body, _ := v.Resolve(KindComment, 1); body != "two" {
		t.Errorf("unterminated body = %q, want %q", body, "two")
	}
}

func TestResolveCommentsMacHackConsumesTwo(t *testing.T) {
	v := NewVault()
	css := collectComments(`/* a \*/x{}/* b */y{}/* c */`, v)

	got := v.Restore(KindToken, resolveComments(css, v))

	if got != `/*\*/x{}/**/y{}` {
		t.Errorf("resolveComments() = %q", got)
	}
}

func TestDeleteCommentUnterminated(t *testing.T) {
	token := Placeholder(KindComment, 0)

	got := deleteComment("a{}/*"+token+" trailing", token)

	if strings.Contains(got, "trailing") || got != "a{}" {
		t.Errorf("deleteComment() = %q", got)
	}
}
