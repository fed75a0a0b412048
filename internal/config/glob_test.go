package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()

	fileA := filepath.Join(dir, "a.css")
	fileB := filepath.Join(dir, "b.css")
	fileC := filepath.Join(dir, "c.txt")

	for _, path := range []string{fileA, fileB, fileC} {
		if err := os.WriteFile(path, []byte("a{}"), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	files, err := ExpandGlobs([]string{filepath.Join(dir, "*.css")})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}

	files, err = ExpandGlobs([]string{fileA, filepath.Join(dir, "*.css")})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}

	files, err = ExpandGlobs([]string{dir})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	if !reflect.DeepEqual(files, []string{fileA, fileB}) {
		t.Errorf("directory expansion = %v", files)
	}
}

func TestExpandGlobsNoMatch(t *testing.T) {
	dir := t.TempDir()

	_, err := ExpandGlobs([]string{filepath.Join(dir, "*.missing")})
	if err == nil {
		t.Fatal("expected error for unmatched glob")
	}

	_, err = ExpandGlobs([]string{dir})
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("empty directory error = %v, want ErrNoFiles", err)
	}

	_, err = ExpandGlobs(nil)
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("no patterns error = %v, want ErrNoFiles", err)
	}
}

func TestExpandGlobsStdin(t *testing.T) {
	files, err := ExpandGlobs([]string{Stdin})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	if !reflect.DeepEqual(files, []string{Stdin}) {
		t.Errorf("ExpandGlobs(-) = %v", files)
	}

	file := filepath.Join(t.TempDir(), "a.css")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ExpandGlobs([]string{file, Stdin}); err == nil {
		t.Error("expected error when mixing stdin with files")
	}
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"site.css":         "site.min.css",
		"dir/theme.css":    "dir/theme.min.css",
		"noext":            "noext.min",
		"dir.v2/reset.css": "dir.v2/reset.min.css",
	}

	for in, want := range tests {
		if got := OutputPath(in, ".min"); got != want {
			t.Errorf("OutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExcludeOutputs(t *testing.T) {
	files := []string{"a.css", "a.min.css", "b.css"}

	got := ExcludeOutputs(files, ".min")
	if !reflect.DeepEqual(got, []string{"a.css", "b.css"}) {
		t.Errorf("ExcludeOutputs() = %v", got)
	}
	if !reflect.DeepEqual(files, []string{"a.css", "a.min.css", "b.css"}) {
		t.Error("ExcludeOutputs() modified its input")
	}

	if got := ExcludeOutputs(files, ""); len(got) != 3 {
		t.Errorf("empty suffix should keep everything, got %v", got)
	}
}
