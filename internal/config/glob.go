package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoFiles is returned when no input files were given.
var ErrNoFiles = errors.New("no input files")

// Stdin is the file argument that reads the stylesheet from standard input.
const Stdin = "-"

// ExpandGlobs expands file paths, directories and glob patterns into a
// sorted unique list. A directory contributes the .css files directly
// inside it. Stdin is passed through and must be the only argument.
func ExpandGlobs(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoFiles
	}
	if len(patterns) == 1 && patterns[0] == Stdin {
		return []string{Stdin}, nil
	}

	files := make([]string, 0)
	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range patterns {
		if pattern == Stdin {
			return nil, fmt.Errorf("%q cannot be combined with other files", Stdin)
		}

		if hasGlobMeta(pattern) {
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return nil, err
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no matches for pattern %q", pattern)
			}
			for _, match := range matches {
				add(match)
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			matches, err := filepath.Glob(filepath.Join(pattern, "*.css"))
			if err != nil {
				return nil, err
			}
			for _, match := range matches {
				add(match)
			}
			continue
		}
		add(pattern)
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	sort.Strings(files)
	return files, nil
}

// OutputPath returns the path minified output of input is written to:
// "site.css" with suffix ".min" becomes "site.min.css".
func OutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}

// ExcludeOutputs drops files that already carry suffix, so compressing a
// directory twice does not minify its own output.
func ExcludeOutputs(files []string, suffix string) []string {
	if suffix == "" {
		return files
	}

	kept := files[:0:0]
	for _, f := range files {
		base := strings.TrimSuffix(f, filepath.Ext(f))
		if strings.HasSuffix(base, suffix) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
