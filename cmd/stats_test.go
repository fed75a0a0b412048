package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bimmerbailey/cssmin/internal/output"
)

func newStatsTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "stats"}
	cmd.SetOut(out)
	addMinifyFlags(cmd)
	return cmd
}

func TestStatsBasicText(t *testing.T) {
	viper.Reset()
	viper.Set("format", "text")

	file := writeTempFile(t, t.TempDir(), "site.css", ".a { color: red; }")

	var out bytes.Buffer
	cmd := newStatsTestCmd(&out)

	if err := runStats(cmd, []string{file}); err != nil {
		t.Fatalf("runStats() error = %v", err)
	}

	output := out.String()

	if !strings.Contains(output, "18 -> 13 bytes") {
		t.Errorf("expected sizes, got:\n%s", output)
	}
	if !strings.Contains(output, "(27.78% smaller)") {
		t.Errorf("expected ratio, got:\n%s", output)
	}
	if !strings.Contains(output, "gzip") {
		t.Errorf("expected transfer sizes, got:\n%s", output)
	}
}

func TestStatsJSON(t *testing.T) {
	viper.Reset()
	viper.Set("format", "json")

	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.css", "a { margin: 1px 1px } a { color: hsl(0, 100%, 50%) }")
	b := writeTempFile(t, dir, "b.css", "b { color: #ffffff }")

	var out bytes.Buffer
	cmd := newStatsTestCmd(&out)
	_ = cmd.Flags().Set("preset", "aggressive")

	if err := runStats(cmd, []string{b, a}); err != nil {
		t.Fatalf("runStats() error = %v", err)
	}

	var reports []output.Report
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v\noutput: %s", err, out.String())
	}

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].File != a || reports[1].File != b {
		t.Errorf("reports not in sorted file order: %s, %s", reports[0].File, reports[1].File)
	}

	s := reports[0].Statistics
	if s.SelectorsMerged != 1 || s.PropertiesOptimized != 1 || s.ColorsConverted != 1 {
		t.Errorf("unexpected pass counters: %+v", s)
	}
	if s.GzipSize == 0 || s.ZstdSize == 0 {
		t.Errorf("expected transfer sizes: %+v", s)
	}
}

func TestStatsTable(t *testing.T) {
	viper.Reset()
	viper.Set("format", "table")

	file := writeTempFile(t, t.TempDir(), "site.css", "a { color: red }")

	var out bytes.Buffer
	cmd := newStatsTestCmd(&out)

	if err := runStats(cmd, []string{file}); err != nil {
		t.Fatalf("runStats() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "ORIGINAL") || !strings.Contains(output, "25.00%") {
		t.Errorf("unexpected table:\n%s", output)
	}
}

func TestStatsStdin(t *testing.T) {
	viper.Reset()
	viper.Set("format", "yaml")

	var out bytes.Buffer
	cmd := newStatsTestCmd(&out)
	cmd.SetIn(strings.NewReader("a { color: red }"))

	if err := runStats(cmd, []string{"-"}); err != nil {
		t.Fatalf("runStats() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "file: <stdin>") || !strings.Contains(output, "compressed_size: 12") {
		t.Errorf("unexpected yaml:\n%s", output)
	}
}

func TestStatsMissingFile(t *testing.T) {
	viper.Reset()

	var out bytes.Buffer
	cmd := newStatsTestCmd(&out)

	if err := runStats(cmd, []string{"does-not-exist.css"}); err == nil {
		t.Fatal("expected error for missing file")
	}
}
