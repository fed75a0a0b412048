package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bimmerbailey/cssmin/internal/config"
)

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cssmin.yaml")

	newCmd := func(out *bytes.Buffer) *cobra.Command {
		cmd := &cobra.Command{Use: "init"}
		cmd.SetOut(out)
		cmd.Flags().Bool("force", false, "")
		return cmd
	}

	var out bytes.Buffer
	if err := runConfigInit(newCmd(&out), []string{path}); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}
	if !strings.Contains(out.String(), "Wrote "+path) {
		t.Errorf("unexpected output: %s", out.String())
	}

	var cfg config.Config
	if err := yaml.Unmarshal([]byte(readFile(t, path)), &cfg); err != nil {
		t.Fatalf("written file is not valid yaml: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("written config = %+v, want defaults", cfg)
	}

	if err := runConfigInit(newCmd(&out), []string{path}); err == nil {
		t.Error("expected error when the file exists")
	}

	force := newCmd(&out)
	_ = force.Flags().Set("force", "true")
	if err := runConfigInit(force, []string{path}); err != nil {
		t.Errorf("runConfigInit(--force) error = %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	viper.Reset()
	viper.Set("preset", "modern")
	viper.Set("watch.debounce", "1s")

	var out bytes.Buffer
	cmd := &cobra.Command{Use: "show"}
	cmd.SetOut(&out)

	if err := runConfigShow(cmd, nil); err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}

	output := out.String()
	for _, want := range []string{"preset: modern", "line_break: 5000", "  debounce: 1s", "  preserve_ie_hacks: true"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}
