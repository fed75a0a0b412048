package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bimmerbailey/cssmin/internal/batch"
	"github.com/bimmerbailey/cssmin/internal/config"
	"github.com/bimmerbailey/cssmin/internal/logging"
	"github.com/bimmerbailey/cssmin/internal/output"
	"github.com/bimmerbailey/cssmin/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <file>",
	Short: "Recompress a stylesheet whenever it changes",
	Long: `Watch a stylesheet and write its minified form every time it is saved.
Runs until interrupted (Ctrl+C).

Examples:
  cssmin watch site.css
  cssmin watch -o dist/site.css --preset modern src/site.css
  cssmin watch --debounce 500ms site.css`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	addMinifyFlags(watchCmd)
	watchCmd.Flags().StringP("output", "o", "", "output file (default <name><suffix>.css)")
	watchCmd.Flags().String("debounce", "", "wait this long after the last change before recompressing (e.g. 200ms)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyMinifyFlags(cmd, &cfg)
	if cmd.Flags().Changed("debounce") {
		cfg.Watch.Debounce, _ = cmd.Flags().GetString("debounce")
	}

	ecfg, err := cfg.EnhanceConfig()
	if err != nil {
		return err
	}
	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return err
	}

	input := args[0]
	if input == config.Stdin {
		return fmt.Errorf("watch needs a file, not standard input")
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = config.OutputPath(input, cfg.Suffix)
	}
	if outPath == input {
		return fmt.Errorf("output %s would overwrite the watched file", outPath)
	}

	logger := logging.Default()
	runner := batch.New(ecfg, 1)
	w := newOutputWriter(cmd, cfg)

	onChange := func(ctx context.Context, path string) error {
		outcomes, err := runner.Run(ctx, []batch.Job{{Input: path, Output: outPath}})
		if err != nil {
			// Cancelled mid-run; the watcher is stopping.
			return nil
		}

		o := outcomes[0]
		if o.Err != nil {
			// Keep watching: the next save may fix it.
			logger.Error("recompression failed", logging.FieldPath, path, logging.FieldError, o.Err)
			return nil
		}
		return w.WriteReports([]output.Report{o.Report()})
	}

	logger.Info("watching", logging.FieldPath, input, logging.FieldOutput, outPath)

	return watch.New(watch.Options{
		FilePath: input,
		Debounce: debounce,
		OnChange: onChange,
	}).Run(commandContext(cmd))
}
