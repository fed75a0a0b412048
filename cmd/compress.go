package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bimmerbailey/cssmin/internal/batch"
	"github.com/bimmerbailey/cssmin/internal/config"
	"github.com/bimmerbailey/cssmin/internal/enhance"
	"github.com/bimmerbailey/cssmin/internal/logging"
	"github.com/bimmerbailey/cssmin/internal/output"
)

var compressCmd = &cobra.Command{
	Use:   "compress [flags] [file|dir|glob|-]...",
	Short: "Minify stylesheets",
	Long: `Minify one or more stylesheets.

A single input is written to standard output unless --output, --in-place
or --suffix is given. Several inputs are written next to their sources as
<name><suffix>.css. With no arguments, or "-", the stylesheet is read from
standard input.

Examples:
  cssmin compress site.css > site.min.css
  cssmin compress -o dist/site.css site.css
  cssmin compress --preset aggressive css/
  cat site.css | cssmin compress --line-break 120`,
	RunE: runCompress,
}

func init() {
	addCompressFlags(compressCmd)
	rootCmd.AddCommand(compressCmd)
}

func addCompressFlags(cmd *cobra.Command) {
	addMinifyFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "write the result to this file (single input only)")
	cmd.Flags().Bool("in-place", false, "overwrite the inputs")
	cmd.Flags().String("suffix", ".min", "suffix for output files written next to their inputs")
	cmd.Flags().IntP("jobs", "j", 0, "number of files compressed concurrently (0 = number of CPUs)")
}

func runCompress(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyMinifyFlags(cmd, &cfg)
	if cmd.Flags().Changed("suffix") {
		cfg.Suffix, _ = cmd.Flags().GetString("suffix")
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs, _ = cmd.Flags().GetInt("jobs")
	}

	ecfg, err := cfg.EnhanceConfig()
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	inPlace, _ := cmd.Flags().GetBool("in-place")
	if outPath != "" && inPlace {
		return errors.New("--output and --in-place cannot be combined")
	}

	ctx := commandContext(cmd)

	if len(args) == 0 {
		if output.IsInteractive(cmd.InOrStdin()) {
			return fmt.Errorf("%w: pass files or pipe a stylesheet to standard input", config.ErrNoFiles)
		}
		args = []string{config.Stdin}
	}
	files, err := config.ExpandGlobs(args)
	if err != nil {
		return err
	}

	if files[0] == config.Stdin {
		if inPlace {
			return errors.New("--in-place needs file arguments")
		}
		css, _, err := compressStream(cmd.InOrStdin(), ecfg)
		if err != nil {
			return err
		}
		if outPath != "" {
			return output.WriteAtomic(ctx, outPath, []byte(css), 0)
		}
		_, err = io.WriteString(cmd.OutOrStdout(), css)
		return err
	}

	if !inPlace {
		files = config.ExcludeOutputs(files, cfg.Suffix)
		if len(files) == 0 {
			return config.ErrNoFiles
		}
	}
	if outPath != "" && len(files) > 1 {
		return fmt.Errorf("--output needs a single input, got %d files", len(files))
	}

	toStdout := len(files) == 1 && outPath == "" && !inPlace && !cmd.Flags().Changed("suffix")

	jobs := make([]batch.Job, len(files))
	for i, f := range files {
		jobs[i] = batch.Job{Input: f}
		switch {
		case toStdout:
		case outPath != "":
			jobs[i].Output = outPath
		case inPlace:
			jobs[i].Output = f
		default:
			jobs[i].Output = config.OutputPath(f, cfg.Suffix)
		}
	}

	logging.Default().Debug("compressing",
		logging.FieldFiles, len(jobs),
		logging.FieldPreset, cfg.Preset,
		logging.FieldJobs, cfg.Jobs,
	)

	outcomes, err := batch.New(ecfg, cfg.Jobs).Run(ctx, jobs)
	if err != nil {
		return err
	}

	if toStdout {
		o := outcomes[0]
		if o.Err != nil {
			return o.Err
		}
		_, err := io.WriteString(cmd.OutOrStdout(), o.CSS)
		return err
	}

	reports := make([]output.Report, len(outcomes))
	for i, o := range outcomes {
		reports[i] = o.Report()
	}
	if err := newOutputWriter(cmd, cfg).WriteReports(reports); err != nil {
		return err
	}

	if failed := batch.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
	}
	return nil
}

// compressStream compresses a stylesheet read from r.
func compressStream(r io.Reader, cfg enhance.Config) (string, enhance.Statistics, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", enhance.Statistics{}, fmt.Errorf("reading standard input: %w", err)
	}

	c := enhance.New(cfg)
	css, err := c.Compress(string(src))
	if err != nil {
		return "", enhance.Statistics{}, err
	}
	return css, c.Statistics(), nil
}
