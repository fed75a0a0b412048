package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bimmerbailey/cssmin/internal/batch"
	"github.com/bimmerbailey/cssmin/internal/config"
	"github.com/bimmerbailey/cssmin/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] <file|dir|glob|->...",
	Short: "Show compression statistics",
	Long: `Compress stylesheets without writing them and report original and
compressed sizes, the reduction, gzip and zstd transfer sizes, and what
the optional passes changed.

Examples:
  cssmin stats site.css
  cssmin stats --format json --preset aggressive css/
  cssmin stats --format table "css/*.css"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	addMinifyFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyMinifyFlags(cmd, &cfg)

	ecfg, err := cfg.EnhanceConfig()
	if err != nil {
		return err
	}
	ecfg.StatisticsEnabled = true

	files, err := config.ExpandGlobs(args)
	if err != nil {
		return err
	}

	w := newOutputWriter(cmd, cfg)

	if files[0] == config.Stdin {
		_, stats, err := compressStream(cmd.InOrStdin(), ecfg)
		if err != nil {
			return err
		}
		return w.WriteReports([]output.Report{{File: "<stdin>", Statistics: stats}})
	}

	outcomes, err := batch.New(ecfg, cfg.Jobs).Run(commandContext(cmd), jobsFor(files))
	if err != nil {
		return err
	}

	reports := make([]output.Report, len(outcomes))
	for i, o := range outcomes {
		reports[i] = o.Report()
	}
	if err := w.WriteReports(reports); err != nil {
		return err
	}

	if failed := batch.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
	}
	return nil
}

func jobsFor(files []string) []batch.Job {
	jobs := make([]batch.Job, len(files))
	for i, f := range files {
		jobs[i] = batch.Job{Input: f}
	}
	return jobs
}
