package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bimmerbailey/cssmin/internal/config"
	"github.com/bimmerbailey/cssmin/internal/logging"
	"github.com/bimmerbailey/cssmin/internal/output"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cssmin",
	Short: "A CSS minifier",
	Long: `Cssmin compresses stylesheets: comments, whitespace, redundant units,
zeros and colours are removed or shortened while strings, important
comments and browser hacks are kept intact.

Optional passes merge duplicate selectors, shorten shorthand properties
and convert hsl() colours.

Examples:
  cssmin compress site.css > site.min.css
  cssmin compress --preset aggressive --suffix .min css/*.css
  cssmin stats --format table css/
  cssmin watch -o dist/site.css src/site.css`,
	SilenceUsage: true,
}

// Execute is called by main.main(). It runs the root command until it
// finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cssmin.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format (text, json, table, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("color", "auto", "colour text output (auto, always, never)")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".cssmin")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CSSMIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	readErr := viper.ReadInConfig()

	level := viper.GetString("log_level")
	if viper.GetBool("verbose") {
		level = "debug"
	}
	logging.SetLevel(level)

	if readErr == nil {
		logging.Default().Debug("using config file", logging.FieldPath, viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logging.Default().Warn("could not read config file", logging.FieldPath, cfgFile, logging.FieldError, readErr)
	}
}

// loadConfig returns the effective configuration. Defaults are registered
// again so it also works after viper.Reset.
func loadConfig() (config.Config, error) {
	v := viper.GetViper()
	config.SetDefaults(v)
	return config.Load(v)
}

// commandContext returns the command's context carrying the logger.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logging.Default())
}

func newOutputWriter(cmd *cobra.Command, cfg config.Config) *output.Writer {
	w := output.New(cmd.OutOrStdout(), output.ParseFormat(cfg.Format))
	w.SetColorMode(output.ParseColorMode(cfg.Color))
	return w
}
