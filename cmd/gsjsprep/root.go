// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for gsjsprep.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gsjsprep/internal/config"
	"gsjsprep/internal/diag"
	"gsjsprep/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level diagnostics
	verbose bool
	// trace enables per-line trace diagnostics (implies verbose)
	trace bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "gsjsprep",
		Short: "Adapt GSJS modules for the game server's module loader",
		Long: TitleStyle.Render("gsjsprep") + SubtitleStyle.Render(" - GSJS module preprocessor") + `

gsjsprep rewrites GameServerJS script modules — plain top-level
declarations plus //#include directives — into the prototype-composer
convention the game server loads: each file becomes a function that
installs properties on a bare prototype object, with includes resolved
to runtime include() calls and global API calls qualified through the
injected 'api' object.

` + SubtitleStyle.Render("Examples:") + `
  gsjsprep process ./eleven-gsjs ./src/gsjs   Rewrite a whole source tree
  gsjsprep config show                        Show current configuration
  gsjsprep config init                        Write the default config file`,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "enable per-line trace output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/gsjsprep/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the run's logger from the verbosity flags.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if trace {
		level = diag.TraceLevel
	}
	return diag.New(os.Stderr, level)
}

// loadConfig resolves the effective configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	return config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render their suggestions; verbose mode shows the full cause chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
