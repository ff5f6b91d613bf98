// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"gsjsprep/internal/walker"
)

// processCmd runs the whole rewrite pipeline over a source tree.
var processCmd = &cobra.Command{
	Use:   "process [source] [dest]",
	Short: "Rewrite a GSJS source tree into the destination tree",
	Long: `Process walks the source tree depth-first, rewrites every eligible
module (export registration or prototype classification, then include
resolution and API qualification), and writes the results to the
mirrored path under the destination root, overwriting existing files.

Positional arguments override the source_root and dest_root config
values. A missing source root is fatal; nothing is written in that case.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := loadConfig()
		if err != nil {
			logger.Fatal(formatErrorForDisplay(err, verbose))
		}
		if len(args) > 0 {
			cfg.SourceRoot = args[0]
		}
		if len(args) > 1 {
			cfg.DestRoot = args[1]
		}
		if cfg.SourceRoot == "" || cfg.DestRoot == "" {
			return errors.New("source and destination roots are required (config values or positional arguments)")
		}

		w := walker.New(afero.NewOsFs(), cfg, logger)
		if err := w.Run(); err != nil {
			logger.Fatal(formatErrorForDisplay(err, verbose))
		}
		return nil
	},
}
