/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/

// Package cmd implements the hueorder command line.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmuldo/hueorder/palette"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := newConfig()

	rootCmd := &cobra.Command{
		Use:   "hueorder",
		Short: "Convert, compare and order colors",
		Long: `hueorder converts colors between RGB, CIEXYZ, CIELAB, CIELUV, the CIE LCh
spaces and OKLAB/OKLCH, measures perceptual color differences and orders
palettes so that neighboring colors look alike.

Settings are read from $HOME/.config/hueorder/hueorder.yaml or ./hueorder.yaml
and from HUEORDER_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if e := cfg.load(); e != nil {
				return e
			}
			level := slog.LevelInfo
			if cfg.v.GetBool("verbose") {
				level = slog.LevelDebug
			}
			cfg.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			palette.SetLogger(cfg.log)
			if f := cfg.v.ConfigFileUsed(); f != "" {
				cfg.log.Debug("using config file", "path", f)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.file, "config", "", "config file (default is $HOME/.config/hueorder/hueorder.yaml)")
	flags.StringP("white", "w", "D65", "reference white, D65 or D50")
	flags.StringP("method", "m", palette.DefaultMethod.String(), "sort or difference method")
	flags.StringP("template", "t", "", "pongo2 template used to print palettes")
	flags.BoolP("verbose", "v", false, "log debug output")
	for _, key := range []string{"white", "method", "template", "verbose"} {
		_ = cfg.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(
		newConvertCmd(cfg),
		newDiffCmd(cfg),
		newSortCmd(cfg),
		newExtractCmd(cfg),
	)
	return rootCmd
}
