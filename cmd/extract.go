/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mmuldo/hueorder/image"
)

func newExtractCmd(cfg *config) *cobra.Command {
	var num int

	extractCmd := &cobra.Command{
		Use:   "extract IMAGE",
		Short: "Creates an ordered palette from an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, e := image.Load(args[0])
			if e != nil {
				return e
			}
			rgbs, e := image.Extract(i, num)
			if e != nil {
				return e
			}
			cfg.log.Debug("extracted palette", "path", args[0], "colors", len(rgbs))
			return printSorted(cmd.OutOrStdout(), cfg, rgbs)
		},
	}

	extractCmd.Flags().IntVarP(&num, "num", "n", 8, "number of colors to extract")

	return extractCmd
}
