/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/hueorder/space"
)

func newConvertCmd(cfg *config) *cobra.Command {
	var from, to string

	convertCmd := &cobra.Command{
		Use:   "convert CHANNELS...",
		Short: "Converts a color between color spaces",
		Example: `  hueorder convert --to lab '#ff0000'
  hueorder convert --from lab --to oklch 53.24,80.09,67.2
  hueorder convert --white d50 --from rgb --to lchuv 12 200 99 0.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, e := space.ParseSpace(from)
			if e != nil {
				return e
			}
			dst, e := space.ParseSpace(to)
			if e != nil {
				return e
			}
			w, e := cfg.white()
			if e != nil {
				return e
			}

			c, hex, e := parseChannels(args)
			if e != nil {
				return e
			}
			if hex && src != space.SpaceRGB {
				return fmt.Errorf("hex colors are RGB, not %s", src)
			}

			out, e := space.Convert(w, src, dst, c)
			if e != nil {
				return e
			}
			cfg.log.Debug("converted color", "from", src, "to", dst, "white", w)
			fmt.Fprintln(cmd.OutOrStdout(), formatChannels(dst, out))
			return nil
		},
	}

	convertCmd.Flags().StringVarP(&from, "from", "f", space.SpaceRGB.String(), "source color space")
	convertCmd.Flags().StringVar(&to, "to", space.SpaceLab.String(), "target color space")

	return convertCmd
}
