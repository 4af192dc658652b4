/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDiffCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "diff COLOR COLOR",
		Short: "Prints the perceptual difference between two RGB colors",
		Long: `Prints the color difference (Delta E) between two RGB colors using
--method cie76, cie94 or ciede2000. CIE94 is not symmetric; the first
color is the reference.`,
		Example: "  hueorder diff --method cie94 '#ff0000' 254,1,1",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, e := cfg.method()
			if e != nil {
				return e
			}
			f := m.DiffFunc()
			if f == nil {
				return fmt.Errorf("%s is not a color difference formula", m)
			}
			w, e := cfg.white()
			if e != nil {
				return e
			}

			a, e := parseRGB(args[0])
			if e != nil {
				return e
			}
			b, e := parseRGB(args[1])
			if e != nil {
				return e
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(f(w.RGBToLab(a), w.RGBToLab(b))))
			return nil
		},
	}
}
