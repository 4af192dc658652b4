/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmuldo/hueorder/palette"
	"github.com/mmuldo/hueorder/space"
	"github.com/mmuldo/hueorder/theme"
)

func newSortCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "sort COLOR...",
		Short: "Orders a palette",
		Long: `Orders a palette of RGB colors and prints it through the configured
template. The CIE76, CIE94 and CIEDE2000 methods keep the first color in
place and then always step to the closest remaining color.`,
		Example: "  hueorder sort --method cie76 '#000' '#fff' 128,128,128",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgbs := make([]space.RGB, len(args))
			for i, arg := range args {
				c, e := parseRGB(arg)
				if e != nil {
					return e
				}
				rgbs[i] = c
			}
			return printSorted(cmd.OutOrStdout(), cfg, rgbs)
		},
	}
}

// printSorted sorts rgbs with the configured method and renders the result.
func printSorted(out io.Writer, cfg *config, rgbs []space.RGB) error {
	m, e := cfg.method()
	if e != nil {
		return e
	}
	w, e := cfg.white()
	if e != nil {
		return e
	}

	sorted := palette.SortRGBs(w, rgbs, m)
	cfg.log.Debug("sorted palette", "method", m, "colors", len(sorted))

	o, e := cfg.render(theme.New(w, sorted, nil))
	if e != nil {
		return e
	}
	_, e = fmt.Fprint(out, o)
	return e
}
