/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmuldo/hueorder/numeric"
	"github.com/mmuldo/hueorder/space"
)

// parseChannels reads a color given either as a hex string or as channel
// values, separated by commas, spaces or both.
func parseChannels(args []string) (c []float64, hex bool, e error) {
	if len(args) == 1 && strings.HasPrefix(strings.TrimSpace(args[0]), "#") {
		c, e = space.ParseHex(args[0])
		return c, true, e
	}
	for _, f := range strings.FieldsFunc(strings.Join(args, ","), func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		v, e := strconv.ParseFloat(f, 64)
		if e != nil {
			return nil, false, fmt.Errorf("invalid channel %q", f)
		}
		c = append(c, v)
	}
	if len(c) < 3 {
		return nil, false, fmt.Errorf("%w: %q", space.ErrShortVector, strings.Join(args, " "))
	}
	return c, false, nil
}

// parseRGB reads an 8-bit RGB color written as hex or as r,g,b. Alpha is
// dropped.
func parseRGB(s string) (space.RGB, error) {
	c, _, e := parseChannels([]string{s})
	if e != nil {
		return space.RGB{}, e
	}
	var rgb space.RGB
	for i := range rgb {
		if c[i] < 0 || c[i] > 255 {
			return space.RGB{}, fmt.Errorf("RGB channel out of range [0, 255]: %q", s)
		}
		rgb[i] = c[i]
	}
	return rgb, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(numeric.Round(v, 4), 'f', -1, 64)
}

// formatChannels writes c as label=value pairs for space s.
func formatChannels(s space.Space, c []float64) string {
	labels := s.Labels()
	parts := make([]string, 0, len(c))
	for i, v := range c {
		label := "alpha"
		if i < len(labels) {
			label = labels[i]
		}
		parts = append(parts, label+"="+formatFloat(v))
	}
	return strings.Join(parts, " ")
}
