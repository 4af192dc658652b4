// Package theme turns an ordered palette into a set of named colors and
// renders it through pongo2 templates.
package theme

import (
	"fmt"
	"strconv"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/hueorder/space"
)

// Theme maps role names (color0, color1, ..., background, foreground) to
// template values.
type Theme map[string]interface{}

// DefaultTemplate lists every color of a theme, one per line.
const DefaultTemplate = `{% for c in colors %}color{{ forloop.Counter0 }} = {{ c }}
{% endfor %}{% if background %}background = {{ background }}
foreground = {{ foreground }}
{% endif %}`

// New builds a theme from rgbs, which are expected to be in display order.
// colorN is the hex of rgbs[N] and colors lists them all. background
// defaults to the darkest color and foreground to the color that contrasts
// most with it. Entries in opts override the computed ones.
func New(w *space.White, rgbs []space.RGB, opts map[string]interface{}) Theme {
	t := make(Theme)
	hexes := make([]string, len(rgbs))
	for i, c := range rgbs {
		hexes[i] = c.Hex()
		t["color"+strconv.Itoa(i)] = hexes[i]
	}
	t["colors"] = hexes

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(w, t, rgbs)

	return t
}

// darkest returns the index of the color with the lowest CIELAB lightness.
func darkest(w *space.White, rgbs []space.RGB) int {
	ans := 0
	for i, c := range rgbs {
		if w.RGBToLab(c).L() < w.RGBToLab(rgbs[ans]).L() {
			ans = i
		}
	}
	return ans
}

// mostContrasting returns the index of the color with the highest contrast
// ratio against base, the earliest one on ties.
func mostContrasting(base space.RGB, rgbs []space.RGB) int {
	ans, best := 0, 0.0
	for i, c := range rgbs {
		if r := space.ContrastRatio(base, c); r > best {
			ans, best = i, r
		}
	}
	return ans
}

func setDefaults(w *space.White, t Theme, rgbs []space.RGB) {
	if len(rgbs) == 0 {
		return
	}

	bg := rgbs[darkest(w, rgbs)]
	if _, ok := t["background"]; !ok {
		t["background"] = bg.Hex()
	} else if s, ok := t["background"].(string); ok {
		if c, err := space.ParseHex(s); err == nil {
			bg = space.RGB{c[0], c[1], c[2]}
		}
	}

	if _, ok := t["foreground"]; !ok {
		t["foreground"] = rgbs[mostContrasting(bg, rgbs)].Hex()
	}
}

// Render executes the pongo2 template source tpl with t as its context.
func Render(tpl string, t Theme) (string, error) {
	p, e := pongo2.FromString(tpl)
	if e != nil {
		return "", fmt.Errorf("parsing template: %w", e)
	}
	return execute(p, t)
}

// RenderFile is Render for a template stored in a file.
func RenderFile(path string, t Theme) (string, error) {
	p, e := pongo2.FromFile(path)
	if e != nil {
		return "", fmt.Errorf("loading template %s: %w", path, e)
	}
	return execute(p, t)
}

func execute(p *pongo2.Template, t Theme) (string, error) {
	o, e := p.Execute(pongo2.Context(t))
	if e != nil {
		return "", fmt.Errorf("rendering theme: %w", e)
	}
	return o, nil
}
