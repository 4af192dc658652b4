/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/mmuldo/hueorder/palette"
	"github.com/mmuldo/hueorder/space"
	"github.com/mmuldo/hueorder/theme"
)

// config holds the settings shared by every command.
type config struct {
	v    *viper.Viper
	file string
	log  *slog.Logger
}

func newConfig() *config {
	v := viper.New()
	v.SetDefault("white", space.D65.String())
	v.SetDefault("method", palette.DefaultMethod.String())
	v.SetDefault("template", "")
	v.SetDefault("verbose", false)
	return &config{v: v, log: slog.New(slog.NewTextHandler(os.Stderr, nil))}
}

// load reads the config file and the environment. A missing default config
// file is not an error.
func (c *config) load() error {
	if c.file != "" {
		c.v.SetConfigFile(c.file)
	} else {
		if home, e := homedir.Dir(); e == nil {
			c.v.AddConfigPath(filepath.Join(home, ".config", "hueorder"))
		}
		c.v.AddConfigPath(".")
		c.v.SetConfigName("hueorder")
		c.v.SetConfigType("yaml")
	}
	c.v.SetEnvPrefix("hueorder")
	c.v.AutomaticEnv()

	if e := c.v.ReadInConfig(); e != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.file == "" && errors.As(e, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", e)
	}
	return nil
}

func (c *config) white() (*space.White, error) {
	il, e := space.ParseIlluminant(c.v.GetString("white"))
	if e != nil {
		return nil, e
	}
	return space.NewWhite(il)
}

func (c *config) method() (palette.Method, error) {
	return palette.ParseMethod(c.v.GetString("method"))
}

// render prints t through the configured template, or the built-in one.
func (c *config) render(t theme.Theme) (string, error) {
	path := c.v.GetString("template")
	if path == "" {
		return theme.Render(theme.DefaultTemplate, t)
	}
	path, e := homedir.Expand(path)
	if e != nil {
		return "", e
	}
	return theme.RenderFile(path, t)
}
