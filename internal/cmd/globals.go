package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/asterics/flipkeys/i18n"
	"github.com/asterics/flipkeys/internal/configpaths"
	"github.com/asterics/flipkeys/store"
)

// LogConfig holds the logging flags.
type LogConfig struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"FLIPKEYS_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"FLIPKEYS_LOG_FILE"`
	RawFile string `help:"Dump raw terminal input of live recordings to this file"`
}

// Globals are the flags shared by every command.
type Globals struct {
	ConfigFile string    `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"FLIPKEYS_CONFIG" template:"-"`
	Log        LogConfig `embed:"" prefix:"log."`
	Profile    string    `help:"Button profile file (json, yaml or toml), defaults to the user config directory" type:"path" env:"FLIPKEYS_PROFILE"`
	Lang       string    `help:"Language of action labels" default:"en" env:"FLIPKEYS_LANG"`
	Catalog    string    `help:"Label catalog overriding the built-in one" type:"path" env:"FLIPKEYS_CATALOG"`

	out io.Writer
	st  store.Store
}

func (g *Globals) stdout() io.Writer {
	if g.out != nil {
		return g.out
	}
	return os.Stdout
}

// Translator loads the label catalog for the configured language.
func (g *Globals) Translator() (*i18n.Catalog, error) {
	c, err := i18n.Embedded(g.Lang)
	if err != nil {
		return nil, err
	}
	if g.Catalog == "" {
		return c, nil
	}
	return i18n.LoadFile(g.Catalog, c)
}

// Store opens the button profile.
func (g *Globals) Store(logger *slog.Logger) (store.Store, error) {
	if g.st != nil {
		return g.st, nil
	}
	path := g.Profile
	if path == "" {
		p, err := configpaths.DefaultProfilePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve profile path: %w", err)
		}
		path = p
	}
	p, err := store.OpenProfile(path, logger)
	if err != nil {
		return nil, err
	}
	g.st = p
	return p, nil
}
