// Package config loads the durstr TOML configuration and turns it into
// parser options.
package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lucrnz/durstr"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Parser ParserConfig          `toml:"parser"`
	Units  map[string]UnitConfig `toml:"units"`
}

// ParserConfig maps parser settings. Nil fields were not set in the file.
type ParserConfig struct {
	IgnoreCase *bool `toml:"ignore-case"`
	NoDefaults *bool `toml:"no-default-units"`
}

// UnitConfig defines one unit. Without aliases the table key is the only
// alias. Value is written in the default unit syntax, e.g. "24 hours".
type UnitConfig struct {
	Aliases []string        `toml:"aliases"`
	Value   durstr.Duration `toml:"value"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Options builds parser options from the file. Units are added in name
// order so a clash between two entries resolves the same way every run.
func (c FileConfig) Options() (durstr.Options, error) {
	units := durstr.DefaultUnits()
	if c.Parser.NoDefaults != nil && *c.Parser.NoDefaults {
		units = durstr.NewUnitTable()
	}

	names := make([]string, 0, len(c.Units))
	for name := range c.Units {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		u := c.Units[name]
		aliases := u.Aliases
		if len(aliases) == 0 {
			aliases = []string{name}
		}
		if err := units.AddNamedUnit(name, time.Duration(u.Value), aliases...); err != nil {
			return durstr.Options{}, fmt.Errorf("units.%s: %w", name, err)
		}
	}

	opts := durstr.Options{Units: units}
	if c.Parser.IgnoreCase != nil {
		opts.IgnoreCase = *c.Parser.IgnoreCase
	}
	return opts, nil
}
