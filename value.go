package durstr

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Duration is a time.Duration that decodes from human-readable text. It can
// be used directly as a field in TOML, JSON or YAML configuration structs.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalText parses text with the default units.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// UnmarshalJSON accepts a JSON string. null leaves d unchanged.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("durstr: duration must be a JSON string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

// Flag is a pflag.Value that parses its argument with a Parser.
type Flag struct {
	parser *Parser
	dst    *time.Duration
}

var _ pflag.Value = (*Flag)(nil)

// NewFlag returns a flag value writing to dst, which is set to def. A nil
// parser means the default one.
func NewFlag(p *Parser, dst *time.Duration, def time.Duration) *Flag {
	if p == nil {
		p = defaultParser
	}
	*dst = def
	return &Flag{parser: p, dst: dst}
}

func (f *Flag) Set(s string) error {
	v, err := f.parser.Parse(s)
	if err != nil {
		return err
	}
	*f.dst = v
	return nil
}

func (f *Flag) String() string {
	if f == nil || f.dst == nil {
		return "0s"
	}
	return f.dst.String()
}

func (f *Flag) Type() string {
	return "duration"
}

// DurationVarP defines a duration flag on fs whose value is parsed by p.
func DurationVarP(fs *pflag.FlagSet, p *Parser, dst *time.Duration, name, shorthand string, def time.Duration, usage string) {
	fs.VarP(NewFlag(p, dst, def), name, shorthand, usage)
}
