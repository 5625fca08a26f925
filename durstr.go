// Package durstr parses human-readable durations such as "1hr 2min 3sec" or
// "12 minutes, 21 seconds" into time.Duration values.
//
// The built-in units and their aliases are:
//
//	millisecond  ms, msec, msecs, millisecond, milliseconds
//	second       s, sec, secs, second, seconds
//	minute       m, min, mins, minute, minutes
//	hour         h, hr, hrs, hour, hours
//
// Parse uses these units case-sensitively. Build a Parser with New to match
// aliases regardless of case or to add units of your own:
//
//	units := durstr.DefaultUnits()
//	_ = units.AddUnit(24*time.Hour, "d", "day", "days")
//	p := durstr.New(durstr.Options{IgnoreCase: true, Units: units})
//	d, err := p.Parse("4 Days, 2 hours")
package durstr

import "time"

var defaultParser = New(Options{})

// Parse parses input with the default units, matching aliases
// case-sensitively. It is equivalent to New(Options{}).Parse(input).
func Parse(input string) (time.Duration, error) {
	return defaultParser.Parse(input)
}

// MustParse is like Parse but panics if input cannot be parsed. It is meant
// for package-level variables initialised from literals.
func MustParse(input string) time.Duration {
	d, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return d
}
