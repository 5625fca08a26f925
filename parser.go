package durstr

import (
	"math"
	"math/bits"
	"strings"
	"time"
)

// maxFracDigits bounds the fractional digits that take part in the
// computation. 10^18 fits in a uint64 and is far below nanosecond precision
// for any unit.
const maxFracDigits = 18

// Options configures a Parser. The zero value parses case-sensitively
// against DefaultUnits.
type Options struct {
	// IgnoreCase matches aliases under ASCII case folding, so "MIN" and
	// "Min" both resolve to "min".
	IgnoreCase bool

	// Units is the alias table. Nil means DefaultUnits. New copies the
	// table, so changing it afterwards does not affect the Parser.
	Units *UnitTable
}

// Parser turns human-written durations into time.Duration values. A Parser
// is immutable and may be used from multiple goroutines. The zero Parser
// knows no units; construct one with New.
type Parser struct {
	ignoreCase bool
	units      *UnitTable
}

// New returns a Parser for opts, filling in defaults for unset fields.
func New(opts Options) *Parser {
	units := opts.Units
	if units == nil {
		units = DefaultUnits()
	} else {
		units = units.Clone()
	}
	return &Parser{ignoreCase: opts.IgnoreCase, units: units}
}

// IgnoreCase reports whether aliases are matched case-insensitively.
func (p *Parser) IgnoreCase() bool {
	return p.ignoreCase
}

// Units returns a copy of the parser's unit table.
func (p *Parser) Units() *UnitTable {
	return p.units.Clone()
}

// Parse reads a sequence of number and unit pairs such as "1hr 2min 3sec"
// or "12 minutes, 21 seconds" and returns their sum. Whitespace and commas
// separate components; whitespace may also sit between a number and its
// unit. Numbers may carry a fractional part ("1.5h"). Components may repeat
// and appear in any order.
//
// On failure the returned error is a *ParseError whose Kind is one of the
// Err* sentinels. Input left over after the last complete component is
// reported as ErrExpectedNumber.
func (p *Parser) Parse(input string) (time.Duration, error) {
	s := scanner{src: input}
	var (
		total      time.Duration
		components int
	)
	for {
		s.skipSeparators()
		if s.done() {
			break
		}

		num, ok := s.scanNumber()
		if !ok {
			return 0, newParseError(ErrExpectedNumber, input, s.pos)
		}
		s.skipSpace()
		alias, ok := s.scanAlias()
		if !ok {
			return 0, newParseError(ErrExpectedUnit, input, s.pos)
		}

		unit, ok := p.units.Resolve(alias.text, p.ignoreCase)
		if !ok {
			err := newParseError(ErrUnknownUnit, input, alias.offset)
			err.Unit = alias.text
			return 0, err
		}

		d, ok := scale(num.text, unit.Value)
		if !ok || total > math.MaxInt64-d {
			return 0, newParseError(ErrOverflow, input, num.offset)
		}
		total += d
		components++
	}

	if components == 0 {
		return 0, newParseError(ErrEmptyInput, input, 0)
	}
	return total, nil
}

// scale multiplies a decimal literal by unit without going through floating
// point. The fractional part is applied once, with a 128-bit intermediate,
// and truncated to whole nanoseconds.
func scale(literal string, unit time.Duration) (time.Duration, bool) {
	intPart, fracPart, _ := strings.Cut(literal, ".")
	u := uint64(unit)

	var n uint64
	for i := 0; i < len(intPart); i++ {
		c := uint64(intPart[i] - '0')
		if n > (math.MaxUint64-c)/10 {
			return 0, false
		}
		n = n*10 + c
	}
	hi, total := bits.Mul64(n, u)
	if hi != 0 || total > math.MaxInt64 {
		return 0, false
	}

	if len(fracPart) > maxFracDigits {
		fracPart = fracPart[:maxFracDigits]
	}
	if fracPart != "" {
		var f, pow uint64 = 0, 1
		for i := 0; i < len(fracPart); i++ {
			f = f*10 + uint64(fracPart[i]-'0')
			pow *= 10
		}
		// f < pow and u < 2^63, so hi < pow and Div64 cannot panic.
		hi, lo := bits.Mul64(f, u)
		q, _ := bits.Div64(hi, lo, pow)
		if q > math.MaxInt64-total {
			return 0, false
		}
		total += q
	}
	return time.Duration(total), true
}
