package durstr

import (
	"fmt"
	"sort"
	"time"
)

// Unit is a named length of time that aliases in a UnitTable refer to.
type Unit struct {
	Name  string
	Value time.Duration
}

// Definition is a unit together with every alias that currently maps to it.
type Definition struct {
	Unit    Unit
	Aliases []string
}

type tableEntry struct {
	unit Unit
	seq  uint64 // insertion order, used to break case-folded ties
}

// UnitTable maps aliases such as "hr" or "minutes" to units.
//
// Aliases are stored exactly as given. Case folding only happens at lookup
// time, so the same table behaves consistently whether it is later queried
// case-sensitively or not. A UnitTable is not safe for concurrent mutation;
// build it up front and hand it to New, which takes its own copy.
type UnitTable struct {
	entries map[string]tableEntry
	seq     uint64
}

var builtinUnits = []struct {
	name    string
	value   time.Duration
	aliases []string
}{
	{"millisecond", time.Millisecond, []string{"ms", "msec", "msecs", "millisecond", "milliseconds"}},
	{"second", time.Second, []string{"s", "sec", "secs", "second", "seconds"}},
	{"minute", time.Minute, []string{"m", "min", "mins", "minute", "minutes"}},
	{"hour", time.Hour, []string{"h", "hr", "hrs", "hour", "hours"}},
}

// NewUnitTable returns an empty table.
func NewUnitTable() *UnitTable {
	return &UnitTable{entries: make(map[string]tableEntry)}
}

// DefaultUnits returns a new table holding the built-in millisecond, second,
// minute and hour aliases. The returned table is owned by the caller.
func DefaultUnits() *UnitTable {
	t := NewUnitTable()
	for _, u := range builtinUnits {
		t.put(Unit{Name: u.name, Value: u.value}, u.aliases)
	}
	return t
}

// AddUnit maps each alias to a unit of the given value, replacing any
// previous mapping of the same alias. The first alias names the unit.
func (t *UnitTable) AddUnit(value time.Duration, aliases ...string) error {
	if len(aliases) == 0 {
		return fmt.Errorf("%w: no aliases given", ErrInvalidUnit)
	}
	return t.AddNamedUnit(aliases[0], value, aliases...)
}

// AddNamedUnit is like AddUnit but sets the unit name explicitly.
func (t *UnitTable) AddNamedUnit(name string, value time.Duration, aliases ...string) error {
	if value <= 0 {
		return fmt.Errorf("%w: %q must be positive, got %v", ErrInvalidUnit, name, value)
	}
	if len(aliases) == 0 {
		return fmt.Errorf("%w: no aliases given for %q", ErrInvalidUnit, name)
	}
	for _, a := range aliases {
		if !isAlias(a) {
			return fmt.Errorf("%w: alias %q must be one or more ASCII letters", ErrInvalidUnit, a)
		}
	}
	if t.entries == nil {
		t.entries = make(map[string]tableEntry)
	}
	t.put(Unit{Name: name, Value: value}, aliases)
	return nil
}

func (t *UnitTable) put(u Unit, aliases []string) {
	for _, a := range aliases {
		t.seq++
		t.entries[a] = tableEntry{unit: u, seq: t.seq}
	}
}

// Resolve looks up alias. With ignoreCase set, an exact match is preferred;
// failing that the most recently added alias equal under ASCII case folding
// is returned.
func (t *UnitTable) Resolve(alias string, ignoreCase bool) (Unit, bool) {
	if t == nil {
		return Unit{}, false
	}
	if e, ok := t.entries[alias]; ok {
		return e.unit, true
	}
	if !ignoreCase {
		return Unit{}, false
	}
	var (
		best  tableEntry
		found bool
	)
	for k, e := range t.entries {
		if asciiEqualFold(k, alias) && (!found || e.seq > best.seq) {
			best, found = e, true
		}
	}
	return best.unit, found
}

// Clone returns an independent copy of the table.
func (t *UnitTable) Clone() *UnitTable {
	if t == nil {
		return NewUnitTable()
	}
	c := &UnitTable{entries: make(map[string]tableEntry, len(t.entries)), seq: t.seq}
	for k, e := range t.entries {
		c.entries[k] = e
	}
	return c
}

// Len returns the number of aliases in the table.
func (t *UnitTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Aliases returns every alias in the table, sorted.
func (t *UnitTable) Aliases() []string {
	out := make([]string, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Definitions groups the aliases by unit, ordered by value and then name.
func (t *UnitTable) Definitions() []Definition {
	byUnit := make(map[Unit][]string)
	for k, e := range t.entries {
		byUnit[e.unit] = append(byUnit[e.unit], k)
	}
	out := make([]Definition, 0, len(byUnit))
	for u, aliases := range byUnit {
		sort.Strings(aliases)
		out = append(out, Definition{Unit: u, Aliases: aliases})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Unit.Value != out[j].Unit.Value {
			return out[i].Unit.Value < out[j].Unit.Value
		}
		return out[i].Unit.Name < out[j].Unit.Name
	})
	return out
}

func isAlias(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toLower(a[i]) != toLower(b[i]) {
			return false
		}
	}
	return true
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
