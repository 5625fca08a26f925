package durstr

import (
	"reflect"
	"testing"
)

// scanAll drives the scanner the way Parse does and returns the tokens it
// produced before the first failure.
func scanAll(src string) []token {
	s := scanner{src: src}
	var tokens []token
	for {
		s.skipSeparators()
		if s.done() {
			return tokens
		}
		num, ok := s.scanNumber()
		if !ok {
			return tokens
		}
		tokens = append(tokens, num)
		s.skipSpace()
		alias, ok := s.scanAlias()
		if !ok {
			return tokens
		}
		tokens = append(tokens, alias)
	}
}

func TestScanner(t *testing.T) {
	cases := []struct {
		in   string
		want []token
	}{
		{"10 seconds", []token{
			{numberToken, "10", 0},
			{aliasToken, "seconds", 3},
		}},
		{"9hr1min", []token{
			{numberToken, "9", 0},
			{aliasToken, "hr", 1},
			{numberToken, "1", 3},
			{aliasToken, "min", 4},
		}},
		{"712635 days", []token{
			{numberToken, "712635", 0},
			{aliasToken, "days", 7},
		}},
		{"1.25h, 3.s", []token{
			{numberToken, "1.25", 0},
			{aliasToken, "h", 4},
			{numberToken, "3", 7},
		}},
	}
	for _, tc := range cases {
		got := scanAll(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("scan %q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestScannerSeparators(t *testing.T) {
	s := scanner{src: " ,\t\n\r\v\f,x"}
	s.skipSeparators()
	if s.pos != len(s.src)-1 {
		t.Fatalf("expected to stop at x, stopped at %d", s.pos)
	}

	s = scanner{src: " ,s"}
	s.skipSpace()
	if s.pos != 1 {
		t.Fatalf("expected skipSpace to stop at comma, stopped at %d", s.pos)
	}
}

func TestTokenKindString(t *testing.T) {
	if numberToken.String() != "number" || aliasToken.String() != "alias" {
		t.Fatalf("unexpected kind names: %v %v", numberToken, aliasToken)
	}
}
