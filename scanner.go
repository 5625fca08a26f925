package durstr

type tokenKind int

const (
	numberToken tokenKind = iota
	aliasToken
)

func (k tokenKind) String() string {
	switch k {
	case numberToken:
		return "number"
	case aliasToken:
		return "alias"
	default:
		return "unknown"
	}
}

// token is a slice of the input; Text is kept verbatim until the parser
// converts it.
type token struct {
	kind   tokenKind
	text   string
	offset int
}

// scanner walks the input left to right. It never allocates: tokens are
// substrings of src.
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

// skipSeparators consumes whitespace and commas between components.
func (s *scanner) skipSeparators() {
	for s.pos < len(s.src) && (isSpace(s.src[s.pos]) || s.src[s.pos] == ',') {
		s.pos++
	}
}

// skipSpace consumes whitespace between a number and its unit.
func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// scanNumber reads digits with an optional fractional part. A '.' is only
// taken when a digit follows it.
func (s *scanner) scanNumber() (token, bool) {
	start := s.pos
	end := skipDigits(s.src, start)
	if end == start {
		return token{}, false
	}
	if end+1 < len(s.src) && s.src[end] == '.' && isDigit(s.src[end+1]) {
		end = skipDigits(s.src, end+1)
	}
	s.pos = end
	return token{kind: numberToken, text: s.src[start:end], offset: start}, true
}

// scanAlias reads the longest run of ASCII letters.
func (s *scanner) scanAlias() (token, bool) {
	start := s.pos
	end := start
	for end < len(s.src) && isLetter(s.src[end]) {
		end++
	}
	if end == start {
		return token{}, false
	}
	s.pos = end
	return token{kind: aliasToken, text: s.src[start:end], offset: start}, true
}

func skipDigits(src string, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
