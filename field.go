package sorer

import "strconv"

// maxStringBytes is the SoR format's hard cap on a String field's length.
const maxStringBytes = 255

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func skipSpace(s []byte, p int) int {
	for p < len(s) && isSpaceByte(s[p]) {
		p++
	}
	return p
}

// closeDelimiter requires, starting at p, optional whitespace then '>', and
// returns the index just past the '>'.
func closeDelimiter(s []byte, p int) (rest int, ok bool) {
	p = skipSpace(s, p)
	if p >= len(s) || s[p] != '>' {
		return 0, false
	}
	return p + 1, true
}

// parseNullField matches "<" ws* ">" with nothing else in between.
func parseNullField(s []byte) (rest []byte, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return nil, false
	}
	p := skipSpace(s, 1)
	end, ok := closeDelimiter(s, p)
	if !ok {
		return nil, false
	}
	return s[end:], true
}

// parseBoolField matches "<" ws* ("1"|"0") ws* ">".
func parseBoolField(s []byte) (d Data, rest []byte, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return Data{}, nil, false
	}
	p := skipSpace(s, 1)
	if p >= len(s) || (s[p] != '1' && s[p] != '0') {
		return Data{}, nil, false
	}
	val := s[p] == '1'
	end, ok := closeDelimiter(s, p+1)
	if !ok {
		return Data{}, nil, false
	}
	return BoolData(val), s[end:], true
}

// parseIntField matches "<" ws* sign? digit+ ws* ">", with no internal
// whitespace inside the numeral itself.
func parseIntField(s []byte) (d Data, rest []byte, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return Data{}, nil, false
	}
	p := skipSpace(s, 1)
	start := p
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		p++
	}
	digitsStart := p
	for p < len(s) && isDigitByte(s[p]) {
		p++
	}
	if p == digitsStart {
		return Data{}, nil, false
	}
	end, ok := closeDelimiter(s, p)
	if !ok {
		return Data{}, nil, false
	}
	n, err := strconv.ParseInt(string(s[start:p]), 10, 64)
	if err != nil {
		return Data{}, nil, false
	}
	return IntData(n), s[end:], true
}

// scanFloatToken consumes the longest valid float literal starting at p,
// returning the index just past it. It accepts signed mantissas, an
// optional fractional part, and an optional signed exponent.
func scanFloatToken(s []byte, p int) (end int, ok bool) {
	i := p
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	hasInt := i > intStart

	hasFrac := false
	if i < len(s) && s[i] == '.' {
		j := i + 1
		fracStart := j
		for j < len(s) && isDigitByte(s[j]) {
			j++
		}
		if j > fracStart {
			hasFrac = true
			i = j
		} else if hasInt {
			// trailing dot with no fraction digits, e.g. "1." - still valid.
			i = j
		}
	}

	if !hasInt && !hasFrac {
		return p, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigitByte(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	return i, true
}

// parseFloatField matches "<" ws* float-literal ws* ">".
func parseFloatField(s []byte) (d Data, rest []byte, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return Data{}, nil, false
	}
	p := skipSpace(s, 1)
	tokEnd, ok := scanFloatToken(s, p)
	if !ok {
		return Data{}, nil, false
	}
	end, ok := closeDelimiter(s, tokEnd)
	if !ok {
		return Data{}, nil, false
	}
	f, err := strconv.ParseFloat(string(s[p:tokEnd]), 64)
	if err != nil {
		return Data{}, nil, false
	}
	return FloatData(f), s[end:], true
}

// parseStringField matches either a double-quoted run of non-quote bytes or
// an unquoted run containing neither space nor '>', each bounded to
// maxStringBytes.
func parseStringField(s []byte) (d Data, rest []byte, ok bool) {
	if len(s) == 0 || s[0] != '<' {
		return Data{}, nil, false
	}
	p := skipSpace(s, 1)
	if p < len(s) && s[p] == '"' {
		j := p + 1
		for j < len(s) && s[j] != '"' {
			j++
		}
		if j >= len(s) {
			return Data{}, nil, false
		}
		content := s[p+1 : j]
		if len(content) > maxStringBytes {
			return Data{}, nil, false
		}
		end, ok := closeDelimiter(s, j+1)
		if !ok {
			return Data{}, nil, false
		}
		return StringData(string(content)), s[end:], true
	}

	start := p
	for p < len(s) && !isSpaceByte(s[p]) && s[p] != '>' {
		p++
	}
	if p == start {
		return Data{}, nil, false
	}
	content := s[start:p]
	if len(content) > maxStringBytes {
		return Data{}, nil, false
	}
	end, ok := closeDelimiter(s, p)
	if !ok {
		return Data{}, nil, false
	}
	return StringData(string(content)), s[end:], true
}

// parseFieldConservative applies the five forms in the order mandated by
// §4.A: Null, Bool, Int, Float, String. It is used only by the
// unschematized line parser (schema inference).
func parseFieldConservative(s []byte) (d Data, rest []byte, ok bool) {
	if r, ok := parseNullField(s); ok {
		return NullData, r, true
	}
	if d, r, ok := parseBoolField(s); ok {
		return d, r, true
	}
	if d, r, ok := parseIntField(s); ok {
		return d, r, true
	}
	if d, r, ok := parseFloatField(s); ok {
		return d, r, true
	}
	if d, r, ok := parseStringField(s); ok {
		return d, r, true
	}
	return Data{}, nil, false
}

// parseFieldAsType checks for an explicit Null first, then parses the field
// strictly as dtype. A type mismatch is reported via ok=false.
func parseFieldAsType(s []byte, dtype DataType) (d Data, rest []byte, ok bool) {
	if r, ok := parseNullField(s); ok {
		return NullData, r, true
	}
	switch dtype {
	case Bool:
		return parseBoolField(s)
	case Int:
		return parseIntField(s)
	case Float:
		return parseFloatField(s)
	case String:
		return parseStringField(s)
	default:
		return Data{}, nil, false
	}
}
