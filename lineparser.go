package sorer

// ParseLine parses a full line (no schema) into an ordered sequence of Data
// values using the conservative per-field precedence of §4.A: Null, Bool,
// Int, Float, String. It is used only during schema inference (§4.D); the
// main parse uses ParseLineWithSchema instead.
//
// It succeeds only if every byte of line is consumed by fields and
// surrounding whitespace - any trailing junk rejects the whole line.
func ParseLine(line []byte) (row []Data, ok bool) {
	p := 0
	for {
		p = skipSpace(line, p)
		if p >= len(line) {
			return row, true
		}
		if line[p] != '<' {
			return nil, false
		}
		d, rest, ok := parseFieldConservative(line[p:])
		if !ok {
			return nil, false
		}
		row = append(row, d)
		p = len(line) - len(rest)
	}
}
