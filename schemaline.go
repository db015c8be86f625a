package sorer

// ParseLineWithSchema parses line against schema per §4.C: each column is
// parsed strictly as its schema type (after checking for an explicit or
// implicit Null), a type mismatch rejects the whole line, and extra fields
// past len(schema) are silently discarded.
//
// This is the narrow, pure surface promised to collaborators (§6.4): it
// keeps no state between calls, and is safe to call concurrently from any
// number of goroutines.
func ParseLineWithSchema(line []byte, schema Schema) (row []Data, ok bool) {
	if len(line) == 0 {
		return nil, false
	}

	row = make([]Data, 0, len(schema))
	p := 0
	for i := 0; i < len(schema); i++ {
		p = skipSpace(line, p)
		if p >= len(line) {
			row = append(row, NullData)
			continue
		}
		if line[p] != '<' {
			return nil, false
		}
		d, rest, ok := parseFieldAsType(line[p:], schema[i])
		if !ok {
			return nil, false
		}
		row = append(row, d)
		p = len(line) - len(rest)
	}
	return row, true
}
