package sorer

// Column is a typed, columnar store of one field across every row of a
// Table. Per §9's design note, it is implemented as a tagged union over the
// four DataTypes rather than as an interface hierarchy: exactly one of the
// four slices below is ever populated, selected by typ. A nil element
// represents a missing value in that row.
type Column struct {
	typ DataType

	bools  []*bool
	ints   []*int64
	floats []*float64
	strs   []*string
}

func newColumn(t DataType) *Column {
	return &Column{typ: t}
}

// Type reports the column's fixed DataType.
func (c *Column) Type() DataType {
	return c.typ
}

// Len reports the number of rows so far appended to the column.
func (c *Column) Len() int {
	switch c.typ {
	case Bool:
		return len(c.bools)
	case Int:
		return len(c.ints)
	case Float:
		return len(c.floats)
	default:
		return len(c.strs)
	}
}

// push appends d, which must already have been parsed as c.typ (or be
// Null), to the column.
func (c *Column) push(d Data) {
	switch c.typ {
	case Bool:
		var v *bool
		if b, ok := d.Bool(); ok {
			v = &b
		}
		c.bools = append(c.bools, v)
	case Int:
		var v *int64
		if n, ok := d.Int(); ok {
			v = &n
		}
		c.ints = append(c.ints, v)
	case Float:
		var v *float64
		if f, ok := d.Float(); ok {
			v = &f
		}
		c.floats = append(c.floats, v)
	case String:
		var v *string
		if s, ok := d.Str(); ok {
			v = &s
		}
		c.strs = append(c.strs, v)
	}
}

// get returns the row-th value, or NullData if it is missing.
func (c *Column) get(row int) Data {
	switch c.typ {
	case Bool:
		if v := c.bools[row]; v != nil {
			return BoolData(*v)
		}
	case Int:
		if v := c.ints[row]; v != nil {
			return IntData(*v)
		}
	case Float:
		if v := c.floats[row]; v != nil {
			return FloatData(*v)
		}
	case String:
		if v := c.strs[row]; v != nil {
			return StringData(*v)
		}
	}
	return NullData
}

// appendColumn concatenates other onto c in place. Both must share typ;
// callers (the chunk merger, §4.G) guarantee this since every partial
// Column is built against the same Schema.
func (c *Column) appendColumn(other *Column) {
	switch c.typ {
	case Bool:
		c.bools = append(c.bools, other.bools...)
	case Int:
		c.ints = append(c.ints, other.ints...)
	case Float:
		c.floats = append(c.floats, other.floats...)
	case String:
		c.strs = append(c.strs, other.strs...)
	}
}
