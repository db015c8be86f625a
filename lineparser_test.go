package sorer

import "testing"

func TestParseLineConservative(t *testing.T) {
	row, ok := ParseLine([]byte("< 1 > < hi >< +2.2 >"))
	if !ok {
		t.Fatal("expected success")
	}
	if len(row) != 3 {
		t.Fatalf("got %d fields, want 3", len(row))
	}
	if b, present := row[0].Bool(); !present || !b {
		t.Errorf("field 0: got %v present=%v, want true", b, present)
	}
	if s, present := row[1].Str(); !present || s != "hi" {
		t.Errorf("field 1: got %q present=%v, want %q", s, present, "hi")
	}
	if f, present := row[2].Float(); !present || f != 2.2 {
		t.Errorf("field 2: got %v present=%v, want 2.2", f, present)
	}
}

func TestParseLineEmptyIsValidEmptyRow(t *testing.T) {
	row, ok := ParseLine([]byte(""))
	if !ok {
		t.Fatal("empty line should succeed with zero fields")
	}
	if len(row) != 0 {
		t.Errorf("got %d fields, want 0", len(row))
	}
}

func TestParseLineTrailingJunkRejects(t *testing.T) {
	if _, ok := ParseLine([]byte("<1>junk")); ok {
		t.Error("expected rejection of trailing non-field junk")
	}
}

func TestParseLinePrecedenceWidensPerField(t *testing.T) {
	row, ok := ParseLine([]byte("<1><12><1.2><hello>"))
	if !ok {
		t.Fatal("expected success")
	}
	want := []DataType{Bool, Int, Float, String}
	for i, dt := range want {
		if row[i].Type() != dt {
			t.Errorf("field %d: got %v, want %v", i, row[i].Type(), dt)
		}
	}
}
