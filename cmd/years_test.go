package cmd

import (
	"strings"
	"testing"
)

func TestParseYearRangeValid(t *testing.T) {
	start, end, swapped, err := parseYearRange([]string{"2000", "2005"})
	if err != nil {
		t.Fatalf("parseYearRange error: %v", err)
	}
	if start != 2000 || end != 2005 || swapped {
		t.Errorf("got %d-%d swapped=%v, want 2000-2005 unswapped", start, end, swapped)
	}
}

func TestParseYearRangeSwapsReversed(t *testing.T) {
	start, end, swapped, err := parseYearRange([]string{"2010", "2002"})
	if err != nil {
		t.Fatalf("parseYearRange error: %v", err)
	}
	if start != 2002 || end != 2010 || !swapped {
		t.Errorf("got %d-%d swapped=%v, want 2002-2010 swapped", start, end, swapped)
	}
}

func TestParseYearRangeRejectsEqual(t *testing.T) {
	_, _, _, err := parseYearRange([]string{"2004", "2004"})
	if err == nil {
		t.Fatal("parseYearRange accepted an equal start and end year")
	}
}

func TestParseYearRangeBounds(t *testing.T) {
	for _, args := range [][]string{
		{"1997", "2000"},
		{"2000", "2021"},
	} {
		_, _, _, err := parseYearRange(args)
		if err == nil {
			t.Errorf("parseYearRange(%v) accepted an out-of-coverage year", args)
		} else if !strings.Contains(err.Error(), "coverage") {
			t.Errorf("parseYearRange(%v) error %q should mention coverage", args, err)
		}
	}
}

func TestParseYearRangeNonInteger(t *testing.T) {
	_, _, _, err := parseYearRange([]string{"derp", "2000"})
	if err == nil {
		t.Fatal("parseYearRange accepted a non-integer year")
	}
}
