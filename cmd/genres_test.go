package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintGenreStats(t *testing.T) {
	dbPath := createPopulatedDb(t)

	var out bytes.Buffer
	if err := printGenreStats(&out, dbPath, "2000"); err != nil {
		t.Fatalf("printGenreStats error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Genre statistics for 2000") {
		t.Errorf("output missing title:\n%s", got)
	}
	if !strings.Contains(got, "pop") {
		t.Errorf("output missing the pop genre:\n%s", got)
	}
	if strings.Contains(got, "rock") {
		t.Errorf("rock has no 2000 songs and should not appear:\n%s", got)
	}
}

func TestPrintGenreStatsNoResults(t *testing.T) {
	dbPath := createPopulatedDb(t)

	var out bytes.Buffer
	if err := printGenreStats(&out, dbPath, "2015"); err != nil {
		t.Fatalf("printGenreStats error: %v", err)
	}
	if !strings.Contains(out.String(), "No results found for 2015") {
		t.Errorf("output should report the empty year:\n%s", out.String())
	}
}

func TestPrintGenreStatsInvalidYear(t *testing.T) {
	var out bytes.Buffer
	if err := printGenreStats(&out, "unused.db", "1950"); err == nil {
		t.Fatal("printGenreStats should reject a year outside the dataset coverage")
	}
}
