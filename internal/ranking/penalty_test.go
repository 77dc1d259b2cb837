package ranking

import (
	"errors"
	"math"
	"testing"
)

func allColumns() []string {
	return []string{ColName, ColYear, ColPopularity, ColDanceability, ColDuration, ColExplicit, ColSongCount}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputePenaltyCleanRow(t *testing.T) {
	ds := NewDataset([]ArtistYearStat{
		{Name: "A", Year: 2000, AvgDuration: 200, ExplicitCount: 0, SongCount: 10},
	}, allColumns())

	penalties, err := ComputePenalty(ds, nil)
	if err != nil {
		t.Fatalf("ComputePenalty error: %v", err)
	}
	if penalties[0] != 1 {
		t.Errorf("penalty = %v, want 1 for clean in-range row", penalties[0])
	}
}

func TestComputePenaltyFactors(t *testing.T) {
	cases := []struct {
		name string
		row  ArtistYearStat
		want float64
	}{
		{"explicit only", ArtistYearStat{AvgDuration: 200, ExplicitCount: 5, SongCount: 10}, 1 - 0.5*0.15},
		{"too short", ArtistYearStat{AvgDuration: 119, SongCount: 4}, 0.85},
		{"too long", ArtistYearStat{AvgDuration: 271, SongCount: 4}, 0.85},
		{"short boundary", ArtistYearStat{AvgDuration: 120, SongCount: 4}, 1},
		{"long boundary", ArtistYearStat{AvgDuration: 270, SongCount: 4}, 1},
		{"both", ArtistYearStat{AvgDuration: 300, ExplicitCount: 2, SongCount: 4}, (1 - 0.5*0.15) * 0.85},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := NewDataset([]ArtistYearStat{tc.row}, allColumns())
			penalties, err := ComputePenalty(ds, nil)
			if err != nil {
				t.Fatalf("ComputePenalty error: %v", err)
			}
			if !almostEqual(penalties[0], tc.want) {
				t.Errorf("penalty = %v, want %v", penalties[0], tc.want)
			}
		})
	}
}

func TestComputePenaltyRange(t *testing.T) {
	// All-explicit, out-of-range duration is the worst case; the penalty must
	// stay strictly positive and never exceed 1.
	ds := NewDataset([]ArtistYearStat{
		{AvgDuration: 500, ExplicitCount: 20, SongCount: 20},
		{AvgDuration: 30, ExplicitCount: 1, SongCount: 1},
		{AvgDuration: 180, ExplicitCount: 0, SongCount: 3},
	}, allColumns())

	penalties, err := ComputePenalty(ds, nil)
	if err != nil {
		t.Fatalf("ComputePenalty error: %v", err)
	}
	for i, p := range penalties {
		if p <= 0 || p > 1 {
			t.Errorf("penalty[%d] = %v, want in (0, 1]", i, p)
		}
	}
}

func TestComputePenaltyWeightOverride(t *testing.T) {
	ds := NewDataset([]ArtistYearStat{
		{AvgDuration: 300, ExplicitCount: 0, SongCount: 2},
	}, allColumns())

	penalties, err := ComputePenalty(ds, Weights{WeightDuration: 0.5})
	if err != nil {
		t.Fatalf("ComputePenalty error: %v", err)
	}
	if !almostEqual(penalties[0], 0.5) {
		t.Errorf("penalty = %v, want 0.5 with Duration weight 0.5", penalties[0])
	}
}

func TestComputePenaltyZeroSongs(t *testing.T) {
	ds := NewDataset([]ArtistYearStat{
		{Name: "Broken", Year: 2003, AvgDuration: 200, SongCount: 0},
	}, allColumns())

	_, err := ComputePenalty(ds, nil)
	var derr *DivisionError
	if !errors.As(err, &derr) {
		t.Fatalf("error = %v, want *DivisionError", err)
	}
	if derr.Artist != "Broken" || derr.Year != 2003 {
		t.Errorf("DivisionError identifies %q (%d), want Broken (2003)", derr.Artist, derr.Year)
	}
}

func TestComputePenaltyMissingColumns(t *testing.T) {
	ds := NewDataset(nil, []string{ColName, ColYear, ColSongCount})

	_, err := ComputePenalty(ds, nil)
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want *SchemaError", err)
	}
	if len(serr.Missing) != 2 {
		t.Errorf("missing = %v, want both explicit_count and avg_duration", serr.Missing)
	}
}
