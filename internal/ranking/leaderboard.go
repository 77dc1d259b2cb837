package ranking

import (
	"fmt"
	"math"
	"sort"
)

// TopEntries is the number of artist rows a leaderboard keeps.
const TopEntries = 5

// Cell is one leaderboard value. Valid is false for artist/year combinations
// absent from the input, which is distinct from a computed zero score.
type Cell struct {
	Score float64
	Valid bool
}

// ArtistRow is one leaderboard row: an artist, one cell per year in the
// requested range, and the mean of the populated cells.
type ArtistRow struct {
	Name    string
	Cells   []Cell
	Average Cell
}

// TrendPoint is one (artist, year, score) observation of the long-format
// series consumed by chart renderers.
type TrendPoint struct {
	Name  string
	Year  int
	Score Cell
}

// Leaderboard is the artist-by-year score matrix for a year range, truncated
// to the top artists by average score. YearAverage holds the per-year mean
// over the kept rows; it is nil when the board has no rows. Its average-of-
// averages is deliberately never computed.
type Leaderboard struct {
	Years       []int
	Rows        []ArtistRow
	YearAverage []Cell
}

// Build scores every dataset row and reshapes the results into a leaderboard
// over the inclusive year range [start, end]. Every year in the range becomes
// a column even when no row observed it. An empty dataset yields a board with
// zero rows rather than an error. Weight arguments may be nil for defaults.
func Build(ds *Dataset, start, end int, penaltyWeights, rankWeights Weights) (*Leaderboard, error) {
	if end < start {
		return nil, fmt.Errorf("year range %d-%d is reversed", start, end)
	}

	penalty, err := ComputePenalty(ds, penaltyWeights)
	if err != nil {
		return nil, err
	}
	scores, err := ComputeRank(ds, penalty, rankWeights)
	if err != nil {
		return nil, err
	}

	years := make([]int, 0, end-start+1)
	for y := start; y <= end; y++ {
		years = append(years, y)
	}

	// Mean score per (artist, year). The upstream query should produce one
	// row per pair, but duplicates from a coarser grouping must not skew the
	// board.
	type pair struct {
		name string
		year int
	}
	sums := make(map[pair]float64)
	counts := make(map[pair]int)
	var artists []string
	seen := make(map[string]bool)
	for i, row := range ds.Rows {
		p := pair{row.Name, row.Year}
		sums[p] += scores[i]
		counts[p]++
		if !seen[row.Name] {
			seen[row.Name] = true
			artists = append(artists, row.Name)
		}
	}

	// Dense matrix over the full year range, averages from populated cells
	// only. Artists keep their input order so equal averages sort stably.
	rows := make([]ArtistRow, 0, len(artists))
	for _, name := range artists {
		row := ArtistRow{Name: name, Cells: make([]Cell, len(years))}
		var sum float64
		var n int
		for i, year := range years {
			p := pair{name, year}
			if c := counts[p]; c > 0 {
				row.Cells[i] = Cell{Score: sums[p] / float64(c), Valid: true}
				sum += row.Cells[i].Score
				n++
			}
		}
		if n > 0 {
			row.Average = Cell{Score: sum / float64(n), Valid: true}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Average, rows[j].Average
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Score > b.Score
	})
	if len(rows) > TopEntries {
		rows = rows[:TopEntries]
	}

	for i := range rows {
		for j := range rows[i].Cells {
			rows[i].Cells[j].Score = round2(rows[i].Cells[j].Score)
		}
		rows[i].Average.Score = round2(rows[i].Average.Score)
	}

	board := &Leaderboard{Years: years, Rows: rows}
	if len(rows) > 0 {
		board.YearAverage = make([]Cell, len(years))
		for i := range years {
			var sum float64
			var n int
			for _, row := range rows {
				if row.Cells[i].Valid {
					sum += row.Cells[i].Score
					n++
				}
			}
			if n > 0 {
				board.YearAverage[i] = Cell{Score: round2(sum / float64(n)), Valid: true}
			}
		}
	}
	return board, nil
}

// ColumnMaxima returns the highest populated score per year column, letting a
// renderer highlight maxima without recomputing statistics.
func (l *Leaderboard) ColumnMaxima() []Cell {
	maxima := make([]Cell, len(l.Years))
	for i := range l.Years {
		for _, row := range l.Rows {
			c := row.Cells[i]
			if c.Valid && (!maxima[i].Valid || c.Score > maxima[i].Score) {
				maxima[i] = c
			}
		}
	}
	return maxima
}

// LongFormat unpivots the board into (artist, year, score) points in row then
// year order. Missing cells are carried with Valid false so the consumer can
// drop them or substitute zero.
func (l *Leaderboard) LongFormat() []TrendPoint {
	points := make([]TrendPoint, 0, len(l.Rows)*len(l.Years))
	for _, row := range l.Rows {
		for i, year := range l.Years {
			points = append(points, TrendPoint{Name: row.Name, Year: year, Score: row.Cells[i]})
		}
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
