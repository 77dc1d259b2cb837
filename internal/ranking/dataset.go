package ranking

// Column names a dataset may carry. These match the aliases of the upstream
// statistics query, so a dataset built from its result set validates for free.
const (
	ColName         = "name"
	ColYear         = "year"
	ColPopularity   = "avg_popularity"
	ColDanceability = "avg_danceability"
	ColDuration     = "avg_duration"
	ColExplicit     = "explicit_count"
	ColSongCount    = "song_count"
)

// ArtistYearStat is one aggregated row of song statistics for an artist over
// a single year.
type ArtistYearStat struct {
	Name            string
	Year            int
	AvgPopularity   float64
	AvgDanceability float64
	AvgDuration     float64
	ExplicitCount   int
	SongCount       int
}

// Dataset is an in-memory snapshot of artist/year statistics plus the column
// names the upstream query actually produced.
type Dataset struct {
	Rows    []ArtistYearStat
	columns map[string]bool
}

// NewDataset wraps rows fetched upstream. columns is the column list of the
// producing query; calculations check it before touching any row.
func NewDataset(rows []ArtistYearStat, columns []string) *Dataset {
	set := make(map[string]bool, len(columns))
	for _, c := range columns {
		set[c] = true
	}
	return &Dataset{Rows: rows, columns: set}
}

// Require returns a SchemaError naming every listed column the dataset lacks.
func (d *Dataset) Require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if !d.columns[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
