package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/acaudwell03/music-eda/internal/ranking"
)

// ArtistYearStats returns per-(artist, year) song aggregates for years in
// [start, end] inclusive, plus the column names of the result set so the
// ranking engine can validate its inputs.
func (s *Store) ArtistYearStats(start, end int) ([]ranking.ArtistYearStat, []string, error) {
	query := `
	SELECT
		a.name AS name,
		s.year AS year,
		AVG(s.popularity) AS avg_popularity,
		AVG(s.danceability) AS avg_danceability,
		AVG(s.duration) AS avg_duration,
		SUM(CASE WHEN s.explicit THEN 1 ELSE 0 END) AS explicit_count,
		COUNT(s.id) AS song_count
	FROM Artist a
	JOIN Song s ON s.artist_id = a.id
	WHERE s.year BETWEEN ? AND ?
	GROUP BY a.name, s.year
	ORDER BY avg_popularity DESC
	`
	rows, err := s.db.Query(query, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("querying artist stats: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("reading result columns: %w", err)
	}

	var stats []ranking.ArtistYearStat
	for rows.Next() {
		var st ranking.ArtistYearStat
		if err := rows.Scan(&st.Name, &st.Year, &st.AvgPopularity, &st.AvgDanceability,
			&st.AvgDuration, &st.ExplicitCount, &st.SongCount); err != nil {
			return nil, nil, fmt.Errorf("scanning artist stats: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, columns, rows.Err()
}

// GenreStat is one genre's aggregate song statistics for a single year.
type GenreStat struct {
	Genre           string
	SongCount       int
	AvgPopularity   float64
	AvgDanceability float64
	AvgDuration     float64
}

// GenreStats returns per-genre aggregates for one year, longest average
// duration first.
func (s *Store) GenreStats(year int) ([]GenreStat, error) {
	query := `
	SELECT
		g.name,
		COUNT(s.id),
		AVG(s.popularity),
		AVG(s.danceability),
		AVG(s.duration)
	FROM Song s
	JOIN SongGenre sg ON s.id = sg.song_id
	JOIN Genre g ON g.id = sg.genre_id
	WHERE s.year = ?
	GROUP BY g.name
	ORDER BY AVG(s.duration) DESC
	`
	rows, err := s.db.Query(query, year)
	if err != nil {
		return nil, fmt.Errorf("querying genre stats: %w", err)
	}
	defer rows.Close()

	var stats []GenreStat
	for rows.Next() {
		var g GenreStat
		if err := rows.Scan(&g.Genre, &g.SongCount, &g.AvgPopularity, &g.AvgDanceability, &g.AvgDuration); err != nil {
			return nil, fmt.Errorf("scanning genre stats: %w", err)
		}
		stats = append(stats, g)
	}
	return stats, rows.Err()
}

// GenrePopularity compares one artist's average popularity per genre with the
// overall average for that genre.
type GenrePopularity struct {
	Genre             string
	ArtistPopularity  float64
	OverallPopularity float64
}

// ArtistGenrePopularity returns, for every genre, the given artist's average
// song popularity next to the overall average, least popular genre first.
// Genres the artist has no songs in report zero artist popularity.
func (s *Store) ArtistGenrePopularity(artist string) ([]GenrePopularity, error) {
	query := `
	SELECT
		g.name,
		AVG(CASE
			WHEN LOWER(REPLACE(a.name, ' ', '')) = ?
			THEN s.popularity
			ELSE NULL
		END) AS artist_popularity,
		AVG(s.popularity) AS overall_popularity
	FROM Song s
	JOIN Artist a ON s.artist_id = a.id
	JOIN SongGenre sg ON s.id = sg.song_id
	JOIN Genre g ON sg.genre_id = g.id
	GROUP BY g.name
	ORDER BY overall_popularity ASC
	`
	rows, err := s.db.Query(query, normalizeName(artist))
	if err != nil {
		return nil, fmt.Errorf("querying genre popularity: %w", err)
	}
	defer rows.Close()

	var results []GenrePopularity
	for rows.Next() {
		var gp GenrePopularity
		var artistPop sql.NullFloat64
		if err := rows.Scan(&gp.Genre, &artistPop, &gp.OverallPopularity); err != nil {
			return nil, fmt.Errorf("scanning genre popularity: %w", err)
		}
		if artistPop.Valid {
			gp.ArtistPopularity = artistPop.Float64
		}
		results = append(results, gp)
	}
	return results, rows.Err()
}

// ArtistExists reports whether an artist is in the database, matching
// case-insensitively and ignoring spaces.
func (s *Store) ArtistExists(name string) (bool, error) {
	query := "SELECT COUNT(*) FROM Artist WHERE LOWER(REPLACE(name, ' ', '')) = ?"
	var count int64
	if err := s.db.QueryRow(query, normalizeName(name)).Scan(&count); err != nil {
		return false, fmt.Errorf("checking artist %q: %w", name, err)
	}
	return count > 0, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}
