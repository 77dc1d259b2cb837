package store

import (
	"database/sql"
	"fmt"
)

// SongImport is one song row ready for insertion, with its artist and genres
// by name.
type SongImport struct {
	Title        string
	Duration     int // seconds
	Explicit     bool
	Year         int
	Popularity   int
	Danceability float64
	Speechiness  float64
	Artist       string
	Genres       []string
}

// ImportSongs inserts a batch of songs transactionally, creating artists and
// genres as needed. Artist and genre names are deduplicated by name.
func (s *Store) ImportSongs(songs []SongImport) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, song := range songs {
		artistID, err := ensureArtist(tx, song.Artist)
		if err != nil {
			return err
		}

		res, err := tx.Exec(`
			INSERT INTO Song (name, duration, explicit, year, popularity, danceability, speechiness, artist_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			song.Title, song.Duration, song.Explicit, song.Year,
			song.Popularity, song.Danceability, song.Speechiness, artistID)
		if err != nil {
			return fmt.Errorf("inserting song %q: %w", song.Title, err)
		}
		songID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("inserting song %q: %w", song.Title, err)
		}

		for _, genre := range song.Genres {
			genreID, err := ensureGenre(tx, genre)
			if err != nil {
				return err
			}
			_, err = tx.Exec("INSERT OR IGNORE INTO SongGenre (song_id, genre_id) VALUES (?, ?)", songID, genreID)
			if err != nil {
				return fmt.Errorf("linking song %q to genre %q: %w", song.Title, genre, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func ensureArtist(tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM Artist WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("checking artist %q: %w", name, err)
	}

	res, err := tx.Exec("INSERT INTO Artist (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("inserting artist %q: %w", name, err)
	}
	return res.LastInsertId()
}

func ensureGenre(tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM Genre WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("checking genre %q: %w", name, err)
	}

	res, err := tx.Exec("INSERT INTO Genre (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("inserting genre %q: %w", name, err)
	}
	return res.LastInsertId()
}
