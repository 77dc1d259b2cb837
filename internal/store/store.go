package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	query := `
CREATE TABLE IF NOT EXISTS Artist (
  id INTEGER PRIMARY KEY,
  name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS Song (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  duration INTEGER,
  explicit BOOL,
  year INTEGER,
  popularity INTEGER,
  danceability REAL,
  speechiness REAL,
  artist_id INTEGER,
  FOREIGN KEY (artist_id) REFERENCES Artist(id)
);

CREATE TABLE IF NOT EXISTS Genre (
  id INTEGER PRIMARY KEY,
  name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS SongGenre (
  song_id INTEGER,
  genre_id INTEGER,
  PRIMARY KEY (song_id, genre_id),
  FOREIGN KEY (song_id) REFERENCES Song(id),
  FOREIGN KEY (genre_id) REFERENCES Genre(id)
);
`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}

// HasSongs reports whether any songs have been imported yet.
func (s *Store) HasSongs() (bool, error) {
	row := s.db.QueryRow("SELECT COUNT(*) FROM Song")
	var count int64
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("counting songs: %w", err)
	}
	return count > 0, nil
}
