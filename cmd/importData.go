package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/acaudwell03/music-eda/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var importCmd = &cobra.Command{
	Use:   "import <csv file>",
	Short: "Imports a song statistics CSV into the database",
	Long: `Reads a song dataset CSV, converts durations to whole seconds, filters out
songs below the quality criteria (popularity > 50, speechiness between 0.33
and 0.66, danceability > 0.2), and loads the rest into the SQLite database.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := importCsv(viper.GetString("database"), args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func importCsv(dbPath string, csvPath string) error {
	if !strings.HasSuffix(csvPath, ".csv") {
		return fmt.Errorf("unsupported format %q, expected a .csv file", csvPath)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", csvPath, err)
	}
	defer f.Close()

	songs, skipped, err := parseSongs(f)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", csvPath, err)
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.ImportSongs(songs); err != nil {
		return fmt.Errorf("importing songs: %w", err)
	}

	fmt.Printf("Imported %d songs (%d filtered out).\n", len(songs), skipped)
	return nil
}

var requiredCsvColumns = []string{
	"song", "artist", "duration_ms", "explicit", "year",
	"popularity", "danceability", "speechiness", "genre",
}

// parseSongs reads the dataset CSV and returns the rows passing the cleaning
// criteria, plus the number filtered out. Songs listing several artists are
// attributed to the first; the genre field may also be comma-separated.
func parseSongs(r io.Reader) ([]store.SongImport, int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredCsvColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, 0, fmt.Errorf("csv is missing columns: %s", strings.Join(missing, ", "))
	}

	var songs []store.SongImport
	skipped := 0
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading record: %w", err)
		}
		line++

		song, err := parseSongRecord(record, index)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", line, err)
		}
		if !keepSong(song) {
			skipped++
			continue
		}
		songs = append(songs, song)
	}
	return songs, skipped, nil
}

func parseSongRecord(record []string, index map[string]int) (store.SongImport, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[index[name]])
	}

	durationMs, err := strconv.ParseFloat(field("duration_ms"), 64)
	if err != nil {
		return store.SongImport{}, fmt.Errorf("duration_ms %q: %w", field("duration_ms"), err)
	}
	year, err := strconv.Atoi(field("year"))
	if err != nil {
		return store.SongImport{}, fmt.Errorf("year %q: %w", field("year"), err)
	}
	popularity, err := strconv.Atoi(field("popularity"))
	if err != nil {
		return store.SongImport{}, fmt.Errorf("popularity %q: %w", field("popularity"), err)
	}
	danceability, err := strconv.ParseFloat(field("danceability"), 64)
	if err != nil {
		return store.SongImport{}, fmt.Errorf("danceability %q: %w", field("danceability"), err)
	}
	speechiness, err := strconv.ParseFloat(field("speechiness"), 64)
	if err != nil {
		return store.SongImport{}, fmt.Errorf("speechiness %q: %w", field("speechiness"), err)
	}

	explicitField := field("explicit")
	explicit := strings.EqualFold(explicitField, "true") || explicitField == "1"

	artists := splitList(field("artist"))
	if len(artists) == 0 {
		return store.SongImport{}, fmt.Errorf("empty artist field")
	}

	return store.SongImport{
		Title:        field("song"),
		Duration:     int(math.Round(durationMs / 1000)),
		Explicit:     explicit,
		Year:         year,
		Popularity:   popularity,
		Danceability: danceability,
		Speechiness:  speechiness,
		Artist:       artists[0],
		Genres:       splitList(field("genre")),
	}, nil
}

// keepSong applies the dataset cleaning criteria.
func keepSong(s store.SongImport) bool {
	return s.Popularity > 50 &&
		s.Speechiness > 0.33 && s.Speechiness < 0.66 &&
		s.Danceability > 0.2
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
