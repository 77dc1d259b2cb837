package cmd

import (
	"strings"
	"testing"
)

const csvHeader = "artist,song,duration_ms,explicit,year,popularity,danceability,energy,speechiness,genre\n"

func TestParseSongs(t *testing.T) {
	input := csvHeader +
		"Some Artist,Good Song,200000,True,2005,75,0.6,0.5,0.4,\"pop, rock\"\n" +
		"Other Artist,Unpopular Song,180000,False,2006,30,0.6,0.5,0.4,pop\n" +
		"Other Artist,Spoken Word,180000,False,2006,80,0.6,0.5,0.9,pop\n" +
		"Other Artist,Stiff Song,180000,False,2006,80,0.1,0.5,0.4,pop\n"

	songs, skipped, err := parseSongs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseSongs error: %v", err)
	}

	if skipped != 3 {
		t.Errorf("skipped = %d, want 3 (popularity, speechiness, danceability filters)", skipped)
	}
	if len(songs) != 1 {
		t.Fatalf("songs = %d, want 1", len(songs))
	}

	s := songs[0]
	if s.Title != "Good Song" || s.Artist != "Some Artist" {
		t.Errorf("song = %q by %q, want Good Song by Some Artist", s.Title, s.Artist)
	}
	if s.Duration != 200 {
		t.Errorf("duration = %d, want 200 seconds", s.Duration)
	}
	if !s.Explicit {
		t.Error("explicit flag not parsed")
	}
	if s.Year != 2005 || s.Popularity != 75 {
		t.Errorf("year/popularity = %d/%d, want 2005/75", s.Year, s.Popularity)
	}
	if len(s.Genres) != 2 || s.Genres[0] != "pop" || s.Genres[1] != "rock" {
		t.Errorf("genres = %v, want [pop rock]", s.Genres)
	}
}

func TestParseSongsMultipleArtists(t *testing.T) {
	input := csvHeader +
		"\"Lead Artist, Featured Artist\",Duet,150000,False,2010,60,0.5,0.5,0.5,pop\n"

	songs, _, err := parseSongs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseSongs error: %v", err)
	}
	if len(songs) != 1 || songs[0].Artist != "Lead Artist" {
		t.Errorf("songs = %+v, want one song attributed to Lead Artist", songs)
	}
}

func TestParseSongsMissingColumns(t *testing.T) {
	input := "artist,song,year\nA,B,2000\n"
	_, _, err := parseSongs(strings.NewReader(input))
	if err == nil {
		t.Fatal("parseSongs accepted a csv without the dataset columns")
	}
	for _, col := range []string{"duration_ms", "explicit", "popularity"} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("error %q should name missing column %s", err, col)
		}
	}
}

func TestParseSongsBadValue(t *testing.T) {
	input := csvHeader +
		"A,B,not_a_number,False,2000,60,0.5,0.5,0.5,pop\n"
	_, _, err := parseSongs(strings.NewReader(input))
	if err == nil {
		t.Fatal("parseSongs accepted a non-numeric duration")
	}
}
