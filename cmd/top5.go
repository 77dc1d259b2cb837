package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/acaudwell03/music-eda/internal/ranking"
	"github.com/acaudwell03/music-eda/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var penaltyWeightFlags []string
var rankWeightFlags []string

var top5Cmd = &cobra.Command{
	Use:   "top5 <start year> <end year>",
	Short: "Ranks the top 5 artists over a year range",
	Long: `Scores every artist's songs by popularity, danceability, and song count,
discounted for explicit content and atypical durations, then shows the top 5
artists as an artist-by-year table with per-artist and per-year averages.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTop5(os.Stdout, viper.GetString("database"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(top5Cmd)

	top5Cmd.Flags().StringArrayVar(&penaltyWeightFlags, "penalty-weight", nil,
		"Penalty weight override as name=value (Explicit, Duration); repeatable")
	top5Cmd.Flags().StringArrayVar(&rankWeightFlags, "rank-weight", nil,
		"Rank weight override as name=value (song_weight, pop_weight, dance_weight); repeatable")
}

func printTop5(out io.Writer, dbPath string, args []string) error {
	start, end, swapped, err := parseYearRange(args)
	if err != nil {
		return err
	}
	if swapped {
		fmt.Fprintf(out, "Start year is after end year, using %d-%d.\n", start, end)
	}

	penaltyWeights, err := parseWeightOverrides(penaltyWeightFlags)
	if err != nil {
		return err
	}
	rankWeights, err := parseWeightOverrides(rankWeightFlags)
	if err != nil {
		return err
	}

	board, err := buildLeaderboard(dbPath, start, end, penaltyWeights, rankWeights)
	if err != nil {
		return err
	}

	if len(board.Rows) == 0 {
		fmt.Fprintf(out, "No songs found between %d and %d.\n", start, end)
		return nil
	}

	return renderLeaderboard(out, board, start, end)
}

func buildLeaderboard(dbPath string, start, end int, penaltyWeights, rankWeights ranking.Weights) (*ranking.Leaderboard, error) {
	db, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	hasSongs, err := db.HasSongs()
	if err != nil {
		return nil, err
	}
	if !hasSongs {
		return nil, fmt.Errorf("database is empty - run import first")
	}

	rows, columns, err := db.ArtistYearStats(start, end)
	if err != nil {
		return nil, err
	}

	ds := ranking.NewDataset(rows, columns)
	return ranking.Build(ds, start, end, penaltyWeights, rankWeights)
}

// parseWeightOverrides parses repeated name=value flags into a weight set.
// Name validation is left to the ranking engine; only the shape and the
// numeric value are checked here.
func parseWeightOverrides(flags []string) (ranking.Weights, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	weights := make(ranking.Weights, len(flags))
	for _, flag := range flags {
		kv := strings.SplitN(flag, "=", 2)
		if len(kv) != 2 {
			return nil, &ranking.ConfigError{Reason: fmt.Sprintf("weight %q is not in name=value form", flag)}
		}
		value, err := strconv.ParseFloat(kv[1], 64)
		if err != nil {
			return nil, &ranking.ConfigError{Reason: fmt.Sprintf("weight %q is not numeric", flag)}
		}
		weights[kv[0]] = value
	}
	return weights, nil
}
