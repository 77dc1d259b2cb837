package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/acaudwell03/music-eda/internal/store"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var genresCmd = &cobra.Command{
	Use:   "genres <year>",
	Short: "Shows genre statistics for a single year",
	Long:  `Lists each genre's song count and average popularity, danceability, and duration for the given year.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printGenreStats(os.Stdout, viper.GetString("database"), args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}

func printGenreStats(out io.Writer, dbPath string, yearArg string) error {
	year, err := parseYear(yearArg)
	if err != nil {
		return err
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	stats, err := db.GenreStats(year)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintf(out, "No results found for %d. Try another year.\n", year)
		return nil
	}

	fmt.Fprintf(out, "Genre statistics for %d\n", year)
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Genre", "Songs", "Avg Popularity", "Avg Danceability", "Avg Duration (s)"})
	for _, g := range stats {
		err := table.Append([]string{
			g.Genre,
			strconv.Itoa(g.SongCount),
			fmt.Sprintf("%.2f", g.AvgPopularity),
			fmt.Sprintf("%.2f", g.AvgDanceability),
			fmt.Sprintf("%.2f", g.AvgDuration),
		})
		if err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
