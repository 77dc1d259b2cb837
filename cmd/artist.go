package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acaudwell03/music-eda/internal/store"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var artistCmd = &cobra.Command{
	Use:   "artist <name>",
	Short: "Compares an artist's genre popularity with the overall average",
	Long: `Shows, per genre, the artist's average song popularity next to the overall
average. Matching ignores case and spaces.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printArtistComparison(os.Stdout, viper.GetString("database"), strings.Join(args, " "))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(artistCmd)
}

func printArtistComparison(out io.Writer, dbPath string, artist string) error {
	if strings.TrimSpace(artist) == "" {
		return fmt.Errorf("artist name cannot be empty")
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exists, err := db.ArtistExists(artist)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%q cannot be found in the database", artist)
	}

	results, err := db.ArtistGenrePopularity(artist)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s popularity vs overall popularity\n", artist)
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Genre", "Artist Popularity", "Overall Popularity"})
	for _, r := range results {
		err := table.Append([]string{
			r.Genre,
			fmt.Sprintf("%.2f", r.ArtistPopularity),
			fmt.Sprintf("%.2f", r.OverallPopularity),
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
