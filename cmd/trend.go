package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var trendCmd = &cobra.Command{
	Use:   "trend <start year> <end year>",
	Short: "Shows the top 5 artists' scores year by year",
	Long: `Unpivots the top-5 leaderboard into one score series per artist, suitable
for plotting. Years with no songs are reported as 0.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTrend(os.Stdout, viper.GetString("database"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func printTrend(out io.Writer, dbPath string, args []string) error {
	start, end, swapped, err := parseYearRange(args)
	if err != nil {
		return err
	}
	if swapped {
		fmt.Fprintf(out, "Start year is after end year, using %d-%d.\n", start, end)
	}

	board, err := buildLeaderboard(dbPath, start, end, nil, nil)
	if err != nil {
		return err
	}
	if len(board.Rows) == 0 {
		fmt.Fprintf(out, "No songs found between %d and %d.\n", start, end)
		return nil
	}

	fmt.Fprintf(out, "Score trends %d-%d\n", start, end)
	current := ""
	for _, p := range board.LongFormat() {
		if p.Name != current {
			if current != "" {
				fmt.Fprintln(out)
			}
			current = p.Name
			fmt.Fprintf(out, "%s:", p.Name)
		}
		score := 0.0
		if p.Score.Valid {
			score = p.Score.Score
		}
		fmt.Fprintf(out, " %d=%.2f", p.Year, score)
	}
	fmt.Fprintln(out)
	return nil
}
