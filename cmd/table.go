package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/acaudwell03/music-eda/internal/ranking"
	"github.com/olekukonko/tablewriter"
)

// Label shown for artist/year cells with no songs.
const missingLabel = "NS"

const yearAverageLabel = "Year Average"

func leaderboardHeader(board *ranking.Leaderboard) []string {
	header := []string{"Artist"}
	for _, year := range board.Years {
		header = append(header, strconv.Itoa(year))
	}
	return append(header, "Average")
}

func leaderboardRows(board *ranking.Leaderboard) [][]string {
	var rows [][]string
	for _, row := range board.Rows {
		cells := []string{row.Name}
		for _, c := range row.Cells {
			cells = append(cells, formatScore(c))
		}
		rows = append(rows, append(cells, formatScore(row.Average)))
	}

	if board.YearAverage != nil {
		cells := []string{yearAverageLabel}
		for _, c := range board.YearAverage {
			cells = append(cells, formatScore(c))
		}
		// The average of the yearly averages is intentionally left blank.
		rows = append(rows, append(cells, ""))
	}
	return rows
}

func formatScore(c ranking.Cell) string {
	if !c.Valid {
		return missingLabel
	}
	return strconv.FormatFloat(c.Score, 'f', 2, 64)
}

func renderLeaderboard(out io.Writer, board *ranking.Leaderboard, start, end int) error {
	fmt.Fprintf(out, "Top %d artists between %d-%d\n", ranking.TopEntries, start, end)

	table := tablewriter.NewWriter(out)
	table.Header(leaderboardHeader(board))
	for _, row := range leaderboardRows(board) {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	fmt.Fprintf(out, "Note: %s = No Songs\n", missingLabel)
	return nil
}

func leaderboardHTML(board *ranking.Leaderboard, start, end int) string {
	var sb strings.Builder
	sb.WriteString(`
<html>
  <head>
<style>
td {
  padding: 0.1em 0.2em;
}
table, th, td {
  border: 1px solid black;
  border-collapse: collapse;
}
</style>
  </head>
  <body>
`)
	sb.WriteString(fmt.Sprintf("<h2>Top %d artists between %d-%d</h2>\n", ranking.TopEntries, start, end))

	sb.WriteString("<table><thead><tr>")
	for _, h := range leaderboardHeader(board) {
		sb.WriteString(fmt.Sprintf("<th>%s</th>", h))
	}
	sb.WriteString("</tr></thead><tbody>")
	for _, row := range leaderboardRows(board) {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString(fmt.Sprintf("<td>%s</td>", cell))
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
	sb.WriteString(fmt.Sprintf("<p>%s = No Songs</p>", missingLabel))
	sb.WriteString("\n  </body>\n</html>\n")
	return sb.String()
}
