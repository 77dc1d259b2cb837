package cmd

import (
	"fmt"
	"os"

	"github.com/avast/retry-go"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var emailCmd = &cobra.Command{
	Use:   "email <address> <start year> <end year>",
	Short: "Emails the top-5 artist leaderboard",
	Long:  `Builds the top-5 leaderboard for the year range and emails it as an HTML table.`,
	Args:  cobra.ExactArgs(3),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		if !viper.GetBool("dryRun") && viper.GetString("sendgrid_api_key") == "" {
			return fmt.Errorf("sendgrid_api_key must be set in order to send emails")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := emailLeaderboard(viper.GetString("database"), args[0], args[1:])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))
}

func emailLeaderboard(dbPath string, to string, yearArgs []string) error {
	start, end, _, err := parseYearRange(yearArgs)
	if err != nil {
		return err
	}

	board, err := buildLeaderboard(dbPath, start, end, nil, nil)
	if err != nil {
		return err
	}
	if len(board.Rows) == 0 {
		return fmt.Errorf("no songs found between %d and %d, nothing to send", start, end)
	}

	subject := fmt.Sprintf("Top %d artists %d-%d", len(board.Rows), start, end)
	body := leaderboardHTML(board, start, end)

	if viper.GetBool("dryRun") {
		fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, body)
		return nil
	}

	from := mail.NewEmail("music-eda", viper.GetString("from"))
	message := mail.NewSingleEmail(from, subject, mail.NewEmail(to, to), body, body)
	client := sendgrid.NewSendClient(viper.GetString("sendgrid_api_key"))

	err = retry.Do(
		func() error {
			response, err := client.Send(message)
			if err != nil {
				return err
			}
			if response.StatusCode >= 400 {
				return fmt.Errorf("sendgrid returned %d: %s", response.StatusCode, response.Body)
			}
			return nil
		},
		retry.Attempts(3),
	)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	fmt.Printf("Sent leaderboard to %s\n", to)
	return nil
}
