// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-warden/internal/client"
	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/store"
	"github.com/MKhiriev/go-warden/models"
)

var (
	flagHistoryAccount string
	flagHistorySince   string
	flagHistoryLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded export attempts",
	Long: `history lists past export attempts from the local run-history
database, newest first. Only metadata is stored there: account, target,
file path, format and outcome. Vault contents never enter the history.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetToolConfig(flagConfig())
		if err != nil {
			return err
		}

		filter := store.HistoryFilter{
			Account: flagHistoryAccount,
			Limit:   flagHistoryLimit,
		}
		if flagHistorySince != "" {
			since, err := time.Parse("2006-01-02", flagHistorySince)
			if err != nil {
				return fmt.Errorf("invalid --since value %q, expected YYYY-MM-DD", flagHistorySince)
			}
			filter.Since = since
		}

		app := client.NewApp(cfg, newLog())
		records, err := app.History(cmd.Context(), filter)
		if err != nil {
			return err
		}

		printHistory(records)
		return nil
	},
}

func printHistory(records []models.BackupRecord) {
	if len(records) == 0 {
		fmt.Println("No recorded export attempts")
		return
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tACCOUNT\tTARGET\tFORMAT\tRESULT\tFILE")

	for _, rec := range records {
		target := string(rec.Target)
		if rec.Target == models.TargetOrganization {
			target = fmt.Sprintf("org:%s", rec.TargetName)
		}

		result := green.Sprint("ok")
		if !rec.Success {
			result = red.Sprintf("failed: %s", rec.Error)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Account,
			target,
			rec.Format,
			result,
			rec.Path,
		)
	}

	w.Flush()
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryAccount, "account", "", "only show attempts for this account email")
	historyCmd.Flags().StringVar(&flagHistorySince, "since", "", "only show attempts on or after this date (YYYY-MM-DD)")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 50, "maximum number of attempts to show")
}
