// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-warden/internal/client"
	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/service"
	"github.com/MKhiriev/go-warden/models"
)

var (
	flagBackupDir    string
	flagBackupFormat string
	flagNoPreflight  bool
	flagNoHistory    bool
)

var backupCmd = &cobra.Command{
	Use:   "backup <accounts-file>",
	Short: "Back up every account listed in the accounts file",
	Long: `backup processes each account of the JSON accounts file in turn:
login, unlock, export of the personal vault and of every organization the
account owns or administers, then logout. Each export is written to the
output directory as <email>-<timestamp>.<ext> (personal vault) or
<email>-<organization>-<timestamp>.<ext>.

One account failing, or its prompt being cancelled, does not stop the
run; remaining accounts are still processed and the failure is reported
at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flagCfg := flagConfig()
		flagCfg.AccountsFilePath = args[0]
		flagCfg.Backup = config.Backup{
			Dir:           flagBackupDir,
			Format:        models.ExportFormat(flagBackupFormat),
			SkipPreflight: flagNoPreflight,
		}
		flagCfg.History.Disabled = flagNoHistory

		cfg, err := config.GetBackupConfig(flagCfg)
		if err != nil {
			return err
		}

		app := client.NewApp(cfg, newLog())
		report, err := app.RunBackup(cmd.Context())
		if err != nil {
			return err
		}

		// Per-account failures are part of a completed run and do not
		// change the exit code; only run-level problems do.
		printReport(report)
		return nil
	},
}

func printReport(report *service.RunReport) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	for _, acct := range report.Accounts {
		if acct.Err != nil {
			red.Printf("✗ %s (%s): %v\n", acct.Label, acct.Email, acct.Err)
			continue
		}

		green.Printf("✓ %s (%s)\n", acct.Label, acct.Email)
		for _, file := range acct.Files {
			fmt.Printf("    %s\n", file)
		}
	}

	fmt.Fprintf(os.Stdout, "\n%d account(s), %d failed\n", len(report.Accounts), report.Failed())
}

func init() {
	backupCmd.Flags().StringVarP(&flagBackupDir, "dir", "d", "", "directory export files are written to (default \".\")")
	backupCmd.Flags().StringVarP(&flagBackupFormat, "format", "f", "", "export format: json, csv or encrypted_json (default \"json\")")
	backupCmd.Flags().BoolVar(&flagNoPreflight, "no-preflight", false, "skip the server reachability probe")
	backupCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "do not record this run in the local history")
}
