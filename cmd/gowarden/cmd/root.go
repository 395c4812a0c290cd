// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cmd defines the gowarden command-line surface. Commands parse
// flags into a partial configuration and hand off to the client package;
// no backup logic lives here.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/logger"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// flag values shared by the subcommands
var (
	flagExecutable string
	flagServerURL  string
	flagCACert     string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gowarden",
	Short: "Automated Bitwarden vault backups",
	Long: `gowarden drives the official Bitwarden CLI (bw) to back up one or
more vault accounts in a single run: it logs each account in, unlocks the
vault, exports the personal vault and every organization the account owns
or administers to timestamped files, and logs out again.

Accounts are described in a JSON file; credentials beyond the API key are
asked for interactively and never stored.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       fmt.Sprintf("%s (built %s, commit %s)", buildVersion, buildDate, buildCommit),
}

// SetBuildInfo injects link-time build metadata before Execute runs.
func SetBuildInfo(version, date, commit string) {
	if version != "" {
		buildVersion = version
	}
	if date != "" {
		buildDate = date
	}
	if commit != "" {
		buildCommit = commit
	}
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", buildVersion, buildDate, buildCommit)
}

// Execute runs the CLI. Errors are printed here so main stays trivial.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagExecutable, "executable", "", "path to the bw binary (default \"bw\")")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "vault server URL")
	rootCmd.PersistentFlags().StringVar(&flagCACert, "ca-cert", "", "root CA certificate for self-signed servers")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
}

// flagConfig maps the shared flags onto a partial configuration; it is the
// highest-priority source merged by the config package.
func flagConfig() *config.Config {
	return &config.Config{
		Vault: config.Vault{
			Executable:        flagExecutable,
			ServerURL:         flagServerURL,
			CARootCertificate: flagCACert,
		},
	}
}

func newLog() *logger.Logger {
	log := logger.NewFileLogger("gowarden")
	if !flagVerbose {
		return &logger.Logger{Logger: log.Level(zerolog.WarnLevel)}
	}
	return log
}
