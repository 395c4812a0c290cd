// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-warden/internal/client"
	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the bw CLI's current vault state",
	Long: `status asks the Bitwarden CLI for its current state: the server it
is configured against, the logged-in account if any, and whether the vault
is locked or unlocked. The CLI is queried live; nothing is cached.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetToolConfig(flagConfig())
		if err != nil {
			return err
		}

		app := client.NewApp(cfg, newLog())
		status, err := app.Status(cmd.Context())
		if err != nil {
			return err
		}
		if status == nil {
			return fmt.Errorf("bw did not report a status")
		}

		printStatus(status)
		return nil
	},
}

func printStatus(status *models.Status) {
	state := color.New(color.FgRed).Sprint(status.Status)
	switch status.Status {
	case models.StatusUnlocked:
		state = color.New(color.FgGreen).Sprint(status.Status)
	case models.StatusLocked:
		state = color.New(color.FgYellow).Sprint(status.Status)
	}

	fmt.Printf("Server:    %s\n", status.ServerURL)
	fmt.Printf("State:     %s\n", state)
	if status.UserEmail != "" {
		fmt.Printf("Account:   %s\n", status.UserEmail)
	}
	if status.LastSync != nil {
		fmt.Printf("Last sync: %s\n", status.LastSync.Format("2006-01-02 15:04:05"))
	}
}
