// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultStatus is the lifecycle state reported by the Bitwarden CLI.
// The CLI is the sole source of truth for this value; it is never cached
// between calls.
type VaultStatus string

const (
	// StatusUnauthenticated means no account is logged in.
	StatusUnauthenticated VaultStatus = "unauthenticated"

	// StatusLocked means an account is logged in but the vault is locked.
	StatusLocked VaultStatus = "locked"

	// StatusUnlocked means the vault is unlocked and a session is active.
	StatusUnlocked VaultStatus = "unlocked"
)

// Status is the snapshot returned by `bw status`.
//
// Example output of the CLI:
//
//	{
//	  "serverUrl": "https://bitwarden.example.com",
//	  "lastSync": "2020-06-16T06:33:51.419Z",
//	  "userEmail": "user@example.com",
//	  "userId": "00000000-0000-0000-0000-000000000000",
//	  "status": "locked"
//	}
type Status struct {
	ServerURL string      `json:"serverUrl"`
	LastSync  *time.Time  `json:"lastSync"`
	UserEmail string      `json:"userEmail"`
	UserID    string      `json:"userId"`
	Status    VaultStatus `json:"status"`
}
