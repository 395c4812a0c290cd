// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the application from its parts: configuration,
// the bw CLI session client, the backup orchestrator, the run-history
// store, and the terminal prompter. The cmd layer only parses flags and
// calls into this package.
package client
