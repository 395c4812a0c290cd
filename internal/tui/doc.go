// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal surface: a masked
// password prompt shown once per account (and once more for encrypted
// exports) during a backup run. Secrets entered here are passed to the
// service layer and never echoed or logged.
package tui
