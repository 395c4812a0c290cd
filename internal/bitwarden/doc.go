// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bitwarden wraps the Bitwarden command-line client (`bw`) and
// exposes its login, unlock, sync, list, and export primitives as typed
// calls.
//
// The package owns the session token's lifecycle: tokens are extracted from
// the CLI's stdout after login/unlock and attached to subsequent calls; no
// other layer may store or transmit them. Vault status is never cached —
// the external executable is the sole source of truth and every
// state-changing operation re-queries it first.
//
// Subprocess execution goes through the [CommandRunner] interface so tests
// can script exit codes and output. A non-zero exit code is an ordinary
// boolean failure, not an error; only the inability to spawn the process at
// all surfaces as an error. Error values defined in errors.go report state
// and argument precondition violations and support [errors.Is] at the
// orchestration boundary.
package bitwarden
