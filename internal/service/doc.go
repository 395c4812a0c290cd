// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the account-authentication and backup
// orchestration logic of go-warden.
//
// An [Authenticator] turns one account's credential shape into the correct
// login/unlock call sequence against a session client; [NewAuthenticator]
// selects the implementation from the presence of an API key pair. The
// [BackupService] drives the whole run: it processes accounts strictly
// sequentially (the external CLI holds global single-account session
// state), isolates per-account failures, and records every export attempt
// in the run history.
package service
