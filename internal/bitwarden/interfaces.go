// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bitwarden

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/command_runner_mock.go -package=mock

// Result carries everything a finished subprocess left behind. Output is
// raw bytes; interpretation belongs to the caller.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// CommandRunner executes one external command synchronously and captures
// its exit code and output streams.
//
// env holds extra KEY=VALUE entries appended to the child process's
// environment for this single call only — the mechanism used to hand
// credentials (BW_CLIENTID, BW_CLIENTSECRET, BW_PASSWORD) to the CLI
// without ever touching this process's own environment.
//
// A non-zero exit code is reported in Result, not as an error. The error
// return is reserved for failure to spawn the process at all.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, env []string) (Result, error)
}
