// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bitwarden

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultHealthTimeout = 10 * time.Second

// CheckServer probes the vault server's health endpoint (`/alive`, served
// by both Bitwarden and Vaultwarden) before any account is processed. A
// failed probe means every login in the run would hang through its full
// retry schedule, so the orchestrator aborts early instead.
func CheckServer(ctx context.Context, serverURL, caCertPath string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(serverURL, "/")).
		SetTimeout(timeout)
	if caCertPath != "" {
		cli.SetRootCertificate(caCertPath)
	}

	resp, err := cli.R().SetContext(ctx).Get("/alive")
	if err != nil {
		return fmt.Errorf("vault server unreachable: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("vault server health check returned %s", resp.Status())
	}

	return nil
}
