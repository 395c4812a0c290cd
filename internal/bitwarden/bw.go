// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bitwarden

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
)

const defaultLoginAttempts = 5

// Environment variable names the CLI reads credentials from.
const (
	envClientID     = "BW_CLIENTID"
	envClientSecret = "BW_CLIENTSECRET"
	envPassword     = "BW_PASSWORD"
	envExtraCACerts = "NODE_EXTRA_CA_CERTS"
)

// Config holds the settings needed to construct a [Client].
type Config struct {
	// Executable is the path to the bw binary. Defaults to "bw".
	Executable string

	// ServerURL is the vault server the client must be configured against.
	ServerURL string

	// CACertPath optionally points at a root CA certificate for servers
	// with self-signed certificates.
	CACertPath string
}

// Client drives one bw CLI installation. It holds the session token
// obtained from login/unlock and attaches it to every call that needs one.
//
// The client never caches vault status: preconditions are checked by
// re-querying `bw status` immediately before each state-changing call,
// because the CLI's state can change outside this process's control.
type Client struct {
	exe        string
	serverURL  string
	caCertPath string

	runner CommandRunner
	log    *logger.Logger

	session string

	// sleep is swapped out in tests to observe the retry schedule.
	sleep func(time.Duration)
}

// NewClient constructs a [Client] and ensures the CLI is configured against
// cfg.ServerURL, switching servers when the reported URL differs. Switching
// requires the unauthenticated state; a leftover session against another
// server surfaces as [ErrInvalidState].
func NewClient(ctx context.Context, cfg Config, runner CommandRunner, log *logger.Logger) (*Client, error) {
	if cfg.Executable == "" {
		cfg.Executable = "bw"
	}

	c := &Client{
		exe:        cfg.Executable,
		serverURL:  cfg.ServerURL,
		caCertPath: cfg.CACertPath,
		runner:     runner,
		log:        log,
		sleep:      time.Sleep,
	}

	status, err := c.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("query vault status: %w", err)
	}

	if cfg.ServerURL != "" && (status == nil || status.ServerURL != cfg.ServerURL) {
		if err := c.SetServerURL(ctx, cfg.ServerURL); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Status returns a fresh snapshot from `bw status`, or nil when the command
// fails. The result is never memoized.
func (c *Client) Status(ctx context.Context) (*models.Status, error) {
	args := []string{"status"}
	if c.session != "" {
		args = append(args, "--session", c.session)
	}

	res, err := c.run(ctx, args, nil)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		c.log.Debug().Int("exit_code", res.ExitCode).Msg("bw status failed")
		return nil, nil
	}

	var status models.Status
	if err := json.Unmarshal(res.Stdout, &status); err != nil {
		return nil, fmt.Errorf("decode bw status output: %w", err)
	}

	return &status, nil
}

// SetServerURL reconfigures the CLI to target url. Changing servers while a
// session is active would orphan that session, so any state other than
// unauthenticated is rejected with [ErrInvalidState].
func (c *Client) SetServerURL(ctx context.Context, url string) error {
	if err := c.requireUnauthenticated(ctx, "config server"); err != nil {
		return err
	}

	res, err := c.run(ctx, []string{"config", "server", url}, nil)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("config server %s: %s", url, strings.TrimSpace(string(res.Stderr)))
	}

	c.serverURL = url
	return nil
}

// ServerURL returns the server the client is configured against.
func (c *Client) ServerURL() string {
	return c.serverURL
}

// LoginWithPassword authenticates and unlocks in one step using the
// account's email and master password. Login is retried up to maxAttempts
// times (default 5) with a linear backoff of 0.5s × attempt number between
// failures. On success the session token is extracted from stdout and a
// sync is triggered. Returns false when all attempts are exhausted.
//
// Requires the unauthenticated state; anything else fails with
// [ErrInvalidState].
func (c *Client) LoginWithPassword(ctx context.Context, email, password string, maxAttempts int) (bool, error) {
	if err := c.requireUnauthenticated(ctx, "login"); err != nil {
		return false, err
	}

	ok, res, err := c.retryLogin(ctx, []string{"login", email, password}, nil, maxAttempts)
	if err != nil || !ok {
		return false, err
	}

	c.session = extractSessionToken(res.Stdout)

	if synced, err := c.Sync(ctx); err != nil || !synced {
		c.log.Warn().Err(err).Msg("post-login sync failed")
	}

	return true, nil
}

// LoginWithAPIKey authenticates using the account's personal API key. The
// key pair is exposed to the CLI through the subprocess environment for the
// duration of each attempt only. API key login authenticates the account
// but does not unlock the vault and yields no session token — callers must
// follow up with [Client.Unlock].
//
// Retry policy and state precondition match [Client.LoginWithPassword].
func (c *Client) LoginWithAPIKey(ctx context.Context, clientID, clientSecret string, maxAttempts int) (bool, error) {
	if err := c.requireUnauthenticated(ctx, "login --apikey"); err != nil {
		return false, err
	}

	env := []string{
		envClientID + "=" + clientID,
		envClientSecret + "=" + clientSecret,
	}

	ok, _, err := c.retryLogin(ctx, []string{"login", "--apikey"}, env, maxAttempts)
	return ok, err
}

// Unlock derives the session from the master password. Already-unlocked
// vaults return true without invoking the unlock primitive; the
// unauthenticated state fails with [ErrInvalidState] since unlocking
// requires a prior login.
func (c *Client) Unlock(ctx context.Context, password string) (bool, error) {
	status, err := c.Status(ctx)
	if err != nil {
		return false, err
	}

	if status != nil && status.Status == models.StatusUnlocked {
		return true, nil
	}
	if status == nil || status.Status == models.StatusUnauthenticated {
		return false, fmt.Errorf("%w: unlock requires an authenticated account", ErrInvalidState)
	}

	res, err := c.run(ctx, []string{"unlock", "--passwordenv", envPassword}, []string{envPassword + "=" + password})
	if err != nil {
		return false, err
	}
	if res.ExitCode != 0 {
		c.log.Debug().Str("stderr", strings.TrimSpace(string(res.Stderr))).Msg("bw unlock failed")
		return false, nil
	}

	c.session = extractSessionToken(res.Stdout)
	return true, nil
}

// Lock locks the vault. Best-effort: the result is not inspected.
func (c *Client) Lock(ctx context.Context) error {
	_, err := c.run(ctx, []string{"lock"}, nil)
	return err
}

// Logout ends the CLI's session and drops the local session token
// regardless of whether the command succeeded.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.run(ctx, []string{"logout"}, nil)
	c.session = ""
	return err
}

// Sync pulls the latest vault state from the server. Requires an active
// session; fails with [ErrVaultNotUnlocked] otherwise.
func (c *Client) Sync(ctx context.Context) (bool, error) {
	if c.session == "" {
		return false, ErrVaultNotUnlocked
	}

	res, err := c.run(ctx, []string{"sync", "--session", c.session}, nil)
	if err != nil {
		return false, err
	}

	return res.ExitCode == 0, nil
}

// ListItems returns the vault items visible to the session, optionally
// filtered by a search term. Records whose type discriminator is not
// modeled are skipped. Without a session the listing is empty.
func (c *Client) ListItems(ctx context.Context, searchTerm string) ([]models.Item, error) {
	if c.session == "" {
		return nil, nil
	}

	args := []string{"list", "items"}
	if searchTerm != "" {
		args = append(args, "--search", searchTerm)
	}
	args = append(args, "--session", c.session)

	res, err := c.run(ctx, args, nil)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(res.Stdout, &records); err != nil {
		return nil, fmt.Errorf("decode bw items output: %w", err)
	}

	items := make([]models.Item, 0, len(records))
	skipped := 0
	for _, record := range records {
		item, err := models.DecodeItem(record)
		if err != nil {
			skipped++
			continue
		}
		items = append(items, item)
	}
	if skipped > 0 {
		c.log.Debug().Int("skipped", skipped).Msg("unrecognized vault item types skipped")
	}

	return items, nil
}

// ListOrganizations returns the organizations the account can see. Empty
// without a session.
func (c *Client) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	var orgs []models.Organization
	if err := c.list(ctx, "organizations", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListCollections returns the collections the account has access to,
// possibly spanning multiple organizations. Empty without a session.
func (c *Client) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	if err := c.list(ctx, "collections", &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (c *Client) list(ctx context.Context, what string, out any) error {
	if c.session == "" {
		return nil
	}

	res, err := c.run(ctx, []string{"list", what, "--session", c.session}, nil)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return nil
	}

	if err := json.Unmarshal(res.Stdout, out); err != nil {
		return fmt.Errorf("decode bw %s output: %w", what, err)
	}

	return nil
}

// ExportPersonalVault exports the personal vault to path. The format must
// be one of json/csv/encrypted_json ([ErrUnsupportedFormat] otherwise), and
// encrypted_json requires encryptPassword ([ErrMissingEncryptionPassword]).
// Without a session the export is refused with a false result.
//
// The exported file is written UNENCRYPTED unless the format is
// encrypted_json.
func (c *Client) ExportPersonalVault(ctx context.Context, path string, format models.ExportFormat, encryptPassword string) (bool, error) {
	return c.export(ctx, path, "", format, encryptPassword)
}

// ExportOrganization exports the collections of one organization to path.
// Validation matches [Client.ExportPersonalVault]. The account must own or
// administer the organization for the CLI to permit the export.
func (c *Client) ExportOrganization(ctx context.Context, path, organizationID string, format models.ExportFormat, encryptPassword string) (bool, error) {
	return c.export(ctx, path, organizationID, format, encryptPassword)
}

func (c *Client) export(ctx context.Context, path, organizationID string, format models.ExportFormat, encryptPassword string) (bool, error) {
	if !format.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if format.Encrypted() && encryptPassword == "" {
		return false, ErrMissingEncryptionPassword
	}

	if c.session == "" {
		return false, nil
	}

	args := []string{"export", "--format", string(format), "--output", path, "--session", c.session}
	if organizationID != "" {
		args = append(args, "--organizationid", organizationID)
	}
	if encryptPassword != "" {
		args = append(args, "--password", encryptPassword)
	}

	res, err := c.run(ctx, args, nil)
	if err != nil {
		return false, err
	}
	if res.ExitCode != 0 {
		c.log.Debug().
			Str("path", path).
			Str("organization_id", organizationID).
			Str("stderr", strings.TrimSpace(string(res.Stderr))).
			Msg("bw export failed")
		return false, nil
	}

	return true, nil
}

// CheckClientUpdate reports whether the installed CLI is the latest
// available version.
func (c *Client) CheckClientUpdate(ctx context.Context) (bool, error) {
	res, err := c.run(ctx, []string{"update"}, nil)
	if err != nil {
		return false, err
	}

	return res.ExitCode == 0 && strings.Contains(string(res.Stdout), "No update available"), nil
}

// retryLogin runs one login command with the linear backoff policy: after
// failed attempt n the client sleeps 0.5s × n before retrying.
func (c *Client) retryLogin(ctx context.Context, args, env []string, maxAttempts int) (bool, Result, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultLoginAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, err := c.run(ctx, args, env)
		if err != nil {
			return false, Result{}, err
		}
		if res.ExitCode == 0 {
			return true, res, nil
		}

		c.log.Debug().
			Int("attempt", attempt).
			Int("exit_code", res.ExitCode).
			Msg("bw login attempt failed")

		if attempt < maxAttempts {
			c.sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
	}

	return false, Result{}, nil
}

func (c *Client) requireUnauthenticated(ctx context.Context, op string) error {
	status, err := c.Status(ctx)
	if err != nil {
		return err
	}
	if status == nil || status.Status != models.StatusUnauthenticated {
		return fmt.Errorf("%w: %s requires the unauthenticated state", ErrInvalidState, op)
	}
	return nil
}

func (c *Client) run(ctx context.Context, args, env []string) (Result, error) {
	if c.caCertPath != "" {
		env = append(env, envExtraCACerts+"="+c.caCertPath)
	}
	return c.runner.Run(ctx, c.exe, args, env)
}

// extractSessionToken scans login/unlock stdout for the session key. The
// CLI prints shell-ready lines such as:
//
//	$ export BW_SESSION="5oBcBa..."
//	> $env:BW_SESSION="5oBcBa..."
//
// The first line containing "export" is used: everything after '=' with the
// surrounding quotes stripped. Output without such a line yields an empty
// token.
func extractSessionToken(stdout []byte) string {
	for _, line := range strings.Split(string(stdout), "\n") {
		if !strings.Contains(line, "export") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx < 0 {
			return ""
		}

		token := strings.TrimSpace(line[idx+1:])
		token = strings.TrimPrefix(token, `"`)
		token = strings.TrimSuffix(token, `"`)
		return token
	}

	return ""
}
