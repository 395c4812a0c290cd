// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-warden/internal/config"
)

// NewAuthenticator selects the unlock strategy for one account: accounts
// carrying a complete client_id/client_secret pair authenticate with the
// API key (login and unlock are separate steps), all others use the
// master password (the CLI combines authentication and unlock).
func NewAuthenticator(account config.Account, client VaultClient) Authenticator {
	if account.UsesAPIKey() {
		return &apiKeyAuthenticator{
			email:        account.Email,
			clientID:     account.ClientID,
			clientSecret: account.ClientSecret,
			client:       client,
		}
	}

	return &passwordAuthenticator{
		email:  account.Email,
		client: client,
	}
}

// passwordAuthenticator unlocks the vault with password-based login. The
// backing primitive performs authentication and unlock in a single step.
type passwordAuthenticator struct {
	email  string
	client VaultClient
}

func (a *passwordAuthenticator) UnlockVault(ctx context.Context, password string) (bool, error) {
	return a.client.LoginWithPassword(ctx, a.email, password, 0)
}

// apiKeyAuthenticator first authenticates the account with its API key,
// which bypasses any 2FA configured on the account, then unlocks the
// vault with the master password in a second step.
type apiKeyAuthenticator struct {
	email        string
	clientID     string
	clientSecret string
	client       VaultClient
}

func (a *apiKeyAuthenticator) UnlockVault(ctx context.Context, password string) (bool, error) {
	ok, err := a.client.LoginWithAPIKey(ctx, a.clientID, a.clientSecret, 0)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, &AuthenticationError{Email: a.email, ServerURL: a.client.ServerURL()}
	}

	return a.client.Unlock(ctx, password)
}
