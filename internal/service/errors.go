package service

import "fmt"

// AuthenticationError reports that the vault server rejected an account's
// API key credentials.
type AuthenticationError struct {
	Email     string
	ServerURL string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for %s on %s", e.Email, e.ServerURL)
}
