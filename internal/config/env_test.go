package config

import (
	"testing"

	"github.com/MKhiriev/go-warden/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_MapsPrefixedVariables verifies the WARDEN_ prefixed mapping
// of nested env tags.
func TestParseEnv_MapsPrefixedVariables(t *testing.T) {
	t.Setenv("WARDEN_VAULT_SERVER_URL", "https://env.example.com")
	t.Setenv("WARDEN_VAULT_EXECUTABLE", "/usr/local/bin/bw")
	t.Setenv("WARDEN_BACKUP_FORMAT", "csv")
	t.Setenv("WARDEN_HISTORY_DISABLED", "true")
	t.Setenv("WARDEN_CONFIG", "/etc/warden/accounts.json")

	var cfg Config
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "https://env.example.com", cfg.Vault.ServerURL)
	assert.Equal(t, "/usr/local/bin/bw", cfg.Vault.Executable)
	assert.Equal(t, models.FormatCSV, cfg.Backup.Format)
	assert.True(t, cfg.History.Disabled)
	assert.Equal(t, "/etc/warden/accounts.json", cfg.AccountsFilePath)
}

// TestParseEnv_EmptyEnvironment verifies that an unset environment leaves
// the config zero-valued without error.
func TestParseEnv_EmptyEnvironment(t *testing.T) {
	var cfg Config
	require.NoError(t, parseEnv(&cfg))
	assert.Equal(t, Config{}, cfg)
}
