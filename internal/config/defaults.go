package config

import "github.com/MKhiriev/go-warden/models"

// Defaults applied when no other source sets a field. The server URL matches
// the Bitwarden CLI's own default so a bare config keeps pointing at the
// hosted service.
func defaultConfig() *Config {
	return &Config{
		Vault: Vault{
			Executable: "bw",
			ServerURL:  "https://vault.bitwarden.com",
		},
		Backup: Backup{
			Dir:    ".",
			Format: models.FormatJSON,
		},
	}
}
