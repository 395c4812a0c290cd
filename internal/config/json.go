package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// accountsFileConfig mirrors the JSON accounts file:
//
//	{
//	  "server_url": "https://vault.example.com",
//	  "ca_root_certificate": "/etc/ssl/private/root-ca.pem",
//	  "accounts": {
//	    "alice (password)": { "email": "alice@example.com", "format": "csv" },
//	    "bob (api key)": {
//	      "email": "bob@example.com",
//	      "client_id": "user.xxxx",
//	      "client_secret": "yyyy"
//	    }
//	  }
//	}
type accountsFileConfig struct {
	ServerURL         string             `json:"server_url"`
	CARootCertificate string             `json:"ca_root_certificate"`
	Accounts          map[string]Account `json:"accounts"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg accountsFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Vault: Vault{
			ServerURL:         fileCfg.ServerURL,
			CARootCertificate: fileCfg.CARootCertificate,
		},
		Accounts: fileCfg.Accounts,
	}

	return cfg, nil
}
