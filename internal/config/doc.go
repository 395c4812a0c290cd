// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for any field they set):
//  1. Command-line flags
//  2. Environment variables (WARDEN_ prefix)
//  3. JSON accounts file
//  4. Built-in defaults
//
// The main entry points are [GetBackupConfig] for the backup run (which
// requires a populated accounts file) and [GetToolConfig] for auxiliary
// commands that only need the vault client settings.
package config
