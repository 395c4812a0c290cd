// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExportFormat names one of the vault export formats supported by
// `bw export --format`.
//
// The json format preserves the most metadata and is best suited for
// recovery; csv is flat and loses item history; encrypted_json wraps the
// json export with a password supplied at export time.
type ExportFormat string

const (
	FormatJSON          ExportFormat = "json"
	FormatCSV           ExportFormat = "csv"
	FormatEncryptedJSON ExportFormat = "encrypted_json"
)

// Valid reports whether f is one of the formats the CLI accepts.
func (f ExportFormat) Valid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatEncryptedJSON:
		return true
	}
	return false
}

// Encrypted reports whether exports in this format require an encryption
// password.
func (f ExportFormat) Encrypted() bool {
	return f == FormatEncryptedJSON
}

// Ext returns the file extension for export files of this format.
// Encrypted exports are still JSON documents on disk.
func (f ExportFormat) Ext() string {
	if f == FormatCSV {
		return "csv"
	}
	return "json"
}
