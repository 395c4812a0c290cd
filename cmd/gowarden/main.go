// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/go-warden/cmd/gowarden/cmd"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd.SetBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
