// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection is a read-only snapshot of one collection the account has
// access to, as returned by `bw list collections`. A collection groups
// items inside an organization so access can be managed per group.
type Collection struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	ExternalID     string `json:"externalId"`
}
