// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OrgRole is the numeric membership role the CLI reports in the `type`
// field of an organization record.
type OrgRole int

const (
	// OrgRoleOwner has full control of the organization, including exports.
	OrgRoleOwner OrgRole = 0

	// OrgRoleAdmin manages users and collections and may export.
	OrgRoleAdmin OrgRole = 1

	// OrgRoleUser is a regular member without export rights.
	OrgRoleUser OrgRole = 2

	// OrgRoleManager manages assigned collections only.
	OrgRoleManager OrgRole = 3

	// OrgRoleCustom carries an individually configured permission set.
	OrgRoleCustom OrgRole = 4
)

// OrgStatus is the numeric membership status the CLI reports in the
// `status` field of an organization record.
type OrgStatus int

const (
	OrgStatusRevoked   OrgStatus = -1
	OrgStatusInvited   OrgStatus = 0
	OrgStatusAccepted  OrgStatus = 1
	OrgStatusConfirmed OrgStatus = 2
)

// Organization is a read-only snapshot of one organization visible to the
// authenticated account, as returned by `bw list organizations`. Snapshots
// are created fresh on every query and never cached across a backup pass.
type Organization struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Status  OrgStatus `json:"status"`
	Type    OrgRole   `json:"type"`
	Enabled bool      `json:"enabled"`
}

// Exportable reports whether the account's role in the organization allows
// a full organization export. Only owners and admins qualify.
func (o Organization) Exportable() bool {
	return o.Type == OrgRoleOwner || o.Type == OrgRoleAdmin
}
