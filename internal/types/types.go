// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// OrganizationMemberRole is the role a user holds within an organization.
type OrganizationMemberRole string

const (
	RoleAdmin  OrganizationMemberRole = "admin"
	RoleEditor OrganizationMemberRole = "editor"
	RoleMember OrganizationMemberRole = "member"
	RoleViewer OrganizationMemberRole = "viewer"
)

func (r OrganizationMemberRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleMember, RoleViewer:
		return true
	}
	return false
}

// OrganizationMemberProfile is one user's membership in one organization,
// joined with the user's identity and primary email.
type OrganizationMemberProfile struct {
	UserUUID         string                 `json:"user_uuid"`
	FirstName        string                 `json:"first_name"`
	LastName         string                 `json:"last_name"`
	Email            string                 `json:"email"`
	OrganizationUUID string                 `json:"organization_uuid"`
	Role             OrganizationMemberRole `json:"role"`
	IsActive         bool                   `json:"is_active"`
	IsInviteExpired  bool                   `json:"is_invite_expired"`
}

// OrganizationMemberGroup is one group a member belongs to.
type OrganizationMemberGroup struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// OrganizationMemberProfileWithGroups extends the profile with every group
// the user belongs to. Groups is never nil.
type OrganizationMemberProfileWithGroups struct {
	OrganizationMemberProfile
	Groups []OrganizationMemberGroup `json:"groups"`
}

// OrganizationMemberProfileUpdate carries the mutable membership fields.
// A nil Role makes the update a no-op fetch.
type OrganizationMemberProfileUpdate struct {
	Role *OrganizationMemberRole `json:"role,omitempty"`
}

type Organization struct {
	ID        int64     `db:"organization_id" json:"-"`
	UUID      string    `db:"organization_uuid" json:"organization_uuid"`
	Name      string    `db:"organization_name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type User struct {
	ID        int64     `db:"user_id" json:"-"`
	UUID      string    `db:"user_uuid" json:"user_uuid"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// UserIn carries the fields needed to persist a new user with their
// primary email.
type UserIn struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	IsActive     bool
}

type Group struct {
	UUID             string    `db:"group_uuid" json:"group_uuid"`
	OrganizationUUID string    `db:"organization_uuid" json:"organization_uuid"`
	Name             string    `db:"name" json:"name"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

type InviteLink struct {
	ID        int64     `db:"invite_link_id"`
	UserUUID  string    `db:"user_uuid"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
